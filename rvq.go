package biscuit

// This file implements the Q extension: quad-precision load/store and the
// same arithmetic/compare/convert shape as rvd.go, plus conversions to and
// from S and D (spec.md §7). Q has no FMV.X.Q/FMV.Q.X: 128 bits never fit
// an XLEN<128 integer register, so those forms simply don't exist in the
// ISA and aren't modeled here.

const fmtQ = 0b11

func (a *Assembler) FLQ(rd FPR, rs1 GPR, imm int32) {
	a.emitFixed32(packI(imm, uint32(rs1), 0b100, uint32(rd), opLoadFP))
}

func (a *Assembler) FSQ(rs2 FPR, rs1 GPR, imm int32) {
	a.emitFixed32(packS(imm, uint32(rs2), uint32(rs1), 0b100, opStoreFP))
}

func (a *Assembler) FADDQ(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0000011, rd, rs1, rs2, rm) }
func (a *Assembler) FSUBQ(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0000111, rd, rs1, rs2, rm) }
func (a *Assembler) FMULQ(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0001011, rd, rs1, rs2, rm) }
func (a *Assembler) FDIVQ(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0001111, rd, rs1, rs2, rm) }

func (a *Assembler) FSQRTQ(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0101111, 0, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

func (a *Assembler) FSGNJQ(rd, rs1, rs2 FPR)  { a.fpOp(0b0010011, rd, rs1, rs2, RMode(0b000)) }
func (a *Assembler) FSGNJNQ(rd, rs1, rs2 FPR) { a.fpOp(0b0010011, rd, rs1, rs2, RMode(0b001)) }
func (a *Assembler) FSGNJXQ(rd, rs1, rs2 FPR) { a.fpOp(0b0010011, rd, rs1, rs2, RMode(0b010)) }

func (a *Assembler) FMINQ(rd, rs1, rs2 FPR) { a.fpOp(0b0010111, rd, rs1, rs2, RMode(0b000)) }
func (a *Assembler) FMAXQ(rd, rs1, rs2 FPR) { a.fpOp(0b0010111, rd, rs1, rs2, RMode(0b001)) }

func (a *Assembler) FMADDQ(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opMADD, fmtQ, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FMSUBQ(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opMSUB, fmtQ, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FNMSUBQ(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opNMSUB, fmtQ, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FNMADDQ(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opNMADD, fmtQ, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}

func (a *Assembler) FEQQ(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010011, uint32(rs2), uint32(rs1), 0b010, uint32(rd), opOpFP))
}
func (a *Assembler) FLTQ(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010011, uint32(rs2), uint32(rs1), 0b001, uint32(rd), opOpFP))
}
func (a *Assembler) FLEQ(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010011, uint32(rs2), uint32(rs1), 0b000, uint32(rd), opOpFP))
}

func (a *Assembler) FCLASSQ(rd GPR, rs1 FPR) {
	a.emitFixed32(packR(0b1110011, 0, uint32(rs1), 0b001, uint32(rd), opOpFP))
}

func (a *Assembler) fcvtFromQ(rs2 uint32, rd GPR, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b1100011, rs2, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}
func (a *Assembler) FCVTWQ(rd GPR, rs1 FPR, rm RMode)  { a.fcvtFromQ(0b00000, rd, rs1, rm) }
func (a *Assembler) FCVTWUQ(rd GPR, rs1 FPR, rm RMode) { a.fcvtFromQ(0b00001, rd, rs1, rm) }
func (a *Assembler) FCVTLQ(rd GPR, rs1 FPR, rm RMode)  { a.fcvtFromQ(0b00010, rd, rs1, rm) }
func (a *Assembler) FCVTLUQ(rd GPR, rs1 FPR, rm RMode) { a.fcvtFromQ(0b00011, rd, rs1, rm) }

func (a *Assembler) fcvtToQ(rs2 uint32, rd FPR, rs1 GPR, rm RMode) {
	a.emitFixed32(packR(0b1101011, rs2, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}
func (a *Assembler) FCVTQW(rd FPR, rs1 GPR, rm RMode)  { a.fcvtToQ(0b00000, rd, rs1, rm) }
func (a *Assembler) FCVTQWU(rd FPR, rs1 GPR, rm RMode) { a.fcvtToQ(0b00001, rd, rs1, rm) }
func (a *Assembler) FCVTQL(rd FPR, rs1 GPR, rm RMode)  { a.fcvtToQ(0b00010, rd, rs1, rm) }
func (a *Assembler) FCVTQLU(rd FPR, rs1 GPR, rm RMode) { a.fcvtToQ(0b00011, rd, rs1, rm) }

// FCVTSQ narrows rs1 from quad to single precision.
func (a *Assembler) FCVTSQ(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0100000, 0b00011, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

// FCVTQS widens rs1 from single to quad precision.
func (a *Assembler) FCVTQS(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0100011, 0b00000, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

// FCVTDQ narrows rs1 from quad to double precision.
func (a *Assembler) FCVTDQ(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0100001, 0b00011, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

// FCVTQD widens rs1 from double to quad precision.
func (a *Assembler) FCVTQD(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0100011, 0b00001, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}
