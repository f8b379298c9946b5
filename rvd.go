package biscuit

// This file implements the D extension: double-precision load/store and
// the same arithmetic/compare/convert shape as rvf.go, plus the S<->D
// narrowing/widening conversions (spec.md §7).

const fmtD = 0b01

func (a *Assembler) FLD(rd FPR, rs1 GPR, imm int32) {
	a.emitFixed32(packI(imm, uint32(rs1), 0b011, uint32(rd), opLoadFP))
}

func (a *Assembler) FSD(rs2 FPR, rs1 GPR, imm int32) {
	a.emitFixed32(packS(imm, uint32(rs2), uint32(rs1), 0b011, opStoreFP))
}

func (a *Assembler) FADDD(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0000001, rd, rs1, rs2, rm) }
func (a *Assembler) FSUBD(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0000101, rd, rs1, rs2, rm) }
func (a *Assembler) FMULD(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0001001, rd, rs1, rs2, rm) }
func (a *Assembler) FDIVD(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0001101, rd, rs1, rs2, rm) }

func (a *Assembler) FSQRTD(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0101101, 0, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

func (a *Assembler) FSGNJD(rd, rs1, rs2 FPR)  { a.fpOp(0b0010001, rd, rs1, rs2, RMode(0b000)) }
func (a *Assembler) FSGNJND(rd, rs1, rs2 FPR) { a.fpOp(0b0010001, rd, rs1, rs2, RMode(0b001)) }
func (a *Assembler) FSGNJXD(rd, rs1, rs2 FPR) { a.fpOp(0b0010001, rd, rs1, rs2, RMode(0b010)) }

func (a *Assembler) FMIND(rd, rs1, rs2 FPR) { a.fpOp(0b0010101, rd, rs1, rs2, RMode(0b000)) }
func (a *Assembler) FMAXD(rd, rs1, rs2 FPR) { a.fpOp(0b0010101, rd, rs1, rs2, RMode(0b001)) }

func (a *Assembler) FMADDD(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opMADD, fmtD, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FMSUBD(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opMSUB, fmtD, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FNMSUBD(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opNMSUB, fmtD, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FNMADDD(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opNMADD, fmtD, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}

func (a *Assembler) FEQD(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010001, uint32(rs2), uint32(rs1), 0b010, uint32(rd), opOpFP))
}
func (a *Assembler) FLTD(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010001, uint32(rs2), uint32(rs1), 0b001, uint32(rd), opOpFP))
}
func (a *Assembler) FLED(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010001, uint32(rs2), uint32(rs1), 0b000, uint32(rd), opOpFP))
}

func (a *Assembler) FCLASSD(rd GPR, rs1 FPR) {
	a.emitFixed32(packR(0b1110001, 0, uint32(rs1), 0b001, uint32(rd), opOpFP))
}

func (a *Assembler) fcvtFromD(rs2 uint32, rd GPR, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b1100001, rs2, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}
func (a *Assembler) FCVTWD(rd GPR, rs1 FPR, rm RMode)  { a.fcvtFromD(0b00000, rd, rs1, rm) }
func (a *Assembler) FCVTWUD(rd GPR, rs1 FPR, rm RMode) { a.fcvtFromD(0b00001, rd, rs1, rm) }
func (a *Assembler) FCVTLD(rd GPR, rs1 FPR, rm RMode)  { a.fcvtFromD(0b00010, rd, rs1, rm) }
func (a *Assembler) FCVTLUD(rd GPR, rs1 FPR, rm RMode) { a.fcvtFromD(0b00011, rd, rs1, rm) }

func (a *Assembler) fcvtToD(rs2 uint32, rd FPR, rs1 GPR, rm RMode) {
	a.emitFixed32(packR(0b1101001, rs2, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}
func (a *Assembler) FCVTDW(rd FPR, rs1 GPR, rm RMode)  { a.fcvtToD(0b00000, rd, rs1, rm) }
func (a *Assembler) FCVTDWU(rd FPR, rs1 GPR, rm RMode) { a.fcvtToD(0b00001, rd, rs1, rm) }
func (a *Assembler) FCVTDL(rd FPR, rs1 GPR, rm RMode)  { a.fcvtToD(0b00010, rd, rs1, rm) }
func (a *Assembler) FCVTDLU(rd FPR, rs1 GPR, rm RMode) { a.fcvtToD(0b00011, rd, rs1, rm) }

// FCVTSD narrows rs1 from double to single precision.
func (a *Assembler) FCVTSD(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0100000, 0b00001, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

// FCVTDS widens rs1 from single to double precision.
func (a *Assembler) FCVTDS(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0100001, 0b00000, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

// FMVXD reinterprets the bits of rs1 as an integer, without conversion
// (RV64 only).
func (a *Assembler) FMVXD(rd GPR, rs1 FPR) {
	a.emitFixed32(packR(0b1110001, 0, uint32(rs1), 0b000, uint32(rd), opOpFP))
}

// FMVDX reinterprets the bits of rs1 as a double, without conversion
// (RV64 only).
func (a *Assembler) FMVDX(rd FPR, rs1 GPR) {
	a.emitFixed32(packR(0b1111001, 0, uint32(rs1), 0b000, uint32(rd), opOpFP))
}
