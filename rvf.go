package biscuit

// This file implements the F extension: single-precision load/store,
// arithmetic, fused multiply-add, sign-injection, min/max, comparison,
// classification, and conversion instructions (spec.md §7). RMode
// arguments select the rounding mode encoded in the funct3 slot; most
// arithmetic forms also accept DYN to defer to the FRM CSR.

const fmtS = 0b00

func (a *Assembler) FLW(rd FPR, rs1 GPR, imm int32) {
	a.emitFixed32(packI(imm, uint32(rs1), 0b010, uint32(rd), opLoadFP))
}

func (a *Assembler) FSW(rs2 FPR, rs1 GPR, imm int32) {
	a.emitFixed32(packS(imm, uint32(rs2), uint32(rs1), 0b010, opStoreFP))
}

func (a *Assembler) fpOp(funct7 uint32, rd, rs1, rs2 FPR, rm RMode) {
	a.emitFixed32(packR(funct7, uint32(rs2), uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

func (a *Assembler) FADDS(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0000000, rd, rs1, rs2, rm) }
func (a *Assembler) FSUBS(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0000100, rd, rs1, rs2, rm) }
func (a *Assembler) FMULS(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0001000, rd, rs1, rs2, rm) }
func (a *Assembler) FDIVS(rd, rs1, rs2 FPR, rm RMode) { a.fpOp(0b0001100, rd, rs1, rs2, rm) }

func (a *Assembler) FSQRTS(rd, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b0101100, 0, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}

func (a *Assembler) FSGNJS(rd, rs1, rs2 FPR)  { a.fpOp(0b0010000, rd, rs1, rs2, RMode(0b000)) }
func (a *Assembler) FSGNJNS(rd, rs1, rs2 FPR) { a.fpOp(0b0010000, rd, rs1, rs2, RMode(0b001)) }
func (a *Assembler) FSGNJXS(rd, rs1, rs2 FPR) { a.fpOp(0b0010000, rd, rs1, rs2, RMode(0b010)) }

func (a *Assembler) FMINS(rd, rs1, rs2 FPR) { a.fpOp(0b0010100, rd, rs1, rs2, RMode(0b000)) }
func (a *Assembler) FMAXS(rd, rs1, rs2 FPR) { a.fpOp(0b0010100, rd, rs1, rs2, RMode(0b001)) }

func (a *Assembler) fmadd(opcode, funct2, rd, rs1, rs2, rs3 uint32, rm RMode) {
	a.emitFixed32(packR4(rs3, funct2, rs2, rs1, uint32(rm), rd, opcode))
}

func (a *Assembler) FMADDS(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opMADD, fmtS, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FMSUBS(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opMSUB, fmtS, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FNMSUBS(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opNMSUB, fmtS, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}
func (a *Assembler) FNMADDS(rd, rs1, rs2, rs3 FPR, rm RMode) {
	a.fmadd(opNMADD, fmtS, uint32(rd), uint32(rs1), uint32(rs2), uint32(rs3), rm)
}

// FEQS, FLTS, FLES compare rs1 and rs2, writing 1 or 0 into the integer
// register rd.
func (a *Assembler) FEQS(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010000, uint32(rs2), uint32(rs1), 0b010, uint32(rd), opOpFP))
}
func (a *Assembler) FLTS(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010000, uint32(rs2), uint32(rs1), 0b001, uint32(rd), opOpFP))
}
func (a *Assembler) FLES(rd GPR, rs1, rs2 FPR) {
	a.emitFixed32(packR(0b1010000, uint32(rs2), uint32(rs1), 0b000, uint32(rd), opOpFP))
}

// FCLASSS classifies rs1 into a 10-bit one-hot class mask written to rd.
func (a *Assembler) FCLASSS(rd GPR, rs1 FPR) {
	a.emitFixed32(packR(0b1110000, 0, uint32(rs1), 0b001, uint32(rd), opOpFP))
}

func (a *Assembler) fcvtFromS(rs2 uint32, rd GPR, rs1 FPR, rm RMode) {
	a.emitFixed32(packR(0b1100000, rs2, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}
func (a *Assembler) FCVTWS(rd GPR, rs1 FPR, rm RMode)  { a.fcvtFromS(0b00000, rd, rs1, rm) }
func (a *Assembler) FCVTWUS(rd GPR, rs1 FPR, rm RMode) { a.fcvtFromS(0b00001, rd, rs1, rm) }
func (a *Assembler) FCVTLS(rd GPR, rs1 FPR, rm RMode)  { a.fcvtFromS(0b00010, rd, rs1, rm) }
func (a *Assembler) FCVTLUS(rd GPR, rs1 FPR, rm RMode) { a.fcvtFromS(0b00011, rd, rs1, rm) }

func (a *Assembler) fcvtToS(rs2 uint32, rd FPR, rs1 GPR, rm RMode) {
	a.emitFixed32(packR(0b1101000, rs2, uint32(rs1), uint32(rm), uint32(rd), opOpFP))
}
func (a *Assembler) FCVTSW(rd FPR, rs1 GPR, rm RMode)  { a.fcvtToS(0b00000, rd, rs1, rm) }
func (a *Assembler) FCVTSWU(rd FPR, rs1 GPR, rm RMode) { a.fcvtToS(0b00001, rd, rs1, rm) }
func (a *Assembler) FCVTSL(rd FPR, rs1 GPR, rm RMode)  { a.fcvtToS(0b00010, rd, rs1, rm) }
func (a *Assembler) FCVTSLU(rd FPR, rs1 GPR, rm RMode) { a.fcvtToS(0b00011, rd, rs1, rm) }

// FMVXW reinterprets the bits of rs1 as an integer, without conversion.
func (a *Assembler) FMVXW(rd GPR, rs1 FPR) {
	a.emitFixed32(packR(0b1110000, 0, uint32(rs1), 0b000, uint32(rd), opOpFP))
}

// FMVWX reinterprets the bits of rs1 as a float, without conversion.
func (a *Assembler) FMVWX(rd FPR, rs1 GPR) {
	a.emitFixed32(packR(0b1111000, 0, uint32(rs1), 0b000, uint32(rd), opOpFP))
}
