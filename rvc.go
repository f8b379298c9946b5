package biscuit

// This file implements the C (compressed) extension: the 16-bit encodings
// declared for the assembler (spec.md §7), plus a supplementary handful
// (C.MV, C.ADD, C.AND, C.OR, C.XOR, C.SUB, C.ANDI, C.BEQZ, C.BNEZ,
// C.SLLI, C.EBREAK, C.JR, C.JALR) that any assembler capable of emitting
// real compressed programs needs but the declared set leaves out
// (SPEC_FULL.md §7). Register-pair mnemonics (C.LW, C.SUB, C.BEQZ, ...)
// take ordinary GPR/FPR values and compress them via compressedGPR/
// compressedFPR, which panic on any register outside x8-x15/f8-f15 —
// compressed instructions can address no other register.

// C.ADDI4SPN computes sp+uimm (a nonzero multiple of 4) into the
// compressed register rd.
func (a *Assembler) CADDI4SPN(rd GPR, uimm uint32) {
	field := addi4spnScramble(uimm)
	a.emitFixed16(uint16(packCIW(0b000, field, compressedGPR(rd), cqQuadrant0)))
}

func (a *Assembler) cload(funct3 uint32, immHi3 uint32, rs1 GPR, immLo2 uint32, rd uint32) {
	a.emitFixed16(uint16(packCL(funct3, immHi3, compressedGPR(rs1), immLo2, rd, cqQuadrant0)))
}

func (a *Assembler) CLW(rd, rs1 GPR, uimm uint32) {
	hi, lo := wordOffsetScramble(uimm)
	a.cload(0b010, hi, rs1, lo, compressedGPR(rd))
}
func (a *Assembler) CLD(rd, rs1 GPR, uimm uint32) {
	hi, lo := doubleOffsetScramble(uimm)
	a.cload(0b011, hi, rs1, lo, compressedGPR(rd))
}
func (a *Assembler) CLQ(rd, rs1 GPR, uimm uint32) {
	hi, lo := quadOffsetScramble(uimm)
	a.cload(0b001, hi, rs1, lo, compressedGPR(rd))
}
func (a *Assembler) CFLW(rd FPR, rs1 GPR, uimm uint32) {
	hi, lo := wordOffsetScramble(uimm)
	a.cload(0b011, hi, rs1, lo, compressedFPR(rd))
}
func (a *Assembler) CFLD(rd FPR, rs1 GPR, uimm uint32) {
	hi, lo := doubleOffsetScramble(uimm)
	a.cload(0b001, hi, rs1, lo, compressedFPR(rd))
}

func (a *Assembler) cstore(funct3 uint32, immHi3 uint32, rs1 GPR, immLo2 uint32, rs2 uint32) {
	a.emitFixed16(uint16(packCS(funct3, immHi3, compressedGPR(rs1), immLo2, rs2, cqQuadrant0)))
}

func (a *Assembler) CSW(rs2, rs1 GPR, uimm uint32) {
	hi, lo := wordOffsetScramble(uimm)
	a.cstore(0b110, hi, rs1, lo, compressedGPR(rs2))
}
func (a *Assembler) CSD(rs2, rs1 GPR, uimm uint32) {
	hi, lo := doubleOffsetScramble(uimm)
	a.cstore(0b111, hi, rs1, lo, compressedGPR(rs2))
}
func (a *Assembler) CSQ(rs2, rs1 GPR, uimm uint32) {
	hi, lo := quadOffsetScramble(uimm)
	a.cstore(0b101, hi, rs1, lo, compressedGPR(rs2))
}
func (a *Assembler) CFSW(rs2 FPR, rs1 GPR, uimm uint32) {
	hi, lo := wordOffsetScramble(uimm)
	a.cstore(0b111, hi, rs1, lo, compressedFPR(rs2))
}
func (a *Assembler) CFSD(rs2 FPR, rs1 GPR, uimm uint32) {
	hi, lo := doubleOffsetScramble(uimm)
	a.cstore(0b101, hi, rs1, lo, compressedFPR(rs2))
}

// CNOP encodes a compressed no-op (C.ADDI x0, 0).
func (a *Assembler) CNOP() {
	a.emitFixed16(0x0001)
}

// CUNDEF encodes the reserved all-zero compressed word, guaranteed by the
// ISA to always be illegal.
func (a *Assembler) CUNDEF() {
	a.emitFixed16(0x0000)
}

// CADDI adds a nonzero signed 6-bit immediate to rd in place.
func (a *Assembler) CADDI(rd GPR, imm int32) {
	bit12, lo5 := ciDirectSplit(imm)
	a.emitFixed16(uint16(packCI(0b000, bit12, uint32(rd), lo5, cqQuadrant1)))
}

// CADDIW is C.ADDI's 32-bit-word form (RV64 only; rd must be nonzero).
func (a *Assembler) CADDIW(rd GPR, imm int32) {
	bit12, lo5 := ciDirectSplit(imm)
	a.emitFixed16(uint16(packCI(0b001, bit12, uint32(rd), lo5, cqQuadrant1)))
}

// CJAL is RV32C-only: jump to label, linking ra (x1).
func (a *Assembler) CJAL(label *Label) {
	a.emitBranch16(label, func(disp int32) uint32 { return packCJ(0b001, cjScramble(disp), cqQuadrant1) })
}
func (a *Assembler) CJALOffset(offset int32) {
	a.emitFixed16(uint16(packCJ(0b001, cjScramble(offset), cqQuadrant1)))
}

// CLI loads a nonzero signed 6-bit immediate into rd.
func (a *Assembler) CLI(rd GPR, imm int32) {
	bit12, lo5 := ciDirectSplit(imm)
	a.emitFixed16(uint16(packCI(0b010, bit12, uint32(rd), lo5, cqQuadrant1)))
}

// CLUI loads a nonzero 6-bit immediate into rd's bits [17:12] (rd must
// not be x0 or x2 — SPEC_FULL.md §11.2).
func (a *Assembler) CLUI(rd GPR, nzimm int32) {
	if rd == X0 || rd == SP {
		panic(InvalidPreconditionError{Mnemonic: "C.LUI", Reason: "rd must not be x0 or x2"})
	}
	if nzimm == 0 {
		panic(InvalidPreconditionError{Mnemonic: "C.LUI", Reason: "immediate must be nonzero"})
	}
	bit12, lo5 := ciDirectSplit(nzimm)
	a.emitFixed16(uint16(packCI(0b011, bit12, uint32(rd), lo5, cqQuadrant1)))
}

// CADDI16SP adjusts the stack pointer by a nonzero multiple of 16
// (SPEC_FULL.md §11.2).
func (a *Assembler) CADDI16SP(imm int32) {
	bit12, lo5 := addi16spScramble(imm)
	a.emitFixed16(uint16(packCI(0b011, bit12, uint32(SP), lo5, cqQuadrant1)))
}

func (a *Assembler) cbAlu(funct3, bit12, twobits, regP, lo5 uint32) uint32 {
	return packCBAlu(funct3, bit12, twobits, regP, lo5, cqQuadrant1)
}

// CSRLI, CSRAI shift rd right by shamt (logically/arithmetically) in
// place; shamt may be up to 63 (RV64).
func (a *Assembler) CSRLI(rd GPR, shamt uint32) {
	a.emitFixed16(uint16(a.cbAlu(0b100, (shamt>>5)&1, 0b00, compressedGPR(rd), shamt&0x1f)))
}
func (a *Assembler) CSRAI(rd GPR, shamt uint32) {
	a.emitFixed16(uint16(a.cbAlu(0b100, (shamt>>5)&1, 0b01, compressedGPR(rd), shamt&0x1f)))
}

// CANDI ANDs a signed 6-bit immediate into rd in place.
func (a *Assembler) CANDI(rd GPR, imm int32) {
	bit12, lo5 := ciDirectSplit(imm)
	a.emitFixed16(uint16(a.cbAlu(0b100, bit12, 0b10, compressedGPR(rd), lo5)))
}

func (a *Assembler) cAluReg(funct6, funct2 uint32, rd, rs2 GPR) {
	a.emitFixed16(uint16(packCA(funct6, compressedGPR(rd), funct2, compressedGPR(rs2), cqQuadrant1)))
}

func (a *Assembler) CSUB(rd, rs2 GPR) { a.cAluReg(0b100011, 0b00, rd, rs2) }
func (a *Assembler) CXOR(rd, rs2 GPR) { a.cAluReg(0b100011, 0b01, rd, rs2) }
func (a *Assembler) COR(rd, rs2 GPR)  { a.cAluReg(0b100011, 0b10, rd, rs2) }
func (a *Assembler) CAND(rd, rs2 GPR) { a.cAluReg(0b100011, 0b11, rd, rs2) }

// CJ jumps unconditionally to label with no link.
func (a *Assembler) CJ(label *Label) {
	a.emitBranch16(label, func(disp int32) uint32 { return packCJ(0b101, cjScramble(disp), cqQuadrant1) })
}
func (a *Assembler) CJOffset(offset int32) {
	a.emitFixed16(uint16(packCJ(0b101, cjScramble(offset), cqQuadrant1)))
}

func (a *Assembler) cBranch(funct3 uint32, rs1 GPR, label *Label) {
	a.emitBranch16(label, func(disp int32) uint32 {
		hi, lo := cbScramble(disp)
		return packCBBranch(funct3, hi, compressedGPR(rs1), lo, cqQuadrant1)
	})
}
func (a *Assembler) cBranchOffset(funct3 uint32, rs1 GPR, offset int32) {
	hi, lo := cbScramble(offset)
	a.emitFixed16(uint16(packCBBranch(funct3, hi, compressedGPR(rs1), lo, cqQuadrant1)))
}

func (a *Assembler) CBEQZ(rs1 GPR, label *Label)       { a.cBranch(0b110, rs1, label) }
func (a *Assembler) CBEQZOffset(rs1 GPR, offset int32) { a.cBranchOffset(0b110, rs1, offset) }
func (a *Assembler) CBNEZ(rs1 GPR, label *Label)       { a.cBranch(0b111, rs1, label) }
func (a *Assembler) CBNEZOffset(rs1 GPR, offset int32) { a.cBranchOffset(0b111, rs1, offset) }

// CSLLI shifts rd left by shamt in place.
func (a *Assembler) CSLLI(rd GPR, shamt uint32) {
	if shamt > 63 {
		panic(ImmediateOutOfRangeError{Format: "C.SLLI shamt", Value: int64(shamt), Min: 0, Max: 63})
	}
	a.emitFixed16(uint16(packCI(0b000, (shamt>>5)&1, uint32(rd), shamt&0x1f, cqQuadrant2)))
}

const (
	crFunct4Jr = 0b1000
	crFunct4Jx = 0b1001
)

// CJR jumps to the address in rs1, with no link.
func (a *Assembler) CJR(rs1 GPR) {
	a.emitFixed16(uint16(packCR(crFunct4Jr, uint32(rs1), 0, cqQuadrant2)))
}

// CMV copies rs2 into rd.
func (a *Assembler) CMV(rd, rs2 GPR) {
	a.emitFixed16(uint16(packCR(crFunct4Jr, uint32(rd), uint32(rs2), cqQuadrant2)))
}

// CEBREAK transfers control to a debugger.
func (a *Assembler) CEBREAK() {
	a.emitFixed16(uint16(packCR(crFunct4Jx, 0, 0, cqQuadrant2)))
}

// CJALR jumps to the address in rs1, linking ra (x1).
func (a *Assembler) CJALR(rs1 GPR) {
	a.emitFixed16(uint16(packCR(crFunct4Jx, uint32(rs1), 0, cqQuadrant2)))
}

// CADD adds rs2 into rd in place.
func (a *Assembler) CADD(rd, rs2 GPR) {
	a.emitFixed16(uint16(packCR(crFunct4Jx, uint32(rd), uint32(rs2), cqQuadrant2)))
}
