package biscuit

// This file implements the RV64I additions over rv32i.go: wider loads, the
// register-width ("W"-suffixed) op/op-immediate forms (spec.md §7). The
// 6-bit shift amounts RV64 allows are accepted by SLLI/SRLI/SRAI in
// rv32i.go.

// LWU loads a 32-bit value from rs1+imm zero-extended into rd.
func (a *Assembler) LWU(rd, rs1 GPR, imm int32) { a.load(0b110, rd, rs1, imm) }

// LD loads a 64-bit value from rs1+imm into rd.
func (a *Assembler) LD(rd, rs1 GPR, imm int32) { a.load(0b011, rd, rs1, imm) }

// SD stores the 64-bit value in src to base+imm.
func (a *Assembler) SD(src, base GPR, imm int32) { a.store(0b011, src, base, imm) }

// ADDIW computes a 32-bit rs1+imm, sign-extending the result into rd.
func (a *Assembler) ADDIW(rd, rs1 GPR, imm int32) {
	a.emitFixed32(packI(imm, uint32(rs1), 0b000, uint32(rd), opOpImm32))
}

// SLLIW, SRLIW, SRAIW are ADDIW's 32-bit-word shift-immediate counterparts;
// shamt is restricted to [0,31].
func (a *Assembler) SLLIW(rd, rs1 GPR, shamt uint32) {
	a.wordShiftImm(0b0000000, 0b001, rd, rs1, shamt)
}
func (a *Assembler) SRLIW(rd, rs1 GPR, shamt uint32) {
	a.wordShiftImm(0b0000000, 0b101, rd, rs1, shamt)
}
func (a *Assembler) SRAIW(rd, rs1 GPR, shamt uint32) {
	a.wordShiftImm(0b0100000, 0b101, rd, rs1, shamt)
}

func (a *Assembler) wordShiftImm(funct7, funct3 uint32, rd, rs1 GPR, shamt uint32) {
	if shamt > 31 {
		panic(ImmediateOutOfRangeError{Format: "shift amount", Value: int64(shamt), Min: 0, Max: 31})
	}
	a.emitFixed32(packR(funct7, shamt, uint32(rs1), funct3, uint32(rd), opOpImm32))
}

// ADDW, SUBW, SLLW, SRLW, SRAW are op's 32-bit-word counterparts.
func (a *Assembler) ADDW(rd, rs1, rs2 GPR) { a.wordOp(0b0000000, funct3ADD, rd, rs1, rs2) }
func (a *Assembler) SUBW(rd, rs1, rs2 GPR) { a.wordOp(0b0100000, funct3ADD, rd, rs1, rs2) }
func (a *Assembler) SLLW(rd, rs1, rs2 GPR) { a.wordOp(0b0000000, 0b001, rd, rs1, rs2) }
func (a *Assembler) SRLW(rd, rs1, rs2 GPR) { a.wordOp(0b0000000, 0b101, rd, rs1, rs2) }
func (a *Assembler) SRAW(rd, rs1, rs2 GPR) { a.wordOp(0b0100000, 0b101, rd, rs1, rs2) }

func (a *Assembler) wordOp(funct7, funct3 uint32, rd, rs1, rs2 GPR) {
	a.emitFixed32(packR(funct7, uint32(rs2), uint32(rs1), funct3, uint32(rd), opOp32))
}
