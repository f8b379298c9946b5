package biscuit

// This file implements the M extension's base (word-width-agnostic)
// multiply and divide instructions (spec.md §7).

const mFunct7 = 0b0000001

func (a *Assembler) MUL(rd, rs1, rs2 GPR)    { a.op(mFunct7, 0b000, rd, rs1, rs2) }
func (a *Assembler) MULH(rd, rs1, rs2 GPR)   { a.op(mFunct7, 0b001, rd, rs1, rs2) }
func (a *Assembler) MULHSU(rd, rs1, rs2 GPR) { a.op(mFunct7, 0b010, rd, rs1, rs2) }
func (a *Assembler) MULHU(rd, rs1, rs2 GPR)  { a.op(mFunct7, 0b011, rd, rs1, rs2) }
func (a *Assembler) DIV(rd, rs1, rs2 GPR)    { a.op(mFunct7, 0b100, rd, rs1, rs2) }
func (a *Assembler) DIVU(rd, rs1, rs2 GPR)   { a.op(mFunct7, 0b101, rd, rs1, rs2) }
func (a *Assembler) REM(rd, rs1, rs2 GPR)    { a.op(mFunct7, 0b110, rd, rs1, rs2) }
func (a *Assembler) REMU(rd, rs1, rs2 GPR)   { a.op(mFunct7, 0b111, rd, rs1, rs2) }
