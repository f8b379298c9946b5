package biscuit

// This file implements the M extension's 32-bit-word forms, present only
// on RV64 (spec.md §7).

func (a *Assembler) MULW(rd, rs1, rs2 GPR)  { a.wordOp(mFunct7, 0b000, rd, rs1, rs2) }
func (a *Assembler) DIVW(rd, rs1, rs2 GPR)  { a.wordOp(mFunct7, 0b100, rd, rs1, rs2) }
func (a *Assembler) DIVUW(rd, rs1, rs2 GPR) { a.wordOp(mFunct7, 0b101, rd, rs1, rs2) }
func (a *Assembler) REMW(rd, rs1, rs2 GPR)  { a.wordOp(mFunct7, 0b110, rd, rs1, rs2) }
func (a *Assembler) REMUW(rd, rs1, rs2 GPR) { a.wordOp(mFunct7, 0b111, rd, rs1, rs2) }
