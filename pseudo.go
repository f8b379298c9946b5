package biscuit

// This file implements the ISA-defined pseudo-instructions that expand to
// a single real instruction with fixed or rearranged operands (spec.md
// §7's pseudo-instruction note). Where a pseudo's name would collide with
// a real instruction already exposed elsewhere (e.g. a single-register
// "jalr" pseudo against the three-operand real JALR), it is left out
// rather than given an artificial disambiguating name: the real
// instruction already expresses it losslessly.

// NOP is ADDI x0, x0, 0.
func (a *Assembler) NOP() { a.ADDI(X0, X0, 0) }

// MV copies rs into rd.
func (a *Assembler) MV(rd, rs GPR) { a.ADDI(rd, rs, 0) }

// NOT computes the bitwise complement of rs into rd.
func (a *Assembler) NOT(rd, rs GPR) { a.XORI(rd, rs, -1) }

// NEG computes the two's-complement negation of rs into rd.
func (a *Assembler) NEG(rd, rs GPR) { a.SUB(rd, X0, rs) }

// NEGW is NEG's 32-bit-word form (RV64 only).
func (a *Assembler) NEGW(rd, rs GPR) { a.SUBW(rd, X0, rs) }

// SEQZ sets rd to 1 if rs equals zero, else 0.
func (a *Assembler) SEQZ(rd, rs GPR) { a.SLTIU(rd, rs, 1) }

// SNEZ sets rd to 1 if rs does not equal zero, else 0.
func (a *Assembler) SNEZ(rd, rs GPR) { a.SLTU(rd, X0, rs) }

// SLTZ sets rd to 1 if rs is negative, else 0.
func (a *Assembler) SLTZ(rd, rs GPR) { a.SLT(rd, rs, X0) }

// SGTZ sets rd to 1 if rs is positive, else 0.
func (a *Assembler) SGTZ(rd, rs GPR) { a.SLT(rd, X0, rs) }

// J jumps unconditionally to label, discarding the return address.
func (a *Assembler) J(label *Label) { a.JAL(X0, label) }

// JOffset jumps unconditionally to the current PC plus offset.
func (a *Assembler) JOffset(offset int32) { a.JALOffset(X0, offset) }

// JR jumps to the address in rs, discarding the return address.
func (a *Assembler) JR(rs GPR) { a.JALR(X0, rs, 0) }

// RET returns to the address in ra (x1).
func (a *Assembler) RET() { a.JALR(X0, RA, 0) }

func (a *Assembler) BEQZ(rs GPR, label *Label)       { a.BEQ(rs, X0, label) }
func (a *Assembler) BEQZOffset(rs GPR, offset int32) { a.BEQOffset(rs, X0, offset) }
func (a *Assembler) BNEZ(rs GPR, label *Label)       { a.BNE(rs, X0, label) }
func (a *Assembler) BNEZOffset(rs GPR, offset int32) { a.BNEOffset(rs, X0, offset) }
func (a *Assembler) BLEZ(rs GPR, label *Label)       { a.BGE(X0, rs, label) }
func (a *Assembler) BLEZOffset(rs GPR, offset int32) { a.BGEOffset(X0, rs, offset) }
func (a *Assembler) BGEZ(rs GPR, label *Label)       { a.BGE(rs, X0, label) }
func (a *Assembler) BGEZOffset(rs GPR, offset int32) { a.BGEOffset(rs, X0, offset) }
func (a *Assembler) BLTZ(rs GPR, label *Label)       { a.BLT(rs, X0, label) }
func (a *Assembler) BLTZOffset(rs GPR, offset int32) { a.BLTOffset(rs, X0, offset) }
func (a *Assembler) BGTZ(rs GPR, label *Label)       { a.BLT(X0, rs, label) }
func (a *Assembler) BGTZOffset(rs GPR, offset int32) { a.BLTOffset(X0, rs, offset) }

func (a *Assembler) BGT(rs, rt GPR, label *Label)       { a.BLT(rt, rs, label) }
func (a *Assembler) BGTOffset(rs, rt GPR, offset int32) { a.BLTOffset(rt, rs, offset) }
func (a *Assembler) BLE(rs, rt GPR, label *Label)       { a.BGE(rt, rs, label) }
func (a *Assembler) BLEOffset(rs, rt GPR, offset int32) { a.BGEOffset(rt, rs, offset) }
func (a *Assembler) BGTU(rs, rt GPR, label *Label)       { a.BLTU(rt, rs, label) }
func (a *Assembler) BGTUOffset(rs, rt GPR, offset int32) { a.BLTUOffset(rt, rs, offset) }
func (a *Assembler) BLEU(rs, rt GPR, label *Label)       { a.BGEU(rt, rs, label) }
func (a *Assembler) BLEUOffset(rs, rt GPR, offset int32) { a.BGEUOffset(rt, rs, offset) }

// PAUSE is a hint: FENCE w, 0. It orders nothing; it exists so a spin-wait
// loop can signal the hart to deprioritize itself briefly.
func (a *Assembler) PAUSE() {
	a.emitFixed32(packFence(0, FenceW, 0, 0, 0b000, 0, opMiscMem))
}

func (a *Assembler) FMVS(rd, rs FPR)  { a.FSGNJS(rd, rs, rs) }
func (a *Assembler) FABSS(rd, rs FPR) { a.FSGNJXS(rd, rs, rs) }
func (a *Assembler) FNEGS(rd, rs FPR) { a.FSGNJNS(rd, rs, rs) }

func (a *Assembler) FMVD(rd, rs FPR)  { a.FSGNJD(rd, rs, rs) }
func (a *Assembler) FABSD(rd, rs FPR) { a.FSGNJXD(rd, rs, rs) }
func (a *Assembler) FNEGD(rd, rs FPR) { a.FSGNJND(rd, rs, rs) }

func (a *Assembler) FMVQ(rd, rs FPR)  { a.FSGNJQ(rd, rs, rs) }
func (a *Assembler) FABSQ(rd, rs FPR) { a.FSGNJXQ(rd, rs, rs) }
func (a *Assembler) FNEGQ(rd, rs FPR) { a.FSGNJNQ(rd, rs, rs) }
