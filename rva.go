package biscuit

// This file implements the A extension: load-reserved/store-conditional
// and the AMO read-modify-write family, in both .W (32-bit) and .D
// (64-bit) widths, each taking an Ordering for its aq/rl bits (spec.md
// §7, verified against the LR.W test vectors in spec.md §8).

const (
	amoFunct5Add    = 0b00000
	amoFunct5Swap   = 0b00001
	amoFunct5LR     = 0b00010
	amoFunct5SC     = 0b00011
	amoFunct5Xor    = 0b00100
	amoFunct5Or     = 0b01000
	amoFunct5And    = 0b01100
	amoFunct5Min    = 0b10000
	amoFunct5Max    = 0b10100
	amoFunct5MinU   = 0b11000
	amoFunct5MaxU   = 0b11100
)

func (a *Assembler) lr(funct3 uint32, rd, rs1 GPR, ordering Ordering) {
	a.emitFixed32(packAtomic(amoFunct5LR, ordering, 0, uint32(rs1), funct3, uint32(rd), opAMO))
}

func (a *Assembler) sc(funct3 uint32, rd, rs1, rs2 GPR, ordering Ordering) {
	a.emitFixed32(packAtomic(amoFunct5SC, ordering, uint32(rs2), uint32(rs1), funct3, uint32(rd), opAMO))
}

func (a *Assembler) amo(funct5, funct3 uint32, rd, rs1, rs2 GPR, ordering Ordering) {
	a.emitFixed32(packAtomic(funct5, ordering, uint32(rs2), uint32(rs1), funct3, uint32(rd), opAMO))
}

func (a *Assembler) LRW(rd, rs1 GPR, ordering Ordering)        { a.lr(0b010, rd, rs1, ordering) }
func (a *Assembler) SCW(rd, rs1, rs2 GPR, ordering Ordering)   { a.sc(0b010, rd, rs1, rs2, ordering) }
func (a *Assembler) AMOSWAPW(rd, rs1, rs2 GPR, o Ordering)     { a.amo(amoFunct5Swap, 0b010, rd, rs1, rs2, o) }
func (a *Assembler) AMOADDW(rd, rs1, rs2 GPR, o Ordering)      { a.amo(amoFunct5Add, 0b010, rd, rs1, rs2, o) }
func (a *Assembler) AMOXORW(rd, rs1, rs2 GPR, o Ordering)      { a.amo(amoFunct5Xor, 0b010, rd, rs1, rs2, o) }
func (a *Assembler) AMOANDW(rd, rs1, rs2 GPR, o Ordering)      { a.amo(amoFunct5And, 0b010, rd, rs1, rs2, o) }
func (a *Assembler) AMOORW(rd, rs1, rs2 GPR, o Ordering)       { a.amo(amoFunct5Or, 0b010, rd, rs1, rs2, o) }
func (a *Assembler) AMOMINW(rd, rs1, rs2 GPR, o Ordering)      { a.amo(amoFunct5Min, 0b010, rd, rs1, rs2, o) }
func (a *Assembler) AMOMAXW(rd, rs1, rs2 GPR, o Ordering)      { a.amo(amoFunct5Max, 0b010, rd, rs1, rs2, o) }
func (a *Assembler) AMOMINUW(rd, rs1, rs2 GPR, o Ordering)     { a.amo(amoFunct5MinU, 0b010, rd, rs1, rs2, o) }
func (a *Assembler) AMOMAXUW(rd, rs1, rs2 GPR, o Ordering)     { a.amo(amoFunct5MaxU, 0b010, rd, rs1, rs2, o) }

func (a *Assembler) LRD(rd, rs1 GPR, ordering Ordering)      { a.lr(0b011, rd, rs1, ordering) }
func (a *Assembler) SCD(rd, rs1, rs2 GPR, ordering Ordering) { a.sc(0b011, rd, rs1, rs2, ordering) }
func (a *Assembler) AMOSWAPD(rd, rs1, rs2 GPR, o Ordering)   { a.amo(amoFunct5Swap, 0b011, rd, rs1, rs2, o) }
func (a *Assembler) AMOADDD(rd, rs1, rs2 GPR, o Ordering)    { a.amo(amoFunct5Add, 0b011, rd, rs1, rs2, o) }
func (a *Assembler) AMOXORD(rd, rs1, rs2 GPR, o Ordering)    { a.amo(amoFunct5Xor, 0b011, rd, rs1, rs2, o) }
func (a *Assembler) AMOANDD(rd, rs1, rs2 GPR, o Ordering)    { a.amo(amoFunct5And, 0b011, rd, rs1, rs2, o) }
func (a *Assembler) AMOORD(rd, rs1, rs2 GPR, o Ordering)     { a.amo(amoFunct5Or, 0b011, rd, rs1, rs2, o) }
func (a *Assembler) AMOMIND(rd, rs1, rs2 GPR, o Ordering)    { a.amo(amoFunct5Min, 0b011, rd, rs1, rs2, o) }
func (a *Assembler) AMOMAXD(rd, rs1, rs2 GPR, o Ordering)    { a.amo(amoFunct5Max, 0b011, rd, rs1, rs2, o) }
func (a *Assembler) AMOMINUD(rd, rs1, rs2 GPR, o Ordering)   { a.amo(amoFunct5MinU, 0b011, rd, rs1, rs2, o) }
func (a *Assembler) AMOMAXUD(rd, rs1, rs2 GPR, o Ordering)   { a.amo(amoFunct5MaxU, 0b011, rd, rs1, rs2, o) }
