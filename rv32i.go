package biscuit

// This file implements the RV32I base integer instruction set: every
// mnemonic a bare RV32I assembler must expose, per spec.md §7. Branch and
// jump mnemonics come in label-taking and raw-offset-taking pairs — the Go
// answer to the original C++ API's overloaded Label*/int32_t parameters
// (SPEC_FULL.md §11.3): the bare name takes *Label, the Offset-suffixed
// name takes a pre-computed displacement.

const funct3ADD = 0b000

// LUI places the low 20 bits of imm into rd's bits [31:12], zeroing the
// low 12.
func (a *Assembler) LUI(rd GPR, imm int32) {
	a.emitFixed32(packU(uint32(imm), uint32(rd), opLUI))
}

// AUIPC adds the low 20 bits of imm, shifted left by 12, to the current PC
// and writes the result to rd.
func (a *Assembler) AUIPC(rd GPR, imm int32) {
	a.emitFixed32(packU(uint32(imm), uint32(rd), opAUIPC))
}

// JAL jumps to label and stores the return address in rd.
func (a *Assembler) JAL(rd GPR, label *Label) {
	a.emitBranch32(label, func(disp int32) uint32 { return packJ(disp, uint32(rd), opJAL) })
}

// JALOffset jumps to the current PC plus offset and stores the return
// address in rd.
func (a *Assembler) JALOffset(rd GPR, offset int32) {
	a.emitFixed32(packJ(offset, uint32(rd), opJAL))
}

// JALR jumps to rs1+imm and stores the return address in rd.
func (a *Assembler) JALR(rd, rs1 GPR, imm int32) {
	a.emitFixed32(packI(imm, uint32(rs1), 0b000, uint32(rd), opJALR))
}

func (a *Assembler) branch(funct3 uint32, rs1, rs2 GPR, label *Label) {
	a.emitBranch32(label, func(disp int32) uint32 {
		return packB(disp, uint32(rs2), uint32(rs1), funct3, opBranch)
	})
}

func (a *Assembler) branchOffset(funct3 uint32, rs1, rs2 GPR, offset int32) {
	a.emitFixed32(packB(offset, uint32(rs2), uint32(rs1), funct3, opBranch))
}

func (a *Assembler) BEQ(rs1, rs2 GPR, label *Label)          { a.branch(0b000, rs1, rs2, label) }
func (a *Assembler) BEQOffset(rs1, rs2 GPR, offset int32)    { a.branchOffset(0b000, rs1, rs2, offset) }
func (a *Assembler) BNE(rs1, rs2 GPR, label *Label)          { a.branch(0b001, rs1, rs2, label) }
func (a *Assembler) BNEOffset(rs1, rs2 GPR, offset int32)    { a.branchOffset(0b001, rs1, rs2, offset) }
func (a *Assembler) BLT(rs1, rs2 GPR, label *Label)          { a.branch(0b100, rs1, rs2, label) }
func (a *Assembler) BLTOffset(rs1, rs2 GPR, offset int32)    { a.branchOffset(0b100, rs1, rs2, offset) }
func (a *Assembler) BGE(rs1, rs2 GPR, label *Label)          { a.branch(0b101, rs1, rs2, label) }
func (a *Assembler) BGEOffset(rs1, rs2 GPR, offset int32)    { a.branchOffset(0b101, rs1, rs2, offset) }
func (a *Assembler) BLTU(rs1, rs2 GPR, label *Label)         { a.branch(0b110, rs1, rs2, label) }
func (a *Assembler) BLTUOffset(rs1, rs2 GPR, offset int32)   { a.branchOffset(0b110, rs1, rs2, offset) }
func (a *Assembler) BGEU(rs1, rs2 GPR, label *Label)         { a.branch(0b111, rs1, rs2, label) }
func (a *Assembler) BGEUOffset(rs1, rs2 GPR, offset int32)   { a.branchOffset(0b111, rs1, rs2, offset) }

func (a *Assembler) load(funct3 uint32, rd, rs1 GPR, imm int32) {
	a.emitFixed32(packI(imm, uint32(rs1), funct3, uint32(rd), opLoad))
}

func (a *Assembler) LB(rd, rs1 GPR, imm int32)  { a.load(0b000, rd, rs1, imm) }
func (a *Assembler) LH(rd, rs1 GPR, imm int32)  { a.load(0b001, rd, rs1, imm) }
func (a *Assembler) LW(rd, rs1 GPR, imm int32)  { a.load(0b010, rd, rs1, imm) }
func (a *Assembler) LBU(rd, rs1 GPR, imm int32) { a.load(0b100, rd, rs1, imm) }
func (a *Assembler) LHU(rd, rs1 GPR, imm int32) { a.load(0b101, rd, rs1, imm) }

func (a *Assembler) store(funct3 uint32, src, base GPR, imm int32) {
	a.emitFixed32(packS(imm, uint32(src), uint32(base), funct3, opStore))
}

func (a *Assembler) SB(src, base GPR, imm int32) { a.store(0b000, src, base, imm) }
func (a *Assembler) SH(src, base GPR, imm int32) { a.store(0b001, src, base, imm) }
func (a *Assembler) SW(src, base GPR, imm int32) { a.store(0b010, src, base, imm) }

func (a *Assembler) opImm(funct3 uint32, rd, rs1 GPR, imm int32) {
	a.emitFixed32(packI(imm, uint32(rs1), funct3, uint32(rd), opOpImm))
}

func (a *Assembler) ADDI(rd, rs1 GPR, imm int32)  { a.opImm(0b000, rd, rs1, imm) }
func (a *Assembler) SLTI(rd, rs1 GPR, imm int32)  { a.opImm(0b010, rd, rs1, imm) }
func (a *Assembler) SLTIU(rd, rs1 GPR, imm int32) { a.opImm(0b011, rd, rs1, imm) }
func (a *Assembler) XORI(rd, rs1 GPR, imm int32)  { a.opImm(0b100, rd, rs1, imm) }
func (a *Assembler) ORI(rd, rs1 GPR, imm int32)   { a.opImm(0b110, rd, rs1, imm) }
func (a *Assembler) ANDI(rd, rs1 GPR, imm int32)  { a.opImm(0b111, rd, rs1, imm) }

func (a *Assembler) shiftImm(funct6 uint32, rd, rs1 GPR, shamt uint32, maxShamt uint32) {
	if shamt > maxShamt {
		panic(ImmediateOutOfRangeError{Format: "shift amount", Value: int64(shamt), Min: 0, Max: int64(maxShamt)})
	}
	a.emitFixed32(packShift(funct6, shamt, uint32(rs1), 0b001, uint32(rd), opOpImm))
}

func (a *Assembler) SLLI(rd, rs1 GPR, shamt uint32) { a.shiftImm(0b000000, rd, rs1, shamt, 63) }
func (a *Assembler) SRLI(rd, rs1 GPR, shamt uint32) {
	a.emitFixed32(packShift(0b000000, shamt, uint32(rs1), 0b101, uint32(rd), opOpImm))
}
func (a *Assembler) SRAI(rd, rs1 GPR, shamt uint32) {
	a.emitFixed32(packShift(0b010000, shamt, uint32(rs1), 0b101, uint32(rd), opOpImm))
}

func (a *Assembler) op(funct7, funct3 uint32, rd, rs1, rs2 GPR) {
	a.emitFixed32(packR(funct7, uint32(rs2), uint32(rs1), funct3, uint32(rd), opOp))
}

func (a *Assembler) ADD(rd, rs1, rs2 GPR)  { a.op(0b0000000, funct3ADD, rd, rs1, rs2) }
func (a *Assembler) SUB(rd, rs1, rs2 GPR)  { a.op(0b0100000, funct3ADD, rd, rs1, rs2) }
func (a *Assembler) SLL(rd, rs1, rs2 GPR)  { a.op(0b0000000, 0b001, rd, rs1, rs2) }
func (a *Assembler) SLT(rd, rs1, rs2 GPR)  { a.op(0b0000000, 0b010, rd, rs1, rs2) }
func (a *Assembler) SLTU(rd, rs1, rs2 GPR) { a.op(0b0000000, 0b011, rd, rs1, rs2) }
func (a *Assembler) XOR(rd, rs1, rs2 GPR)  { a.op(0b0000000, 0b100, rd, rs1, rs2) }
func (a *Assembler) SRL(rd, rs1, rs2 GPR)  { a.op(0b0000000, 0b101, rd, rs1, rs2) }
func (a *Assembler) SRA(rd, rs1, rs2 GPR)  { a.op(0b0100000, 0b101, rd, rs1, rs2) }
func (a *Assembler) OR(rd, rs1, rs2 GPR)   { a.op(0b0000000, 0b110, rd, rs1, rs2) }
func (a *Assembler) AND(rd, rs1, rs2 GPR)  { a.op(0b0000000, 0b111, rd, rs1, rs2) }

// FENCE orders device/memory accesses in pred against accesses in succ.
func (a *Assembler) FENCE(pred, succ FenceOrder) {
	a.emitFixed32(packFence(0b0000, pred, succ, 0, 0b000, 0, opMiscMem))
}

// FENCETSO is the total-store-order fence: FENCE with fm=1000 and
// pred=succ=RW.
func (a *Assembler) FENCETSO() {
	a.emitFixed32(packFence(0b1000, FenceRW, FenceRW, 0, 0b000, 0, opMiscMem))
}

// FENCEI ensures any prior instruction-memory writes are visible to
// subsequent fetches on this hart.
func (a *Assembler) FENCEI() {
	a.emitFixed32(packI(0, 0, 0b001, 0, opMiscMem))
}

// ECALL transfers control to the execution environment.
func (a *Assembler) ECALL() {
	a.emitFixed32(packI(0, 0, 0b000, 0, opSystem))
}

// EBREAK transfers control to a debugger.
func (a *Assembler) EBREAK() {
	a.emitFixed32(packI(1, 0, 0b000, 0, opSystem))
}
