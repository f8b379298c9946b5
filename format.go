package biscuit

// This file implements the exact bit-layouts of spec.md §4.3's format
// table. Each packer takes already-range-checked-by-caller field values (or
// checks the one field that has ISA-defined range restrictions, namely the
// immediate) and returns the packed 32-bit instruction word. Grounded on
// the teacher's encodeI/encodeS/encodeU in internal/asm/riscv/asm.go, which
// follow the same "mask register fields, range-check the immediate, shift
// into place" shape; generalized here to every format the RISC-V base ISA
// and its extensions define.

func packR(funct7, rs2, rs1, funct3, rd, opcode uint32) uint32 {
	return (funct7&0x7f)<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | (funct3&0x7)<<12 | (rd&0x1f)<<7 | opcode&0x7f
}

func packR4(rs3, funct2, rs2, rs1, funct3, rd, opcode uint32) uint32 {
	return (rs3&0x1f)<<27 | (funct2&0x3)<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | (funct3&0x7)<<12 | (rd&0x1f)<<7 | opcode&0x7f
}

func encodeIImm(imm int32) uint32 {
	if imm < -2048 || imm > 2047 {
		panic(ImmediateOutOfRangeError{Format: "I", Value: int64(imm), Min: -2048, Max: 2047})
	}
	return uint32(imm) & 0xfff
}

func packI(imm int32, rs1, funct3, rd, opcode uint32) uint32 {
	return encodeIImm(imm)<<20 | (rs1&0x1f)<<15 | (funct3&0x7)<<12 | (rd&0x1f)<<7 | opcode&0x7f
}

func encodeSImm(imm int32) uint32 {
	if imm < -2048 || imm > 2047 {
		panic(ImmediateOutOfRangeError{Format: "S", Value: int64(imm), Min: -2048, Max: 2047})
	}
	return uint32(imm) & 0xfff
}

func packS(imm int32, rs2, rs1, funct3, opcode uint32) uint32 {
	u := encodeSImm(imm)
	hi := (u >> 5) & 0x7f
	lo := u & 0x1f
	return hi<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | (funct3&0x7)<<12 | lo<<7 | opcode&0x7f
}

func encodeBImm(imm int32) uint32 {
	if imm < -4096 || imm > 4094 || imm%2 != 0 {
		panic(ImmediateOutOfRangeError{Format: "B", Value: int64(imm), Min: -4096, Max: 4094})
	}
	return uint32(imm) & 0x1fff
}

func packB(imm int32, rs2, rs1, funct3, opcode uint32) uint32 {
	u := encodeBImm(imm)
	b12 := (u >> 12) & 0x1
	b10_5 := (u >> 5) & 0x3f
	b4_1 := (u >> 1) & 0xf
	b11 := (u >> 11) & 0x1
	return b12<<31 | b10_5<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | (funct3&0x7)<<12 | b4_1<<8 | b11<<7 | opcode&0x7f
}

func packU(imm uint32, rd, opcode uint32) uint32 {
	return (imm & 0xfffff) << 12 | (rd&0x1f)<<7 | opcode&0x7f
}

func encodeJImm(imm int32) uint32 {
	if imm < -1048576 || imm > 1048574 || imm%2 != 0 {
		panic(ImmediateOutOfRangeError{Format: "J", Value: int64(imm), Min: -1048576, Max: 1048574})
	}
	return uint32(imm) & 0x1fffff
}

func packJ(imm int32, rd, opcode uint32) uint32 {
	u := encodeJImm(imm)
	b20 := (u >> 20) & 0x1
	b10_1 := (u >> 1) & 0x3ff
	b11 := (u >> 11) & 0x1
	b19_12 := (u >> 12) & 0xff
	return b20<<31 | b10_1<<21 | b11<<20 | b19_12<<12 | (rd&0x1f)<<7 | opcode&0x7f
}

// packAtomic packs the A-extension 32-bit R-type variant: funct5 | aq | rl |
// rs2 | rs1 | funct3 | rd | opcode.
func packAtomic(funct5 uint32, ordering Ordering, rs2, rs1, funct3, rd, opcode uint32) uint32 {
	return (funct5&0x1f)<<27 | ordering.aq()<<26 | ordering.rl()<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | (funct3&0x7)<<12 | (rd&0x1f)<<7 | opcode&0x7f
}

// packFence packs a FENCE-family instruction: fm | pred | succ | rs1 |
// funct3 | rd | opcode.
func packFence(fm uint32, pred, succ FenceOrder, rs1, funct3, rd, opcode uint32) uint32 {
	return (fm&0xf)<<28 | (uint32(pred)&0xf)<<24 | (uint32(succ)&0xf)<<20 | (rs1&0x1f)<<15 | (funct3&0x7)<<12 | (rd&0x1f)<<7 | opcode&0x7f
}

// packShift packs an immediate-shift instruction (SLLI/SRLI/SRAI and their
// W forms). The I-type immediate slot splits into a 6-bit funct6 (0b000000
// for left/logical-right shifts, 0b010000 for arithmetic-right) and a
// 6-bit shamt; RV32's 5-bit shamt forms are the same packing with the
// caller guaranteeing shamt's top bit is zero.
func packShift(funct6, shamt, rs1, funct3, rd, opcode uint32) uint32 {
	return (funct6&0x3f)<<26 | (shamt&0x3f)<<20 | (rs1&0x1f)<<15 | (funct3&0x7)<<12 | (rd&0x1f)<<7 | opcode&0x7f
}

// packCSR packs a Zicsr instruction. The 12-bit CSR address occupies the
// I-type immediate slot unsigned (unlike packI's immediate, it is never
// sign-extended or range-checked against a signed window — spec.md §4.3).
// rs1Field is either a source register's number (CSRRW/CSRRS/CSRRC) or a
// 5-bit zero-extended immediate (the *I variants), both encoded in the same
// bit positions.
func packCSR(csr CSR, rs1Field, funct3, rd, opcode uint32) uint32 {
	return (uint32(csr)&0xfff)<<20 | (rs1Field&0x1f)<<15 | (funct3&0x7)<<12 | (rd&0x1f)<<7 | opcode&0x7f
}
