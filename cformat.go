package biscuit

// This file implements the 16-bit compressed (C-extension) format packers
// and their scrambled-immediate helpers, per spec.md §4.3's Compressed row
// and the RISC-V unprivileged ISA manual's C-extension chapter it
// references. Each packer takes the already-scrambled field values; the
// scramble* helpers below compute those fields from the plain signed/
// unsigned value a caller passes to a mnemonic method.

func packCR(funct4, rdRs1, rs2, op uint32) uint32 {
	return (funct4&0xf)<<12 | (rdRs1&0x1f)<<7 | (rs2&0x1f)<<2 | op&0x3
}

func packCI(funct3, imm12, rd, imm6_2, op uint32) uint32 {
	return (funct3&0x7)<<13 | (imm12&0x1)<<12 | (rd&0x1f)<<7 | (imm6_2&0x1f)<<2 | op&0x3
}

func packCIW(funct3, imm12_5, rdp, op uint32) uint32 {
	return (funct3&0x7)<<13 | (imm12_5&0xff)<<5 | (rdp&0x7)<<2 | op&0x3
}

func packCL(funct3, immHi3, rs1p, immLo2, rdp, op uint32) uint32 {
	return (funct3&0x7)<<13 | (immHi3&0x7)<<10 | (rs1p&0x7)<<7 | (immLo2&0x3)<<5 | (rdp&0x7)<<2 | op&0x3
}

func packCS(funct3, immHi3, rs1p, immLo2, rs2p, op uint32) uint32 {
	return (funct3&0x7)<<13 | (immHi3&0x7)<<10 | (rs1p&0x7)<<7 | (immLo2&0x3)<<5 | (rs2p&0x7)<<2 | op&0x3
}

func packCA(funct6, regP, funct2, rs2p, op uint32) uint32 {
	return (funct6&0x3f)<<10 | (regP&0x7)<<7 | (funct2&0x3)<<5 | (rs2p&0x7)<<2 | op&0x3
}

// packCBAlu packs the structural "CB" layout shared by C.SRLI/C.SRAI/
// C.ANDI: funct3 | bit12 | twobits | rd'/rs1' | lo5 | op. Unlike
// packCBBranch, these three instructions carry a plain (non-scrambled)
// immediate or shift amount in bit12/lo5.
func packCBAlu(funct3, bit12, twobits, regP, lo5, op uint32) uint32 {
	return (funct3&0x7)<<13 | (bit12&0x1)<<12 | (twobits&0x3)<<10 | (regP&0x7)<<7 | (lo5&0x1f)<<2 | op&0x3
}

// packCBBranch packs C.BEQZ/C.BNEZ: funct3 | offset[8|4:3] | rs1' |
// offset[7:6|2:1|5] | op.
func packCBBranch(funct3, offHi3, regP, offLo5, op uint32) uint32 {
	return (funct3&0x7)<<13 | (offHi3&0x7)<<10 | (regP&0x7)<<7 | (offLo5&0x1f)<<2 | op&0x3
}

func packCJ(funct3, field11, op uint32) uint32 {
	return (funct3&0x7)<<13 | (field11&0x7ff)<<2 | op&0x3
}

// cjScramble packs a signed, even PC-relative offset into CJ's
// offset[11|4|9:8|10|6|7|3:1|5] field (C.J/C.JAL).
func cjScramble(offset int32) uint32 {
	if offset < -2048 || offset > 2046 || offset%2 != 0 {
		panic(ImmediateOutOfRangeError{Format: "CJ", Value: int64(offset), Min: -2048, Max: 2046})
	}
	u := uint32(offset) & 0xfff
	b11 := (u >> 11) & 1
	b4 := (u >> 4) & 1
	b9_8 := (u >> 8) & 0x3
	b10 := (u >> 10) & 1
	b6 := (u >> 6) & 1
	b7 := (u >> 7) & 1
	b3_1 := (u >> 1) & 0x7
	b5 := (u >> 5) & 1
	return b11<<10 | b4<<9 | b9_8<<7 | b10<<6 | b6<<5 | b7<<4 | b3_1<<1 | b5
}

// cbScramble packs a signed, even PC-relative offset into CB's
// offset[8|4:3] / offset[7:6|2:1|5] fields (C.BEQZ/C.BNEZ).
func cbScramble(offset int32) (hi3, lo5 uint32) {
	if offset < -256 || offset > 254 || offset%2 != 0 {
		panic(ImmediateOutOfRangeError{Format: "CB", Value: int64(offset), Min: -256, Max: 254})
	}
	u := uint32(offset) & 0x1ff
	b8 := (u >> 8) & 1
	b7 := (u >> 7) & 1
	b6 := (u >> 6) & 1
	b5 := (u >> 5) & 1
	b4 := (u >> 4) & 1
	b3 := (u >> 3) & 1
	b2 := (u >> 2) & 1
	b1 := (u >> 1) & 1
	hi3 = b8<<2 | b4<<1 | b3
	lo5 = b7<<4 | b6<<3 | b2<<2 | b1<<1 | b5
	return
}

// addi4spnScramble packs C.ADDI4SPN's nzuimm[5:4|9:6|2|3] field.
func addi4spnScramble(imm uint32) uint32 {
	if imm == 0 || imm > 1020 || imm%4 != 0 {
		panic(InvalidPreconditionError{Mnemonic: "C.ADDI4SPN", Reason: "immediate must be a nonzero multiple of 4 in [4, 1020]"})
	}
	b5_4 := (imm >> 4) & 0x3
	b9_6 := (imm >> 6) & 0xf
	b2 := (imm >> 2) & 0x1
	b3 := (imm >> 3) & 0x1
	return b5_4<<6 | b9_6<<2 | b2<<1 | b3
}

// addi16spScramble packs C.ADDI16SP's nzimm[9]/nzimm[4|6|8:7|5] fields.
func addi16spScramble(imm int32) (bit12, lo5 uint32) {
	if imm == 0 || imm < -512 || imm > 496 || imm%16 != 0 {
		panic(InvalidPreconditionError{Mnemonic: "C.ADDI16SP", Reason: "immediate must be a nonzero multiple of 16 in [-512, 496]"})
	}
	u := uint32(imm) & 0x3ff
	b9 := (u >> 9) & 1
	b8 := (u >> 8) & 1
	b7 := (u >> 7) & 1
	b6 := (u >> 6) & 1
	b5 := (u >> 5) & 1
	b4 := (u >> 4) & 1
	bit12 = b9
	lo5 = b4<<4 | b6<<3 | b8<<2 | b7<<1 | b5
	return
}

// ciDirectSplit packs a plain signed 6-bit immediate into CI's
// imm[5]@bit12 / imm[4:0]@bits[6:2] fields, used by C.ADDI, C.ADDIW, C.LI,
// and (reinterpreting the same 6 bits as nzimm[17|16:12]) C.LUI.
func ciDirectSplit(imm int32) (bit12, lo5 uint32) {
	if imm < -32 || imm > 31 {
		panic(ImmediateOutOfRangeError{Format: "CI", Value: int64(imm), Min: -32, Max: 31})
	}
	u := uint32(imm) & 0x3f
	return (u >> 5) & 1, u & 0x1f
}

// wordOffsetScramble packs a 4-byte-aligned unsigned offset in [0,124] into
// CL/CS's offset[5:3] / offset[2|6] fields (C.LW/C.SW/C.FLW/C.FSW).
func wordOffsetScramble(imm uint32) (hi3, lo2 uint32) {
	if imm > 124 || imm%4 != 0 {
		panic(ImmediateOutOfRangeError{Format: "CL/CS word", Value: int64(imm), Min: 0, Max: 124})
	}
	b6 := (imm >> 6) & 1
	b5 := (imm >> 5) & 1
	b4 := (imm >> 4) & 1
	b3 := (imm >> 3) & 1
	b2 := (imm >> 2) & 1
	hi3 = b5<<2 | b4<<1 | b3
	lo2 = b2<<1 | b6
	return
}

// doubleOffsetScramble packs an 8-byte-aligned unsigned offset in [0,248]
// into CL/CS's offset[5:3] / offset[7:6] fields (C.LD/C.SD/C.FLD/C.FSD).
func doubleOffsetScramble(imm uint32) (hi3, lo2 uint32) {
	if imm > 248 || imm%8 != 0 {
		panic(ImmediateOutOfRangeError{Format: "CL/CS double", Value: int64(imm), Min: 0, Max: 248})
	}
	b7 := (imm >> 7) & 1
	b6 := (imm >> 6) & 1
	b5 := (imm >> 5) & 1
	b4 := (imm >> 4) & 1
	b3 := (imm >> 3) & 1
	hi3 = b5<<2 | b4<<1 | b3
	lo2 = b7<<1 | b6
	return
}

// quadOffsetScramble packs a 16-byte-aligned unsigned offset in [0,496]
// into CL/CS's offset[8|7:6] / offset[5|4] fields (C.LQ/C.SQ, RV128).
func quadOffsetScramble(imm uint32) (hi3, lo2 uint32) {
	if imm > 496 || imm%16 != 0 {
		panic(ImmediateOutOfRangeError{Format: "CL/CS quad", Value: int64(imm), Min: 0, Max: 496})
	}
	b8 := (imm >> 8) & 1
	b7 := (imm >> 7) & 1
	b6 := (imm >> 6) & 1
	b5 := (imm >> 5) & 1
	b4 := (imm >> 4) & 1
	hi3 = b8<<2 | b7<<1 | b6
	lo2 = b5<<1 | b4
	return
}
