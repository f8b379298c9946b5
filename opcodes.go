package biscuit

// Base opcode (bits [6:0]) values, named per the RISC-V unprivileged ISA
// manual's opcode map.
const (
	opLoad     = 0x03
	opLoadFP   = 0x07
	opMiscMem  = 0x0f
	opOpImm    = 0x13
	opAUIPC    = 0x17
	opOpImm32  = 0x1b
	opStore    = 0x23
	opStoreFP  = 0x27
	opAMO      = 0x2f
	opOp       = 0x33
	opLUI      = 0x37
	opOp32     = 0x3b
	opMADD     = 0x43
	opMSUB     = 0x47
	opNMSUB    = 0x4b
	opNMADD    = 0x4f
	opOpFP     = 0x53
	opBranch   = 0x63
	opJALR     = 0x67
	opJAL      = 0x6f
	opSystem   = 0x73
)

// Compressed-instruction quadrant selectors (bits [1:0]).
const (
	cqQuadrant0 = 0x0
	cqQuadrant1 = 0x1
	cqQuadrant2 = 0x2
)
