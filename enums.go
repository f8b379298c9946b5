package biscuit

// CSR identifies a 12-bit-addressed control/status register. Arbitrary
// 12-bit values are accepted; the named constants below cover the
// registers spec.md §6 requires at minimum.
type CSR uint32

const (
	FFlags CSR = 0x001 // Floating-point accrued exceptions.
	FRM    CSR = 0x002 // Floating-point dynamic rounding mode.
	FCSR   CSR = 0x003 // frm + fflags.

	Cycle    CSR = 0xC00 // Cycle counter, for RDCYCLE.
	Time     CSR = 0xC01 // Timer, for RDTIME.
	InstRet  CSR = 0xC02 // Instructions-retired counter, for RDINSTRET.
	CycleH   CSR = 0xC80 // Upper 32 bits of Cycle, RV32I only.
	TimeH    CSR = 0xC81 // Upper 32 bits of Time, RV32I only.
	InstRetH CSR = 0xC82 // Upper 32 bits of InstRet, RV32I only.
)

// FenceOrder is a bit mask over the {I, O, R, W} predecessor/successor sets
// a FENCE instruction orders.
type FenceOrder uint32

const (
	FenceW FenceOrder = 1 // Write.
	FenceR FenceOrder = 2 // Read.
	FenceO FenceOrder = 4 // Device output.
	FenceI FenceOrder = 8 // Device input.

	FenceRW FenceOrder = FenceR | FenceW

	FenceIO  FenceOrder = FenceI | FenceO
	FenceIR  FenceOrder = FenceI | FenceR
	FenceIW  FenceOrder = FenceI | FenceW
	FenceIRW FenceOrder = FenceI | FenceR | FenceW

	FenceOI  FenceOrder = FenceO | FenceI
	FenceOR  FenceOrder = FenceO | FenceR
	FenceOW  FenceOrder = FenceO | FenceW
	FenceORW FenceOrder = FenceO | FenceR | FenceW

	FenceIORW FenceOrder = FenceI | FenceO | FenceR | FenceW
)

// Ordering selects the acquire/release semantics of an A-extension atomic
// instruction.
type Ordering uint32

const (
	OrderingNone Ordering = 0                      // aq=0, rl=0.
	OrderingRL   Ordering = 1                      // Release: aq=0, rl=1.
	OrderingAQ   Ordering = 2                      // Acquire: aq=1, rl=0.
	OrderingAQRL Ordering = OrderingAQ | OrderingRL // Acquire-release: aq=1, rl=1.
)

func (o Ordering) aq() uint32 { return uint32(o) >> 1 & 1 }
func (o Ordering) rl() uint32 { return uint32(o) & 1 }

// RMode is the 3-bit floating-point rounding-mode field.
type RMode uint32

const (
	RNE RMode = 0b000 // Round to nearest, ties to even.
	RTZ RMode = 0b001 // Round towards zero.
	RDN RMode = 0b010 // Round down (towards -inf).
	RUP RMode = 0b011 // Round up (towards +inf).
	RMM RMode = 0b100 // Round to nearest, ties to max magnitude.
	DYN RMode = 0b111 // Dynamic rounding mode, read from the FRM CSR.
)
