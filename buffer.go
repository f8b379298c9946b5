package biscuit

import "encoding/binary"

// DefaultCapacity is the size, in bytes, of the buffer a CodeBuffer
// allocates when none is specified.
const DefaultCapacity = 4096

// CodeBuffer is a byte-addressable write cursor over a contiguous region.
// It either owns a growable region it allocated itself, or borrows a
// fixed-size region supplied by the caller; see NewCodeBuffer and
// NewBorrowedCodeBuffer.
type CodeBuffer struct {
	data   []byte
	cursor int
	owned  bool
}

// NewCodeBuffer allocates a library-owned CodeBuffer able to hold at least
// capacity bytes. Unlike a borrowed buffer, an owned buffer grows past its
// initial capacity on demand rather than failing with CapacityExhaustedError
// (spec.md §4: "library allocates, owned=true"; capacity is a sizing hint,
// not a hard ceiling, since Go has no equivalent to a caller-visible
// raw-pointer region that must not move).
func NewCodeBuffer(capacity int) *CodeBuffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &CodeBuffer{data: make([]byte, capacity), owned: true}
}

// NewBorrowedCodeBuffer wraps a caller-owned region. The CodeBuffer never
// grows this region: an emit that would overflow it panics with
// CapacityExhaustedError. buf must be non-nil and non-empty.
func NewBorrowedCodeBuffer(buf []byte) *CodeBuffer {
	if buf == nil || len(buf) == 0 {
		panic(InvalidPreconditionError{Mnemonic: "NewBorrowedCodeBuffer", Reason: "buffer must be non-null and non-empty"})
	}
	return &CodeBuffer{data: buf, owned: false}
}

// CurrentOffset returns the current cursor position.
func (b *CodeBuffer) CurrentOffset() int {
	return b.cursor
}

// Capacity returns the number of bytes currently backing the buffer. For an
// owned buffer this grows as needed; for a borrowed buffer it is fixed.
func (b *CodeBuffer) Capacity() int {
	return len(b.data)
}

// Bytes returns the portion of the buffer written so far, up to the
// cursor. The returned slice aliases the buffer's storage and must not be
// retained across further emits into an owned (growable) buffer.
func (b *CodeBuffer) Bytes() []byte {
	return b.data[:b.cursor]
}

func (b *CodeBuffer) reserve(width int) {
	need := b.cursor + width
	if need <= len(b.data) {
		return
	}
	if !b.owned {
		panic(CapacityExhaustedError{Offset: b.cursor, Width: width, Capacity: len(b.data)})
	}
	grown := make([]byte, need)
	copy(grown, b.data)
	b.data = grown
}

// Emit16 writes a little-endian 16-bit word at the cursor and advances the
// cursor by 2.
func (b *CodeBuffer) Emit16(word uint16) {
	b.reserve(2)
	binary.LittleEndian.PutUint16(b.data[b.cursor:b.cursor+2], word)
	b.cursor += 2
}

// Emit32 writes a little-endian 32-bit word at the cursor and advances the
// cursor by 4.
func (b *CodeBuffer) Emit32(word uint32) {
	b.reserve(4)
	binary.LittleEndian.PutUint32(b.data[b.cursor:b.cursor+4], word)
	b.cursor += 4
}

// OverwriteAt writes width (2 or 4) bytes of word at offset without moving
// the cursor. offset+width must not exceed the cursor: OverwriteAt can only
// patch bytes that have already been emitted.
func (b *CodeBuffer) OverwriteAt(offset int, word uint32, width int) {
	if offset < 0 || offset+width > b.cursor {
		panic(CapacityExhaustedError{Offset: offset, Width: width, Capacity: b.cursor})
	}
	switch width {
	case 2:
		binary.LittleEndian.PutUint16(b.data[offset:offset+2], uint16(word))
	case 4:
		binary.LittleEndian.PutUint32(b.data[offset:offset+4], word)
	default:
		panic(InvalidPreconditionError{Mnemonic: "OverwriteAt", Reason: "width must be 2 or 4"})
	}
}

// RewindCursor moves the cursor to offset, which must lie within
// [0, CurrentOffset()]. It releases no memory; it only moves the write
// position, enabling in-place overwrite via a subsequent Emit16/Emit32.
func (b *CodeBuffer) RewindCursor(offset int) {
	if offset < 0 || offset > b.cursor {
		panic(InvalidRewindError{Offset: offset, Cursor: b.cursor})
	}
	b.cursor = offset
}
