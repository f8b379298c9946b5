package biscuit

// Assembler ties a CodeBuffer together with the per-mnemonic emit methods
// defined across rv32i.go, rv64i.go, zicsr.go, rv32m.go, rv64m.go, rva.go,
// rvf.go, rvd.go, rvq.go, rvc.go and pseudo.go. It is the main exported
// entry point; CodeBuffer and Label are usable standalone but an Assembler
// is what most callers construct.
type Assembler struct {
	buf *CodeBuffer
}

// NewAssembler constructs an Assembler backed by a library-owned,
// growable CodeBuffer. A non-positive capacity falls back to
// DefaultCapacity.
func NewAssembler(capacity int) *Assembler {
	return &Assembler{buf: NewCodeBuffer(capacity)}
}

// NewAssemblerWithBuffer constructs an Assembler over a caller-supplied
// fixed-size buffer; emits that would overflow it panic with
// CapacityExhaustedError rather than growing it.
func NewAssemblerWithBuffer(buf []byte) *Assembler {
	return &Assembler{buf: NewBorrowedCodeBuffer(buf)}
}

// CurrentOffset returns the offset the next emitted instruction will be
// written at.
func (a *Assembler) CurrentOffset() int {
	return a.buf.CurrentOffset()
}

// Bytes returns the instruction stream emitted so far.
func (a *Assembler) Bytes() []byte {
	return a.buf.Bytes()
}

// RewindBuffer moves the write cursor back to offset, which must lie
// within [0, CurrentOffset()]. A subsequent emit overwrites forward from
// there.
func (a *Assembler) RewindBuffer(offset int) {
	a.buf.RewindCursor(offset)
}

// Bind fixes label to the assembler's current offset and patches every
// instruction emitted so far that referenced it, using each fixup site's
// captured encode closure to recompute the referencing word with the now-
// known displacement (spec.md §5's emit-then-patch protocol).
func (a *Assembler) Bind(label *Label) {
	offset := a.buf.CurrentOffset()
	sites := label.bind(offset)
	for _, site := range sites {
		displacement := int32(offset - site.offset)
		a.buf.OverwriteAt(site.offset, site.encode(displacement), site.width)
	}
}

// emitFixed32 emits a fully-determined 32-bit word with no label
// involvement.
func (a *Assembler) emitFixed32(word uint32) {
	a.buf.Emit32(word)
}

// emitFixed16 emits a fully-determined 16-bit word with no label
// involvement.
func (a *Assembler) emitFixed16(word uint16) {
	a.buf.Emit16(word)
}

// emitBranch32 emits a 32-bit PC-relative instruction that targets label.
// If label is already bound the displacement is known immediately and the
// word is emitted complete; otherwise a placeholder (displacement 0) is
// emitted and a fixup site is recorded against label, to be patched by a
// later Bind.
func (a *Assembler) emitBranch32(label *Label, encode func(displacement int32) uint32) {
	site := a.buf.CurrentOffset()
	if label.IsBound() {
		a.buf.Emit32(encode(int32(label.Offset() - site)))
		return
	}
	a.buf.Emit32(encode(0))
	label.addFixup(site, 4, encode)
}

// emitBranch16 is emitBranch32's compressed-instruction counterpart.
func (a *Assembler) emitBranch16(label *Label, encode func(displacement int32) uint32) {
	site := a.buf.CurrentOffset()
	if label.IsBound() {
		a.buf.Emit16(uint16(encode(int32(label.Offset() - site))))
		return
	}
	a.buf.Emit16(uint16(encode(0)))
	label.addFixup(site, 2, encode)
}
