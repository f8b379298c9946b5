package biscuit

// Label is a forward- or backward-reference target within a single
// CodeBuffer. It starts out unbound and accumulates a pending-fixup chain
// as it is passed to branch/jump emit calls; Bind resolves every pending
// fixup and fixes the label's offset.
//
// A Label must be bound at most once and is reachable only from the thread
// that emits and binds it (spec.md §5).
type Label struct {
	bound  bool
	offset int
	sites  []fixupSite
}

// fixupSite records one pending reference to an unbound label. encode is a
// closure captured at emit time that already knows every bit of the
// referencing instruction except the immediate/displacement (spec.md §9's
// design note (b): record the format alongside the fixup site rather than
// rereading and re-recognizing it from the opcode bytes).
type fixupSite struct {
	offset int
	width  int
	encode func(displacement int32) uint32
}

// NewLabel constructs an unbound label with no pending fixups.
func NewLabel() *Label {
	return &Label{}
}

// IsBound reports whether the label has been bound to a location.
func (l *Label) IsBound() bool {
	return l.bound
}

// Offset returns the label's bound location offset. It panics if the label
// is not yet bound; callers should check IsBound first if that is a
// possibility.
func (l *Label) Offset() int {
	if !l.bound {
		panic(InvalidPreconditionError{Mnemonic: "Label.Offset", Reason: "label is not bound"})
	}
	return l.offset
}

// Check returns a DanglingLabel-style diagnostic error if the label was
// referenced by emitted instructions but never bound. It is an optional
// diagnostic (spec.md §7) a caller may run before discarding a Label;
// nothing calls it automatically.
func (l *Label) Check() error {
	if !l.bound && len(l.sites) > 0 {
		return InvalidPreconditionError{Mnemonic: "Label", Reason: "referenced by emitted instructions but never bound"}
	}
	return nil
}

// addFixup records a pending reference at the current emit site. It is the
// encoder's job (never the caller's) to populate encode with a closure that
// reproduces every static bit of the instruction once the real displacement
// is known.
func (l *Label) addFixup(offset, width int, encode func(displacement int32) uint32) {
	l.sites = append(l.sites, fixupSite{offset: offset, width: width, encode: encode})
}

// bind fixes the label's offset and hands back every pending fixup site so
// the caller (Assembler.Bind) can patch the buffer. It panics with
// DoubleBindError if the label is already bound.
func (l *Label) bind(offset int) []fixupSite {
	if l.bound {
		panic(DoubleBindError{})
	}
	l.bound = true
	l.offset = offset
	sites := l.sites
	l.sites = nil
	return sites
}
