package biscuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLRWOrderings(t *testing.T) {
	cases := []struct {
		ordering Ordering
		want     uint32
	}{
		{OrderingNone, 0x1007AFAF},
		{OrderingAQ, 0x1407AFAF},
		{OrderingRL, 0x1207AFAF},
		{OrderingAQRL, 0x1607AFAF},
	}
	for _, c := range cases {
		a := NewAssembler(4)
		a.LRW(X31, X15, c.ordering)
		require.Equal(t, c.want, wordAt(t, a.Bytes(), 0), "ordering %v", c.ordering)
	}
}

func TestCSRVectors(t *testing.T) {
	cases := []struct {
		name string
		emit func(a *Assembler)
		want uint32
	}{
		{"CSRRC", func(a *Assembler) { a.CSRRC(X31, Cycle, X15) }, 0xC007BFF3},
		{"CSRRS", func(a *Assembler) { a.CSRRS(X31, Cycle, X15) }, 0xC007AFF3},
		{"CSRRW", func(a *Assembler) { a.CSRRW(X31, Cycle, X15) }, 0xC0079FF3},
		{"CSRRCI", func(a *Assembler) { a.CSRRCI(X31, Cycle, 15) }, 0xC007FFF3},
		{"CSRRSI", func(a *Assembler) { a.CSRRSI(X31, Cycle, 15) }, 0xC007EFF3},
		{"CSRRWI", func(a *Assembler) { a.CSRRWI(X31, Cycle, 15) }, 0xC007DFF3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAssembler(4)
			c.emit(a)
			require.Equal(t, c.want, wordAt(t, a.Bytes(), 0))
		})
	}
}

func TestForwardBranchPatchesDisplacement(t *testing.T) {
	a := NewAssembler(16)
	label := NewLabel()
	a.BEQ(RA, X2, label)
	a.NOP()
	a.NOP()
	a.Bind(label)

	require.True(t, label.IsBound())
	require.Equal(t, 12, label.Offset())
	require.Equal(t, packB(12, uint32(X2), uint32(RA), 0b000, opBranch), wordAt(t, a.Bytes(), 0))
}

func TestBackwardBranchPatchesNegativeDisplacement(t *testing.T) {
	a := NewAssembler(16)
	label := NewLabel()
	a.NOP()
	a.Bind(label)
	a.NOP()
	a.BEQ(RA, X2, label)

	require.Equal(t, packB(-4, uint32(X2), uint32(RA), 0b000, opBranch), wordAt(t, a.Bytes(), 8))
}

func TestBindWithNoPendingReferencesIsANoop(t *testing.T) {
	a := NewAssembler(16)
	label := NewLabel()
	a.NOP()
	require.NotPanics(t, func() { a.Bind(label) })
	require.True(t, label.IsBound())
}

func TestRewindBufferReemitsIdentically(t *testing.T) {
	build := func(a *Assembler) {
		a.ADDI(A0, X0, 42)
		a.ADD(A1, A0, A0)
		a.SW(A1, SP, 0)
		a.LUI(T0, 0x12345)
		a.JALOffset(X0, 0)
	}

	a := NewAssembler(64)
	build(a)
	first := append([]byte(nil), a.Bytes()...)

	a.RewindBuffer(0)
	build(a)

	require.Equal(t, first, a.Bytes())
}

func TestLabelBoundAtEmitTimeIsEncodedImmediately(t *testing.T) {
	a := NewAssembler(16)
	label := NewLabel()
	a.NOP()
	a.Bind(label)
	a.NOP()
	a.JAL(RA, label)

	require.Equal(t, packJ(-4, uint32(RA), opJAL), wordAt(t, a.Bytes(), 8))
}

func wordAt(t *testing.T, buf []byte, offset int) uint32 {
	t.Helper()
	require.GreaterOrEqual(t, len(buf), offset+4)
	return uint32(buf[offset]) | uint32(buf[offset+1])<<8 | uint32(buf[offset+2])<<16 | uint32(buf[offset+3])<<24
}
