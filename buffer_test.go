package biscuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeBufferGrows(t *testing.T) {
	b := NewCodeBuffer(2)
	b.Emit32(0xdeadbeef)
	b.Emit32(0x01234567)
	require.Equal(t, 8, b.CurrentOffset())
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde, 0x67, 0x45, 0x23, 0x01}, b.Bytes())
}

func TestCodeBufferDefaultCapacity(t *testing.T) {
	b := NewCodeBuffer(0)
	require.Equal(t, DefaultCapacity, b.Capacity())
}

func TestBorrowedCodeBufferDoesNotGrow(t *testing.T) {
	buf := make([]byte, 4)
	b := NewBorrowedCodeBuffer(buf)
	b.Emit32(0x11223344)
	require.Panics(t, func() { b.Emit16(0x1) })
}

func TestNewBorrowedCodeBufferRejectsEmpty(t *testing.T) {
	require.Panics(t, func() { NewBorrowedCodeBuffer(nil) })
	require.Panics(t, func() { NewBorrowedCodeBuffer([]byte{}) })
}

func TestOverwriteAtPatchesInPlace(t *testing.T) {
	b := NewCodeBuffer(8)
	b.Emit32(0x00000000)
	b.Emit32(0x11111111)
	b.OverwriteAt(0, 0xcafef00d, 4)
	require.Equal(t, []byte{0x0d, 0xf0, 0xfe, 0xca, 0x11, 0x11, 0x11, 0x11}, b.Bytes())
}

func TestOverwriteAtPastCursorPanics(t *testing.T) {
	b := NewCodeBuffer(8)
	b.Emit32(0x0)
	require.Panics(t, func() { b.OverwriteAt(0, 0x0, 8) })
}

func TestRewindCursorAllowsReemit(t *testing.T) {
	b := NewCodeBuffer(8)
	b.Emit32(0x11111111)
	b.Emit32(0x22222222)
	b.RewindCursor(4)
	b.Emit32(0x33333333)
	require.Equal(t, 8, b.CurrentOffset())
	require.Equal(t, []byte{0x11, 0x11, 0x11, 0x11, 0x33, 0x33, 0x33, 0x33}, b.Bytes())
}

func TestRewindCursorOutOfRangePanics(t *testing.T) {
	b := NewCodeBuffer(8)
	b.Emit32(0x0)
	require.Panics(t, func() { b.RewindCursor(-1) })
	require.Panics(t, func() { b.RewindCursor(5) })
}
