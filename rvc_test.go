package biscuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func word16At(t *testing.T, buf []byte, offset int) uint16 {
	t.Helper()
	require.GreaterOrEqual(t, len(buf), offset+2)
	return uint16(buf[offset]) | uint16(buf[offset+1])<<8
}

func TestCNOPEncoding(t *testing.T) {
	a := NewAssembler(2)
	a.CNOP()
	require.Equal(t, uint16(0x0001), word16At(t, a.Bytes(), 0))
}

func TestCUNDEFEncoding(t *testing.T) {
	a := NewAssembler(2)
	a.CUNDEF()
	require.Equal(t, uint16(0x0000), word16At(t, a.Bytes(), 0))
}

func TestCompressedRegisterWindowEnforced(t *testing.T) {
	a := NewAssembler(2)
	require.Panics(t, func() { a.CLW(X9, X0, 0) })
	require.NotPanics(t, func() { a.CLW(X9, X8, 0) })
}

func TestCLUIRejectsReservedDestinations(t *testing.T) {
	a := NewAssembler(2)
	require.Panics(t, func() { a.CLUI(X0, 1) })
	require.Panics(t, func() { a.CLUI(SP, 1) })
	require.NotPanics(t, func() { a.CLUI(A0, 1) })
}

func TestCADDI4SPNRejectsZeroAndMisaligned(t *testing.T) {
	require.Panics(t, func() { addi4spnScramble(0) })
	require.Panics(t, func() { addi4spnScramble(3) })
	require.NotPanics(t, func() { addi4spnScramble(4) })
}

func TestCJRoundTripsThroughForwardFixup(t *testing.T) {
	a := NewAssembler(8)
	label := NewLabel()
	a.CJ(label)
	a.CNOP()
	a.CNOP()
	a.Bind(label)

	require.Equal(t, uint16(packCJ(0b101, cjScramble(6), cqQuadrant1)), word16At(t, a.Bytes(), 0))
}

func TestCBEQZBackwardBranch(t *testing.T) {
	a := NewAssembler(8)
	label := NewLabel()
	a.CNOP()
	a.Bind(label)
	a.CNOP()
	a.CBEQZ(X9, label)

	hi, lo := cbScramble(-2)
	require.Equal(t, uint16(packCBBranch(0b110, hi, compressedGPR(X9), lo, cqQuadrant1)), word16At(t, a.Bytes(), 4))
}

func TestCRFormatVariants(t *testing.T) {
	a := NewAssembler(8)
	a.CMV(A0, A1)
	a.CADD(A0, A1)
	a.CJR(RA)
	a.CEBREAK()

	require.Equal(t, uint16(packCR(crFunct4Jr, uint32(A0), uint32(A1), cqQuadrant2)), word16At(t, a.Bytes(), 0))
	require.Equal(t, uint16(packCR(crFunct4Jx, uint32(A0), uint32(A1), cqQuadrant2)), word16At(t, a.Bytes(), 2))
	require.Equal(t, uint16(packCR(crFunct4Jr, uint32(RA), 0, cqQuadrant2)), word16At(t, a.Bytes(), 4))
	require.Equal(t, uint16(packCR(crFunct4Jx, 0, 0, cqQuadrant2)), word16At(t, a.Bytes(), 6))
}
