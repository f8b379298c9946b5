package biscuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFADDSEncoding(t *testing.T) {
	a := NewAssembler(4)
	a.FADDS(FA0, FA1, FA2, RNE)
	require.Equal(t, packR(0b0000000, uint32(FA2), uint32(FA1), uint32(RNE), uint32(FA0), opOpFP), wordAt(t, a.Bytes(), 0))
}

func TestFMADDDUsesR4Format(t *testing.T) {
	a := NewAssembler(4)
	a.FMADDD(FA0, FA1, FA2, FA3, DYN)
	require.Equal(t, packR4(uint32(FA3), fmtD, uint32(FA2), uint32(FA1), uint32(DYN), uint32(FA0), opMADD), wordAt(t, a.Bytes(), 0))
}

func TestFSGNJPseudosDeriveFromSignInjection(t *testing.T) {
	a := NewAssembler(4)
	a.FABSS(FA0, FA1)
	require.Equal(t, packR(0b0010000, uint32(FA1), uint32(FA1), 0b010, uint32(FA0), opOpFP), wordAt(t, a.Bytes(), 0))
}

func TestFCVTSelectsRs2PerTarget(t *testing.T) {
	a := NewAssembler(4)
	a.FCVTWUS(A0, FA0, RTZ)
	require.Equal(t, packR(0b1100000, 0b00001, uint32(FA0), uint32(RTZ), uint32(A0), opOpFP), wordAt(t, a.Bytes(), 0))
}

func TestFCVTQAndBackNarrowing(t *testing.T) {
	a := NewAssembler(8)
	a.FCVTSQ(FA0, FA1, RNE)
	a.FCVTQS(FA1, FA0, RNE)
	require.Equal(t, packR(0b0100000, 0b00011, uint32(FA1), uint32(RNE), uint32(FA0), opOpFP), wordAt(t, a.Bytes(), 0))
	require.Equal(t, packR(0b0100011, 0b00000, uint32(FA0), uint32(RNE), uint32(FA1), opOpFP), wordAt(t, a.Bytes(), 4))
}
