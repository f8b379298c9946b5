package biscuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulDivEncodings(t *testing.T) {
	a := NewAssembler(4)
	a.MUL(A0, A1, A2)
	require.Equal(t, packR(mFunct7, uint32(A2), uint32(A1), 0b000, uint32(A0), opOp), wordAt(t, a.Bytes(), 0))
}

func TestDivuwUsesWordOpcode(t *testing.T) {
	a := NewAssembler(4)
	a.DIVUW(A0, A1, A2)
	require.Equal(t, packR(mFunct7, uint32(A2), uint32(A1), 0b101, uint32(A0), opOp32), wordAt(t, a.Bytes(), 0))
}
