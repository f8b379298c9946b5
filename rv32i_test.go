package biscuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestADDIEncoding(t *testing.T) {
	a := NewAssembler(4)
	a.ADDI(A0, X0, 42)
	require.Equal(t, packI(42, uint32(X0), 0b000, uint32(A0), opOpImm), wordAt(t, a.Bytes(), 0))
}

func TestShiftImmediateSplitsFunct6FromShamt(t *testing.T) {
	a := NewAssembler(4)
	a.SRAI(T0, T1, 5)
	require.Equal(t, packShift(0b010000, 5, uint32(T1), 0b101, uint32(T0), opOpImm), wordAt(t, a.Bytes(), 0))
}

func TestImmediateOutOfRangePanics(t *testing.T) {
	a := NewAssembler(4)
	require.Panics(t, func() { a.ADDI(A0, A0, 2048) })
	require.Panics(t, func() { a.ADDI(A0, A0, -2049) })
	require.NotPanics(t, func() { a.ADDI(A0, A0, 2047) })
}

func TestStoreOperandOrder(t *testing.T) {
	a := NewAssembler(4)
	a.SW(A1, SP, 8)
	require.Equal(t, packS(8, uint32(A1), uint32(SP), 0b010, opStore), wordAt(t, a.Bytes(), 0))
}

func TestPseudoInstructionExpansions(t *testing.T) {
	cases := []struct {
		name string
		emit func(a *Assembler)
		want uint32
	}{
		{"NOP", func(a *Assembler) { a.NOP() }, packI(0, 0, 0, 0, opOpImm)},
		{"MV", func(a *Assembler) { a.MV(A0, A1) }, packI(0, uint32(A1), 0, uint32(A0), opOpImm)},
		{"NOT", func(a *Assembler) { a.NOT(A0, A1) }, packI(-1, uint32(A1), 0b100, uint32(A0), opOpImm)},
		{"NEG", func(a *Assembler) { a.NEG(A0, A1) }, packR(0b0100000, uint32(A1), uint32(X0), 0b000, uint32(A0), opOp)},
		{"SEQZ", func(a *Assembler) { a.SEQZ(A0, A1) }, packI(1, uint32(A1), 0b011, uint32(A0), opOpImm)},
		{"RET", func(a *Assembler) { a.RET() }, packI(0, uint32(RA), 0b000, uint32(X0), opJALR)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAssembler(4)
			c.emit(a)
			require.Equal(t, c.want, wordAt(t, a.Bytes(), 0))
		})
	}
}

func TestBranchPseudosReverseOperands(t *testing.T) {
	a := NewAssembler(4)
	a.BLEOffset(A0, A1, 0)
	require.Equal(t, packB(0, uint32(A0), uint32(A1), 0b101, opBranch), wordAt(t, a.Bytes(), 0))
}

func TestBGTUsesSwappedBLT(t *testing.T) {
	a := NewAssembler(4)
	a.BGTOffset(A0, A1, 16)
	require.Equal(t, packB(16, uint32(A0), uint32(A1), 0b100, opBranch), wordAt(t, a.Bytes(), 0))
}
