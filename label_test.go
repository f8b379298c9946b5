package biscuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelCheckFlagsUnboundReference(t *testing.T) {
	l := NewLabel()
	require.NoError(t, l.Check())
	l.addFixup(0, 4, func(int32) uint32 { return 0 })
	require.Error(t, l.Check())
}

func TestLabelOffsetPanicsUntilBound(t *testing.T) {
	l := NewLabel()
	require.Panics(t, func() { l.Offset() })
	l.bind(12)
	require.Equal(t, 12, l.Offset())
}

func TestLabelDoubleBindPanics(t *testing.T) {
	l := NewLabel()
	l.bind(0)
	require.Panics(t, func() { l.bind(4) })
}
