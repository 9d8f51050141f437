package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecorderWrapsAtCapacity(t *testing.T) {
	r := New(3)
	for i := 0; i < 5; i++ {
		r.Record(Entry{PC: uint16(i), Opcode: uint8(i), Cycles: 1})
	}
	require.Equal(t, 3, r.Len())
	entries := r.Entries()
	require.Equal(t, []Entry{
		{PC: 2, Opcode: 2, Cycles: 1},
		{PC: 3, Opcode: 3, Cycles: 1},
		{PC: 4, Opcode: 4, Cycles: 1},
	}, entries)
}

func TestRecorderBelowCapacityPreservesOrder(t *testing.T) {
	r := New(4)
	r.Record(Entry{PC: 1})
	r.Record(Entry{PC: 2})
	require.Equal(t, 2, r.Len())
	require.Equal(t, []Entry{{PC: 1}, {PC: 2}}, r.Entries())
}

func TestResetClearsEntries(t *testing.T) {
	r := New(2)
	r.Record(Entry{PC: 1})
	r.Reset()
	require.Equal(t, 0, r.Len())
	require.Empty(t, r.Entries())
}
