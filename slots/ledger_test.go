package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albatross-network/staking/addr"
)

func TestRegisterRange(t *testing.T) {
	l := New()
	v := addr.FromBytes([]byte("v"))
	l.RegisterRange(v, Range{From: 10, To: 20})

	for s := uint32(10); s < 20; s++ {
		assert.True(t, l.PreviousBatch.Contains(s))
		assert.True(t, l.CurrentBatch.Contains(s))
	}
	assert.False(t, l.PreviousBatch.Contains(20))
	assert.Len(t, l.CurrentEpochJailRanges[v], 1)
}

func TestRegisterSlotIdempotent(t *testing.T) {
	l := New()
	assert.True(t, l.RegisterSlotCurrentBatch(15))
	assert.False(t, l.RegisterSlotCurrentBatch(15))
}

func TestFinalizeBatch(t *testing.T) {
	l := New()
	l.CurrentBatch.Add(3)
	l.CurrentBatch.Add(7)
	l.PreviousBatch.Add(1)

	l.FinalizeBatch()

	assert.True(t, l.PreviousBatch.Contains(3))
	assert.True(t, l.PreviousBatch.Contains(7))
	assert.False(t, l.PreviousBatch.Contains(1))
	assert.Equal(t, uint64(0), l.CurrentBatch.GetCardinality())
}

func TestCloneIsIndependent(t *testing.T) {
	l := New()
	v := addr.FromBytes([]byte("v"))
	l.RegisterRange(v, Range{From: 1, To: 2})

	clone := l.Clone()
	l.CurrentBatch.Add(99)
	assert.False(t, clone.CurrentBatch.Contains(99))
}
