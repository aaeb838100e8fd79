package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-network/staking/addr"
)

func TestActiveSetOrderedIsDeterministic(t *testing.T) {
	s := NewActiveSet()
	b := addr.FromBytes([]byte("b"))
	a := addr.FromBytes([]byte("a"))
	c := addr.FromBytes([]byte("c"))

	s.Add(b, 1)
	s.Add(a, 2)
	s.Add(c, 3)

	ordered := s.Ordered()
	require.Len(t, ordered, 3)
	assert.True(t, ordered[0].Compare(ordered[1]) < 0)
	assert.True(t, ordered[1].Compare(ordered[2]) < 0)
}

func TestActiveSetCacheInvalidatedOnMutation(t *testing.T) {
	s := NewActiveSet()
	a := addr.FromBytes([]byte("a"))
	s.Add(a, 1)
	_ = s.Ordered()

	b := addr.FromBytes([]byte("b"))
	s.Add(b, 2)

	assert.Len(t, s.Ordered(), 2)
}

func TestStateCreditDebit(t *testing.T) {
	s := New()
	require.NoError(t, s.Credit(100))
	assert.Equal(t, uint64(100), uint64(s.Balance))

	require.NoError(t, s.Debit(40))
	assert.Equal(t, uint64(60), uint64(s.Balance))

	assert.Error(t, s.Debit(1000))
}
