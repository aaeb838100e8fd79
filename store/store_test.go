package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/errkind"
	"github.com/albatross-network/staking/record"
)

func TestMemStoreValidatorRoundTrip(t *testing.T) {
	s := NewMemStore()
	a := addr.FromBytes([]byte("validator-1"))

	v, err := s.GetValidator(a)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = s.ExpectValidator(a)
	assert.True(t, errkind.Of(err, errkind.NonExistentAddress))

	inactiveFrom := uint32(7)
	require.NoError(t, s.PutValidator(a, &record.Validator{Deposit: coin.Coin(10_000), InactiveFrom: &inactiveFrom}))

	got, err := s.ExpectValidator(a)
	require.NoError(t, err)
	assert.Equal(t, coin.Coin(10_000), got.Deposit)
	require.NotNil(t, got.InactiveFrom)
	assert.Equal(t, uint32(7), *got.InactiveFrom)

	s.RemoveValidator(a)
	got, err = s.GetValidator(a)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemStoreStakerRoundTrip(t *testing.T) {
	s := NewMemStore()
	a := addr.FromBytes([]byte("staker-1"))
	delegation := addr.FromBytes([]byte("validator-1"))

	require.NoError(t, s.PutStaker(a, &record.Staker{ActiveBalance: 500, Delegation: &delegation}))

	got, err := s.ExpectStaker(a)
	require.NoError(t, err)
	require.NotNil(t, got.Delegation)
	assert.Equal(t, delegation, *got.Delegation)
}
