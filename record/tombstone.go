package record

import "github.com/albatross-network/staking/coin"

// Tombstone replaces a deleted validator that still has delegating stakers,
// so those stakers can still locate where their stake was (spec §9).
type Tombstone struct {
	TotalStake         coin.Coin
	NumRemainingStakers uint64
}

// Clone returns a copy.
func (t *Tombstone) Clone() *Tombstone {
	cp := *t
	return &cp
}

// IsExhausted reports whether the last staker referencing this tombstone has
// left, at which point the tombstone itself is removed.
func (t *Tombstone) IsExhausted() bool {
	return t.NumRemainingStakers == 0
}
