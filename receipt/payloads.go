package receipt

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
)

// UpdateValidator carries the pre-mutation field values UpdateValidator
// overwrote, so revert can restore them verbatim.
type UpdateValidator struct {
	OldSigningKey    addr.Address
	OldVotingKey     [32]byte
	OldRewardAddress addr.Address
	OldSignalData    []byte
}

// InactiveFrom carries a single prior InactiveFrom value. Used by
// DeactivateValidator revert path's counterpart (ReactivateValidator commit)
// and by RetireValidator.
type InactiveFrom struct {
	OldInactiveFrom *uint32 `rlp:"nil"`
}

// UpdateStaker carries UpdateStaker's prior delegation, InactiveFrom, and
// (since reactivate_all_stake collapses InactiveBalance into ActiveBalance,
// losing the split) the prior balance pair needed to restore both exactly.
type UpdateStaker struct {
	OldDelegation      *addr.Address `rlp:"nil"`
	OldInactiveFrom    *uint32       `rlp:"nil"`
	OldActiveBalance   coin.Coin
	OldInactiveBalance coin.Coin
}

// SetActiveStake carries SetActiveStake's prior active balance and
// InactiveFrom.
type SetActiveStake struct {
	OldActiveBalance coin.Coin
	OldInactiveFrom  *uint32 `rlp:"nil"`
}

// DeleteValidator carries the full prior validator record so revert can
// resurrect it byte-for-byte.
type DeleteValidator struct {
	SigningKey    addr.Address
	VotingKey     [32]byte
	RewardAddress addr.Address
	SignalData    []byte
	Deposit       coin.Coin
	TotalStake    coin.Coin
	NumStakers    uint64
	InactiveFrom  *uint32 `rlp:"nil"`
	JailedFrom    *uint32 `rlp:"nil"`
	RetiredFrom   *uint32 `rlp:"nil"`
	Retired       bool

	// HadTombstone/TombstoneNumRemaining record whether DeleteValidator left
	// a Tombstone, so revert can remove it again exactly.
	HadTombstone          bool
	TombstoneNumRemaining uint64
}

// RemoveStake carries the deleted staker's delegation, if any, needed to
// decrement the validator's NumStakers (and possibly restore a tombstone)
// on revert.
type RemoveStake struct {
	Delegation *addr.Address `rlp:"nil"`
}

// Jail carries Jail's pre-mutation snapshot: whether the validator was newly deactivated, the prior bitset
// bytes for both batches, and the prior JailedFrom — so re-jailing an
// already-jailed validator is idempotent and revertible.
type Jail struct {
	NewlyDeactivated bool
	OldPreviousBatch []byte
	OldCurrentBatch  []byte
	OldJailedFrom    *uint32 `rlp:"nil"`
}

// Penalize carries Penalize's pre-mutation flags: whether the validator was
// newly deactivated and whether either batch bitset was newly punished.
type Penalize struct {
	NewlyDeactivated           bool
	NewlyPunishedPreviousBatch bool
	NewlyPunishedCurrentBatch  bool
	Slot                       uint16
}
