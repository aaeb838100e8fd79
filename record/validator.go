// Package record defines the staking contract's persisted entity types —
// Validator, Staker and Tombstone — and the lifecycle predicates the
// transaction and inherent handlers gate on. Field layout follows spec §3;
// predicate names follow spec §4.1.
package record

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/errkind"
)

// Validator is the on-chain record for a registered validator.
type Validator struct {
	// SigningKey is the address authorized to submit control transactions
	// (Deactivate/Reactivate) on the validator's behalf, distinct from the
	// address that created/owns the record.
	SigningKey    addr.Address
	VotingKey     [32]byte // opaque consensus voting key, never compared
	RewardAddress addr.Address
	SignalData    []byte // optional; nil when unset

	Deposit      coin.Coin // mandatory bond, constant once set
	TotalStake   coin.Coin // Deposit + sum of delegating stakers' active balance
	NumStakers   uint64
	InactiveFrom *uint32 `rlp:"nil"` // nil while active
	JailedFrom   *uint32 `rlp:"nil"` // nil while not jailed
	RetiredFrom  *uint32 `rlp:"nil"` // set together with Retired
	Retired      bool
}

// Clone returns a deep copy. A nil SignalData stays nil and a non-nil one,
// even if empty, stays non-nil.
func (v *Validator) Clone() *Validator {
	cp := *v
	if v.SignalData != nil {
		cp.SignalData = append([]byte{}, v.SignalData...)
	}
	if v.InactiveFrom != nil {
		n := *v.InactiveFrom
		cp.InactiveFrom = &n
	}
	if v.JailedFrom != nil {
		n := *v.JailedFrom
		cp.JailedFrom = &n
	}
	if v.RetiredFrom != nil {
		n := *v.RetiredFrom
		cp.RetiredFrom = &n
	}
	return &cp
}

// IsActive reports whether the validator currently belongs to the active set
// (spec invariant §3.5).
func (v *Validator) IsActive() bool {
	return v.JailedFrom == nil && v.InactiveFrom == nil && !v.Retired
}

// IsJailedActive reports whether the validator is jailed but not yet
// deactivated through the normal Deactivate path (used by delete-eligibility
// checks that must also reject a validator still serving an active jail).
func (v *Validator) IsJailedActive() bool {
	return v.JailedFrom != nil && v.InactiveFrom == nil && !v.Retired
}

// EnforceRetireAndRelease fails with InvalidForState if the validator is not
// retired, and with InvalidForState if fewer than releaseWindow batches have
// elapsed since RetiredFrom.
func (v *Validator) EnforceRetireAndRelease(currentBatch uint32, releaseWindow uint32) error {
	if !v.Retired || v.RetiredFrom == nil {
		return errkind.New(errkind.InvalidForState, "validator is not retired")
	}
	if currentBatch < *v.RetiredFrom+releaseWindow {
		return errkind.Newf(errkind.InvalidForState,
			"validator not released: current batch %d < %d+%d", currentBatch, *v.RetiredFrom, releaseWindow)
	}
	return nil
}

// CanDeleteValidator additionally verifies totalValue equals the deposit and
// the validator isn't serving an active jail.
func (v *Validator) CanDeleteValidator(totalValue coin.Coin, currentBatch uint32, releaseWindow uint32) error {
	if err := v.EnforceRetireAndRelease(currentBatch, releaseWindow); err != nil {
		return err
	}
	if v.IsJailedActive() {
		return errkind.New(errkind.InvalidForState, "validator is jailed")
	}
	if totalValue != v.Deposit {
		return errkind.Newf(errkind.InvalidCoinValue, "total value %d does not equal deposit %d", totalValue, v.Deposit)
	}
	return nil
}
