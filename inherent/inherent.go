// Package inherent implements the consensus-injected (not user-signed)
// staking mutations (spec §4.6, C8): Jail, Penalize, FinalizeBatch,
// FinalizeEpoch, Reward. Reward is rejected outright — reward distribution
// never targets the staking contract. FinalizeBatch/FinalizeEpoch
// deliberately break revert symmetry (spec §9): they return InvalidForTarget
// on revert rather than attempt one, the one place in this engine where
// "no state change on error" from §7 does not apply to reverts themselves.
package inherent

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/aggregate"
	"github.com/albatross-network/staking/blockstate"
	"github.com/albatross-network/staking/errkind"
	"github.com/albatross-network/staking/receipt"
	"github.com/albatross-network/staking/slots"
	"github.com/albatross-network/staking/store"
	"github.com/albatross-network/staking/txlog"
)

// Kind tags which inherent variant an Inherent carries.
type Kind int

const (
	KindJail Kind = iota
	KindPenalize
	KindFinalizeBatch
	KindFinalizeEpoch
	KindReward
)

// Inherent is the parsed payload for every consensus inherent. Only the
// fields relevant to Kind are read; see the per-field comments.
type Inherent struct {
	Kind Kind

	// Validator is Jail/Penalize's target.
	Validator addr.Address

	// Range is Jail's slot range.
	Range slots.Range

	// Slot, RegisterPreviousBatch, RegisterCurrentBatch are Penalize's
	// fields: the offending slot, and which batch bitset(s) the offense
	// falls into depending on where the offending block lands relative to
	// the batch boundary.
	Slot                  uint16
	RegisterPreviousBatch bool
	RegisterCurrentBatch  bool
}

// Commit dispatches an inherent to its handler (spec §4.6).
func Commit(ledger *slots.Ledger, ag *aggregate.State, bs blockstate.BlockState, inh Inherent, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	switch inh.Kind {
	case KindJail:
		return commitJail(ledger, ag, bs, inh, w, log)
	case KindPenalize:
		return commitPenalize(ledger, ag, bs, inh, w, log)
	case KindFinalizeBatch:
		ledger.FinalizeBatch()
		log.Push(txlog.Entry{Kind: txlog.FinalizeBatch})
		return nil, nil
	case KindFinalizeEpoch:
		ledger.FinalizeEpoch()
		log.Push(txlog.Entry{Kind: txlog.FinalizeEpoch})
		return nil, nil
	case KindReward:
		return nil, errkind.New(errkind.InvalidForTarget, "reward inherents do not target the staking contract")
	default:
		return nil, errkind.New(errkind.InvalidForRecipient, "unknown inherent kind")
	}
}

// Revert is the pointwise inverse of Commit, except for FinalizeBatch and
// FinalizeEpoch, which are never revertible.
func Revert(ledger *slots.Ledger, ag *aggregate.State, inh Inherent, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	switch inh.Kind {
	case KindJail:
		return revertJail(ledger, ag, inh, r, w, log)
	case KindPenalize:
		return revertPenalize(ledger, ag, inh, r, w, log)
	case KindFinalizeBatch, KindFinalizeEpoch:
		return errkind.New(errkind.InvalidForTarget, "finalization inherents cannot be reverted")
	case KindReward:
		return errkind.New(errkind.InvalidForTarget, "reward inherents do not target the staking contract")
	default:
		return errkind.New(errkind.InvalidForRecipient, "unknown inherent kind")
	}
}
