package staking

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/aggregate"
	"github.com/albatross-network/staking/blockstate"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/errkind"
	"github.com/albatross-network/staking/protocol"
	"github.com/albatross-network/staking/receipt"
	"github.com/albatross-network/staking/record"
	"github.com/albatross-network/staking/store"
	"github.com/albatross-network/staking/txlog"
)

// CommitOutgoing dispatches an outgoing (value flows out of the contract)
// transaction to its handler (spec §4.3).
func CommitOutgoing(ag *aggregate.State, params protocol.Params, bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	switch tx.Kind {
	case KindDeleteValidator:
		return commitDeleteValidator(ag, params, bs, tx, w, log)
	case KindRemoveStake:
		return commitRemoveStake(ag, tx, w, log)
	default:
		return nil, errkind.New(errkind.InvalidForRecipient, "not an outgoing transaction kind")
	}
}

// RevertOutgoing is the pointwise inverse of CommitOutgoing.
func RevertOutgoing(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	switch tx.Kind {
	case KindDeleteValidator:
		return revertDeleteValidator(ag, tx, r, w, log)
	case KindRemoveStake:
		return revertRemoveStake(ag, tx, r, w, log)
	default:
		return errkind.New(errkind.InvalidForRecipient, "not an outgoing transaction kind")
	}
}

func deleteValidatorReceipt(v *record.Validator, ts *record.Tombstone) receipt.DeleteValidator {
	dr := receipt.DeleteValidator{
		SigningKey:    v.SigningKey,
		VotingKey:     v.VotingKey,
		RewardAddress: v.RewardAddress,
		SignalData:    v.SignalData,
		Deposit:       v.Deposit,
		TotalStake:    v.TotalStake,
		NumStakers:    v.NumStakers,
		InactiveFrom:  v.InactiveFrom,
		JailedFrom:    v.JailedFrom,
		RetiredFrom:   v.RetiredFrom,
		Retired:       v.Retired,
	}
	if ts != nil {
		dr.HadTombstone = true
		dr.TombstoneNumRemaining = ts.NumRemainingStakers
	}
	return dr
}

// commitDeleteValidator implements spec §4.3's DeleteValidator: require
// total_value == deposit, released; delete the validator; if stakers remain,
// leave a Tombstone in its place.
func commitDeleteValidator(ag *aggregate.State, params protocol.Params, bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	v, err := w.ExpectValidator(tx.Signer)
	if err != nil {
		return nil, err
	}
	if err := v.CanDeleteValidator(tx.TotalValue, bs.Batch, params.ReleaseWindow); err != nil {
		return nil, err
	}

	var ts *record.Tombstone
	if v.NumStakers > 0 {
		ts = &record.Tombstone{TotalStake: v.TotalStake - v.Deposit, NumRemainingStakers: v.NumStakers}
		if err := w.PutTombstone(tx.Signer, ts); err != nil {
			return nil, err
		}
	}
	old := deleteValidatorReceipt(v, ts)

	w.RemoveValidator(tx.Signer)
	ag.Active.Remove(tx.Signer)
	if err := ag.Debit(tx.TotalValue); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(addr.Zero, tx.Signer, tx.TotalValue)
	log.Push(txlog.Entry{Kind: txlog.DeleteValidator, Address: tx.Signer, Amount: tx.TotalValue})

	return receipt.Encode(receipt.KindDeleteValidator, old)
}

func revertDeleteValidator(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.DeleteValidator](r, receipt.KindDeleteValidator)
	if err != nil {
		return err
	}

	v := &record.Validator{
		SigningKey:    old.SigningKey,
		VotingKey:     old.VotingKey,
		RewardAddress: old.RewardAddress,
		SignalData:    old.SignalData,
		Deposit:       old.Deposit,
		TotalStake:    old.TotalStake,
		NumStakers:    old.NumStakers,
		InactiveFrom:  old.InactiveFrom,
		JailedFrom:    old.JailedFrom,
		RetiredFrom:   old.RetiredFrom,
		Retired:       old.Retired,
	}
	if err := w.PutValidator(tx.Signer, v); err != nil {
		return err
	}
	if old.HadTombstone {
		w.RemoveTombstone(tx.Signer)
	}
	syncActive(ag, tx.Signer, v)
	if err := ag.Credit(tx.TotalValue); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.DeleteValidator, Address: tx.Signer, Amount: tx.TotalValue})
	log.Transfer(addr.Zero, tx.Signer, tx.TotalValue)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

// commitRemoveStake implements spec §4.3's RemoveStake: drain up to the
// full retired_balance; delete the staker record (and release its
// delegation target, possibly exhausting a tombstone) once all three
// balances reach zero.
func commitRemoveStake(ag *aggregate.State, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return nil, err
	}
	if err := s.CanRemoveStake(tx.TotalValue); err != nil {
		return nil, err
	}

	newRetired, err := coin.Sub(s.RetiredBalance, tx.TotalValue)
	if err != nil {
		return nil, err
	}
	s.RetiredBalance = newRetired

	var rr receipt.RemoveStake
	if s.IsEmpty() {
		rr.Delegation = s.Delegation
		if s.Delegation != nil {
			if err := decrementDelegationTarget(ag, w, *s.Delegation, 0, true); err != nil {
				return nil, err
			}
		}
		w.RemoveStaker(tx.Signer)
	} else {
		if err := w.PutStaker(tx.Signer, s); err != nil {
			return nil, err
		}
	}

	if err := ag.Debit(tx.TotalValue); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(addr.Zero, tx.Signer, tx.TotalValue)
	log.Push(txlog.Entry{Kind: txlog.RemoveStake, Address: tx.Signer, Amount: tx.TotalValue})

	return receipt.Encode(receipt.KindRemoveStake, rr)
}

func revertRemoveStake(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.RemoveStake](r, receipt.KindRemoveStake)
	if err != nil {
		return err
	}

	s, getErr := w.GetStaker(tx.Signer)
	if getErr != nil {
		return getErr
	}
	if s == nil {
		s = &record.Staker{Delegation: old.Delegation}
		if old.Delegation != nil {
			if err := incrementDelegationTarget(ag, w, *old.Delegation, 0, true); err != nil {
				return err
			}
		}
	}
	newRetired, err := coin.Add(s.RetiredBalance, tx.TotalValue)
	if err != nil {
		return err
	}
	s.RetiredBalance = newRetired
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return err
	}

	if err := ag.Credit(tx.TotalValue); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.RemoveStake, Address: tx.Signer, Amount: tx.TotalValue})
	log.Transfer(addr.Zero, tx.Signer, tx.TotalValue)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}
