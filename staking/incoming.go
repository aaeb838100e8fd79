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

// CommitIncoming dispatches an incoming (value flows into the contract)
// transaction to its handler (spec §4.2).
func CommitIncoming(ag *aggregate.State, params protocol.Params, bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	switch tx.Kind {
	case KindCreateValidator:
		if tx.Value != params.ValidatorDeposit {
			return nil, errkind.Newf(errkind.InvalidCoinValue, "validator deposit %d does not equal required %d", tx.Value, params.ValidatorDeposit)
		}
		return nil, commitCreateValidator(ag, tx, w, log)
	case KindUpdateValidator:
		return commitUpdateValidator(tx, w, log)
	case KindDeactivateValidator:
		return nil, commitDeactivateValidator(ag, bs, tx, w, log)
	case KindReactivateValidator:
		return commitReactivateValidator(ag, tx, w, log)
	case KindRetireValidator:
		return commitRetireValidator(bs, tx, w, log)
	case KindCreateStaker:
		return nil, commitCreateStaker(ag, params, tx, w, log)
	case KindAddStake:
		return nil, commitAddStake(ag, params, tx, w, log)
	case KindUpdateStaker:
		return commitUpdateStaker(ag, params, tx, w, log)
	case KindSetActiveStake:
		return commitSetActiveStake(ag, params, bs, tx, w, log)
	case KindRetireStake:
		return commitRetireStake(params, bs, tx, w, log)
	default:
		return nil, errkind.New(errkind.InvalidForRecipient, "not an incoming transaction kind")
	}
}

// RevertIncoming is the pointwise inverse of CommitIncoming, driven by the
// receipt returned by the matching commit call (spec §4.2).
func RevertIncoming(ag *aggregate.State, params protocol.Params, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	switch tx.Kind {
	case KindCreateValidator:
		return revertCreateValidator(ag, tx, w, log)
	case KindUpdateValidator:
		return revertUpdateValidator(tx, r, w, log)
	case KindDeactivateValidator:
		return revertDeactivateValidator(ag, tx, w, log)
	case KindReactivateValidator:
		return revertReactivateValidator(ag, tx, r, w, log)
	case KindRetireValidator:
		return revertRetireValidator(tx, r, w, log)
	case KindCreateStaker:
		return revertCreateStaker(ag, tx, w, log)
	case KindAddStake:
		return revertAddStake(ag, tx, w, log)
	case KindUpdateStaker:
		return revertUpdateStaker(ag, tx, r, w, log)
	case KindSetActiveStake:
		return revertSetActiveStake(ag, tx, r, w, log)
	case KindRetireStake:
		return revertRetireStake(tx, r, w, log)
	default:
		return errkind.New(errkind.InvalidForRecipient, "not an incoming transaction kind")
	}
}

func commitCreateValidator(ag *aggregate.State, tx Transaction, w store.Writer, log *txlog.Log) error {
	existing, err := w.GetValidator(tx.Signer)
	if err != nil {
		return err
	}
	if existing != nil {
		return errkind.AlreadyExistent("validator", tx.Signer.String())
	}

	v := &record.Validator{Deposit: tx.Value, TotalStake: tx.Value}
	if tx.NewSigningKey != nil {
		v.SigningKey = *tx.NewSigningKey
	}
	if tx.NewVotingKey != nil {
		v.VotingKey = *tx.NewVotingKey
	}
	if tx.NewRewardAddress != nil {
		v.RewardAddress = *tx.NewRewardAddress
	}
	if tx.NewSignalData.Set {
		v.SignalData = tx.NewSignalData.Value
	}

	if err := w.PutValidator(tx.Signer, v); err != nil {
		return err
	}
	if err := ag.Credit(tx.Value); err != nil {
		return err
	}
	syncActive(ag, tx.Signer, v)

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, tx.Value)
	log.Push(txlog.Entry{Kind: txlog.CreateValidator, Address: tx.Signer, Amount: tx.Value})
	return nil
}

func revertCreateValidator(ag *aggregate.State, tx Transaction, w store.Writer, log *txlog.Log) error {
	if _, err := w.ExpectValidator(tx.Signer); err != nil {
		return err
	}
	w.RemoveValidator(tx.Signer)
	ag.Active.Remove(tx.Signer)
	if err := ag.Debit(tx.Value); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.CreateValidator, Address: tx.Signer, Amount: tx.Value})
	log.Transfer(tx.Signer, addr.Zero, tx.Value)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

func commitUpdateValidator(tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	v, err := w.ExpectValidator(tx.Signer)
	if err != nil {
		return nil, err
	}

	old := receipt.UpdateValidator{
		OldSigningKey:    v.SigningKey,
		OldVotingKey:     v.VotingKey,
		OldRewardAddress: v.RewardAddress,
		OldSignalData:    v.SignalData,
	}

	if tx.NewSigningKey != nil {
		v.SigningKey = *tx.NewSigningKey
	}
	if tx.NewVotingKey != nil {
		v.VotingKey = *tx.NewVotingKey
	}
	if tx.NewRewardAddress != nil {
		v.RewardAddress = *tx.NewRewardAddress
	}
	if tx.NewSignalData.Set {
		v.SignalData = tx.NewSignalData.Value
	}
	if err := w.PutValidator(tx.Signer, v); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.Push(txlog.Entry{Kind: txlog.UpdateValidator, Address: tx.Signer})

	return receipt.Encode(receipt.KindUpdateValidator, old)
}

func revertUpdateValidator(tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.UpdateValidator](r, receipt.KindUpdateValidator)
	if err != nil {
		return err
	}
	v, err := w.ExpectValidator(tx.Signer)
	if err != nil {
		return err
	}
	v.SigningKey = old.OldSigningKey
	v.VotingKey = old.OldVotingKey
	v.RewardAddress = old.OldRewardAddress
	v.SignalData = old.OldSignalData
	if err := w.PutValidator(tx.Signer, v); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.UpdateValidator, Address: tx.Signer})
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

func commitDeactivateValidator(ag *aggregate.State, bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) error {
	v, err := w.ExpectValidator(tx.Validator)
	if err != nil {
		return err
	}
	if tx.Signer != v.SigningKey {
		return errkind.New(errkind.InvalidForSender, "signer does not match validator's signing key")
	}
	if !v.IsActive() {
		return errkind.New(errkind.InvalidForState, "validator already inactive, jailed or retired")
	}

	block := bs.Number
	v.InactiveFrom = &block
	if err := w.PutValidator(tx.Validator, v); err != nil {
		return err
	}
	ag.Active.Remove(tx.Validator)

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.Push(txlog.Entry{Kind: txlog.DeactivateValidator, Address: tx.Validator})
	return nil
}

func revertDeactivateValidator(ag *aggregate.State, tx Transaction, w store.Writer, log *txlog.Log) error {
	v, err := w.ExpectValidator(tx.Validator)
	if err != nil {
		return err
	}
	v.InactiveFrom = nil
	if err := w.PutValidator(tx.Validator, v); err != nil {
		return err
	}
	syncActive(ag, tx.Validator, v)

	log.Push(txlog.Entry{Kind: txlog.DeactivateValidator, Address: tx.Validator})
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

func commitReactivateValidator(ag *aggregate.State, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	v, err := w.ExpectValidator(tx.Validator)
	if err != nil {
		return nil, err
	}
	if tx.Signer != v.SigningKey {
		return nil, errkind.New(errkind.InvalidForSender, "signer does not match validator's signing key")
	}
	if v.InactiveFrom == nil {
		return nil, errkind.New(errkind.InvalidForState, "validator is not inactive")
	}

	old := receipt.InactiveFrom{OldInactiveFrom: v.InactiveFrom}
	v.InactiveFrom = nil
	if err := w.PutValidator(tx.Validator, v); err != nil {
		return nil, err
	}
	syncActive(ag, tx.Validator, v)

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.Push(txlog.Entry{Kind: txlog.ReactivateValidator, Address: tx.Validator})

	return receipt.Encode(receipt.KindInactiveFrom, old)
}

func revertReactivateValidator(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.InactiveFrom](r, receipt.KindInactiveFrom)
	if err != nil {
		return err
	}
	v, err := w.ExpectValidator(tx.Validator)
	if err != nil {
		return err
	}
	v.InactiveFrom = old.OldInactiveFrom
	if err := w.PutValidator(tx.Validator, v); err != nil {
		return err
	}
	ag.Active.Remove(tx.Validator)

	log.Push(txlog.Entry{Kind: txlog.ReactivateValidator, Address: tx.Validator})
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

func commitRetireValidator(bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	v, err := w.ExpectValidator(tx.Signer)
	if err != nil {
		return nil, err
	}
	if tx.Signer != v.SigningKey {
		return nil, errkind.New(errkind.InvalidForSender, "signer does not match validator's signing key")
	}
	if v.InactiveFrom == nil {
		return nil, errkind.New(errkind.InvalidForState, "validator must be inactive to retire")
	}
	if v.Retired {
		return nil, errkind.New(errkind.InvalidForState, "validator already retired")
	}

	old := receipt.InactiveFrom{OldInactiveFrom: v.InactiveFrom}
	v.Retired = true
	batch := bs.Batch
	v.RetiredFrom = &batch
	if err := w.PutValidator(tx.Signer, v); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.Push(txlog.Entry{Kind: txlog.RetireValidator, Address: tx.Signer})

	return receipt.Encode(receipt.KindInactiveFrom, old)
}

func revertRetireValidator(tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.InactiveFrom](r, receipt.KindInactiveFrom)
	if err != nil {
		return err
	}
	v, err := w.ExpectValidator(tx.Signer)
	if err != nil {
		return err
	}
	v.Retired = false
	v.RetiredFrom = nil
	v.InactiveFrom = old.OldInactiveFrom
	if err := w.PutValidator(tx.Signer, v); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.RetireValidator, Address: tx.Signer})
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

func commitCreateStaker(ag *aggregate.State, params protocol.Params, tx Transaction, w store.Writer, log *txlog.Log) error {
	existing, err := w.GetStaker(tx.Signer)
	if err != nil {
		return err
	}
	if existing != nil {
		return errkind.AlreadyExistent("staker", tx.Signer.String())
	}
	if err := record.EnforceMinStake(tx.Value, 0, 0, params.MinStake); err != nil {
		return err
	}

	s := &record.Staker{ActiveBalance: tx.Value}
	if tx.DelegationSet && tx.Delegation != nil {
		s.Delegation = tx.Delegation
		if err := incrementDelegationTarget(ag, w, *tx.Delegation, tx.Value, true); err != nil {
			return err
		}
	}
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return err
	}
	if err := ag.Credit(tx.Value); err != nil {
		return err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, tx.Value)
	log.Push(txlog.Entry{Kind: txlog.CreateStaker, Address: tx.Signer, Amount: tx.Value})
	return nil
}

func revertCreateStaker(ag *aggregate.State, tx Transaction, w store.Writer, log *txlog.Log) error {
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return err
	}
	if s.Delegation != nil {
		if err := decrementDelegationTarget(ag, w, *s.Delegation, s.ActiveBalance, true); err != nil {
			return err
		}
	}
	w.RemoveStaker(tx.Signer)
	if err := ag.Debit(tx.Value); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.CreateStaker, Address: tx.Signer, Amount: tx.Value})
	log.Transfer(tx.Signer, addr.Zero, tx.Value)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

func commitAddStake(ag *aggregate.State, params protocol.Params, tx Transaction, w store.Writer, log *txlog.Log) error {
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return err
	}
	newActive, err := coin.Add(s.ActiveBalance, tx.Value)
	if err != nil {
		return err
	}
	if err := record.EnforceMinStake(newActive, s.InactiveBalance, s.RetiredBalance, params.MinStake); err != nil {
		return err
	}
	s.ActiveBalance = newActive
	if s.Delegation != nil {
		if err := incrementDelegationTarget(ag, w, *s.Delegation, tx.Value, false); err != nil {
			return err
		}
	}
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return err
	}
	if err := ag.Credit(tx.Value); err != nil {
		return err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, tx.Value)
	log.Push(txlog.Entry{Kind: txlog.AddStake, Address: tx.Signer, Amount: tx.Value})
	return nil
}

func revertAddStake(ag *aggregate.State, tx Transaction, w store.Writer, log *txlog.Log) error {
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return err
	}
	newActive, err := coin.Sub(s.ActiveBalance, tx.Value)
	if err != nil {
		return err
	}
	s.ActiveBalance = newActive
	if s.Delegation != nil {
		if err := decrementDelegationTarget(ag, w, *s.Delegation, tx.Value, false); err != nil {
			return err
		}
	}
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return err
	}
	if err := ag.Debit(tx.Value); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.AddStake, Address: tx.Signer, Amount: tx.Value})
	log.Transfer(tx.Signer, addr.Zero, tx.Value)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

// commitUpdateStaker implements the Open Question decision pinned in
// SPEC_FULL.md §9: the new delegation target's total_stake is always
// credited; only active-set membership is gated on the target being active
// (handled transparently by syncActive/incrementDelegationTarget).
func commitUpdateStaker(ag *aggregate.State, params protocol.Params, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return nil, err
	}

	old := receipt.UpdateStaker{
		OldDelegation:      s.Delegation,
		OldInactiveFrom:    s.InactiveFrom,
		OldActiveBalance:   s.ActiveBalance,
		OldInactiveBalance: s.InactiveBalance,
	}

	if s.Delegation != nil {
		if err := decrementDelegationTarget(ag, w, *s.Delegation, s.ActiveBalance, true); err != nil {
			return nil, err
		}
	}

	if tx.DelegationSet {
		s.Delegation = tx.Delegation
	}
	if s.Delegation != nil {
		if err := incrementDelegationTarget(ag, w, *s.Delegation, s.ActiveBalance, true); err != nil {
			return nil, err
		}
	}

	if tx.ReactivateAllStake && !s.InactiveBalance.IsZero() {
		moved := s.InactiveBalance
		newActive, err := coin.Add(s.ActiveBalance, moved)
		if err != nil {
			return nil, err
		}
		s.ActiveBalance = newActive
		s.InactiveBalance = 0
		s.InactiveFrom = nil
		if s.Delegation != nil {
			if err := incrementDelegationTarget(ag, w, *s.Delegation, moved, false); err != nil {
				return nil, err
			}
		}
	}

	if err := record.EnforceMinStake(s.ActiveBalance, s.InactiveBalance, s.RetiredBalance, params.MinStake); err != nil {
		return nil, err
	}
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.Push(txlog.Entry{Kind: txlog.UpdateStaker, Address: tx.Signer})

	return receipt.Encode(receipt.KindUpdateStaker, old)
}

func revertUpdateStaker(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.UpdateStaker](r, receipt.KindUpdateStaker)
	if err != nil {
		return err
	}
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return err
	}

	// s.ActiveBalance already includes any inactive balance that
	// reactivate_all_stake moved, so one decrement removes the whole credit.
	if s.Delegation != nil {
		if err := decrementDelegationTarget(ag, w, *s.Delegation, s.ActiveBalance, true); err != nil {
			return err
		}
	}

	s.Delegation = old.OldDelegation
	s.ActiveBalance = old.OldActiveBalance
	s.InactiveBalance = old.OldInactiveBalance
	s.InactiveFrom = old.OldInactiveFrom

	if s.Delegation != nil {
		if err := incrementDelegationTarget(ag, w, *s.Delegation, s.ActiveBalance, true); err != nil {
			return err
		}
	}
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.UpdateStaker, Address: tx.Signer})
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

func commitSetActiveStake(ag *aggregate.State, params protocol.Params, bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return nil, err
	}

	total, err := coin.Add(s.ActiveBalance, s.InactiveBalance)
	if err != nil {
		return nil, err
	}
	if tx.NewActive > total {
		return nil, errkind.Insufficient(uint64(tx.NewActive), uint64(total))
	}
	newInactive := total - tx.NewActive

	old := receipt.SetActiveStake{OldActiveBalance: s.ActiveBalance, OldInactiveFrom: s.InactiveFrom}

	if tx.NewActive < s.ActiveBalance {
		block := bs.Number
		s.InactiveFrom = &block
	}
	if newInactive.IsZero() {
		s.InactiveFrom = nil
	}

	if s.Delegation != nil {
		if tx.NewActive >= s.ActiveBalance {
			if err := incrementDelegationTarget(ag, w, *s.Delegation, tx.NewActive-s.ActiveBalance, false); err != nil {
				return nil, err
			}
		} else {
			if err := decrementDelegationTarget(ag, w, *s.Delegation, s.ActiveBalance-tx.NewActive, false); err != nil {
				return nil, err
			}
		}
	}

	s.ActiveBalance = tx.NewActive
	s.InactiveBalance = newInactive
	if err := record.EnforceMinStake(s.ActiveBalance, s.InactiveBalance, s.RetiredBalance, params.MinStake); err != nil {
		return nil, err
	}
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.Push(txlog.Entry{Kind: txlog.SetActiveStake, Address: tx.Signer})

	return receipt.Encode(receipt.KindSetActiveStake, old)
}

func revertSetActiveStake(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.SetActiveStake](r, receipt.KindSetActiveStake)
	if err != nil {
		return err
	}
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return err
	}

	if s.Delegation != nil {
		if old.OldActiveBalance >= s.ActiveBalance {
			if err := incrementDelegationTarget(ag, w, *s.Delegation, old.OldActiveBalance-s.ActiveBalance, false); err != nil {
				return err
			}
		} else {
			if err := decrementDelegationTarget(ag, w, *s.Delegation, s.ActiveBalance-old.OldActiveBalance, false); err != nil {
				return err
			}
		}
	}

	total, err := coin.Add(s.ActiveBalance, s.InactiveBalance)
	if err != nil {
		return err
	}
	s.ActiveBalance = old.OldActiveBalance
	s.InactiveBalance = total - old.OldActiveBalance
	s.InactiveFrom = old.OldInactiveFrom
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.SetActiveStake, Address: tx.Signer})
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

func commitRetireStake(params protocol.Params, bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return nil, err
	}
	if tx.Amount > s.InactiveBalance {
		return nil, errkind.Insufficient(uint64(tx.Amount), uint64(s.InactiveBalance))
	}
	if s.InactiveFrom == nil || bs.Batch < *s.InactiveFrom+params.ReleaseWindow {
		return nil, errkind.New(errkind.InvalidForState, "inactive stake not yet past release window")
	}

	old := receipt.InactiveFrom{OldInactiveFrom: s.InactiveFrom}

	newInactive, err := coin.Sub(s.InactiveBalance, tx.Amount)
	if err != nil {
		return nil, err
	}
	newRetired, err := coin.Add(s.RetiredBalance, tx.Amount)
	if err != nil {
		return nil, err
	}
	s.InactiveBalance = newInactive
	s.RetiredBalance = newRetired
	if s.InactiveBalance.IsZero() {
		s.InactiveFrom = nil
	}
	if err := record.EnforceMinStake(s.ActiveBalance, s.InactiveBalance, s.RetiredBalance, params.MinStake); err != nil {
		return nil, err
	}
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.Push(txlog.Entry{Kind: txlog.RetireStake, Address: tx.Signer, Amount: tx.Amount})

	return receipt.Encode(receipt.KindInactiveFrom, old)
}

func revertRetireStake(tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.InactiveFrom](r, receipt.KindInactiveFrom)
	if err != nil {
		return err
	}
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return err
	}

	newInactive, err := coin.Add(s.InactiveBalance, tx.Amount)
	if err != nil {
		return err
	}
	newRetired, err := coin.Sub(s.RetiredBalance, tx.Amount)
	if err != nil {
		return err
	}
	s.InactiveBalance = newInactive
	s.RetiredBalance = newRetired
	s.InactiveFrom = old.OldInactiveFrom
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.RetireStake, Address: tx.Signer, Amount: tx.Amount})
	log.Transfer(tx.Signer, addr.Zero, 0)
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}
