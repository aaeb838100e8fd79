package staking

import (
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

// CommitFailed implements spec §4.4: an outgoing transaction whose
// sender-side reservation succeeded but which failed after reservation. The
// fee is still charged, from the same pool of funds that backed it.
func CommitFailed(ag *aggregate.State, params protocol.Params, bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	switch tx.Kind {
	case KindDeleteValidator:
		return commitFailedDeleteValidator(ag, params, bs, tx, w, log)
	case KindRemoveStake:
		return commitFailedRemoveStake(ag, params, tx, w, log)
	default:
		return nil, errkind.New(errkind.InvalidForRecipient, "not a failed-transaction-eligible kind")
	}
}

// RevertFailed is the pointwise inverse of CommitFailed.
func RevertFailed(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	switch tx.Kind {
	case KindDeleteValidator:
		return revertFailedDeleteValidator(ag, tx, r, w, log)
	case KindRemoveStake:
		return revertFailedRemoveStake(ag, tx, r, w, log)
	default:
		return errkind.New(errkind.InvalidForRecipient, "not a failed-transaction-eligible kind")
	}
}

// commitFailedDeleteValidator: require validator exists and released;
// new_deposit = deposit - fee; zeroing deletes the validator outright
// (reusing the DeleteValidator receipt shape), otherwise just the deposit
// and total_stake shrink by fee and no receipt is needed.
func commitFailedDeleteValidator(ag *aggregate.State, params protocol.Params, bs blockstate.BlockState, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	v, err := w.ExpectValidator(tx.Signer)
	if err != nil {
		return nil, err
	}
	if err := v.EnforceRetireAndRelease(bs.Batch, params.ReleaseWindow); err != nil {
		return nil, err
	}

	newDeposit, err := coin.Sub(v.Deposit, tx.Fee)
	if err != nil {
		return nil, errkind.New(errkind.InsufficientFunds, "fee exceeds remaining deposit")
	}

	if newDeposit.IsZero() {
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
		if err := ag.Debit(tx.Fee); err != nil {
			return nil, err
		}

		log.PayFee(tx.Signer, tx.Fee)
		log.Push(txlog.Entry{Kind: txlog.DeleteValidator, Address: tx.Signer, Amount: tx.Fee})

		return receipt.Encode(receipt.KindDeleteValidator, old)
	}

	newTotalStake, err := coin.Sub(v.TotalStake, tx.Fee)
	if err != nil {
		return nil, err
	}
	v.Deposit = newDeposit
	v.TotalStake = newTotalStake
	if err := w.PutValidator(tx.Signer, v); err != nil {
		return nil, err
	}
	syncActive(ag, tx.Signer, v)
	if err := ag.Debit(tx.Fee); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Push(txlog.Entry{Kind: txlog.DeleteValidator, Address: tx.Signer, Amount: tx.Fee})
	return nil, nil
}

func revertFailedDeleteValidator(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	if r != nil {
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
		if err := ag.Credit(tx.Fee); err != nil {
			return err
		}

		log.Push(txlog.Entry{Kind: txlog.DeleteValidator, Address: tx.Signer, Amount: tx.Fee})
		log.PayFee(tx.Signer, tx.Fee)
		return nil
	}

	v, err := w.ExpectValidator(tx.Signer)
	if err != nil {
		return err
	}
	newDeposit, err := coin.Add(v.Deposit, tx.Fee)
	if err != nil {
		return err
	}
	newTotalStake, err := coin.Add(v.TotalStake, tx.Fee)
	if err != nil {
		return err
	}
	v.Deposit = newDeposit
	v.TotalStake = newTotalStake
	if err := w.PutValidator(tx.Signer, v); err != nil {
		return err
	}
	syncActive(ag, tx.Signer, v)
	if err := ag.Credit(tx.Fee); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.DeleteValidator, Address: tx.Signer, Amount: tx.Fee})
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}

// commitFailedRemoveStake mirrors commitFailedDeleteValidator against
// staker.retired_balance: the fee drains retired_balance; the staker is
// deleted if all three balances reach zero, otherwise the residual must
// still satisfy min-stake.
func commitFailedRemoveStake(ag *aggregate.State, params protocol.Params, tx Transaction, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	s, err := w.ExpectStaker(tx.Signer)
	if err != nil {
		return nil, err
	}
	newRetired, err := coin.Sub(s.RetiredBalance, tx.Fee)
	if err != nil {
		return nil, errkind.New(errkind.InsufficientFunds, "fee exceeds remaining retired balance")
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
		if err := record.EnforceMinStake(s.ActiveBalance, s.InactiveBalance, s.RetiredBalance, params.MinStake); err != nil {
			return nil, err
		}
		if err := w.PutStaker(tx.Signer, s); err != nil {
			return nil, err
		}
	}

	if err := ag.Debit(tx.Fee); err != nil {
		return nil, err
	}

	log.PayFee(tx.Signer, tx.Fee)
	log.Push(txlog.Entry{Kind: txlog.RemoveStake, Address: tx.Signer, Amount: tx.Fee})

	return receipt.Encode(receipt.KindRemoveStake, rr)
}

func revertFailedRemoveStake(ag *aggregate.State, tx Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
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
	newRetired, err := coin.Add(s.RetiredBalance, tx.Fee)
	if err != nil {
		return err
	}
	s.RetiredBalance = newRetired
	if err := w.PutStaker(tx.Signer, s); err != nil {
		return err
	}

	if err := ag.Credit(tx.Fee); err != nil {
		return err
	}

	log.Push(txlog.Entry{Kind: txlog.RemoveStake, Address: tx.Signer, Amount: tx.Fee})
	log.PayFee(tx.Signer, tx.Fee)
	return nil
}
