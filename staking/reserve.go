package staking

import (
	"github.com/albatross-network/staking/blockstate"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/errkind"
	"github.com/albatross-network/staking/protocol"
	"github.com/albatross-network/staking/record"
	"github.com/albatross-network/staking/reserve"
	"github.com/albatross-network/staking/store"
)

// ReserveBalance implements spec §4.5: before an outgoing transaction is
// included in a block, its funds are reserved against the balance it will
// drain. DeleteValidator reserves against the validator's deposit, but only
// after the same CanDeleteValidator eligibility check its commit path runs —
// a reservation that later fails at commit wastes the block space it held.
// RemoveStake reserves against the staker's retired_balance, but only after
// confirming the fee alone — the amount a later failed-transaction path
// would still charge — would not leave the residual below min-stake.
// Incoming and failed-only transaction kinds reserve nothing.
func ReserveBalance(tracker *reserve.Tracker, params protocol.Params, bs blockstate.BlockState, tx Transaction, r store.Reader) error {
	switch tx.Kind {
	case KindDeleteValidator:
		v, err := r.ExpectValidator(tx.Signer)
		if err != nil {
			return err
		}
		if err := v.CanDeleteValidator(tx.TotalValue, bs.Batch, params.ReleaseWindow); err != nil {
			return err
		}
		return tracker.ReserveFor(tx.Signer, v.Deposit, tx.TotalValue)
	case KindRemoveStake:
		s, err := r.ExpectStaker(tx.Signer)
		if err != nil {
			return err
		}
		residual, err := coin.Sub(s.RetiredBalance, tx.Fee)
		if err != nil {
			return errkind.New(errkind.InsufficientFunds, "fee exceeds retired balance")
		}
		if err := record.EnforceMinStake(s.ActiveBalance, s.InactiveBalance, residual, params.MinStake); err != nil {
			return err
		}
		return tracker.ReserveFor(tx.Signer, s.RetiredBalance, tx.TotalValue)
	default:
		return nil
	}
}

// ReleaseBalance is the exact inverse of ReserveBalance and always succeeds.
func ReleaseBalance(tracker *reserve.Tracker, tx Transaction) error {
	switch tx.Kind {
	case KindDeleteValidator, KindRemoveStake:
		tracker.ReleaseFor(tx.Signer, tx.TotalValue)
	}
	return nil
}
