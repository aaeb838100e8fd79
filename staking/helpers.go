package staking

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/aggregate"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/errkind"
	"github.com/albatross-network/staking/record"
	"github.com/albatross-network/staking/store"
)

// syncActive keeps the contract's active-validator index in agreement with
// a validator record just written: present with its current total stake
// while active, absent otherwise (spec invariant §3.5).
func syncActive(ag *aggregate.State, a addr.Address, v *record.Validator) {
	if v.IsActive() {
		ag.Active.Add(a, v.TotalStake)
	} else {
		ag.Active.Remove(a)
	}
}

// incrementDelegationTarget credits a delegated validator's total_stake by
// amount. The target must be a live validator record — a tombstoned or
// missing address is rejected by this function's own ExpectValidator
// lookup with NonExistentAddress. joined must be true only where a staker
// newly starts delegating to target (CreateStaker, UpdateStaker's delegation
// switch, RemoveStake revert) — that's the only point NumStakers should
// change; balance-only top-ups on an already-established delegation
// (AddStake, SetActiveStake, UpdateStaker's reactivate_all_stake) pass false
// so NumStakers is left untouched.
func incrementDelegationTarget(ag *aggregate.State, w store.Writer, target addr.Address, amount coin.Coin, joined bool) error {
	v, err := w.ExpectValidator(target)
	if err != nil {
		return err
	}
	next, err := coin.Add(v.TotalStake, amount)
	if err != nil {
		return err
	}
	v.TotalStake = next
	if joined {
		v.NumStakers++
	}
	if err := w.PutValidator(target, v); err != nil {
		return err
	}
	syncActive(ag, target, v)
	return nil
}

// decrementDelegationTarget reverses incrementDelegationTarget. The target
// may since have been deleted and replaced by a Tombstone, in which case the
// staker count there is decremented instead (and the tombstone removed once
// exhausted). left mirrors joined: true only where a staker stops delegating
// to target, at which point NumStakers (or the tombstone's
// NumRemainingStakers) decrements; balance-only reductions pass false.
func decrementDelegationTarget(ag *aggregate.State, w store.Writer, target addr.Address, amount coin.Coin, left bool) error {
	v, err := w.GetValidator(target)
	if err != nil {
		return err
	}
	if v != nil {
		next, err := coin.Sub(v.TotalStake, amount)
		if err != nil {
			return err
		}
		v.TotalStake = next
		if left {
			v.NumStakers--
		}
		if err := w.PutValidator(target, v); err != nil {
			return err
		}
		syncActive(ag, target, v)
		return nil
	}

	ts, err := w.GetTombstone(target)
	if err != nil {
		return err
	}
	if ts == nil {
		return errkind.NonExistent("validator or tombstone", target.String())
	}
	if !left {
		return nil
	}
	ts.NumRemainingStakers--
	if ts.IsExhausted() {
		w.RemoveTombstone(target)
		return nil
	}
	return w.PutTombstone(target, ts)
}
