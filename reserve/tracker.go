// Package reserve implements the reserved-balance tracker (spec §3/§4.5):
// per-address bookkeeping of funds already promised to outgoing
// transactions within the current block-assembly attempt. It is scoped to
// one block assembly and is never persisted — the teacher's equivalent
// concern (preventing two transactions from the same sender from
// double-spending a single on-chain balance within one block) lives in the
// block-assembly layer, out of this module's scope, but the tracker itself
// is pure bookkeeping the engine owns directly.
package reserve

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/errkind"
)

// Tracker accumulates per-address reservations for the lifetime of one
// block-assembly attempt.
type Tracker struct {
	reserved map[addr.Address]coin.Coin
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{reserved: make(map[addr.Address]coin.Coin)}
}

// Get returns the current reservation for address, zero if none.
func (t *Tracker) Get(a addr.Address) coin.Coin {
	return t.reserved[a]
}

// ReserveFor fails with InsufficientFunds if reserved[address]+amount would
// exceed limit; otherwise it records the reservation.
func (t *Tracker) ReserveFor(a addr.Address, limit coin.Coin, amount coin.Coin) error {
	current := t.reserved[a]
	next, err := coin.Add(current, amount)
	if err != nil {
		return errkind.New(errkind.InvalidCoinValue, err.Error())
	}
	if next > limit {
		return errkind.Insufficient(uint64(next), uint64(limit))
	}
	t.reserved[a] = next
	return nil
}

// ReleaseFor is the exact inverse of ReserveFor and always succeeds,
// saturating at zero if amount exceeds the current reservation (defensive
// against a release called twice for the same transaction, which the
// engine itself never does but which the tracker does not need to assume).
func (t *Tracker) ReleaseFor(a addr.Address, amount coin.Coin) {
	current := t.reserved[a]
	if amount >= current {
		delete(t.reserved, a)
		return
	}
	t.reserved[a] = current - amount
}
