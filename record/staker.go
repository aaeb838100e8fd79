package record

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/errkind"
)

// Staker is the on-chain record for a staking account.
type Staker struct {
	ActiveBalance   coin.Coin
	InactiveBalance coin.Coin
	RetiredBalance  coin.Coin
	Delegation      *addr.Address `rlp:"nil"` // nil when not delegating
	InactiveFrom    *uint32       `rlp:"nil"` // nil while ActiveBalance hasn't been reduced
}

// Clone returns a deep copy.
func (s *Staker) Clone() *Staker {
	cp := *s
	if s.Delegation != nil {
		d := *s.Delegation
		cp.Delegation = &d
	}
	if s.InactiveFrom != nil {
		n := *s.InactiveFrom
		cp.InactiveFrom = &n
	}
	return &cp
}

// IsEmpty reports whether all three balances are zero, the point at which
// RemoveStake deletes the record.
func (s *Staker) IsEmpty() bool {
	return s.ActiveBalance.IsZero() && s.InactiveBalance.IsZero() && s.RetiredBalance.IsZero()
}

// CanRemoveStake fails with InsufficientFunds if amount exceeds the retired
// balance available to withdraw.
func (s *Staker) CanRemoveStake(amount coin.Coin) error {
	if amount > s.RetiredBalance {
		return errkind.Insufficient(uint64(amount), uint64(s.RetiredBalance))
	}
	return nil
}

// EnforceMinStake fails with InvalidCoinValue if any of the three given
// balance components is non-zero and below minStake (spec invariant §3.4).
func EnforceMinStake(active, inactive, retired, minStake coin.Coin) error {
	for _, v := range []coin.Coin{active, inactive, retired} {
		if v != 0 && v < minStake {
			return errkind.Newf(errkind.InvalidCoinValue, "balance component %d below minimum stake %d", v, minStake)
		}
	}
	return nil
}
