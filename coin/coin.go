// Package coin implements the contract's fixed-precision balance type.
// Every balance in the staking contract — deposits, stakes, fees — is a
// Coin, and every arithmetic operation on it is checked: Coin can never go
// negative and never silently overflows, mirroring the teacher's use of
// github.com/ethereum/go-ethereum/common/math's checked uint64 helpers for
// VET amounts.
package coin

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/albatross-network/staking/errkind"
)

// Coin is a non-negative integer amount.
type Coin uint64

// Zero is the additive identity.
const Zero = Coin(0)

// Add returns a+b, or an InvalidCoinValue error if the sum overflows a uint64.
func Add(a, b Coin) (Coin, error) {
	sum, overflow := math.SafeAdd(uint64(a), uint64(b))
	if overflow {
		return 0, errkind.Newf(errkind.InvalidCoinValue, "coin: %d + %d overflows", a, b)
	}
	return Coin(sum), nil
}

// Sub returns a-b, or an InvalidCoinValue error if b > a.
func Sub(a, b Coin) (Coin, error) {
	diff, underflow := math.SafeSub(uint64(a), uint64(b))
	if underflow {
		return 0, errkind.Newf(errkind.InvalidCoinValue, "coin: %d - %d underflows", a, b)
	}
	return Coin(diff), nil
}

// MustAdd panics on overflow. Reserved for call sites that have already
// validated the operands cannot overflow (e.g. summing bounded protocol
// constants); never used on user-supplied amounts.
func MustAdd(a, b Coin) Coin {
	v, err := Add(a, b)
	if err != nil {
		panic(err)
	}
	return v
}

// GreaterOrEqual reports whether a >= b.
func (a Coin) GreaterOrEqual(b Coin) bool { return a >= b }

// IsZero reports whether the coin amount is zero.
func (a Coin) IsZero() bool { return a == 0 }
