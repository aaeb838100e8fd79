// Package aggregate holds the contract-wide mutable fields shared by the
// transaction handler and the inherent handler: the total managed balance
// and the active-validator index. It is kept as a leaf package (depending
// only on addr/coin) so neither handler package needs to import the other,
// or the contract package that wires them together.
package aggregate

import (
	"sort"

	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
)

// ActiveSet is the contract's active_validators index: address -> total
// stake, enumerable in deterministic (address-sorted) order. Go map
// iteration order is randomized, which would leak into FinalizeEpoch's
// enumeration and into any receipt or log built from it (spec §9:
// "iteration order over unordered maps must not leak into state") — so
// Ordered() caches the sorted key slice behind a dirty flag, invalidating it
// only when the set is mutated.
type ActiveSet struct {
	stakes map[addr.Address]coin.Coin
	cached []addr.Address
	dirty  bool
}

// NewActiveSet returns an empty active set.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{stakes: make(map[addr.Address]coin.Coin), dirty: true}
}

// Add inserts or overwrites the stake recorded for a.
func (s *ActiveSet) Add(a addr.Address, stake coin.Coin) {
	s.stakes[a] = stake
	s.dirty = true
}

// Remove deletes a from the set, a no-op if absent.
func (s *ActiveSet) Remove(a addr.Address) {
	delete(s.stakes, a)
	s.dirty = true
}

// Get returns the recorded stake for a, and whether a is present.
func (s *ActiveSet) Get(a addr.Address) (coin.Coin, bool) {
	v, ok := s.stakes[a]
	return v, ok
}

// Contains reports whether a is in the active set.
func (s *ActiveSet) Contains(a addr.Address) bool {
	_, ok := s.stakes[a]
	return ok
}

// Len reports the number of active validators.
func (s *ActiveSet) Len() int {
	return len(s.stakes)
}

// Ordered returns every active validator's address in ascending order.
func (s *ActiveSet) Ordered() []addr.Address {
	if !s.dirty {
		return s.cached
	}
	keys := make([]addr.Address, 0, len(s.stakes))
	for k := range s.stakes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	s.cached = keys
	s.dirty = false
	return keys
}

// Clone deep-copies the set; the copy starts with its order cache invalid.
func (s *ActiveSet) Clone() *ActiveSet {
	cp := NewActiveSet()
	for k, v := range s.stakes {
		cp.stakes[k] = v
	}
	return cp
}
