// Package store implements the staking contract's data-store abstraction
// (spec §2 C2, §6): capability-typed handles for validator, staker and
// tombstone records. Reader is the read-only capability handed to
// reservation queries; Writer extends it with mutation, handed to commit/
// revert handlers. The concrete MemStore is a plain in-memory
// implementation — the spec treats persistence as external — but any type
// satisfying Writer can back the engine (e.g. one wrapping a real trie-backed
// state, the way the teacher's builtin/solidity.Mapping wraps state.State).
package store

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/errkind"
	"github.com/albatross-network/staking/record"
)

// Reader is the read-only data-store capability.
type Reader interface {
	GetValidator(a addr.Address) (*record.Validator, error)
	GetStaker(a addr.Address) (*record.Staker, error)
	GetTombstone(a addr.Address) (*record.Tombstone, error)

	// ExpectValidator/ExpectStaker fail with NonExistentAddress when the
	// record is absent, sparing handlers a nil-check at every call site.
	ExpectValidator(a addr.Address) (*record.Validator, error)
	ExpectStaker(a addr.Address) (*record.Staker, error)
}

// Writer extends Reader with mutation.
type Writer interface {
	Reader

	PutValidator(a addr.Address, v *record.Validator) error
	RemoveValidator(a addr.Address)
	PutStaker(a addr.Address, s *record.Staker) error
	RemoveStaker(a addr.Address)
	PutTombstone(a addr.Address, ts *record.Tombstone) error
	RemoveTombstone(a addr.Address)
}

// MemStore is an in-memory Writer implementation.
type MemStore struct {
	validators *Mapping[addr.Address, *record.Validator]
	stakers    *Mapping[addr.Address, *record.Staker]
	tombstones *Mapping[addr.Address, *record.Tombstone]
}

// NewMemStore constructs an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		validators: NewMapping[addr.Address, *record.Validator](),
		stakers:    NewMapping[addr.Address, *record.Staker](),
		tombstones: NewMapping[addr.Address, *record.Tombstone](),
	}
}

func (m *MemStore) GetValidator(a addr.Address) (*record.Validator, error) {
	v, ok, err := m.validators.Get(a)
	if err != nil || !ok {
		return nil, err
	}
	return v, nil
}

func (m *MemStore) ExpectValidator(a addr.Address) (*record.Validator, error) {
	v, err := m.GetValidator(a)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errkind.NonExistent("validator", a.String())
	}
	return v, nil
}

func (m *MemStore) PutValidator(a addr.Address, v *record.Validator) error {
	return m.validators.Put(a, v)
}

func (m *MemStore) RemoveValidator(a addr.Address) {
	m.validators.Remove(a)
}

func (m *MemStore) GetStaker(a addr.Address) (*record.Staker, error) {
	s, ok, err := m.stakers.Get(a)
	if err != nil || !ok {
		return nil, err
	}
	return s, nil
}

func (m *MemStore) ExpectStaker(a addr.Address) (*record.Staker, error) {
	s, err := m.GetStaker(a)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errkind.NonExistent("staker", a.String())
	}
	return s, nil
}

func (m *MemStore) PutStaker(a addr.Address, s *record.Staker) error {
	return m.stakers.Put(a, s)
}

func (m *MemStore) RemoveStaker(a addr.Address) {
	m.stakers.Remove(a)
}

func (m *MemStore) GetTombstone(a addr.Address) (*record.Tombstone, error) {
	ts, ok, err := m.tombstones.Get(a)
	if err != nil || !ok {
		return nil, err
	}
	return ts, nil
}

func (m *MemStore) PutTombstone(a addr.Address, ts *record.Tombstone) error {
	return m.tombstones.Put(a, ts)
}

func (m *MemStore) RemoveTombstone(a addr.Address) {
	m.tombstones.Remove(a)
}
