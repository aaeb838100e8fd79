package store

import (
	"bytes"
	"sync"

	"github.com/ethereum/go-ethereum/rlp"
)

// Mapping is a generic keyed-value slot, RLP-encoding values into an
// in-memory byte map. It generalizes the teacher's builtin/solidity.Mapping
// — a Solidity-style key/value storage abstraction over a Merkle trie — to
// a plain byte map, since this module treats persistence as an external
// concern (spec §1 Non-goals: "no persistence format"). Keeping values
// RLP-encoded rather than stored as live Go pointers preserves the same
// property the teacher relies on: Get never returns a reference the caller
// can mutate behind the store's back.
type Mapping[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K][]byte
}

// NewMapping constructs an empty mapping.
func NewMapping[K comparable, V any]() *Mapping[K, V] {
	return &Mapping[K, V]{data: make(map[K][]byte)}
}

// Get decodes the value stored at key, or returns (zero, false) if absent.
func (m *Mapping[K, V]) Get(key K) (V, bool, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()

	var value V
	if !ok {
		return value, false, nil
	}
	if err := rlp.NewStream(bytes.NewReader(raw), 0).Decode(&value); err != nil {
		return value, false, err
	}
	return value, true, nil
}

// Put RLP-encodes value and stores it at key.
func (m *Mapping[K, V]) Put(key K, value V) error {
	buf := new(bytes.Buffer)
	if err := rlp.Encode(buf, value); err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = append([]byte(nil), buf.Bytes()...)
	m.mu.Unlock()
	return nil
}

// Remove deletes the value stored at key, if any.
func (m *Mapping[K, V]) Remove(key K) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

// Len reports the number of stored entries.
func (m *Mapping[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
