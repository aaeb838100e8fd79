// Package addr defines the fixed-size address type shared by every staking
// record. Addresses are opaque 20-byte values derived elsewhere (signature
// verification is out of scope for this module); the type only needs to be
// comparable, orderable and RLP-codable.
package addr

import (
	"bytes"
	"encoding/hex"
)

// Address is a 20-byte account identifier.
type Address [20]byte

// Zero is the empty address, used as the unset-delegation sentinel.
var Zero = Address{}

// FromBytes right-aligns b in an Address, left-padding with zeros. Panics if
// len(b) > 20; callers at the protocol boundary are expected to pass
// already-validated 20-byte slices.
func FromBytes(b []byte) Address {
	if len(b) > 20 {
		panic("addr: source longer than 20 bytes")
	}
	var a Address
	copy(a[20-len(b):], b)
	return a
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte { return a[:] }

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool { return a == Zero }

// Less orders addresses lexicographically, used to keep enumeration of
// active validators deterministic regardless of insertion order.
func (a Address) Less(b Address) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// Compare returns -1, 0 or 1, mirroring bytes.Compare.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}
