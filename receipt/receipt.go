// Package receipt implements the opaque, tagged receipt blobs commit
// handlers return and revert handlers consume (spec §6/§9). A Receipt pairs
// a Kind tag byte with an RLP-encoded payload, so decoding into the wrong
// concrete type fails loudly with InvalidReceipt rather than silently
// misinterpreting bytes — the generic sum-type discipline spec §9
// prescribes in place of type-identity recovered from a heterogeneous
// container.
package receipt

import (
	"bytes"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/albatross-network/staking/errkind"
)

// Kind tags the concrete payload type a Receipt carries.
type Kind byte

const (
	KindUpdateValidator Kind = iota + 1
	KindInactiveFrom
	KindUpdateStaker
	KindSetActiveStake
	KindDeleteValidator
	KindRemoveStake
	KindJail
	KindPenalize
)

// Receipt is the opaque blob crossing the commit/revert boundary.
type Receipt struct {
	Kind    Kind
	Payload []byte
}

// Encode RLP-encodes payload under the given kind tag.
func Encode(kind Kind, payload any) (*Receipt, error) {
	buf := new(bytes.Buffer)
	if err := rlp.Encode(buf, payload); err != nil {
		return nil, err
	}
	return &Receipt{Kind: kind, Payload: append([]byte(nil), buf.Bytes()...)}, nil
}

// Decode validates r is non-nil and tagged kind, then RLP-decodes its
// payload into a freshly allocated T.
func Decode[T any](r *Receipt, kind Kind) (*T, error) {
	if r == nil {
		return nil, errkind.New(errkind.InvalidReceipt, "receipt required but missing")
	}
	if r.Kind != kind {
		return nil, errkind.Newf(errkind.InvalidReceipt, "expected receipt kind %d, got %d", kind, r.Kind)
	}
	var v T
	if err := rlp.NewStream(bytes.NewReader(r.Payload), 0).Decode(&v); err != nil {
		return nil, errkind.New(errkind.InvalidReceipt, err.Error())
	}
	return &v, nil
}
