package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inactiveFrom := uint32(200)
	r, err := Encode(KindInactiveFrom, InactiveFrom{OldInactiveFrom: &inactiveFrom})
	require.NoError(t, err)

	got, err := Decode[InactiveFrom](r, KindInactiveFrom)
	require.NoError(t, err)
	require.NotNil(t, got.OldInactiveFrom)
	assert.Equal(t, uint32(200), *got.OldInactiveFrom)
}

func TestDecodeKindMismatch(t *testing.T) {
	r, err := Encode(KindInactiveFrom, InactiveFrom{})
	require.NoError(t, err)

	_, err = Decode[UpdateStaker](r, KindUpdateStaker)
	assert.Error(t, err)
}

func TestDecodeMissingReceipt(t *testing.T) {
	_, err := Decode[InactiveFrom](nil, KindInactiveFrom)
	assert.Error(t, err)
}
