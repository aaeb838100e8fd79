package reserve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
)

func TestReserveAndRelease(t *testing.T) {
	tr := New()
	a := addr.FromBytes([]byte("a"))

	assert.NoError(t, tr.ReserveFor(a, 1000, 400))
	assert.NoError(t, tr.ReserveFor(a, 1000, 400))
	assert.Equal(t, uint64(800), uint64(tr.Get(a)))

	err := tr.ReserveFor(a, 1000, 300)
	assert.Error(t, err)

	tr.ReleaseFor(a, 400)
	assert.Equal(t, uint64(400), uint64(tr.Get(a)))

	tr.ReleaseFor(a, 400)
	assert.Equal(t, uint64(0), uint64(tr.Get(a)))
}

func TestReserveSoundness(t *testing.T) {
	tr := New()
	a := addr.FromBytes([]byte("a"))
	capAmt := coin.Coin(1000)

	for i := 0; i < 10; i++ {
		assert.NoError(t, tr.ReserveFor(a, capAmt, 100))
	}
	assert.Error(t, tr.ReserveFor(a, capAmt, 1))

	for i := 0; i < 10; i++ {
		tr.ReleaseFor(a, 100)
	}
	assert.Equal(t, uint64(0), uint64(tr.Get(a)))
}
