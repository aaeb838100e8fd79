package coin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	sum, err := Add(Coin(3), Coin(4))
	assert.NoError(t, err)
	assert.Equal(t, Coin(7), sum)

	_, err = Add(Coin(math.MaxUint64), Coin(1))
	assert.Error(t, err)
}

func TestSub(t *testing.T) {
	diff, err := Sub(Coin(10), Coin(4))
	assert.NoError(t, err)
	assert.Equal(t, Coin(6), diff)

	_, err = Sub(Coin(3), Coin(4))
	assert.Error(t, err)
}

func TestMustAddPanicsOnOverflow(t *testing.T) {
	assert.Panics(t, func() {
		MustAdd(Coin(math.MaxUint64), Coin(1))
	})
}
