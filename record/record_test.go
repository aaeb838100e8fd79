package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorIsActive(t *testing.T) {
	v := &Validator{}
	assert.True(t, v.IsActive())

	inactive := uint32(10)
	v.InactiveFrom = &inactive
	assert.False(t, v.IsActive())
}

func TestEnforceRetireAndRelease(t *testing.T) {
	v := &Validator{}
	err := v.EnforceRetireAndRelease(10, 2)
	assert.Error(t, err)

	retiredFrom := uint32(100)
	v.Retired = true
	v.RetiredFrom = &retiredFrom

	err = v.EnforceRetireAndRelease(101, 2)
	assert.Error(t, err)

	err = v.EnforceRetireAndRelease(102, 2)
	assert.NoError(t, err)
}

func TestCanDeleteValidator(t *testing.T) {
	retiredFrom := uint32(300)
	v := &Validator{Retired: true, RetiredFrom: &retiredFrom, Deposit: 10_000}

	err := v.CanDeleteValidator(10_000, 301, 2)
	assert.Error(t, err) // not released yet

	err = v.CanDeleteValidator(10_000, 400, 2)
	assert.NoError(t, err)

	err = v.CanDeleteValidator(9_999, 400, 2)
	assert.Error(t, err)
}

func TestStakerEnforceMinStake(t *testing.T) {
	assert.NoError(t, EnforceMinStake(100, 0, 0, 100))
	assert.NoError(t, EnforceMinStake(100, 400, 0, 100))
	assert.Error(t, EnforceMinStake(50, 0, 0, 100))
}

func TestStakerCanRemoveStake(t *testing.T) {
	s := &Staker{RetiredBalance: 500}
	assert.NoError(t, s.CanRemoveStake(500))
	assert.Error(t, s.CanRemoveStake(501))
}

func TestStakerIsEmpty(t *testing.T) {
	s := &Staker{}
	assert.True(t, s.IsEmpty())
	s.ActiveBalance = 1
	assert.False(t, s.IsEmpty())
}
