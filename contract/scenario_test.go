package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/blockstate"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/contract"
	"github.com/albatross-network/staking/errkind"
	"github.com/albatross-network/staking/inherent"
	"github.com/albatross-network/staking/protocol"
	"github.com/albatross-network/staking/slots"
	"github.com/albatross-network/staking/staking"
	"github.com/albatross-network/staking/store"
	"github.com/albatross-network/staking/txlog"
)

func newFixture() (*contract.Contract, *store.MemStore) {
	return contract.New(protocol.Default()), store.NewMemStore()
}

func at(block uint32) blockstate.BlockState {
	return blockstate.BlockState{Number: block, Batch: block}
}

// S1 — Validator lifecycle.
func TestScenarioValidatorLifecycle(t *testing.T) {
	c, w := newFixture()
	v := addr.FromBytes([]byte("validator-1"))

	_, err := c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindCreateValidator, Signer: v, Value: 10_000, NewSigningKey: &v,
	}, at(100), w, txlog.New())
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), c.Balance())
	rec, err := w.ExpectValidator(v)
	require.NoError(t, err)
	assert.Equal(t, coin.Coin(10_000), rec.Deposit)
	assert.True(t, c.State.Active.Contains(v))

	_, err = c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindDeactivateValidator, Signer: v, Validator: v,
	}, at(200), w, txlog.New())
	require.NoError(t, err)
	rec, err = w.ExpectValidator(v)
	require.NoError(t, err)
	require.NotNil(t, rec.InactiveFrom)
	assert.Equal(t, uint32(200), *rec.InactiveFrom)
	assert.False(t, c.State.Active.Contains(v))

	_, err = c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindRetireValidator, Signer: v,
	}, at(300), w, txlog.New())
	require.NoError(t, err)
	rec, err = w.ExpectValidator(v)
	require.NoError(t, err)
	assert.True(t, rec.Retired)
	require.NotNil(t, rec.RetiredFrom)
	assert.Equal(t, uint32(300), *rec.RetiredFrom)

	_, err = c.CommitOutgoingTransaction(staking.Transaction{
		Kind: staking.KindDeleteValidator, Signer: v, TotalValue: 10_000,
	}, at(301), w, txlog.New())
	require.Error(t, err)
	assert.True(t, errkind.Of(err, errkind.InvalidForState))

	_, err = c.CommitOutgoingTransaction(staking.Transaction{
		Kind: staking.KindDeleteValidator, Signer: v, TotalValue: 10_000,
	}, at(400), w, txlog.New())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), c.Balance())
}

// S2 — Staker min-stake.
func TestScenarioStakerMinStake(t *testing.T) {
	c, w := newFixture()
	s := addr.FromBytes([]byte("staker-1"))

	_, err := c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindCreateStaker, Signer: s, Value: 500,
	}, at(1), w, txlog.New())
	require.NoError(t, err)

	_, err = c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindSetActiveStake, Signer: s, NewActive: 50,
	}, at(2), w, txlog.New())
	require.Error(t, err)
	assert.True(t, errkind.Of(err, errkind.InvalidCoinValue))

	_, err = c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindSetActiveStake, Signer: s, NewActive: 100,
	}, at(3), w, txlog.New())
	require.NoError(t, err)

	rec, err := w.ExpectStaker(s)
	require.NoError(t, err)
	assert.Equal(t, coin.Coin(100), rec.ActiveBalance)
	assert.Equal(t, coin.Coin(400), rec.InactiveBalance)
}

// S3 — Commit/revert round-trip through a delegation change.
func TestScenarioUpdateStakerRoundTrip(t *testing.T) {
	c, w := newFixture()
	v1 := addr.FromBytes([]byte("validator-1"))
	v2 := addr.FromBytes([]byte("validator-2"))
	s := addr.FromBytes([]byte("staker-1"))

	for _, validator := range []addr.Address{v1, v2} {
		_, err := c.CommitIncomingTransaction(staking.Transaction{
			Kind: staking.KindCreateValidator, Signer: validator, Value: 10_000,
		}, at(1), w, txlog.New())
		require.NoError(t, err)
	}
	_, err := c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindCreateStaker, Signer: s, Value: 1_000,
		Delegation: &v1, DelegationSet: true,
	}, at(2), w, txlog.New())
	require.NoError(t, err)

	v1Before, err := w.ExpectValidator(v1)
	require.NoError(t, err)
	v2Before, err := w.ExpectValidator(v2)
	require.NoError(t, err)
	sBefore, err := w.ExpectStaker(s)
	require.NoError(t, err)
	sBeforeClone := sBefore.Clone()
	assert.Equal(t, coin.Coin(11_000), v1Before.TotalStake)
	assert.Equal(t, coin.Coin(10_000), v2Before.TotalStake)

	updateTx := staking.Transaction{
		Kind: staking.KindUpdateStaker, Signer: s,
		Delegation: &v2, DelegationSet: true,
	}
	r, err := c.CommitIncomingTransaction(updateTx, at(3), w, txlog.New())
	require.NoError(t, err)
	require.NotNil(t, r)

	v1After, err := w.ExpectValidator(v1)
	require.NoError(t, err)
	v2After, err := w.ExpectValidator(v2)
	require.NoError(t, err)
	assert.Equal(t, coin.Coin(10_000), v1After.TotalStake)
	assert.Equal(t, coin.Coin(11_000), v2After.TotalStake)

	err = c.RevertIncomingTransaction(updateTx, r, w, txlog.New())
	require.NoError(t, err)

	v1Reverted, err := w.ExpectValidator(v1)
	require.NoError(t, err)
	v2Reverted, err := w.ExpectValidator(v2)
	require.NoError(t, err)
	sReverted, err := w.ExpectStaker(s)
	require.NoError(t, err)

	assert.Equal(t, v1Before.TotalStake, v1Reverted.TotalStake)
	assert.Equal(t, v2Before.TotalStake, v2Reverted.TotalStake)
	assert.Equal(t, sBeforeClone, sReverted)
}

// S4 — Jail then penalize the same slot.
func TestScenarioJailThenPenalize(t *testing.T) {
	c, w := newFixture()
	v := addr.FromBytes([]byte("validator-1"))

	_, err := c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindCreateValidator, Signer: v, Value: 10_000,
	}, at(1), w, txlog.New())
	require.NoError(t, err)
	require.True(t, c.State.Active.Contains(v))

	jailTx := inherent.Inherent{Kind: inherent.KindJail, Validator: v, Range: slots.Range{From: 10, To: 20}}
	jailReceipt, err := c.CommitInherent(jailTx, at(500), w, txlog.New())
	require.NoError(t, err)
	require.NotNil(t, jailReceipt)
	assert.True(t, c.PunishedSlots.PreviousBatch.Contains(15))
	assert.True(t, c.PunishedSlots.CurrentBatch.Contains(15))
	assert.False(t, c.State.Active.Contains(v))

	penalizeTx := inherent.Inherent{
		Kind: inherent.KindPenalize, Validator: v, Slot: 15,
		RegisterPreviousBatch: true, RegisterCurrentBatch: true,
	}
	penalizeReceipt, err := c.CommitInherent(penalizeTx, at(501), w, txlog.New())
	require.NoError(t, err)
	require.NotNil(t, penalizeReceipt)

	err = c.RevertInherent(penalizeTx, penalizeReceipt, w, txlog.New())
	require.NoError(t, err)
	assert.True(t, c.PunishedSlots.PreviousBatch.Contains(15))
	assert.True(t, c.PunishedSlots.CurrentBatch.Contains(15))

	err = c.RevertInherent(jailTx, jailReceipt, w, txlog.New())
	require.NoError(t, err)
	assert.True(t, c.PunishedSlots.PreviousBatch.IsEmpty())
	assert.True(t, c.PunishedSlots.CurrentBatch.IsEmpty())
	rec, err := w.ExpectValidator(v)
	require.NoError(t, err)
	assert.Nil(t, rec.JailedFrom)
	assert.True(t, c.State.Active.Contains(v))
}

// S5 — Failed DeleteValidator zeroing.
func TestScenarioFailedDeleteValidatorZeroing(t *testing.T) {
	c, w := newFixture()
	v := addr.FromBytes([]byte("validator-1"))

	_, err := c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindCreateValidator, Signer: v, Value: 10_000, NewSigningKey: &v,
	}, at(1), w, txlog.New())
	require.NoError(t, err)
	_, err = c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindDeactivateValidator, Signer: v, Validator: v,
	}, at(2), w, txlog.New())
	require.NoError(t, err)
	_, err = c.CommitIncomingTransaction(staking.Transaction{
		Kind: staking.KindRetireValidator, Signer: v,
	}, at(3), w, txlog.New())
	require.NoError(t, err)

	original, err := w.ExpectValidator(v)
	require.NoError(t, err)
	originalClone := original.Clone()

	failTx := staking.Transaction{Kind: staking.KindDeleteValidator, Signer: v, Fee: 10_000}
	r, err := c.CommitFailedTransaction(failTx, at(5), w, txlog.New())
	require.NoError(t, err)
	require.NotNil(t, r)

	_, err = w.GetValidator(v)
	require.NoError(t, err)
	gone, err := w.GetValidator(v)
	require.NoError(t, err)
	assert.Nil(t, gone)

	err = c.RevertFailedTransaction(failTx, r, w, txlog.New())
	require.NoError(t, err)
	restored, err := w.ExpectValidator(v)
	require.NoError(t, err)
	assert.Equal(t, originalClone, restored)
}

// S6 — Finalize batch and its irrevocability.
func TestScenarioFinalizeBatch(t *testing.T) {
	c, w := newFixture()
	c.PunishedSlots.CurrentBatch.Add(3)
	c.PunishedSlots.CurrentBatch.Add(7)
	c.PunishedSlots.PreviousBatch.Add(1)

	_, err := c.CommitInherent(inherent.Inherent{Kind: inherent.KindFinalizeBatch}, at(10), w, txlog.New())
	require.NoError(t, err)
	assert.True(t, c.PunishedSlots.PreviousBatch.Contains(3))
	assert.True(t, c.PunishedSlots.PreviousBatch.Contains(7))
	assert.True(t, c.PunishedSlots.CurrentBatch.IsEmpty())

	err = c.RevertInherent(inherent.Inherent{Kind: inherent.KindFinalizeBatch}, nil, w, txlog.New())
	require.Error(t, err)
	assert.True(t, errkind.Of(err, errkind.InvalidForTarget))
}
