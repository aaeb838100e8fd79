// Package contract implements the Contract aggregate (spec §3/§6, C10): the
// single process-wide entry point the block executor drives. It holds the
// balance and active-validator index (aggregate.State) and the
// punished-slots ledger, wires in protocol.Params, and dispatches every
// commit/revert call to the staking or inherent package. Contract is not
// safe for concurrent use — the block executor is assumed to serialize all
// calls into one instance, exactly the way the teacher's block-state layer
// owns its critical section without internal locking (spec §5).
package contract

import (
	"github.com/albatross-network/staking/aggregate"
	"github.com/albatross-network/staking/blockstate"
	"github.com/albatross-network/staking/inherent"
	"github.com/albatross-network/staking/protocol"
	"github.com/albatross-network/staking/receipt"
	"github.com/albatross-network/staking/reserve"
	"github.com/albatross-network/staking/slots"
	"github.com/albatross-network/staking/staking"
	"github.com/albatross-network/staking/store"
	"github.com/albatross-network/staking/txlog"
)

// Contract is the staking contract aggregate.
type Contract struct {
	Params protocol.Params

	State         *aggregate.State
	PunishedSlots *slots.Ledger
}

// New constructs an empty Contract under the given protocol parameters.
func New(params protocol.Params) *Contract {
	return &Contract{
		Params:        params,
		State:         aggregate.New(),
		PunishedSlots: slots.New(),
	}
}

// Balance returns the contract's current managed balance.
func (c *Contract) Balance() uint64 { return uint64(c.State.Balance) }

// ActiveValidatorCount returns the number of validators currently in the
// active set.
func (c *Contract) ActiveValidatorCount() int { return c.State.Active.Len() }

func (c *Contract) CommitIncomingTransaction(tx staking.Transaction, bs blockstate.BlockState, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	return staking.CommitIncoming(c.State, c.Params, bs, tx, w, log)
}

func (c *Contract) RevertIncomingTransaction(tx staking.Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	return staking.RevertIncoming(c.State, c.Params, tx, r, w, log)
}

func (c *Contract) CommitOutgoingTransaction(tx staking.Transaction, bs blockstate.BlockState, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	return staking.CommitOutgoing(c.State, c.Params, bs, tx, w, log)
}

func (c *Contract) RevertOutgoingTransaction(tx staking.Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	return staking.RevertOutgoing(c.State, tx, r, w, log)
}

func (c *Contract) CommitFailedTransaction(tx staking.Transaction, bs blockstate.BlockState, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	return staking.CommitFailed(c.State, c.Params, bs, tx, w, log)
}

func (c *Contract) RevertFailedTransaction(tx staking.Transaction, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	return staking.RevertFailed(c.State, tx, r, w, log)
}

func (c *Contract) ReserveBalance(tx staking.Transaction, reserved *reserve.Tracker, bs blockstate.BlockState, r store.Reader) error {
	return staking.ReserveBalance(reserved, c.Params, bs, tx, r)
}

func (c *Contract) ReleaseBalance(tx staking.Transaction, reserved *reserve.Tracker) error {
	return staking.ReleaseBalance(reserved, tx)
}

func (c *Contract) CommitInherent(inh inherent.Inherent, bs blockstate.BlockState, w store.Writer, ilog *txlog.Log) (*receipt.Receipt, error) {
	return inherent.Commit(c.PunishedSlots, c.State, bs, inh, w, ilog)
}

func (c *Contract) RevertInherent(inh inherent.Inherent, r *receipt.Receipt, w store.Writer, ilog *txlog.Log) error {
	return inherent.Revert(c.PunishedSlots, c.State, inh, r, w, ilog)
}
