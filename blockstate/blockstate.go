// Package blockstate defines the (block_number, epoch, batch) triple the
// block executor supplies to every commit/revert call (spec §2/§6). It is
// deliberately a leaf package with no dependencies so both the transaction
// handler and the inherent handler can depend on it without depending on
// each other.
package blockstate

// BlockState is the block-level context a commit/revert call runs under.
// Time enters the staking engine only through these integers — never a
// wall clock (spec §1 Non-goals).
type BlockState struct {
	Number uint32
	Epoch  uint32
	Batch  uint32
}
