// Package txlog implements the staking contract's append-only structured
// event log (spec §4.7, C9). Logs are informational only — no state depends
// on them — but the exact sequence in which entries are pushed is part of
// the contract's observable behaviour, so entries are typed (a Kind plus
// address/amount fields) rather than free-form Printf-shaped text. PayFee
// and Transfer have dedicated constructors; every other event is appended
// through Push with an explicit Kind.
package txlog

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
)

// Kind tags the semantic meaning of a log entry.
type Kind string

const (
	PayFee              Kind = "pay_fee"
	Transfer            Kind = "transfer"
	CreateValidator     Kind = "create_validator"
	UpdateValidator     Kind = "update_validator"
	DeactivateValidator Kind = "deactivate_validator"
	ReactivateValidator Kind = "reactivate_validator"
	RetireValidator     Kind = "retire_validator"
	CreateStaker        Kind = "create_staker"
	AddStake            Kind = "add_stake"
	UpdateStaker        Kind = "update_staker"
	SetActiveStake      Kind = "set_active_stake"
	RetireStake         Kind = "retire_stake"
	DeleteValidator     Kind = "delete_validator"
	RemoveStake         Kind = "remove_stake"
	Jail                Kind = "jail"
	Penalize            Kind = "penalize"
	FinalizeBatch       Kind = "finalize_batch"
	FinalizeEpoch       Kind = "finalize_epoch"
)

// Entry is one logged event.
type Entry struct {
	Kind    Kind
	Address addr.Address  // the validator/staker the event concerns
	To      *addr.Address // secondary address, e.g. Transfer's destination
	Amount  coin.Coin
}

// Log is an append-only sequence of Entry.
type Log struct {
	entries []Entry
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Push appends an arbitrary entry.
func (l *Log) Push(e Entry) {
	l.entries = append(l.entries, e)
}

// PayFee logs the fixed PayFee event that opens every commit sequence.
func (l *Log) PayFee(payer addr.Address, fee coin.Coin) {
	l.Push(Entry{Kind: PayFee, Address: payer, Amount: fee})
}

// Transfer logs the Transfer event that follows PayFee in every commit
// sequence (spec §4.7).
func (l *Log) Transfer(from, to addr.Address, amount coin.Coin) {
	l.Push(Entry{Kind: Transfer, Address: from, To: &to, Amount: amount})
}

// Entries returns the full ordered entry list.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Kinds returns just the Kind of each entry, the shape spec §8's sequence
// assertions check against.
func (l *Log) Kinds() []Kind {
	kinds := make([]Kind, len(l.entries))
	for i, e := range l.entries {
		kinds[i] = e.Kind
	}
	return kinds
}
