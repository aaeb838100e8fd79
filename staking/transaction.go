// Package staking implements the incoming/outgoing/failed transaction
// handler (spec §4.2–§4.5, C7): the largest single component of the
// engine. Transaction is a pre-parsed tagged variant — the wire codec,
// signature verification and address derivation the spec places out of
// scope (§1) have already run by the time a Transaction reaches this
// package; Signer is the already-recovered, already-authenticated address.
package staking

import (
	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/coin"
)

// Kind tags which transaction variant a Transaction carries.
type Kind int

const (
	KindCreateValidator Kind = iota
	KindUpdateValidator
	KindDeactivateValidator
	KindReactivateValidator
	KindRetireValidator
	KindCreateStaker
	KindAddStake
	KindUpdateStaker
	KindSetActiveStake
	KindRetireStake
	KindDeleteValidator
	KindRemoveStake
)

// OptionalBytes distinguishes "field not present in this transaction" from
// "field present with an empty value", which a bare []byte cannot: the zero
// value (Set false) means unset, and {Set: true, Value: nil} means "clear it".
type OptionalBytes struct {
	Set   bool
	Value []byte
}

// Transaction is the parsed payload for every incoming/outgoing staking
// transaction kind. Only the fields relevant to Kind are read by any given
// handler; see the per-field comments for which Kind populates them.
//
// Addressing convention: for validator-self-managed kinds (CreateValidator,
// UpdateValidator, RetireValidator, DeleteValidator) and every
// staker-self-managed kind, the acting record's address is Signer. Only
// DeactivateValidator/ReactivateValidator name an explicit Validator target
// distinct from Signer, because those two are authorized by the
// validator's SigningKey rather than by the record owner directly.
type Transaction struct {
	Kind   Kind
	Signer addr.Address
	Fee    coin.Coin

	// Value is the incoming transaction's attached value (deposit amount
	// for CreateValidator, stake amount for CreateStaker/AddStake).
	Value coin.Coin

	// TotalValue is the outgoing transaction's declared total value
	// (DeleteValidator, RemoveStake).
	TotalValue coin.Coin

	// Validator is the explicit target for DeactivateValidator /
	// ReactivateValidator.
	Validator addr.Address

	// --- CreateValidator / UpdateValidator ---
	NewSigningKey    *addr.Address
	NewVotingKey     *[32]byte
	NewRewardAddress *addr.Address
	NewSignalData    OptionalBytes

	// --- CreateStaker / UpdateStaker ---
	// Delegation is the validator to delegate to. DelegationSet
	// distinguishes "no delegation" (CreateStaker) from "clear delegation"
	// vs. "leave delegation unchanged" (UpdateStaker).
	Delegation         *addr.Address
	DelegationSet      bool
	ReactivateAllStake bool

	// --- SetActiveStake ---
	NewActive coin.Coin

	// --- RetireStake --- (RemoveStake uses TotalValue)
	Amount coin.Coin
}
