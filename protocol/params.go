// Package protocol holds the staking contract's protocol constants.
// It mirrors the teacher's builtin/params contract-parameter binder: a
// small, explicit struct the embedding node constructs once (from genesis
// configuration or hard defaults) and threads through the engine, rather
// than package-level globals — so a testnet with different economics can
// run the identical engine code.
package protocol

import "github.com/albatross-network/staking/coin"

// Params bundles the protocol constants referenced throughout the staking
// engine (spec §6).
type Params struct {
	// ValidatorDeposit is the fixed bond a CreateValidator transaction must
	// supply as its value.
	ValidatorDeposit coin.Coin

	// MinStake is the minimum non-zero amount any of a staker's three
	// balance components (active/inactive/retired) may hold.
	MinStake coin.Coin

	// ReleaseWindow is the number of batches a retired validator must wait,
	// from its retired_from batch, before it becomes deletable.
	ReleaseWindow uint32

	// SlotsPerEpoch is the number of production slots in one epoch.
	SlotsPerEpoch uint16
}

// Default returns the constants used throughout spec.md's worked scenarios
// (MIN_STAKE=100, VALIDATOR_DEPOSIT=10_000, RELEASE_WINDOW=2 batches).
func Default() Params {
	return Params{
		ValidatorDeposit: 10_000,
		MinStake:         100,
		ReleaseWindow:    2,
		SlotsPerEpoch:    512,
	}
}
