package aggregate

import "github.com/albatross-network/staking/coin"

// State is the Contract aggregate's mutable core: the contract-wide
// balance and the active-validator index (spec §3 Contract). Both the
// transaction handler and the inherent handler mutate it directly; neither
// imports the other.
type State struct {
	Balance coin.Coin
	Active  *ActiveSet
}

// New returns a zero-balance, empty-active-set state.
func New() *State {
	return &State{Active: NewActiveSet()}
}

// Credit adds amount to the contract balance (incoming value).
func (s *State) Credit(amount coin.Coin) error {
	next, err := coin.Add(s.Balance, amount)
	if err != nil {
		return err
	}
	s.Balance = next
	return nil
}

// Debit subtracts amount from the contract balance (outgoing value/fee).
func (s *State) Debit(amount coin.Coin) error {
	next, err := coin.Sub(s.Balance, amount)
	if err != nil {
		return err
	}
	s.Balance = next
	return nil
}
