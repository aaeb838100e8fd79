// Package errkind implements the staking engine's non-panicking error
// taxonomy (spec §7). It generalizes the teacher's reverts.ErrRevert —
// a bare string-message revert — into a tagged error carrying a machine
// checkable Kind plus optional structured fields, so callers can branch on
// the Kind (via errkind.Of, or errors.As into a *errkind.Error variable) the
// way the Rust source switches on AccountError variants.
package errkind

import "fmt"

// Kind enumerates the non-panicking failure classes of the staking engine.
type Kind string

const (
	InvalidForRecipient    Kind = "invalid_for_recipient"
	InvalidForSender       Kind = "invalid_for_sender"
	InvalidForTarget       Kind = "invalid_for_target"
	NonExistentAddress     Kind = "non_existent_address"
	AlreadyExistentAddress Kind = "already_existent_address"
	InsufficientFunds      Kind = "insufficient_funds"
	InvalidCoinValue       Kind = "invalid_coin_value"
	InvalidReceipt         Kind = "invalid_receipt"
	InvalidForState        Kind = "invalid_for_state"
)

// Error is the single error type returned by every handler in this module.
type Error struct {
	Kind    Kind
	Message string

	// Needed/Balance are populated for InsufficientFunds only.
	Needed  uint64
	Balance uint64
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

// Is lets errors.Is(err, errkind.New(k, "")) match on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds a plain error of the given kind with a free-form message.
func New(k Kind, message string) *Error {
	return &Error{Kind: k, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// NonExistent builds a NonExistentAddress error naming the missing record.
func NonExistent(kind, addr string) *Error {
	return Newf(NonExistentAddress, "%s %s does not exist", kind, addr)
}

// AlreadyExistent builds an AlreadyExistentAddress error.
func AlreadyExistent(kind, addr string) *Error {
	return Newf(AlreadyExistentAddress, "%s %s already exists", kind, addr)
}

// Insufficient builds an InsufficientFunds error carrying the shortfall.
func Insufficient(needed, balance uint64) *Error {
	return &Error{
		Kind:    InsufficientFunds,
		Message: fmt.Sprintf("needed %d, have %d", needed, balance),
		Needed:  needed,
		Balance: balance,
	}
}

// Of reports whether err carries the given Kind.
func Of(err error, k Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == k
}
