package credits

import "errors"

var (
	// ErrBalanceNotFound indicates no balance exists for the email.
	ErrBalanceNotFound = errors.New("credit balance not found")
	// ErrInvalidInput indicates invalid credit operation input.
	ErrInvalidInput = errors.New("invalid credits input")
)
