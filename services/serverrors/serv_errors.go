package serverrors

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrValidation    = errors.New("invalid request data")
	ErrNoCapacity    = errors.New("no available spots for the requested dates")
	ErrTerminalState = errors.New("booking or enrollment already in a terminal state")
	ErrExternal      = errors.New("payment provider request failed")
)
