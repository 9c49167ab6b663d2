package domain

import "errors"

var (
	// ErrNoMatch signals that input text fits no grammar pattern. It is not
	// a failure: the caller should treat the input as a non-trading utterance
	// and route it elsewhere.
	ErrNoMatch = errors.New("input does not match any trading pattern")

	// ErrCommandNotFound signals that no command with the given ID exists
	// in the ledger.
	ErrCommandNotFound = errors.New("command not found")

	// ErrInvalidTransition signals an attempted status change the state
	// machine does not allow (including any transition out of a terminal state).
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCancelTooLate signals a cancellation attempt after the execution
	// call has already been issued; the command must resolve to EXECUTED
	// or FAILED.
	ErrCancelTooLate = errors.New("command can no longer be cancelled")
)
