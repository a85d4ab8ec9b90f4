package move

import "errors"

// Sentinel errors for move execution.
var (
	// ErrInvalidCommand is returned when the command byte is not one of
	// L, R, U, D, W, S, A.
	ErrInvalidCommand = errors.New("move: invalid command")

	// ErrNotRunning is returned when Execute is called on a snapshot whose
	// Condition is already terminal. Callers (package vm) are expected to
	// check this themselves before calling Execute; this is a defensive
	// backstop, not the primary control path.
	ErrNotRunning = errors.New("move: world is not in a running state")
)
