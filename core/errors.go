package core

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the root of every capability failure. Callers can test
// for it with errors.Is regardless of which operation denied them.
var ErrUnauthorized = errors.New("unauthorized")

// A PermissionError rejects a mutation because the actor's role lacks the
// required capability. It is checked before anything is changed.
type PermissionError struct {
	Role   Role
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("role %s may not %s", e.Role, e.Action)
}

func (e *PermissionError) Unwrap() error {
	return ErrUnauthorized
}

func denied(role Role, action string) error {
	return &PermissionError{Role: role, Action: action}
}

// A ValidationError rejects a mutation because of missing or malformed
// input. No partial document is created or mutated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// An InvariantError signals a corrupted document record: a status outside
// the enumeration, or a supervisor/reviewer set while not in review. It is a
// programming-error signal, not a user input error, and must never be
// downgraded into a false or empty result.
type InvariantError struct {
	DocumentID string
	Detail     string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("document %s violates an invariant: %s", e.DocumentID, e.Detail)
}
