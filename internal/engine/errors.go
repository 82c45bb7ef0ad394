package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoViewedInspirations is returned when an inspiration quiz is requested
	// before any inspiration was ever saved.
	ErrNoViewedInspirations = errors.New("no viewed inspirations yet")

	// ErrSessionState is returned when a quiz operation is not valid in the
	// session's current state.
	ErrSessionState = errors.New("quiz session is not in a valid state for this action")
)

// ValidationError reports missing or malformed user input. No state is
// mutated when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// GenerationError wraps a failed or unusable call to the content generator.
type GenerationError struct {
	Op  string
	Err error
}

func (e GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Op, e.Err)
}

func (e GenerationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
