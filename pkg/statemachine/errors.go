package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrNilState          = errors.New("statemachine: initial state is nil")
	ErrInvalidTransition = errors.New("statemachine: transition needs from, to and event")
	ErrInvalidEvent      = errors.New("statemachine: event is nil")

	// ErrNoTransition means the current state has no transition for the event.
	ErrNoTransition = errors.New("statemachine: no transition")
	// ErrTransitionRejected means every candidate transition failed its guards.
	ErrTransitionRejected = errors.New("statemachine: transition rejected by guards")
)

// TransitionError reports a failed Fire. It matches ErrNoTransition or
// ErrTransitionRejected with errors.Is.
type TransitionError struct {
	State string
	Event string
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: state %q, event %q", e.Err, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
