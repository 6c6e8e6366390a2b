package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Guard evaluates whether a transition should be allowed.
type Guard func(ctx context.Context, from State, event Event) bool

// Observer is notified after every completed transition.
type Observer func(ctx context.Context, from, to State, event Event)

// Transition defines a state change triggered by an event.
type Transition struct {
	From   State
	To     State
	Event  Event
	Guards []Guard // all must pass
}

// StringState is a string-backed State.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent is a string-backed Event.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}

// Machine is a thread-safe in-memory finite state machine.
// Transitions are indexed as [fromState][event].
type Machine struct {
	initial     State
	current     State
	transitions map[string]map[string][]Transition
	observers   []Observer
	mu          sync.RWMutex
}

// Option configures a Machine during construction.
type Option func(*Machine) error

// New creates a machine in initial state.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, ErrNilState
	}
	m := &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition adds a transition from → to on event.
func WithTransition(from, to State, event Event, guards ...Guard) Option {
	return func(m *Machine) error {
		return m.AddTransition(from, to, event, guards...)
	}
}

// WithTransitions adds several transitions at once.
func WithTransitions(transitions ...Transition) Option {
	return func(m *Machine) error {
		for i, t := range transitions {
			if err := m.AddTransition(t.From, t.To, t.Event, t.Guards...); err != nil {
				return fmt.Errorf("transition[%d]: %w", i, err)
			}
		}
		return nil
	}
}

// WithObserver registers fn to run after each transition.
func WithObserver(fn Observer) Option {
	return func(m *Machine) error {
		if fn != nil {
			m.observers = append(m.observers, fn)
		}
		return nil
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine) Is(s State) bool {
	return s != nil && m.Current().Name() == s.Name()
}

// AddTransition registers a transition. Several transitions may share a
// from/event pair; the first one whose guards pass wins.
func (m *Machine) AddTransition(from, to State, event Event, guards ...Guard) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		m.transitions[from.Name()] = byEvent
	}
	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:   from,
		To:     to,
		Event:  event,
		Guards: guards,
	})
	return nil
}

// Fire applies event to the current state.
func (m *Machine) Fire(ctx context.Context, event Event) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	t, err := m.match(ctx, event)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = t.To
	observers := m.observers
	m.mu.Unlock()

	for _, fn := range observers {
		fn(ctx, from, t.To, event)
	}
	return nil
}

// CanFire reports whether event would be accepted in the current state.
func (m *Machine) CanFire(ctx context.Context, event Event) bool {
	if event == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.match(ctx, event)
	return err == nil
}

// Reset returns the machine to its initial state without notifying
// observers.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// match must be called with m.mu held.
func (m *Machine) match(ctx context.Context, event Event) (Transition, error) {
	state := m.current.Name()
	candidates := m.transitions[state][event.Name()]
	if len(candidates) == 0 {
		return Transition{}, &TransitionError{State: state, Event: event.Name(), Err: ErrNoTransition}
	}
	for _, t := range candidates {
		if guardsPass(ctx, t, m.current) {
			return t, nil
		}
	}
	return Transition{}, &TransitionError{State: state, Event: event.Name(), Err: ErrTransitionRejected}
}

func guardsPass(ctx context.Context, t Transition, current State) bool {
	for _, g := range t.Guards {
		if g != nil && !g(ctx, current, t.Event) {
			return false
		}
	}
	return true
}
