// Package statemachine implements a small, thread-safe finite state machine.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. Transitions are registered per (from, event) pair
// and may carry guards: the first candidate whose guards all pass is taken,
// and an event with no candidate in the current state is rejected with
// ErrNoTransition.
//
//	const (
//		Idle    = statemachine.StringState("idle")
//		Running = statemachine.StringState("running")
//		Start   = statemachine.StringEvent("start")
//		Finish  = statemachine.StringEvent("finish")
//	)
//
//	m := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Running, Start),
//		statemachine.WithTransition(Running, Idle, Finish),
//	)
//	if err := m.Fire(ctx, Start); err != nil {
//		// already running
//	}
//
// Observers registered with WithObserver run after each transition, outside
// the machine's lock, so they may inspect the machine freely.
package statemachine
