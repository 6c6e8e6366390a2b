package broadcast

import (
	"context"
	"slices"
	"sync"
)

// Handler receives a payload emitted on a Bus.
type Handler[T any] func(ctx context.Context, payload T)

// SubscriptionID identifies a handler registered on a Bus.
type SubscriptionID uint64

type registration[T any] struct {
	id      SubscriptionID
	handler Handler[T]
}

// Bus is a synchronous publish/subscribe channel keyed by topic.
//
// Handlers run on the emitting goroutine in registration order, and every
// handler runs; there is no cancellation. Handlers may register or remove
// handlers while being invoked; the change applies to the next Emit.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers map[string][]registration[T]
	nextID   SubscriptionID
}

// NewBus returns an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{handlers: make(map[string][]registration[T])}
}

// On appends h to the handlers of topic. Nil handlers are ignored and
// yield a zero ID.
func (b *Bus[T]) On(topic string, h Handler[T]) SubscriptionID {
	if h == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[topic] = append(b.handlers[topic], registration[T]{id: b.nextID, handler: h})
	return b.nextID
}

// Off removes the handler registered under id. It reports whether a
// handler was removed.
func (b *Bus[T]) Off(topic string, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[topic]
	idx := slices.IndexFunc(regs, func(r registration[T]) bool { return r.id == id })
	if idx < 0 {
		return false
	}
	b.handlers[topic] = slices.Delete(slices.Clone(regs), idx, idx+1)
	return true
}

// Emit invokes the handlers of topic in registration order.
func (b *Bus[T]) Emit(ctx context.Context, topic string, payload T) {
	b.mu.RLock()
	regs := b.handlers[topic]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(ctx, payload)
	}
}

// Count returns the number of handlers registered for topic.
func (b *Bus[T]) Count(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}

// Clear removes every handler.
func (b *Bus[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.handlers)
}
