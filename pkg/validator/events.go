package validator

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/facile/pkg/broadcast"
)

// Event names a lifecycle notification of a validation pass.
type Event string

const (
	EventStart      Event = "validation:start"
	EventSucceeded  Event = "validation:succeeded"
	EventFailed     Event = "validation:failed"
	EventEnd        Event = "validation:end"
	EventFieldError Event = "field:error"
)

// Events lists every lifecycle event in emission order.
var Events = []Event{EventStart, EventSucceeded, EventFailed, EventFieldError, EventEnd}

// EventPayload is delivered to handlers. Field and Errors are only set for
// EventFieldError; Valid is only meaningful for EventEnd.
type EventPayload struct {
	Event     Event
	RunID     uuid.UUID
	Form      string
	Container Container
	Field     Field
	Errors    []FieldError
	Valid     bool
}

// Handler receives lifecycle events. Handlers run synchronously on the
// goroutine calling Validate, in registration order.
type Handler = broadcast.Handler[EventPayload]

// SubscriptionID identifies a registered handler for Off.
type SubscriptionID = broadcast.SubscriptionID

// Renderer displays failures next to their fields.
type Renderer interface {
	// Clear removes everything rendered by a previous pass.
	Clear(ctx context.Context, c Container)
	// Render displays errs for f. errs arrive most recent first.
	Render(ctx context.Context, c Container, f Field, errs []FieldError)
}

// MetricsRecorder observes validation passes.
type MetricsRecorder interface {
	ObservePass(form string, valid bool, seconds float64)
	ObserveRuleFailure(form, rule, cause string)
	ObserveConfigError(form, rule string)
}
