package validator

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/facile/pkg/broadcast"
	"github.com/dmitrymomot/facile/pkg/i18n"
)

// Option configures a Validator.
type Option func(*Validator)

// WithLanguage makes dict the process-wide dictionary when the Validator
// is constructed. It affects every validator in the process.
func WithLanguage(dict i18n.Dictionary) Option {
	return func(v *Validator) {
		v.lang = dict
	}
}

// WithXRules sets the configuration x-rules resolve against.
func WithXRules(xrules XRules) Option {
	return func(v *Validator) {
		v.xrules = xrules
	}
}

// WithRenderer registers r on the start and field error events. Errors
// are passed to Render most recent first.
func WithRenderer(r Renderer) Option {
	return func(v *Validator) {
		if r == nil {
			return
		}
		v.bus.On(string(EventStart), func(ctx context.Context, p EventPayload) {
			r.Clear(ctx, p.Container)
		})
		v.bus.On(string(EventFieldError), func(ctx context.Context, p EventPayload) {
			r.Render(ctx, p.Container, p.Field, Replay(p.Errors))
		})
	}
}

// WithHandlers registers one initial handler per event, ahead of any
// handler added later with On.
func WithHandlers(handlers map[Event]Handler) Option {
	return func(v *Validator) {
		for _, ev := range Events {
			if h, ok := handlers[ev]; ok {
				v.bus.On(string(ev), h)
			}
		}
	}
}

// WithLogger sets the logger used to report configuration errors.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithRegistry replaces the global registry as the shared rule layer.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithMetrics records every pass with m.
func WithMetrics(m MetricsRecorder) Option {
	return func(v *Validator) {
		v.metrics = m
	}
}

// WithBroadcaster publishes every lifecycle event to b, using the event
// name as topic. Publishing happens after the synchronous handlers ran.
func WithBroadcaster(b broadcast.Broadcaster[EventPayload]) Option {
	return func(v *Validator) {
		v.broadcaster = b
	}
}

// WithName labels the validator's form in events, logs and metrics.
func WithName(name string) Option {
	return func(v *Validator) {
		v.name = name
	}
}
