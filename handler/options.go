package handler

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/facile/pkg/broadcast"
	"github.com/dmitrymomot/facile/pkg/httpserver"
	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/metrics"
	"github.com/dmitrymomot/facile/pkg/ratelimiter"
	"github.com/dmitrymomot/facile/pkg/validator"
)

// Option configures Forms.
type Option func(*Forms)

// WithLogger sets the logger for requests and validation.
func WithLogger(l *slog.Logger) Option {
	return func(f *Forms) {
		if l != nil {
			f.log = l
		}
	}
}

// WithCatalog sets the dictionaries used to localize messages.
func WithCatalog(c *i18n.Catalog) Option {
	return func(f *Forms) {
		if c != nil {
			f.catalog = c
		}
	}
}

// WithLangExtractor sets how the client's language preference is read.
func WithLangExtractor(e i18n.LangExtractor) Option {
	return func(f *Forms) {
		f.extractor = e
	}
}

// WithRegistry sets the shared rule layer of every validator.
func WithRegistry(r *validator.Registry) Option {
	return func(f *Forms) {
		if r != nil {
			f.registry = r
		}
	}
}

// WithMetrics records passes with m and serves g on /metrics.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(f *Forms) {
		f.metrics = m
		f.gatherer = g
	}
}

// WithBroadcaster publishes validation events to b and enables the
// /forms/{form}/events stream.
func WithBroadcaster(b broadcast.Broadcaster[validator.EventPayload]) Option {
	return func(f *Forms) {
		f.broadcaster = b
	}
}

// WithHealthChecks adds readiness checks to /health.
func WithHealthChecks(checks ...httpserver.Check) Option {
	return func(f *Forms) {
		f.checks = append(f.checks, checks...)
	}
}

// WithMaxBodySize limits submitted bodies. Zero keeps the default.
func WithMaxBodySize(n int64) Option {
	return func(f *Forms) {
		if n > 0 {
			f.maxBody = n
		}
	}
}

// WithIPHeaders sets the proxy headers trusted for the client address, in
// order. Without it clientip.DefaultHeaders are used.
func WithIPHeaders(headers ...string) Option {
	return func(f *Forms) {
		f.ipHeaders = headers
	}
}

// WithRateLimit limits validation requests per client address. The
// address comes from clientip.Middleware, which Router installs.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(f *Forms) {
		f.limiter = b
	}
}
