package handler

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/facile/pkg/broadcast"
	"github.com/dmitrymomot/facile/pkg/clientip"
	"github.com/dmitrymomot/facile/pkg/form"
	"github.com/dmitrymomot/facile/pkg/httpserver"
	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/logger"
	"github.com/dmitrymomot/facile/pkg/metrics"
	"github.com/dmitrymomot/facile/pkg/ratelimiter"
	"github.com/dmitrymomot/facile/pkg/requestid"
	"github.com/dmitrymomot/facile/pkg/validator"
)

const defaultMaxBody = 1 << 20

// Forms serves the forms of a store and validates their submissions.
type Forms struct {
	store       *form.Store
	log         *slog.Logger
	catalog     *i18n.Catalog
	extractor   i18n.LangExtractor
	registry    *validator.Registry
	metrics     *metrics.Metrics
	gatherer    prometheus.Gatherer
	broadcaster broadcast.Broadcaster[validator.EventPayload]
	checks      []httpserver.Check
	maxBody     int64
	ipHeaders   []string
	limiter     *ratelimiter.Bucket
	onError     ErrorHandler
}

// Submission is a bound validation request.
type Submission struct {
	Form   string
	Values url.Values
}

// Result is the body of a successful validation.
type Result struct {
	Form  string `json:"form"`
	Valid bool   `json:"valid"`
}

// New returns the form handlers for store. Without WithCatalog the
// built-in dictionaries are used with English as default; without
// WithRegistry validators share validator.Global().
func New(store *form.Store, opts ...Option) (*Forms, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	f := &Forms{
		store:    store,
		log:      logger.Discard(),
		registry: validator.Global(),
		maxBody:  defaultMaxBody,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.catalog == nil {
		c, err := i18n.NewCatalog(i18n.DefaultLanguage)
		if err != nil {
			return nil, err
		}
		f.catalog = c
	}
	f.onError = NewErrorHandler(f.log)
	return f, nil
}

// Register mounts the form endpoints on r. They expect i18n.Middleware to
// run first; Router takes care of that.
func (f *Forms) Register(r chi.Router) {
	r.Get("/forms", f.list)
	r.Get("/forms/{form}", Wrap[Submission](f.show,
		WithBinders[Submission](bindFormName),
		WithErrorHandler[Submission](f.onError),
	))
	r.With(f.rateLimit).Post("/forms/{form}/validate", Wrap[Submission](f.validate,
		WithBinders[Submission](bindFormName, bindValues(f.maxBody)),
		WithErrorHandler[Submission](f.onError),
	))
	r.Get("/forms/{form}/events", Wrap[Submission](f.events,
		WithBinders[Submission](bindFormName),
		WithErrorHandler[Submission](f.onError),
	))
}

// Router returns a router serving the form endpoints together with
// /health and, when metrics are configured, /metrics.
func (f *Forms) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(f.ipHeaders...),
		f.logRequests,
	)

	r.Get("/health", httpserver.HealthCheckHandler(f.log, f.checks...))
	if f.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(f.gatherer))
	}

	r.Group(func(r chi.Router) {
		r.Use(i18n.Middleware(f.catalog, f.extractor))
		f.Register(r)
	})
	return r
}

// rateLimit limits submissions per client address when a limiter is set.
func (f *Forms) rateLimit(next http.Handler) http.Handler {
	if f.limiter == nil {
		return next
	}
	denied := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.onError(NewContext(w, r), ErrTooManyRequests)
	})
	byClient := func(r *http.Request) string {
		return clientip.FromContext(r.Context())
	}
	return ratelimiter.Middleware(f.limiter, byClient, denied)(next)
}

func (f *Forms) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		f.log.LogAttrs(r.Context(), slog.LevelDebug, "http request",
			logger.RequestID(requestid.FromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("client_ip", clientip.FromContext(r.Context())),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func (f *Forms) list(w http.ResponseWriter, r *http.Request) {
	_ = JSON(f.store.Names()).Render(w, r)
}

func (f *Forms) show(ctx Context, sub Submission) Response {
	tmpl, err := f.store.Get(sub.Form)
	if err != nil {
		return Fail(err)
	}
	return Templ(FormPage(tmpl, ctx.Lang(), nil))
}

func (f *Forms) validate(ctx Context, sub Submission) Response {
	tmpl, err := f.store.Get(sub.Form)
	if err != nil {
		return Fail(err)
	}

	bound := tmpl.Bind(sub.Values)
	renderer := NewPatchRenderer(ctx.Dictionary())
	v, err := bound.NewValidator(f.validatorOptions(renderer)...)
	if err != nil {
		return Fail(err)
	}
	valid, err := v.Validate(ctx)
	if err != nil {
		return Fail(err)
	}

	r := ctx.Request()
	switch {
	case IsDataStar(r):
		patches := append(renderer.Patches(),
			Patch(StatusBadge(bound.Name, valid), WithTarget("#"+StatusID(bound.Name))),
		)
		return TemplMulti(http.StatusOK, patches...)
	case wantsHTML(r):
		status := http.StatusOK
		if !valid {
			status = http.StatusUnprocessableEntity
		}
		return TemplWithStatus(status, FormPage(bound, ctx.Lang(), renderer.Messages()))
	}

	meta := map[string]any{"lang": ctx.Lang()}
	if !valid {
		return JSONValidationError("validation failed", renderer.Messages(), WithJSONMeta(meta))
	}
	return JSON(Result{Form: bound.Name, Valid: true}, WithJSONMeta(meta))
}

// events streams the outcome of every pass of a form as a status patch
// followed by a lastRun signal.
func (f *Forms) events(ctx Context, sub Submission) Response {
	if f.broadcaster == nil {
		return Fail(ErrNotFound)
	}
	if _, err := f.store.Get(sub.Form); err != nil {
		return Fail(err)
	}
	return SSE(func(stream StreamContext) error {
		subscription := f.broadcaster.Subscribe(stream, string(validator.EventEnd))
		defer subscription.Close()

		messages := subscription.Receive(stream)
		for {
			select {
			case <-stream.Done():
				return nil
			case msg, ok := <-messages:
				if !ok {
					return nil
				}
				if msg.Data.Form != sub.Form {
					continue
				}
				err := stream.SendComponent(
					StatusBadge(sub.Form, msg.Data.Valid),
					WithTarget("#"+StatusID(sub.Form)),
				)
				if err != nil {
					return err
				}
				err = stream.SendSignals(map[string]any{
					"lastRun": map[string]any{"id": msg.Data.RunID.String(), "valid": msg.Data.Valid},
				})
				if err != nil {
					return err
				}
			}
		}
	})
}

func (f *Forms) validatorOptions(renderer validator.Renderer) []validator.Option {
	opts := []validator.Option{
		validator.WithLogger(f.log),
		validator.WithRegistry(f.registry),
		validator.WithRenderer(renderer),
	}
	if f.metrics != nil {
		opts = append(opts, validator.WithMetrics(f.metrics))
	}
	if f.broadcaster != nil {
		opts = append(opts, validator.WithBroadcaster(f.broadcaster))
	}
	return opts
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func bindFormName(r *http.Request, sub *Submission) error {
	sub.Form = chi.URLParam(r, "form")
	if sub.Form == "" {
		return ErrNotFound
	}
	return nil
}

// bindValues reads url-encoded and multipart bodies, or DataStar signals
// sent as JSON.
func bindValues(maxBody int64) Bind[Submission] {
	return func(r *http.Request, sub *Submission) error {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBody)

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch mediaType {
		case "application/json":
			signals := make(map[string]any)
			if err := datastar.ReadSignals(r, &signals); err != nil {
				return fmt.Errorf("%w: %w", ErrBadRequest, err)
			}
			sub.Values = signalValues(signals)
		case "multipart/form-data":
			if err := r.ParseMultipartForm(maxBody); err != nil {
				return fmt.Errorf("%w: %w", ErrBadRequest, err)
			}
			sub.Values = r.PostForm
		case "", "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrBadRequest, err)
			}
			sub.Values = r.PostForm
		default:
			return ErrUnsupportedMedia
		}
		return nil
	}
}

// signalValues flattens signals into form values. Booleans become "on"
// when set, the way browsers submit checkboxes.
func signalValues(signals map[string]any) url.Values {
	values := make(url.Values, len(signals))
	for key, raw := range signals {
		switch v := raw.(type) {
		case []any:
			for _, item := range v {
				if s, ok := signalString(item); ok {
					values.Add(key, s)
				}
			}
		default:
			if s, ok := signalString(v); ok {
				values.Add(key, s)
			}
		}
	}
	return values
}

func signalString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "on", true
		}
		return "", false
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
