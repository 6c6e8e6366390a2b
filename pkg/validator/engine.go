package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/facile/pkg/broadcast"
	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/logger"
	"github.com/dmitrymomot/facile/pkg/statemachine"
)

// Lifecycle states of a Validator.
const (
	StateIdle      = statemachine.StringState("idle")
	StateRunning   = statemachine.StringState("running")
	StateSucceeded = statemachine.StringState("succeeded")
	StateFailed    = statemachine.StringState("failed")
)

const (
	transitionStart   = statemachine.StringEvent("start")
	transitionSucceed = statemachine.StringEvent("succeed")
	transitionFail    = statemachine.StringEvent("fail")
	transitionFinish  = statemachine.StringEvent("finish")
)

// Validator evaluates the rules of one container's fields.
//
// A Validator is not safe for concurrent use: a Validate call made while
// another one is running on the same Validator (for instance from an event
// handler) returns ErrValidationInProgress.
type Validator struct {
	name        string
	container   Container
	xrules      XRules
	lang        i18n.Dictionary
	registry    *Registry
	instance    *Registry
	bus         *broadcast.Bus[EventPayload]
	broadcaster broadcast.Broadcaster[EventPayload]
	metrics     MetricsRecorder
	logger      *slog.Logger
	state       *statemachine.Machine
	errors      ErrorModel
}

// New creates a Validator for container.
func New(container Container, opts ...Option) (*Validator, error) {
	if container == nil {
		return nil, ErrNilContainer
	}

	v := &Validator{
		container: container,
		registry:  Global(),
		instance:  NewEmptyRegistry(),
		bus:       broadcast.NewBus[EventPayload](),
		logger:    logger.Discard(),
		state: statemachine.MustNew(StateIdle,
			statemachine.WithTransitions(
				statemachine.Transition{From: StateIdle, To: StateRunning, Event: transitionStart},
				statemachine.Transition{From: StateRunning, To: StateSucceeded, Event: transitionSucceed},
				statemachine.Transition{From: StateRunning, To: StateFailed, Event: transitionFail},
				statemachine.Transition{From: StateSucceeded, To: StateIdle, Event: transitionFinish},
				statemachine.Transition{From: StateFailed, To: StateIdle, Event: transitionFinish},
			),
		),
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.lang != nil {
		i18n.SetCurrent(v.lang)
	}
	return v, nil
}

// AddInstanceRule registers fn for this validator only. It shadows rules
// of the same name in the shared registry.
func (v *Validator) AddInstanceRule(name string, fn RuleFunc) {
	v.instance.Add(name, fn)
}

// On registers h for event and returns an ID for Off.
func (v *Validator) On(event Event, h Handler) SubscriptionID {
	return v.bus.On(string(event), h)
}

// Off removes the handler registered under id.
func (v *Validator) Off(event Event, id SubscriptionID) bool {
	return v.bus.Off(string(event), id)
}

// Errors returns the failures of the last pass.
func (v *Validator) Errors() *ErrorModel {
	return &v.errors
}

// State returns the current lifecycle state.
func (v *Validator) State() statemachine.State {
	return v.state.Current()
}

// Container returns the validated container.
func (v *Validator) Container() Container {
	return v.container
}

// Validate runs every field's rules. It reports whether all fields passed.
//
// A non-nil error means the pass was aborted by a configuration problem
// (malformed rule, bad argument, panicking rule); the ErrorModel is then
// empty and the result is false. Validation failures are never returned as
// errors.
func (v *Validator) Validate(ctx context.Context) (bool, error) {
	if err := v.state.Fire(ctx, transitionStart); err != nil {
		return false, ErrValidationInProgress
	}
	defer v.finish(ctx)

	run := EventPayload{RunID: uuid.New(), Form: v.name, Container: v.container}
	started := time.Now()

	v.emit(ctx, EventStart, run)
	v.errors.clear()

	if err := v.validateFields(ctx); err != nil {
		v.errors.clear()
		v.reportConfigError(ctx, run.RunID, err)
		_ = v.state.Fire(ctx, transitionFail)
		v.emit(ctx, EventFailed, run)
		v.emit(ctx, EventEnd, run)
		v.observePass(false, started)
		return false, err
	}

	valid := !v.errors.HasErrors()
	if valid {
		_ = v.state.Fire(ctx, transitionSucceed)
		v.emit(ctx, EventSucceeded, run)
	} else {
		_ = v.state.Fire(ctx, transitionFail)
		v.emit(ctx, EventFailed, run)
		for _, entry := range v.errors.Entries() {
			p := run
			p.Field = entry.Field
			p.Errors = entry.Errors
			v.emit(ctx, EventFieldError, p)
		}
	}

	end := run
	end.Valid = valid
	v.emit(ctx, EventEnd, end)
	v.observePass(valid, started)
	return valid, nil
}

func (v *Validator) validateFields(ctx context.Context) error {
	for _, f := range v.container.Fields() {
		if err := v.validateField(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateField(_ context.Context, f Field) error {
	tokens := SplitRuleList(f.RuleList())
	if len(tokens) == 0 {
		return nil
	}

	rules, err := Preprocess(tokens, v.container.ValueByID, v.xrules)
	if err != nil {
		var ce *RuleConfigError
		if errors.As(err, &ce) && ce.Field == "" {
			ce.Field = f.Name()
		}
		return err
	}

	bail := slices.Contains(tokens, MarkerBail)
	value := f.Value()
	entry := -1

	for _, r := range rules {
		if r.Key == MarkerNullable && value == "" {
			break
		}

		fn, ok := v.lookup(r.Key)
		if !ok {
			continue
		}

		err := callRule(fn, value, r.ArgsText)
		if err == nil {
			continue
		}

		var re *RuleError
		if !errors.As(err, &re) {
			return &RuleConfigError{Rule: r.Name, Field: f.Name(), Err: err}
		}

		fe := FieldError{Field: f, Rule: r.Name, Cause: re.Cause, Args: re.Args}
		if r.Message != "" {
			fe.Message, fe.custom = r.Message, true
		} else {
			fe.Message = i18n.Format(re.Cause, re.Args...)
		}
		if entry < 0 {
			entry = v.errors.Len()
		}
		v.errors.add(entry, fe)

		if v.metrics != nil {
			v.metrics.ObserveRuleFailure(v.name, r.Name, re.Cause)
		}
		if bail {
			break
		}
	}
	return nil
}

func (v *Validator) lookup(key string) (RuleFunc, bool) {
	if fn, ok := v.instance.Lookup(key); ok {
		return fn, true
	}
	return v.registry.Lookup(key)
}

func callRule(fn RuleFunc, value, args string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRulePanicked, r)
		}
	}()
	return fn(value, args)
}

func (v *Validator) emit(ctx context.Context, event Event, p EventPayload) {
	p.Event = event
	v.bus.Emit(ctx, string(event), p)
	if v.broadcaster != nil {
		_ = v.broadcaster.Broadcast(ctx, broadcast.Message[EventPayload]{Topic: string(event), Data: p})
	}
}

func (v *Validator) reportConfigError(ctx context.Context, runID uuid.UUID, err error) {
	attrs := []any{logger.RunID(runID), logger.Error(err)}
	if v.name != "" {
		attrs = append(attrs, logger.Form(v.name))
	}
	rule := ""
	var ce *RuleConfigError
	if errors.As(err, &ce) {
		rule = ce.Rule
		attrs = append(attrs, logger.Field(ce.Field), logger.Rule(ce.Rule))
	}
	v.logger.ErrorContext(ctx, "validation aborted by rule configuration error", attrs...)

	if v.metrics != nil {
		v.metrics.ObserveConfigError(v.name, rule)
	}
}

func (v *Validator) observePass(valid bool, started time.Time) {
	if v.metrics != nil {
		v.metrics.ObservePass(v.name, valid, time.Since(started).Seconds())
	}
}

// finish returns the machine to idle, also when a handler panicked.
func (v *Validator) finish(ctx context.Context) {
	if err := v.state.Fire(ctx, transitionFinish); err != nil {
		v.state.Reset()
	}
}
