package validator_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facile/pkg/broadcast"
	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/validator"
)

type testField struct {
	name  string
	value string
	rules string
}

func (f *testField) Name() string     { return f.name }
func (f *testField) Value() string    { return f.value }
func (f *testField) RuleList() string { return f.rules }

type testForm struct {
	fields []*testField
}

func form(fields ...*testField) *testForm {
	return &testForm{fields: fields}
}

func (c *testForm) Fields() []validator.Field {
	out := make([]validator.Field, len(c.fields))
	for i, f := range c.fields {
		out[i] = f
	}
	return out
}

func (c *testForm) ValueByID(id string) string {
	for _, f := range c.fields {
		if f.name == id {
			return f.value
		}
	}
	return ""
}

// newValidator isolates the validator from the global registry.
func newValidator(t *testing.T, c validator.Container, opts ...validator.Option) *validator.Validator {
	t.Helper()
	opts = append([]validator.Option{validator.WithRegistry(validator.NewRegistry())}, opts...)
	v, err := validator.New(c, opts...)
	require.NoError(t, err)
	return v
}

func failing(cause string) validator.RuleFunc {
	return func(string, string) error { return validator.Invalid(cause) }
}

func TestNew_NilContainer(t *testing.T) {
	t.Parallel()

	_, err := validator.New(nil)
	assert.ErrorIs(t, err, validator.ErrNilContainer)
}

func TestValidate_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("between number in range", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t, form(&testField{name: "n", value: "5", rules: "between:number,1,10"}))

		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, v.Errors().HasErrors())
	})

	t.Run("digits failure message", func(t *testing.T) {
		t.Parallel()
		f := &testField{name: "code", value: "abc", rules: "digits:3"}
		v := newValidator(t, form(f))

		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)

		errs := v.Errors().Get("code")
		require.Len(t, errs, 1)
		assert.Equal(t, validator.CauseDigits, errs[0].Cause)
		assert.Equal(t, []string{"3"}, errs[0].Args)
		assert.Equal(t, "digits", errs[0].Rule)
		assert.Same(t, f, errs[0].Field)
		assert.Equal(t, "The value must be a 3-digits number", errs[0].Message)
		assert.Equal(t, "The value must be a 3-digits number", errs[0].Localize(i18n.En()))
	})

	t.Run("only the failing field is recorded", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t, form(
			&testField{name: "name", value: "", rules: "required"},
			&testField{name: "email", value: "a@b.com", rules: "email"},
		))

		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 1, v.Errors().Len())
		assert.Equal(t, []string{"name"}, v.Errors().Fields())
		assert.Equal(t, validator.CauseRequired, v.Errors().Get("name")[0].Cause)
		assert.False(t, v.Errors().Has("email"))
	})

	t.Run("fields without rules are ignored", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t, form(&testField{name: "free", value: ""}))
		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

// Registers on the global registry; not parallel.
func TestValidate_GlobalXRule(t *testing.T) {
	t.Cleanup(validator.Global().Reset)

	validator.AddRule("isFoo", func(value, args string) error {
		if value == args {
			return nil
		}
		return validator.Invalid("is-foo", args)
	})

	f := &testField{name: "word", value: "foo", rules: "x-isFoo:expected"}
	v, err := validator.New(form(f), validator.WithXRules(validator.XRules{
		"expected": validator.Rich("foo", "Must be foo"),
	}))
	require.NoError(t, err)

	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	f.value = "bar"
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Must be foo", v.Errors().Get("word")[0].Message)
	assert.Equal(t, "Must be foo", v.Errors().Get("word")[0].Localize(i18n.Fa()))

	// registration after construction is visible to the existing validator
	validator.AddRule("isFoo", func(string, string) error { return nil })
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_Required(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", " ", "\t"} {
		v := newValidator(t, form(&testField{name: "f", value: value, rules: "required"}))
		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, validator.CauseRequired, v.Errors().Get("f")[0].Cause)
	}

	v := newValidator(t, form(&testField{name: "f", value: " x ", rules: "required"}))
	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_Bail(t *testing.T) {
	t.Parallel()

	run := func(rules string) []validator.FieldError {
		v := newValidator(t, form(&testField{name: "f", value: "x", rules: rules}))
		v.AddInstanceRule("ruleA", failing("a"))
		v.AddInstanceRule("ruleB", failing("b"))
		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		return v.Errors().Get("f")
	}

	errs := run("bail|ruleA|ruleB")
	require.Len(t, errs, 1)
	assert.Equal(t, "a", errs[0].Cause)

	errs = run("ruleA|ruleB|bail")
	require.Len(t, errs, 1)

	errs = run("ruleA|ruleB")
	require.Len(t, errs, 2)
	assert.Equal(t, "a", errs[0].Cause)
	assert.Equal(t, "b", errs[1].Cause)
}

func TestValidate_BailIsPerField(t *testing.T) {
	t.Parallel()

	v := newValidator(t, form(
		&testField{name: "first", value: "", rules: "bail|required|email"},
		&testField{name: "second", value: "", rules: "required|email"},
	))
	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, v.Errors().Get("first"), 1)
	assert.Len(t, v.Errors().Get("second"), 2)
}

func TestValidate_Nullable(t *testing.T) {
	t.Parallel()

	v := newValidator(t, form(&testField{name: "f", value: "", rules: "nullable|email"}))
	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, v.Errors().Len())

	v = newValidator(t, form(&testField{name: "f", value: "", rules: "email"}))
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	errs := v.Errors().Get("f")
	require.Len(t, errs, 1)
	assert.Equal(t, validator.CauseEmail, errs[0].Cause)

	v = newValidator(t, form(&testField{name: "f", value: "nope", rules: "nullable|email"}))
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	// rules before the marker still run
	v = newValidator(t, form(&testField{name: "f", value: "", rules: "required|nullable|email"}))
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, v.Errors().Get("f"), 1)

	// the marker is recognised by name, arguments are ignored
	v = newValidator(t, form(&testField{name: "f", value: "", rules: "nullable:|email"}))
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_NumberSyntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		rules string
		want  bool
	}{
		{"5", "min:number,1", true},
		{"1.5e1", "between:number,1,20", true},
		{"inf", "min:number,1", false},
		{"INF", "min:number,1", false},
		{"+inf", "min:number,1", false},
		{"Infinity", "min:number,1", false},
		{"0x1p3", "between:number,1,10", false},
		{"0x5", "max:number,10", false},
	}
	for _, tt := range tests {
		t.Run(tt.rules+"/"+tt.value, func(t *testing.T) {
			t.Parallel()
			v := newValidator(t, form(&testField{name: "n", value: tt.value, rules: tt.rules}))
			ok, err := v.Validate(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestValidate_KindInference(t *testing.T) {
	t.Parallel()

	v := newValidator(t, form(&testField{name: "age", value: "150", rules: "number|between:1,99"}))
	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, validator.CauseBetweenNumber, v.Errors().Get("age")[0].Cause)

	// marker placed after the rule is not seen: "150" has 3 characters
	v = newValidator(t, form(&testField{name: "age", value: "150", rules: "between:1,99|number"}))
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_RequiredIf(t *testing.T) {
	t.Parallel()

	other := &testField{name: "company", value: "ACME"}
	vat := &testField{name: "vat", value: "", rules: "requiredIf:company"}
	v := newValidator(t, form(other, vat))

	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	other.value = ""
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, v.Errors().Len())
}

func TestValidate_UnknownRulesPass(t *testing.T) {
	t.Parallel()

	v := newValidator(t, form(&testField{name: "f", value: "x", rules: "whatever:1|array|string"}))
	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_InstanceOverride(t *testing.T) {
	t.Parallel()

	shared := validator.NewEmptyRegistry()
	var calls []string
	shared.Add("r", func(string, string) error { calls = append(calls, "global"); return nil })

	c := form(&testField{name: "f", value: "x", rules: "r"})
	withOverride, err := validator.New(c, validator.WithRegistry(shared))
	require.NoError(t, err)
	withOverride.AddInstanceRule("r", func(string, string) error { calls = append(calls, "instance"); return nil })

	plain, err := validator.New(c, validator.WithRegistry(shared))
	require.NoError(t, err)

	_, err = withOverride.Validate(context.Background())
	require.NoError(t, err)
	_, err = plain.Validate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"instance", "global"}, calls)
}

func TestValidate_LastRegistrationWins(t *testing.T) {
	t.Parallel()

	shared := validator.NewEmptyRegistry()
	v, err := validator.New(form(&testField{name: "f", value: "x", rules: "check"}), validator.WithRegistry(shared))
	require.NoError(t, err)

	shared.Add("check", failing("first"))
	shared.Add("check", failing("second"))

	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "second", v.Errors().Get("f")[0].Cause)
}

func TestValidate_ConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rules string
		want  error
	}{
		{"bad argument", "between:number,9,1", validator.ErrInvalidRange},
		{"missing argument", "startsWith", validator.ErrMissingArgument},
		{"bad pattern", "regex:/(/", validator.ErrInvalidPattern},
		{"malformed x-rule", "x-min", validator.ErrMalformedXRule},
		{"unknown x-rule key", "x-min:nope", validator.ErrUnknownXRule},
		{"panicking rule", "boom", validator.ErrRulePanicked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := newValidator(t, form(
				&testField{name: "before", value: "", rules: "required"},
				&testField{name: "broken", value: "1", rules: tt.rules},
			))
			v.AddInstanceRule("boom", func(string, string) error { panic("kaboom") })

			var events []validator.Event
			for _, ev := range validator.Events {
				v.On(ev, func(_ context.Context, p validator.EventPayload) { events = append(events, p.Event) })
			}

			ok, err := v.Validate(context.Background())
			assert.False(t, ok)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, validator.IsConfigError(err))
			assert.Contains(t, err.Error(), "broken")

			assert.False(t, v.Errors().HasErrors(), "error model is discarded")
			assert.Equal(t, []validator.Event{
				validator.EventStart, validator.EventFailed, validator.EventEnd,
			}, events)
			assert.True(t, v.State() == validator.StateIdle)
		})
	}
}

func TestValidate_Events(t *testing.T) {
	t.Parallel()

	t.Run("failed pass", func(t *testing.T) {
		t.Parallel()
		c := form(
			&testField{name: "a", value: "", rules: "required|min:3"},
			&testField{name: "b", value: "ok", rules: "required"},
			&testField{name: "c", value: "x", rules: "email"},
		)
		v := newValidator(t, c, validator.WithName("signup"))

		var log []string
		var end validator.EventPayload
		v.On(validator.EventStart, func(_ context.Context, p validator.EventPayload) {
			log = append(log, string(p.Event))
			assert.True(t, v.State() == validator.StateRunning)
		})
		v.On(validator.EventFailed, func(_ context.Context, p validator.EventPayload) {
			log = append(log, string(p.Event))
			assert.True(t, v.State() == validator.StateFailed)
		})
		v.On(validator.EventFieldError, func(_ context.Context, p validator.EventPayload) {
			log = append(log, string(p.Event)+":"+p.Field.Name()+":"+joinCauses(p.Errors))
			assert.Same(t, c, p.Container)
		})
		v.On(validator.EventEnd, func(_ context.Context, p validator.EventPayload) {
			log = append(log, string(p.Event))
			end = p
		})

		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []string{
			"validation:start",
			"validation:failed",
			"field:error:a:required,min-length",
			"field:error:c:email",
			"validation:end",
		}, log)
		assert.False(t, end.Valid)
		assert.Equal(t, "signup", end.Form)
		assert.NotEmpty(t, end.RunID.String())
		assert.True(t, v.State() == validator.StateIdle)
	})

	t.Run("succeeded pass", func(t *testing.T) {
		t.Parallel()
		var log []validator.Event
		record := func(_ context.Context, p validator.EventPayload) { log = append(log, p.Event) }
		v := newValidator(t, form(&testField{name: "a", value: "x", rules: "required"}),
			validator.WithHandlers(map[validator.Event]validator.Handler{
				validator.EventEnd:       record,
				validator.EventStart:     record,
				validator.EventSucceeded: record,
				validator.EventFailed:    record,
			}),
		)

		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []validator.Event{
			validator.EventStart, validator.EventSucceeded, validator.EventEnd,
		}, log)
	})

	t.Run("off removes handler", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t, form())
		calls := 0
		id := v.On(validator.EventStart, func(context.Context, validator.EventPayload) { calls++ })
		assert.True(t, v.Off(validator.EventStart, id))

		_, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.Zero(t, calls)
	})

	t.Run("run ids differ between passes", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t, form())
		var ids []string
		v.On(validator.EventEnd, func(_ context.Context, p validator.EventPayload) { ids = append(ids, p.RunID.String()) })

		_, _ = v.Validate(context.Background())
		_, _ = v.Validate(context.Background())
		require.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])
	})
}

func TestValidate_Reentrant(t *testing.T) {
	t.Parallel()

	v := newValidator(t, form(&testField{name: "a", value: "x", rules: "required"}))
	var inner error
	v.On(validator.EventStart, func(ctx context.Context, _ validator.EventPayload) {
		_, inner = v.Validate(ctx)
	})

	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.ErrorIs(t, inner, validator.ErrValidationInProgress)
}

func TestValidate_ErrorModelClearedEachPass(t *testing.T) {
	t.Parallel()

	f := &testField{name: "a", value: "", rules: "required"}
	v := newValidator(t, form(f))

	ok, _ := v.Validate(context.Background())
	assert.False(t, ok)
	assert.Equal(t, 1, v.Errors().Len())

	f.value = "filled"
	ok, _ = v.Validate(context.Background())
	assert.True(t, ok)
	assert.Equal(t, 0, v.Errors().Len())
}

type recordingRenderer struct {
	cleared  int
	rendered map[string][]string
}

func (r *recordingRenderer) Clear(context.Context, validator.Container) {
	r.cleared++
	r.rendered = map[string][]string{}
}

func (r *recordingRenderer) Render(_ context.Context, _ validator.Container, f validator.Field, errs []validator.FieldError) {
	for _, fe := range errs {
		r.rendered[f.Name()] = append(r.rendered[f.Name()], fe.Cause)
	}
}

func TestValidate_Renderer(t *testing.T) {
	t.Parallel()

	r := &recordingRenderer{}
	f := &testField{name: "pw", value: "ab", rules: "required|min:3|alpha-num|regex:/^[A-Z]/"}
	v := newValidator(t, form(f), validator.WithRenderer(r))

	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, r.cleared)
	assert.Equal(t, []string{validator.CauseRegex, validator.CauseMinLength}, r.rendered["pw"])

	f.value = "Abcd"
	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, r.cleared)
	assert.Empty(t, r.rendered)
}

type recordingMetrics struct {
	mu       sync.Mutex
	passes   []bool
	failures []string
	config   []string
}

func (m *recordingMetrics) ObservePass(_ string, valid bool, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passes = append(m.passes, valid)
}

func (m *recordingMetrics) ObserveRuleFailure(_, rule, cause string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, rule+"/"+cause)
}

func (m *recordingMetrics) ObserveConfigError(_, rule string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = append(m.config, rule)
}

func TestValidate_Metrics(t *testing.T) {
	t.Parallel()

	m := &recordingMetrics{}
	f := &testField{name: "a", value: "", rules: "required"}
	v := newValidator(t, form(f), validator.WithMetrics(m))

	_, _ = v.Validate(context.Background())
	f.value = "x"
	_, _ = v.Validate(context.Background())
	f.rules = "min"
	_, _ = v.Validate(context.Background())

	assert.Equal(t, []bool{false, true, false}, m.passes)
	assert.Equal(t, []string{"required/required"}, m.failures)
	assert.Equal(t, []string{"min"}, m.config)
}

func TestValidate_Broadcaster(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[validator.EventPayload](16)
	t.Cleanup(func() { _ = b.Close() })
	sub := b.Subscribe(context.Background(), string(validator.EventEnd))

	v := newValidator(t, form(&testField{name: "a", value: "x", rules: "required"}), validator.WithBroadcaster(b))
	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	select {
	case msg := <-sub.Receive(context.Background()):
		assert.Equal(t, string(validator.EventEnd), msg.Topic)
		assert.True(t, msg.Data.Valid)
	case <-time.After(time.Second):
		t.Fatal("no message broadcast")
	}
}

// Switches the process-wide dictionary; not parallel.
func TestValidate_WithLanguage(t *testing.T) {
	t.Cleanup(func() { i18n.SetCurrent(nil) })

	v, err := validator.New(form(&testField{name: "a", value: "", rules: "required"}),
		validator.WithRegistry(validator.NewRegistry()),
		validator.WithLanguage(i18n.De()),
	)
	require.NoError(t, err)

	_, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dieses Feld ist erforderlich", v.Errors().Get("a")[0].Message)
	assert.Equal(t, map[string][]string{"a": {"Dieses Feld ist erforderlich"}}, v.Errors().Messages())
}

func joinCauses(errs []validator.FieldError) string {
	causes := make([]string, len(errs))
	for i, fe := range errs {
		causes[i] = fe.Cause
	}
	return strings.Join(causes, ",")
}
