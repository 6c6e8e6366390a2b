package extra_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/validator"
	"github.com/dmitrymomot/facile/pkg/validator/extra"
)

type field struct{ name, value, rules string }

func (f field) Name() string     { return f.name }
func (f field) Value() string    { return f.value }
func (f field) RuleList() string { return f.rules }

type container []field

func (c container) Fields() []validator.Field {
	out := make([]validator.Field, len(c))
	for i, f := range c {
		out[i] = f
	}
	return out
}

func (c container) ValueByID(id string) string {
	for _, f := range c {
		if f.name == id {
			return f.value
		}
	}
	return ""
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	reg := validator.NewRegistry()
	reg.Use(extra.Plugin(extra.WithClock(func() time.Time { return fixedNow })))

	for name := range extra.Rules() {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, name)
	}
	_, ok := reg.Lookup("required")
	assert.True(t, ok, "built-ins are kept")

	v, err := validator.New(container{
		{name: "id", value: "nope", rules: "required|uuid:4"},
		{name: "birthdate", value: "2010-01-01", rules: "required|min-age:18"},
		{name: "site", value: "https://example.com", rules: "nullable|url:https"},
		{name: "card", value: "", rules: "nullable|credit-card"},
	}, validator.WithRegistry(reg))
	require.NoError(t, err)

	ok, err = v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"id", "birthdate"}, v.Errors().Fields())

	dict := i18n.CreateLang(i18n.En(), extra.En())
	assert.Equal(t, "The value must be a valid UUID", v.Errors().Get("id")[0].Localize(dict))
	assert.Equal(t, "You must be at least 18 years old", v.Errors().Get("birthdate")[0].Localize(dict))
}

func TestEn(t *testing.T) {
	t.Parallel()

	dict := extra.En()
	for _, cause := range []string{
		extra.CauseUUID, extra.CauseSlug, extra.CauseCurrency, extra.CauseCreditCard,
		extra.CauseURL, extra.CauseDate, extra.CauseMinAge, extra.CausePassword,
	} {
		assert.True(t, dict.Has(cause), cause)
	}

	dict[extra.CauseUUID] = "changed"
	assert.NotEqual(t, "changed", extra.En()[extra.CauseUUID])
}
