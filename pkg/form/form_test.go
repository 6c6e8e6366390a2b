package form_test

import (
	"context"
	"net/url"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facile/pkg/form"
	"github.com/dmitrymomot/facile/pkg/validator"
)

func loadSignup(t *testing.T) *form.Form {
	t.Helper()
	f, err := form.ParseFile(os.DirFS("testdata/forms"), "signup.yaml")
	require.NoError(t, err)
	return f
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("yaml description", func(t *testing.T) {
		t.Parallel()
		f := loadSignup(t)

		assert.Equal(t, "signup", f.Name)
		assert.Equal(t, "Create your account", f.Title)
		require.Len(t, f.Controls, 9)
		assert.Equal(t, form.TypeText, f.Field("username").Type, "type defaults to text")

		xr := f.ValidatorXRules()
		require.Contains(t, xr, "adult")
		assert.Equal(t, "18", xr["adult"].Value())
		assert.Equal(t, "You must be an adult", xr["adult"].ErrorMessage())
		assert.True(t, xr["adult"].IsRich())
		assert.Equal(t, "/^[a-z][a-z0-9_]{2,15}$/", xr["handle"].Value())
		assert.False(t, xr["handle"].IsRich())
	})

	t.Run("json description", func(t *testing.T) {
		t.Parallel()
		f, err := form.ParseFile(os.DirFS("testdata/forms"), "contact.json")
		require.NoError(t, err)

		xr := f.ValidatorXRules()
		assert.Equal(t, "10", xr["short"].Value())
		assert.Equal(t, "500", xr["long"].Value())
		assert.Equal(t, "Keep it under 500 characters", xr["long"].ErrorMessage())
	})

	t.Run("invalid descriptions", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			data string
			want error
		}{
			{"missing name", "fields: []", form.ErrMissingFormName},
			{"missing id", "name: f\nfields:\n  - rules: required", form.ErrMissingFieldID},
			{"duplicate id", "name: f\nfields:\n  - id: a\n  - id: a", form.ErrDuplicateFieldID},
			{"unknown type", "name: f\nfields:\n  - id: a\n    type: slider", form.ErrUnknownFieldType},
			{"nested x-rule", "name: f\nxrules:\n  k: [1, 2]\nfields: []", form.ErrFailedToParseForm},
			{"syntax", "name: [", form.ErrFailedToParseForm},
		}
		for _, tt := range tests {
			_, err := form.Parse([]byte(tt.data), form.FormatYAML)
			assert.ErrorIs(t, err, tt.want, tt.name)
		}

		_, err := form.Parse([]byte(`{"name": "f", "xrules": {"k": {"value": [1]}}}`), form.FormatJSON)
		assert.ErrorIs(t, err, form.ErrInvalidXRule)

		_, err = form.Parse([]byte("name = 'f'"), form.Format("toml"))
		assert.ErrorIs(t, err, form.ErrUnsupportedFormat)

		_, err = form.ParseFile(os.DirFS("testdata/forms"), "README.txt")
		assert.ErrorIs(t, err, form.ErrUnsupportedFormat)

		_, err = form.ParseFile(os.DirFS("testdata/forms"), "missing.yaml")
		assert.ErrorIs(t, err, form.ErrFailedToReadForm)
	})
}

func TestForm_Container(t *testing.T) {
	t.Parallel()

	f := loadSignup(t)

	var names []string
	for _, field := range f.Fields() {
		names = append(names, field.Name())
	}
	assert.Equal(t, []string{"email", "username", "age", "vat", "plan", "topics", "terms"}, names,
		"fields without rules and hidden fields are skipped")

	assert.Equal(t, "free", f.ValueByID("plan"), "select default")
	assert.Equal(t, "", f.ValueByID("terms"))
	assert.Equal(t, "", f.ValueByID("missing"))

	contact, err := form.ParseFile(os.DirFS("testdata/forms"), "contact.json")
	require.NoError(t, err)
	assert.Len(t, contact.Fields(), 3, "hidden fields inside a tab are validated")
}

func TestForm_Bind(t *testing.T) {
	t.Parallel()

	tmpl := loadSignup(t)
	bound := tmpl.Bind(url.Values{
		"email":  {"jane@example.com"},
		"plan":   {"pro", "free"},
		"topics": {"go", "", "zig"},
		"terms":  {"on"},
	})

	assert.Equal(t, "jane@example.com", bound.ValueByID("email"))
	assert.Equal(t, "pro", bound.ValueByID("plan"), "single select keeps the first value")
	assert.Equal(t, "go,zig", bound.ValueByID("topics"))
	assert.True(t, bound.Field("topics").IsSelected("zig"))
	assert.Equal(t, validator.CheckedValue, bound.ValueByID("terms"))
	assert.Equal(t, "", bound.ValueByID("username"))

	assert.Equal(t, "", tmpl.ValueByID("email"), "template is untouched")
	assert.Equal(t, "free", tmpl.ValueByID("plan"))
}

func TestField_Radio(t *testing.T) {
	t.Parallel()

	f, err := form.Parse([]byte(`
name: survey
fields:
  - id: answer-yes
    name: answer
    type: radio
    value: "yes"
    rules: accepted
  - id: answer-no
    name: answer
    type: radio
    value: "no"
`), form.FormatYAML)
	require.NoError(t, err)

	bound := f.Bind(url.Values{"answer": {"yes"}})
	assert.Equal(t, validator.CheckedValue, bound.ValueByID("answer-yes"))
	assert.Equal(t, "", bound.ValueByID("answer-no"))
	assert.Equal(t, "answer", bound.Field("answer-no").SubmitName())
}

func TestForm_NewValidator(t *testing.T) {
	t.Parallel()

	tmpl := loadSignup(t)
	reg := validator.WithRegistry(validator.NewRegistry())

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		v, err := tmpl.Bind(url.Values{
			"email":    {"jane@example.com"},
			"username": {"jane_doe"},
			"age":      {"30"},
			"plan":     {"pro"},
			"topics":   {"go", "rust"},
			"terms":    {"on"},
		}).NewValidator(reg)
		require.NoError(t, err)

		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.True(t, ok, "%v", v.Errors().Messages())
	})

	t.Run("invalid submission", func(t *testing.T) {
		t.Parallel()
		bound := tmpl.Bind(url.Values{
			"email":    {"jane"},
			"username": {"J"},
			"age":      {"16"},
			"company":  {"ACME"},
			"plan":     {"enterprise"},
			"topics":   {"go", "rust", "zig"},
		})
		v, err := bound.NewValidator(reg)
		require.NoError(t, err)

		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []string{"email", "username", "age", "vat", "plan", "topics", "terms"}, v.Errors().Fields())
		assert.Equal(t, "You must be an adult", v.Errors().Get("age")[0].Message)
		assert.Equal(t, validator.CauseMaxLength, v.Errors().Get("topics")[0].Cause)
	})
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	t.Run("testdata", func(t *testing.T) {
		t.Parallel()
		store, err := form.LoadDir(context.Background(), os.DirFS("testdata"), "forms")
		require.NoError(t, err)
		assert.Equal(t, []string{"contact", "signup"}, store.Names())
		assert.Equal(t, 2, store.Len())

		f, err := store.Get("signup")
		require.NoError(t, err)
		assert.Equal(t, "signup", f.Name)

		_, err = store.Get("nope")
		assert.ErrorIs(t, err, form.ErrFormNotFound)
	})

	t.Run("duplicate names", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"forms/a.yaml": {Data: []byte("name: same\nfields: []")},
			"forms/b.json": {Data: []byte(`{"name": "same", "fields": []}`)},
		}
		_, err := form.LoadDir(context.Background(), fsys, "forms")
		assert.ErrorIs(t, err, form.ErrDuplicateForm)
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"forms/notes.txt": {Data: []byte("x")}}
		_, err := form.LoadDir(context.Background(), fsys, "forms")
		assert.ErrorIs(t, err, form.ErrNoFormDescriptions)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := form.LoadDir(ctx, os.DirFS("testdata"), "forms")
		assert.ErrorIs(t, err, form.ErrLoadingCancelled)
	})
}

func TestXRule_RoundTrip(t *testing.T) {
	t.Parallel()

	f, err := form.Parse([]byte(`{"name": "f", "xrules": {"a": "x", "b": {"value": 3, "message": "m"}}, "fields": []}`), form.FormatJSON)
	require.NoError(t, err)

	data, err := f.XRules["b"].MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 3, "message": "m"}`, string(data))

	data, err = f.XRules["a"].MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(data))
}
