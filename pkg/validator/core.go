package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/facile/pkg/i18n"
)

// Field is a rule-bearing form control.
type Field interface {
	// Name identifies the field in error reports.
	Name() string
	// Value returns the current textual value. Multi-selections are
	// comma-joined; toggles return CheckedValue when active.
	Value() string
	// RuleList returns the raw pipe-delimited rule list.
	RuleList() string
}

// Container owns the fields of one form.
type Container interface {
	// Fields returns the rule-bearing fields in document order.
	Fields() []Field
	// ValueByID returns the current value of the field with the given id,
	// or an empty string when no such field exists.
	ValueByID(id string) string
}

// CheckedValue is the value reported by an active checkbox or radio.
const CheckedValue = "checked"

// RuleSeparator delimits rule tokens inside a field's rule list.
const RuleSeparator = "|"

// RuleFunc evaluates one rule against a field value.
//
// It returns nil when the value satisfies the rule and a *RuleError when it
// does not. Any other error is treated as a configuration problem and
// aborts the whole validation pass.
type RuleFunc func(value, args string) error

// RuleError is the failure outcome of a rule.
type RuleError struct {
	Cause string
	Args  []string
}

// Invalid builds the failure outcome for cause with message arguments.
func Invalid(cause string, args ...string) error {
	return &RuleError{Cause: cause, Args: args}
}

func (e *RuleError) Error() string {
	if len(e.Args) == 0 {
		return e.Cause
	}
	return fmt.Sprintf("%s: %s", e.Cause, strings.Join(e.Args, ","))
}

// FieldError is a single failed rule recorded for a field.
type FieldError struct {
	Field   Field
	Rule    string
	Message string
	Cause   string
	Args    []string
	// custom marks a message taken from an x-rule config entry.
	custom bool
}

// Localize renders the message with dict, keeping x-rule overrides as is.
func (fe FieldError) Localize(dict i18n.Dictionary) string {
	if fe.custom {
		return fe.Message
	}
	return dict.Format(fe.Cause, fe.Args...)
}

// FieldErrors groups the ordered failures of one field.
type FieldErrors struct {
	Field  Field
	Errors []FieldError
}

// ErrorModel accumulates failures of a single validation pass, in field
// encounter order.
type ErrorModel struct {
	entries []FieldErrors
}

func (m *ErrorModel) add(idx int, fe FieldError) {
	if idx >= 0 && idx < len(m.entries) {
		m.entries[idx].Errors = append(m.entries[idx].Errors, fe)
		return
	}
	m.entries = append(m.entries, FieldErrors{Field: fe.Field, Errors: []FieldError{fe}})
}

func (m *ErrorModel) clear() {
	m.entries = nil
}

// HasErrors reports whether any field failed.
func (m *ErrorModel) HasErrors() bool {
	return len(m.entries) > 0
}

// Len returns the number of failing fields.
func (m *ErrorModel) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the per-field failures.
func (m *ErrorModel) Entries() []FieldErrors {
	out := make([]FieldErrors, len(m.entries))
	for i, e := range m.entries {
		out[i] = FieldErrors{Field: e.Field, Errors: slices.Clone(e.Errors)}
	}
	return out
}

// Get returns the failures recorded for the named field.
func (m *ErrorModel) Get(name string) []FieldError {
	for _, e := range m.entries {
		if e.Field.Name() == name {
			return slices.Clone(e.Errors)
		}
	}
	return nil
}

// Has reports whether the named field failed.
func (m *ErrorModel) Has(name string) bool {
	return len(m.Get(name)) > 0
}

// Fields returns the names of failing fields in encounter order.
func (m *ErrorModel) Fields() []string {
	names := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		names = append(names, e.Field.Name())
	}
	return names
}

// Messages maps field names to their rendered messages.
func (m *ErrorModel) Messages() map[string][]string {
	out := make(map[string][]string, len(m.entries))
	for _, e := range m.entries {
		for _, fe := range e.Errors {
			out[e.Field.Name()] = append(out[e.Field.Name()], fe.Message)
		}
	}
	return out
}

// Replay returns errs most-recently-added first, the order renderers
// insert them after a field.
func Replay(errs []FieldError) []FieldError {
	out := slices.Clone(errs)
	slices.Reverse(out)
	return out
}
