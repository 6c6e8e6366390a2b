package form

import (
	"fmt"
	"maps"
	"net/url"

	"github.com/dmitrymomot/facile/pkg/validator"
)

// Form is a parsed form description. It implements validator.Container.
//
// A Form loaded from a description is a template: use Bind to get a copy
// holding submitted values, so the template can be shared between
// goroutines.
type Form struct {
	Name     string           `yaml:"name" json:"name"`
	Title    string           `yaml:"title,omitempty" json:"title,omitempty"`
	Action   string           `yaml:"action,omitempty" json:"action,omitempty"`
	XRules   map[string]XRule `yaml:"xrules,omitempty" json:"xrules,omitempty"`
	Controls []*Field         `yaml:"fields" json:"fields"`
}

var _ validator.Container = (*Form)(nil)

// Check validates the description and fills in defaults.
func (f *Form) Check() error {
	if f.Name == "" {
		return ErrMissingFormName
	}
	seen := make(map[string]struct{}, len(f.Controls))
	for _, field := range f.Controls {
		if field == nil {
			continue
		}
		if err := field.check(); err != nil {
			return fmt.Errorf("form %s: %w", f.Name, err)
		}
		if _, dup := seen[field.ID]; dup {
			return fmt.Errorf("form %s: %w: %s", f.Name, ErrDuplicateFieldID, field.ID)
		}
		seen[field.ID] = struct{}{}
		field.reset()
	}
	return nil
}

// RuleFields returns the visible fields that carry rules, in document order.
func (f *Form) RuleFields() []*Field {
	out := make([]*Field, 0, len(f.Controls))
	for _, field := range f.Controls {
		if field != nil && field.Rules != "" && field.Visible() {
			out = append(out, field)
		}
	}
	return out
}

// Fields implements validator.Container.
func (f *Form) Fields() []validator.Field {
	fields := f.RuleFields()
	out := make([]validator.Field, len(fields))
	for i, field := range fields {
		out[i] = field
	}
	return out
}

// ValueByID returns the value of any field with the given id.
func (f *Form) ValueByID(id string) string {
	if field := f.Field(id); field != nil {
		return field.Value()
	}
	return ""
}

// Field returns the field with the given id or nil.
func (f *Form) Field(id string) *Field {
	for _, field := range f.Controls {
		if field != nil && field.ID == id {
			return field
		}
	}
	return nil
}

// ValidatorXRules converts the description's x-rules.
func (f *Form) ValidatorXRules() validator.XRules {
	if len(f.XRules) == 0 {
		return nil
	}
	out := make(validator.XRules, len(f.XRules))
	for k, x := range f.XRules {
		out[k] = x.toValidator()
	}
	return out
}

// Clone returns a deep copy.
func (f *Form) Clone() *Form {
	c := *f
	c.XRules = maps.Clone(f.XRules)
	c.Controls = make([]*Field, 0, len(f.Controls))
	for _, field := range f.Controls {
		if field != nil {
			c.Controls = append(c.Controls, field.clone())
		}
	}
	return &c
}

// Bind returns a copy of f holding the submitted values. Fields missing
// from values are treated as empty: unchecked toggles, no selection.
func (f *Form) Bind(values url.Values) *Form {
	c := f.Clone()
	for _, field := range c.Controls {
		field.Set(values[field.SubmitName()])
	}
	return c
}

// NewValidator builds a validator for f, named after the form and using
// its x-rules. opts are applied afterwards.
func (f *Form) NewValidator(opts ...validator.Option) (*validator.Validator, error) {
	base := []validator.Option{
		validator.WithName(f.Name),
		validator.WithXRules(f.ValidatorXRules()),
	}
	return validator.New(f, append(base, opts...)...)
}
