package form

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/facile/pkg/validator"
)

// FieldType is the kind of control a field renders as.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeEmail    FieldType = "email"
	TypePassword FieldType = "password"
	TypeNumber   FieldType = "number"
	TypeTel      FieldType = "tel"
	TypeURL      FieldType = "url"
	TypeDate     FieldType = "date"
	TypeTextarea FieldType = "textarea"
	TypeCheckbox FieldType = "checkbox"
	TypeRadio    FieldType = "radio"
	TypeSelect   FieldType = "select"
)

var fieldTypes = []FieldType{
	TypeText, TypeEmail, TypePassword, TypeNumber, TypeTel, TypeURL,
	TypeDate, TypeTextarea, TypeCheckbox, TypeRadio, TypeSelect,
}

// Option is a choice of a select field.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Field describes one form control and holds its bound value.
type Field struct {
	ID          string    `yaml:"id" json:"id"`
	InputName   string    `yaml:"name,omitempty" json:"name,omitempty"`
	Type        FieldType `yaml:"type,omitempty" json:"type,omitempty"`
	Label       string    `yaml:"label,omitempty" json:"label,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Rules       string    `yaml:"rules,omitempty" json:"rules,omitempty"`
	Default     string    `yaml:"value,omitempty" json:"value,omitempty"`
	Options     []Option  `yaml:"options,omitempty" json:"options,omitempty"`
	Multiple    bool      `yaml:"multiple,omitempty" json:"multiple,omitempty"`
	Checked     bool      `yaml:"checked,omitempty" json:"checked,omitempty"`
	// Hidden fields are not validated unless they sit in a Tab.
	Hidden bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Tab    string `yaml:"tab,omitempty" json:"tab,omitempty"`

	value    string
	selected []string
}

var _ validator.Field = (*Field)(nil)

// Name returns the field id. Errors are reported under it.
func (f *Field) Name() string { return f.ID }

// SubmitName is the request parameter the field binds from.
func (f *Field) SubmitName() string {
	if f.InputName != "" {
		return f.InputName
	}
	return f.ID
}

// RuleList returns the raw rule list.
func (f *Field) RuleList() string { return f.Rules }

// Value returns the textual value the rules see: validator.CheckedValue or
// "" for checkboxes and radios, the comma-joined selection for selects and
// the raw text otherwise.
func (f *Field) Value() string {
	switch f.Type {
	case TypeCheckbox, TypeRadio:
		if f.Checked {
			return validator.CheckedValue
		}
		return ""
	case TypeSelect:
		return strings.Join(f.selected, ",")
	default:
		return f.value
	}
}

// Raw returns the submitted text, for re-rendering inputs.
func (f *Field) Raw() string {
	if f.Type == TypeSelect {
		return strings.Join(f.selected, ",")
	}
	return f.value
}

// IsSelected reports whether opt is part of a select field's value.
func (f *Field) IsSelected(opt string) bool {
	return slices.Contains(f.selected, opt)
}

// Visible reports whether the field takes part in validation. Hidden
// fields are skipped unless they belong to a tab pane.
func (f *Field) Visible() bool {
	return !f.Hidden || f.Tab != ""
}

// Set assigns the value from submitted parameter values.
func (f *Field) Set(values []string) {
	switch f.Type {
	case TypeCheckbox:
		f.Checked = slices.ContainsFunc(values, func(v string) bool { return v != "" })
	case TypeRadio:
		want := f.Default
		if want == "" {
			want = "on"
		}
		f.Checked = slices.Contains(values, want)
	case TypeSelect:
		selected := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				selected = append(selected, v)
			}
		}
		if !f.Multiple && len(selected) > 1 {
			selected = selected[:1]
		}
		f.selected = selected
	default:
		if len(values) > 0 {
			f.value = values[0]
		} else {
			f.value = ""
		}
	}
}

func (f *Field) reset() {
	f.value, f.selected = "", nil
	switch f.Type {
	case TypeCheckbox, TypeRadio:
	case TypeSelect:
		if f.Default != "" {
			f.selected = validator.SplitArgs(f.Default)
		}
	default:
		f.value = f.Default
	}
}

func (f *Field) clone() *Field {
	c := *f
	c.Options = slices.Clone(f.Options)
	c.selected = slices.Clone(f.selected)
	return &c
}

func (f *Field) check() error {
	if strings.TrimSpace(f.ID) == "" {
		return ErrMissingFieldID
	}
	if f.Type == "" {
		f.Type = TypeText
	}
	if !slices.Contains(fieldTypes, f.Type) {
		return fmt.Errorf("%w: %q (field %s)", ErrUnknownFieldType, f.Type, f.ID)
	}
	return nil
}
