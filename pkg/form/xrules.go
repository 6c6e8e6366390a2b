package form

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/facile/pkg/validator"
)

// XRule is an x-rule entry of a form description: either a bare scalar or
// a mapping with "value" and "message".
//
//	xrules:
//	  zip: "/^[0-9]{5}$/"
//	  adult:
//	    value: 18
//	    message: You must be an adult
type XRule struct {
	Value   any
	Message string
	Rich    bool
}

type richXRule struct {
	Value   any    `yaml:"value" json:"value"`
	Message string `yaml:"message" json:"message"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (x *XRule) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*x = XRule{}
		return node.Decode(&x.Value)
	case yaml.MappingNode:
		var r richXRule
		if err := node.Decode(&r); err != nil {
			return err
		}
		*x = XRule{Value: r.Value, Message: r.Message, Rich: true}
		return x.checkScalar()
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidXRule, node.Line)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *XRule) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var r richXRule
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*x = XRule{Value: r.Value, Message: r.Message, Rich: true}
		return x.checkScalar()
	}
	*x = XRule{}
	if err := json.Unmarshal(data, &x.Value); err != nil {
		return err
	}
	return x.checkScalar()
}

// MarshalYAML implements yaml.Marshaler.
func (x XRule) MarshalYAML() (any, error) {
	if x.Rich {
		return richXRule{Value: x.Value, Message: x.Message}, nil
	}
	return x.Value, nil
}

// MarshalJSON implements json.Marshaler.
func (x XRule) MarshalJSON() ([]byte, error) {
	if x.Rich {
		return json.Marshal(richXRule{Value: x.Value, Message: x.Message})
	}
	return json.Marshal(x.Value)
}

func (x XRule) checkScalar() error {
	switch x.Value.(type) {
	case []any, map[string]any:
		return fmt.Errorf("%w: must be a scalar", ErrInvalidXRule)
	}
	return nil
}

func (x XRule) toValidator() validator.XRuleValue {
	v := x.Value
	if v == nil {
		v = ""
	}
	if x.Rich {
		return validator.Rich(v, x.Message)
	}
	return validator.Scalar(v)
}
