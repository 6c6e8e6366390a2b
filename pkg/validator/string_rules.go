package validator

import (
	"strings"
)

// Required passes when the value is non-empty after trimming whitespace.
func Required(value, _ string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return Invalid(CauseRequired)
}

// RequiredIf behaves like Required when args (the other field's value,
// filled in during preprocessing) is non-empty, and passes otherwise.
func RequiredIf(value, args string) error {
	if Required(args, "") != nil {
		return nil
	}
	return Required(value, "")
}

// Accepted passes when the value is the active-toggle sentinel.
func Accepted(value, _ string) error {
	if value == CheckedValue {
		return nil
	}
	return Invalid(CauseAccepted)
}

// StartsWith passes when the value begins with args.
func StartsWith(value, args string) error {
	if args == "" {
		return ErrMissingArgument
	}
	if strings.HasPrefix(value, args) {
		return nil
	}
	return Invalid(CauseStartsWith, args)
}

// EndsWith passes when the value ends with args.
func EndsWith(value, args string) error {
	if args == "" {
		return ErrMissingArgument
	}
	if strings.HasSuffix(value, args) {
		return nil
	}
	return Invalid(CauseEndsWith, args)
}
