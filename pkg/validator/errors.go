package validator

import (
	"errors"
	"fmt"
)

// Configuration errors. They abort a validation pass and are never
// recorded in the ErrorModel.
var (
	ErrMissingArgument    = errors.New("an argument must be provided")
	ErrArgumentNotNumber  = errors.New("the argument must be a number")
	ErrArgumentNegative   = errors.New("the argument must be a positive number")
	ErrArgumentNotInteger = errors.New("the argument must be an integer")
	ErrInvalidRange       = errors.New("min must be less than max")
	ErrEqualRange         = errors.New("min and max must not be equal")
	ErrInvalidPattern     = errors.New("invalid pattern provided")

	ErrMalformedXRule = errors.New("x-rules require an argument that is defined in the xRules config")
	ErrUnknownXRule   = errors.New("x-rule key is not defined in the xRules config")

	ErrNilContainer          = errors.New("container is nil")
	ErrValidationInProgress  = errors.New("validation already in progress")
	ErrRulePanicked          = errors.New("rule panicked")
	ErrUnsupportedRegexpFlag = errors.New("unsupported regular expression flag")
	ErrPatternTimeout        = errors.New("pattern match timed out")
)

// RuleConfigError reports a configuration problem tied to a rule token.
type RuleConfigError struct {
	Rule  string
	Field string
	Err   error
}

func (e *RuleConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Rule, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Field, e.Rule, e.Err)
}

func (e *RuleConfigError) Unwrap() error {
	return e.Err
}

// IsRuleError reports whether err is a validation failure outcome.
func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var ce *RuleConfigError
	return errors.As(err, &ce)
}
