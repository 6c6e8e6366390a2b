package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// xRulePrefix marks a rule whose argument is resolved through XRules.
const xRulePrefix = "x-"

// XRuleValue is an entry of the x-rule configuration: a bare value or a
// value paired with a custom error message.
type XRuleValue struct {
	value        string
	errorMessage string
	rich         bool
}

// Scalar wraps a plain x-rule value.
func Scalar(v any) XRuleValue {
	return XRuleValue{value: fmt.Sprint(v)}
}

// Rich wraps an x-rule value with a message that replaces the dictionary
// message when the rule fails.
func Rich(v any, errorMessage string) XRuleValue {
	return XRuleValue{value: fmt.Sprint(v), errorMessage: errorMessage, rich: true}
}

// Value returns the stringified value.
func (x XRuleValue) Value() string { return x.value }

// ErrorMessage returns the custom message, empty for scalars.
func (x XRuleValue) ErrorMessage() string { return x.errorMessage }

// IsRich reports whether the entry was built with Rich.
func (x XRuleValue) IsRich() bool { return x.rich }

// XRules maps x-rule keys to their configured values.
type XRules map[string]XRuleValue

// ParsedRule is a rule token split into its parts.
type ParsedRule struct {
	Token    string
	Name     string
	Key      string
	ArgsText string
	Args     []string
	Message  string
	XRule    bool
}

// ParseRule splits token into name and arguments, resolving x-rules
// against xrules.
//
//	ParseRule("between:1,10", nil)   // Name "between", Args ["1","10"]
//	ParseRule("x-regex:zip", xrules) // Name "regex", ArgsText = xrules["zip"]
func ParseRule(token string, xrules XRules) (ParsedRule, error) {
	name, argsText, _ := strings.Cut(token, ":")
	pr := ParsedRule{Token: token, Name: name, ArgsText: argsText}

	if IsXRule(token) {
		if !hasArgument(token) {
			return ParsedRule{}, &RuleConfigError{Rule: token, Err: ErrMalformedXRule}
		}
		entry, ok := xrules[argsText]
		if !ok {
			return ParsedRule{}, &RuleConfigError{Rule: token, Err: fmt.Errorf("%w: %q", ErrUnknownXRule, argsText)}
		}
		pr.Name = strings.TrimPrefix(name, xRulePrefix)
		pr.ArgsText = entry.Value()
		pr.Message = entry.ErrorMessage()
		pr.XRule = true
	}

	pr.Key = ToCamelCase(pr.Name)
	pr.Args = SplitArgs(pr.ArgsText)
	return pr, nil
}

// SplitArgs splits raw argument text on commas; empty text yields nil.
func SplitArgs(argsText string) []string {
	if argsText == "" {
		return nil
	}
	return strings.Split(argsText, ",")
}

// SplitRuleList splits a raw rule list into tokens, dropping empty ones.
func SplitRuleList(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, RuleSeparator)
	tokens := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// ToCamelCase converts a dash-case rule name into its registry key:
// every dash and the character after it become that character upper-cased.
func ToCamelCase(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '-' && i+1 < len(name) {
			r, size := utf8.DecodeRuneInString(name[i+1:])
			b.WriteRune(unicode.ToUpper(r))
			i += size
			continue
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// IsXRule reports whether token is an indirect x-rule.
func IsXRule(token string) bool {
	return strings.HasPrefix(token, xRulePrefix)
}

func hasArgument(token string) bool {
	return strings.Count(token, ":") == 1
}
