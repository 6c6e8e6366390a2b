package validator

import (
	"slices"
	"strings"
)

// Kind selects how size-like rules interpret a value.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindArray  Kind = "array"
)

// Engine-handled marker tokens.
const (
	MarkerBail     = "bail"
	MarkerNullable = "nullable"
)

// ValueLookup resolves another field's current value by id.
type ValueLookup func(id string) string

// AnnotatedRule is a parsed rule after preprocessing, ready for evaluation.
type AnnotatedRule struct {
	ParsedRule
	// Kind is set for size-like and membership rules.
	Kind Kind
}

// preprocessor rewrites a parsed rule before evaluation. preceding holds
// the raw tokens that appear before this rule in its list.
type preprocessor func(pr ParsedRule, preceding []string, lookup ValueLookup) AnnotatedRule

var preprocessors = map[string]preprocessor{
	"requiredIf": preprocessRequiredIf,
	"between":    preprocessSized,
	"size":       preprocessSized,
	"min":        preprocessSized,
	"max":        preprocessSized,
	"in":         preprocessMembership,
	"within":     preprocessMembership,
}

// Preprocess parses every token of rules and applies the rewrites of
// requiredIf, between, size, min, max and in.
//
// Kind inference for between/size/min/max only looks at tokens placed
// before the rule: "number|between:1,9" compares numbers while
// "between:1,9|number" compares string length.
func Preprocess(rules []string, lookup ValueLookup, xrules XRules) ([]AnnotatedRule, error) {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}
	out := make([]AnnotatedRule, 0, len(rules))
	for _, token := range rules {
		pr, err := ParseRule(token, xrules)
		if err != nil {
			return nil, err
		}
		pp, ok := preprocessors[pr.Key]
		if !ok {
			out = append(out, AnnotatedRule{ParsedRule: pr})
			continue
		}
		idx := slices.Index(rules, token)
		out = append(out, pp(pr, rules[:idx], lookup))
	}
	return out, nil
}

func preprocessRequiredIf(pr ParsedRule, _ []string, lookup ValueLookup) AnnotatedRule {
	if len(pr.Args) == 0 {
		pr.Name, pr.Key = "required", "required"
		return AnnotatedRule{ParsedRule: pr}
	}
	args := slices.Clone(pr.Args)
	args[0] = lookup(args[0])
	pr.Args = args
	pr.ArgsText = strings.Join(args, ",")
	return AnnotatedRule{ParsedRule: pr}
}

func preprocessSized(pr ParsedRule, preceding []string, _ ValueLookup) AnnotatedRule {
	if len(pr.Args) > 0 && isKind(pr.Args[0]) {
		return AnnotatedRule{ParsedRule: pr, Kind: Kind(pr.Args[0])}
	}
	kind := inferKind(preceding)
	pr.ArgsText = string(kind) + "," + pr.ArgsText
	pr.Args = SplitArgs(pr.ArgsText)
	return AnnotatedRule{ParsedRule: pr, Kind: kind}
}

func preprocessMembership(pr ParsedRule, _ []string, _ ValueLookup) AnnotatedRule {
	kind := KindString
	if len(pr.Args) > 0 && pr.Args[0] == string(KindArray) {
		kind = KindArray
	}
	return AnnotatedRule{ParsedRule: pr, Kind: kind}
}

func inferKind(preceding []string) Kind {
	switch {
	case slices.Contains(preceding, "number"),
		slices.Contains(preceding, "int"),
		slices.Contains(preceding, "integer"):
		return KindNumber
	case slices.Contains(preceding, "array"):
		return KindArray
	default:
		return KindString
	}
}

func isKind(s string) bool {
	switch Kind(s) {
	case KindString, KindNumber, KindArray:
		return true
	}
	return false
}
