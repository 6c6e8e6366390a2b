package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Between checks "kind,min,max". Number kind compares the parsed value,
// array kind the item count, anything else the rune length.
func Between(value, args string) error {
	a := SplitArgs(args)
	if len(a) < 3 || a[0] == "" || a[1] == "" || a[2] == "" {
		return ErrMissingArgument
	}
	min, minOK := parseNumber(a[1])
	max, maxOK := parseNumber(a[2])
	if !minOK || !maxOK {
		return ErrArgumentNotNumber
	}
	if min > max {
		return ErrInvalidRange
	}
	if min == max {
		return ErrEqualRange
	}

	if Kind(a[0]) == KindNumber {
		if v, ok := parseNumber(value); ok && v >= min && v <= max {
			return nil
		}
		return Invalid(CauseBetweenNumber, formatNumber(min), formatNumber(max))
	}

	if min < 0 || max < 0 {
		return ErrArgumentNegative
	}
	n := float64(measure(Kind(a[0]), value))
	if n >= min && n <= max {
		return nil
	}
	return Invalid(CauseBetweenLength, formatNumber(min), formatNumber(max))
}

// Size checks "kind,n" for an exact number, length or item count.
func Size(value, args string) error {
	return compareSized(value, args, sizedCheck{
		number:  func(v, n float64) bool { return v == n },
		length:  func(l, n float64) bool { return l == n },
		numCase: CauseEqualNumber,
		lenCase: CauseEqualLength,
	})
}

// Min checks "kind,n" for a lower bound.
func Min(value, args string) error {
	return compareSized(value, args, sizedCheck{
		number:  func(v, n float64) bool { return v >= n },
		length:  func(l, n float64) bool { return l >= n },
		numCase: CauseGreaterEqual,
		lenCase: CauseMinLength,
	})
}

// Max checks "kind,n" for an upper bound.
func Max(value, args string) error {
	return compareSized(value, args, sizedCheck{
		number:  func(v, n float64) bool { return v <= n },
		length:  func(l, n float64) bool { return l <= n },
		numCase: CauseLessEqual,
		lenCase: CauseMaxLength,
	})
}

type sizedCheck struct {
	number  func(v, n float64) bool
	length  func(l, n float64) bool
	numCase string
	lenCase string
}

func compareSized(value, args string, c sizedCheck) error {
	a := SplitArgs(args)
	if len(a) < 2 || a[0] == "" || a[1] == "" {
		return ErrMissingArgument
	}
	n, ok := parseNumber(a[1])
	if !ok {
		return ErrArgumentNotNumber
	}

	if Kind(a[0]) == KindNumber {
		if v, ok := parseNumber(value); ok && c.number(v, n) {
			return nil
		}
		return Invalid(c.numCase, formatNumber(n))
	}

	if n < 0 {
		return ErrArgumentNegative
	}
	if c.length(float64(measure(Kind(a[0]), value)), n) {
		return nil
	}
	return Invalid(c.lenCase, formatNumber(n))
}

// measure returns the item count for arrays and the rune count otherwise.
func measure(kind Kind, value string) int {
	if kind == KindArray {
		return len(SplitArgs(value))
	}
	return utf8.RuneCountInString(value)
}

// decimalRegex is the only number syntax accepted; ParseFloat alone would
// also take inf, nan and hex floats.
var decimalRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber parses a trimmed decimal number. Non-finite results, from
// literals or overflow, are rejected.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalRegex.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
