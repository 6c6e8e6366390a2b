package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/dmitrymomot/facile/pkg/cache"
)

// patterns holds compiled regex literals, keyed by the literal text.
var patterns = cache.NewLRU[string, *regexp2.Regexp](256)

// PatternMatchTimeout bounds a single regex rule match. Patterns are
// backtracking, so a hostile value could otherwise stall the caller.
const PatternMatchTimeout = 250 * time.Millisecond

var (
	integerRegex      = regexp.MustCompile(`^[+-]?\d+$`)
	numberRegex       = regexp.MustCompile(`^[+-]?(\d+|\d*\.\d*)$`)
	alphaRegex        = regexp.MustCompile(`^[\p{L}\p{M}]+$`)
	alphaNumRegex     = regexp.MustCompile(`^[\p{L}\p{M}\p{N}]+$`)
	alphaNumDashRegex = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_-]+$`)
	numDashRegex      = regexp.MustCompile(`^[\p{N}_-]+$`)
)

// Alpha passes for Unicode letters and marks only.
func Alpha(value, _ string) error {
	return matchOr(alphaRegex, value, CauseAlpha)
}

// AlphaNum passes for Unicode letters, marks and digits.
func AlphaNum(value, _ string) error {
	return matchOr(alphaNumRegex, value, CauseAlphaNum)
}

// AlphaNumDash passes for letters, marks, digits, dashes and underscores.
func AlphaNumDash(value, _ string) error {
	return matchOr(alphaNumDashRegex, value, CauseAlphaNumDash)
}

// NumDash passes for digits, dashes and underscores.
func NumDash(value, _ string) error {
	return matchOr(numDashRegex, value, CauseNumDash)
}

// Integer passes for an optionally signed run of digits.
func Integer(value, _ string) error {
	return matchOr(integerRegex, value, CauseInteger)
}

// Number passes for an optionally signed integer or decimal.
func Number(value, _ string) error {
	return matchOr(numberRegex, value, CauseNumber)
}

// Digits passes when the value is exactly n digits, optionally negative.
func Digits(value, args string) error {
	if args == "" {
		return ErrMissingArgument
	}
	if !integerRegex.MatchString(args) {
		return ErrArgumentNotInteger
	}
	n, err := strconv.Atoi(args)
	if err != nil || n < 1 {
		return ErrArgumentNotInteger
	}
	re, err := regexp.Compile(fmt.Sprintf(`^-?[0-9]{%d}$`, n))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArgumentNotInteger, err)
	}
	if re.MatchString(value) {
		return nil
	}
	return Invalid(CauseDigits, args)
}

// Regex tests the value against a "/body/flags" literal. Patterns use
// ECMAScript syntax; flags i, m, s and u are honoured, g, y and d are
// accepted and ignored.
func Regex(value, args string) error {
	if args == "" {
		return ErrMissingArgument
	}
	re, err := compileLiteral(args)
	if err != nil {
		return err
	}
	ok, err := re.MatchString(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPatternTimeout, err)
	}
	if ok {
		return nil
	}
	return Invalid(CauseRegex)
}

func compileLiteral(literal string) (*regexp2.Regexp, error) {
	return patterns.GetOrLoad(literal, func() (*regexp2.Regexp, error) {
		return compilePattern(literal)
	})
}

func compilePattern(literal string) (*regexp2.Regexp, error) {
	body, flags := splitLiteral(literal)
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u':
			opts |= regexp2.Unicode
		case 'g', 'y', 'd':
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedRegexpFlag, f)
		}
	}
	re, err := regexp2.Compile(body, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	re.MatchTimeout = PatternMatchTimeout
	return re, nil
}

// splitLiteral separates "/body/flags". Text without delimiters is taken
// as the body.
func splitLiteral(literal string) (body, flags string) {
	if len(literal) < 2 || literal[0] != '/' {
		return literal, ""
	}
	end := strings.LastIndex(literal, "/")
	if end <= 0 {
		return literal, ""
	}
	return literal[1:end], literal[end+1:]
}

func matchOr(re *regexp.Regexp, value, cause string) error {
	if re.MatchString(value) {
		return nil
	}
	return Invalid(cause)
}
