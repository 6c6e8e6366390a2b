package i18n

// Failure causes produced by the built-in rules.
const (
	CauseAccepted      = "accepted"
	CauseAlpha         = "alpha"
	CauseAlphaNum      = "alpha-num"
	CauseAlphaNumDash  = "alpha-num-dash"
	CauseBetweenLength = "between-length"
	CauseBetweenNumber = "between-number"
	CauseDigits        = "digits"
	CauseEmail         = "email"
	CauseEndsWith      = "ends-with"
	CauseEqualLength   = "equal-length"
	CauseEqualNumber   = "equal-number"
	CauseGreaterEqual  = "greater-equal"
	CauseInteger       = "integer"
	CauseLessEqual     = "less-equal"
	CauseMaxLength     = "max-length"
	CauseMinLength     = "min-length"
	CauseNumDash       = "num-dash"
	CauseNumber        = "number"
	CauseRegex         = "regex"
	CauseRequired      = "required"
	CauseStartsWith    = "starts-with"
	CauseWithin        = "within"
)

// Causes lists every built-in cause in alphabetical order.
var Causes = []string{
	CauseAccepted, CauseAlpha, CauseAlphaNum, CauseAlphaNumDash,
	CauseBetweenLength, CauseBetweenNumber, CauseDigits, CauseEmail,
	CauseEndsWith, CauseEqualLength, CauseEqualNumber, CauseGreaterEqual,
	CauseInteger, CauseLessEqual, CauseMaxLength, CauseMinLength,
	CauseNumDash, CauseNumber, CauseRegex, CauseRequired, CauseStartsWith,
	CauseWithin,
}
