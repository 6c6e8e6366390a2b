package validator

import "github.com/dmitrymomot/facile/pkg/i18n"

// Failure causes. Each one is a dictionary key.
const (
	CauseAccepted      = i18n.CauseAccepted
	CauseAlpha         = i18n.CauseAlpha
	CauseAlphaNum      = i18n.CauseAlphaNum
	CauseAlphaNumDash  = i18n.CauseAlphaNumDash
	CauseBetweenLength = i18n.CauseBetweenLength
	CauseBetweenNumber = i18n.CauseBetweenNumber
	CauseDigits        = i18n.CauseDigits
	CauseEmail         = i18n.CauseEmail
	CauseEndsWith      = i18n.CauseEndsWith
	CauseEqualLength   = i18n.CauseEqualLength
	CauseEqualNumber   = i18n.CauseEqualNumber
	CauseGreaterEqual  = i18n.CauseGreaterEqual
	CauseInteger       = i18n.CauseInteger
	CauseLessEqual     = i18n.CauseLessEqual
	CauseMaxLength     = i18n.CauseMaxLength
	CauseMinLength     = i18n.CauseMinLength
	CauseNumDash       = i18n.CauseNumDash
	CauseNumber        = i18n.CauseNumber
	CauseRegex         = i18n.CauseRegex
	CauseRequired      = i18n.CauseRequired
	CauseStartsWith    = i18n.CauseStartsWith
	CauseWithin        = i18n.CauseWithin
)
