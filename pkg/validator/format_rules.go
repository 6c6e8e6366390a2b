package validator

import "regexp"

// emailRegex accepts a dot-separated local part without special characters
// (or a quoted one) and either a dotted domain or a bracketed IPv4 literal.
var emailRegex = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// Email passes for a syntactically valid address.
func Email(value, _ string) error {
	return matchOr(emailRegex, value, CauseEmail)
}
