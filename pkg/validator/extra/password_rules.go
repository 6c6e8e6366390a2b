package extra

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/facile/pkg/validator"
)

const maxPasswordLength = 128

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password12": {}, "password123": {}, "password!": {},
	"123456": {}, "1234567": {}, "12345678": {}, "123456789": {}, "1234567890": {},
	"1234": {}, "12345": {}, "123123": {}, "111111": {}, "000000": {},
	"qwerty": {}, "qwerty1": {}, "qwerty12": {}, "qwerty123": {}, "qwertyuiop": {},
	"asdfghjkl": {}, "zxcvbnm": {}, "abc123": {}, "aa123456": {},
	"admin": {}, "admin123": {}, "administrator": {}, "root": {}, "toor": {}, "guest": {},
	"letmein": {}, "welcome": {}, "monkey": {}, "dragon": {}, "sunshine": {},
	"iloveyou": {}, "princess": {}, "football": {}, "charlie": {}, "donald": {},
}

// passwordRule returns the "password" rule. The argument overrides the
// minimum length.
func passwordRule(defaultMin int) validator.RuleFunc {
	return func(value, args string) error {
		minLen := defaultMin
		if args != "" {
			n, err := strconv.Atoi(args)
			if err != nil || n < 1 {
				return validator.ErrArgumentNotInteger
			}
			minLen = n
		}

		n := utf8.RuneCountInString(value)
		if n >= minLen && n <= maxPasswordLength && charClasses(value) >= 3 {
			return nil
		}
		return validator.Invalid(CausePassword, strconv.Itoa(minLen))
	}
}

// NotCommon rejects well-known weak passwords, case-insensitively.
func NotCommon(value, _ string) error {
	if _, ok := commonPasswords[strings.ToLower(value)]; ok {
		return validator.Invalid(CauseCommonPassword)
	}
	return nil
}

// charClasses counts the classes among upper case, lower case, digits and
// anything else that occur in s.
func charClasses(s string) int {
	var upper, lower, digit, other bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}
	n := 0
	for _, ok := range []bool{upper, lower, digit, other} {
		if ok {
			n++
		}
	}
	return n
}
