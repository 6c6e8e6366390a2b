package extra

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/currency"

	"github.com/dmitrymomot/facile/pkg/validator"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexRegex  = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
)

// UUID passes for a canonical UUID. An optional argument restricts the
// version: "uuid:4".
func UUID(value, args string) error {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil || id == uuid.Nil {
		return validator.Invalid(CauseUUID)
	}
	if args == "" {
		return nil
	}
	version, err := strconv.Atoi(args)
	if err != nil || version < 1 || version > 8 {
		return validator.ErrArgumentNotInteger
	}
	if id.Version() != uuid.Version(version) {
		return validator.Invalid(CauseUUIDVersion, args)
	}
	return nil
}

// Slug passes for lowercase words joined by single dashes.
func Slug(value, _ string) error {
	if slugRegex.MatchString(value) {
		return nil
	}
	return validator.Invalid(CauseSlug)
}

// Hex passes for a hexadecimal string, of exactly n characters when an
// argument is given.
func Hex(value, args string) error {
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil || n < 1 {
			return validator.ErrArgumentNotInteger
		}
		if len(value) != n {
			return validator.Invalid(CauseHex)
		}
	}
	if hexRegex.MatchString(value) {
		return nil
	}
	return validator.Invalid(CauseHex)
}

// Base64 passes for padded standard base64.
func Base64(value, _ string) error {
	if value == "" {
		return validator.Invalid(CauseBase64)
	}
	if _, err := base64.StdEncoding.DecodeString(value); err != nil {
		return validator.Invalid(CauseBase64)
	}
	return nil
}

// Currency passes for a recognised ISO 4217 code, case-insensitively.
func Currency(value, _ string) error {
	code := strings.ToUpper(strings.TrimSpace(value))
	if len(code) != 3 {
		return validator.Invalid(CauseCurrency)
	}
	if _, err := currency.ParseISO(code); err != nil {
		return validator.Invalid(CauseCurrency)
	}
	return nil
}

// CreditCard passes for 13 to 19 digits with a valid Luhn checksum.
// Spaces and dashes are ignored.
func CreditCard(value, _ string) error {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(value)
	if len(digits) < 13 || len(digits) > 19 {
		return validator.Invalid(CauseCreditCard)
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return validator.Invalid(CauseCreditCard)
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	if sum%10 != 0 {
		return validator.Invalid(CauseCreditCard)
	}
	return nil
}
