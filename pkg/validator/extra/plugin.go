package extra

import (
	"time"

	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/validator"
)

// Failure causes of the extra rules.
const (
	CauseUUID           = "uuid"
	CauseUUIDVersion    = "uuid-version"
	CauseSlug           = "slug"
	CauseHex            = "hex"
	CauseBase64         = "base64"
	CauseCurrency       = "currency"
	CauseCreditCard     = "credit-card"
	CauseURL            = "url"
	CauseIP             = "ip"
	CauseIPv4           = "ipv4"
	CauseIPv6           = "ipv6"
	CauseMAC            = "mac"
	CausePhone          = "phone"
	CauseDate           = "date"
	CauseAfter          = "after"
	CauseBefore         = "before"
	CauseMinAge         = "min-age"
	CausePassword       = "password"
	CauseCommonPassword = "common-password"
)

var english = i18n.Dictionary{
	CauseUUID:           "The value must be a valid UUID",
	CauseUUIDVersion:    "The value must be a version $1 UUID",
	CauseSlug:           "The value may only contain lowercase letters, numbers and single dashes",
	CauseHex:            "The value must be a hexadecimal string",
	CauseBase64:         "The value must be base64 encoded",
	CauseCurrency:       "The value must be an ISO 4217 currency code",
	CauseCreditCard:     "The value must be a valid card number",
	CauseURL:            "The value must be a valid URL",
	CauseIP:             "The value must be a valid IP address",
	CauseIPv4:           "The value must be a valid IPv4 address",
	CauseIPv6:           "The value must be a valid IPv6 address",
	CauseMAC:            "The value must be a valid MAC address",
	CausePhone:          "The value must be a phone number in international format",
	CauseDate:           "The value must be a valid date",
	CauseAfter:          "The date must be after $1",
	CauseBefore:         "The date must be before $1",
	CauseMinAge:         "You must be at least $1 years old",
	CausePassword:       "The password must have at least $1 characters and mix upper case, lower case, digits or symbols",
	CauseCommonPassword: "This password is too common",
}

// En returns the English messages of the extra rules.
func En() i18n.Dictionary {
	return english.Clone()
}

type options struct {
	now               func() time.Time
	minPasswordLength int
}

// Option configures the plugin.
type Option func(*options)

// WithClock sets the time source of the date rules.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithMinPasswordLength sets the length "password" requires when the rule
// has no argument.
func WithMinPasswordLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minPasswordLength = n
		}
	}
}

// Rules returns the extra rule table keyed by registry name.
func Rules(opts ...Option) map[string]validator.RuleFunc {
	o := options{now: time.Now, minPasswordLength: 8}
	for _, opt := range opts {
		opt(&o)
	}
	dates := dateRules{now: o.now}
	return map[string]validator.RuleFunc{
		"uuid":       UUID,
		"slug":       Slug,
		"hex":        Hex,
		"base64":     Base64,
		"currency":   Currency,
		"creditCard": CreditCard,
		"url":        URL,
		"ip":         IP,
		"ipv4":       IPv4,
		"ipv6":       IPv6,
		"mac":        MAC,
		"phone":      Phone,
		"date":       Date,
		"after":      dates.After,
		"before":     dates.Before,
		"minAge":     dates.MinAge,
		"password":   passwordRule(o.minPasswordLength),
		"notCommon":  NotCommon,
	}
}

// Plugin registers the extra rules on a registry.
func Plugin(opts ...Option) validator.Plugin {
	rules := Rules(opts...)
	return func(r *validator.Registry) {
		for name, fn := range rules {
			r.Add(name, fn)
		}
	}
}
