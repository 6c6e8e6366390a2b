package extra

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/facile/pkg/validator"
)

var layoutAliases = map[string]string{
	"":         time.DateOnly,
	"date":     time.DateOnly,
	"datetime": time.DateTime,
	"time":     time.TimeOnly,
	"rfc3339":  time.RFC3339,
}

// Date passes when the value parses with the layout given as argument.
// The argument is a Go layout or one of "date" (default), "datetime",
// "time" and "rfc3339".
func Date(value, args string) error {
	layout, ok := layoutAliases[strings.ToLower(args)]
	if !ok {
		layout = args
	}
	if _, err := time.Parse(layout, strings.TrimSpace(value)); err != nil {
		return validator.Invalid(CauseDate)
	}
	return nil
}

type dateRules struct {
	now func() time.Time
}

// After passes for a YYYY-MM-DD date strictly after the argument, which is
// a date or "today".
func (d dateRules) After(value, args string) error {
	bound, err := d.bound(args)
	if err != nil {
		return err
	}
	v, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return validator.Invalid(CauseDate)
	}
	if v.After(bound) {
		return nil
	}
	return validator.Invalid(CauseAfter, bound.Format(time.DateOnly))
}

// Before passes for a YYYY-MM-DD date strictly before the argument.
func (d dateRules) Before(value, args string) error {
	bound, err := d.bound(args)
	if err != nil {
		return err
	}
	v, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return validator.Invalid(CauseDate)
	}
	if v.Before(bound) {
		return nil
	}
	return validator.Invalid(CauseBefore, bound.Format(time.DateOnly))
}

// MinAge passes for a YYYY-MM-DD birthdate at least n years ago.
func (d dateRules) MinAge(value, args string) error {
	if args == "" {
		return validator.ErrMissingArgument
	}
	years, err := strconv.Atoi(args)
	if err != nil || years < 0 {
		return validator.ErrArgumentNotInteger
	}
	born, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return validator.Invalid(CauseDate)
	}
	if age(born, d.now()) >= years {
		return nil
	}
	return validator.Invalid(CauseMinAge, args)
}

func (d dateRules) bound(args string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(args)) {
	case "":
		return time.Time{}, validator.ErrMissingArgument
	case "today":
		y, m, day := d.now().Date()
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(args))
	if err != nil {
		return time.Time{}, ErrInvalidDateArgument
	}
	return t, nil
}

// age returns full years between born and now.
func age(born, now time.Time) int {
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return years
}
