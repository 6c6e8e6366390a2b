package validator

import "slices"

// In checks membership against "[kind,]v1,v2,...". With the array kind
// every comma-separated item of the value must be listed; otherwise the
// whole value must equal an option. A leading "string" or "number" kind is
// dropped from the options.
func In(value, args string) error {
	a := SplitArgs(args)
	if len(a) == 0 || a[0] == "" {
		return ErrMissingArgument
	}

	switch Kind(a[0]) {
	case KindArray:
		options := a[1:]
		for _, item := range SplitArgs(value) {
			if !slices.Contains(options, item) {
				return Invalid(CauseWithin)
			}
		}
		return nil
	case KindString, KindNumber:
		a = a[1:]
	}

	if slices.Contains(a, value) {
		return nil
	}
	return Invalid(CauseWithin)
}
