package extra

import "errors"

// ErrInvalidDateArgument is returned when a date rule's bound cannot be
// parsed.
var ErrInvalidDateArgument = errors.New("the argument must be a date in YYYY-MM-DD format or \"today\"")
