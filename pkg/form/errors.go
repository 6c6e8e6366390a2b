package form

import "errors"

var (
	ErrMissingFormName    = errors.New("form name is required")
	ErrMissingFieldID     = errors.New("field id is required")
	ErrDuplicateFieldID   = errors.New("duplicate field id")
	ErrUnknownFieldType   = errors.New("unknown field type")
	ErrUnsupportedFormat  = errors.New("unsupported form description format")
	ErrFailedToParseForm  = errors.New("failed to parse form description")
	ErrFailedToReadForm   = errors.New("failed to read form description")
	ErrDuplicateForm      = errors.New("duplicate form name")
	ErrFormNotFound       = errors.New("form not found")
	ErrInvalidXRule       = errors.New("invalid x-rule value")
	ErrLoadingCancelled   = errors.New("loading form descriptions was cancelled")
	ErrNoFormDescriptions = errors.New("no form descriptions found")
)
