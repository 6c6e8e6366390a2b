package i18n

import "errors"

var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrInvalidDictionary = errors.New("invalid dictionary structure")
	ErrNoDictionaries    = errors.New("no dictionaries found")

	ErrLoadingFileCancelled = errors.New("loading dictionary file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read dictionary file")
	ErrFailedToParseFile    = errors.New("failed to parse dictionary file")

	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read directory")

	ErrUnsupportedFormat = errors.New("unsupported dictionary file format")
	ErrUnknownLanguage   = errors.New("unknown language")
)
