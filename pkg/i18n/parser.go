package i18n

import (
	"context"
	"fmt"
	"strings"
)

// Parser decodes dictionary files. The document root maps language tags to
// flat cause → template objects.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]Dictionary, error)

	// SupportsFileExtension accepts the extension with or without the dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(getFileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

// toDictionaries converts a decoded document into dictionaries. Scalar
// templates are stringified; nested objects are rejected.
func toDictionaries(data map[string]any) (map[string]Dictionary, error) {
	result := make(map[string]Dictionary, len(data))
	for lang, val := range data {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidDictionary, lang, val)
		}
		dict := make(Dictionary, len(entries))
		for key, tmpl := range entries {
			switch tmpl.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("%w: language %q key %q: expected scalar, got %T", ErrInvalidDictionary, lang, key, tmpl)
			}
			dict[key] = fmt.Sprint(tmpl)
		}
		result[lang] = dict
	}
	return result, nil
}
