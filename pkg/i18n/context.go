package i18n

import (
	"context"
)

type localeContextKey struct{}

type dictionaryContextKey struct{}

// SetLocale sets the locale in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale from the context, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// WithDictionary stores d in the context.
func WithDictionary(ctx context.Context, d Dictionary) context.Context {
	return context.WithValue(ctx, dictionaryContextKey{}, d)
}

// DictionaryFromContext returns the dictionary stored in ctx, or the
// process-wide current one.
func DictionaryFromContext(ctx context.Context) Dictionary {
	if d, ok := ctx.Value(dictionaryContextKey{}).(Dictionary); ok && d != nil {
		return d
	}
	return Current()
}
