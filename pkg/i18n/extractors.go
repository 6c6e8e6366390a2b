package i18n

import (
	"net/http"
	"strings"
)

// maxLangCodeLength is the RFC 5646 recommended maximum.
const maxLangCodeLength = 35

// ExtractorConfig holds configuration for the language extractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name == "" {
			return
		}
		c.CookieName = name
	}
}

// WithQueryParamName sets the query parameter name to check for language.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name == "" {
			return
		}
		c.QueryParamName = name
	}
}

// DefaultLangExtractor checks, in order:
//  1. cookie (default "lang")
//  2. query parameter (default "lang")
//  3. Language header
//  4. Accept-Language header, returned verbatim for negotiation
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if lang := validLangCode(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		if config.QueryParamName != "" {
			if lang := validLangCode(r.URL.Query().Get(config.QueryParamName)); lang != "" {
				return lang
			}
		}

		if lang := validLangCode(r.Header.Get("Language")); lang != "" {
			return lang
		}

		return strings.TrimSpace(r.Header.Get("Accept-Language"))
	}
}

func validLangCode(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	return strings.ToLower(lang)
}
