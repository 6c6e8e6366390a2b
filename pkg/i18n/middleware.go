package i18n

import (
	"net/http"
)

// Middleware negotiates the request language against catalog and stores
// both the language and its dictionary in the request context.
// A nil extractor uses DefaultLangExtractor.
func Middleware(catalog *Catalog, extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := catalog.Negotiate(extr(r))
			ctx := SetLocale(r.Context(), lang)
			ctx = WithDictionary(ctx, catalog.Get(lang))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
