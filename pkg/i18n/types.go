package i18n

import "net/http"

// LangExtractor returns the client's language preference from a request.
// The result may be a single tag or an Accept-Language value; empty means
// unknown.
type LangExtractor func(r *http.Request) string
