package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by DataStar
	DataStarAcceptHeader = "text/event-stream"

	// DataStarRequestHeader is set by the DataStar client on every fetch
	DataStarRequestHeader = "Datastar-Request"

	// DataStarQueryParam carries signals on GET requests
	DataStarQueryParam = "datastar"
)

// Patch mode aliases
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // morph element (default)
	PatchInner   = datastar.ElementPatchModeInner   // replace inner HTML
	PatchRemove  = datastar.ElementPatchModeRemove  // remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // prepend inside element
)

// IsDataStar reports whether r was issued by the DataStar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
