// Package clientip resolves the address of the client behind an HTTP
// request.
//
// Proxy headers are trusted in the order given; deploy behind a proxy that
// overwrites them, or pass only the header your proxy sets:
//
//	r.Use(clientip.Middleware("X-Real-IP"))
//
// The resolved address is available from the request context and can be
// attached to log records with LoggerExtractor.
package clientip
