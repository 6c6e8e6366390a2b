// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware keeps a valid X-Request-ID sent by the client and otherwise
// generates a UUIDv7. The ID is echoed in the response header, stored in
// the request context and can be added to every log record:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
package requestid
