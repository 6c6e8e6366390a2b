// Package handler serves form descriptions over HTTP and validates their
// submissions.
//
// Forms mounts these routes on a chi router:
//
//	GET  /forms                   names of the loaded forms (JSON)
//	GET  /forms/{form}            the rendered form page
//	POST /forms/{form}/validate   validate a submission
//	GET  /forms/{form}/events     DataStar stream of validation outcomes
//	GET  /health                  liveness or readiness probe
//	GET  /metrics                 Prometheus metrics, when configured
//
// A submission answers differently depending on who asks. DataStar
// requests get one element patch per field ("#<id>-errors") plus a status
// badge, browsers asking for HTML get the re-rendered page, and everything
// else gets JSON: 200 with {"data":{"form":..,"valid":true}} or 422 with
// the messages per field under error.details. A rule configuration error
// answers 500.
//
// Messages are localized with the dictionary negotiated by i18n.Middleware,
// so two requests in different languages never affect each other.
//
//	forms, err := handler.New(store,
//		handler.WithLogger(log),
//		handler.WithCatalog(catalog),
//		handler.WithMetrics(m, prometheus.DefaultGatherer),
//	)
//	if err != nil {
//		return err
//	}
//	return server.Run(ctx, forms.Router())
//
// The building blocks (HandlerFunc, Wrap, Response and its JSON, templ and
// SSE implementations) are exported for custom endpoints.
package handler
