// Package metrics exposes Prometheus metrics for validation passes.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	v, _ := validator.New(form, validator.WithMetrics(m), validator.WithName("signup"))
//	router.Handle("/metrics", metrics.Handler(reg))
package metrics
