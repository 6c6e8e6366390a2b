// Package logger builds *slog.Logger values through functional options and
// provides attribute helpers with consistent key names.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "facile"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "validation finished",
//	    logger.Form("signup"),
//	    logger.RunID(runID),
//	    logger.Valid(ok),
//	)
//
// New wraps the text or JSON handler with WrapHandler, which runs each
// ContextExtractor against the record's context before delegating.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
