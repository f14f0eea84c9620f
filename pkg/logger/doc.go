// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped attributes from context.Context at log time.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// before delegating. Extractors are how the request id and the client's
// device category end up on each record without being passed around:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "devicedetector"),
//	    logger.WithContextExtractors(device.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "request served", logger.Duration(time.Since(start)))
//
// Attribute helpers in attr.go (Error, Errors, RequestID, Duration,
// Component) keep key names consistent. Error and Errors return an
// empty attribute for nil errors so they can be passed unconditionally.
package logger
