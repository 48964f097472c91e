// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Service),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.Info("schema validated", logger.Schema("order"), logger.ErrorCount(0))
//
// New writes JSON at info level to stdout by default. WithEnvironment picks
// text output at debug level for development.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
