// Package httpserver runs an http.Server with graceful shutdown.
//
// Run blocks until the context is cancelled or the process receives an
// interrupt/TERM signal, then calls http.Server.Shutdown bounded by
// the shutdown timeout. Servers are built from options (New) or from an
// env-tagged Config filled by pkg/config (NewFromConfig):
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStopHook(func(l *slog.Logger) { l.Info("bye") }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Start hooks run before the listener accepts connections, stop hooks after
// graceful shutdown. Start failures are reported as ErrStart joined with the
// cause, failed graceful shutdowns as ErrShutdown.
package httpserver
