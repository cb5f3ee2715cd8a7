// Package logging provides a minimal logging facade for ownkit.
//
// The Logger interface wraps a subset of log/slog with context-aware methods
// so that applications can substitute their own implementation:
//
//	logger := logging.New(nil) // slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// The Datum helper builds attributes for stored string values, abbreviating
// long payloads so ownership traces stay one line per event:
//
//	logger.Info(ctx, "adopted instance", logging.Datum("datum", d.Get()))
package logging
