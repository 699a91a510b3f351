package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/lamb/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout, log.WithPretty(false), log.WithTimeLayout("none"))
	logger.Info("parser started", slog.String("version", "0.1.0"))
	// Output:
	// {"level":"INFO","msg":"parser started","version":"0.1.0"}
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Trace("trace message")
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message", slog.String("key", "value"))
	// Output:
	// level=WARN msg="warning message" key=value
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout, log.WithPretty(false), log.WithTimeLayout("none"))
	logger = logger.With(slog.String("expr", "11dog"))

	logger.Info("parse complete", slog.Int("consumed", 2))
	// Output:
	// {"level":"INFO","msg":"parse complete","expr":"11dog","consumed":2}
}

func Example_withContext() {
	type requestIDKey struct{}

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(os.Stderr, log.WithLevel(log.LevelTrace))

	logger.TraceContext(ctx, "parse start", slog.Int("source_length", 7))
	logger.DebugContext(ctx, "request details", slog.String("method", "POST"))
}
