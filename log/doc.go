// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured once, at creation, with functional options. The
// zero [Logger] discards all messages, which lets libraries accept a Logger
// without forcing callers to provide one.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("parse complete", slog.Int("consumed", 7))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a new logger with some options overridden, and
// [Config] does the same for the package-level default logger used by
// [Trace], [Debug], [Info], [Warn], and [Error].
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is rendered as "TRACE". Messages
// below the configured level are discarded before any formatting work.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and [FormatText].
// With [WithPretty] enabled (default), both are rendered for humans: text
// output flattens groups into dotted keys and JSON output is indented. Colors
// are applied only when the output is a color-capable terminal.
package log
