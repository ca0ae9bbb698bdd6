// Package logging provides structured diagnostics for pasteimg.
//
// It wraps Go's log/slog to emit JSON entries with persistent context
// attributes. Diagnostics are off by default: the CLI uses [NopLogger] and
// only builds a real logger, writing to stderr, when the hidden --log-level
// flag is given. No log file is ever created, so a run still writes exactly
// one file: the captured image.
//
// # Basic Usage
//
//	logger := logging.NewLogger(os.Stderr, logging.LevelDebug)
//	logger.Debug("canonical encode finished", "bytes", 48213)
//
// # Context Propagation
//
// Child loggers carry attributes into every entry:
//
//	stageLogger := logger.WithStage("write").WithFormat("png")
//	stageLogger.Debug("file written", "path", path)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"file written","stage":"write","format":"png","path":"..."}
//
// # Thread Safety
//
// [Logger] is safe for concurrent use.
//
// # Log Levels
//
// [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError]. Use [ParseLevel]
// to normalize user-provided strings and [ValidLevels] to list them.
package logging
