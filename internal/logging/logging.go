// Package logging sets up ladle's file-backed logger. The TUI owns the
// terminal, so everything worth recording goes to a log file instead of
// stdout/stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const levelEnvVar = "LADLE_LOG_LEVEL"

// Open creates (or appends to) the log file at path and returns a logger
// writing to it, plus a close func for shutdown. Level comes from
// LADLE_LOG_LEVEL, defaulting to info.
func Open(path string) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(file).Level(levelFromEnv()).With().Timestamp().Logger()
	closeFn := func() { _ = file.Close() }
	return logger, closeFn, nil
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(levelEnvVar))) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "trace":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}
