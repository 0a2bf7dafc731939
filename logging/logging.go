// Package logging sets up the debug log. The TUI owns the terminal, so log
// output goes to a file rather than stdout.
package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Init opens (or creates) the log file at path and returns a logger writing
// to it, along with a close function.
func Init(path string) (zerolog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("app", "easel").
		Logger()
	return logger, f.Close, nil
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
