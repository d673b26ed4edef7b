// Package log builds the zerolog loggers used by the code generator. The
// library packages themselves have no failure path and never log.
package log

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewDefault returns a pretty console logger when stderr is attached to a
// terminal and a JSON logger otherwise.
func NewDefault() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.
			New(zerolog.ConsoleWriter{ //nolint:exhaustruct
				Out:          os.Stderr,
				TimeFormat:   time.RFC3339,
				TimeLocation: time.UTC,
			}).
			With().
			Timestamp().
			Logger().
			Level(zerolog.InfoLevel)
	}

	return zerolog.
		New(os.Stderr).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)
}
