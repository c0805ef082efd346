// Package logging builds the zerolog logger used by the fleury binary.
// Library packages never log; only the binary and its internal front-end do.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Options controls New.
type Options struct {
	// Out receives log lines, usually os.Stderr.
	Out io.Writer

	// Level is the minimum level written.
	Level zerolog.Level

	// NoColor disables ANSI colors, for files and pipes.
	NoColor bool
}

// New returns a human-readable console logger with timestamps.
func New(opts Options) zerolog.Logger {
	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = opts.Out
		w.NoColor = opts.NoColor
		w.TimeFormat = time.TimeOnly
	})

	return zerolog.New(w).Level(opts.Level).With().Timestamp().Logger()
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
