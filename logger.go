package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns the diagnostics logger. Progress lines go to stdout
// separately; this one only records fallbacks and failures.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("app", "mlthumbnails").
		Logger()
}
