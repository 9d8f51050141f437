// Package log wraps zerolog with the module's one logging convention: a
// per-engine child logger carrying a "cpu" field, used for illegal-opcode
// diagnostics. The bus/CPU core itself never returns an
// error for emulation semantics (spec §7), so this is the only place
// those conditions become observable.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a zerolog.Logger scoped to a single CPU engine.
type Logger = zerolog.Logger

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// For returns a logger tagged with the given engine name, e.g. "m6800".
func For(cpu string) Logger {
	return base.With().Str("cpu", cpu).Logger()
}

// SetLevel adjusts the global minimum level, e.g. from --log-level.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// SetOutput redirects where log lines are written; tests use this to
// capture output instead of writing to stderr.
func SetOutput(w io.Writer) {
	base = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}
