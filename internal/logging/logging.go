// Package logging builds the structured logger shared by the CLI and the
// vault package.
package logging

import (
	"io"
	"log/slog"
)

// Redacted is the rendering of every Secret value.
const Redacted = "[REDACTED]"

// New returns a text logger writing to w. Only warnings and errors are
// emitted unless verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Secret represents a value that should be redacted in logs
type Secret string

// String implements the Stringer interface, always returning a redacted value
func (s Secret) String() string {
	return Redacted
}

// GoString implements the GoStringer interface for %#v formatting
func (s Secret) GoString() string {
	return Redacted
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}
