package vault

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/forest6511/aesvault/internal/logging"
)

// Separator delimits the fields of a record line in the plaintext payload.
const Separator = '\t'

// MaxLineLength bounds one encoded record line (fields plus separators).
// Longer input is rejected, never truncated.
const MaxLineLength = 1024

// Record is one stored credential.
type Record struct {
	Service  string
	Username string
	Password string
}

// Validate checks that every field is non-empty, free of the separator and
// line terminators, that the service does not start with the comment
// marker, and that the encoded line fits in MaxLineLength.
// Returned errors wrap ErrInput.
func (r Record) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"service", r.Service},
		{"user", r.Username},
		{"pass", r.Password},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %w: %s", ErrInput, ErrFieldEmpty, f.name)
		}
		if strings.ContainsAny(f.value, "\t\n\r") {
			return fmt.Errorf("%w: %w: %s has a tab or newline", ErrInput, ErrFieldInvalid, f.name)
		}
	}
	// A leading '#' would turn the encoded line into a comment.
	if r.Service[0] == commentMarker {
		return fmt.Errorf("%w: %w: service must not start with %q", ErrInput, ErrFieldInvalid, commentMarker)
	}
	if n := r.lineLength(); n > MaxLineLength {
		return fmt.Errorf("%w: %w: %d bytes (max %d)", ErrInput, ErrFieldTooLong, n, MaxLineLength)
	}
	return nil
}

func (r Record) lineLength() int {
	return len(r.Service) + len(r.Username) + len(r.Password) + 2
}

// LogValue implements slog.LogValuer. The password is always redacted.
func (r Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("service", r.Service),
		slog.String("user", r.Username),
		slog.Any("pass", logging.Secret(r.Password)),
	)
}
