package vault

import "log/slog"

// Option configures a Vault.
type Option func(*Vault)

// WithIterations sets the PBKDF2 iteration count used for the next write.
// Existing containers are always opened with the count stored in them.
func WithIterations(iterations uint32) Option {
	return func(v *Vault) {
		v.iterations = iterations
	}
}

// WithLogger sets the logger for diagnostic output. Secrets are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Vault) {
		v.logger = logger
	}
}
