// Package vault provides a single-file credential vault encrypted with
// AES-256-GCM under a key derived from a master password.
//
// Every operation reads the whole file, works on the records in memory, and
// (for mutations) writes the whole file back atomically under a freshly
// generated salt and nonce. There is no locking between processes: when two
// invocations write the same file concurrently, the last rename wins and
// the other change is lost. Readers never observe a partially written file.
//
// Derived keys and plaintext buffers are wiped before an operation returns.
// Record fields are Go strings and cannot be wiped; see package crypto for
// the limits of wiping in general.
package vault

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/forest6511/aesvault/pkg/crypto"
)

// Vault manages one vault file.
type Vault struct {
	path       string       // Path to the vault file (e.g., ./vault_aes.dat)
	iterations uint32       // PBKDF2 iterations for new writes
	logger     *slog.Logger // Diagnostics only, never secrets
}

// New creates a Vault management object for the file at path.
func New(path string, opts ...Option) *Vault {
	v := &Vault{
		path:       path,
		iterations: DefaultIterations,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Path returns the vault file path.
func (v *Vault) Path() string {
	return v.path
}

// Exists reports whether something is present at the vault path.
func (v *Vault) Exists() bool {
	_, err := os.Lstat(v.path)
	return err == nil
}

// Init creates a new vault holding zero records. It never overwrites an
// existing file.
func (v *Vault) Init(password []byte) error {
	if v.Exists() {
		return ErrVaultAlreadyExists
	}

	out, err := v.seal(password, nil)
	if err != nil {
		return err
	}
	if err := WriteNew(v.path, out); err != nil {
		return err
	}

	v.logger.Debug("vault initialized", "path", v.path, "iterations", v.iterations)
	return nil
}

// Add validates r, appends it to the stored records, and rewrites the vault.
// Duplicate services are allowed; Show returns the first one.
func (v *Vault) Add(password []byte, r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	records, err := v.load(password)
	if err != nil {
		return err
	}
	records = append(records, r)

	if err := v.save(password, records); err != nil {
		return err
	}

	v.logger.Debug("record added", "path", v.path, "record", r, "records", len(records))
	return nil
}

// List returns the service names in stored order.
func (v *Vault) List(password []byte) ([]string, error) {
	records, err := v.load(password)
	if err != nil {
		return nil, err
	}

	services := make([]string, 0, len(records))
	for _, r := range records {
		services = append(services, r.Service)
	}
	return services, nil
}

// Show returns the first record whose service is byte-for-byte equal to
// service.
func (v *Vault) Show(password []byte, service string) (Record, error) {
	records, err := v.load(password)
	if err != nil {
		return Record{}, err
	}

	for _, r := range records {
		if r.Service == service {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("%w: %s", ErrRecordNotFound, service)
}

// ChangePassword re-encrypts every record under next. The current password
// must open the vault; on any failure the file is left as it was.
func (v *Vault) ChangePassword(current, next []byte) error {
	records, err := v.load(current)
	if err != nil {
		return err
	}
	if err := v.save(next, records); err != nil {
		return err
	}

	v.logger.Debug("master password changed", "path", v.path, "records", len(records))
	return nil
}

// load reads, authenticates, and parses the vault file.
func (v *Vault) load(password []byte) ([]Record, error) {
	data, err := ReadFile(v.path)
	if err != nil {
		return nil, err
	}
	defer crypto.SecureWipe(data)

	if perm, open := permissionsTooOpen(v.path); open {
		v.logger.Warn("vault file is accessible by other users", "path", v.path, "mode", perm.String())
	}

	var c Container
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	defer crypto.SecureWipe(c.Ciphertext)

	key, err := crypto.DeriveKey(password, c.Salt[:], c.Iterations, crypto.KeyLength)
	if err != nil {
		return nil, fmt.Errorf("vault: failed to derive key: %w", err)
	}
	defer crypto.SecureWipe(key)

	plaintext, err := crypto.Open(key, c.Nonce[:], c.Ciphertext, nil, c.Tag[:])
	if err != nil {
		if errors.Is(err, crypto.ErrAuthenticationFailed) {
			return nil, ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("vault: failed to decrypt: %w", err)
	}
	defer crypto.SecureWipe(plaintext)

	records, skipped := DecodePayload(plaintext)
	if skipped > 0 {
		v.logger.Debug("skipped malformed lines", "path", v.path, "count", skipped)
	}
	v.logger.Debug("vault loaded", "path", v.path, "records", len(records), "iterations", c.Iterations)
	return records, nil
}

// save encrypts records under a fresh salt and nonce and replaces the file.
func (v *Vault) save(password []byte, records []Record) error {
	out, err := v.seal(password, records)
	if err != nil {
		return err
	}
	return WriteAtomic(v.path, out)
}

// seal builds the encoded container for records. Salt and nonce are new on
// every call, so a (key, nonce) pair is never reused.
func (v *Vault) seal(password []byte, records []Record) ([]byte, error) {
	salt := crypto.RandomBytes(crypto.SaltLength)
	nonce := crypto.RandomBytes(crypto.NonceLength)

	key, err := crypto.DeriveKey(password, salt, v.iterations, crypto.KeyLength)
	if err != nil {
		return nil, fmt.Errorf("vault: failed to derive key: %w", err)
	}
	defer crypto.SecureWipe(key)

	plaintext := EncodePayload(records)
	defer crypto.SecureWipe(plaintext)

	ciphertext, tag, err := crypto.Seal(key, nonce, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("vault: failed to encrypt: %w", err)
	}

	c := Container{
		Iterations: v.iterations,
		Ciphertext: ciphertext,
	}
	copy(c.Salt[:], salt)
	copy(c.Nonce[:], nonce)
	copy(c.Tag[:], tag)

	return c.MarshalBinary()
}
