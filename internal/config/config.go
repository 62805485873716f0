// Package config resolves aesvault settings from defaults, a YAML file, the
// environment, and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/forest6511/aesvault/pkg/vault"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfig = "AESVAULT_CONFIG"
	EnvFile   = "AESVAULT_FILE"
)

// DefaultVaultPath is relative to the working directory.
const DefaultVaultPath = "vault_aes.dat"

// MinIterations is the lowest PBKDF2 work factor accepted for new writes.
const MinIterations = 100000

// FileName is the config file looked up under the user config directory.
const FileName = "config.yaml"

var (
	// ErrInvalidConfig is returned when a loaded setting is out of range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrConfigNotFound is returned when an explicitly named file is missing.
	ErrConfigNotFound = errors.New("config: file not found")
)

// Config holds the resolved settings for one invocation.
type Config struct {
	VaultPath  string `yaml:"vault_path"`
	Iterations uint32 `yaml:"iterations"`
	Verbose    bool   `yaml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		VaultPath:  DefaultVaultPath,
		Iterations: vault.DefaultIterations,
	}
}

// Load builds a Config from defaults, the YAML file, and the environment.
// path names the config file; when empty, $AESVAULT_CONFIG and then the
// per-user default location are tried, and a missing default file is not
// an error. Flag overrides are applied by the caller before Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = defaultPath()
	}

	if path != "" {
		if err := cfg.mergeFile(path, explicit); err != nil {
			return Config{}, err
		}
	}

	if p := os.Getenv(EnvFile); p != "" {
		cfg.VaultPath = p
	}
	return cfg, nil
}

// Validate checks ranges and expands a leading "~/" in VaultPath.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.VaultPath) == "" {
		return fmt.Errorf("%w: vault path is empty", ErrInvalidConfig)
	}
	if c.Iterations < MinIterations || c.Iterations > vault.MaxIterations {
		return fmt.Errorf("%w: iterations must be between %d and %d, got %d",
			ErrInvalidConfig, MinIterations, vault.MaxIterations, c.Iterations)
	}

	expanded, err := expandHome(c.VaultPath)
	if err != nil {
		return err
	}
	c.VaultPath = expanded
	return nil
}

func (c *Config) mergeFile(path string, explicit bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil
		}
		return fmt.Errorf("config: failed to open %s: %w", path, err)
	}
	defer f.Close()

	return c.decode(f, path)
}

func (c *Config) decode(r io.Reader, name string) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file keeps defaults
		}
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
	}
	return nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aesvault", FileName)
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: failed to get user home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
