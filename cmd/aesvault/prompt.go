package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"
	"github.com/forest6511/aesvault/pkg/security"

	"golang.org/x/term"
)

// MaxSecretLength bounds a master password read from the prompt. Longer
// input is rejected rather than truncated.
const MaxSecretLength = 256

var (
	errNotTerminal      = errors.New("stdin is not a terminal; the master password must be typed at a prompt")
	errSecretTooLong    = fmt.Errorf("master password longer than %d bytes", MaxSecretLength)
	errEmptyPassword    = errors.New("master password must not be empty")
	errPasswordMismatch = errors.New("passwords do not match")
)

// secretReader shows prompt and returns what was typed, without echo.
type secretReader func(prompt string) ([]byte, error)

// terminalReader reads from the controlling terminal, writing prompts to w.
func terminalReader(w io.Writer) secretReader {
	return func(prompt string) ([]byte, error) {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return nil, errNotTerminal
		}
		fmt.Fprint(w, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(w)
		return b, err
	}
}

// readSecret prompts once and moves the input into a locked buffer. The
// caller must Destroy the result.
func (a *app) readSecret(prompt string) (*memguard.LockedBuffer, error) {
	b, err := a.secrets(prompt)
	if err != nil {
		memguard.WipeBytes(b)
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(b) > MaxSecretLength {
		memguard.WipeBytes(b)
		return nil, errSecretTooLong
	}
	// NewBufferFromBytes wipes b.
	return memguard.NewBufferFromBytes(b), nil
}

// readNewSecret prompts for a password and its confirmation.
func (a *app) readNewSecret(prompt, confirm string) (*memguard.LockedBuffer, error) {
	first, err := a.readSecret(prompt)
	if err != nil {
		return nil, err
	}
	second, err := a.readSecret(confirm)
	if err != nil {
		first.Destroy()
		return nil, err
	}
	defer second.Destroy()

	if first.Size() == 0 {
		first.Destroy()
		return nil, errEmptyPassword
	}
	if !first.EqualTo(second.Bytes()) {
		first.Destroy()
		return nil, errPasswordMismatch
	}
	return first, nil
}

// secretBytes returns the buffer contents. An empty buffer yields a non-nil
// empty slice so key derivation still runs and fails authentication.
func secretBytes(b *memguard.LockedBuffer) []byte {
	if p := b.Bytes(); p != nil {
		return p
	}
	return []byte{}
}

// reportStrength prints warnings for a weak or fair new master password.
func reportStrength(w io.Writer, password []byte) {
	strength := security.Rate(password)
	warnings := security.Warnings(strength)
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "Password strength: %s\n", strength)
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}
