package main

import (
	"errors"
	"strings"

	"github.com/forest6511/aesvault/pkg/vault"
)

// describeError turns an error from any verb into the single line printed
// after "Error: ".
func describeError(err error, path string) string {
	switch {
	case errors.Is(err, vault.ErrVaultNotFound):
		return "no vault at " + path + "; run 'aesvault init' first"
	case errors.Is(err, vault.ErrVaultAlreadyExists):
		return "refusing to overwrite existing vault at " + path
	case errors.Is(err, vault.ErrAuthenticationFailed):
		return "wrong master password or vault has been tampered"
	case errors.Is(err, vault.ErrMalformedContainer):
		return "corrupt vault: " + detail(err, vault.ErrMalformedContainer)
	case errors.Is(err, vault.ErrRecordNotFound):
		return "no entry found for service: " + detail(err, vault.ErrRecordNotFound)
	case errors.Is(err, vault.ErrInput):
		return nestedDetail(err, vault.ErrInput)
	case errors.Is(err, vault.ErrIO):
		return "i/o failure: " + nestedDetail(err, vault.ErrIO)
	default:
		return err.Error()
	}
}

const packagePrefix = "vault: "

// detail drops the sentinel's own text from the front of err's message.
// The remainder may carry user input and is returned untouched.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// nestedDetail is detail for sentinels that wrap a second vault sentinel
// directly after their own text, such as ErrInput wrapping ErrFieldEmpty.
func nestedDetail(err, sentinel error) string {
	return strings.TrimPrefix(detail(err, sentinel), packagePrefix)
}
