package vault

import "errors"

// Errors
var (
	ErrVaultAlreadyExists   = errors.New("vault: vault already exists at this path")
	ErrVaultNotFound        = errors.New("vault: vault not found at this path")
	ErrMalformedContainer   = errors.New("vault: malformed container")
	ErrAuthenticationFailed = errors.New("vault: wrong master password or vault has been tampered")
	ErrRecordNotFound       = errors.New("vault: no entry for service")
	ErrIO                   = errors.New("vault: i/o failure")
	ErrInsufficientDisk     = errors.New("vault: insufficient disk space")
	ErrPayloadTooLarge      = errors.New("vault: payload too large")

	// ErrInput is the parent of every field validation error.
	ErrInput        = errors.New("vault: invalid input")
	ErrFieldEmpty   = errors.New("vault: field must not be empty")
	ErrFieldInvalid = errors.New("vault: field contains a forbidden character")
	ErrFieldTooLong = errors.New("vault: record too long")
)
