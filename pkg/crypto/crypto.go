// Package crypto provides cryptographic primitives for aesvault.
//
// This package implements AES-256-GCM authenticated encryption with a
// detached tag and PBKDF2-HMAC-SHA256 key derivation.
//
// # Security Features
//
//   - AES-256-GCM authenticated encryption (96-bit nonce, 128-bit tag)
//   - PBKDF2-HMAC-SHA256 key derivation with a caller-supplied iteration count
//   - Cryptographically secure random salt and nonce generation
//   - Best-effort wiping of sensitive buffers
//
// # Example Usage
//
//	salt := crypto.RandomBytes(crypto.SaltLength)
//	key, err := crypto.DeriveKey(password, salt, 200000, crypto.KeyLength)
//	defer crypto.SecureWipe(key)
//
//	nonce := crypto.RandomBytes(crypto.NonceLength)
//	ciphertext, tag, err := crypto.Seal(key, nonce, plaintext, nil)
//
//	plaintext, err := crypto.Open(key, nonce, ciphertext, nil, tag)
//
// # Limitations
//
// SecureWipe only clears the slice it is given. Copies made by the Go
// runtime, immutable strings, swap and core dumps are out of its reach, so
// it raises the bar against casual inspection and is not a defense against
// a compromised process.
package crypto

import "errors"

const (
	// KeyLength is the length of encryption keys in bytes (256 bits).
	KeyLength = 32

	// NonceLength is the length of GCM nonces in bytes (96 bits).
	NonceLength = 12

	// TagLength is the length of GCM authentication tags in bytes (128 bits).
	TagLength = 16

	// SaltLength is the length of KDF salts in bytes (128 bits).
	SaltLength = 16
)

// Sentinel errors returned by crypto functions.
var (
	// ErrInvalidKeyLength indicates the key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("crypto: invalid key length, must be 32 bytes")

	// ErrInvalidNonceLength indicates the nonce is not 12 bytes.
	ErrInvalidNonceLength = errors.New("crypto: invalid nonce length, must be 12 bytes")

	// ErrInvalidKDFParams indicates DeriveKey was called with unusable parameters.
	ErrInvalidKDFParams = errors.New("crypto: invalid key derivation parameters")

	// ErrAuthenticationFailed covers every decryption failure: bad tag, wrong
	// key, truncated input. Callers cannot tell these apart.
	ErrAuthenticationFailed = errors.New("crypto: authentication failed")
)
