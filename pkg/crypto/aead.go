package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLength {
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: failed to create GCM: %w", err)
	}
	return gcm, nil
}

// Seal encrypts plaintext using AES-256-GCM and returns the ciphertext and
// the authentication tag separately.
//
// The ciphertext has the same length as plaintext. aad is authenticated but
// not encrypted and may be nil.
//
// The nonce must never repeat under the same key. Callers are expected to
// pass a fresh RandomBytes(NonceLength) on every call; Seal does not track
// nonces.
func Seal(key, nonce, plaintext, aad []byte) (ciphertext, tag []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	if len(nonce) != NonceLength {
		return nil, nil, ErrInvalidNonceLength
	}

	sealed := gcm.Seal(nil, nonce, plaintext, aad)
	split := len(sealed) - TagLength
	return sealed[:split:split], sealed[split:], nil
}

// Open verifies the tag and decrypts ciphertext using AES-256-GCM.
//
// No plaintext is returned unless the tag verifies. Every failure caused by
// the stored bytes or the key (bad tag, wrong key, truncated tag) returns
// ErrAuthenticationFailed and nothing else, so callers cannot be used as a
// forgery oracle.
func Open(key, nonce, ciphertext, aad, tag []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceLength {
		return nil, ErrInvalidNonceLength
	}
	if len(tag) != TagLength {
		return nil, ErrAuthenticationFailed
	}

	sealed := make([]byte, 0, len(ciphertext)+TagLength)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	// gcm.Open checks the tag before decrypting into dst.
	plaintext, err := gcm.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
