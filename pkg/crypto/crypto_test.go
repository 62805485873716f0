package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeriveKey tests the PBKDF2-HMAC-SHA256 key derivation function
func TestDeriveKey(t *testing.T) {
	password := []byte("test-password-123")
	salt := RandomBytes(SaltLength)

	key, err := DeriveKey(password, salt, 1000, KeyLength)
	require.NoError(t, err)
	assert.Len(t, key, KeyLength)

	// Same password + salt + iterations produces the same key
	key2, err := DeriveKey(password, salt, 1000, KeyLength)
	require.NoError(t, err)
	assert.Equal(t, key, key2)

	differentPassword, err := DeriveKey([]byte("different-password"), salt, 1000, KeyLength)
	require.NoError(t, err)
	assert.NotEqual(t, key, differentPassword)

	differentSalt, err := DeriveKey(password, RandomBytes(SaltLength), 1000, KeyLength)
	require.NoError(t, err)
	assert.NotEqual(t, key, differentSalt)

	differentIterations, err := DeriveKey(password, salt, 1001, KeyLength)
	require.NoError(t, err)
	assert.NotEqual(t, key, differentIterations)
}

// TestDeriveKeyKnownVectors checks PBKDF2-HMAC-SHA256 against published vectors.
func TestDeriveKeyKnownVectors(t *testing.T) {
	tests := []struct {
		iterations uint32
		want       string
	}{
		{1, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
		{4096, "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("iterations=%d", tt.iterations), func(t *testing.T) {
			key, err := DeriveKey([]byte("password"), []byte("salt"), tt.iterations, 32)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(key))
		})
	}
}

func TestDeriveKeyInvalidParams(t *testing.T) {
	salt := RandomBytes(SaltLength)

	tests := []struct {
		name       string
		password   []byte
		salt       []byte
		iterations uint32
		keyLen     int
	}{
		{"nil password", nil, salt, 1000, KeyLength},
		{"empty salt", []byte("pw"), nil, 1000, KeyLength},
		{"zero iterations", []byte("pw"), salt, 0, KeyLength},
		{"zero output length", []byte("pw"), salt, 1000, 0},
		{"negative output length", []byte("pw"), salt, 1000, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey(tt.password, tt.salt, tt.iterations, tt.keyLen)
			assert.ErrorIs(t, err, ErrInvalidKDFParams)
			assert.Nil(t, key)
		})
	}
}

// An empty (but non-nil) password is a valid input.
func TestDeriveKeyEmptyPassword(t *testing.T) {
	key, err := DeriveKey([]byte{}, RandomBytes(SaltLength), 1000, KeyLength)
	require.NoError(t, err)
	assert.Len(t, key, KeyLength)
}

func TestSealOpen(t *testing.T) {
	key := RandomBytes(KeyLength)
	nonce := RandomBytes(NonceLength)
	plaintext := []byte("secret data to encrypt and decrypt")
	aad := []byte("header")

	ciphertext, tag, err := Seal(key, nonce, plaintext, aad)
	require.NoError(t, err)
	assert.Len(t, ciphertext, len(plaintext))
	assert.Len(t, tag, TagLength)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := Open(key, nonce, ciphertext, aad, tag)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestSealEmptyPlaintext(t *testing.T) {
	key := RandomBytes(KeyLength)
	nonce := RandomBytes(NonceLength)

	ciphertext, tag, err := Seal(key, nonce, []byte{}, nil)
	require.NoError(t, err)
	assert.Empty(t, ciphertext)
	assert.Len(t, tag, TagLength)

	decrypted, err := Open(key, nonce, ciphertext, nil, tag)
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}

// Appending to the returned ciphertext must not overwrite the tag.
func TestSealCiphertextDoesNotAliasTag(t *testing.T) {
	key := RandomBytes(KeyLength)
	nonce := RandomBytes(NonceLength)

	ciphertext, tag, err := Seal(key, nonce, []byte("abc"), nil)
	require.NoError(t, err)
	saved := bytes.Clone(tag)

	_ = append(ciphertext, 0xFF, 0xFF)
	assert.Equal(t, saved, tag)
}

func TestOpenFailures(t *testing.T) {
	key := RandomBytes(KeyLength)
	nonce := RandomBytes(NonceLength)
	plaintext := []byte("secret data")
	aad := []byte("aad")

	ciphertext, tag, err := Seal(key, nonce, plaintext, aad)
	require.NoError(t, err)

	flip := func(b []byte, i int) []byte {
		c := bytes.Clone(b)
		c[i] ^= 0x01
		return c
	}

	tests := []struct {
		name       string
		key        []byte
		nonce      []byte
		ciphertext []byte
		aad        []byte
		tag        []byte
	}{
		{"wrong key", RandomBytes(KeyLength), nonce, ciphertext, aad, tag},
		{"wrong nonce", key, RandomBytes(NonceLength), ciphertext, aad, tag},
		{"flipped ciphertext", key, nonce, flip(ciphertext, 0), aad, tag},
		{"flipped tag", key, nonce, ciphertext, aad, flip(tag, TagLength-1)},
		{"wrong aad", key, nonce, ciphertext, []byte("other"), tag},
		{"missing aad", key, nonce, ciphertext, nil, tag},
		{"truncated ciphertext", key, nonce, ciphertext[:len(ciphertext)-1], aad, tag},
		{"truncated tag", key, nonce, ciphertext, aad, tag[:8]},
		{"empty tag", key, nonce, ciphertext, aad, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.key, tt.nonce, tt.ciphertext, tt.aad, tt.tag)
			assert.Equal(t, ErrAuthenticationFailed, err)
			assert.Nil(t, got)
		})
	}
}

func TestInvalidKeyLength(t *testing.T) {
	for _, n := range []int{0, 16, 24, 48} {
		key := make([]byte, n)
		nonce := make([]byte, NonceLength)

		_, _, err := Seal(key, nonce, []byte("x"), nil)
		assert.Equal(t, ErrInvalidKeyLength, err, "Seal key length %d", n)

		_, err = Open(key, nonce, []byte("x"), nil, make([]byte, TagLength))
		assert.Equal(t, ErrInvalidKeyLength, err, "Open key length %d", n)
	}
}

func TestInvalidNonceLength(t *testing.T) {
	key := RandomBytes(KeyLength)
	for _, n := range []int{0, 8, 16} {
		nonce := make([]byte, n)

		_, _, err := Seal(key, nonce, []byte("x"), nil)
		assert.Equal(t, ErrInvalidNonceLength, err, "Seal nonce length %d", n)

		_, err = Open(key, nonce, []byte("x"), nil, make([]byte, TagLength))
		assert.Equal(t, ErrInvalidNonceLength, err, "Open nonce length %d", n)
	}
}

func TestRandomBytes(t *testing.T) {
	a := RandomBytes(32)
	b := RandomBytes(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Empty(t, RandomBytes(0))
}

func TestSecureWipe(t *testing.T) {
	data := []byte("sensitive key material")
	SecureWipe(data)
	assert.Equal(t, make([]byte, len(data)), data)

	// nil and empty slices are fine
	SecureWipe(nil)
	SecureWipe([]byte{})
}
