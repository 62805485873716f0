package crypto_test

import (
	"testing"

	"github.com/forest6511/aesvault/pkg/crypto"
)

// BenchmarkDeriveKey measures PBKDF2-HMAC-SHA256 at the default vault
// iteration count.
func BenchmarkDeriveKey(b *testing.B) {
	password := []byte("testpassword123!")
	salt := crypto.RandomBytes(crypto.SaltLength)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crypto.DeriveKey(password, salt, 200000, crypto.KeyLength); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSeal measures AES-256-GCM encryption with a 1KB payload.
func BenchmarkSeal(b *testing.B) {
	key := crypto.RandomBytes(crypto.KeyLength)
	nonce := crypto.RandomBytes(crypto.NonceLength)
	data := crypto.RandomBytes(1024)

	b.ReportAllocs()
	b.SetBytes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := crypto.Seal(key, nonce, data, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOpen measures AES-256-GCM decryption with a 1KB payload.
func BenchmarkOpen(b *testing.B) {
	key := crypto.RandomBytes(crypto.KeyLength)
	nonce := crypto.RandomBytes(crypto.NonceLength)
	data := crypto.RandomBytes(1024)
	ciphertext, tag, err := crypto.Seal(key, nonce, data, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crypto.Open(key, nonce, ciphertext, nil, tag); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSecureWipe measures wiping a 1KB buffer.
func BenchmarkSecureWipe(b *testing.B) {
	data := make([]byte, 1024)

	b.SetBytes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		crypto.SecureWipe(data)
	}
}
