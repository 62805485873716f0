package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives a keyLen-byte key from a password using
// PBKDF2-HMAC-SHA256.
//
// The iteration count is stored next to the ciphertext by callers, so
// containers written with an older default stay readable after the default
// is raised. Identical inputs always yield the identical key.
//
// A wrong password is not an error here; it only shows up later as a tag
// mismatch in Open.
func DeriveKey(password, salt []byte, iterations uint32, keyLen int) ([]byte, error) {
	switch {
	case password == nil:
		return nil, fmt.Errorf("%w: nil password", ErrInvalidKDFParams)
	case len(salt) == 0:
		return nil, fmt.Errorf("%w: empty salt", ErrInvalidKDFParams)
	case iterations == 0:
		return nil, fmt.Errorf("%w: zero iterations", ErrInvalidKDFParams)
	case keyLen <= 0:
		return nil, fmt.Errorf("%w: output length %d", ErrInvalidKDFParams, keyLen)
	}
	return pbkdf2.Key(password, salt, int(iterations), keyLen, sha256.New), nil
}
