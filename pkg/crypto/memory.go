package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/awnumar/memguard"
)

// RandomBytes returns n bytes from the operating system's CSPRNG.
//
// It panics if the source fails: continuing with weak salts or nonces is
// worse than stopping the process.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto: random source unavailable: %v", err))
	}
	return b
}

// SecureWipe overwrites a byte slice with zeros in a way the compiler
// cannot elide. Best-effort only; see the package documentation.
func SecureWipe(b []byte) {
	memguard.WipeBytes(b)
}
