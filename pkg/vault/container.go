package vault

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/forest6511/aesvault/pkg/crypto"
)

// Magic identifies a version 1 container: "VAES1\n".
var Magic = [6]byte{'V', 'A', 'E', 'S', '1', '\n'}

const (
	// DefaultIterations is the PBKDF2 iteration count for new containers.
	DefaultIterations = 200000

	// MaxIterations caps the count accepted from disk so a forged header
	// cannot pin the CPU.
	MaxIterations = 10000000
)

// Container layout, all integers little-endian, no padding:
//
//	magic       6 bytes
//	iterations  uint32
//	salt        16 bytes
//	nonce       12 bytes
//	ct_len      uint32
//	ciphertext  ct_len bytes
//	tag         16 bytes
const (
	headerLength = len(Magic) + 4 + crypto.SaltLength + crypto.NonceLength + 4
	minLength    = headerLength + crypto.TagLength
)

// Container is the on-disk envelope around the encrypted payload.
type Container struct {
	Iterations uint32
	Salt       [crypto.SaltLength]byte
	Nonce      [crypto.NonceLength]byte
	Ciphertext []byte
	Tag        [crypto.TagLength]byte
}

// MarshalBinary encodes the container in the fixed layout above.
func (c *Container) MarshalBinary() ([]byte, error) {
	if uint64(len(c.Ciphertext)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes of ciphertext", ErrPayloadTooLarge, len(c.Ciphertext))
	}

	out := make([]byte, 0, minLength+len(c.Ciphertext))
	out = append(out, Magic[:]...)
	out = binary.LittleEndian.AppendUint32(out, c.Iterations)
	out = append(out, c.Salt[:]...)
	out = append(out, c.Nonce[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(c.Ciphertext)))
	out = append(out, c.Ciphertext...)
	out = append(out, c.Tag[:]...)
	return out, nil
}

// UnmarshalBinary decodes data into c. The magic, the iteration count, and
// the declared ciphertext length are checked against the actual input size
// before any offset is trusted; every failure wraps ErrMalformedContainer.
//
// c.Ciphertext is a copy and does not alias data.
func (c *Container) UnmarshalBinary(data []byte) error {
	if len(data) < minLength {
		return fmt.Errorf("%w: too small (%d bytes)", ErrMalformedContainer, len(data))
	}
	if [6]byte(data[:len(Magic)]) != Magic {
		return fmt.Errorf("%w: bad magic", ErrMalformedContainer)
	}

	off := len(Magic)
	iterations := binary.LittleEndian.Uint32(data[off:])
	off += 4
	if iterations == 0 || iterations > MaxIterations {
		return fmt.Errorf("%w: iteration count %d out of range", ErrMalformedContainer, iterations)
	}

	var salt [crypto.SaltLength]byte
	off += copy(salt[:], data[off:])
	var nonce [crypto.NonceLength]byte
	off += copy(nonce[:], data[off:])

	ctLen := binary.LittleEndian.Uint32(data[off:])
	off += 4
	if uint64(len(data)) != uint64(headerLength)+uint64(ctLen)+crypto.TagLength {
		return fmt.Errorf("%w: declared ciphertext length %d does not match file size %d",
			ErrMalformedContainer, ctLen, len(data))
	}

	ciphertext := make([]byte, ctLen)
	off += copy(ciphertext, data[off:])

	c.Iterations = iterations
	c.Salt = salt
	c.Nonce = nonce
	c.Ciphertext = ciphertext
	copy(c.Tag[:], data[off:])
	return nil
}
