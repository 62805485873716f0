// Package security rates master passwords. The rating is advisory: it is
// shown after a password is set and never blocks the operation.
package security

import (
	"unicode/utf8"

	"github.com/forest6511/aesvault/pkg/crypto"

	"golang.org/x/text/unicode/norm"
)

// PasswordStrength represents the strength level of a master password.
type PasswordStrength int

const (
	// PasswordWeak indicates an insecure password (fewer than 8 characters).
	PasswordWeak PasswordStrength = iota
	// PasswordFair indicates a minimally acceptable password.
	PasswordFair
	// PasswordGood indicates a good password.
	PasswordGood
	// PasswordStrong indicates a strong password.
	PasswordStrong
)

// MinRecommendedLength is the shortest master password not rated Weak.
const MinRecommendedLength = 8

// String returns a human-readable representation of the password strength.
func (s PasswordStrength) String() string {
	switch s {
	case PasswordWeak:
		return "Weak"
	case PasswordFair:
		return "Fair"
	case PasswordGood:
		return "Good"
	case PasswordStrong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// Rate evaluates a human-chosen password by length alone, counted in
// characters of its NFC form so a combining accent does not add length.
// NIST SP 800-63B discourages composition rules, so character classes are
// not considered.
func Rate(password []byte) PasswordStrength {
	length := characters(password)

	switch {
	case length >= 20:
		return PasswordStrong
	case length >= 14:
		return PasswordGood
	case length >= MinRecommendedLength:
		return PasswordFair
	default:
		return PasswordWeak
	}
}

// characters counts the runes of password after NFC composition. The
// normalized copy is wiped before returning.
func characters(password []byte) int {
	nfc := norm.NFC.Append(nil, password...)
	defer crypto.SecureWipe(nfc)
	return utf8.RuneCount(nfc)
}

// Warnings returns advice for a password of strength s. Fair passwords get
// a nudge; Good and Strong get nothing.
func Warnings(s PasswordStrength) []string {
	switch s {
	case PasswordWeak:
		return []string{
			"master password is shorter than 8 characters and easy to guess",
			"a passphrase of several random words is easier to remember and harder to crack",
		}
	case PasswordFair:
		return []string{"consider a master password of 14 or more characters"}
	default:
		return nil
	}
}
