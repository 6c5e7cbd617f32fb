package validation

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Password schemes
const (
	SchemeBcrypt = "bcrypt"
	SchemeLegacy = "legacy"
)

// Hasher turns a plaintext password into its stored form
type Hasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// NewHasher returns the hasher for scheme, defaulting to bcrypt
func NewHasher(scheme string) Hasher {
	if scheme == SchemeLegacy {
		return LegacyHasher{}
	}
	return BcryptHasher{Cost: bcrypt.DefaultCost}
}

// BcryptHasher stores salted bcrypt hashes
type BcryptHasher struct {
	Cost int
}

// Hash returns the bcrypt hash of password
func (b BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored bcrypt hash
func (BcryptHasher) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// IsBcryptHash reports whether stored looks like a bcrypt hash
func IsBcryptHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// LegacyHasher reproduces the deterministic, unsalted transform used by
// older deployments. It is reversible and must only be used to read or
// migrate legacy data.
type LegacyHasher struct{}

// Hash returns Obfuscate(password)
func (LegacyHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	return Obfuscate(password), nil
}

// Verify reports whether stored is the legacy transform of password
func (LegacyHasher) Verify(stored, password string) bool {
	return stored == Obfuscate(password)
}

// Obfuscate reverses password and flips the case of every letter. It is
// its own inverse. Strings whose mirrored letters differ only in case, such
// as "Ab1!!1Ba", map to themselves.
func Obfuscate(password string) string {
	runes := []rune(password)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	var b strings.Builder
	b.Grow(len(password))
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLower(r):
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Deobfuscate inverts Obfuscate
func Deobfuscate(stored string) string {
	return Obfuscate(stored)
}
