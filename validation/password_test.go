package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestObfuscate(t *testing.T) {
	assert.Equal(t, "SS@P3ruceS", Obfuscate("sECUR3p@ss"))
	assert.Equal(t, Obfuscate("Secur3P@ss"), Obfuscate("Secur3P@ss"))
	assert.NotEqual(t, "Secur3P@ss", Obfuscate("Secur3P@ss"))
	assert.Equal(t, "Secur3P@ss", Deobfuscate(Obfuscate("Secur3P@ss")))
}

func TestObfuscateFixedPoint(t *testing.T) {
	// mirrored letters differing only in case survive the transform unchanged
	p := "Ab1!!1Ba"
	require.True(t, IsPasswordSecure(p))
	assert.Equal(t, p, Obfuscate(p))
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	first, err := h.Hash("Secur3P@ss")
	require.NoError(t, err)
	second, err := h.Hash("Secur3P@ss")
	require.NoError(t, err)

	assert.NotEqual(t, "Secur3P@ss", first)
	assert.NotEqual(t, first, second, "hashes are salted")
	assert.True(t, h.Verify(first, "Secur3P@ss"))
	assert.False(t, h.Verify(first, "Secur3P@sS"))
	assert.True(t, IsBcryptHash(first))
	assert.False(t, IsBcryptHash(Obfuscate("Secur3P@ss")))
}

func TestLegacyHasher(t *testing.T) {
	h := LegacyHasher{}

	stored, err := h.Hash("Secur3P@ss")
	require.NoError(t, err)
	assert.Equal(t, Obfuscate("Secur3P@ss"), stored)
	assert.True(t, h.Verify(stored, "Secur3P@ss"))

	_, err = h.Hash("")
	assert.Error(t, err)
}

func TestNewHasher(t *testing.T) {
	assert.IsType(t, LegacyHasher{}, NewHasher(SchemeLegacy))
	assert.IsType(t, BcryptHasher{}, NewHasher(SchemeBcrypt))
	assert.IsType(t, BcryptHasher{}, NewHasher(""))
}
