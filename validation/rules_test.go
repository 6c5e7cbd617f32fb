package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/court-docket-api/models"
)

func TestIsPasswordSecure(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes", "Secur3P@ss", true},
		{"exactly eight", "Ab1!cdef", true},
		{"too short", "Ab1!cde", false},
		{"seven multi-byte characters", "Ab1!ééé", false},
		{"eight multi-byte characters", "Ab1!éééé", true},
		{"no uppercase", "secur3p@ss", false},
		{"no lowercase", "SECUR3P@SS", false},
		{"no digit", "SecureP@ss", false},
		{"no special", "Secur3Pass", false},
		{"special outside set", "Secur3Pass_", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPasswordSecure(tt.password))
		})
	}
}

func TestIsPasswordSecureFailsWhenAnyClassRemoved(t *testing.T) {
	base := "Xy7!Xy7!Xy7!"
	require.True(t, IsPasswordSecure(base))

	classes := map[string]func(rune) bool{
		"upper":   func(r rune) bool { return r >= 'A' && r <= 'Z' },
		"lower":   func(r rune) bool { return r >= 'a' && r <= 'z' },
		"digit":   func(r rune) bool { return r >= '0' && r <= '9' },
		"special": func(r rune) bool { return strings.ContainsRune(SpecialCharacters, r) },
	}
	for name, in := range classes {
		stripped := strings.Map(func(r rune) rune {
			if in(r) {
				return 'q'
			}
			return r
		}, base)
		if name == "lower" {
			stripped = strings.ReplaceAll(stripped, "q", "Q")
		}
		assert.False(t, IsPasswordSecure(stripped), "removing %s should fail: %s", name, stripped)
	}
}

func TestIsPasswordSecureAcceptsEverySpecialCharacter(t *testing.T) {
	for _, r := range SpecialCharacters {
		assert.True(t, IsPasswordSecure("Abcdef1"+string(r)), "special %q", r)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"judge@court.gov", "a.b+c@d.co.uk", "x@y.z"}
	invalid := []string{"", "plain", "no-at.example.com", "a@b", "a b@c.d", "a@@b.c", "@b.c", "a@.c"}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestCheckHelpers(t *testing.T) {
	var domainErr *models.Error

	err := CheckPassword("weak")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, models.CategoryWeakPassword, domainErr.Category)
	assert.NoError(t, CheckPassword("Secur3P@ss"))

	err = CheckEmail("nope")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, models.CategoryInvalidFormat, domainErr.Category)
	assert.Contains(t, domainErr.Detail, "email")
	assert.NoError(t, CheckEmail("a@b.co"))

	err = CheckRole("Bailiff")
	require.True(t, errors.As(err, &domainErr))
	assert.Contains(t, domainErr.Detail, "role")
	for _, r := range models.Roles {
		assert.NoError(t, CheckRole(r))
	}
}

func TestRequireNamesEveryMissingField(t *testing.T) {
	err := Require(
		Text("username", "  "),
		Text("email", "a@b.co"),
		Text("password", ""),
		Given("role", false),
	)
	var domainErr *models.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, models.CategoryMissingField, domainErr.Category)
	assert.Equal(t, "missing required field(s): username, password, role", domainErr.Detail)

	assert.NoError(t, Require(Text("title", "x"), Given("lawyerIds", true)))
}
