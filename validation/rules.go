// Package validation holds the pure field rules applied to docket requests
// before any store lookup happens.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/linesmerrill/court-docket-api/models"
)

// SpecialCharacters is the set a secure password must draw at least one character from
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// MinPasswordLength is the shortest password accepted
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsPasswordSecure reports whether password is long enough (counted in
// characters, not bytes) and contains an
// uppercase letter, a lowercase letter, a digit and a special character.
func IsPasswordSecure(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// IsValidEmail reports whether email has a local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// CheckPassword returns a WeakPassword error when password is not secure
func CheckPassword(password string) error {
	if !IsPasswordSecure(password) {
		return models.WeakPassword()
	}
	return nil
}

// CheckEmail returns an InvalidFormat error when email is malformed
func CheckEmail(email string) error {
	if !IsValidEmail(email) {
		return models.InvalidFormat("email", "expected an address like name@example.com")
	}
	return nil
}

// CheckRole returns an InvalidFormat error when role is not recognized
func CheckRole(role models.Role) error {
	if !role.Valid() {
		return models.InvalidFormat("role", "must be one of Judge, Lawyer, CourtStaff, Litigant")
	}
	return nil
}

// Field is a named request value checked for presence
type Field struct {
	Name    string
	Present bool
}

// Text is a Field that is present when value has non-space content
func Text(name, value string) Field {
	return Field{Name: name, Present: strings.TrimFunc(value, unicode.IsSpace) != ""}
}

// Given is a Field that is present when ok is true
func Given(name string, ok bool) Field {
	return Field{Name: name, Present: ok}
}

// Require returns a MissingField error naming every absent field, in order
func Require(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if !f.Present {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return models.MissingField(missing...)
	}
	return nil
}
