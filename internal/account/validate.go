package account

import (
	"regexp"
	"strings"

	"carmate/pkg/serrors"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	letterRe = regexp.MustCompile(`[A-Za-z]`)
	digitRe  = regexp.MustCompile(`\d`)
	nonDigit = regexp.MustCompile(`[^\d]`)
)

const minPasswordLen = 8

// NormalizeEmail returns the canonical form an email is stored and compared
// in: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the address shape the registration form enforces.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return serrors.With(serrors.ErrBadRequest, "invalid email address")
	}

	return nil
}

// ValidatePhone requires 7 to 15 digits once formatting characters are
// stripped.
func ValidatePhone(phone string) error {
	digits := nonDigit.ReplaceAllString(phone, "")
	if len(digits) < 7 || len(digits) > 15 {
		return serrors.With(serrors.ErrBadRequest, "invalid phone number")
	}

	return nil
}

// ValidatePassword enforces the password policy: at least 8 characters with
// at least one letter and one number.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return serrors.With(serrors.ErrBadRequest, "password must be at least 8 characters")
	}
	if !letterRe.MatchString(password) {
		return serrors.With(serrors.ErrBadRequest, "password must include at least one letter")
	}
	if !digitRe.MatchString(password) {
		return serrors.With(serrors.ErrBadRequest, "password must include at least one number")
	}

	return nil
}

// ValidateFullName requires a trimmed length of at least two characters.
func ValidateFullName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return serrors.With(serrors.ErrBadRequest, "full name is required")
	}

	return nil
}
