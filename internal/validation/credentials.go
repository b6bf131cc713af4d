// Package validation holds the pure credential and profile validators. Each
// function either returns the normalized value or a rejection; never both.
// The rejection messages are part of the API contract.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/communitystore/backend/domain"
)

// emailPattern is the usual loose local@domain.tld shape: no whitespace, no
// second @, at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Username trims the input and requires 3-30 characters.
func Username(username string) (string, error) {
	if username == "" {
		return "", domain.NewError(domain.ErrCodeInvalid, "Username is required")
	}
	trimmed := strings.TrimSpace(username)
	if n := utf8.RuneCountInString(trimmed); n < 3 || n > 30 {
		return "", domain.NewError(domain.ErrCodeInvalid, "Username must be 3-30 characters")
	}
	return trimmed, nil
}

// Email trims, lowercases and shape-checks the address, returning the
// normalized form.
func Email(email string) (string, error) {
	if email == "" {
		return "", domain.NewError(domain.ErrCodeInvalid, "Email is required")
	}
	normalized := domain.NormalizeEmail(email)
	if !emailPattern.MatchString(normalized) {
		return "", domain.NewError(domain.ErrCodeInvalid, "Invalid email format")
	}
	return normalized, nil
}

// Password requires 6-100 characters and returns the raw value unchanged; no
// hashing happens at this layer.
func Password(password string) (string, error) {
	if password == "" {
		return "", domain.NewError(domain.ErrCodeInvalid, "Password is required")
	}
	n := utf8.RuneCountInString(password)
	if n < 6 {
		return "", domain.NewError(domain.ErrCodeInvalid, "Password must be at least 6 characters long")
	}
	if n > 100 {
		return "", domain.NewError(domain.ErrCodeInvalid, "Password must be no more than 100 characters")
	}
	return password, nil
}

// Profile trims both optional fields and bounds their lengths, returning the
// trimmed values.
func Profile(fullName, bio string) (string, string, error) {
	trimmedName := strings.TrimSpace(fullName)
	trimmedBio := strings.TrimSpace(bio)

	if utf8.RuneCountInString(trimmedName) > 80 {
		return "", "", domain.NewError(domain.ErrCodeInvalid, "Full name must be 80 characters or less")
	}
	if utf8.RuneCountInString(trimmedBio) > 160 {
		return "", "", domain.NewError(domain.ErrCodeInvalid, "Bio must be 160 characters or less")
	}
	return trimmedName, trimmedBio, nil
}

// HashPassword is a deliberate pass-through. The reference system stores
// passwords verbatim; swapping in a real KDF changes stored data and login
// behavior, so it stays a placeholder here.
func HashPassword(password string) string {
	return password
}
