package services

import (
	"errors"
	"strings"
)

var ErrWeakPassword = errors.New("weak password")

const minPasswordLength = 6

// ValidatePassword keeps the bar deliberately low: this is an internal team
// tool, and the admin can always reset a forgotten password.
func ValidatePassword(password string) error {
	if len([]rune(strings.TrimSpace(password))) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
