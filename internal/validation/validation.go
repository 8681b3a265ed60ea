// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	hasUpper := false
	hasLower := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !digitPattern.MatchString(password) {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

// ValidateNickname checks if a display nickname meets requirements
func ValidateNickname(nickname string) error {
	n := utf8.RuneCountInString(nickname)
	if n < 2 {
		return fmt.Errorf("nickname must be at least 2 characters long")
	}
	if n > 30 {
		return fmt.Errorf("nickname must not exceed 30 characters")
	}
	for _, r := range nickname {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("nickname cannot contain whitespace")
		}
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}
