// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

// emailRegex accepts the usual something@domain.tld shape. Deliverability
// is not checked here; the mail provider is the real validator.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email inválido")
	}
	return nil
}

// ValidatePassword checks the minimum password length
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("la contraseña debe tener al menos 6 caracteres")
	}
	return nil
}

// ValidateUsername checks display-name length bounds
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("el nombre debe tener al menos 3 caracteres")
	}
	if len(username) > 50 {
		return fmt.Errorf("el nombre es demasiado largo")
	}
	return nil
}
