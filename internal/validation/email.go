// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidateEmail checks that an email looks like local@domain.tld: word, dot
// or hyphen characters, a single @, and at least one dot in the domain.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}
