// Package validation holds the pure field checks for incoming user
// records. The usecase layer runs these before touching the repository.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	MsgNameRequired = "Name is required"
	MsgInvalidEmail = "Invalid email format"
	MsgWeakPassword = "Password must be at least 8 characters with uppercase, lowercase, number and special character"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// emailRe requires a local part, a single @, a domain with at least one
// dot and a TLD of two or more letters. Consecutive dots are rejected
// separately since RE2 has no lookahead.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}$`)

func ValidateName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func ValidateEmail(email string) bool {
	if strings.Contains(email, "..") {
		return false
	}
	return emailRe.MatchString(email)
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// ValidateUser checks a candidate user record and returns a map from
// field name to error message. An empty map means the record is valid.
func ValidateUser(name, email, password string) map[string]string {
	errs := make(map[string]string)

	if !ValidateName(name) {
		errs["name"] = MsgNameRequired
	}
	if !ValidateEmail(email) {
		errs["email"] = MsgInvalidEmail
	}
	if !ValidatePassword(password) {
		errs["password"] = MsgWeakPassword
	}

	return errs
}
