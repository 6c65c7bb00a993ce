// Package password wraps bcrypt hashing with a fixed cost factor.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

// Hash returns a salted bcrypt hash of the plaintext password.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether plain matches the stored bcrypt hash.
func Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
