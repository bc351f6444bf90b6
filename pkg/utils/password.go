package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var bcryptCost = 12

// SetBcryptCost changes the hashing cost; tests lower it to bcrypt.MinCost.
func SetBcryptCost(cost int) {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		bcryptCost = cost
	}
}

// HashPassword generates a bcrypt hash of a guest senha. bcrypt only reads
// the first 72 bytes, so longer input is rejected instead of truncated.
func HashPassword(password string) (string, error) {
	if len(password) > 72 {
		return "", errors.New("password too long")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword compares a bcrypt hashed password with plain text password
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
