package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordCost matches gen_salt('bf', 10) used for the seeded admin in the init migration.
const passwordCost = 10

// HashPassword hashes a plaintext password using bcrypt.
// Passwords longer than 72 bytes fail with bcrypt.ErrPasswordTooLong.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
// Users without a stored hash can never log in.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
