package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt refuses inputs longer than this.
const maxBcryptPasswordBytes = 72

// bcryptInput returns what bcrypt sees for password. Passwords over the
// bcrypt limit are first reduced to their hex SHA-256 digest (64 bytes).
func bcryptInput(password string) []byte {
	if len(password) <= maxBcryptPasswordBytes {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches a hash stored with
// password hashing enabled.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password))
}
