package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCostFactor = 12
)

// HashPassword generates a bcrypt hash for the given password.
// Use this to produce REPORT_ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCostFactor)
	if err != nil {
		slog.Error("Failed to generate bcrypt hash for password", slog.Any("error", err))
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plaintext password with a stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			// Log unexpected errors during comparison
			slog.Warn("Error comparing password hash", slog.Any("error", err))
		}
		return false // Passwords don't match or error occurred
	}
	return true // Passwords match
}

// Credentials is the single admin account allowed to read reports.
type Credentials struct {
	User         string
	PasswordHash string
}

// Enabled reports whether a password hash is configured.
func (c Credentials) Enabled() bool {
	return c.PasswordHash != ""
}

// Check validates a basic-auth user/password pair.
func (c Credentials) Check(user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1
	// Always run bcrypt so a wrong user name costs the same as a wrong password.
	passOK := CheckPasswordHash(password, c.PasswordHash)
	return userOK && passOK
}
