// Package auth implements salted one-way password hashing.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

const saltBytes = 16

// GenerateSalt returns a fresh cryptographically random salt, base64 encoded.
// Salts are never reused across users and never derived from user input.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// HashPassword computes the one-way digest over salt‖password, base64 encoded.
// Deterministic for the same inputs.
func HashPassword(password, salt string) string {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte(password))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Verify recomputes the hash for the candidate password and compares it to
// the stored hash in constant time.
func Verify(password, salt, storedHash string) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
