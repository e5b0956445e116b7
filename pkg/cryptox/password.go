package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for all stored credentials.
// Raising it slows offline brute force; existing digests keep the cost they
// were created with, so a bump only affects new hashes.
const PasswordHashCost = 10

// ErrPasswordMismatch is returned by VerifyPassword when the plaintext does
// not match the stored digest. Malformed digests report the same error so
// callers cannot distinguish the two cases.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a salted bcrypt digest from the plaintext. The salt is
// generated internally and encoded into the digest. Safe for concurrent use.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword compares a plaintext password against a bcrypt digest in
// constant time relative to the digest length. Any failure, including a
// truncated or corrupted digest, collapses into ErrPasswordMismatch.
func VerifyPassword(password, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
