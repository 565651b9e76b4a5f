package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the bcrypt hash of password using the given cost.
// Every call uses a fresh random salt, so equal passwords produce different
// hashes.
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret!", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password matches the bcrypt hash.
//
// Returns nil on match, ErrPasswordMismatch on mismatch and a wrapped error
// when the hash itself is malformed.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password: %w", err)
	}
}

// DummyHash returns the hash of a throwaway password at cost. Comparing a
// login attempt against it takes as long as checking a real hash of the
// same cost. An out of range cost falls back to bcrypt.DefaultCost.
func DummyHash(cost int) string {
	hash, err := bcrypt.GenerateFromPassword([]byte("volunteer-hub"), cost)
	if err != nil {
		hash, _ = bcrypt.GenerateFromPassword([]byte("volunteer-hub"), bcrypt.DefaultCost)
	}

	return string(hash)
}
