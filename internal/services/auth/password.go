// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 32
	iterations = 210_000
)

// HashPassword derives a PBKDF2-SHA256 hash with a fresh random salt.
// Hash and salt are stored as separate columns on the user record.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	hash = pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return hash, salt, nil
}

// VerifyPassword checks a password against a stored hash/salt pair.
func VerifyPassword(password string, hash, salt []byte) bool {
	derived := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
