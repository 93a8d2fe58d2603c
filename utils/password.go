package utils

import (
	"errors"

	"github.com/matthewhartstonge/argon2"
)

var ErrEmptyPassword = errors.New("password must not be empty")

var passwordHasher = argon2.DefaultConfig()

// HashPassword returns the PHC-encoded argon2id hash stored on the customer.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	encoded, err := passwordHasher.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches the stored hash. An
// account without a stored hash never verifies.
func VerifyPassword(encodedHash, password string) (bool, error) {
	if encodedHash == "" || password == "" {
		return false, nil
	}
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
