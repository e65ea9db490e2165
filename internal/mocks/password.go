package mocks

import (
	"errors"

	"github.com/taskfolio/taskfolio-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher and
// auth.PasswordVerifier without the cost of real bcrypt. The "hash" is the
// plaintext with a fixed prefix.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

// Ensure MockPasswordHasher implements both auth interfaces
var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

const mockHashPrefix = "hashed:"

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return mockHashPrefix + password, nil
}

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != mockHashPrefix+password {
		return errors.New("password mismatch")
	}
	return nil
}
