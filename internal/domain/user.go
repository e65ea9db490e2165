package domain

import (
	"errors"
	"strings"
	"time"
)

// User validation errors
var (
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPass = errors.New("hashed password cannot be empty")
	ErrUsernameTooLong = errors.New("username must be at most 255 characters long")
)

// User represents a registered account. The hashed password is never
// serialized; the plaintext password only exists transiently during
// registration and login and is never stored.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a User with the given username, email, and already-hashed
// password. The ID is zero until the store assigns one. Returns an error if
// validation fails.
func NewUser(username, email, hashedPassword string) (*User, error) {
	user := &User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if len(u.Username) > 255 {
		return ErrUsernameTooLong
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPass
	}

	return nil
}

// validEmailFormat performs a structural check of the email address: a
// local part, a single @, and a dotted domain. Full RFC 5322 validation is
// left to the request layer's validator.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
