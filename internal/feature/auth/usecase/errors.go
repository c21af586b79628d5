package usecase

import "errors"

// Sentinel errors returned by the auth usecase. Handlers map these onto
// HTTP status codes; anything else is treated as an internal failure.
var (
	// ErrEmailAlreadyExists indicates that a user with the given email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound indicates that no user matched the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that email or password is incorrect.
	// Deliberately generic so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidResetToken indicates that a presented password-reset token
	// is unknown, already used, or expired. The cases are intentionally
	// indistinguishable.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrMissingFields indicates that a required registration field is empty.
	ErrMissingFields = errors.New("name, email and password are required")

	// ErrPasswordTooShort indicates that a password fails the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	// ErrPasswordTooLong indicates that a password exceeds bcrypt's 72-byte
	// input limit.
	ErrPasswordTooLong = errors.New("password cannot exceed 72 bytes")
)
