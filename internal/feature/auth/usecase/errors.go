// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordTooShort is returned by Signup when the password is shorter than minPasswordLength.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrPasswordTooLong is returned by Signup when the password exceeds maxPasswordLength bytes.
	ErrPasswordTooLong = errors.New("password is too long")
)
