package service

import "errors"

var (
	// ErrIncompleteServerConfig is returned when a server record to be saved
	// has a blank field.
	ErrIncompleteServerConfig = errors.New("all fields must be completed")

	// ErrEmptyPassword is returned when a vault operation is attempted
	// without a password.
	ErrEmptyPassword = errors.New("vault password is empty")
)
