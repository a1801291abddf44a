package adapter

import "errors"

var (
	// ErrHostKeyMismatch is returned when the server presents a key that
	// differs from the one recorded in known_hosts.
	ErrHostKeyMismatch = errors.New("host key mismatch")

	// ErrAuthFailed is returned when the server rejects the username and
	// password.
	ErrAuthFailed = errors.New("ssh authentication failed")

	// ErrIncompleteCredentials is returned when the target lacks the fields
	// the shell needs.
	ErrIncompleteCredentials = errors.New("server, user name and password are required")
)
