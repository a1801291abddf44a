package terminal

import "errors"

var (
	// ErrAlreadyConnected is returned by Connect when the session is not
	// disconnected.
	ErrAlreadyConnected = errors.New("session is already connected or connecting")

	// ErrSessionClosed is returned by Connect after Shutdown. A closed
	// session is never reused; reconnecting needs a new Session.
	ErrSessionClosed = errors.New("session is shut down")

	// ErrWriteFailed wraps the channel error that ended a session on Submit.
	ErrWriteFailed = errors.New("write to channel failed")
)
