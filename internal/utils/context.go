// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the shell session identifier in
// the context handed to a channel factory, so that the transport can tag its
// logs with the session that asked for the connection.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithSessionID(ctx, sessionID)
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, id)
}

// GetSessionIDFromContext retrieves the session identifier from the context.
//
// Returns the id and an ok flag:
//   - ok == true:  value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(string)
	return id, ok && id != ""
}
