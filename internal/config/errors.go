package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates a missing vault file path.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidShellConfigs indicates non-positive reader, chunk or
	// scrollback settings.
	ErrInvalidShellConfigs = errors.New("invalid shell configuration")
	// ErrInvalidAdapterConfigs indicates invalid SSH adapter settings
	// (for example, a non-positive connect timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive history buffer).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
