// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects to the NAS over SSH.
//
// [SSHConnector] turns [models.Credentials] into a [terminal.Channel] backed
// by an interactive PTY shell. Host keys are checked against a known_hosts
// file when one is configured: unknown hosts are recorded on first use and a
// changed key is rejected with [ErrHostKeyMismatch].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-nas-keeper/internal/terminal"
	"github.com/MKhiriev/go-nas-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SSHConnector opens remote shells on the NAS.
type SSHConnector interface {
	// Connect dials target, authenticates and starts an interactive shell on
	// a PTY. The returned channel owns the connection.
	Connect(ctx context.Context, target models.Credentials) (terminal.Channel, error)

	// CheckCredentials dials and authenticates, then disconnects. It lets the
	// UI validate a login before opening a shell.
	CheckCredentials(ctx context.Context, target models.Credentials) error
}
