// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-nas-keeper/internal/adapter"
)

func humanizeConnectError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrAuthFailed):
		return "Wrong user name or password"
	case errors.Is(err, adapter.ErrHostKeyMismatch):
		return "Host key changed. Check known_hosts before connecting"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "NAS is unreachable"
	}

	return err.Error()
}
