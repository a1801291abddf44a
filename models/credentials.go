// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net"
	"strconv"
)

// Credentials is the connection target assembled by the login form. Unlike
// ServerConfig it carries the account secrets and is never written to disk.
type Credentials struct {
	ServerPath string
	Username   string
	Password   string

	SSHPort   string
	SFTPPort  string
	HTTPPort  string
	HTTPSPort string
}

// NewCredentials builds Credentials from a stored server config and the
// account entered by the user.
func NewCredentials(cfg ServerConfig, username, password string) Credentials {
	cfg = cfg.WithDefaults()
	return Credentials{
		ServerPath: cfg.ServerPath,
		Username:   username,
		Password:   password,
		SSHPort:    cfg.SSHPort,
		SFTPPort:   cfg.SFTPPort,
		HTTPPort:   cfg.HTTPPort,
		HTTPSPort:  cfg.HTTPSPort,
	}
}

// SSHReady reports whether all fields needed by the remote shell are set.
func (c Credentials) SSHReady() bool {
	return allSet(c.Username, c.Password, c.ServerPath, c.SSHPort)
}

// Clear wipes the account and target. Ports are reset to "0" so that a
// cleared record is never mistaken for a default one.
func (c *Credentials) Clear() {
	*c = Credentials{
		SSHPort:   "0",
		SFTPPort:  "0",
		HTTPPort:  "0",
		HTTPSPort: "0",
	}
}

// SSHAddress returns host:port for the shell service. A non-numeric port
// falls back to 22.
func (c Credentials) SSHAddress() string {
	port, err := strconv.Atoi(c.SSHPort)
	if err != nil || port <= 0 {
		port = 22
	}
	return net.JoinHostPort(c.ServerPath, strconv.Itoa(port))
}

func allSet(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}
