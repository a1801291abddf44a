// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Default port values applied when a stored config omits a field.
const (
	DefaultSSHPort   = "22"
	DefaultSFTPPort  = "22"
	DefaultHTTPPort  = "80"
	DefaultHTTPSPort = "443"
)

// ServerConfig is the flat connection record kept inside the encrypted
// vault file. It is serialized to JSON with snake_case keys so that files
// written by earlier releases stay readable.
type ServerConfig struct {
	// ServerPath is the host name or IP address of the NAS.
	ServerPath string `json:"server_path"`

	// SSHPort is the port of the remote shell service.
	SSHPort string `json:"ssh_port"`

	// SFTPPort is the port used by the file browser.
	SFTPPort string `json:"sftp_port"`

	// HTTPPort and HTTPSPort point at the web dashboard.
	HTTPPort  string `json:"http_port"`
	HTTPSPort string `json:"https_port"`
}

// NewServerConfig returns a ServerConfig for host with every port set to
// its default value.
func NewServerConfig(host string) ServerConfig {
	return ServerConfig{
		ServerPath: host,
		SSHPort:    DefaultSSHPort,
		SFTPPort:   DefaultSFTPPort,
		HTTPPort:   DefaultHTTPPort,
		HTTPSPort:  DefaultHTTPSPort,
	}
}

// WithDefaults fills empty port fields with their defaults. ServerPath is
// left untouched.
func (c ServerConfig) WithDefaults() ServerConfig {
	if c.SSHPort == "" {
		c.SSHPort = DefaultSSHPort
	}
	if c.SFTPPort == "" {
		c.SFTPPort = DefaultSFTPPort
	}
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.HTTPSPort == "" {
		c.HTTPSPort = DefaultHTTPSPort
	}
	return c
}

// IsComplete reports whether every field carries a non-blank value.
func (c ServerConfig) IsComplete() bool {
	for _, v := range []string{c.ServerPath, c.SSHPort, c.SFTPPort, c.HTTPPort, c.HTTPSPort} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
