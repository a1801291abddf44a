// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoadStatus classifies the outcome of reading a vault file. Apart from
// LoadOK every value means the configuration cannot be recovered and the
// caller should prompt again.
type LoadStatus int

const (
	// LoadOK means the file was decrypted and decoded.
	LoadOK LoadStatus = iota

	// LoadMissing means there is no file at the configured path.
	LoadMissing

	// LoadMalformed means the file is structurally invalid: shorter than
	// the IV, a ciphertext that is not a whole number of blocks, or a
	// decrypted record that cannot be decoded.
	LoadMalformed

	// LoadWrongPasswordOrCorrupt means the padding check or UTF-8 decoding
	// failed after decryption. CBC carries no integrity tag, so a wrong
	// password and a tampered file are indistinguishable here.
	LoadWrongPasswordOrCorrupt
)

// String returns a short label for logs.
func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadMalformed:
		return "malformed"
	case LoadWrongPasswordOrCorrupt:
		return "wrong_password_or_corrupt"
	default:
		return "unknown"
	}
}
