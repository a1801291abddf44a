// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-nas-keeper terminal session and console UI.
//
// All Msg* constants are human-readable strings written into the shell
// scrollback or the status line to describe the outcome of an operation.
// Keeping them in one place keeps the wording consistent between the
// session core and the UI.
package app

const (
	// MsgAttemptingConnect is written before dialing. It is a format string
	// taking the target host.
	MsgAttemptingConnect = "Attempting to connect to %s...\n"

	// MsgConnected is written once the shell channel is open.
	MsgConnected = "Connected successfully.\n"

	// MsgConnectionFailed is written when the dial or handshake fails. It is
	// a format string taking the error.
	MsgConnectionFailed = "Connection Failed: %v\n"

	// MsgErrorDisconnected marks a failed command write. The UI can search
	// the scrollback for it to detect a broken link.
	MsgErrorDisconnected = "\n[Error: Disconnected]\n"

	// MsgDisconnected is written when the remote side closes the shell.
	MsgDisconnected = "\n--- Disconnected ---\n"

	// MsgConfigSaved is shown after the vault file was written.
	MsgConfigSaved = "Configuration saved."

	// MsgConfigLoaded is shown after the vault file was decrypted.
	MsgConfigLoaded = "Configuration loaded successfully."

	// MsgConfigNotFound is shown when there is no vault file yet.
	MsgConfigNotFound = "Configuration file not found."

	// MsgConfigMalformed is shown when the vault file is structurally broken.
	MsgConfigMalformed = "Configuration file is damaged."

	// MsgConfigUnreadable is shown when the vault file cannot be decrypted,
	// whether because of a wrong password or a damaged file.
	MsgConfigUnreadable = "Decryption failed: wrong password or damaged file."

	// MsgConfigIncomplete is shown when a save is attempted with empty fields.
	MsgConfigIncomplete = "All fields must be completed."

	// MsgCredentialsRequired is shown when the shell is opened without a
	// complete set of SSH credentials.
	MsgCredentialsRequired = "Please supply server, user name and password."

	// MsgCheckingCredentials is shown while the account is tested.
	MsgCheckingCredentials = "Checking credentials..."

	// MsgHistoryCleared is shown after the command history of the host was
	// removed.
	MsgHistoryCleared = "History cleared."

	// MsgCopied is shown after the scrollback was copied to the clipboard.
	MsgCopied = "Copied!"
)
