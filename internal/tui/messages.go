package tui

import (
	"github.com/MKhiriev/go-nas-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names known to [RootModel].
const (
	pageVault       = "vault"
	pageCredentials = "credentials"
	pageConsole     = "console"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// openConsoleMsg asks the root to start a shell session for creds.
type openConsoleMsg struct {
	creds models.Credentials
}

type configLoadedMsg struct {
	cfg    models.ServerConfig
	status models.LoadStatus
	err    error
}

type configSavedMsg struct {
	err error
}

type serverSelectedMsg struct {
	cfg models.ServerConfig
}

// credentialsCheckedMsg carries the result of a test login.
type credentialsCheckedMsg struct {
	creds models.Credentials
	err   error
}

type historyClearedMsg struct {
	err error
}

type connectedMsg struct {
	err error
}

// outputMsg reports that the scrollback has new text.
type outputMsg struct {
	closed bool
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
