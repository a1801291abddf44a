package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-nas-keeper/internal/adapter"
	"github.com/MKhiriev/go-nas-keeper/internal/app"
	"github.com/MKhiriev/go-nas-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CredentialsModel asks for the NAS account and tests it before the console
// opens. The account is kept in memory only; it never goes to the vault file.
type CredentialsModel struct {
	ctx       context.Context
	connector adapter.SSHConnector
	cfg       models.ServerConfig

	inputs []textinput.Model
	focus  int
	busy   bool
	status string
	errMsg string
}

// NewCredentialsModel creates the form. A nil connector skips the
// credentials check.
func NewCredentialsModel(ctx context.Context, connector adapter.SSHConnector) *CredentialsModel {
	userInput := textinput.New()
	userInput.Placeholder = "admin"
	userInput.CharLimit = 64
	userInput.Width = 40
	userInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &CredentialsModel{
		ctx:       ctx,
		connector: connector,
		inputs:    []textinput.Model{userInput, passwordInput},
	}
}

func (m *CredentialsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CredentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case serverSelectedMsg:
		m.cfg = msg.cfg
		m.status, m.errMsg = "", ""
		return m, textinput.Blink
	case credentialsCheckedMsg:
		m.busy, m.status = false, ""
		if msg.err != nil {
			m.errMsg = humanizeConnectError(msg.err)
			return m, nil
		}
		return m, m.open(msg.creds)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageVault} }
		case key.Matches(keyMsg, keys.tab, keys.down):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab, keys.up):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			creds := models.NewCredentials(m.cfg, strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value())
			if !creds.SSHReady() {
				m.errMsg = app.MsgCredentialsRequired
				return m, nil
			}
			m.errMsg = ""
			if m.connector == nil {
				return m, m.open(creds)
			}
			m.busy, m.status = true, app.MsgCheckingCredentials
			return m, m.cmdCheck(creds)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CredentialsModel) View() string {
	var b strings.Builder
	b.WriteString("Server    │ ")
	b.WriteString(valueOrNA(m.cfg.ServerPath))
	b.WriteString(":")
	b.WriteString(valueOrNA(m.cfg.SSHPort))
	b.WriteString("\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("User      │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage("CONNECT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: open shell")
}

// open clears the typed password and hands creds to the console.
func (m *CredentialsModel) open(creds models.Credentials) tea.Cmd {
	m.inputs[1].Reset()
	return func() tea.Msg { return openConsoleMsg{creds: creds} }
}

func (m *CredentialsModel) cmdCheck(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	connector := m.connector

	return func() tea.Msg {
		return credentialsCheckedMsg{creds: creds, err: connector.CheckCredentials(ctx, creds)}
	}
}

func (m *CredentialsModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *CredentialsModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
