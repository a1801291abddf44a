// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-nas-keeper/internal/app"
	"github.com/MKhiriev/go-nas-keeper/internal/service"
	"github.com/MKhiriev/go-nas-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input order of the vault form.
const (
	vaultFieldPassword = iota
	vaultFieldServer
	vaultFieldSSH
	vaultFieldSFTP
	vaultFieldHTTP
	vaultFieldHTTPS
	vaultFieldCount
)

var vaultLabels = [vaultFieldCount]string{
	"Vault password",
	"Server",
	"SSH port",
	"SFTP port",
	"HTTP port",
	"HTTPS port",
}

// VaultModel is the start page. It unlocks the encrypted vault file and
// edits the stored server record. enter moves on to the credentials page
// with the record currently in the form.
type VaultModel struct {
	ctx       context.Context
	netConfig service.NetConfigService

	inputs  []textinput.Model
	focus   int
	busy    bool
	status  string
	errMsg  string
	overlay *errorOverlayModel
}

// NewVaultModel creates the form with default ports filled in.
func NewVaultModel(ctx context.Context, netConfig service.NetConfigService) *VaultModel {
	inputs := make([]textinput.Model, vaultFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
	}
	inputs[vaultFieldPassword].EchoMode = textinput.EchoPassword
	inputs[vaultFieldPassword].EchoCharacter = '*'
	inputs[vaultFieldPassword].Placeholder = "password"
	inputs[vaultFieldServer].Placeholder = "192.168.1.10"
	inputs[vaultFieldPassword].Focus()

	m := &VaultModel{
		ctx:       ctx,
		netConfig: netConfig,
		inputs:    inputs,
	}
	m.setServerConfig(models.NewServerConfig(""))
	return m
}

func (m *VaultModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *VaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configLoadedMsg:
		m.busy = false
		m.applyLoaded(msg)
		return m, nil
	case configSavedMsg:
		m.busy = false
		m.applySaved(msg)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab, keys.down):
		m.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab, keys.up):
		m.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.load):
		password := m.inputs[vaultFieldPassword].Value()
		if m.busy {
			return m, nil
		}
		if password == "" {
			m.status, m.errMsg = "", "Vault password is required"
			return m, nil
		}
		m.busy, m.status, m.errMsg = true, "", ""
		return m, m.cmdLoad(password)
	case key.Matches(keyMsg, keys.save):
		if m.busy {
			return m, nil
		}
		m.busy, m.status, m.errMsg = true, "", ""
		return m, m.cmdSave(m.inputs[vaultFieldPassword].Value(), m.serverConfig())
	case key.Matches(keyMsg, keys.enter):
		cfg := m.serverConfig()
		if cfg.ServerPath == "" {
			m.status, m.errMsg = "", "Enter the NAS address"
			return m, nil
		}
		m.status, m.errMsg = "", ""
		return m, func() tea.Msg {
			return NavigateTo{Page: pageCredentials, Payload: serverSelectedMsg{cfg: cfg.WithDefaults()}}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *VaultModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var b strings.Builder
	for i, in := range m.inputs {
		marker := " "
		if i == m.focus {
			marker = ">"
		}
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(padRight(vaultLabels[i], 15))
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
		if i == vaultFieldPassword {
			b.WriteString("\n")
		}
	}

	if m.busy {
		b.WriteString("\n[Working...]")
	}
	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage("NAS KEEPER: VAULT", strings.TrimRight(b.String(), "\n"),
		"ctrl+o: load │ ctrl+s: save │ tab: next field │ enter: continue │ f1: about")
}

func (m *VaultModel) applyLoaded(msg configLoadedMsg) {
	m.status, m.errMsg = "", ""
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return
	}

	switch msg.status {
	case models.LoadOK:
		m.setServerConfig(msg.cfg)
		m.status = app.MsgConfigLoaded
	case models.LoadMissing:
		m.errMsg = app.MsgConfigNotFound
	case models.LoadMalformed:
		m.errMsg = app.MsgConfigMalformed
	default:
		m.errMsg = app.MsgConfigUnreadable
	}
}

func (m *VaultModel) applySaved(msg configSavedMsg) {
	m.status, m.errMsg = "", ""
	switch {
	case msg.err == nil:
		m.status = app.MsgConfigSaved
	case errors.Is(msg.err, service.ErrIncompleteServerConfig):
		m.errMsg = app.MsgConfigIncomplete
	case errors.Is(msg.err, service.ErrEmptyPassword):
		m.errMsg = "Vault password is required"
	default:
		m.overlay = &errorOverlayModel{message: msg.err.Error()}
	}
}

func (m *VaultModel) serverConfig() models.ServerConfig {
	value := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return models.ServerConfig{
		ServerPath: value(vaultFieldServer),
		SSHPort:    value(vaultFieldSSH),
		SFTPPort:   value(vaultFieldSFTP),
		HTTPPort:   value(vaultFieldHTTP),
		HTTPSPort:  value(vaultFieldHTTPS),
	}
}

func (m *VaultModel) setServerConfig(cfg models.ServerConfig) {
	m.inputs[vaultFieldServer].SetValue(cfg.ServerPath)
	m.inputs[vaultFieldSSH].SetValue(cfg.SSHPort)
	m.inputs[vaultFieldSFTP].SetValue(cfg.SFTPPort)
	m.inputs[vaultFieldHTTP].SetValue(cfg.HTTPPort)
	m.inputs[vaultFieldHTTPS].SetValue(cfg.HTTPSPort)
}

func (m *VaultModel) cmdLoad(password string) tea.Cmd {
	ctx := m.ctx
	svc := m.netConfig

	return func() tea.Msg {
		cfg, status, err := svc.LoadServerConfig(ctx, password)
		return configLoadedMsg{cfg: cfg, status: status, err: err}
	}
}

func (m *VaultModel) cmdSave(password string, cfg models.ServerConfig) tea.Cmd {
	ctx := m.ctx
	svc := m.netConfig

	return func() tea.Msg {
		return configSavedMsg{err: svc.SaveServerConfig(ctx, password, cfg)}
	}
}

func (m *VaultModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *VaultModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
