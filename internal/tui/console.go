// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-nas-keeper/internal/adapter"
	"github.com/MKhiriev/go-nas-keeper/internal/app"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/service"
	"github.com/MKhiriev/go-nas-keeper/internal/terminal"
	"github.com/MKhiriev/go-nas-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Rows taken by everything around the viewport: header, border, input and
// status lines.
const consoleChromeHeight = 5

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// ConsoleModel is the remote shell page. It shows the session scrollback in
// a viewport and sends the input line on enter.
type ConsoleModel struct {
	ctx     context.Context
	creds   models.Credentials
	session *terminal.Session
	sink    *terminal.Scrollback

	connector    adapter.SSHConnector
	history      service.HistoryService
	historyLimit int
	logger       *logger.Logger

	viewport viewport.Model
	input    textinput.Model
	status   string
	errMsg   string
	closed   bool
}

type consoleDeps struct {
	connector    adapter.SSHConnector
	history      service.HistoryService
	historyLimit int
	logger       *logger.Logger
}

func newConsoleModel(ctx context.Context, creds models.Credentials, session *terminal.Session, sink *terminal.Scrollback, deps consoleDeps) *ConsoleModel {
	input := textinput.New()
	input.Prompt = "$ "
	input.PromptStyle = promptStyle
	input.CharLimit = 4096
	input.Focus()

	if deps.logger == nil {
		deps.logger = logger.Nop()
	}
	deps.logger = deps.logger.WithSession(session.ID())

	return &ConsoleModel{
		ctx:          ctx,
		creds:        creds,
		session:      session,
		sink:         sink,
		connector:    deps.connector,
		history:      deps.history,
		historyLimit: deps.historyLimit,
		logger:       deps.logger,
		viewport:     viewport.New(80, 20),
		input:        input,
	}
}

func (m *ConsoleModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdConnect(), waitForOutput(m.sink))
}

func (m *ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-consoleChromeHeight)
		m.input.Width = max(1, msg.Width-4)
		m.refresh()
		return m, nil

	case outputMsg:
		if m.sink.Drain() != "" {
			m.refresh()
		}
		if msg.closed {
			return m, nil
		}
		return m, waitForOutput(m.sink)

	case connectedMsg:
		if msg.err != nil {
			m.errMsg = humanizeConnectError(msg.err)
		} else {
			m.errMsg = ""
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy to clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = app.MsgCopied
		return m, cmdClearStatus()

	case historyClearedMsg:
		if msg.err != nil {
			m.errMsg = "clear history: " + msg.err.Error()
			return m, nil
		}
		m.session.LoadHistory(nil)
		m.status = app.MsgHistoryCleared
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ConsoleModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc, keys.quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, keys.enter):
		m.session.Submit(m.input.Value())
		m.input.Reset()
		return m, nil

	case key.Matches(msg, keys.up):
		if cmd, ok := m.session.RecallPrevious(); ok {
			m.input.SetValue(cmd)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if cmd, ok := m.session.RecallNext(); ok {
			m.input.SetValue(cmd)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(normalizeNewlines(m.sink.Snapshot()))

	case key.Matches(msg, keys.clear):
		m.sink.Clear()
		m.viewport.SetContent("")
		return m, nil

	case key.Matches(msg, keys.forget):
		return m, m.cmdClearHistory()

	case key.Matches(msg, keys.pageUp, keys.pageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ConsoleModel) View() string {
	header := titleStyle.Render(fitText(fmt.Sprintf("%s@%s", m.creds.Username, m.creds.SSHAddress()), max(10, m.viewport.Width-16))) +
		"  " + helpStyle.Render("["+m.session.State().String()+"]")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(consoleStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString(renderStatus(m.status, m.errMsg))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: run │ ↑/↓: history │ ctrl+y: copy │ ctrl+l: clear │ ctrl+k: forget history │ esc: quit"))
	return b.String()
}

// Close shuts the session down, releases the output watcher and wipes the
// account from memory. It is safe to call more than once.
func (m *ConsoleModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.session.Shutdown()
	m.sink.Close()
	m.creds.Clear()
	m.logger.Info().Str("func", "ConsoleModel.Close").Msg("console closed")
}

func (m *ConsoleModel) refresh() {
	m.viewport.SetContent(normalizeNewlines(m.sink.Snapshot()))
	m.viewport.GotoBottom()
}

func (m *ConsoleModel) cmdConnect() tea.Cmd {
	ctx := m.ctx
	creds := m.creds
	session := m.session
	connector := m.connector
	history := m.history
	limit := m.historyLimit
	log := m.logger

	return func() tea.Msg {
		if history != nil && limit > 0 {
			commands, err := history.Preload(ctx, creds.ServerPath, limit)
			if err != nil {
				log.Err(err).Str("func", "ConsoleModel.cmdConnect").Msg("history not preloaded")
			} else {
				session.LoadHistory(commands)
			}
		}

		err := session.Connect(ctx, func(ctx context.Context) (terminal.Channel, error) {
			return connector.Connect(ctx, creds)
		})
		return connectedMsg{err: err}
	}
}

// cmdClearHistory removes the stored commands of the current host. The
// in-memory history is dropped once the store confirms.
func (m *ConsoleModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	host := m.creds.ServerPath
	history := m.history

	return func() tea.Msg {
		if history == nil {
			return historyClearedMsg{}
		}
		return historyClearedMsg{err: history.Clear(ctx, host)}
	}
}

// waitForOutput blocks until the scrollback signals new text or closes.
func waitForOutput(sink *terminal.Scrollback) tea.Cmd {
	return func() tea.Msg {
		<-sink.Notify()
		return outputMsg{closed: sink.IsClosed()}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// normalizeNewlines drops carriage returns so CRLF shell output renders as
// plain lines.
func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r", "")
}
