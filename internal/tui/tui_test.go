package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-nas-keeper/internal/adapter"
	"github.com/MKhiriev/go-nas-keeper/internal/app"
	"github.com/MKhiriev/go-nas-keeper/internal/config"
	"github.com/MKhiriev/go-nas-keeper/internal/mock"
	"github.com/MKhiriev/go-nas-keeper/internal/service"
	"github.com/MKhiriev/go-nas-keeper/internal/terminal"
	"github.com/MKhiriev/go-nas-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// run executes cmd and returns its message, or nil for a nil cmd.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func testCreds() models.Credentials {
	return models.NewCredentials(models.NewServerConfig("nas"), "admin", "secret")
}

// ── Vault page ───────────────────────────────────────────────────────────────

func TestVaultModel_Load(t *testing.T) {
	tests := []struct {
		name       string
		status     models.LoadStatus
		wantStatus string
		wantErr    string
	}{
		{name: "ok", status: models.LoadOK, wantStatus: app.MsgConfigLoaded},
		{name: "missing", status: models.LoadMissing, wantErr: app.MsgConfigNotFound},
		{name: "malformed", status: models.LoadMalformed, wantErr: app.MsgConfigMalformed},
		{name: "wrong password", status: models.LoadWrongPasswordOrCorrupt, wantErr: app.MsgConfigUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock.NewMockNetConfigService(ctrl)
			stored := models.ServerConfig{ServerPath: "10.0.0.5", SSHPort: "2222", SFTPPort: "22", HTTPPort: "5000", HTTPSPort: "5001"}
			if tt.status == models.LoadOK {
				svc.EXPECT().LoadServerConfig(gomock.Any(), "pw").Return(stored, tt.status, nil)
			} else {
				svc.EXPECT().LoadServerConfig(gomock.Any(), "pw").Return(models.ServerConfig{}, tt.status, nil)
			}

			m := NewVaultModel(context.Background(), svc)
			m.inputs[vaultFieldPassword].SetValue("pw")

			_, cmd := m.Update(keyMsg(tea.KeyCtrlO))
			require.True(t, m.busy)
			m.Update(run(cmd))

			assert.False(t, m.busy)
			assert.Equal(t, tt.wantStatus, m.status)
			assert.Equal(t, tt.wantErr, m.errMsg)
			if tt.status == models.LoadOK {
				assert.Equal(t, stored, m.serverConfig())
			} else {
				assert.Equal(t, models.NewServerConfig(""), m.serverConfig(), "form keeps its values")
			}
		})
	}
}

func TestVaultModel_LoadWithoutPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewVaultModel(context.Background(), mock.NewMockNetConfigService(ctrl))

	_, cmd := m.Update(keyMsg(tea.KeyCtrlO))

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
}

func TestVaultModel_Save(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus string
		wantErr    string
		overlay    bool
	}{
		{name: "saved", wantStatus: app.MsgConfigSaved},
		{name: "incomplete", err: service.ErrIncompleteServerConfig, wantErr: app.MsgConfigIncomplete},
		{name: "io error", err: errors.New("read-only file system"), overlay: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock.NewMockNetConfigService(ctrl)
			want := models.NewServerConfig("nas.local")
			svc.EXPECT().SaveServerConfig(gomock.Any(), "pw", want).Return(tt.err)

			m := NewVaultModel(context.Background(), svc)
			m.inputs[vaultFieldPassword].SetValue("pw")
			m.inputs[vaultFieldServer].SetValue("  nas.local ")

			_, cmd := m.Update(keyMsg(tea.KeyCtrlS))
			m.Update(run(cmd))

			assert.Equal(t, tt.wantStatus, m.status)
			assert.Equal(t, tt.wantErr, m.errMsg)
			assert.Equal(t, tt.overlay, m.overlay != nil)
			if tt.overlay {
				assert.Contains(t, m.View(), "read-only file system")
				m.Update(keyMsg(tea.KeyEsc))
				assert.Nil(t, m.overlay)
			}
		})
	}
}

func TestVaultModel_Continue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewVaultModel(context.Background(), mock.NewMockNetConfigService(ctrl))

	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	assert.Nil(t, cmd, "no server entered")
	assert.NotEmpty(t, m.errMsg)

	m.inputs[vaultFieldServer].SetValue("nas")
	m.inputs[vaultFieldHTTPS].SetValue("")
	_, cmd = m.Update(keyMsg(tea.KeyEnter))

	nav, ok := run(cmd).(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageCredentials, nav.Page)
	assert.Equal(t, serverSelectedMsg{cfg: models.NewServerConfig("nas")}, nav.Payload)
}

func TestVaultModel_FocusCycles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewVaultModel(context.Background(), mock.NewMockNetConfigService(ctrl))

	m.Update(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, vaultFieldHTTPS, m.focus)
	m.Update(keyMsg(tea.KeyTab))
	assert.Equal(t, vaultFieldPassword, m.focus)
}

// ── Credentials page ─────────────────────────────────────────────────────────

func TestCredentialsModel_RequiresAccount(t *testing.T) {
	m := NewCredentialsModel(context.Background(), nil)
	m.Update(serverSelectedMsg{cfg: models.NewServerConfig("nas")})

	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgCredentialsRequired, m.errMsg)
}

func TestCredentialsModel_OpensConsole(t *testing.T) {
	m := NewCredentialsModel(context.Background(), nil)
	m.Update(serverSelectedMsg{cfg: models.NewServerConfig("nas")})
	m.inputs[0].SetValue(" admin ")
	m.inputs[1].SetValue("secret")

	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	open, ok := run(cmd).(openConsoleMsg)
	require.True(t, ok)
	assert.Equal(t, testCreds(), open.creds)
	assert.Empty(t, m.inputs[1].Value(), "password is not kept in the form")
}

func TestCredentialsModel_Back(t *testing.T) {
	m := NewCredentialsModel(context.Background(), nil)

	_, cmd := m.Update(keyMsg(tea.KeyEsc))

	assert.Equal(t, NavigateTo{Page: pageVault}, run(cmd))
}

func TestCredentialsModel_ChecksCredentials(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{name: "accepted"},
		{name: "rejected", err: fmt.Errorf("%w: access denied", adapter.ErrAuthFailed), wantErr: "Wrong user name or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			connector := mock.NewMockSSHConnector(ctrl)
			connector.EXPECT().CheckCredentials(gomock.Any(), testCreds()).Return(tt.err)

			m := NewCredentialsModel(context.Background(), connector)
			m.Update(serverSelectedMsg{cfg: models.NewServerConfig("nas")})
			m.inputs[0].SetValue("admin")
			m.inputs[1].SetValue("secret")

			_, cmd := m.Update(keyMsg(tea.KeyEnter))
			require.NotNil(t, cmd)
			assert.True(t, m.busy)
			assert.Equal(t, app.MsgCheckingCredentials, m.status)

			_, ignored := m.Update(keyMsg(tea.KeyEsc))
			assert.Nil(t, ignored, "keys are ignored while checking")

			_, cmd = m.Update(run(cmd))
			assert.False(t, m.busy)
			assert.Empty(t, m.status)

			if tt.wantErr != "" {
				assert.Nil(t, cmd)
				assert.Equal(t, tt.wantErr, m.errMsg)
				assert.Equal(t, "secret", m.inputs[1].Value(), "password stays for a retry")
				return
			}
			open, ok := run(cmd).(openConsoleMsg)
			require.True(t, ok)
			assert.Equal(t, testCreds(), open.creds)
			assert.Empty(t, m.inputs[1].Value())
		})
	}
}

// ── Console page ─────────────────────────────────────────────────────────────

func newTestConsole(t *testing.T, deps consoleDeps) *ConsoleModel {
	t.Helper()
	sink := terminal.NewScrollback(0)
	session := terminal.NewSession(sink, terminal.Options{Target: "nas"})
	m := newConsoleModel(context.Background(), testCreds(), session, sink, deps)
	t.Cleanup(m.Close)
	return m
}

func TestConsoleModel_ConnectSubmitRecall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ch := mock.NewMockChannel(ctrl)
	ch.EXPECT().Ready().Return(false).AnyTimes()
	ch.EXPECT().Write([]byte("ls\n")).Return(3, nil)
	ch.EXPECT().Close().Return(nil)

	connector := mock.NewMockSSHConnector(ctrl)
	connector.EXPECT().Connect(gomock.Any(), testCreds()).Return(ch, nil)

	history := mock.NewMockHistoryService(ctrl)
	history.EXPECT().Preload(gomock.Any(), "nas", 10).Return([]string{"uptime"}, nil)

	m := newTestConsole(t, consoleDeps{connector: connector, history: history, historyLimit: 10})

	m.Update(run(m.cmdConnect()))
	require.Equal(t, terminal.Connected, m.session.State())
	assert.Empty(t, m.errMsg)

	m.input.SetValue("ls")
	m.Update(keyMsg(tea.KeyEnter))
	assert.Empty(t, m.input.Value())

	m.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, "ls", m.input.Value())
	m.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, "uptime", m.input.Value())
	m.Update(keyMsg(tea.KeyDown))
	m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, "", m.input.Value())

	m.Close()
	assert.Equal(t, terminal.Disconnected, m.session.State())
}

func TestConsoleModel_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connector := mock.NewMockSSHConnector(ctrl)
	connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

	m := newTestConsole(t, consoleDeps{connector: connector})

	m.Update(run(m.cmdConnect()))

	assert.Equal(t, "NAS is unreachable", m.errMsg)
	assert.Contains(t, m.sink.Snapshot(), "Connection Failed:")
}

func TestConsoleModel_RecallWhileDisconnected(t *testing.T) {
	m := newTestConsole(t, consoleDeps{})
	m.session.LoadHistory([]string{"ls"})
	m.input.SetValue("typed")

	m.Update(keyMsg(tea.KeyUp))

	assert.Equal(t, "typed", m.input.Value())
}

func TestConsoleModel_OutputRefreshesViewport(t *testing.T) {
	m := newTestConsole(t, consoleDeps{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	m.sink.AppendText("line one\r\nline two\r\n")
	_, cmd := m.Update(outputMsg{})

	assert.NotNil(t, cmd, "keeps watching for output")
	assert.Contains(t, m.viewport.View(), "line two")
	assert.NotContains(t, m.viewport.View(), "\r")

	_, cmd = m.Update(outputMsg{closed: true})
	assert.Nil(t, cmd)
}

func TestConsoleModel_ClearAndCopy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m := newTestConsole(t, consoleDeps{})
	m.sink.AppendText("total 0\r\n")

	_, cmd := m.Update(keyMsg(tea.KeyCtrlY))
	m.Update(run(cmd))
	assert.Equal(t, "total 0\n", copied)
	assert.Equal(t, app.MsgCopied, m.status)

	m.Update(keyMsg(tea.KeyCtrlL))
	assert.Equal(t, 0, m.sink.Len())

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestConsoleModel_EscQuits(t *testing.T) {
	m := newTestConsole(t, consoleDeps{})

	_, cmd := m.Update(keyMsg(tea.KeyEsc))

	assert.Equal(t, tea.Quit(), run(cmd))
	assert.True(t, m.sink.IsClosed())
}

func TestConsoleModel_ForgetHistory(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus string
		wantErr    string
		wantKept   []string
	}{
		{name: "cleared", wantStatus: app.MsgHistoryCleared},
		{name: "store fails", err: errors.New("database is locked"), wantErr: "clear history: database is locked", wantKept: []string{"ls"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			history := mock.NewMockHistoryService(ctrl)
			history.EXPECT().Clear(gomock.Any(), "nas").Return(tt.err)

			m := newTestConsole(t, consoleDeps{history: history})
			m.session.LoadHistory([]string{"ls"})

			_, cmd := m.Update(keyMsg(tea.KeyCtrlK))
			m.Update(run(cmd))

			assert.Equal(t, tt.wantStatus, m.status)
			assert.Equal(t, tt.wantErr, m.errMsg)
			if tt.wantKept == nil {
				assert.Empty(t, m.session.History())
			} else {
				assert.Equal(t, tt.wantKept, m.session.History())
			}
		})
	}
}

func TestConsoleModel_CloseWipesAccount(t *testing.T) {
	m := newTestConsole(t, consoleDeps{})

	m.Close()

	assert.Empty(t, m.creds.Password)
	assert.Empty(t, m.creds.Username)
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\n", normalizeNewlines("a\r\nb\r\n"))
	assert.Equal(t, "ab", normalizeNewlines("a\rb"))
}

// ── Root router ──────────────────────────────────────────────────────────────

func TestRootModel_OpenConsoleAndQuit(t *testing.T) {
	var built *ConsoleModel
	newConsole := func(creds models.Credentials) *ConsoleModel {
		built = newTestConsole(t, consoleDeps{})
		return built
	}

	pages := map[string]tea.Model{pageCredentials: NewCredentialsModel(context.Background(), nil)}
	root := NewRootModel(pages, pageCredentials, models.AppBuildInfo{}, newConsole)

	updated, _ := root.Update(openConsoleMsg{creds: testCreds()})
	root = updated.(RootModel)
	require.NotNil(t, built)
	assert.Same(t, built, root.current)

	updated, cmd := root.Update(keyMsg(tea.KeyCtrlC))
	root = updated.(RootModel)

	assert.True(t, root.quitByUser)
	assert.Equal(t, tea.Quit(), run(cmd))
	assert.True(t, built.sink.IsClosed(), "console is shut down on quit")
}

func TestRootModel_Navigate(t *testing.T) {
	pages := map[string]tea.Model{
		pageVault:       NewCredentialsModel(context.Background(), nil),
		pageCredentials: NewCredentialsModel(context.Background(), nil),
	}
	root := NewRootModel(pages, pageVault, models.AppBuildInfo{}, nil)

	payload := serverSelectedMsg{cfg: models.NewServerConfig("nas")}
	updated, cmd := root.Update(NavigateTo{Page: pageCredentials, Payload: payload})
	root = updated.(RootModel)

	assert.Same(t, pages[pageCredentials], root.current)
	assert.Equal(t, payload, run(cmd))

	updated, cmd = root.Update(NavigateTo{Page: "missing"})
	assert.Nil(t, cmd)
	assert.Same(t, pages[pageCredentials], updated.(RootModel).current)
}

func TestRootModel_BuildInfo(t *testing.T) {
	pages := map[string]tea.Model{pageCredentials: NewCredentialsModel(context.Background(), nil)}
	root := NewRootModel(pages, pageCredentials, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc"), nil)

	updated, _ := root.Update(keyMsg(tea.KeyF1))
	root = updated.(RootModel)
	view := root.View()
	assert.True(t, strings.Contains(view, "v1.0.0") && strings.Contains(view, "abc"))

	updated, _ = root.Update(keyMsg(tea.KeyEsc))
	assert.False(t, updated.(RootModel).showBuildInfo)
}

// ── Console factory ──────────────────────────────────────────────────────────

type countingRecorders struct {
	hosts []string
}

func (r *countingRecorders) ForHost(host string) terminal.HistoryRecorder {
	r.hosts = append(r.hosts, host)
	return nopRecorder{}
}

type nopRecorder struct{}

func (nopRecorder) Record(string) {}

func TestTUI_ConsoleFactory_HistoryPersistence(t *testing.T) {
	tests := []struct {
		name      string
		persist   bool
		wantHosts []string
		wantLimit int
	}{
		{name: "off by default", persist: false, wantHosts: nil, wantLimit: 0},
		{name: "enabled", persist: true, wantHosts: []string{"nas"}, wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			recorders := &countingRecorders{}
			ui := New(
				&service.ClientServices{HistoryService: mock.NewMockHistoryService(ctrl)},
				nil,
				recorders,
				config.ClientShell{PersistHistory: tt.persist, HistoryLimit: 50},
				nil,
			)

			m := ui.consoleFactory(context.Background())(testCreds())
			t.Cleanup(m.Close)

			assert.Equal(t, tt.wantHosts, recorders.hosts)
			assert.Equal(t, tt.wantLimit, m.historyLimit)
			assert.NotNil(t, m.history, "forgetting history works either way")
		})
	}
}
