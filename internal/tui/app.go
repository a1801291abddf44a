package tui

import (
	"github.com/MKhiriev/go-nas-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// closer is implemented by pages that own resources.
type closer interface {
	Close()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) opens the console page when credentials are submitted
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	newConsole func(models.Credentials) *ConsoleModel
	console    *ConsoleModel

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool

	width, height int
}

// NewRootModel registers all pages and opens startPage. newConsole builds
// the shell page for submitted credentials.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, newConsole func(models.Credentials) *ConsoleModel) RootModel {
	return RootModel{
		pages:      pages,
		current:    pages[startPage],
		buildInfo:  buildInfo,
		newConsole: newConsole,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			r.closeAll()
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && r.current != r.consolePage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height

	// Cross-page navigation.
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, r.current.Init()

	case openConsoleMsg:
		if r.newConsole == nil {
			return r, nil
		}
		if r.console != nil {
			r.console.Close()
		}
		r.console = r.newConsole(msg.creds)
		r.pages[pageConsole] = r.console
		r.current = r.console

		cmds := []tea.Cmd{r.console.Init()}
		if r.width > 0 {
			size := tea.WindowSizeMsg{Width: r.width, Height: r.height}
			cmds = append(cmds, func() tea.Msg { return size })
		}
		return r, tea.Batch(cmds...)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("NAS KEEPER", "", "")
	}
	return r.current.View()
}

// closeAll releases every page that owns resources.
func (r RootModel) closeAll() {
	for _, page := range r.pages {
		if c, ok := page.(closer); ok {
			c.Close()
		}
	}
}

func (r RootModel) consolePage() tea.Model {
	if r.console == nil {
		return nil
	}
	return r.console
}
