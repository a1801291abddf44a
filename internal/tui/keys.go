package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	load      key.Binding
	save      key.Binding
	copy      key.Binding
	clear     key.Binding
	forget    key.Binding
	pageUp    key.Binding
	pageDown  key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	load:      key.NewBinding(key.WithKeys("ctrl+o")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	clear:     key.NewBinding(key.WithKeys("ctrl+l")),
	forget:    key.NewBinding(key.WithKeys("ctrl+k")),
	pageUp:    key.NewBinding(key.WithKeys("pgup")),
	pageDown:  key.NewBinding(key.WithKeys("pgdown")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
}
