package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	commit key.Binding
	esc    key.Binding
	tab    key.Binding
	quit   key.Binding
	forceQ key.Binding
	edit   key.Binding
	delete key.Binding
	copy   key.Binding
	info   key.Binding
	yes    key.Binding
	no     key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	commit: key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	tab:    key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:   key.NewBinding(key.WithKeys("q")),
	forceQ: key.NewBinding(key.WithKeys("ctrl+c")),
	edit:   key.NewBinding(key.WithKeys("e")),
	delete: key.NewBinding(key.WithKeys("d", "delete")),
	copy:   key.NewBinding(key.WithKeys("c")),
	info:   key.NewBinding(key.WithKeys("v")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n", "esc")),
}
