package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	quit    key.Binding
	load    key.Binding
	save    key.Binding
	reload  key.Binding
	reset   key.Binding
	rescan  key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
	version key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter", " ")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	load:    key.NewBinding(key.WithKeys("ctrl+l")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	reload:  key.NewBinding(key.WithKeys("ctrl+r")),
	reset:   key.NewBinding(key.WithKeys("ctrl+u")),
	rescan:  key.NewBinding(key.WithKeys("ctrl+r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
	version: key.NewBinding(key.WithKeys("v")),
}
