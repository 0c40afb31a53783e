package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	back       key.Binding
	search     key.Binding
	entity     key.Binding
	collection key.Binding
	add        key.Binding
	remove     key.Binding
	preview    key.Binding
	rate       key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		entity:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "entity")),
		collection: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collection")),
		add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		remove:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		preview:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		rate:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "rate")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.search, k.entity, k.collection},
		{k.add, k.remove, k.preview, k.rate},
		{k.quit},
	}
}
