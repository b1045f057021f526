package browser

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the ticket browser.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	Search      key.Binding
	Facets      key.Binding
	ToggleFacet key.Binding
	ClearFilter key.Binding

	CycleSort    key.Binding
	ToggleOrder  key.Binding
	PageSizeUp   key.Binding
	PageSizeDown key.Binding

	Open   key.Binding
	Close  key.Binding
	Export key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "right", "pgdown"),
		key.WithHelp("n/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "left", "pgup"),
		key.WithHelp("p/←", "prev page"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Facets: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filters"),
	),
	ToggleFacet: key.NewBinding(
		key.WithKeys(" ", "space", "x"),
		key.WithHelp("space", "toggle"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear filters"),
	),
	CycleSort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort by"),
	),
	ToggleOrder: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "order"),
	),
	PageSizeUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "page size"),
	),
	PageSizeDown: key.NewBinding(
		key.WithKeys("-", "_"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export csv"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Search, keys.Facets, keys.CycleSort, keys.ToggleOrder, keys.NextPage, keys.PrevPage, keys.Open, keys.Export, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.NextPage, keys.PrevPage},
		{keys.Search, keys.Facets, keys.ToggleFacet, keys.ClearFilter},
		{keys.CycleSort, keys.ToggleOrder, keys.PageSizeUp},
		{keys.Open, keys.Close, keys.Export, keys.Quit},
	}
}
