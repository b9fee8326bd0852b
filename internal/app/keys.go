package app

import (
	"slices"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/lexiz/internal/ui/layout"
)

// keyMap feeds the footer help. Screen hints are display-only; the
// global bindings are matched in AppModel.Update.
type keyMap struct {
	screen  []key.Binding
	Back    key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// withHints returns a copy of k carrying the active screen's hints.
func (k keyMap) withHints(hints []layout.KeyHint) keyMap {
	k.screen = make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		k.screen = append(k.screen, key.NewBinding(
			key.WithKeys(h.Key),
			key.WithHelp(h.Key, h.Description),
		))
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(slices.Clone(k.screen), k.Back, k.Dismiss, k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.screen,
		{k.Back, k.Dismiss},
		{k.Help, k.Quit},
	}
}
