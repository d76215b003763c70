package teahost

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kungfusheep/tableview"
)

// ErrUnknownAction is returned by Rebind for an action name the keymap does
// not have.
var ErrUnknownAction = errors.New("unknown key action")

// KeyMap binds terminal keys to table navigation.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Enter    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns arrow keys plus vi-style alternatives.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit/sort")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// binding returns the binding for an action name as used in config files.
func (km *KeyMap) binding(action string) *key.Binding {
	switch strings.ToLower(action) {
	case "up":
		return &km.Up
	case "down":
		return &km.Down
	case "left":
		return &km.Left
	case "right":
		return &km.Right
	case "pgup", "page_up":
		return &km.PageUp
	case "pgdown", "page_down":
		return &km.PageDown
	case "home":
		return &km.Home
	case "end":
		return &km.End
	case "enter", "submit":
		return &km.Enter
	case "quit":
		return &km.Quit
	}
	return nil
}

// Rebind replaces the keys of an action. The help text follows the new keys.
func (km *KeyMap) Rebind(action string, keys ...string) error {
	b := km.binding(action)
	if b == nil {
		return fmt.Errorf("rebind %q: %w", action, ErrUnknownAction)
	}
	if len(keys) == 0 {
		return fmt.Errorf("rebind %q: no keys given", action)
	}
	b.SetKeys(keys...)
	b.SetHelp(strings.Join(keys, "/"), b.Help().Desc)
	return nil
}

// Apply rebinds every action in m, stopping at the first error.
func (km *KeyMap) Apply(m map[string][]string) error {
	for action, keys := range m {
		if err := km.Rebind(action, keys...); err != nil {
			return err
		}
	}
	return nil
}

// Lookup translates a key press into a table key.
func (km KeyMap) Lookup(msg tea.KeyMsg) (tableview.Key, bool) {
	switch {
	case key.Matches(msg, km.Up):
		return tableview.KeyUp, true
	case key.Matches(msg, km.Down):
		return tableview.KeyDown, true
	case key.Matches(msg, km.Left):
		return tableview.KeyLeft, true
	case key.Matches(msg, km.Right):
		return tableview.KeyRight, true
	case key.Matches(msg, km.PageUp):
		return tableview.KeyPageUp, true
	case key.Matches(msg, km.PageDown):
		return tableview.KeyPageDown, true
	case key.Matches(msg, km.Home):
		return tableview.KeyHome, true
	case key.Matches(msg, km.End):
		return tableview.KeyEnd, true
	case key.Matches(msg, km.Enter):
		return tableview.KeyEnter, true
	}
	return tableview.KeyUnknown, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Right, km.Enter, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.PageUp, km.PageDown, km.Home, km.End},
		{km.Left, km.Right, km.Enter, km.Quit},
	}
}
