package tcellhost

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kungfusheep/tableview"
)

// ErrUnknownAction is returned by Rebind for an action name the keymap does
// not have.
var ErrUnknownAction = errors.New("unknown key action")

// quit is the pseudo-key bound to the quit action.
const quit = tableview.Key(255)

// KeyMap maps tcell key events to table keys.
type KeyMap struct {
	keys  map[tcell.Key]tableview.Key
	runes map[rune]tableview.Key
}

// DefaultKeyMap returns arrow keys plus vi-style alternatives.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		keys: map[tcell.Key]tableview.Key{
			tcell.KeyUp:    tableview.KeyUp,
			tcell.KeyDown:  tableview.KeyDown,
			tcell.KeyLeft:  tableview.KeyLeft,
			tcell.KeyRight: tableview.KeyRight,
			tcell.KeyPgUp:  tableview.KeyPageUp,
			tcell.KeyPgDn:  tableview.KeyPageDown,
			tcell.KeyHome:  tableview.KeyHome,
			tcell.KeyEnd:   tableview.KeyEnd,
			tcell.KeyEnter: tableview.KeyEnter,
			tcell.KeyCtrlC: quit,
		},
		runes: map[rune]tableview.Key{
			'k': tableview.KeyUp,
			'j': tableview.KeyDown,
			'h': tableview.KeyLeft,
			'l': tableview.KeyRight,
			'g': tableview.KeyHome,
			'G': tableview.KeyEnd,
			'q': quit,
		},
	}
}

// keyByName indexes tcell's key names the way config files spell them:
// lower case, "+" or "-" between modifier and key.
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["pgdown"] = tcell.KeyPgDn
	return m
}()

func parseAction(action string) (tableview.Key, bool) {
	switch strings.ToLower(action) {
	case "quit":
		return quit, true
	case "submit":
		return tableview.KeyEnter, true
	}
	return tableview.ParseKey(action)
}

// Rebind replaces the keys of an action. A single character is a rune key;
// anything else is a tcell key name such as "pgup" or "ctrl+u".
func (km *KeyMap) Rebind(action string, keys ...string) error {
	target, ok := parseAction(action)
	if !ok {
		return fmt.Errorf("rebind %q: %w", action, ErrUnknownAction)
	}
	if len(keys) == 0 {
		return fmt.Errorf("rebind %q: no keys given", action)
	}

	newKeys := make(map[tcell.Key]tableview.Key)
	newRunes := make(map[rune]tableview.Key)
	for _, name := range keys {
		if r := []rune(name); len(r) == 1 {
			newRunes[r[0]] = target
			continue
		}
		k, ok := keyByName[strings.ReplaceAll(strings.ToLower(name), "+", "-")]
		if !ok {
			return fmt.Errorf("rebind %q: unknown key %q", action, name)
		}
		newKeys[k] = target
	}

	for k, v := range km.keys {
		if v == target {
			delete(km.keys, k)
		}
	}
	for r, v := range km.runes {
		if v == target {
			delete(km.runes, r)
		}
	}
	for k, v := range newKeys {
		km.keys[k] = v
	}
	for r, v := range newRunes {
		km.runes[r] = v
	}
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

// Lookup translates a key event. Modifiers other than those folded into
// tcell's control keys are ignored.
func (km KeyMap) Lookup(ev *tcell.EventKey) (tableview.Key, bool) {
	var (
		k  tableview.Key
		ok bool
	)
	if ev.Key() == tcell.KeyRune {
		k, ok = km.runes[ev.Rune()]
	} else {
		k, ok = km.keys[ev.Key()]
	}
	return k, ok
}
