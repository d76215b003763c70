package tableview

import "strings"

// Key is a navigation key delivered by the host.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
)

var keyNames = [...]string{
	KeyUnknown:  "unknown",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyPageUp:   "pgup",
	KeyPageDown: "pgdown",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyEnter:    "enter",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}

// Callback runs a notification handler against the host's application
// state. The table never passes itself; everything a handler learns about
// the table arrives as values captured when the event was handled.
type Callback func(host any)

// Result reports what the table did with an event.
type Result struct {
	// Consumed is false when the event had no effect and should bubble to
	// the parent widget.
	Consumed bool
	// Callback, when set, must be run by the host after the event.
	Callback Callback
}

// Ignored is the result of an event the table did not handle.
func Ignored() Result {
	return Result{}
}

// Consumed is the result of a handled event with an optional callback.
func Consumed(cb Callback) Result {
	return Result{Consumed: true, Callback: cb}
}

// Run invokes the callback, if any, with host.
func (r Result) Run(host any) {
	if r.Callback != nil {
		r.Callback(host)
	}
}

// Handler signatures for the three notifications.
type (
	SortHandler[K comparable] func(host any, column K, dir Direction)
	RowHandler                func(host any, row, index int)
)

// ParseKey returns the key named by Key.String. "pgdn", "page_up" and
// "page_down" are accepted as well.
func ParseKey(name string) (Key, bool) {
	switch name = strings.ToLower(name); name {
	case "pgdn", "page_down":
		return KeyPageDown, true
	case "page_up":
		return KeyPageUp, true
	}
	for k, n := range keyNames {
		if k != int(KeyUnknown) && n == name {
			return Key(k), true
		}
	}
	return KeyUnknown, false
}
