// Package tcellhost runs a tableview.Table as a tview primitive.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/kungfusheep/tableview"
)

type options struct {
	keys   KeyMap
	host   any
	onQuit func()
	log    *zap.Logger
}

// Option configures a View.
type Option func(*options)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(o *options) { o.keys = km }
}

// WithHost sets the value passed to table callbacks, usually the
// *tview.Application.
func WithHost(host any) Option {
	return func(o *options) { o.host = host }
}

// WithQuit sets the function run by the quit binding. Without it the quit
// keys pass through to the application.
func WithQuit(fn func()) Option {
	return func(o *options) { o.onQuit = fn }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// View is a tview primitive that draws a table inside its box.
type View[T tableview.Item[T, K], K comparable] struct {
	*tview.Box
	table *tableview.Table[T, K]
	opts  options
}

// New wraps table in a View.
func New[T tableview.Item[T, K], K comparable](table *tableview.Table[T, K], opts ...Option) *View[T, K] {
	o := options{keys: DefaultKeyMap(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &View[T, K]{
		Box:   tview.NewBox(),
		table: table,
		opts:  o,
	}
}

// Table returns the wrapped table.
func (v *View[T, K]) Table() *tableview.Table[T, K] {
	return v.table
}

// Draw lays the table out in the inner rectangle and draws it.
func (v *View[T, K]) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()
	size := tableview.Size{Width: max(width, 0), Height: max(height, 0)}
	v.table.Layout(size)
	v.table.Draw(screenRenderer{screen: screen, x: x, y: y, width: size.Width, height: size.Height})
}

// Focus is refused while the table does not take focus.
func (v *View[T, K]) Focus(delegate func(p tview.Primitive)) {
	if !v.table.TakeFocus() {
		return
	}
	v.Box.Focus(delegate)
}

// InputHandler feeds mapped keys to the table and runs its callbacks with
// the configured host.
func (v *View[T, K]) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		v.HandleKey(event)
	})
}

// HandleKey processes one key event and reports whether the table consumed
// it.
func (v *View[T, K]) HandleKey(event *tcell.EventKey) bool {
	k, ok := v.opts.keys.Lookup(event)
	if !ok {
		return false
	}
	if k == quit {
		if v.opts.onQuit == nil {
			return false
		}
		v.opts.onQuit()
		return true
	}

	res := v.table.OnEvent(k)
	v.opts.log.Debug("key",
		zap.String("event", event.Name()),
		zap.Stringer("key", k),
		zap.Bool("consumed", res.Consumed))
	res.Run(v.opts.host)
	return res.Consumed
}
