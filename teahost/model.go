// Package teahost runs a tableview.Table inside a bubbletea program.
package teahost

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kungfusheep/tableview"
)

// Host is what table callbacks receive while running under a Model.
// Callbacks type-assert it from their host argument.
type Host struct {
	// State is the application value given to WithState.
	State any

	cmds []tea.Cmd
}

// Cmd queues a command to be returned from the Update that ran the callback.
func (h *Host) Cmd(cmd tea.Cmd) {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

type options struct {
	keys     KeyMap
	state    any
	log      *zap.Logger
	showHelp bool
}

// Option configures a Model.
type Option func(*options)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(o *options) { o.keys = km }
}

// WithState sets the value exposed to callbacks as Host.State.
func WithState(state any) Option {
	return func(o *options) { o.state = state }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithHelp reserves the bottom line for a short key help.
func WithHelp(show bool) Option {
	return func(o *options) { o.showHelp = show }
}

// Model is a tea.Model wrapping a table. The table fills the window.
type Model[T tableview.Item[T, K], K comparable] struct {
	table *tableview.Table[T, K]
	opts  options
	host  *Host
	help  help.Model
	buf   *tableview.Buffer
	size  tableview.Size
}

// New wraps table in a Model.
func New[T tableview.Item[T, K], K comparable](table *tableview.Table[T, K], opts ...Option) *Model[T, K] {
	o := options{keys: DefaultKeyMap(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Model[T, K]{
		table: table,
		opts:  o,
		host:  &Host{State: o.state},
		help:  help.New(),
		buf:   tableview.NewBuffer(0, 0),
	}
}

// Table returns the wrapped table.
func (m *Model[T, K]) Table() *tableview.Table[T, K] {
	return m.table
}

// KeyMap returns the active key bindings.
func (m *Model[T, K]) KeyMap() KeyMap {
	return m.opts.keys
}

func (m *Model[T, K]) Init() tea.Cmd {
	return nil
}

func (m *Model[T, K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.opts.keys.Quit) {
			return m, tea.Quit
		}
		k, ok := m.opts.keys.Lookup(msg)
		if !ok {
			return m, nil
		}
		res := m.table.OnEvent(k)
		m.opts.log.Debug("key",
			zap.String("msg", msg.String()),
			zap.Stringer("key", k),
			zap.Bool("consumed", res.Consumed))

		res.Run(m.host)
		cmds := m.host.cmds
		m.host.cmds = nil
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m *Model[T, K]) resize(width, height int) {
	m.size = tableview.Size{Width: width, Height: height}
	tableHeight := height
	if m.opts.showHelp && height > 0 {
		tableHeight--
		m.help.Width = width
	}
	m.buf.Resize(width, tableHeight)
	m.table.Layout(m.buf.Size())
}

func (m *Model[T, K]) View() string {
	if m.size.Width == 0 || m.size.Height == 0 {
		return ""
	}
	m.buf.Clear()
	m.table.Draw(m.buf)
	out := render(m.buf)
	if m.opts.showHelp {
		out += "\n" + m.help.View(m.opts.keys)
	}
	return out
}
