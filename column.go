package tableview

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align is the horizontal alignment of a column's header and cells.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Direction is the sort state of a column.
type Direction uint8

const (
	SortNone Direction = iota
	SortAscending
	SortDescending
)

func (d Direction) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// Toggle flips ascending and descending. Anything that is not ascending
// becomes ascending.
func (d Direction) Toggle() Direction {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// indicator is the glyph drawn in a column header for this direction.
func (d Direction) indicator() string {
	switch d {
	case SortAscending:
		return "^"
	case SortDescending:
		return "v"
	default:
		return ""
	}
}

// WidthKind says how a column asks for its width.
type WidthKind uint8

const (
	WidthUnsized  WidthKind = iota // share of whatever is left
	WidthAbsolute                  // exactly N cells
	WidthPercent                   // N percent of the table width
)

// WidthPolicy is a column's width request.
type WidthPolicy struct {
	Kind  WidthKind
	Value int
}

func (p WidthPolicy) sized() bool {
	return p.Kind != WidthUnsized
}

// ColumnOption configures a single column.
type ColumnOption func(*ColumnConfig)

// ColumnConfig holds the configurable part of a column.
type ColumnConfig struct {
	align        Align
	request      WidthPolicy
	defaultOrder Direction
}

// Align sets the column alignment.
func (c *ColumnConfig) Align(a Align) { c.align = a }

// Width requests an exact width in cells.
func (c *ColumnConfig) Width(n int) { c.request = WidthPolicy{Kind: WidthAbsolute, Value: max(n, 0)} }

// WidthPercent requests a percentage of the whole table width.
func (c *ColumnConfig) WidthPercent(p int) {
	c.request = WidthPolicy{Kind: WidthPercent, Value: min(max(p, 0), 100)}
}

// Order sets the direction applied the first time the column is sorted.
// SortNone is ignored.
func (c *ColumnConfig) Order(d Direction) {
	if d != SortNone {
		c.defaultOrder = d
	}
}

// ----------------------------------------------------------------------------
// canned options
// ----------------------------------------------------------------------------

// Width requests an exact column width in cells.
func Width(n int) ColumnOption {
	return func(c *ColumnConfig) { c.Width(n) }
}

// Percent requests a percentage of the table width.
func Percent(p int) ColumnOption {
	return func(c *ColumnConfig) { c.WidthPercent(p) }
}

// Aligned sets the column alignment.
func Aligned(a Align) ColumnOption {
	return func(c *ColumnConfig) { c.Align(a) }
}

// Ordered sets the column's default sort direction.
func Ordered(d Direction) ColumnOption {
	return func(c *ColumnConfig) { c.Order(d) }
}

// column is one registered column: its identity, configuration and the
// state the table mutates while running.
type column[K comparable] struct {
	ColumnConfig
	key   K
	title string

	width    int       // last layout result
	order    Direction // current sort state
	selected bool      // active while picking a column
}

func newColumn[K comparable](key K, title string, opts []ColumnOption) *column[K] {
	c := &column[K]{
		ColumnConfig: ColumnConfig{defaultOrder: SortAscending},
		key:          key,
		title:        title,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c.ColumnConfig)
		}
	}
	return c
}

// drawHeader prints the title followed by a "[ ]" box holding the sort
// indicator.
func (c *column[K]) drawHeader(p printer, style Style) {
	header := alignText(c.title, c.width-4, c.align) + " [ ]"
	p.print(0, 0, runewidth.Truncate(header, c.width, ""), style)
	if ind := c.order.indicator(); ind != "" && c.width >= 3 {
		p.print(c.width-2, 0, ind, style)
	}
}

func (c *column[K]) drawRow(p printer, value string, style Style) {
	p.print(0, 0, alignText(value, c.width, c.align)+" ", style)
}

// alignText fits s into exactly width cells, truncating when it is too wide.
func alignText(s string, width int, a Align) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	pad := width - runewidth.StringWidth(s)
	switch a {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// ColumnInfo is a read-only snapshot of a column.
type ColumnInfo[K comparable] struct {
	Key          K
	Title        string
	Align        Align
	Width        int
	Policy       WidthPolicy
	Order        Direction
	DefaultOrder Direction
}

func (c *column[K]) info() ColumnInfo[K] {
	return ColumnInfo[K]{
		Key:          c.key,
		Title:        c.title,
		Align:        c.align,
		Width:        c.width,
		Policy:       c.request,
		Order:        c.order,
		DefaultOrder: c.defaultOrder,
	}
}
