// Package tableview provides a sortable, multi-column, scrollable table for
// terminal user interfaces.
//
// The table keeps records in insertion order and presents them through a
// separate display permutation, so sorting by a column never disturbs the
// storage index a caller uses to address a record. Rendering, terminal I/O
// and input delivery belong to a host toolkit; see the teahost and tcellhost
// packages for ready-made hosts.
package tableview

// Attribute is a set of text attributes. Hosts map each bit onto whatever
// their toolkit supports.
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrStrikethrough
)

// Has reports whether attr is set.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// ColorMode says how a Color is encoded.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // whatever the terminal uses
	Color16                       // Index 0-15
	Color256                      // Index 0-255
	ColorRGB                      // R, G, B
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	Mode    ColorMode
	R, G, B uint8
	Index   uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// PaletteColor returns entry index of the 256-color palette.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

func basic(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// The basic colors the built-in themes draw with.
var (
	Black       = basic(0)
	Blue        = basic(4)
	Cyan        = basic(6)
	White       = basic(7)
	BrightBlack = basic(8)
	BrightWhite = basic(15)
)

// Style is a foreground, a background and a set of attributes.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle returns the terminal's default colors with no attributes.
func DefaultStyle() Style {
	return Style{}
}

// Cell is one character cell of a Buffer.
// A zero Rune marks the trailing half of a double-width character.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}
