package tableview

import "strings"

// Role names what a piece of the table is, so a Theme can decide how it looks.
type Role uint8

const (
	RolePrimary           Role = iota // ordinary header and row text
	RoleSecondary                     // everything while the table is disabled
	RoleHighlight                     // focused row, or the column being picked
	RoleHighlightInactive             // focus that is not receiving keys, and the sort column
)

// Theme provides the styles used for each drawing role.
type Theme struct {
	Primary           Style
	Secondary         Style
	Highlight         Style
	HighlightInactive Style
}

// Style returns the style for the given role.
func (t Theme) Style(r Role) Style {
	switch r {
	case RoleSecondary:
		return t.Secondary
	case RoleHighlight:
		return t.Highlight
	case RoleHighlightInactive:
		return t.HighlightInactive
	default:
		return t.Primary
	}
}

// Pre-defined themes

// ThemeDefault uses the terminal colors with a blue selection bar.
var ThemeDefault = Theme{
	Primary:           DefaultStyle(),
	Secondary:         Style{FG: BrightBlack},
	Highlight:         Style{FG: BrightWhite, BG: Blue},
	HighlightInactive: Style{FG: White, BG: BrightBlack},
}

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Primary:           Style{FG: White},
	Secondary:         Style{FG: BrightBlack},
	Highlight:         Style{FG: Black, BG: Cyan},
	HighlightInactive: Style{FG: Cyan, BG: RGB(0x30, 0x30, 0x30)},
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Primary:           Style{FG: Black},
	Secondary:         Style{FG: BrightBlack},
	Highlight:         Style{FG: White, BG: Blue},
	HighlightInactive: Style{FG: Blue, BG: PaletteColor(254)},
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Primary:           Style{},
	Secondary:         Style{Attr: AttrDim},
	Highlight:         Style{Attr: AttrInverse},
	HighlightInactive: Style{Attr: AttrBold | AttrUnderline},
}

// ThemeByName looks up one of the pre-defined themes.
// Names are "default", "dark", "light" and "mono".
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return ThemeDefault, true
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	case "mono", "monochrome":
		return ThemeMonochrome, true
	}
	return Theme{}, false
}
