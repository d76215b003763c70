package tcellhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kungfusheep/tableview"
)

func tcellColor(c tableview.Color) tcell.Color {
	switch c.Mode {
	case tableview.Color16, tableview.Color256:
		return tcell.PaletteColor(int(c.Index))
	case tableview.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}

func tcellStyle(s tableview.Style) tcell.Style {
	a := s.Attr
	return tcell.StyleDefault.
		Foreground(tcellColor(s.FG)).
		Background(tcellColor(s.BG)).
		Bold(a.Has(tableview.AttrBold)).
		Dim(a.Has(tableview.AttrDim)).
		Italic(a.Has(tableview.AttrItalic)).
		Underline(a.Has(tableview.AttrUnderline)).
		Blink(a.Has(tableview.AttrBlink)).
		Reverse(a.Has(tableview.AttrInverse)).
		StrikeThrough(a.Has(tableview.AttrStrikethrough))
}

// screenRenderer draws into a rectangle of a tcell screen, clipping at its
// edges.
type screenRenderer struct {
	screen              tcell.Screen
	x, y, width, height int
}

func (r screenRenderer) Print(x, y int, s string, style tableview.Style) {
	if y < 0 || y >= r.height {
		return
	}
	st := tcellStyle(style)
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(r.x+x, r.y+y, ch, nil, st)
		}
		x += w
	}
}

func (r screenRenderer) HLine(x, y, length int, ch rune, style tableview.Style) {
	if y < 0 || y >= r.height {
		return
	}
	st := tcellStyle(style)
	for i := max(x, 0); i < min(x+length, r.width); i++ {
		r.screen.SetContent(r.x+i, r.y+y, ch, nil, st)
	}
}
