package teahost

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kungfusheep/tableview"
)

// lipglossColor converts a table color. ok is false for the terminal default.
func lipglossColor(c tableview.Color) (lipgloss.TerminalColor, bool) {
	switch c.Mode {
	case tableview.Color16, tableview.Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index))), true
	case tableview.ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	}
	return nil, false
}

// lipglossStyle converts a table style.
func lipglossStyle(s tableview.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if fg, ok := lipglossColor(s.FG); ok {
		ls = ls.Foreground(fg)
	}
	if bg, ok := lipglossColor(s.BG); ok {
		ls = ls.Background(bg)
	}
	a := s.Attr
	return ls.
		Bold(a.Has(tableview.AttrBold)).
		Faint(a.Has(tableview.AttrDim)).
		Italic(a.Has(tableview.AttrItalic)).
		Underline(a.Has(tableview.AttrUnderline)).
		Blink(a.Has(tableview.AttrBlink)).
		Reverse(a.Has(tableview.AttrInverse)).
		Strikethrough(a.Has(tableview.AttrStrikethrough))
}

// render turns the buffer into styled text, one lipgloss render per run of
// equally styled cells.
func render(buf *tableview.Buffer) string {
	styles := make(map[tableview.Style]lipgloss.Style)
	styleOf := func(s tableview.Style) lipgloss.Style {
		ls, ok := styles[s]
		if !ok {
			ls = lipglossStyle(s)
			styles[s] = ls
		}
		return ls
	}

	var out, run strings.Builder
	for y := 0; y < buf.Height(); y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var cur tableview.Style
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(styleOf(cur).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < buf.Width(); x++ {
			c := buf.Get(x, y)
			if c.Rune == 0 {
				continue
			}
			if c.Style != cur {
				flush()
				cur = c.Style
			}
			run.WriteRune(c.Rune)
		}
		flush()
	}
	return out.String()
}
