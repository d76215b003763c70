package tableview

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Renderer is the drawing surface a host hands to Table.Draw. Coordinates
// are relative to the table's top-left corner; output falling outside the
// surface must be clipped by the implementation.
type Renderer interface {
	Print(x, y int, s string, style Style)
	HLine(x, y, length int, r rune, style Style)
}

// printer offsets every call into a sub-region of a Renderer.
type printer struct {
	r    Renderer
	x, y int
}

func (p printer) sub(dx, dy int) printer {
	return printer{r: p.r, x: p.x + dx, y: p.y + dy}
}

func (p printer) print(x, y int, s string, style Style) {
	p.r.Print(p.x+x, p.y+y, s, style)
}

func (p printer) hline(x, y, length int, r rune, style Style) {
	if length <= 0 {
		return
	}
	p.r.HLine(p.x+x, p.y+y, length, r, style)
}
