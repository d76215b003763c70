package tableview

import "iter"

// Viewport tracks which slice of the rows is on screen.
type Viewport struct {
	offset        int
	viewHeight    int
	contentHeight int
}

// SetHeights sets the visible height and the number of rows, clamping the
// scroll offset to the new bounds.
func (v *Viewport) SetHeights(view, content int) {
	v.viewHeight = max(view, 0)
	v.contentHeight = max(content, 0)
	v.clamp()
}

// Offset returns the first visible row.
func (v *Viewport) Offset() int {
	return v.offset
}

// ViewHeight returns the number of visible lines.
func (v *Viewport) ViewHeight() int {
	return v.viewHeight
}

// ContentHeight returns the number of rows.
func (v *Viewport) ContentHeight() int {
	return v.contentHeight
}

// Scrollable reports whether the rows do not fit the view.
func (v *Viewport) Scrollable() bool {
	return v.contentHeight > v.viewHeight
}

func (v *Viewport) maxOffset() int {
	return max(v.contentHeight-v.viewHeight, 0)
}

func (v *Viewport) clamp() {
	v.offset = min(max(v.offset, 0), v.maxOffset())
}

// ScrollTo adjusts the offset so row is visible.
func (v *Viewport) ScrollTo(row int) {
	if row < v.offset {
		v.offset = row
	}
	if v.viewHeight > 0 && row >= v.offset+v.viewHeight {
		v.offset = row - v.viewHeight + 1
	}
	v.clamp()
}

// Visible yields (screen line, row) for every row on screen.
func (v *Viewport) Visible() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		end := min(v.offset+v.viewHeight, v.contentHeight)
		for row := v.offset; row < end; row++ {
			if !yield(row-v.offset, row) {
				return
			}
		}
	}
}

// drawScrollbar draws a track with a proportional thumb in column x.
func (v *Viewport) drawScrollbar(p printer, x int, style Style) {
	if !v.Scrollable() || v.viewHeight == 0 {
		return
	}
	thumb := max(v.viewHeight*v.viewHeight/v.contentHeight, 1)
	start := 0
	if span := v.maxOffset(); span > 0 {
		start = (v.viewHeight - thumb) * v.offset / span
	}
	for y := 0; y < v.viewHeight; y++ {
		r := "│"
		if y >= start && y < start+thumb {
			r = "█"
		}
		p.print(x, y, r, style)
	}
}
