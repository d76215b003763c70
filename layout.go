package tableview

const (
	separatorWidth = 3 // "┆ " plus the trailing cell space of the column before it
	scrollbarWidth = 2
	headerHeight   = 2 // title line and rule line
)

// ComputeWidths allocates a width to every column for a table of the given
// size showing itemCount rows.
//
// Separators take three cells between neighbouring columns and a scrollbar
// takes two when the rows overflow the body below the header. Sized columns are served first in
// display order, each capped at what is still unallocated; unsized columns
// split the remainder evenly. The widths plus separators never exceed
// size.Width.
func ComputeWidths(size Size, policies []WidthPolicy, itemCount int) []int {
	widths := make([]int, len(policies))
	if len(policies) == 0 {
		return widths
	}

	available := max(size.Width-(len(policies)-1)*separatorWidth, 0)
	if itemCount > size.Height-headerHeight {
		available = max(available-scrollbarWidth, 0)
	}

	remaining := available
	unsized := 0
	for i, p := range policies {
		if !p.sized() {
			unsized++
			continue
		}
		var w int
		switch p.Kind {
		case WidthPercent:
			w = (size.Width*p.Value + 99) / 100
		case WidthAbsolute:
			w = p.Value
		}
		w = min(w, remaining)
		widths[i] = w
		remaining -= w
	}

	if unsized == 0 {
		return widths
	}
	share := remaining / unsized
	for i, p := range policies {
		if !p.sized() {
			widths[i] = share
		}
	}
	return widths
}
