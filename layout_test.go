package tableview

import (
	"slices"
	"testing"
)

func TestComputeWidths(t *testing.T) {
	unsized := WidthPolicy{}
	abs := func(n int) WidthPolicy { return WidthPolicy{Kind: WidthAbsolute, Value: n} }
	pct := func(n int) WidthPolicy { return WidthPolicy{Kind: WidthPercent, Value: n} }

	tests := []struct {
		name     string
		size     Size
		policies []WidthPolicy
		items    int
		want     []int
	}{
		{"no columns", Size{40, 10}, nil, 0, []int{}},
		{"even split", Size{23, 10}, []WidthPolicy{unsized, unsized}, 0, []int{10, 10}},
		{"split rounds down", Size{24, 10}, []WidthPolicy{unsized, unsized}, 0, []int{10, 10}},
		{"mixed with scrollbar", Size{40, 10}, []WidthPolicy{abs(5), unsized, pct(50)}, 20, []int{5, 7, 20}},
		{"percent rounds up", Size{10, 10}, []WidthPolicy{pct(33), unsized}, 0, []int{4, 3}},
		{"absolute capped", Size{50, 10}, []WidthPolicy{abs(100)}, 0, []int{50}},
		{"later sized columns starve", Size{20, 10}, []WidthPolicy{abs(15), abs(10)}, 0, []int{15, 2}},
		{"too narrow for separators", Size{2, 10}, []WidthPolicy{unsized, unsized, unsized}, 0, []int{0, 0, 0}},
		{"rows fill the body", Size{10, 5}, []WidthPolicy{unsized}, 3, []int{10}},
		{"scrollbar reserved", Size{10, 5}, []WidthPolicy{unsized}, 4, []int{8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWidths(tt.size, tt.policies, tt.items)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ComputeWidths(%v) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestComputeWidthsNeverOverflow(t *testing.T) {
	configs := [][]WidthPolicy{
		{{}},
		{{Kind: WidthAbsolute, Value: 30}, {}},
		{{Kind: WidthPercent, Value: 80}, {Kind: WidthPercent, Value: 80}},
		{{Kind: WidthPercent, Value: 100}, {}, {Kind: WidthAbsolute, Value: 7}},
		{{}, {}, {}, {}},
	}

	for _, policies := range configs {
		for width := 0; width <= 80; width++ {
			for _, items := range []int{0, 3, 50} {
				got := ComputeWidths(Size{width, 10}, policies, items)
				sum := 0
				for _, w := range got {
					if w < 0 {
						t.Fatalf("negative width %v for %v at %d", got, policies, width)
					}
					sum += w
				}
				if limit := max(width-(len(policies)-1)*separatorWidth, 0); sum > limit {
					t.Errorf("width %d policies %v items %d: sum %d exceeds %d", width, policies, items, sum, limit)
				}
			}
		}
	}
}

func TestLayoutCachesSize(t *testing.T) {
	tbl := newTestTable().Items(fiveItems())
	tbl.Layout(Size{40, 10})
	before := tbl.Columns()

	// a column changed behind Layout's back is only recomputed when something changed
	tbl.cols.list[1].width = 99
	tbl.Layout(Size{40, 10})
	if tbl.Columns()[1].Width != 99 {
		t.Error("Layout recomputed without a size change")
	}

	tbl.Layout(Size{41, 10})
	if w := tbl.Columns()[1].Width; w == 99 || w < before[1].Width {
		t.Errorf("Layout did not recompute on resize, width %d", w)
	}

	tbl.cols.list[1].width = 99
	tbl.InsertItem(rec{name: "f"})
	tbl.Layout(Size{41, 10})
	if tbl.Columns()[1].Width == 99 {
		t.Error("Layout did not recompute after items changed")
	}
}

func TestLayoutViewport(t *testing.T) {
	tbl := newTestTable().Items(fiveItems())
	tbl.Layout(Size{30, 4})

	if h := tbl.viewport.ViewHeight(); h != 2 {
		t.Errorf("view height = %d, want 2", h)
	}
	if !tbl.viewport.Scrollable() {
		t.Error("expected scrollable viewport")
	}

	tbl.OnEvent(KeyEnd)
	if off := tbl.viewport.Offset(); off != 3 {
		t.Errorf("offset = %d, want 3", off)
	}
	tbl.OnEvent(KeyHome)
	if off := tbl.viewport.Offset(); off != 0 {
		t.Errorf("offset = %d, want 0", off)
	}
}
