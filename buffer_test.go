package tableview

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}

		// All cells should be empty
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				c := buf.Get(x, y)
				if c.Rune != ' ' {
					t.Errorf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			got := buf.InBounds(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', Style{FG: Cyan})

		buf.Set(5, 5, cell)
		if got := buf.Get(5, 5); got != cell {
			t.Errorf("got %+v, want %+v", got, cell)
		}

		// Out of bounds should return empty cell
		if oob := buf.Get(-1, -1); oob.Rune != ' ' {
			t.Error("expected empty cell for out of bounds")
		}
	})

	t.Run("Print", func(t *testing.T) {
		buf := NewBuffer(8, 1)
		style := Style{Attr: AttrBold}
		buf.Print(1, 0, "hello world", style)

		if got := buf.Line(0); got != " hello w" {
			t.Errorf("Line(0) = %q, want %q", got, " hello w")
		}
		if s := buf.Get(1, 0).Style; s != style {
			t.Errorf("style = %+v, want %+v", s, style)
		}
	})

	t.Run("PrintWide", func(t *testing.T) {
		buf := NewBuffer(5, 1)
		buf.Print(0, 0, "日本語", DefaultStyle())

		// the third rune would straddle the edge
		if got := buf.Line(0); got != "日本" {
			t.Errorf("Line(0) = %q, want %q", got, "日本")
		}
		if c := buf.Get(1, 0); c.Rune != 0 {
			t.Errorf("continuation cell = %q, want 0", c.Rune)
		}
	})

	t.Run("PrintOutsideRows", func(t *testing.T) {
		buf := NewBuffer(4, 1)
		buf.Print(0, 1, "x", DefaultStyle())
		buf.Print(0, -1, "x", DefaultStyle())
		if got := buf.String(); got != "    " {
			t.Errorf("String() = %q, want blank", got)
		}
	})

	t.Run("HLine", func(t *testing.T) {
		buf := NewBuffer(6, 2)
		buf.HLine(2, 1, 10, '─', DefaultStyle())
		if got := buf.Line(1); got != "  ────" {
			t.Errorf("Line(1) = %q", got)
		}
	})

	t.Run("StringTrimmed", func(t *testing.T) {
		buf := NewBuffer(5, 4)
		buf.Print(0, 0, "ab", DefaultStyle())
		buf.Print(1, 1, "c", DefaultStyle())
		if got, want := buf.StringTrimmed(), "ab\n c"; got != want {
			t.Errorf("StringTrimmed() = %q, want %q", got, want)
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(3, 3)
		buf.Print(0, 0, "abc", DefaultStyle())
		buf.Resize(4, 2)
		if buf.Width() != 4 || buf.Height() != 2 || buf.Line(0) != "" {
			t.Errorf("Resize left %dx%d %q", buf.Width(), buf.Height(), buf.Line(0))
		}
	})
}
