package tableview

import (
	"testing"
)

func fiveItems() []rec {
	return []rec{
		{name: "a", count: 5, rate: 1},
		{name: "b", count: 4, rate: 2},
		{name: "c", count: 3, rate: 3},
		{name: "d", count: 2, rate: 4},
		{name: "e", count: 1, rate: 5},
	}
}

func TestRowNavigation(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		key      Key
		want     int
		consumed bool
	}{
		{"down", 0, KeyDown, 1, true},
		{"down at bottom", 4, KeyDown, 4, false},
		{"up", 3, KeyUp, 2, true},
		{"up at top", 0, KeyUp, 0, false},
		{"page down clamps", 0, KeyPageDown, 4, true},
		{"page down at bottom", 4, KeyPageDown, 4, false},
		{"page up clamps", 3, KeyPageUp, 0, true},
		{"page up at top", 0, KeyPageUp, 0, false},
		{"home", 3, KeyHome, 0, true},
		{"home at top", 0, KeyHome, 0, false},
		{"end", 1, KeyEnd, 4, true},
		{"end at bottom", 4, KeyEnd, 4, false},
		{"unknown key", 2, KeyUnknown, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newTestTable().Items(fiveItems())
			tbl.SelectRow(tt.start)

			res := tbl.OnEvent(tt.key)
			if res.Consumed != tt.consumed {
				t.Errorf("Consumed = %v, want %v", res.Consumed, tt.consumed)
			}
			if got, _ := tbl.SelectedRow(); got != tt.want {
				t.Errorf("SelectedRow() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEmptyTableEvents(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyPageUp, KeyPageDown, KeyHome, KeyEnd, KeyEnter} {
		tbl := newTestTable()
		if res := tbl.OnEvent(k); res.Consumed {
			t.Errorf("OnEvent(%v) on empty table consumed", k)
		}
	}
}

func TestSelectNotification(t *testing.T) {
	type call struct{ row, index int }
	var calls []call

	tbl := newTestTable().Items([]rec{{name: "b"}, {name: "a"}}).
		OnSelect(func(host any, row, index int) {
			calls = append(calls, call{row, index})
			if host != "host" {
				t.Errorf("host = %v, want host", host)
			}
		})

	res := tbl.OnEvent(KeyDown)
	if !res.Consumed || res.Callback == nil {
		t.Fatalf("expected consumed event with callback, got %+v", res)
	}

	// the callback carries the focus at event time, not a live view
	tbl.SelectRow(0)
	res.Run("host")

	if len(calls) != 1 || calls[0] != (call{row: 1, index: 0}) {
		t.Errorf("calls = %+v, want [{1 0}]", calls)
	}
}

func TestSubmitNotification(t *testing.T) {
	var gotRow, gotIndex = -1, -1
	tbl := newTestTable().Items([]rec{{name: "b"}, {name: "a"}}).
		OnSubmit(func(_ any, row, index int) { gotRow, gotIndex = row, index })

	res := tbl.OnEvent(KeyEnter)
	if !res.Consumed {
		t.Fatal("Enter not consumed")
	}
	res.Run(nil)
	if gotRow != 0 || gotIndex != 1 {
		t.Errorf("submit(%d, %d), want (0, 1)", gotRow, gotIndex)
	}

	// without a handler Enter is still handled
	plain := newTestTable().Items([]rec{{name: "a"}})
	if res := plain.OnEvent(KeyEnter); !res.Consumed || res.Callback != nil {
		t.Errorf("Enter without handler = %+v", res)
	}
}

func TestColumnSelectMode(t *testing.T) {
	tbl := newTestTable().Items(fiveItems())
	tbl.SelectRow(2)

	if res := tbl.OnEvent(KeyRight); !res.Consumed || !tbl.InColumnSelect() {
		t.Fatal("Right did not enter column-select mode")
	}
	if active := tbl.cols.active(); active != 0 {
		t.Errorf("active column = %d, want 0 (the sort column)", active)
	}

	if res := tbl.OnEvent(KeyRight); !res.Consumed {
		t.Error("Right to column 1 not consumed")
	}
	if res := tbl.OnEvent(KeyRight); !res.Consumed {
		t.Error("Right to column 2 not consumed")
	}
	if res := tbl.OnEvent(KeyRight); res.Consumed {
		t.Error("Right past last column consumed")
	}
	if active := tbl.cols.active(); active != 2 {
		t.Errorf("active column = %d, want 2", active)
	}

	// Up leaves column-select without moving the focus
	if res := tbl.OnEvent(KeyUp); !res.Consumed || tbl.InColumnSelect() {
		t.Error("Up did not leave column-select mode")
	}
	if row, _ := tbl.SelectedRow(); row != 2 {
		t.Errorf("SelectedRow() = %d, want 2", row)
	}
	if active := tbl.cols.active(); active != 0 {
		t.Errorf("active column after cancel = %d, want 0", active)
	}

	tbl.OnEvent(KeyLeft)
	if res := tbl.OnEvent(KeyLeft); res.Consumed {
		t.Error("Left past first column consumed")
	}
}

func TestColumnSelectStartsAtSortColumn(t *testing.T) {
	tbl := newTestTable().Items(fiveItems())
	tbl.SortBy(colRate, SortAscending)
	tbl.OnEvent(KeyLeft)
	if active := tbl.cols.active(); active != 2 {
		t.Errorf("active column = %d, want 2", active)
	}

	tbl.SortBy(colRate, SortNone)
	tbl.OnEvent(KeyDown)
	tbl.OnEvent(KeyLeft)
	if active := tbl.cols.active(); active != 0 {
		t.Errorf("active column without sort = %d, want 0", active)
	}
}

func TestPageKeysLeaveColumnSelect(t *testing.T) {
	for _, k := range []Key{KeyPageUp, KeyPageDown, KeyHome, KeyEnd} {
		tbl := newTestTable().Items(fiveItems())
		tbl.OnEvent(KeyRight)
		res := tbl.OnEvent(k)
		if tbl.InColumnSelect() {
			t.Errorf("%v left table in column-select mode", k)
		}
		if !res.Consumed {
			t.Errorf("%v not consumed", k)
		}
	}
}

func TestCommitSort(t *testing.T) {
	type sortCall struct {
		key col
		dir Direction
	}
	var calls []sortCall

	tbl := newTestTable().Items(fiveItems()).
		OnSort(func(_ any, key col, dir Direction) { calls = append(calls, sortCall{key, dir}) })
	tbl.SelectItem(4) // e

	enter := func() {
		t.Helper()
		res := tbl.OnEvent(KeyEnter)
		if !res.Consumed {
			t.Fatal("Enter not consumed")
		}
		res.Run(nil)
	}

	tbl.OnEvent(KeyRight) // column-select on Name
	enter()               // same column: ascending -> descending
	if key, dir, _ := tbl.Sort(); key != colName || dir != SortDescending {
		t.Errorf("Sort() = %v %v, want colName descending", key, dir)
	}
	if !tbl.InColumnSelect() {
		t.Error("commit left column-select mode")
	}

	enter() // toggles back
	if _, dir, _ := tbl.Sort(); dir != SortAscending {
		t.Errorf("direction = %v, want ascending", dir)
	}

	tbl.OnEvent(KeyRight)
	tbl.OnEvent(KeyRight) // Rate, default descending
	enter()
	key, dir, _ := tbl.Sort()
	if key != colRate || dir != SortDescending {
		t.Errorf("Sort() = %v %v, want colRate descending", key, dir)
	}
	for _, c := range tbl.Columns() {
		if c.Key != colRate && c.Order != SortNone {
			t.Errorf("column %v still sorted %v", c.Key, c.Order)
		}
	}

	want := []sortCall{
		{colName, SortDescending},
		{colName, SortAscending},
		{colRate, SortDescending},
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, calls[i], want[i])
		}
	}

	// e has the highest rate and stays focused
	if idx, _ := tbl.SelectedItem(); idx != 4 {
		t.Errorf("SelectedItem() = %d, want 4", idx)
	}
	if row, _ := tbl.SelectedRow(); row != 0 {
		t.Errorf("SelectedRow() = %d, want 0", row)
	}
}

func TestNoColumnsIgnoresHorizontalKeys(t *testing.T) {
	tbl := New[rec, col]().Items([]rec{{name: "a"}})
	for _, k := range []Key{KeyLeft, KeyRight} {
		if res := tbl.OnEvent(k); res.Consumed {
			t.Errorf("%v consumed without columns", k)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"up", KeyUp, true},
		{"Down", KeyDown, true},
		{"pgup", KeyPageUp, true},
		{"pgdn", KeyPageDown, true},
		{"pgdown", KeyPageDown, true},
		{"enter", KeyEnter, true},
		{"unknown", KeyUnknown, false},
		{"space", KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKey(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
		if ok && got.String() != tt.want.String() {
			t.Errorf("round trip %q", tt.name)
		}
	}
}
