package tableview

import "go.uber.org/zap"

// pageSize is how far PageUp and PageDown move the focus.
const pageSize = 10

// OnEvent runs one key through the navigation state machine.
//
// In row mode Up/Down move the focus and Left/Right switch to column-select
// mode, where Left/Right pick a column, Enter sorts by it and Up/Down return
// to row mode. PageUp/PageDown/Home/End always leave column-select mode.
// Keys that have no effect are reported as not consumed.
func (t *Table[T, K]) OnEvent(k Key) Result {
	if !t.enabled {
		return Ignored()
	}

	last := t.focus
	wasSelecting := t.columnSelect

	switch k {
	case KeyRight, KeyLeft:
		if t.cols.len() == 0 {
			return t.ignore(k)
		}
		if !t.columnSelect {
			t.columnSelect = true
			t.cols.markActive()
			return Consumed(nil)
		}
		var moved bool
		if k == KeyRight {
			moved = t.cols.next()
		} else {
			moved = t.cols.prev()
		}
		if !moved {
			return t.ignore(k)
		}
		return Consumed(nil)

	case KeyUp:
		if t.columnSelect {
			t.columnCancel()
			return Consumed(nil)
		}
		if t.focus == 0 {
			return t.ignore(k)
		}
		t.focusUp(1)

	case KeyDown:
		if t.columnSelect {
			t.columnCancel()
			return Consumed(nil)
		}
		if t.focus+1 >= t.store.Len() {
			return t.ignore(k)
		}
		t.focusDown(1)

	case KeyPageUp:
		t.columnCancel()
		t.focusUp(pageSize)

	case KeyPageDown:
		t.columnCancel()
		t.focusDown(pageSize)

	case KeyHome:
		t.columnCancel()
		t.focus = 0

	case KeyEnd:
		t.columnCancel()
		t.focus = max(t.store.Len()-1, 0)

	case KeyEnter:
		if t.columnSelect {
			return t.commitSort()
		}
		if t.store.Len() == 0 {
			return t.ignore(k)
		}
		return Consumed(t.submitCallback())

	default:
		return t.ignore(k)
	}

	t.viewport.ScrollTo(t.focus)

	if t.store.Len() > 0 && t.focus != last {
		return Consumed(t.selectCallback())
	}
	if wasSelecting {
		return Consumed(nil)
	}
	return t.ignore(k)
}

func (t *Table[T, K]) ignore(k Key) Result {
	t.log.Debug("event ignored",
		zap.Stringer("key", k),
		zap.Int("focus", t.focus),
		zap.Bool("columnSelect", t.columnSelect),
	)
	return Ignored()
}

func (t *Table[T, K]) focusUp(n int) {
	t.focus -= min(t.focus, n)
}

func (t *Table[T, K]) focusDown(n int) {
	t.focus = max(min(t.focus+n, t.store.Len()-1), 0)
}

// columnCancel leaves column-select mode, pointing the selection back at the
// sort column.
func (t *Table[T, K]) columnCancel() {
	t.columnSelect = false
	t.cols.reset()
}

// commitSort sorts by the active column, toggling the direction when it is
// already the sort column. The table stays in column-select mode.
func (t *Table[T, K]) commitSort() Result {
	key, dir, ok := t.cols.commit()
	if !ok {
		return Ignored()
	}
	t.SortBy(key, dir)
	t.viewport.ScrollTo(t.focus)

	if t.onSort == nil {
		return Consumed(nil)
	}
	cb := t.onSort
	return Consumed(func(host any) { cb(host, key, dir) })
}

// The callbacks below capture row and index by value at event time.

func (t *Table[T, K]) submitCallback() Callback {
	if t.onSubmit == nil {
		return nil
	}
	cb := t.onSubmit
	row := t.focus
	index, _ := t.SelectedItem()
	return func(host any) { cb(host, row, index) }
}

func (t *Table[T, K]) selectCallback() Callback {
	if t.onSelect == nil {
		return nil
	}
	cb := t.onSelect
	row := t.focus
	index, _ := t.SelectedItem()
	return func(host any) { cb(host, row, index) }
}
