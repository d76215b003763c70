package tableview

// columns is the ordered column registry. Position in list is display order;
// index maps a key back to its position.
type columns[K comparable] struct {
	list  []*column[K]
	index map[K]int
}

func newColumns[K comparable]() columns[K] {
	return columns[K]{index: make(map[K]int)}
}

func (cs *columns[K]) len() int {
	return len(cs.list)
}

// add appends a column. A key that is already registered is ignored so keys
// stay unique. Reports whether the column was added.
func (cs *columns[K]) add(c *column[K]) bool {
	if _, ok := cs.index[c.key]; ok {
		return false
	}
	cs.index[c.key] = len(cs.list)
	cs.list = append(cs.list, c)
	return true
}

func (cs *columns[K]) position(key K) (int, bool) {
	i, ok := cs.index[key]
	return i, ok
}

// setDefault makes key the sort column using its configured default
// direction and clears every other column.
func (cs *columns[K]) setDefault(key K) bool {
	i, ok := cs.index[key]
	if !ok {
		return false
	}
	return cs.setOrder(key, cs.list[i].defaultOrder)
}

// setOrder marks key as the one sorted column with direction d. At most one
// column carries a direction afterwards.
func (cs *columns[K]) setOrder(key K, d Direction) bool {
	if _, ok := cs.index[key]; !ok {
		return false
	}
	for _, c := range cs.list {
		c.selected = c.key == key
		if c.selected {
			c.order = d
		} else {
			c.order = SortNone
		}
	}
	return true
}

// sorted returns the column currently driving display order.
func (cs *columns[K]) sorted() (*column[K], int, bool) {
	for i, c := range cs.list {
		if c.order != SortNone {
			return c, i, true
		}
	}
	return nil, 0, false
}

// active is the position of the selected column, or 0.
func (cs *columns[K]) active() int {
	for i, c := range cs.list {
		if c.selected {
			return i
		}
	}
	return 0
}

// markActive selects the sort column, or the first column when nothing is
// sorted, as the starting point for column-select mode.
func (cs *columns[K]) markActive() {
	if len(cs.list) == 0 {
		return
	}
	_, cur, _ := cs.sorted()
	for i, c := range cs.list {
		c.selected = i == cur
	}
}

// reset restores the selection flags to follow the sort column.
func (cs *columns[K]) reset() {
	for _, c := range cs.list {
		c.selected = c.order != SortNone
	}
}

func (cs *columns[K]) next() bool {
	i := cs.active()
	if i >= len(cs.list)-1 {
		return false
	}
	cs.list[i].selected = false
	cs.list[i+1].selected = true
	return true
}

func (cs *columns[K]) prev() bool {
	i := cs.active()
	if i == 0 || len(cs.list) == 0 {
		return false
	}
	cs.list[i].selected = false
	cs.list[i-1].selected = true
	return true
}

// commit picks the direction for sorting by the active column: its default
// when it is not the current sort column, otherwise the current direction
// toggled.
func (cs *columns[K]) commit() (K, Direction, bool) {
	var zero K
	if len(cs.list) == 0 {
		return zero, SortNone, false
	}
	next := cs.list[cs.active()]
	cur, _, ok := cs.sorted()
	if !ok || cur != next {
		return next.key, next.defaultOrder, true
	}
	return next.key, cur.order.Toggle(), true
}

func (cs *columns[K]) policies() []WidthPolicy {
	out := make([]WidthPolicy, len(cs.list))
	for i, c := range cs.list {
		out[i] = c.request
	}
	return out
}

func (cs *columns[K]) infos() []ColumnInfo[K] {
	out := make([]ColumnInfo[K], len(cs.list))
	for i, c := range cs.list {
		out[i] = c.info()
	}
	return out
}
