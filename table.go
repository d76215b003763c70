package tableview

import (
	"iter"

	"go.uber.org/zap"
)

// Item is the contract a record type must satisfy to be shown in a table
// whose columns are identified by keys of type K. Both methods must be pure.
type Item[T any, K comparable] interface {
	// ToColumn returns the text shown for the record in column.
	ToColumn(column K) string
	// Compare orders the record against other by column, returning a
	// negative number, zero or a positive number.
	Compare(other T, column K) int
}

// Table is a sortable multi-column list of records of type T.
//
// Records are addressed by storage index, their position in insertion order,
// which does not change when the table is sorted. The row a record is drawn
// on is its display row.
//
//	t := tableview.New[Proc, Col]().
//	    Column(ColName, "Name", tableview.Width(20)).
//	    Column(ColCPU, "CPU", tableview.Aligned(tableview.AlignRight), tableview.Ordered(tableview.SortDescending)).
//	    DefaultColumn(ColName).
//	    Items(procs)
//
// A Table is not safe for concurrent use; the host delivers events, layout
// and draw calls from one goroutine.
type Table[T Item[T, K], K comparable] struct {
	enabled  bool
	viewport Viewport
	lastSize Size
	stale    bool // widths must be recomputed on the next Layout

	columnSelect bool
	cols         columns[K]

	focus int
	store Store[T]

	theme Theme
	log   *zap.Logger

	onSort   SortHandler[K]
	onSubmit RowHandler
	onSelect RowHandler
}

// New creates an empty table without any columns.
func New[T Item[T, K], K comparable]() *Table[T, K] {
	return &Table[T, K]{
		enabled: true,
		stale:   true,
		cols:    newColumns[K](),
		theme:   ThemeDefault,
		log:     zap.NewNop(),
	}
}

// Column adds a column identified by key. The first column added becomes
// the default sort column. Adding a key that is already registered does
// nothing.
func (t *Table[T, K]) Column(key K, title string, opts ...ColumnOption) *Table[T, K] {
	if !t.cols.add(newColumn(key, title, opts)) {
		t.log.Debug("duplicate column ignored", zap.Any("column", key))
		return t
	}
	t.stale = true
	if t.cols.len() == 1 {
		return t.DefaultColumn(key)
	}
	return t
}

// DefaultColumn makes key the sort column using the column's default
// direction. Unknown keys are ignored.
func (t *Table[T, K]) DefaultColumn(key K) *Table[T, K] {
	if i, ok := t.cols.position(key); ok {
		t.SortBy(key, t.cols.list[i].defaultOrder)
	}
	return t
}

// Theme sets the styles used when drawing.
func (t *Table[T, K]) Theme(theme Theme) *Table[T, K] {
	t.theme = theme
	return t
}

// Logger sets the logger used for debug output. A nil logger disables it.
func (t *Table[T, K]) Logger(l *zap.Logger) *Table[T, K] {
	if l == nil {
		l = zap.NewNop()
	}
	t.log = l
	return t
}

// Items sets the records of the table. Chainable variant of SetItems.
func (t *Table[T, K]) Items(items []T) *Table[T, K] {
	t.SetItems(items)
	return t
}

// OnSort sets the sort handler. Chainable variant of SetOnSort.
func (t *Table[T, K]) OnSort(fn SortHandler[K]) *Table[T, K] {
	t.SetOnSort(fn)
	return t
}

// OnSubmit sets the submit handler. Chainable variant of SetOnSubmit.
func (t *Table[T, K]) OnSubmit(fn RowHandler) *Table[T, K] {
	t.SetOnSubmit(fn)
	return t
}

// OnSelect sets the select handler. Chainable variant of SetOnSelect.
func (t *Table[T, K]) OnSelect(fn RowHandler) *Table[T, K] {
	t.SetOnSelect(fn)
	return t
}

// SetOnSort sets a handler run after the user sorts by a column.
func (t *Table[T, K]) SetOnSort(fn SortHandler[K]) {
	t.onSort = fn
}

// SetOnSubmit sets a handler run when Enter is pressed on a row. It
// receives the display row and the storage index of the record.
func (t *Table[T, K]) SetOnSubmit(fn RowHandler) {
	t.onSubmit = fn
}

// SetOnSelect sets a handler run when keyboard navigation moves the focus.
// It receives the display row and the storage index of the record.
func (t *Table[T, K]) SetOnSelect(fn RowHandler) {
	t.onSelect = fn
}

// Disable disables the table. A disabled table cannot take focus.
func (t *Table[T, K]) Disable() {
	t.enabled = false
}

// Enable re-enables the table.
func (t *Table[T, K]) Enable() {
	t.enabled = true
}

// SetEnabled enables or disables the table.
func (t *Table[T, K]) SetEnabled(enabled bool) {
	t.enabled = enabled
}

// IsEnabled reports whether the table is enabled.
func (t *Table[T, K]) IsEnabled() bool {
	return t.enabled
}

// InColumnSelect reports whether directional keys currently move between
// columns instead of rows.
func (t *Table[T, K]) InColumnSelect() bool {
	return t.columnSelect
}

// ----------------------------------------------------------------------------
// sorting
// ----------------------------------------------------------------------------

// SortBy sorts the rows by column key in direction dir and makes key the
// only column with a sort state. SortNone restores storage order. Unknown
// keys are ignored. The focused record stays focused.
func (t *Table[T, K]) SortBy(key K, dir Direction) {
	if _, ok := t.cols.position(key); !ok {
		t.log.Debug("sort by unknown column ignored", zap.Any("column", key))
		return
	}
	if dir == SortNone {
		for _, c := range t.cols.list {
			c.order = SortNone
			c.selected = false
		}
	} else {
		t.cols.setOrder(key, dir)
	}
	t.sortItems(key, dir)
}

// Sort returns the column currently driving display order and its
// direction. ok is false when the rows are in storage order.
func (t *Table[T, K]) Sort() (key K, dir Direction, ok bool) {
	c, _, ok := t.cols.sorted()
	if !ok {
		return key, SortNone, false
	}
	return c.key, c.order, true
}

func (t *Table[T, K]) sortItems(key K, dir Direction) {
	if t.store.Len() == 0 {
		return
	}
	selected, _ := t.SelectedItem()
	switch dir {
	case SortAscending:
		t.store.SortFunc(func(a, b T) int { return a.Compare(b, key) })
	case SortDescending:
		t.store.SortFunc(func(a, b T) int { return b.Compare(a, key) })
	default:
		t.store.resetRefs()
	}
	t.SelectItem(selected)
	t.log.Debug("sorted",
		zap.Any("column", key),
		zap.Stringer("direction", dir),
		zap.Int("items", t.store.Len()),
	)
}

// resort re-applies the active sort, if any.
func (t *Table[T, K]) resort() {
	if key, dir, ok := t.Sort(); ok {
		t.sortItems(key, dir)
	}
}

// ----------------------------------------------------------------------------
// items
// ----------------------------------------------------------------------------

// Len returns the number of records.
func (t *Table[T, K]) Len() int {
	return t.store.Len()
}

// IsEmpty reports whether the table has no records.
func (t *Table[T, K]) IsEmpty() bool {
	return t.store.Len() == 0
}

// SetItems replaces all records. Storage order follows items; the display
// order follows the active sort.
func (t *Table[T, K]) SetItems(items []T) {
	t.store.Set(items)
	t.focus = min(t.focus, max(len(items)-1, 0))
	t.itemsChanged()
	t.resort()
}

// InsertItem appends a record to storage and returns its storage index.
// The record is placed in display order according to the active sort.
func (t *Table[T, K]) InsertItem(item T) int {
	idx := t.store.Insert(item)
	t.itemsChanged()
	t.resort()
	return idx
}

// RemoveItem removes the record at storage index and returns it. Storage
// indices above index shift down by one. If the record was focused, focus
// moves up one row; otherwise it stays on the record it was on.
func (t *Table[T, K]) RemoveItem(index int) (T, bool) {
	if index < 0 || index >= t.store.Len() {
		t.log.Debug("remove out of range", zap.Int("index", index), zap.Int("items", t.store.Len()))
		var zero T
		return zero, false
	}

	selected, _ := t.SelectedItem()
	if selected == index {
		t.focusUp(1)
	}
	item, _ := t.store.Remove(index)
	t.focus = min(t.focus, max(t.store.Len()-1, 0))
	t.itemsChanged()
	if selected != index {
		if selected > index {
			selected--
		}
		t.SelectItem(selected)
	} else {
		t.viewport.ScrollTo(t.focus)
	}
	return item, true
}

// ReplaceItem swaps the record at storage index for item, keeping its
// storage index, and re-applies the active sort. Returns false when index is
// out of range.
func (t *Table[T, K]) ReplaceItem(index int, item T) bool {
	if _, ok := t.store.Replace(index, item); !ok {
		return false
	}
	t.resort()
	return true
}

// Item returns the record at storage index.
func (t *Table[T, K]) Item(index int) (T, bool) {
	return t.store.Get(index)
}

// UpdateItem calls fn with a pointer to the record at storage index. The
// display order is not re-sorted; use ReplaceItem when the change affects
// the sort column.
func (t *Table[T, K]) UpdateItem(index int, fn func(*T)) bool {
	p := t.store.ptr(index)
	if p == nil {
		return false
	}
	fn(p)
	return true
}

// TakeItems removes every record and returns them in storage order.
func (t *Table[T, K]) TakeItems() []T {
	t.focus = 0
	t.viewport.ScrollTo(0)
	items := t.store.Take()
	t.itemsChanged()
	return items
}

// Clear removes every record.
func (t *Table[T, K]) Clear() {
	t.TakeItems()
}

// Rows yields (display row, record) in display order.
func (t *Table[T, K]) Rows() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for row, ref := range t.store.refs {
			if !yield(row, t.store.items[ref]) {
				return
			}
		}
	}
}

// Columns returns a snapshot of the columns in display order.
func (t *Table[T, K]) Columns() []ColumnInfo[K] {
	return t.cols.infos()
}

// itemsChanged keeps the viewport in step with the row count and makes the
// next Layout recompute widths, since a scrollbar may appear or disappear.
func (t *Table[T, K]) itemsChanged() {
	t.viewport.SetHeights(t.lastSize.Height-headerHeight, t.store.Len())
	t.stale = true
}

// ----------------------------------------------------------------------------
// selection
// ----------------------------------------------------------------------------

// SelectedItem returns the storage index of the focused record.
func (t *Table[T, K]) SelectedItem() (int, bool) {
	if t.store.Len() == 0 {
		return -1, false
	}
	return t.store.Ref(t.focus)
}

// SelectItem focuses the row showing the record at storage index. Unknown
// indices are ignored.
func (t *Table[T, K]) SelectItem(index int) {
	if row, ok := t.store.RowOf(index); ok {
		t.focus = row
		t.viewport.ScrollTo(row)
	}
}

// SelectedRow returns the focused display row.
func (t *Table[T, K]) SelectedRow() (int, bool) {
	if t.store.Len() == 0 {
		return -1, false
	}
	return t.focus, true
}

// SelectRow focuses a display row, clamped to the rows that exist.
func (t *Table[T, K]) SelectRow(row int) {
	if t.store.Len() == 0 {
		return
	}
	t.focus = min(max(row, 0), t.store.Len()-1)
	t.viewport.ScrollTo(t.focus)
}

// ----------------------------------------------------------------------------
// layout
// ----------------------------------------------------------------------------

// TakeFocus reports whether the table accepts keyboard focus.
func (t *Table[T, K]) TakeFocus() bool {
	return t.enabled && t.store.Len() > 0
}

// Layout fits the columns and the viewport to size. Nothing is recomputed
// when neither the size nor the rows or columns changed since the last call.
func (t *Table[T, K]) Layout(size Size) {
	if size == t.lastSize && !t.stale {
		return
	}
	widths := ComputeWidths(size, t.cols.policies(), t.store.Len())
	for i, c := range t.cols.list {
		c.width = widths[i]
	}
	t.viewport.SetHeights(size.Height-headerHeight, t.store.Len())
	t.viewport.ScrollTo(t.focus)
	t.lastSize = size
	t.stale = false
	t.log.Debug("layout",
		zap.Int("width", size.Width),
		zap.Int("height", size.Height),
		zap.Ints("columns", widths),
	)
}
