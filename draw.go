package tableview

// Draw renders the header, the rule line under it and the visible rows.
// Call Layout first so the columns have widths.
func (t *Table[T, K]) Draw(r Renderer) {
	p := printer{r: r}
	base := t.style(RolePrimary)

	t.drawColumns(p, "╷ ", base, func(p printer, c *column[K]) {
		c.drawHeader(p, t.headerStyle(c))
	})

	t.drawColumns(p.sub(0, 1), "┴─", base, func(p printer, c *column[K]) {
		p.hline(0, 0, c.width+1, '─', base)
	})

	body := p.sub(0, headerHeight)
	for line, row := range t.viewport.Visible() {
		item, ok := t.store.At(row)
		if !ok {
			break
		}
		style := t.rowStyle(row)
		t.drawColumns(body.sub(0, line), "┆ ", style, func(p printer, c *column[K]) {
			c.drawRow(p, item.ToColumn(c.key), style)
		})
	}

	if t.viewport.Scrollable() && t.lastSize.Width > 0 {
		t.viewport.drawScrollbar(body, t.lastSize.Width-1, base)
	}
}

// drawColumns calls draw for every column at its horizontal offset and puts
// sep between neighbours.
func (t *Table[T, K]) drawColumns(p printer, sep string, sepStyle Style, draw func(printer, *column[K])) {
	offset := 0
	n := t.cols.len()
	for i, c := range t.cols.list {
		draw(p.sub(offset, 0), c)
		if i < n-1 {
			p.print(offset+c.width+1, 0, sep, sepStyle)
		}
		offset += c.width + separatorWidth
	}
}

// style resolves a role, forcing the secondary role while disabled.
func (t *Table[T, K]) style(r Role) Style {
	if !t.enabled {
		return t.theme.Style(RoleSecondary)
	}
	return t.theme.Style(r)
}

func (t *Table[T, K]) headerStyle(c *column[K]) Style {
	switch {
	case t.columnSelect && c.selected:
		return t.style(RoleHighlight)
	case c.order != SortNone || c.selected:
		return t.style(RoleHighlightInactive)
	default:
		return t.style(RolePrimary)
	}
}

func (t *Table[T, K]) rowStyle(row int) Style {
	switch {
	case row != t.focus:
		return t.style(RolePrimary)
	case t.columnSelect:
		return t.style(RoleHighlightInactive)
	default:
		return t.style(RoleHighlight)
	}
}
