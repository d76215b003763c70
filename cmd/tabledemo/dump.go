package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/kungfusheep/tableview"
)

var twAlign = map[tableview.Align]tw.Align{
	tableview.AlignLeft:   tw.AlignLeft,
	tableview.AlignCenter: tw.AlignCenter,
	tableview.AlignRight:  tw.AlignRight,
}

// dump writes the table in display order as plain text, limited to
// maxWidth cells when positive.
func dump[T tableview.Item[T, K], K comparable](w io.Writer, tbl *tableview.Table[T, K], maxWidth int) error {
	cols := tbl.Columns()
	header := make([]any, len(cols))
	aligns := make([]tw.Align, len(cols))
	for i, c := range cols {
		title := c.Title
		switch c.Order {
		case tableview.SortAscending:
			title += " ^"
		case tableview.SortDescending:
			title += " v"
		}
		header[i] = title
		aligns[i] = twAlign[c.Align]
	}

	table := tablewriter.NewTable(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.MaxWidth = maxWidth
		cfg.Header.Formatting.AutoFormat = tw.Off
		cfg.Row.Alignment.PerColumn = aligns
	})
	table.Header(header...)

	for _, item := range tbl.Rows() {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = item.ToColumn(c.Key)
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("dump row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}
