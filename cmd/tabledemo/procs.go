package main

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/kungfusheep/tableview"
)

type procColumn int

const (
	colPID procColumn = iota
	colName
	colUser
	colCPU
	colMem
)

var columnNames = map[string]procColumn{
	"pid":  colPID,
	"name": colName,
	"user": colUser,
	"cpu":  colCPU,
	"mem":  colMem,
}

type proc struct {
	PID    int
	Name   string
	User   string
	CPU    float64
	MemKB  int64
	Marked bool
}

func (p proc) ToColumn(c procColumn) string {
	switch c {
	case colPID:
		return strconv.Itoa(p.PID)
	case colName:
		if p.Marked {
			return "* " + p.Name
		}
		return p.Name
	case colUser:
		return p.User
	case colCPU:
		return strconv.FormatFloat(p.CPU, 'f', 1, 64)
	case colMem:
		return formatKB(p.MemKB)
	}
	return ""
}

func (p proc) Compare(o proc, c procColumn) int {
	switch c {
	case colPID:
		return cmp.Compare(p.PID, o.PID)
	case colName:
		return cmp.Compare(p.Name, o.Name)
	case colUser:
		return cmp.Compare(p.User, o.User)
	case colCPU:
		return cmp.Compare(p.CPU, o.CPU)
	case colMem:
		return cmp.Compare(p.MemKB, o.MemKB)
	}
	return 0
}

func formatKB(kb int64) string {
	switch {
	case kb >= 1<<20:
		return fmt.Sprintf("%.1fG", float64(kb)/(1<<20))
	case kb >= 1<<10:
		return fmt.Sprintf("%.1fM", float64(kb)/(1<<10))
	}
	return fmt.Sprintf("%dK", kb)
}

// parseSort reads "cpu" or "-cpu" (descending).
func parseSort(s string) (procColumn, tableview.Direction, error) {
	dir := tableview.SortAscending
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		s, dir = rest, tableview.SortDescending
	}
	c, ok := columnNames[strings.ToLower(s)]
	if !ok {
		return 0, tableview.SortNone, fmt.Errorf("sort column %q: unknown", s)
	}
	return c, dir, nil
}

var procNames = []string{
	"postgres", "nginx", "redis-server", "sshd", "systemd", "containerd",
	"dockerd", "node", "python3", "go", "gopls", "bash", "zsh", "tmux",
	"vim", "chrome", "firefox", "slack", "prometheus", "grafana",
}

var procUsers = []string{"root", "www-data", "postgres", "alice", "bob"}

// sampleProcs returns n deterministic process records.
func sampleProcs(n int) []proc {
	rng := rand.New(rand.NewPCG(1, 2))
	procs := make([]proc, n)
	for i := range procs {
		procs[i] = proc{
			PID:   100 + rng.IntN(30000),
			Name:  procNames[rng.IntN(len(procNames))],
			User:  procUsers[rng.IntN(len(procUsers))],
			CPU:   float64(rng.IntN(1000)) / 10,
			MemKB: int64(rng.IntN(4 << 20)),
		}
	}
	return procs
}

// newProcTable builds the demo table. Submitting a row marks or unmarks it.
func newProcTable(procs []proc, theme tableview.Theme) *tableview.Table[proc, procColumn] {
	tbl := tableview.New[proc, procColumn]().
		Column(colPID, "PID", tableview.Width(7), tableview.Aligned(tableview.AlignRight)).
		Column(colName, "Command").
		Column(colUser, "User", tableview.Percent(15)).
		Column(colCPU, "CPU%", tableview.Width(8), tableview.Aligned(tableview.AlignRight), tableview.Ordered(tableview.SortDescending)).
		Column(colMem, "Mem", tableview.Width(8), tableview.Aligned(tableview.AlignRight), tableview.Ordered(tableview.SortDescending)).
		Theme(theme).
		Items(procs)

	tbl.SetOnSubmit(func(_ any, _, index int) {
		tbl.UpdateItem(index, func(p *proc) { p.Marked = !p.Marked })
	})
	return tbl
}
