// tabledemo shows a sortable process table under bubbletea or tview.
//
//	tabledemo                     interactive, bubbletea
//	tabledemo -host tview         interactive, tview
//	tabledemo -sort -mem -dump    print the table sorted by memory and exit
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/tview"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kungfusheep/tableview"
	"github.com/kungfusheep/tableview/internal/config"
	"github.com/kungfusheep/tableview/internal/logging"
	"github.com/kungfusheep/tableview/tcellhost"
	"github.com/kungfusheep/tableview/teahost"
)

type flags struct {
	config string
	host   string
	theme  string
	log    string
	sort   string
	count  int
	dump   bool
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "TOML configuration file")
	flag.StringVar(&f.host, "host", "", "toolkit to run under: tea or tview")
	flag.StringVar(&f.theme, "theme", "", "theme: default, dark, light or mono")
	flag.StringVar(&f.log, "log", "", "log file")
	flag.StringVar(&f.sort, "sort", "", "initial sort column (pid, name, user, cpu, mem); prefix with - for descending")
	flag.IntVar(&f.count, "n", 60, "number of sample processes")
	flag.BoolVar(&f.dump, "dump", false, "print the table and exit")
	flag.Parse()

	if err := run(f); err != nil {
		fmt.Fprintln(os.Stderr, "tabledemo:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(f flags) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return cfg, err
	}
	if f.host != "" {
		cfg.Host = f.host
	}
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.log != "" {
		cfg.Log.Filename = f.log
	}
	return cfg, cfg.Validate()
}

func run(f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tbl := newProcTable(sampleProcs(f.count), cfg.ThemeValue()).Logger(logger)
	if f.sort != "" {
		col, dir, err := parseSort(f.sort)
		if err != nil {
			return err
		}
		tbl.SortBy(col, dir)
	}
	tbl.SetOnSort(func(_ any, col procColumn, dir tableview.Direction) {
		logger.Info("sorted", zap.Int("column", int(col)), zap.Stringer("direction", dir))
	})

	if f.dump {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width = 0
		}
		return dump(os.Stdout, tbl, width)
	}

	switch cfg.Host {
	case "tview":
		return runTview(tbl, cfg, logger)
	default:
		return runTea(tbl, cfg, logger)
	}
}

func runTea(tbl *tableview.Table[proc, procColumn], cfg config.Config, logger *zap.Logger) error {
	km := teahost.DefaultKeyMap()
	if err := km.Apply(cfg.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	m := teahost.New(tbl,
		teahost.WithKeyMap(km),
		teahost.WithHelp(true),
		teahost.WithLogger(logger))

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func runTview(tbl *tableview.Table[proc, procColumn], cfg config.Config, logger *zap.Logger) error {
	km := tcellhost.DefaultKeyMap()
	if err := km.Apply(cfg.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	app := tview.NewApplication()
	view := tcellhost.New(tbl,
		tcellhost.WithKeyMap(km),
		tcellhost.WithHost(app),
		tcellhost.WithQuit(app.Stop),
		tcellhost.WithLogger(logger))
	view.SetBorder(true).SetTitle(" processes ")

	if err := app.SetRoot(view, true).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
