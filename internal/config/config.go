// Package config loads the demo program's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kungfusheep/tableview"
	"github.com/kungfusheep/tableview/internal/logging"
)

// Hosts names the toolkits the demo can run under.
var Hosts = []string{"tea", "tview"}

// Config is the demo configuration.
type Config struct {
	Host  string `toml:"host"`
	Theme string `toml:"theme"`
	// Keys maps an action name to the keys bound to it, e.g.
	//	down = ["down", "j"]
	Keys map[string][]string `toml:"keys"`
	Log  logging.Config      `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Host:  "tea",
		Theme: "default",
		Log:   logging.Default(),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration held in memory.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

// Validate checks the host, theme and log settings.
func (c Config) Validate() error {
	var errs []error
	if !slices.Contains(Hosts, c.Host) {
		errs = append(errs, fmt.Errorf("host %q: want one of %s", c.Host, strings.Join(Hosts, ", ")))
	}
	if _, ok := tableview.ThemeByName(c.Theme); !ok {
		errs = append(errs, fmt.Errorf("theme %q: unknown", c.Theme))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ThemeValue returns the configured theme.
func (c Config) ThemeValue() tableview.Theme {
	t, _ := tableview.ThemeByName(c.Theme)
	return t
}
