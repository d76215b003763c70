// Package logging builds the zap logger used by the demo program.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the [log] section of the configuration file.
type Config struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max_size"`
	MaxDays    int    `toml:"max_days"`
	MaxBackups int    `toml:"max_backups"`
}

// Default returns info level console logging with logging switched off
// until a filename is set.
func Default() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		MaxSize:    16,
		MaxDays:    7,
		MaxBackups: 3,
	}
}

func (c Config) level() (zap.AtomicLevel, error) {
	if c.Level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	lvl, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return lvl, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

func (c Config) encoder() (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	switch c.Format {
	case "", "console":
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	case "json":
		return zapcore.NewJSONEncoder(ec), nil
	}
	return nil, fmt.Errorf("log format %q: want console or json", c.Format)
}

func (c Config) syncer() zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxDays,
		MaxBackups: c.MaxBackups,
		LocalTime:  true,
	})
}

// Validate reports a bad level or format.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	_, err := c.encoder()
	return err
}

// New builds a logger writing to a rotated file. The terminal belongs to the
// UI, so without a filename the logger discards everything.
func New(c Config) (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	enc, err := c.encoder()
	if err != nil {
		return nil, err
	}
	if c.Filename == "" {
		return zap.NewNop(), nil
	}
	core := zapcore.NewCore(enc, c.syncer(), lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}
