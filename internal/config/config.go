// Package config loads the StylusBoard settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"StylusBoard/internal/board"
	"StylusBoard/internal/export"
	"StylusBoard/internal/state"
	"StylusBoard/internal/store"
)

// Backends for the saved drawing.
const (
	BackendFile  = "file"
	BackendPrefs = "prefs"
)

// Config is the settings file. Unset keys keep their Default values.
type Config struct {
	Height      float64 `toml:"height"`
	Placeholder string  `toml:"placeholder"`
	ShowToolbar bool    `toml:"show_toolbar"`
	AutoExport  bool    `toml:"auto_export"`

	PenColor     string  `toml:"pen_color"`
	PenWidth     float64 `toml:"pen_width"`
	HistoryLimit int     `toml:"history_limit"`

	ExportPadding float64 `toml:"export_padding"`
	ExportScale   float64 `toml:"export_scale"`
	ExportErasure bool    `toml:"export_erasure"`
	ExportMaxSide int     `toml:"export_max_side"`

	// StateBackend is "file" to keep the drawing in StateDir, or "prefs"
	// to keep it in the desktop app's preferences.
	StateBackend string `toml:"state_backend"`
	StateDir     string `toml:"state_dir"`
	StateKey     string `toml:"state_key"`

	FeedAddr string `toml:"feed_addr"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		ShowToolbar:   true,
		PenColor:      "#000000",
		PenWidth:      3,
		ExportPadding: export.DefaultPadding,
		ExportScale:   1,
		ExportErasure: true,
		StateBackend:  BackendFile,
		StateDir:      store.DefaultDir(),
		StateKey:      store.DefaultKey,
		FeedAddr:      ":8888",
		LogLevel:      "info",
	}
}

// DefaultPath is config.toml in the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "stylusboard", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, len(strict.Errors))
			for i := range strict.Errors {
				keys[i] = strings.Join(strict.Errors[i].Key(), ".")
			}
			return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes c to path as TOML, creating the directory.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Height < 0 {
		errs = append(errs, fmt.Errorf("height must not be negative, got %v", c.Height))
	}
	if _, err := state.ParseColor(c.PenColor); err != nil {
		errs = append(errs, fmt.Errorf("pen_color: %w", err))
	}
	if c.PenWidth <= 0 {
		errs = append(errs, fmt.Errorf("pen_width must be positive, got %v", c.PenWidth))
	}
	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit))
	}
	if c.ExportPadding < 0 {
		errs = append(errs, fmt.Errorf("export_padding must not be negative, got %v", c.ExportPadding))
	}
	if c.ExportScale <= 0 {
		errs = append(errs, fmt.Errorf("export_scale must be positive, got %v", c.ExportScale))
	}
	if c.ExportMaxSide < 0 {
		errs = append(errs, fmt.Errorf("export_max_side must not be negative, got %d", c.ExportMaxSide))
	}
	switch c.StateBackend {
	case BackendFile:
		if c.StateDir == "" {
			errs = append(errs, errors.New("state_dir is required for the file backend"))
		}
	case BackendPrefs:
	default:
		errs = append(errs, fmt.Errorf("state_backend must be %q or %q, got %q", BackendFile, BackendPrefs, c.StateBackend))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// ExportOptions returns the export settings.
func (c Config) ExportOptions() export.Options {
	return export.Options{
		Padding: c.ExportPadding,
		Scale:   c.ExportScale,
		Erasure: c.ExportErasure,
		MaxSide: c.ExportMaxSide,
	}
}

// BoardOptions returns the mount options the settings describe, apart
// from the store. c must be valid.
func (c Config) BoardOptions() []board.Option {
	pen, _ := state.ParseColor(c.PenColor)
	return []board.Option{
		board.WithHeight(c.Height),
		board.WithPlaceholder(c.Placeholder),
		board.WithToolbar(c.ShowToolbar),
		board.WithAutoExport(c.AutoExport),
		board.WithPen(pen, c.PenWidth),
		board.WithHistoryLimit(c.HistoryLimit),
		board.WithExportOptions(c.ExportOptions()),
	}
}
