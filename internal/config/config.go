// Package config loads settings from defaults, a TOML file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultFile       = "todos.list"
	DefaultTheme      = "classic"
	DefaultLogLevel   = "warn"
	DefaultConfigFile = ".todo.toml"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the full configuration for todo.
type Config struct {
	File        string `toml:"file"`
	Theme       string `toml:"theme"`
	LogLevel    string `toml:"log_level"`
	TUI         bool   `toml:"tui"`
	Group       bool   `toml:"group"`
	HistoryFile string `toml:"history_file"`

	// ConfigFile is the TOML file that was read, if any.
	ConfigFile string `toml:"-"`
}

// Defaults returns a config with every field at its default.
func Defaults() *Config {
	return &Config{
		File:     DefaultFile,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

// flagValues mirrors the flags so explicit ones can be applied last.
type flagValues struct {
	config, file, theme, logLevel, history string
	tui, group                             bool
}

// Load builds the configuration:
// 1. Defaults
// 2. TOML file (-config, or .todo.toml in the working directory)
// 3. Environment variables (TODO_FILE, TODO_THEME, TODO_LOG_LEVEL)
// 4. Flags that were set explicitly
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}
	cfg := Defaults()

	var fv flagValues
	fs.StringVar(&fv.config, "config", "", "path to a TOML config file")
	fs.StringVar(&fv.file, "file", cfg.File, "todo list file (.json selects JSON format)")
	fs.StringVar(&fv.theme, "theme", cfg.Theme, "color theme: "+strings.Join(Themes, ", "))
	fs.StringVar(&fv.logLevel, "log-level", cfg.LogLevel, "log level: "+strings.Join(logLevels, ", "))
	fs.StringVar(&fv.history, "history", "", "readline history file")
	fs.BoolVar(&fv.tui, "tui", false, "use the full-screen list view")
	fs.BoolVar(&fv.group, "group", false, "group output by pending/done")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := fv.config
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	loadFromEnv(cfg)

	if set["file"] {
		cfg.File = fv.file
	}
	if set["theme"] {
		cfg.Theme = fv.theme
	}
	if set["log-level"] {
		cfg.LogLevel = fv.logLevel
	}
	if set["history"] {
		cfg.HistoryFile = fv.history
	}
	if set["tui"] {
		cfg.TUI = fv.tui
	}
	if set["group"] {
		cfg.Group = fv.group
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes path over cfg. Unknown keys are an error so typos
// don't go unnoticed.
func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks for an empty list path and unknown names.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.File) == "" {
		errs = append(errs, errors.New("file: must not be empty"))
	}
	if !slices.Contains(Themes, strings.ToLower(c.Theme)) {
		errs = append(errs, fmt.Errorf("theme: unknown %q (want one of %s)", c.Theme, strings.Join(Themes, ", ")))
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("log_level: unknown %q (want one of %s)", c.LogLevel, strings.Join(logLevels, ", ")))
	}
	return errors.Join(errs...)
}
