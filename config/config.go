// Package config loads termhost settings from a TOML file.
package config

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termhost/engine"
	"github.com/lixenwraith/termhost/input"
	"github.com/lixenwraith/termhost/terminal"
)

const (
	DefaultLogDir = "logs"

	minTickInterval = time.Millisecond
	maxTickInterval = 10 * time.Second
)

// Config is the validated runtime configuration
type Config struct {
	TickInterval   time.Duration
	ExitKey        input.KeyCode
	ColorMode      terminal.ColorMode
	MouseCapture   bool
	BracketedPaste bool
	ReportFocus    bool
	Log            LogConfig
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool
	Dir   string
}

// fileConfig mirrors the on-disk layout
type fileConfig struct {
	TickInterval   string  `toml:"tick_interval"`
	ExitKey        string  `toml:"exit_key"`
	ColorMode      string  `toml:"color_mode"`
	MouseCapture   bool    `toml:"mouse_capture"`
	BracketedPaste bool    `toml:"bracketed_paste"`
	ReportFocus    bool    `toml:"report_focus"`
	Log            fileLog `toml:"log"`
}

type fileLog struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

func defaultFile() fileConfig {
	return fileConfig{
		TickInterval:   engine.DefaultTickInterval.String(),
		ExitKey:        "Esc",
		ColorMode:      "auto",
		MouseCapture:   true,
		BracketedPaste: true,
		ReportFocus:    true,
		Log:            fileLog{Dir: DefaultLogDir},
	}
}

// Default returns the built-in configuration
func Default() Config {
	c, err := defaultFile().validate()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads path over the defaults, an empty path yields the defaults
func Load(path string) (Config, error) {
	f := defaultFile()
	if path == "" {
		return f.validate()
	}
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	if err := rejectUndecoded(md); err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	c, err := f.validate()
	return c, errors.Wrapf(err, "load config %s", path)
}

// Parse decodes TOML text over the defaults
func Parse(text string) (Config, error) {
	f := defaultFile()
	md, err := toml.Decode(text, &f)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := rejectUndecoded(md); err != nil {
		return Config{}, err
	}
	return f.validate()
}

func rejectUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return errors.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

func (f fileConfig) validate() (Config, error) {
	tick, err := time.ParseDuration(f.TickInterval)
	if err != nil {
		return Config{}, errors.Wrap(err, "tick_interval")
	}
	if tick < minTickInterval || tick > maxTickInterval {
		return Config{}, errors.Errorf("tick_interval %s out of range [%s, %s]", tick, minTickInterval, maxTickInterval)
	}

	exit, err := input.ParseKeyCode(f.ExitKey)
	if err != nil {
		return Config{}, errors.Wrap(err, "exit_key")
	}
	if exit.Kind == input.KindNull {
		return Config{}, errors.New("exit_key: Null cannot be pressed")
	}

	mode, err := terminal.ParseColorMode(f.ColorMode)
	if err != nil {
		return Config{}, errors.Wrap(err, "color_mode")
	}

	if f.Log.Dir == "" {
		return Config{}, errors.New("log.dir must not be empty")
	}

	return Config{
		TickInterval:   tick,
		ExitKey:        exit,
		ColorMode:      mode,
		MouseCapture:   f.MouseCapture,
		BracketedPaste: f.BracketedPaste,
		ReportFocus:    f.ReportFocus,
		Log:            LogConfig{Debug: f.Log.Debug, Dir: f.Log.Dir},
	}, nil
}

// Overrides carries command-line values, empty fields keep the loaded value
type Overrides struct {
	ColorMode    string
	TickInterval string
	Debug        bool
}

// Apply returns c with the non-empty overrides applied and validated
func (c Config) Apply(o Overrides) (Config, error) {
	if o.ColorMode != "" {
		mode, err := terminal.ParseColorMode(o.ColorMode)
		if err != nil {
			return c, errors.Wrap(err, "-color")
		}
		c.ColorMode = mode
	}
	if o.TickInterval != "" {
		tick, err := time.ParseDuration(o.TickInterval)
		if err != nil {
			return c, errors.Wrap(err, "-tick")
		}
		if tick < minTickInterval || tick > maxTickInterval {
			return c, errors.Errorf("-tick %s out of range [%s, %s]", tick, minTickInterval, maxTickInterval)
		}
		c.TickInterval = tick
	}
	if o.Debug {
		c.Log.Debug = true
	}
	return c, nil
}

// Terminal returns the terminal feature selection
func (c Config) Terminal() terminal.Config {
	return terminal.Config{
		ColorMode:      c.ColorMode,
		MouseCapture:   c.MouseCapture,
		BracketedPaste: c.BracketedPaste,
		ReportFocus:    c.ReportFocus,
	}
}

// Engine returns the event loop options
func (c Config) Engine() engine.Options {
	return engine.Options{TickInterval: c.TickInterval, ExitKey: c.ExitKey}
}
