// Package config resolves the fleury binary's settings: built-in defaults,
// then an optional TOML file, then command-line flags.
//
// Example file:
//
//	[log]
//	level = "debug"
//
//	[tour]
//	strict = true
//	restore = "inplace"
//
//	[console]
//	prompts = "never"
//	banner = false
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/eulertrail/fleury"
	"github.com/katalvlaran/eulertrail/internal/console"
)

var (
	// ErrUnknownKey is returned when a TOML file sets a key this package
	// does not know.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidValue is returned by Validate.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config is the full set of settings.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Tour    TourConfig    `toml:"tour"`
	Console ConsoleConfig `toml:"console"`

	// Source is the file the settings were read from, empty for defaults.
	Source string `toml:"-"`
}

// LogConfig is the [log] table.
type LogConfig struct {
	Level string `toml:"level"`
}

// TourConfig is the [tour] table.
type TourConfig struct {
	Strict  bool   `toml:"strict"`
	Restore string `toml:"restore"`
}

// ConsoleConfig is the [console] table.
type ConsoleConfig struct {
	Prompts string `toml:"prompts"`
	Banner  bool   `toml:"banner"`
}

// Default returns the built-in settings: warn-level logging, no precondition
// check, append restore, prompts on terminals only, banner on.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "warn"},
		Tour:    TourConfig{Strict: false, Restore: fleury.RestoreAppend.String()},
		Console: ConsoleConfig{Prompts: console.PromptAuto.String(), Banner: true},
	}
}

// Parse decodes TOML text on top of Default.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("Parse: %w", err)
	}
	if err = checkUndecoded(md); err != nil {
		return cfg, fmt.Errorf("Parse: %w", err)
	}

	return cfg, nil
}

// Load decodes the TOML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("Load %s: %w", path, err)
	}
	if err = checkUndecoded(md); err != nil {
		return cfg, fmt.Errorf("Load %s: %w", path, err)
	}
	cfg.Source = path

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

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// FromArgs builds the configuration for one run. Precedence, lowest first:
// defaults, the file named by -config, explicitly set flags.
// Usage and flag errors go to errOut; -h returns flag.ErrHelp.
func FromArgs(name string, args []string, errOut io.Writer) (Config, error) {
	var (
		path    string
		level   string
		strict  bool
		restore string
		prompts string
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&path, "config", "", "TOML configuration `file`")
	fs.StringVar(&level, "log-level", "", "log level: trace, debug, info, warn, error")
	fs.BoolVar(&strict, "strict", false, "reject graphs without an Eulerian trail")
	fs.StringVar(&restore, "restore", "", "bridge probe restore policy: append or inplace")
	fs.StringVar(&prompts, "prompts", "", "when to prompt: auto, always or never")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("FromArgs: unexpected argument %q: %w", fs.Arg(0), ErrInvalidValue)
	}

	// 1. Defaults or file
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}

	// 2. Flags that were actually given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Log.Level = level
		case "strict":
			cfg.Tour.Strict = strict
		case "restore":
			cfg.Tour.Restore = restore
		case "prompts":
			cfg.Console.Prompts = prompts
		}
	})

	// 3. Validate the merged result
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	_, err := c.Resolve()

	return err
}

// Settings holds the parsed form of the enumerated settings.
type Settings struct {
	Level   zerolog.Level
	Restore fleury.RestorePolicy
	Prompts console.PromptMode
}

// Resolve parses every enumerated setting, failing like Validate.
func (c Config) Resolve() (Settings, error) {
	var (
		s    Settings
		errs []error
		err  error
	)
	if s.Level, err = c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if s.Restore, err = c.RestorePolicy(); err != nil {
		errs = append(errs, err)
	}
	if s.Prompts, err = c.PromptMode(); err != nil {
		errs = append(errs, err)
	}

	return s, errors.Join(errs...)
}

// LogLevel parses [log] level. The empty string means info.
func (c Config) LogLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.Log.Level)))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidValue)
	}
	if lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, nil
	}

	return lvl, nil
}

// RestorePolicy parses [tour] restore.
func (c Config) RestorePolicy() (fleury.RestorePolicy, error) {
	p, err := fleury.ParseRestorePolicy(c.Tour.Restore)
	if err != nil {
		return p, fmt.Errorf("tour.restore: %w: %w", ErrInvalidValue, err)
	}

	return p, nil
}

// PromptMode parses [console] prompts.
func (c Config) PromptMode() (console.PromptMode, error) {
	m, err := console.ParsePromptMode(c.Console.Prompts)
	if err != nil {
		return m, fmt.Errorf("console.prompts: %w: %w", ErrInvalidValue, err)
	}

	return m, nil
}

// TourOptions returns the fleury options implied by the [tour] table.
func (c Config) TourOptions() []fleury.Option {
	if c.Tour.Strict {
		return []fleury.Option{fleury.WithStrict()}
	}

	return nil
}
