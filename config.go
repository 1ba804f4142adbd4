package tuikit

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the session options. Unset fields keep their
// defaults. Durations use time.ParseDuration syntax ("30ms").
//
// Example (TOML):
//
//	history_limit = 50
//	focus_policy = ["click", "tab", "programmatic", "automatic"]
//	wrap_around = true
//	escape_timeout = "25ms"
type Config struct {
	HistoryLimit        *int     `toml:"history_limit" yaml:"history_limit"`
	VerticalTolerance   *int     `toml:"vertical_tolerance" yaml:"vertical_tolerance"`
	HorizontalTolerance *int     `toml:"horizontal_tolerance" yaml:"horizontal_tolerance"`
	FocusPolicy         []string `toml:"focus_policy" yaml:"focus_policy"`
	WrapAround          *bool    `toml:"wrap_around" yaml:"wrap_around"`
	FocusCycle          *bool    `toml:"focus_cycle" yaml:"focus_cycle"`
	EscapeTimeout       string   `toml:"escape_timeout" yaml:"escape_timeout"`
	PollInterval        string   `toml:"poll_interval" yaml:"poll_interval"`

	// DebugLog is a path for the debug log; hosts pass it to debug.Init.
	DebugLog string `toml:"debug_log" yaml:"debug_log"`
}

// ConfigParseError reports a malformed configuration file.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) config file.
// A missing file is not an error and yields an empty Config.
func LoadConfig(path string) (Config, error) {
	format, err := configFormat(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return Config{}, &ConfigParseError{Path: path, Err: err}
	}
	return cfg, nil
}

func configFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("config file %s: %w (extension %q)", path, ErrUnsupportedConfig, ext)
	}
}

// ParseConfig decodes config data in the given format ("toml" or "yaml").
// Unknown keys are rejected.
func ParseConfig(data []byte, format string) (Config, error) {
	var cfg Config
	switch format {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	case "yaml":
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("format %q: %w", format, ErrUnsupportedConfig)
	}
	return cfg, nil
}

// Options converts the file settings into options. Invalid values surface
// as errors when the options are applied.
func (c Config) Options() []Option {
	var opts []Option
	if c.HistoryLimit != nil {
		opts = append(opts, WithHistoryLimit(*c.HistoryLimit))
	}
	if c.VerticalTolerance != nil || c.HorizontalTolerance != nil {
		v, h := DefaultVerticalTolerance, DefaultHorizontalTolerance
		if c.VerticalTolerance != nil {
			v = *c.VerticalTolerance
		}
		if c.HorizontalTolerance != nil {
			h = *c.HorizontalTolerance
		}
		opts = append(opts, WithSpatialTolerance(v, h))
	}
	if c.FocusPolicy != nil {
		opts = append(opts, WithFocusPolicyNames(c.FocusPolicy...))
	}
	if c.WrapAround != nil {
		opts = append(opts, WithDefaultWrapAround(*c.WrapAround))
	}
	if c.FocusCycle != nil {
		opts = append(opts, WithDefaultFocusCycle(*c.FocusCycle))
	}
	if c.EscapeTimeout != "" {
		opts = append(opts, durationOption("escape_timeout", c.EscapeTimeout, WithEscapeTimeout))
	}
	if c.PollInterval != "" {
		opts = append(opts, durationOption("poll_interval", c.PollInterval, WithPollInterval))
	}
	return opts
}

func durationOption(key, value string, with func(time.Duration) Option) Option {
	return func(c *config) error {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return with(d)(c)
	}
}
