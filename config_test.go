package tuikit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	type tc struct {
		file    string
		content string
		check   func(t *testing.T, cfg config)
		wantErr error
	}

	tests := map[string]tc{
		"toml": {
			file: "tuikit.toml",
			content: `history_limit = 10
vertical_tolerance = 3
focus_policy = ["tab", "programmatic"]
wrap_around = false
escape_timeout = "25ms"
`,
			check: func(t *testing.T, cfg config) {
				if cfg.historyLimit != 10 {
					t.Errorf("historyLimit = %d, want 10", cfg.historyLimit)
				}
				if cfg.verticalTolerance != 3 || cfg.horizontalTolerance != DefaultHorizontalTolerance {
					t.Errorf("tolerance = %d/%d, want 3/%d", cfg.verticalTolerance, cfg.horizontalTolerance, DefaultHorizontalTolerance)
				}
				if len(cfg.policy) != 2 || cfg.policy[0] != FocusSourceTab || cfg.policy[1] != FocusSourceProgrammatic {
					t.Errorf("policy = %v", cfg.policy)
				}
				if cfg.wrapAround {
					t.Error("wrapAround = true, want false")
				}
				if cfg.escapeTimeout != 25*time.Millisecond {
					t.Errorf("escapeTimeout = %v, want 25ms", cfg.escapeTimeout)
				}
			},
		},
		"yaml": {
			file: "tuikit.yaml",
			content: `history_limit: 7
horizontal_tolerance: 0
focus_cycle: false
poll_interval: 10ms
`,
			check: func(t *testing.T, cfg config) {
				if cfg.historyLimit != 7 {
					t.Errorf("historyLimit = %d, want 7", cfg.historyLimit)
				}
				if cfg.horizontalTolerance != 0 || cfg.verticalTolerance != DefaultVerticalTolerance {
					t.Errorf("tolerance = %d/%d", cfg.verticalTolerance, cfg.horizontalTolerance)
				}
				if cfg.focusCycle {
					t.Error("focusCycle = true, want false")
				}
				if cfg.pollInterval != 10*time.Millisecond {
					t.Errorf("pollInterval = %v, want 10ms", cfg.pollInterval)
				}
			},
		},
		"empty yaml keeps defaults": {
			file:    "tuikit.yml",
			content: "",
			check: func(t *testing.T, cfg config) {
				if cfg.historyLimit != DefaultHistoryLimit || !cfg.wrapAround {
					t.Errorf("defaults changed: %+v", cfg)
				}
			},
		},
		"unknown key": {
			file:    "tuikit.toml",
			content: "no_such_key = 1\n",
			wantErr: &ConfigParseError{},
		},
		"malformed yaml": {
			file:    "tuikit.yaml",
			content: "history_limit: [\n",
			wantErr: &ConfigParseError{},
		},
		"unsupported extension": {
			file:    "tuikit.json",
			content: "{}",
			wantErr: ErrUnsupportedConfig,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			fileCfg, err := LoadConfig(path)
			if tt.wantErr != nil {
				var parseErr *ConfigParseError
				switch {
				case errors.As(tt.wantErr, &parseErr):
					if !errors.As(err, &parseErr) {
						t.Fatalf("err = %v, want a ConfigParseError", err)
					}
				case !errors.Is(err, tt.wantErr):
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}

			cfg, err := buildConfig(fileCfg.Options())
			if err != nil {
				t.Fatalf("applying options: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Options()) != 0 {
		t.Errorf("missing file produced %d options", len(cfg.Options()))
	}
}

func TestConfigOptions_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad duration":       `escape_timeout = "soon"`,
		"bad focus source":   `focus_policy = ["keyboard"]`,
		"history too small":  `history_limit = 1`,
		"negative tolerance": `vertical_tolerance = -1`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(content), "toml")
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			if _, err := NewSession(cfg.Options()...); err == nil {
				t.Error("NewSession accepted an invalid config")
			}
		})
	}
}

func TestOptions_Invalid(t *testing.T) {
	tests := map[string]Option{
		"history limit":       WithHistoryLimit(1),
		"negative tolerance":  WithSpatialTolerance(-1, 0),
		"unknown source":      WithFocusPolicy(FocusSource(99)),
		"unknown source name": WithFocusPolicyNames("mouse"),
		"negative timeout":    WithEscapeTimeout(-time.Second),
		"zero poll interval":  WithPollInterval(0),
		"nil logger":          WithLogger(nil),
	}

	for name, opt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewFocusManager(opt); err == nil {
				t.Error("option accepted")
			}
		})
	}
}

func TestParseFocusSource(t *testing.T) {
	for _, s := range AllFocusSources() {
		got, err := ParseFocusSource(s.String())
		if err != nil || got != s {
			t.Errorf("ParseFocusSource(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseFocusSource("hover"); err == nil {
		t.Error("ParseFocusSource accepted an unknown name")
	}
}
