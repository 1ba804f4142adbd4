package tuikit

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/grindlemire/tuikit/internal/debug"
)

// Defaults for the focus manager and session.
const (
	// DefaultHistoryLimit bounds the focus history ring.
	DefaultHistoryLimit = 50

	// DefaultVerticalTolerance is how many columns an element may sit off
	// the focused element's column and still be a target for up/down moves.
	DefaultVerticalTolerance = 5

	// DefaultHorizontalTolerance is how many rows an element may sit off
	// the focused element's row and still be a target for left/right moves.
	DefaultHorizontalTolerance = 2

	// DefaultPollInterval is how long Session.Listen waits on its source
	// before checking for cancellation.
	DefaultPollInterval = 50 * time.Millisecond
)

// config holds settings shared by Session and FocusManager.
type config struct {
	historyLimit        int
	verticalTolerance   int
	horizontalTolerance int
	policy              []FocusSource
	wrapAround          bool
	focusCycle          bool
	escapeTimeout       time.Duration
	pollInterval        time.Duration
	logger              *slog.Logger
}

func defaultConfig() config {
	return config{
		historyLimit:        DefaultHistoryLimit,
		verticalTolerance:   DefaultVerticalTolerance,
		horizontalTolerance: DefaultHorizontalTolerance,
		policy:              AllFocusSources(),
		wrapAround:          true,
		focusCycle:          true,
		pollInterval:        DefaultPollInterval,
		logger:              debug.Logger(),
	}
}

func buildConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// Option is a functional option for configuring a Session or FocusManager.
type Option func(*config) error

// WithHistoryLimit sets how many recently focused elements are remembered.
// Default is 50. Must be at least 2 so a modal can restore focus.
func WithHistoryLimit(n int) Option {
	return func(c *config) error {
		if n < 2 {
			return fmt.Errorf("history limit must be at least 2, got %d", n)
		}
		c.historyLimit = n
		return nil
	}
}

// WithSpatialTolerance sets the perpendicular band for directional moves:
// vertical is the column band for up/down, horizontal the row band for
// left/right. Defaults are 5 and 2.
func WithSpatialTolerance(vertical, horizontal int) Option {
	return func(c *config) error {
		if vertical < 0 || horizontal < 0 {
			return fmt.Errorf("spatial tolerance cannot be negative (vertical=%d, horizontal=%d)", vertical, horizontal)
		}
		c.verticalTolerance = vertical
		c.horizontalTolerance = horizontal
		return nil
	}
}

// WithFocusPolicy sets the focus sources that may acquire focus.
// Default is all sources.
func WithFocusPolicy(sources ...FocusSource) Option {
	return func(c *config) error {
		for _, s := range sources {
			if !s.valid() {
				return fmt.Errorf("unknown focus source %d", int(s))
			}
		}
		c.policy = append([]FocusSource(nil), sources...)
		return nil
	}
}

// WithFocusPolicyNames is WithFocusPolicy for source names such as "tab".
func WithFocusPolicyNames(names ...string) Option {
	return func(c *config) error {
		sources := make([]FocusSource, 0, len(names))
		for _, n := range names {
			s, err := ParseFocusSource(n)
			if err != nil {
				return err
			}
			sources = append(sources, s)
		}
		c.policy = sources
		return nil
	}
}

// WithDefaultWrapAround sets wrap_around for containers created without
// an explicit WithWrapAround. Default is true.
func WithDefaultWrapAround(wrap bool) Option {
	return func(c *config) error {
		c.wrapAround = wrap
		return nil
	}
}

// WithDefaultFocusCycle sets focus_cycle for containers created without
// an explicit WithFocusCycle. Default is true.
func WithDefaultFocusCycle(cycle bool) Option {
	return func(c *config) error {
		c.focusCycle = cycle
		return nil
	}
}

// WithEscapeTimeout makes Session.Listen flush a lone pending ESC as the
// escape key once input has been idle for d. Default 0 leaves a lone ESC
// pending until more bytes arrive.
func WithEscapeTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d < 0 {
			return fmt.Errorf("escape timeout cannot be negative")
		}
		c.escapeTimeout = d
		return nil
	}
}

// WithPollInterval sets how long Listen blocks on its source per iteration.
// Default is 50ms.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return fmt.Errorf("poll interval must be positive")
		}
		c.pollInterval = d
		return nil
	}
}

// WithLogger sets the logger. Default is the TUI_DEBUG file logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = l
		return nil
	}
}
