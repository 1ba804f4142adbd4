package tuikit

import (
	"fmt"
	"strings"
)

// FocusSource declares what caused a focus acquisition attempt.
type FocusSource int

const (
	// FocusSourceClick is a pointer press on an element.
	FocusSourceClick FocusSource = iota + 1
	// FocusSourceTab is keyboard navigation (tab order or arrows).
	FocusSourceTab
	// FocusSourceProgrammatic is application code asking for focus.
	FocusSourceProgrammatic
	// FocusSourceAutomatic is the manager itself, e.g. the first element added.
	FocusSourceAutomatic
)

// AllFocusSources returns every focus source.
func AllFocusSources() []FocusSource {
	return []FocusSource{FocusSourceClick, FocusSourceTab, FocusSourceProgrammatic, FocusSourceAutomatic}
}

func (s FocusSource) valid() bool {
	return s >= FocusSourceClick && s <= FocusSourceAutomatic
}

// String returns the policy name of the source.
func (s FocusSource) String() string {
	switch s {
	case FocusSourceClick:
		return "click"
	case FocusSourceTab:
		return "tab"
	case FocusSourceProgrammatic:
		return "programmatic"
	case FocusSourceAutomatic:
		return "automatic"
	default:
		return "unknown"
	}
}

// ParseFocusSource converts a policy name into a FocusSource.
func ParseFocusSource(name string) (FocusSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "click":
		return FocusSourceClick, nil
	case "tab":
		return FocusSourceTab, nil
	case "programmatic":
		return FocusSourceProgrammatic, nil
	case "automatic":
		return FocusSourceAutomatic, nil
	default:
		return 0, fmt.Errorf("unknown focus source %q", name)
	}
}

// focusPolicy is the set of sources currently permitted to acquire focus.
type focusPolicy map[FocusSource]struct{}

func newFocusPolicy(sources []FocusSource) focusPolicy {
	p := make(focusPolicy, len(sources))
	for _, s := range sources {
		p[s] = struct{}{}
	}
	return p
}

func (p focusPolicy) allows(s FocusSource) bool {
	_, ok := p[s]
	return ok
}

// sources returns the permitted sources in declaration order.
func (p focusPolicy) sources() []FocusSource {
	var out []FocusSource
	for _, s := range AllFocusSources() {
		if p.allows(s) {
			out = append(out, s)
		}
	}
	return out
}
