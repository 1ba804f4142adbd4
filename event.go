package tuikit

import "strings"

// Event is the base interface for all normalized input events.
// Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Name is the canonical key token: "up", "f5", "tab", "a", ...
	// It is never a raw byte sequence.
	Name string

	Ctrl  bool
	Alt   bool
	Shift bool
}

func (KeyEvent) isEvent() {}

// Is reports whether the event is the named key with no modifiers besides
// an implied shift.
func (e KeyEvent) Is(name string) bool {
	return e.Name == name && !e.Ctrl && !e.Alt
}

// HasModifiers reports whether any of ctrl, alt or shift is set.
func (e KeyEvent) HasModifiers() bool {
	return e.Ctrl || e.Alt || e.Shift
}

// String returns the key in "ctrl+alt+shift+name" form.
func (e KeyEvent) String() string {
	var b strings.Builder
	if e.Ctrl {
		b.WriteString("ctrl+")
	}
	if e.Alt {
		b.WriteString("alt+")
	}
	if e.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(e.Name)
	return b.String()
}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	// MouseLeft is the left (primary) mouse button.
	MouseLeft MouseButton = iota
	// MouseMiddle is the middle mouse button.
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
)

// String returns a human-readable button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	default:
		return "unknown"
	}
}

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	// MousePress indicates a button was pressed.
	MousePress MouseAction = iota
	// MouseRelease indicates a button was released.
	MouseRelease
	// MouseMove indicates pointer motion.
	MouseMove
)

// String returns a human-readable action name.
func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseMove:
		return "move"
	default:
		return "unknown"
	}
}

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	// X is the column position (0-indexed).
	X int
	// Y is the row position (0-indexed).
	Y      int
	Button MouseButton
	Action MouseAction
}

func (MouseEvent) isEvent() {}

// ResizeEvent is emitted when the terminal reports a size change.
// It carries no payload; hosts query the size themselves.
type ResizeEvent struct{}

func (ResizeEvent) isEvent() {}

// Name returns the canonical key name of the resize signal.
func (ResizeEvent) Name() string {
	return KeyResize
}

// eventName returns a short label for logging.
func eventName(ev Event) string {
	switch e := ev.(type) {
	case KeyEvent:
		return e.String()
	case MouseEvent:
		return "mouse:" + e.Button.String() + ":" + e.Action.String()
	case ResizeEvent:
		return KeyResize
	default:
		return "unknown"
	}
}
