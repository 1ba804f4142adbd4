package tuikit

// Point is a terminal cell position (0-indexed).
type Point struct {
	X int
	Y int
}

// Element is the capability a widget exposes to the focus manager.
//
// Identity is by handle: implementations must be pointer types (or other
// comparable values that are unique per widget), because the manager keys
// its bookkeeping on the Element value itself.
type Element interface {
	// Position returns the element's anchor cell, used for spatial navigation.
	Position() Point

	// Visible reports whether the widget is currently shown.
	Visible() bool

	// Focused reports the element's own focus flag.
	Focused() bool

	// SetFocused is called by the focus manager to set the focus flag.
	SetFocused(focused bool)

	// HandleInput processes an event routed to the focused element.
	// Returns true if the event was consumed.
	HandleInput(ev Event) bool
}

// Hittable is optionally implemented by elements that occupy an area.
// The focus manager uses it for click-to-focus.
type Hittable interface {
	Contains(x, y int) bool
}

// BasicElement is a ready-made Element for widgets that only need a
// position, an optional area and callbacks.
type BasicElement struct {
	name    string
	pos     Point
	width   int
	height  int
	visible bool
	focused bool

	onInput func(*BasicElement, Event) bool
	onFocus func(*BasicElement)
	onBlur  func(*BasicElement)
}

var (
	_ Element  = (*BasicElement)(nil)
	_ Hittable = (*BasicElement)(nil)
)

// NewElement creates a visible BasicElement at the origin with no area.
func NewElement(opts ...ElementOption) *BasicElement {
	e := &BasicElement{visible: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the label given with WithName.
func (e *BasicElement) Name() string {
	return e.name
}

// Position returns the element's anchor cell.
func (e *BasicElement) Position() Point {
	return e.pos
}

// SetPosition moves the element.
func (e *BasicElement) SetPosition(x, y int) {
	e.pos = Point{X: x, Y: y}
}

// Size returns the element's area in cells.
func (e *BasicElement) Size() (width, height int) {
	return e.width, e.height
}

// Visible reports whether the element is shown.
func (e *BasicElement) Visible() bool {
	return e.visible
}

// SetVisible shows or hides the element. Hosts that hide a focused element
// should also tell the focus manager via SetComponentVisible.
func (e *BasicElement) SetVisible(visible bool) {
	e.visible = visible
}

// Focused reports whether the element holds focus.
func (e *BasicElement) Focused() bool {
	return e.focused
}

// SetFocused sets the focus flag and fires the focus or blur callback on
// a transition.
func (e *BasicElement) SetFocused(focused bool) {
	if e.focused == focused {
		return
	}
	e.focused = focused
	if focused && e.onFocus != nil {
		e.onFocus(e)
	}
	if !focused && e.onBlur != nil {
		e.onBlur(e)
	}
}

// HandleInput forwards to the WithOnInput handler, if any.
func (e *BasicElement) HandleInput(ev Event) bool {
	if e.onInput == nil {
		return false
	}
	return e.onInput(e, ev)
}

// Contains reports whether (x, y) falls inside the element's area.
// An element without an area contains only its anchor cell.
func (e *BasicElement) Contains(x, y int) bool {
	w, h := e.width, e.height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x >= e.pos.X && x < e.pos.X+w && y >= e.pos.Y && y < e.pos.Y+h
}
