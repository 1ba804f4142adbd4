package tuikit

// ElementOption configures a BasicElement.
type ElementOption func(*BasicElement)

// WithName sets a label, used in logs and by hosts that render the element.
func WithName(name string) ElementOption {
	return func(e *BasicElement) {
		e.name = name
	}
}

// WithPosition sets the anchor cell.
func WithPosition(x, y int) ElementOption {
	return func(e *BasicElement) {
		e.pos = Point{X: x, Y: y}
	}
}

// WithSize sets the area in terminal cells, used for hit testing.
func WithSize(width, height int) ElementOption {
	return func(e *BasicElement) {
		e.width = width
		e.height = height
	}
}

// WithHidden creates the element hidden.
func WithHidden() ElementOption {
	return func(e *BasicElement) {
		e.visible = false
	}
}

// WithOnInput sets the input handler.
// The handler receives the element as its first parameter (self-inject).
// Return true to consume the event.
func WithOnInput(fn func(*BasicElement, Event) bool) ElementOption {
	return func(e *BasicElement) {
		e.onInput = fn
	}
}

// WithOnFocus sets a handler that's called when this element gains focus.
func WithOnFocus(fn func(*BasicElement)) ElementOption {
	return func(e *BasicElement) {
		e.onFocus = fn
	}
}

// WithOnBlur sets a handler that's called when this element loses focus.
func WithOnBlur(fn func(*BasicElement)) ElementOption {
	return func(e *BasicElement) {
		e.onBlur = fn
	}
}
