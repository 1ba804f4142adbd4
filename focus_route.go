package tuikit

// navKeys are the unmodified keys RouteInputEvent turns into spatial moves.
var navKeys = map[string]NavDirection{
	KeyUp:    NavUp,
	KeyDown:  NavDown,
	KeyLeft:  NavLeft,
	KeyRight: NavRight,
}

// RouteInputEvent delivers ev to the focused element. It is meant to be
// installed as the Dispatcher router.
//
// Tab and shift+tab move focus linearly and unmodified arrow keys move it
// spatially; those keys are consumed. A mouse press on a Hittable element
// of the active container focuses it (source click) before the press is
// forwarded. Returns false when nothing is focused.
func (m *FocusManager) RouteInputEvent(ev Event) bool {
	if m.focused == nil {
		return false
	}

	switch e := ev.(type) {
	case KeyEvent:
		if e.Ctrl || e.Alt {
			break
		}
		if e.Name == KeyTab {
			if e.Shift {
				m.FocusPrevious()
			} else {
				m.FocusNext(TabForward)
			}
			return true
		}
		if dir, ok := navKeys[e.Name]; ok && !e.Shift {
			m.MoveFocus(dir)
			return true
		}
	case MouseEvent:
		if e.Action == MousePress {
			m.focusAt(e.X, e.Y)
		}
	}

	if m.focused == nil {
		return false
	}
	return m.focused.HandleInput(ev)
}

// focusAt focuses the first focusable element of the active container whose
// area contains (x, y).
func (m *FocusManager) focusAt(x, y int) bool {
	if m.active == nil {
		return false
	}
	for _, e := range m.active.elements {
		h, ok := e.(Hittable)
		if !ok || !h.Contains(x, y) || !m.IsFocusable(e) {
			continue
		}
		if e == m.focused {
			return true
		}
		return m.FocusFrom(e, FocusSourceClick)
	}
	return false
}
