package tuikit

// TabDirection is the direction of linear (tab order) navigation.
type TabDirection int

const (
	// TabForward moves to the next element in tab order.
	TabForward TabDirection = iota
	// TabBackward moves to the previous element in tab order.
	TabBackward
)

// NavDirection is the direction of spatial navigation.
type NavDirection int

const (
	NavUp NavDirection = iota
	NavDown
	NavLeft
	NavRight
)

// String returns the direction name.
func (d NavDirection) String() string {
	switch d {
	case NavUp:
		return "up"
	case NavDown:
		return "down"
	case NavLeft:
		return "left"
	case NavRight:
		return "right"
	default:
		return "unknown"
	}
}

// FocusNext focuses the next focusable element of the active container in
// the given direction, skipping elements that cannot take focus. With
// wrap-around the scan wraps once; without it, navigation stops at the
// ends. Uses source tab. Returns true if an element was focused.
func (m *FocusManager) FocusNext(dir TabDirection) bool {
	c := m.active
	if c == nil || len(c.elements) == 0 {
		return false
	}
	n := len(c.elements)
	step := 1
	if dir == TabBackward {
		step = -1
	}

	var start int
	switch cur := c.focusIndex; {
	case cur < 0 && step > 0:
		start = 0
	case cur < 0:
		start = n - 1
	default:
		start = cur + step
		if start < 0 || start >= n {
			if c.wrapAround {
				start = wrapIndex(start, n)
			} else {
				start = min(max(start, 0), n-1)
			}
		}
	}

	for i := 0; i < n; i++ {
		idx := start + i*step
		if c.wrapAround {
			idx = wrapIndex(idx, n)
		} else if idx < 0 || idx >= n {
			break
		}
		if e := c.elements[idx]; m.IsFocusable(e) {
			return m.FocusFrom(e, FocusSourceTab)
		}
	}
	return false
}

// FocusPrevious is FocusNext(TabBackward).
func (m *FocusManager) FocusPrevious() bool {
	return m.FocusNext(TabBackward)
}

// MoveFocus focuses the nearest focusable element of the active container
// in direction dir, by Manhattan distance from the focused element's
// position. Candidates must lie strictly in that direction and within the
// perpendicular tolerance band. The first candidate wins ties. With nothing
// focused, falls back to FocusNext(TabForward). Uses source tab.
func (m *FocusManager) MoveFocus(dir NavDirection) bool {
	if m.focused == nil {
		return m.FocusNext(TabForward)
	}
	c := m.active
	if c == nil {
		return false
	}

	origin := m.focused.Position()
	var best Element
	bestDist := 0
	for _, e := range c.elements {
		if e == m.focused || !m.IsFocusable(e) {
			continue
		}
		p := e.Position()
		dx, dy := p.X-origin.X, p.Y-origin.Y
		if !m.inDirection(dir, dx, dy) {
			continue
		}
		d := abs(dx) + abs(dy)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	if best == nil {
		m.log.Debug("no spatial target", "direction", dir.String())
		return false
	}
	return m.FocusFrom(best, FocusSourceTab)
}

func (m *FocusManager) inDirection(dir NavDirection, dx, dy int) bool {
	switch dir {
	case NavUp:
		return dy < 0 && abs(dx) <= m.cfg.verticalTolerance
	case NavDown:
		return dy > 0 && abs(dx) <= m.cfg.verticalTolerance
	case NavLeft:
		return dx < 0 && abs(dy) <= m.cfg.horizontalTolerance
	case NavRight:
		return dx > 0 && abs(dy) <= m.cfg.horizontalTolerance
	default:
		return false
	}
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
