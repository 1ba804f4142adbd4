package tuikit

// focusHistory is a bounded record of recently focused elements, oldest
// first. Consecutive duplicates are collapsed.
type focusHistory struct {
	entries []Element
	limit   int
}

func newFocusHistory(limit int) *focusHistory {
	return &focusHistory{
		entries: make([]Element, 0, limit),
		limit:   limit,
	}
}

// push records e as the most recent entry, evicting the oldest past the limit.
func (h *focusHistory) push(e Element) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == e {
		return
	}
	if len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.limit-1]
	}
	h.entries = append(h.entries, e)
}

// recent returns up to n of the most recent entries, oldest first.
func (h *focusHistory) recent(n int) []Element {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	return h.entries[len(h.entries)-n:]
}

// remove drops every occurrence of e.
func (h *focusHistory) remove(e Element) {
	out := h.entries[:0]
	for _, x := range h.entries {
		if x != e {
			out = append(out, x)
		}
	}
	clear(h.entries[len(out):])
	h.entries = out
}

// latest walks the history from newest to oldest and returns the first
// entry accepted by keep.
func (h *focusHistory) latest(keep func(Element) bool) Element {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if keep(h.entries[i]) {
			return h.entries[i]
		}
	}
	return nil
}

func (h *focusHistory) snapshot() []Element {
	return append([]Element(nil), h.entries...)
}

func (h *focusHistory) reset() {
	clear(h.entries)
	h.entries = h.entries[:0]
}
