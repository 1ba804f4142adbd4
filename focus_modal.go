package tuikit

import "fmt"

// modalEntry is one level of the modal stack.
type modalEntry struct {
	id         string
	prevActive *Container // active container when the modal was pushed
	restore    Element    // focused element when the modal was pushed
}

// PushModal makes a container the active focus trap. While it is on top of
// the modal stack, only elements in it or its nested containers can take
// focus. Pushing does not move focus by itself.
func (m *FocusManager) PushModal(containerID string) error {
	c, ok := m.containers[containerID]
	if !ok {
		return fmt.Errorf("modal %q: %w", containerID, ErrContainerNotFound)
	}
	m.modals = append(m.modals, modalEntry{
		id:         containerID,
		prevActive: m.active,
		restore:    m.focused,
	})
	m.active = c
	m.log.Debug("modal pushed", "container", containerID, "depth", len(m.modals))
	return nil
}

// PopModal removes the top modal. If modals remain, the new top becomes the
// active container; otherwise the container that was active before the
// modal opened does. Focus returns to the element that held it when the
// modal was pushed, or failing that to the most recent history entry that
// is reachable again. Returns false if no modal is open.
func (m *FocusManager) PopModal() bool {
	if len(m.modals) == 0 {
		return false
	}
	popped := m.modals[len(m.modals)-1]
	m.modals = m.modals[:len(m.modals)-1]
	m.log.Debug("modal popped", "container", popped.id, "depth", len(m.modals))

	if top := m.topModal(); top != "" {
		m.active = m.containers[top]
	} else if popped.prevActive != nil {
		m.active = popped.prevActive
	}

	reachable := func(e Element) bool {
		c, ok := m.owner[e]
		return ok && m.IsFocusable(e) && m.inModalScope(c) && !m.inSubtree(c, popped.id)
	}
	if popped.restore != nil && reachable(popped.restore) && m.Focus(popped.restore) {
		return true
	}
	if target := m.history.latest(reachable); target != nil && m.Focus(target) {
		return true
	}
	if m.focused != nil {
		if c, ok := m.owner[m.focused]; !ok || !m.inModalScope(c) || m.inSubtree(c, popped.id) {
			m.blur(m.focused, nil)
		}
	}
	return true
}

// ModalDepth returns the number of open modals.
func (m *FocusManager) ModalDepth() int {
	return len(m.modals)
}

// ModalStack returns the open modal container ids, bottom first.
func (m *FocusManager) ModalStack() []string {
	ids := make([]string, len(m.modals))
	for i, me := range m.modals {
		ids[i] = me.id
	}
	return ids
}

func (m *FocusManager) topModal() string {
	if len(m.modals) == 0 {
		return ""
	}
	return m.modals[len(m.modals)-1].id
}

// inModalScope reports whether c may take focus under the current modal.
func (m *FocusManager) inModalScope(c *Container) bool {
	if c == nil {
		return false
	}
	top := m.topModal()
	if top == "" {
		return true
	}
	return m.inSubtree(c, top)
}

// inSubtree reports whether c is the container rootID or nested under it.
func (m *FocusManager) inSubtree(c *Container, rootID string) bool {
	seen := make(map[string]bool)
	for c != nil && !seen[c.id] {
		if c.id == rootID {
			return true
		}
		seen[c.id] = true
		c = m.containers[c.parent]
	}
	return false
}
