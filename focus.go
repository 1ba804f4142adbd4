package tuikit

import (
	"fmt"
	"log/slog"
)

// FocusManager owns focus containers and decides which element holds focus.
//
// At most one element is focused at a time. Focus moves through Focus and
// FocusFrom, linear navigation (FocusNext, FocusPrevious), spatial
// navigation (MoveFocus), clicks routed through RouteInputEvent, and the
// modal stack. Every move is checked against the focus policy and, while
// a modal is open, against the modal's container subtree.
//
// FocusManager is not safe for concurrent use; it belongs to the input loop.
type FocusManager struct {
	cfg config
	log *slog.Logger

	containers     map[string]*Container
	containerOrder []string
	owner          map[Element]*Container

	active  *Container
	focused Element
	history *focusHistory

	modals []modalEntry

	disabled map[Element]struct{}
	hidden   map[Element]struct{}
	order    map[Element]int
	policy   focusPolicy

	events *lifecycle
}

// NewFocusManager creates an empty FocusManager.
func NewFocusManager(opts ...Option) (*FocusManager, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("configuring focus manager: %w", err)
	}
	return newFocusManager(cfg), nil
}

func newFocusManager(cfg config) *FocusManager {
	log := cfg.logger.With("component", "focus")
	return &FocusManager{
		cfg:        cfg,
		log:        log,
		containers: make(map[string]*Container),
		owner:      make(map[Element]*Container),
		history:    newFocusHistory(cfg.historyLimit),
		disabled:   make(map[Element]struct{}),
		hidden:     make(map[Element]struct{}),
		order:      make(map[Element]int),
		policy:     newFocusPolicy(cfg.policy),
		events:     newLifecycle(log),
	}
}

// CreateContainer registers a new container. Containers without an explicit
// WithFocusCycle/WithWrapAround take the manager defaults.
func (m *FocusManager) CreateContainer(id string, opts ...ContainerOption) (*Container, error) {
	if _, ok := m.containers[id]; ok {
		return nil, fmt.Errorf("container %q: %w", id, ErrContainerExists)
	}
	c := newContainer(id, m.cfg.focusCycle, m.cfg.wrapAround)
	for _, opt := range opts {
		opt(c)
	}
	if c.parent != "" {
		parent, ok := m.containers[c.parent]
		if !ok {
			return nil, fmt.Errorf("parent %q of container %q: %w", c.parent, id, ErrContainerNotFound)
		}
		parent.children = append(parent.children, id)
	}
	m.containers[id] = c
	m.containerOrder = append(m.containerOrder, id)
	m.log.Debug("container created", "container", id, "parent", c.parent,
		"focus_cycle", c.focusCycle, "wrap_around", c.wrapAround)
	return c, nil
}

// Container returns the container with the given id.
func (m *FocusManager) Container(id string) (*Container, bool) {
	c, ok := m.containers[id]
	return c, ok
}

// Containers returns container ids in creation order.
func (m *FocusManager) Containers() []string {
	return append([]string(nil), m.containerOrder...)
}

// DestroyContainer removes a container and all of its elements. Nested
// containers become roots. A focused element inside it is blurred, and the
// container is dropped from the modal stack.
func (m *FocusManager) DestroyContainer(id string) error {
	c, ok := m.containers[id]
	if !ok {
		return fmt.Errorf("container %q: %w", id, ErrContainerNotFound)
	}

	if m.focused != nil && m.owner[m.focused] == c {
		m.blur(m.focused, nil)
	}
	for _, e := range c.Elements() {
		m.forget(e)
	}

	if parent, ok := m.containers[c.parent]; ok {
		parent.removeChild(id)
	}
	for _, child := range c.children {
		if cc, ok := m.containers[child]; ok {
			cc.parent = ""
		}
	}

	var prevActive *Container
	kept := m.modals[:0]
	for _, me := range m.modals {
		if me.id == id {
			if prevActive == nil {
				prevActive = me.prevActive
			}
			continue
		}
		if me.prevActive == c {
			me.prevActive = nil
		}
		kept = append(kept, me)
	}
	m.modals = kept
	if m.active == c {
		m.active = nil
		if top := m.topModal(); top != "" {
			m.active = m.containers[top]
		} else if prevActive != nil && prevActive != c {
			m.active = prevActive
		}
	}

	delete(m.containers, id)
	for i, cid := range m.containerOrder {
		if cid == id {
			m.containerOrder = append(m.containerOrder[:i], m.containerOrder[i+1:]...)
			break
		}
	}
	m.log.Debug("container destroyed", "container", id)
	return nil
}

// AddElement appends e to a container's tab order.
//
// The first focusable element added to the first container is focused
// automatically (source automatic) when nothing holds focus yet.
func (m *FocusManager) AddElement(e Element, containerID string) error {
	return m.addElement(e, containerID, nil)
}

// AddElementAt adds e with an explicit order key. Keyed elements are sorted
// ascending by key (ties keep insertion order) among the positions keyed
// elements occupy; unkeyed elements keep their place.
func (m *FocusManager) AddElementAt(e Element, containerID string, order int) error {
	return m.addElement(e, containerID, &order)
}

func (m *FocusManager) addElement(e Element, containerID string, order *int) error {
	if e == nil {
		return ErrNilElement
	}
	c, ok := m.containers[containerID]
	if !ok {
		return fmt.Errorf("container %q: %w", containerID, ErrContainerNotFound)
	}
	if owner, ok := m.owner[e]; ok {
		return fmt.Errorf("element already in container %q: %w", owner.id, ErrElementRegistered)
	}

	c.add(e)
	m.owner[e] = c
	if order != nil {
		m.order[e] = *order
		c.sortByOrder(m.order)
	}
	m.log.Debug("element added", "container", containerID, "elements", c.Len(), "focusable", m.IsFocusable(e))

	if m.focused == nil && len(m.containerOrder) > 0 && m.containerOrder[0] == containerID && m.IsFocusable(e) {
		m.log.Debug("auto-focusing first element", "container", containerID)
		m.FocusFrom(e, FocusSourceAutomatic)
	}
	return nil
}

// RemoveElement removes e from whichever container holds it. If e was
// focused, it is blurred and focus moves to the next focusable element.
func (m *FocusManager) RemoveElement(e Element) error {
	c, ok := m.owner[e]
	if !ok {
		return ErrElementNotFound
	}
	wasFocused := m.focused == e
	if wasFocused {
		m.blur(e, nil)
	}
	m.forget(e)
	m.log.Debug("element removed", "container", c.id, "was_focused", wasFocused)

	if wasFocused && m.focused == nil && m.active == c {
		m.FocusNext(TabForward)
	}
	return nil
}

// forget drops every trace of e from the manager. A listener may have
// refocused e while it was being blurred; that focus is dropped silently.
func (m *FocusManager) forget(e Element) {
	if m.focused == e {
		m.focused = nil
		e.SetFocused(false)
	}
	if c, ok := m.owner[e]; ok {
		c.remove(e)
	}
	delete(m.owner, e)
	delete(m.order, e)
	delete(m.disabled, e)
	delete(m.hidden, e)
	m.history.remove(e)
	for i := range m.modals {
		if m.modals[i].restore == e {
			m.modals[i].restore = nil
		}
	}
}

// IsFocusable reports whether e is visible and not disabled or hidden.
func (m *FocusManager) IsFocusable(e Element) bool {
	if e == nil || !e.Visible() {
		return false
	}
	if _, ok := m.disabled[e]; ok {
		return false
	}
	if _, ok := m.hidden[e]; ok {
		return false
	}
	return true
}

// Focus moves focus to e without a declared source, so the focus policy
// does not apply. Returns false if e cannot take focus.
func (m *FocusManager) Focus(e Element) bool {
	return m.focus(e, 0, false)
}

// FocusFrom moves focus to e if the policy permits src.
func (m *FocusManager) FocusFrom(e Element, src FocusSource) bool {
	return m.focus(e, src, true)
}

func (m *FocusManager) focus(e Element, src FocusSource, checkPolicy bool) bool {
	if !m.IsFocusable(e) {
		return false
	}
	if checkPolicy && !m.policy.allows(src) {
		m.log.Debug("focus refused by policy", "source", src.String())
		return false
	}
	c, ok := m.owner[e]
	if !ok {
		return false
	}
	if !m.inModalScope(c) {
		m.log.Debug("focus refused by modal", "container", c.id, "modal", m.topModal())
		return false
	}

	prev := m.focused
	var left blurNotice
	if prev != nil && prev != e {
		left = m.captureBlur(prev, e)
	}

	// Commit everything before any callback runs. Element callbacks and
	// lifecycle listeners may move focus again; once m.focused no longer
	// holds e, a nested call owns the rest of the notifications.
	entered := m.active != c
	m.active = c
	c.focusIndex = c.indexOf(e)
	m.focused = e
	m.history.push(e)
	m.log.Debug("focused", "container", c.id, "index", c.focusIndex, "source", src.String())

	if left.target != nil {
		prev.SetFocused(false)
		if m.focused != e {
			return true
		}
	}
	e.SetFocused(true)
	if m.focused != e {
		return true
	}
	if left.target != nil && !m.notifyBlur(left, e) {
		return true
	}

	steps := []FocusEvent{{Kind: FocusEventFocus, Target: e, Related: prev, Container: c.id}}
	if prev != e {
		steps = append(steps, FocusEvent{Kind: FocusEventChange, Target: e, Related: prev, Container: c.id})
	}
	if entered {
		steps = append(steps, FocusEvent{Kind: FocusEventEnter, Target: e, Related: prev, Container: c.id})
	}
	for _, ev := range steps {
		if m.focused != e {
			break
		}
		m.events.emit(ev)
	}
	return true
}

// Blur removes focus from e. Does nothing unless e is focused.
func (m *FocusManager) Blur(e Element) {
	if e == nil || e != m.focused {
		return
	}
	m.blur(e, nil)
}

// blurNotice is the blur half of a focus change, captured before state moves.
type blurNotice struct {
	target    Element
	related   Element
	container string
	leaving   bool
}

// captureBlur snapshots the blur events for e. focus-leave is a heuristic:
// it fires unless the most recent history entries all belong to the active
// container.
func (m *FocusManager) captureBlur(e, next Element) blurNotice {
	leaving := m.active == nil
	for _, h := range m.history.recent(2) {
		if m.active != nil && !m.active.Contains(h) {
			leaving = true
		}
	}
	return blurNotice{target: e, related: next, container: m.ActiveContainerID(), leaving: leaving}
}

// notifyBlur emits blur and, if due, focus-leave while m.focused still
// equals want. Returns false once a listener has moved focus elsewhere.
func (m *FocusManager) notifyBlur(n blurNotice, want Element) bool {
	m.events.emit(FocusEvent{Kind: FocusEventBlur, Target: n.target, Related: n.related, Container: n.container})
	if m.focused != want {
		return false
	}
	if n.leaving {
		m.events.emit(FocusEvent{Kind: FocusEventLeave, Target: n.target, Related: n.related, Container: n.container})
	}
	return m.focused == want
}

// blur clears focus from e, then notifies.
func (m *FocusManager) blur(e, next Element) {
	n := m.captureBlur(e, next)
	m.focused = nil
	e.SetFocused(false)
	if m.focused != nil {
		return
	}
	m.notifyBlur(n, nil)
}

// SetComponentEnabled enables or disables e. Disabling the focused element
// moves focus forward, then backward, and blurs it if nothing else can
// take focus.
func (m *FocusManager) SetComponentEnabled(e Element, enabled bool) {
	if enabled {
		delete(m.disabled, e)
		return
	}
	m.disabled[e] = struct{}{}
	m.reassignFrom(e)
}

// SetComponentVisible shows or hides e for focus purposes, with the same
// reassignment as SetComponentEnabled.
func (m *FocusManager) SetComponentVisible(e Element, visible bool) {
	if visible {
		delete(m.hidden, e)
		return
	}
	m.hidden[e] = struct{}{}
	m.reassignFrom(e)
}

// reassignFrom moves focus off e after it stopped being focusable.
func (m *FocusManager) reassignFrom(e Element) {
	if m.focused != e {
		return
	}
	if m.FocusNext(TabForward) && m.focused != e {
		return
	}
	if m.FocusNext(TabBackward) && m.focused != e {
		return
	}
	if m.focused == e {
		m.blur(e, nil)
	}
}

// SetFocusPolicy replaces the set of sources allowed to acquire focus.
func (m *FocusManager) SetFocusPolicy(sources ...FocusSource) {
	m.policy = newFocusPolicy(sources)
}

// FocusPolicy returns the sources allowed to acquire focus.
func (m *FocusManager) FocusPolicy() []FocusSource {
	return m.policy.sources()
}

// On registers a lifecycle listener for kind.
func (m *FocusManager) On(kind FocusEventKind, fn FocusListener) Subscription {
	return m.events.on(kind, fn)
}

// Off removes a lifecycle listener. Returns false if it was not registered.
func (m *FocusManager) Off(sub Subscription) bool {
	return m.events.off(sub)
}

// Focused returns the focused element, or nil.
func (m *FocusManager) Focused() Element {
	return m.focused
}

// ActiveContainer returns the active container, or nil.
func (m *FocusManager) ActiveContainer() *Container {
	return m.active
}

// ActiveContainerID returns the active container's id, or "".
func (m *FocusManager) ActiveContainerID() string {
	if m.active == nil {
		return ""
	}
	return m.active.id
}

// History returns the focus history, oldest first.
func (m *FocusManager) History() []Element {
	return m.history.snapshot()
}

// Reset blurs the focused element and drops every container, element and
// modal. Policy and lifecycle listeners are kept.
func (m *FocusManager) Reset() {
	if m.focused != nil {
		m.blur(m.focused, nil)
	}
	if e := m.focused; e != nil {
		m.focused = nil
		e.SetFocused(false)
	}
	m.containers = make(map[string]*Container)
	m.containerOrder = nil
	m.owner = make(map[Element]*Container)
	m.active = nil
	m.history.reset()
	m.modals = nil
	m.disabled = make(map[Element]struct{})
	m.hidden = make(map[Element]struct{})
	m.order = make(map[Element]int)
	m.log.Debug("focus manager reset")
}
