package tuikit

import "sort"

// Container is a named group of elements with its own tab order.
// Containers are created and owned by a FocusManager.
type Container struct {
	id         string
	focusCycle bool
	wrapAround bool
	parent     string
	children   []string

	elements   []Element
	seq        map[Element]uint64 // insertion sequence, breaks order ties
	nextSeq    uint64
	focusIndex int // index of the last focused element, -1 if none
}

// ContainerOption configures a container at creation.
type ContainerOption func(*Container)

// WithFocusCycle sets whether the container participates in tab cycling.
func WithFocusCycle(cycle bool) ContainerOption {
	return func(c *Container) {
		c.focusCycle = cycle
	}
}

// WithWrapAround sets whether linear navigation wraps at the ends.
func WithWrapAround(wrap bool) ContainerOption {
	return func(c *Container) {
		c.wrapAround = wrap
	}
}

// WithParent nests the container under another. A modal trap on the
// parent also admits its descendants.
func WithParent(id string) ContainerOption {
	return func(c *Container) {
		c.parent = id
	}
}

func newContainer(id string, cycle, wrap bool) *Container {
	return &Container{
		id:         id,
		focusCycle: cycle,
		wrapAround: wrap,
		seq:        make(map[Element]uint64),
		focusIndex: -1,
	}
}

// ID returns the container's identifier.
func (c *Container) ID() string { return c.id }

// FocusCycle reports whether the container participates in tab cycling.
func (c *Container) FocusCycle() bool { return c.focusCycle }

// WrapAround reports whether linear navigation wraps at the ends.
func (c *Container) WrapAround() bool { return c.wrapAround }

// Parent returns the parent container's id, or "" for a root container.
func (c *Container) Parent() string { return c.parent }

// Children returns the ids of containers nested directly under this one.
func (c *Container) Children() []string {
	return append([]string(nil), c.children...)
}

// Elements returns the container's elements in tab order.
func (c *Container) Elements() []Element {
	return append([]Element(nil), c.elements...)
}

// Len returns the number of elements in the container.
func (c *Container) Len() int { return len(c.elements) }

// FocusIndex returns the index of the container's last focused element,
// or -1 if none.
func (c *Container) FocusIndex() int { return c.focusIndex }

// Contains reports whether e belongs to the container.
func (c *Container) Contains(e Element) bool {
	return c.indexOf(e) >= 0
}

func (c *Container) indexOf(e Element) int {
	for i, x := range c.elements {
		if x == e {
			return i
		}
	}
	return -1
}

func (c *Container) add(e Element) {
	c.elements = append(c.elements, e)
	c.seq[e] = c.nextSeq
	c.nextSeq++
}

// remove deletes e and returns the index it held, or -1.
func (c *Container) remove(e Element) int {
	idx := c.indexOf(e)
	if idx < 0 {
		return -1
	}
	c.elements = append(c.elements[:idx], c.elements[idx+1:]...)
	delete(c.seq, e)
	if c.focusIndex >= idx {
		c.focusIndex--
	}
	return idx
}

// sortByOrder reorders the elements that have an explicit order key.
// Keyed elements are sorted by (order, insertion) into the slots keyed
// elements already occupy; unkeyed elements keep their positions.
func (c *Container) sortByOrder(order map[Element]int) {
	var focused Element
	if c.focusIndex >= 0 && c.focusIndex < len(c.elements) {
		focused = c.elements[c.focusIndex]
	}

	var slots []int
	var keyed []Element
	for i, e := range c.elements {
		if _, ok := order[e]; ok {
			slots = append(slots, i)
			keyed = append(keyed, e)
		}
	}
	sort.SliceStable(keyed, func(a, b int) bool {
		oa, ob := order[keyed[a]], order[keyed[b]]
		if oa != ob {
			return oa < ob
		}
		return c.seq[keyed[a]] < c.seq[keyed[b]]
	})
	for i, slot := range slots {
		c.elements[slot] = keyed[i]
	}

	if focused != nil {
		c.focusIndex = c.indexOf(focused)
	}
}

func (c *Container) removeChild(id string) {
	for i, child := range c.children {
		if child == id {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}
