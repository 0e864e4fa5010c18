package autocomplete

// Direction is a keyboard navigation step
type Direction int

const (
	Down Direction = iota
	Up
)

// Navigator tracks the highlighted suggestion. The index is -1 when nothing
// is highlighted and otherwise in [0, count).
type Navigator struct {
	index int
	count int
}

// NewNavigator creates a navigator over an empty list
func NewNavigator() *Navigator {
	return &Navigator{index: -1}
}

// Reset clears the highlight for a freshly rendered list of count entries
func (n *Navigator) Reset(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	n.index = -1
}

// Move steps the highlight, wrapping at both ends. It reports whether the
// highlight changed; nothing moves over an empty list.
func (n *Navigator) Move(dir Direction) bool {
	if n.count == 0 {
		return false
	}
	switch dir {
	case Down:
		n.index++
		if n.index >= n.count {
			n.index = 0
		}
	case Up:
		n.index--
		if n.index < 0 {
			n.index = n.count - 1
		}
	default:
		return false
	}
	return true
}

// Escape drops the highlight
func (n *Navigator) Escape() {
	n.index = -1
}

// Index returns the highlighted position or -1
func (n *Navigator) Index() int {
	return n.index
}

// Count returns the number of navigable entries
func (n *Navigator) Count() int {
	return n.count
}

// Current returns the highlighted position and whether it can be committed
func (n *Navigator) Current() (int, bool) {
	if n.index < 0 || n.count == 0 {
		return -1, false
	}
	return n.index, true
}
