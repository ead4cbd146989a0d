package ui

const (
	// FirstFocusableID is the first identifier handed out to focusable
	// widgets after a reset.
	FirstFocusableID = 0
	// FirstNoFocusID is the first identifier of widgets that are skipped
	// by focus traversal.
	FirstNoFocusID = 1000
)

// IDAllocator hands out widget identifiers from two independent sequences.
// Focus traversal follows the numeric order of focusable identifiers, so
// decorative widgets draw from a separate counter.
type IDAllocator struct {
	focus   int
	noFocus int
	layouts int
}

// NewIDAllocator returns an allocator positioned at the first identifier
// of both sequences.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{focus: FirstFocusableID, noFocus: FirstNoFocusID}
}

// NextFocusable returns the next identifier for a widget that takes focus.
func (a *IDAllocator) NextFocusable() int {
	id := a.focus
	a.focus++
	return id
}

// NextNonFocusable returns the next identifier for a widget skipped by
// focus traversal.
func (a *IDAllocator) NextNonFocusable() int {
	id := a.noFocus
	a.noFocus++
	return id
}

// ResetAll restarts both sequences. Call it once per screen construction,
// never while a layout pass is running.
func (a *IDAllocator) ResetAll() {
	if a.layouts > 0 {
		violate(KindDuplicateIdentifier, "identifier reset during a layout pass")
	}
	a.focus = FirstFocusableID
	a.noFocus = FirstNoFocusID
}

func (a *IDAllocator) begin() { a.layouts++ }
func (a *IDAllocator) end()   { a.layouts-- }

func (a *IDAllocator) next(focusable bool) int {
	if focusable {
		return a.NextFocusable()
	}
	return a.NextNonFocusable()
}
