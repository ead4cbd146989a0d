package ui

var _ Element = (*Ribbon)(nil)

// Ribbon is a row of items of which exactly one is selected. Items
// delegate to the ribbon, which reports their activation under its own
// name. The ribbon takes focus; its items do not.
type Ribbon struct {
	Widget
	selection int
}

func NewRibbon() *Ribbon {
	r := &Ribbon{selection: -1}
	r.init(r, TypeRibbon)
	return r
}

func (r *Ribbon) AddChild(child Element) {
	r.Widget.AddChild(child)
	cb := child.Base()
	cb.focusable = false
	cb.SetEventDelegate(r)
	if r.selection < 0 {
		r.Select(0)
	}
}

// SelectedItem returns the selected item, nil for an empty ribbon.
func (r *Ribbon) SelectedItem() Element {
	if r.selection < 0 {
		return nil
	}
	return r.children[r.selection]
}

func (r *Ribbon) SelectedIndex() int { return r.selection }

// Select marks item i as selected. Out of range indexes are ignored.
func (r *Ribbon) Select(i int) {
	if i < 0 || i >= len(r.children) {
		return
	}
	for j, c := range r.children {
		c.Base().selected = j == i
	}
	r.selection = i
}

// Move lays the items out as a horizontal row unless the layout property
// says otherwise.
func (r *Ribbon) Move(x, y, w, h int) error {
	r.setBounds(x, y, w, h)
	if len(r.children) == 0 {
		return nil
	}
	mode := r.Props.Value(PropLayout)
	if mode == "" {
		mode = LayoutHorizontalRow
	}
	return r.layoutChildrenAs(mode)
}

func (r *Ribbon) LeftPressed() bool  { return r.moveSelection(-1) }
func (r *Ribbon) RightPressed() bool { return r.moveSelection(1) }

// MouseHovered selects the hovered item.
func (r *Ribbon) MouseHovered(child Element) bool {
	i := r.indexOf(child)
	if i < 0 || i == r.selection {
		return false
	}
	r.Select(i)
	return true
}

func (r *Ribbon) Focused() {
	if r.selection < 0 {
		r.Select(0)
	}
}

// TransmitEvent selects the activated item and renames the event after the
// ribbon.
func (r *Ribbon) TransmitEvent(ev *Event) bool {
	if i := r.indexOf(ev.Source); i >= 0 {
		r.Select(i)
	}
	ev.Name = r.Name()
	return true
}

func (r *Ribbon) moveSelection(delta int) bool {
	next := r.selection + delta
	if next < 0 || next >= len(r.children) {
		return false
	}
	r.Select(next)
	return true
}
