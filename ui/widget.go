package ui

import "errors"

// ErrNotLaidOut is returned by Add on a widget that has no geometry yet.
var ErrNotLaidOut = errors.New("widget added before layout")

var _ Element = (*Widget)(nil)

// Widget is a node of the widget tree. It is usable on its own for kinds
// without special behaviour and is embedded by every variant.
type Widget struct {
	self Element
	kind WidgetType

	// Props holds the values read from the screen description.
	Props Properties

	parent   Element
	children []Element

	bounds    Rectangle
	laidOut   bool
	id        int
	hasID     bool
	focusable bool

	// selected is used by widgets in a selection group whose handle
	// cannot keep this state itself.
	selected bool

	delegate  Element
	handle    Handle
	destroyed bool
}

// NewWidget returns a plain widget of the given kind.
func NewWidget(kind WidgetType) *Widget {
	w := &Widget{}
	w.init(w, kind)
	return w
}

// NewSpacer returns an empty non-focusable widget.
func NewSpacer() *Widget {
	return NewWidget(TypeSpacer)
}

// init binds w to the variant embedding it.
func (w *Widget) init(self Element, kind WidgetType) {
	w.self = self
	w.kind = kind
	w.focusable = defaultFocusable(kind)
}

func defaultFocusable(kind WidgetType) bool {
	switch kind {
	case TypeNone, TypeLabel, TypeSpacer, TypeDiv:
		return false
	default:
		return true
	}
}

func (w *Widget) Base() *Widget { return w }

func (w *Widget) Type() WidgetType { return w.kind }

// Name returns the id property, the identity used in events.
func (w *Widget) Name() string { return w.Props.Value(PropID) }

// ID returns the numeric identifier assigned by the last layout pass.
func (w *Widget) ID() (int, bool) { return w.id, w.hasID }

func (w *Widget) Bounds() Rectangle { return w.bounds }
func (w *Widget) LaidOut() bool     { return w.laidOut }

func (w *Widget) Focusable() bool { return w.focusable }

// SetFocusable changes the identifier class. It takes effect on the next
// layout pass.
func (w *Widget) SetFocusable(focusable bool) { w.focusable = focusable }

func (w *Widget) Selected() bool { return w.selected }

func (w *Widget) SetSelected(selected bool) { w.selected = selected }

func (w *Widget) Parent() Element { return w.parent }

func (w *Widget) Children() []Element { return w.children }

// Handle returns the renderable representation, nil before Add.
func (w *Widget) Handle() Handle { return w.handle }

func (w *Widget) Destroyed() bool { return w.destroyed }

// AddChild attaches child as the last child. A child that already has a
// parent, or that would close a loop, is a programming error.
func (w *Widget) AddChild(child Element) {
	cb := child.Base()
	if cb.parent != nil {
		violate(KindTree, "%s %q already has a parent", cb.kind, cb.Name())
	}
	for e := w.self; e != nil; e = e.Base().parent {
		if e.Base() == cb {
			violate(KindTree, "%s %q added below itself", cb.kind, cb.Name())
		}
	}
	cb.parent = w.self
	w.children = append(w.children, child)
}

func (w *Widget) EventDelegate() Element { return w.delegate }

// SetEventDelegate routes the events of w through d before they reach the
// event handler. d is not owned by w and must outlive it. Passing nil
// removes the delegate.
func (w *Widget) SetEventDelegate(d Element) {
	for e := d; e != nil; e = e.Base().delegate {
		if e.Base() == w {
			violate(KindDelegateCycle, "delegating %s %q to %q closes a cycle", w.kind, w.Name(), d.Base().Name())
		}
	}
	w.delegate = d
}

// Add creates the handle of w through p and pushes geometry and text to it.
func (w *Widget) Add(p Presenter) error {
	if !w.laidOut {
		return ErrNotLaidOut
	}
	if w.handle != nil || p == nil {
		return nil
	}
	h, err := p.Create(w)
	if err != nil {
		return err
	}
	w.handle = h
	if h != nil {
		h.SetBounds(w.bounds)
		if text, ok := w.Props.Get(PropText); ok {
			w.pushText(text)
		}
	}
	return nil
}

func (w *Widget) Update(dt float64) {}

// Move sets the geometry of w and lays out its children against it.
func (w *Widget) Move(x, y, width, height int) error {
	w.setBounds(x, y, width, height)
	return w.layoutChildren()
}

func (w *Widget) LeftPressed() bool               { return false }
func (w *Widget) RightPressed() bool              { return false }
func (w *Widget) MouseHovered(child Element) bool { return false }
func (w *Widget) Focused()                        {}
func (w *Widget) TransmitEvent(ev *Event) bool    { return true }

// Destroy releases the subtree rooted at w, children first. Later calls
// are no-ops.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	for _, c := range w.children {
		c.Base().Destroy()
	}
	if w.handle != nil {
		w.handle.Release()
		w.handle = nil
	}
	w.destroyed = true
}

// releaseHandles drops the handles of the subtree rooted at w, children
// first. Unlike Destroy it leaves the widgets usable for another Add.
func (w *Widget) releaseHandles() {
	for _, c := range w.children {
		c.Base().releaseHandles()
	}
	if w.handle != nil {
		w.handle.Release()
		w.handle = nil
	}
}

func (w *Widget) setBounds(x, y, width, height int) {
	w.bounds = Rectangle{X: x, Y: y, Width: width, Height: height}
	w.laidOut = true
	if w.handle != nil {
		w.handle.SetBounds(w.bounds)
	}
}

// setText rewrites the text property and the handle text.
func (w *Widget) setText(text string) {
	w.Props.Set(PropText, text)
	w.pushText(text)
}

func (w *Widget) pushText(text string) {
	if th, ok := w.handle.(TextHandle); ok {
		th.SetText(text)
	}
}

func (w *Widget) indexOf(child Element) int {
	for i, c := range w.children {
		if c.Base() == child.Base() {
			return i
		}
	}
	return -1
}

// Walk calls fn for e and its descendants in depth-first pre-order. When fn
// returns false the children of that element are skipped.
func Walk(e Element, fn func(Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Base().children {
		Walk(c, fn)
	}
}
