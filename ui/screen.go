package ui

import (
	"fmt"
	"log"
	"sort"
)

// activatable is implemented by widgets that change state when activated,
// before the event is dispatched.
type activatable interface {
	Activated()
}

// Screen manages one tree of widgets: layout, identifiers, presentation
// and input routing.
type Screen struct {
	roots     []Element
	viewport  Rectangle
	ids       *IDAllocator
	presenter Presenter
	handler   EventHandler
	logger    *log.Logger

	focusable map[int]Element
	noFocus   map[int]Element
	order     []int
	focused   Element
	ready     bool
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) ScreenOption {
	return func(s *Screen) { s.logger = l }
}

// WithIDAllocator shares an allocator between screens.
func WithIDAllocator(a *IDAllocator) ScreenOption {
	return func(s *Screen) { s.ids = a }
}

// NewScreen creates an empty screen covering viewport. p may be nil for a
// screen that is never presented.
func NewScreen(viewport Rectangle, p Presenter, h EventHandler, opts ...ScreenOption) *Screen {
	s := &Screen{
		viewport:  viewport,
		presenter: p,
		handler:   h,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewIDAllocator()
	}
	return s
}

// AddRoot adds a top level widget. Roots are laid out against the viewport.
func (s *Screen) AddRoot(e Element) {
	s.roots = append(s.roots, e)
}

func (s *Screen) Roots() []Element { return s.roots }

func (s *Screen) Viewport() Rectangle { return s.viewport }

// Init builds the screen: identifiers restart, every root is laid out,
// widgets are registered, then added to the presenter parents first.
// The first focusable widget receives focus. When an Add fails, the
// handles created so far are released and the roots are kept, so Init may
// be called again once the cause is fixed.
func (s *Screen) Init() error {
	s.ids.ResetAll()
	s.focusable = make(map[int]Element)
	s.noFocus = make(map[int]Element)
	s.order = s.order[:0]
	s.focused = nil
	s.ready = false

	for _, root := range s.roots {
		if err := Layout(root, s.viewport, s.ids); err != nil {
			s.logger.Printf("ui: screen layout failed: %v", err)
			return err
		}
	}
	s.walk(func(e Element) bool {
		s.register(e)
		return true
	})
	sort.Ints(s.order)

	var err error
	s.walk(func(e Element) bool {
		if err != nil {
			return false
		}
		if addErr := e.Add(s.presenter); addErr != nil {
			err = fmt.Errorf("add %s: %w", e.Base().describe(), addErr)
			return false
		}
		return true
	})
	if err != nil {
		s.logger.Printf("ui: %v", err)
		s.walk(func(e Element) bool {
			e.Base().releaseHandles()
			return false
		})
		return err
	}
	s.ready = true
	s.FocusNext()
	return nil
}

func (s *Screen) register(e Element) {
	b := e.Base()
	m := s.noFocus
	if b.focusable {
		m = s.focusable
	}
	if other, ok := m[b.id]; ok && other.Base() != b {
		violate(KindDuplicateIdentifier, "%s and %s share an identifier", other.Base().describe(), b.describe())
	}
	m[b.id] = e
	if b.focusable {
		s.order = append(s.order, b.id)
	}
}

// Update advances every widget by dt seconds, in tree order.
func (s *Screen) Update(dt float64) {
	s.walk(func(e Element) bool {
		e.Update(dt)
		return true
	})
}

// UpdateWindowSize resizes the viewport and moves every root accordingly.
func (s *Screen) UpdateWindowSize(width, height int) error {
	s.viewport.Width = width
	s.viewport.Height = height
	for _, root := range s.roots {
		if err := Relayout(root, s.viewport); err != nil {
			s.logger.Printf("ui: relayout after resize to %dx%d failed: %v", width, height, err)
			return err
		}
	}
	return nil
}

// Find returns the first widget whose id property is name.
func (s *Screen) Find(name string) Element {
	var found Element
	s.walk(func(e Element) bool {
		if found == nil && e.Base().Name() == name {
			found = e
		}
		return found == nil
	})
	return found
}

// FocusableByID returns the focusable widget with identifier id.
func (s *Screen) FocusableByID(id int) Element {
	return s.focusable[id]
}

func (s *Screen) Focused() Element { return s.focused }

// Focus gives the focus to e, which must be a focusable widget of this
// screen.
func (s *Screen) Focus(e Element) bool {
	b := e.Base()
	if !s.ready || !b.focusable || !b.hasID || s.focusable[b.id] == nil || s.focusable[b.id].Base() != b {
		s.logger.Printf("ui: cannot focus %s", b.describe())
		return false
	}
	s.focused = e
	e.Focused()
	return true
}

// FocusNext moves the focus to the next focusable widget in identifier
// order, wrapping around.
func (s *Screen) FocusNext() Element { return s.cycleFocus(1) }

// FocusPrev moves the focus to the previous focusable widget.
func (s *Screen) FocusPrev() Element { return s.cycleFocus(-1) }

func (s *Screen) cycleFocus(delta int) Element {
	if len(s.order) == 0 {
		return nil
	}
	i := 0
	if s.focused != nil {
		cur, _ := s.focused.Base().ID()
		i = sort.SearchInts(s.order, cur)
		i = (i + delta + len(s.order)) % len(s.order)
	} else if delta < 0 {
		i = len(s.order) - 1
	}
	e := s.focusable[s.order[i]]
	s.Focus(e)
	return e
}

// Activate reports an activation of e, such as a click or the confirm key.
// It returns whether the event handler was notified.
func (s *Screen) Activate(e Element) bool {
	if a, ok := e.(activatable); ok {
		a.Activated()
	}
	return Dispatch(NewEvent(e), s.handler)
}

// LeftPressed routes the left key to the focused widget, or to its
// delegate when it has one.
func (s *Screen) LeftPressed() bool {
	return s.direction(Element.LeftPressed)
}

// RightPressed routes the right key like LeftPressed.
func (s *Screen) RightPressed() bool {
	return s.direction(Element.RightPressed)
}

func (s *Screen) direction(press func(Element) bool) bool {
	target := s.focused
	if target == nil {
		return false
	}
	if d := target.Base().delegate; d != nil {
		target = d
	}
	if !press(target) {
		return false
	}
	return Dispatch(NewEvent(target), s.handler)
}

// Hover reports the pointer at (x, y). The hovered widget is offered to its
// delegate, which decides whether the event handler hears about it.
func (s *Screen) Hover(x, y int) bool {
	e := s.HitTest(x, y)
	if e == nil {
		return false
	}
	d := e.Base().delegate
	if d == nil || !d.MouseHovered(e) {
		return false
	}
	return Dispatch(NewEvent(d), s.handler)
}

// HitTest returns the innermost presented widget containing (x, y). Widgets
// without a handle are never hit, though their children may be.
func (s *Screen) HitTest(x, y int) Element {
	var hit Element
	s.walk(func(e Element) bool {
		b := e.Base()
		if b.destroyed || !b.bounds.Contains(x, y) {
			return false
		}
		if b.handle != nil {
			hit = e
		}
		return true
	})
	return hit
}

// Destroy releases every widget of the screen.
func (s *Screen) Destroy() {
	for _, root := range s.roots {
		root.Base().Destroy()
	}
	s.roots = nil
	s.focusable = nil
	s.noFocus = nil
	s.order = nil
	s.focused = nil
	s.ready = false
}

func (s *Screen) walk(fn func(Element) bool) {
	for _, root := range s.roots {
		Walk(root, fn)
	}
}
