package ui

import "fmt"

// WidgetType identifies the kind of a widget. It is set once at construction.
type WidgetType int

const (
	TypeNone WidgetType = iota - 1
	TypeRibbon
	TypeSpinner
	TypeButton
	TypeIconButton
	TypeCheckbox
	TypeLabel
	TypeSpacer
	TypeDiv
	TypeRibbonGrid
	TypeModelView
	TypeList
	TypeTextbox
)

var typeNames = map[WidgetType]string{
	TypeNone:       "none",
	TypeRibbon:     "ribbon",
	TypeSpinner:    "spinner",
	TypeButton:     "button",
	TypeIconButton: "icon-button",
	TypeCheckbox:   "checkbox",
	TypeLabel:      "label",
	TypeSpacer:     "spacer",
	TypeDiv:        "div",
	TypeRibbonGrid: "ribbon_grid",
	TypeModelView:  "model",
	TypeList:       "list",
	TypeTextbox:    "textbox",
}

func (t WidgetType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("WidgetType(%d)", int(t))
}

// ParseWidgetType maps a declarative tag name to its widget type.
func ParseWidgetType(name string) (WidgetType, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return TypeNone, false
}

// Rectangle represents the resolved bounds of a widget in screen pixels.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside r.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// NoViewport lays out a root without any enclosing extent. Percentage
// expressions on such a root cannot be resolved.
var NoViewport = Rectangle{Width: NoParent, Height: NoParent}

// Handle is the renderable representation of a widget created by Add.
// The widget owns it and releases it exactly once on destruction.
type Handle interface {
	SetBounds(r Rectangle)
	Release()
}

// TextHandle is implemented by handles that display a text.
type TextHandle interface {
	Handle
	SetText(text string)
}

// Presenter creates the renderable representation of widgets.
type Presenter interface {
	Create(w *Widget) (Handle, error)
}

// EventHandler receives events that made it through the delegation chain.
type EventHandler interface {
	HandleEvent(ev Event)
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ev Event)

func (f EventHandlerFunc) HandleEvent(ev Event) { f(ev) }

// Element is implemented by every widget variant. Variants embed Widget and
// override only the hooks they need.
type Element interface {
	Base() *Widget

	// AddChild attaches child as the last child of the element.
	AddChild(child Element)

	// Add creates the renderable representation. It runs once, after
	// layout assigned geometry and an identifier.
	Add(p Presenter) error

	// Update is called once per frame.
	Update(dt float64)

	// Move sets the geometry and lays out the children again.
	Move(x, y, w, h int) error

	// LeftPressed and RightPressed handle directional keys while the
	// element has focus. They return true if the event handler should be
	// notified.
	LeftPressed() bool
	RightPressed() bool

	// MouseHovered is called on a delegate when one of the widgets it
	// supervises is hovered. True notifies the event handler.
	MouseHovered(child Element) bool

	// Focused is called when the element receives focus.
	Focused()

	// TransmitEvent is offered events from widgets delegating to this
	// element. It may rename ev. True lets the event propagate further.
	TransmitEvent(ev *Event) bool
}
