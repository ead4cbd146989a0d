package ui

import "strconv"

var _ Element = (*Spinner)(nil)

const (
	defaultSpinnerMin = 0
	defaultSpinnerMax = 10
)

// Spinner picks an integer between min_value and max_value. It is built
// from two arrow buttons around a value label; the parts delegate their
// events to the spinner, which reports them under its own name.
type Spinner struct {
	Widget
	value  int
	lo, hi int

	left  *IconButton
	label *Label
	right *IconButton
}

func NewSpinner() *Spinner {
	s := &Spinner{lo: defaultSpinnerMin, hi: defaultSpinnerMax}
	s.init(s, TypeSpinner)

	s.left = NewIconButton("left.png", true)
	s.label = NewLabel("")
	s.right = NewIconButton("right.png", true)
	for _, part := range []*Widget{&s.left.Widget, &s.label.Widget, &s.right.Widget} {
		part.focusable = false
		s.Widget.AddChild(part.self)
		part.SetEventDelegate(s)
	}
	return s
}

// AddChild panics: the parts of a spinner are fixed.
func (s *Spinner) AddChild(child Element) {
	violate(KindTree, "spinner %q cannot take declared children", s.Name())
}

// Limits returns the bounds from min_value and max_value.
func (s *Spinner) Limits() (lo, hi int, err error) {
	if lo, err = s.Props.Int(PropMinValue, defaultSpinnerMin); err != nil {
		return defaultSpinnerMin, defaultSpinnerMax, err
	}
	if hi, err = s.Props.Int(PropMaxValue, defaultSpinnerMax); err != nil {
		return defaultSpinnerMin, defaultSpinnerMax, err
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi, nil
}

func (s *Spinner) Value() int { return s.value }

// SetValue clamps v to the limits read by Add, or to the defaults before
// that, and shows it.
func (s *Spinner) SetValue(v int) {
	s.value = min(max(v, s.lo), s.hi)
	s.label.SetText(strconv.Itoa(s.value))
}

// Add validates the limits and creates the spinner's own handle. The
// parts are added by the screen like any other child.
func (s *Spinner) Add(p Presenter) error {
	lo, hi, err := s.Limits()
	if err != nil {
		return err
	}
	s.lo, s.hi = lo, hi
	s.SetValue(s.value)
	return s.Widget.Add(p)
}

// Move puts square arrows at both ends and the value label between them.
func (s *Spinner) Move(x, y, w, h int) error {
	s.setBounds(x, y, w, h)
	arrow := h
	if 2*arrow > w {
		arrow = w / 3
	}
	if err := s.left.Move(x, y, arrow, h); err != nil {
		return err
	}
	if err := s.label.Move(x+arrow, y, w-2*arrow, h); err != nil {
		return err
	}
	return s.right.Move(x+w-arrow, y, arrow, h)
}

func (s *Spinner) LeftPressed() bool  { return s.step(-1) }
func (s *Spinner) RightPressed() bool { return s.step(1) }

// TransmitEvent turns arrow clicks into value changes named after the
// spinner. Clicks that leave the value unchanged are absorbed.
func (s *Spinner) TransmitEvent(ev *Event) bool {
	var changed bool
	switch ev.Source.Base() {
	case &s.left.Widget:
		changed = s.step(-1)
	case &s.right.Widget:
		changed = s.step(1)
	}
	ev.Name = s.Name()
	return changed
}

func (s *Spinner) step(delta int) bool {
	old := s.value
	s.SetValue(s.value + delta)
	return s.value != old
}
