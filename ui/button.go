package ui

var (
	_ Element = (*Button)(nil)
	_ Element = (*IconButton)(nil)
	_ Element = (*Label)(nil)
	_ Element = (*Checkbox)(nil)
)

// Button is a focusable push button showing a text.
type Button struct {
	Widget
}

func NewButton(text string) *Button {
	b := &Button{}
	b.init(b, TypeButton)
	if text != "" {
		b.Props.Set(PropText, text)
	}
	return b
}

func (b *Button) SetLabel(text string) { b.setText(text) }

// IconButton shows an icon with an optional label. A button that is not
// clickable is decoration and takes no focus.
type IconButton struct {
	Widget
	clickable bool
}

func NewIconButton(icon string, clickable bool) *IconButton {
	b := &IconButton{clickable: clickable}
	b.init(b, TypeIconButton)
	b.focusable = clickable
	if icon != "" {
		b.Props.Set(PropIcon, icon)
	}
	return b
}

func (b *IconButton) Clickable() bool { return b.clickable }

func (b *IconButton) Icon() string { return b.Props.Value(PropIcon) }

// SetLabel changes the text shown with the icon.
func (b *IconButton) SetLabel(text string) { b.setText(text) }

// Label displays a text and never takes focus.
type Label struct {
	Widget
}

func NewLabel(text string) *Label {
	l := &Label{}
	l.init(l, TypeLabel)
	if text != "" {
		l.Props.Set(PropText, text)
	}
	return l
}

func (l *Label) Text() string { return l.Props.Value(PropText) }

func (l *Label) SetText(text string) { l.setText(text) }

// Checkbox flips its state each time it is activated. The state lives in
// the selection flag.
type Checkbox struct {
	Widget
}

func NewCheckbox() *Checkbox {
	c := &Checkbox{}
	c.init(c, TypeCheckbox)
	return c
}

func (c *Checkbox) Checked() bool { return c.selected }

func (c *Checkbox) SetChecked(checked bool) { c.selected = checked }

// Activated is called by Screen.Activate before the event is dispatched.
func (c *Checkbox) Activated() { c.selected = !c.selected }
