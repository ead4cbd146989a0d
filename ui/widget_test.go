package ui

import (
	"errors"
	"testing"
)

// buildTree returns a root with nested containers, leaves and a spinner,
// and the number of widgets in it.
func buildTree() (*Widget, int) {
	root := NewDiv()
	row := NewDiv()
	setProps(row, "layout", LayoutHorizontalRow)
	row.AddChild(NewButton("one"))
	row.AddChild(NewButton("two"))
	root.AddChild(row)
	root.AddChild(NewLabel("caption"))
	root.AddChild(NewSpinner()) // spinner plus its three parts
	return root, 1 + 1 + 2 + 1 + 4
}

func TestDestroyReleasesEveryWidgetOnce(t *testing.T) {
	root, count := buildTree()
	p := &countingPresenter{}
	s := NewScreen(Rectangle{Width: 640, Height: 480}, p, nil, WithLogger(quietLogger()))
	s.AddRoot(root)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if len(p.handles) != count {
		t.Fatalf("created %d handles; want %d", len(p.handles), count)
	}

	root.Destroy()
	root.Destroy()

	if p.released != count {
		t.Errorf("released %d handles; want %d", p.released, count)
	}
	for _, h := range p.handles {
		if h.released != 1 {
			t.Errorf("handle of %s released %d times", h.widget.describe(), h.released)
		}
	}
	Walk(root, func(e Element) bool {
		if !e.Base().Destroyed() || e.Base().Handle() != nil {
			t.Errorf("%s survived destruction", e.Base().describe())
		}
		return true
	})
}

func TestDestroyChildrenFirst(t *testing.T) {
	root := NewDiv()
	child := NewButton("x")
	root.AddChild(child)
	p := &countingPresenter{}
	s := NewScreen(Rectangle{Width: 10, Height: 10}, p, nil, WithLogger(quietLogger()))
	s.AddRoot(root)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	s.Destroy()

	if len(p.order) != 2 || p.order[0] != &child.Widget || p.order[1] != root {
		t.Fatalf("release order = %v; want child then root", p.order)
	}
	if len(s.Roots()) != 0 || s.Focused() != nil {
		t.Error("screen still holds widgets after Destroy")
	}
}

func TestAddChildKeepsTreeShape(t *testing.T) {
	a := NewDiv()
	b := NewDiv()
	c := NewButton("c")
	a.AddChild(b)
	b.AddChild(c)

	expectViolation(t, KindTree, func() { a.AddChild(c) })
	expectViolation(t, KindTree, func() { c.AddChild(a) })
	expectViolation(t, KindTree, func() { a.AddChild(a) })
	if c.Parent() != Element(b) {
		t.Error("failed AddChild moved the child")
	}
}

func TestAddBeforeLayout(t *testing.T) {
	w := NewButton("early")
	if err := w.Add(&countingPresenter{}); !errors.Is(err, ErrNotLaidOut) {
		t.Fatalf("Add error = %v; want ErrNotLaidOut", err)
	}
}

func TestAddPushesGeometryAndText(t *testing.T) {
	l := NewLabel("hello")
	layout(t, l, Rectangle{Width: 120, Height: 30})
	p := &countingPresenter{}
	if err := l.Add(p); err != nil {
		t.Fatal(err)
	}
	h := p.handles[0]
	if h.bounds != (Rectangle{Width: 120, Height: 30}) || h.text != "hello" {
		t.Errorf("handle = %v %q", h.bounds, h.text)
	}

	l.SetText("bye")
	if h.text != "bye" || l.Text() != "bye" {
		t.Errorf("after SetText handle %q, property %q", h.text, l.Text())
	}
	if err := l.Move(5, 5, 60, 20); err != nil {
		t.Fatal(err)
	}
	if h.bounds != (Rectangle{X: 5, Y: 5, Width: 60, Height: 20}) {
		t.Errorf("handle bounds after move = %v", h.bounds)
	}
}

func TestNewElementVariants(t *testing.T) {
	tests := []struct {
		kind      WidgetType
		focusable bool
	}{
		{TypeButton, true},
		{TypeIconButton, true},
		{TypeLabel, false},
		{TypeCheckbox, true},
		{TypeSpinner, true},
		{TypeRibbon, true},
		{TypeDiv, false},
		{TypeSpacer, false},
		{TypeList, true},
		{TypeTextbox, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := NewElement(tt.kind)
			if e.Base().Type() != tt.kind {
				t.Errorf("type = %s", e.Base().Type())
			}
			if e.Base().Focusable() != tt.focusable {
				t.Errorf("focusable = %v; want %v", e.Base().Focusable(), tt.focusable)
			}
		})
	}
}

func TestDecorativeIconTakesNoFocus(t *testing.T) {
	if NewIconButton("logo.png", false).Focusable() {
		t.Error("non-clickable icon is focusable")
	}
}
