package ui

import "fmt"

// Row layouts understood by the layout property.
const (
	LayoutHorizontalRow = "horizontal-row"
	LayoutVerticalRow   = "vertical-row"
)

// Layout resolves the geometry of the tree rooted at root, parents before
// children, then assigns identifiers in the same order. The root resolves
// against viewport; pass NoViewport for a root without enclosing extent.
// On error nothing is assigned identifiers and the returned *LayoutError
// names the failing widget.
func Layout(root Element, viewport Rectangle, ids *IDAllocator) error {
	ids.begin()
	defer ids.end()

	if err := Relayout(root, viewport); err != nil {
		return err
	}
	Walk(root, func(e Element) bool {
		b := e.Base()
		b.id = ids.next(b.focusable)
		b.hasID = true
		return true
	})
	return nil
}

// Relayout resolves root against viewport and moves it, which cascades to
// the whole tree. Identifiers are left untouched.
func Relayout(root Element, viewport Rectangle) error {
	r, err := resolveRect(root.Base(), viewport)
	if err != nil {
		return err
	}
	return root.Move(r.X, r.Y, r.Width, r.Height)
}

func (w *Widget) layoutChildren() error {
	if len(w.children) == 0 {
		return nil
	}
	return w.layoutChildrenAs(w.Props.Value(PropLayout))
}

func (w *Widget) layoutChildrenAs(mode string) error {
	switch mode {
	case LayoutHorizontalRow:
		return w.layoutRow(true)
	case LayoutVerticalRow:
		return w.layoutRow(false)
	case "":
		for _, c := range w.children {
			r, err := resolveRect(c.Base(), w.bounds)
			if err != nil {
				return err
			}
			if err := c.Move(r.X, r.Y, r.Width, r.Height); err != nil {
				return err
			}
		}
		return nil
	default:
		return w.layoutError(PropLayout, mode, ErrMalformedProperty)
	}
}

// layoutRow places the children one after another along the main axis.
// Children with an explicit main size keep it, the rest share what is left
// according to their proportion.
func (w *Widget) layoutRow(horizontal bool) error {
	mainKey, crossKey := PropWidth, PropHeight
	mainExtent, crossExtent := w.bounds.Width, w.bounds.Height
	if !horizontal {
		mainKey, crossKey = PropHeight, PropWidth
		mainExtent, crossExtent = crossExtent, mainExtent
	}

	sizes := make([]int, len(w.children))
	props := make([]int, len(w.children))
	fixed, total := 0, 0
	for i, c := range w.children {
		cb := c.Base()
		v, ok, err := cb.resolveProp(mainKey, mainExtent)
		if err != nil {
			return err
		}
		if ok {
			sizes[i] = v
			fixed += v
			continue
		}
		p, err := cb.Props.Int(PropProportion, 1)
		if err != nil {
			return cb.layoutError(PropProportion, cb.Props.Value(PropProportion), err)
		}
		if p < 0 {
			return cb.layoutError(PropProportion, cb.Props.Value(PropProportion), ErrMalformedProperty)
		}
		props[i] = p
		total += p
	}

	remaining := max(0, mainExtent-fixed)
	last := -1
	for i := range w.children {
		if props[i] > 0 {
			last = i
		}
	}
	given := 0
	for i := range w.children {
		if props[i] == 0 {
			continue
		}
		if i == last {
			sizes[i] = remaining - given
		} else {
			sizes[i] = remaining * props[i] / total
		}
		given += sizes[i]
	}

	pos := 0
	for i, c := range w.children {
		cb := c.Base()
		cross, ok, err := cb.resolveProp(crossKey, crossExtent)
		if err != nil {
			return err
		}
		if !ok {
			cross = crossExtent
		}
		var offset int
		switch cb.Props.Value(PropAlign) {
		case "", "top", "left":
		case "center":
			offset = (crossExtent - cross) / 2
		case "bottom", "right":
			offset = crossExtent - cross
		default:
			return cb.layoutError(PropAlign, cb.Props.Value(PropAlign), ErrMalformedProperty)
		}

		r := Rectangle{X: w.bounds.X + pos, Y: w.bounds.Y + offset, Width: sizes[i], Height: cross}
		if !horizontal {
			r = Rectangle{X: w.bounds.X + offset, Y: w.bounds.Y + pos, Width: cross, Height: sizes[i]}
		}
		r.Width, r.Height, err = cb.constrain(r.Width, r.Height, Rectangle{Width: w.bounds.Width, Height: w.bounds.Height})
		if err != nil {
			return err
		}
		if err := c.Move(r.X, r.Y, r.Width, r.Height); err != nil {
			return err
		}
		pos += sizes[i]
	}
	return nil
}

// resolveRect resolves the coordinate properties of w inside parent. Size
// resolves first: a negative x or y is measured from the far edge of the
// parent and needs the widget's own extent.
func resolveRect(w *Widget, parent Rectangle) (Rectangle, error) {
	width, ok, err := w.resolveProp(PropWidth, parent.Width)
	if err != nil {
		return Rectangle{}, err
	}
	if !ok {
		if parent.Width < 0 {
			return Rectangle{}, w.layoutError(PropWidth, "", ErrUnresolvableCoordinate)
		}
		width = parent.Width
	}
	height, ok, err := w.resolveProp(PropHeight, parent.Height)
	if err != nil {
		return Rectangle{}, err
	}
	if !ok {
		if parent.Height < 0 {
			return Rectangle{}, w.layoutError(PropHeight, "", ErrUnresolvableCoordinate)
		}
		height = parent.Height
	}
	if width, height, err = w.constrain(width, height, parent); err != nil {
		return Rectangle{}, err
	}

	x, err := w.resolveOffset(PropX, parent.Width, width)
	if err != nil {
		return Rectangle{}, err
	}
	y, err := w.resolveOffset(PropY, parent.Height, height)
	if err != nil {
		return Rectangle{}, err
	}
	return Rectangle{X: parent.X + x, Y: parent.Y + y, Width: width, Height: height}, nil
}

func (w *Widget) resolveOffset(key Property, parentExtent, own int) (int, error) {
	v, ok, err := w.resolveProp(key, parentExtent)
	if err != nil || !ok || v >= 0 {
		return v, err
	}
	if parentExtent < 0 {
		return 0, w.layoutError(key, w.Props.Value(key), ErrUnresolvableCoordinate)
	}
	return parentExtent - own + v, nil
}

// constrain applies max_width, max_height and square, and rejects negative
// extents.
func (w *Widget) constrain(width, height int, parent Rectangle) (int, int, error) {
	if width < 0 {
		return 0, 0, w.layoutError(PropWidth, w.Props.Value(PropWidth), ErrMalformedCoordinate)
	}
	if height < 0 {
		return 0, 0, w.layoutError(PropHeight, w.Props.Value(PropHeight), ErrMalformedCoordinate)
	}
	if mw, ok, err := w.resolveProp(PropMaxWidth, parent.Width); err != nil {
		return 0, 0, err
	} else if ok && width > mw {
		width = mw
	}
	if mh, ok, err := w.resolveProp(PropMaxHeight, parent.Height); err != nil {
		return 0, 0, err
	} else if ok && height > mh {
		height = mh
	}
	square, err := w.Props.Bool(PropSquare, false)
	if err != nil {
		return 0, 0, w.layoutError(PropSquare, w.Props.Value(PropSquare), err)
	}
	if square {
		side := min(width, height)
		width, height = side, side
	}
	return width, height, nil
}

// resolveProp resolves a coordinate property. ok is false when the property
// is absent.
func (w *Widget) resolveProp(key Property, parentExtent int) (v int, ok bool, err error) {
	expr, ok := w.Props.Get(key)
	if !ok {
		return 0, false, nil
	}
	v, err = ResolveCoord(expr, parentExtent)
	if err != nil {
		return 0, true, w.layoutError(key, expr, err)
	}
	return v, true, nil
}

func (w *Widget) layoutError(key Property, expr string, err error) *LayoutError {
	return &LayoutError{Type: w.kind, Name: w.Name(), Property: key, Expr: expr, Err: err}
}

func (w *Widget) describe() string {
	if id, ok := w.ID(); ok {
		return fmt.Sprintf("%s %q #%d", w.kind, w.Name(), id)
	}
	return fmt.Sprintf("%s %q", w.kind, w.Name())
}
