// Package ebitenui presents widgets with ebiten: each widget handle is an
// offscreen image blitted to the screen in tree order.
package ebitenui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/OpticalFlyer/kartgui/ui"
)

var _ ui.Presenter = (*Presenter)(nil)

// DefaultPalette colours widgets by type.
var DefaultPalette = map[ui.WidgetType]color.RGBA{
	ui.TypeDiv:        colornames.Darkslategray,
	ui.TypeRibbon:     colornames.Slategray,
	ui.TypeSpinner:    colornames.Steelblue,
	ui.TypeButton:     colornames.Gray,
	ui.TypeIconButton: colornames.Lightslategray,
	ui.TypeCheckbox:   colornames.Seagreen,
	ui.TypeLabel:      colornames.Dimgray,
	ui.TypeList:       colornames.Darkgray,
	ui.TypeTextbox:    colornames.Whitesmoke,
}

var (
	selectedColor = colornames.Darkorange
	focusColor    = colornames.Gold
	borderColor   = colornames.Black
)

// Presenter implements ui.Presenter. Its handles are only valid while the
// game loop runs.
type Presenter struct {
	Palette  map[ui.WidgetType]color.RGBA
	elements []*element
}

func NewPresenter() *Presenter {
	return &Presenter{Palette: DefaultPalette}
}

// Create returns the handle of w. Spacers have nothing to show and get
// none.
func (p *Presenter) Create(w *ui.Widget) (ui.Handle, error) {
	if w.Type() == ui.TypeSpacer {
		return nil, nil
	}
	e := &element{widget: w}
	p.elements = append(p.elements, e)
	return e, nil
}

// Draw blits every live element onto screen, then outlines focused.
func (p *Presenter) Draw(screen *ebiten.Image, focused ui.Element) {
	live := p.elements[:0]
	for _, e := range p.elements {
		if !e.released {
			live = append(live, e)
		}
	}
	clear(p.elements[len(live):])
	p.elements = live

	for _, e := range p.elements {
		e.draw(screen, p.colorOf(e.widget))
	}

	if focused != nil {
		r := focused.Base().Bounds()
		vector.StrokeRect(screen, float32(r.X), float32(r.Y),
			float32(r.Width), float32(r.Height), 2, focusColor, true)
	}
}

func (p *Presenter) colorOf(w *ui.Widget) color.RGBA {
	if w.Selected() {
		return selectedColor
	}
	if c, ok := p.Palette[w.Type()]; ok {
		return c
	}
	return colornames.Gray
}

type element struct {
	widget   *ui.Widget
	img      *ebiten.Image
	bounds   ui.Rectangle
	text     string
	released bool
}

func (e *element) SetBounds(r ui.Rectangle) {
	if e.img != nil && r.Width == e.bounds.Width && r.Height == e.bounds.Height {
		e.bounds = r
		return
	}
	if e.img != nil {
		e.img.Deallocate()
	}
	e.img = ebiten.NewImage(max(1, r.Width), max(1, r.Height))
	e.bounds = r
}

func (e *element) SetText(text string) { e.text = text }

func (e *element) Release() {
	if e.img != nil {
		e.img.Deallocate()
		e.img = nil
	}
	e.released = true
}

func (e *element) draw(screen *ebiten.Image, bg color.RGBA) {
	if e.img == nil || e.bounds.Width <= 0 || e.bounds.Height <= 0 {
		return
	}
	e.img.Fill(bg)
	vector.StrokeRect(e.img, 0, 0, float32(e.bounds.Width), float32(e.bounds.Height), 1, borderColor, true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(e.bounds.X), float64(e.bounds.Y))
	screen.DrawImage(e.img, op)

	if e.text != "" {
		ebitenutil.DebugPrintAt(screen, e.text, e.bounds.X+4, e.bounds.Y+4)
	}
}
