package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/kartgui/ebitenui"
	"github.com/OpticalFlyer/kartgui/screenfile"
	"github.com/OpticalFlyer/kartgui/ui"
)

//go:embed default_screen.yaml
var defaultScreen []byte

// KartGUI implements ebiten.Game around a single ui.Screen.
type KartGUI struct {
	screen    *ui.Screen
	presenter *ebitenui.Presenter
	debugMode bool

	lastUpdate time.Time
	lastMouseX int
	lastMouseY int
	lastEvent  string

	// Touch state, used to turn taps into activations
	lastTouchX map[ebiten.TouchID]int
	lastTouchY map[ebiten.TouchID]int
}

func (g *KartGUI) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}

	// Keyboard navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.screen.FocusPrev()
		} else {
			g.screen.FocusNext()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.screen.LeftPressed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.screen.RightPressed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if focused := g.screen.Focused(); focused != nil {
			g.screen.Activate(focused)
		}
	}

	// Mouse hover and clicks
	x, y := ebiten.CursorPosition()
	if x != g.lastMouseX || y != g.lastMouseY {
		g.screen.Hover(x, y)
		g.lastMouseX, g.lastMouseY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.activateAt(x, y)
	}

	g.handleTouchEvents()

	g.screen.Update(dt)
	return nil
}

// activateAt focuses and activates the widget under (x, y), if any.
func (g *KartGUI) activateAt(x, y int) {
	e := g.screen.HitTest(x, y)
	if e == nil {
		return
	}
	if e.Base().Focusable() {
		g.screen.Focus(e)
	}
	g.screen.Activate(e)
}

func (g *KartGUI) Draw(screen *ebiten.Image) {
	g.presenter.Draw(screen, g.screen.Focused())

	if g.debugMode {
		debugText := fmt.Sprintf("FPS: %.2f TPS: %.2f\nLast event: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.lastEvent)
		ebitenutil.DebugPrint(screen, debugText)
	}
}

func (g *KartGUI) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := g.screen.UpdateWindowSize(outsideWidth, outsideHeight); err != nil {
		log.Printf("resize to %dx%d: %v", outsideWidth, outsideHeight, err)
	}
	return outsideWidth, outsideHeight
}

// HandleEvent receives the events that made it through the widgets.
func (g *KartGUI) HandleEvent(ev ui.Event) {
	g.lastEvent = ev.Name
	src := ev.Source.Base()
	log.Printf("event %q from %s %q", ev.Name, src.Type(), src.Name())
}

func main() {
	screenPath := flag.String("screen", "", "screen description (YAML); the built-in race setup screen when empty")
	width := flag.Int("width", 800, "initial window width")
	height := flag.Int("height", 600, "initial window height")
	title := flag.String("title", "KartGUI", "window title")
	debug := flag.Bool("debug", false, "start with the debug overlay")
	flag.Parse()

	var (
		roots []ui.Element
		err   error
	)
	if *screenPath != "" {
		roots, err = screenfile.Load(*screenPath)
	} else {
		roots, err = screenfile.Parse(defaultScreen)
	}
	if err != nil {
		log.Fatal(err)
	}

	app := &KartGUI{
		presenter:  ebitenui.NewPresenter(),
		debugMode:  *debug,
		lastUpdate: time.Now(),
	}
	viewport := ui.Rectangle{Width: *width, Height: *height}
	app.screen = ui.NewScreen(viewport, app.presenter, app)
	for _, root := range roots {
		app.screen.AddRoot(root)
	}
	if err := app.screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer app.screen.Destroy()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(*title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
