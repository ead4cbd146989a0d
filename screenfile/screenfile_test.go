package screenfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpticalFlyer/kartgui/ui"
)

const raceSetup = `
widgets:
  - type: div
    props: {id: root, width: "100%", height: "100%", layout: vertical-row}
    children:
      - type: label
        props: {id: title, text: Race setup}
      - type: tabs
        props: {id: difficulty}
        children:
          - type: button
            props: {id: easy, text: Easy}
          - type: button
            props: {id: hard, text: Hard}
      - type: spinner
        props: {id: laps, min_value: "1", max_value: "20"}
      - type: icon
        props: {id: logo, icon: kart.png, square: "true"}
`

func TestParseBuildsTree(t *testing.T) {
	roots, err := Parse([]byte(raceSetup))
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots; want 1", len(roots))
	}
	root := roots[0].Base()
	if root.Type() != ui.TypeDiv || root.Name() != "root" {
		t.Errorf("root = %s %q", root.Type(), root.Name())
	}

	kids := root.Children()
	wantTypes := []ui.WidgetType{ui.TypeLabel, ui.TypeRibbon, ui.TypeSpinner, ui.TypeIconButton}
	if len(kids) != len(wantTypes) {
		t.Fatalf("root has %d children; want %d", len(kids), len(wantTypes))
	}
	for i, want := range wantTypes {
		if got := kids[i].Base().Type(); got != want {
			t.Errorf("child %d type = %s; want %s", i, got, want)
		}
	}

	ribbon, ok := kids[1].(*ui.Ribbon)
	if !ok {
		t.Fatalf("tabs built as %T", kids[1])
	}
	if ribbon.SelectedIndex() != 0 || len(ribbon.Children()) != 2 {
		t.Errorf("ribbon selection %d with %d items", ribbon.SelectedIndex(), len(ribbon.Children()))
	}
	if ribbon.Children()[1].Base().EventDelegate() != ui.Element(ribbon) {
		t.Error("ribbon item does not delegate to the ribbon")
	}
	if kids[3].Base().Focusable() {
		t.Error("declared icon is focusable")
	}
	if got := kids[0].Base().Props.Value(ui.PropText); got != "Race setup" {
		t.Errorf("label text = %q", got)
	}
}

func TestParsedScreenLaysOut(t *testing.T) {
	roots, err := Parse([]byte(raceSetup))
	if err != nil {
		t.Fatal(err)
	}
	s := ui.NewScreen(ui.Rectangle{Width: 400, Height: 400}, nil, nil)
	for _, r := range roots {
		s.AddRoot(r)
	}
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	laps, ok := s.Find("laps").(*ui.Spinner)
	if !ok {
		t.Fatalf("laps is %T", s.Find("laps"))
	}
	if got := laps.Bounds(); got != (ui.Rectangle{Y: 200, Width: 400, Height: 100}) {
		t.Errorf("spinner bounds = %v", got)
	}
	if laps.Value() != 1 {
		t.Errorf("spinner value = %d; want its minimum", laps.Value())
	}
	logo := s.Find("logo").Base().Bounds()
	if logo.Width != 100 || logo.Height != 100 {
		t.Errorf("square icon = %v", logo)
	}
	// ribbon first, then the spinner
	if s.Focused() != s.Find("difficulty") {
		t.Errorf("focused %v; want the ribbon", s.Focused())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "empty",
			doc:     "widgets: []",
			wantErr: "no widgets",
		},
		{
			name:    "not yaml",
			doc:     "widgets: [",
			wantErr: "failed to parse screen",
		},
		{
			name:    "unknown type",
			doc:     "widgets:\n  - type: slider\n",
			wantErr: `widgets[0]: unknown widget type "slider"`,
		},
		{
			name:    "none type",
			doc:     "widgets:\n  - type: none\n",
			wantErr: "cannot be declared",
		},
		{
			name:    "unknown property",
			doc:     "widgets:\n  - type: div\n    children:\n      - type: label\n        props: {colour: red}\n",
			wantErr: `widgets[0].children[0]: unknown property "colour"`,
		},
		{
			name:    "spinner children",
			doc:     "widgets:\n  - type: spinner\n    children:\n      - type: label\n",
			wantErr: "spinner cannot declare children",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildAliases(t *testing.T) {
	for _, tag := range []string{"ribbon", "buttonbar", "tabs"} {
		e, err := Build(Node{Type: tag})
		if err != nil {
			t.Fatalf("%s: %v", tag, err)
		}
		if e.Base().Type() != ui.TypeRibbon {
			t.Errorf("%s built a %s", tag, e.Base().Type())
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.yaml")
	if err := os.WriteFile(path, []byte(raceSetup), 0o644); err != nil {
		t.Fatal(err)
	}
	roots, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 1 {
		t.Errorf("got %d roots", len(roots))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loading a missing file succeeded")
	}
}
