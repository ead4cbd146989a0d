// Package screenfile reads declarative screen descriptions.
//
// A description lists root widgets, each with a type, a set of properties
// and children in declaration order:
//
//	widgets:
//	  - type: div
//	    props: {width: 100%, height: 100%, layout: vertical-row}
//	    children:
//	      - type: label
//	        props: {text: Race setup, proportion: 1}
//	      - type: spinner
//	        props: {id: laps, min_value: 1, max_value: 20, proportion: 1}
package screenfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/kartgui/ui"
)

// File is the top level of a screen description.
type File struct {
	Widgets []Node `yaml:"widgets"`
}

// Node describes one widget.
type Node struct {
	Type     string            `yaml:"type"`
	Props    map[string]string `yaml:"props,omitempty"`
	Children []Node            `yaml:"children,omitempty"`
}

// aliases are tag names accepted besides the canonical type names.
var aliases = map[string]ui.WidgetType{
	"buttonbar": ui.TypeRibbon,
	"tabs":      ui.TypeRibbon,
	"icon":      ui.TypeIconButton,
}

// Load reads the description at path and builds its widgets.
func Load(path string) ([]ui.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read screen %s: %w", path, err)
	}
	roots, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("screen %s: %w", path, err)
	}
	return roots, nil
}

// Parse builds the widgets described by data.
func Parse(data []byte) ([]ui.Element, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse screen: %w", err)
	}
	if len(f.Widgets) == 0 {
		return nil, errors.New("screen declares no widgets")
	}
	roots := make([]ui.Element, 0, len(f.Widgets))
	for i, n := range f.Widgets {
		e, err := build(n, fmt.Sprintf("widgets[%d]", i))
		if err != nil {
			return nil, err
		}
		roots = append(roots, e)
	}
	return roots, nil
}

// Build turns a single node and its children into a widget tree.
func Build(n Node) (ui.Element, error) {
	return build(n, n.Type)
}

func build(n Node, path string) (ui.Element, error) {
	e, err := newElement(n.Type)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b := e.Base()
	for name, value := range n.Props {
		key, ok := ui.ParseProperty(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown property %q", path, name)
		}
		b.Props.Set(key, value)
	}
	if len(n.Children) > 0 && b.Type() == ui.TypeSpinner {
		return nil, fmt.Errorf("%s: spinner cannot declare children", path)
	}
	for i, c := range n.Children {
		child, err := build(c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		e.AddChild(child)
	}
	return e, nil
}

func newElement(tag string) (ui.Element, error) {
	if tag == "icon" {
		return ui.NewIconButton("", false), nil
	}
	kind, ok := ui.ParseWidgetType(tag)
	if !ok {
		if kind, ok = aliases[tag]; !ok {
			return nil, fmt.Errorf("unknown widget type %q", tag)
		}
	}
	if kind == ui.TypeNone {
		return nil, fmt.Errorf("widget type %q cannot be declared", tag)
	}
	return ui.NewElement(kind), nil
}
