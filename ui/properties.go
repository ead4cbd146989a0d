package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Property is a key of the widget property bag.
type Property int

const (
	PropID Property = iota + 100
	PropProportion
	PropWidth
	PropHeight
	PropChildWidth
	PropChildHeight
	PropWordWrap
	PropGrowWithText
	PropX
	PropY
	PropLayout
	PropAlign
	PropText
	PropIcon
	PropTextAlign
	PropMinValue
	PropMaxValue
	PropMaxWidth
	PropMaxHeight
	PropSquare
)

var propertyNames = [...]string{
	"id",
	"proportion",
	"width",
	"height",
	"child_width",
	"child_height",
	"word_wrap",
	"grow_with_text",
	"x",
	"y",
	"layout",
	"align",
	"text",
	"icon",
	"text_align",
	"min_value",
	"max_value",
	"max_width",
	"max_height",
	"square",
}

func (p Property) String() string {
	i := int(p - PropID)
	if i >= 0 && i < len(propertyNames) {
		return propertyNames[i]
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// ParseProperty maps a declarative attribute name to its key.
func ParseProperty(name string) (Property, bool) {
	for i, n := range propertyNames {
		if n == name {
			return PropID + Property(i), true
		}
	}
	return 0, false
}

// Properties holds the raw string values read from the screen description.
// The zero value is ready to use.
type Properties struct {
	values map[Property]string
}

// Get returns the raw value of key and whether it is set.
func (p *Properties) Get(key Property) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (p *Properties) Set(key Property, value string) {
	if p.values == nil {
		p.values = make(map[Property]string)
	}
	p.values[key] = value
}

// Has reports whether key is set.
func (p *Properties) Has(key Property) bool {
	_, ok := p.values[key]
	return ok
}

// Delete removes key. Deleting an absent key does nothing.
func (p *Properties) Delete(key Property) {
	delete(p.values, key)
}

// Len returns the number of keys set.
func (p *Properties) Len() int {
	return len(p.values)
}

// Value returns the value of key, or "" when absent.
func (p *Properties) Value(key Property) string {
	return p.values[key]
}

// Int returns key parsed as an integer, or def when key is absent.
func (p *Properties) Int(key Property, def int) (int, error) {
	v, ok := p.values[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def, &PropertyError{Key: key, Value: v, Err: ErrMalformedProperty}
	}
	return n, nil
}

// Float returns key parsed as a float, or def when key is absent.
func (p *Properties) Float(key Property, def float64) (float64, error) {
	v, ok := p.values[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def, &PropertyError{Key: key, Value: v, Err: ErrMalformedProperty}
	}
	return f, nil
}

// Bool returns key parsed as a boolean, or def when key is absent. Besides
// the strconv forms it accepts "yes" and "no".
func (p *Properties) Bool(key Property, def bool) (bool, error) {
	v, ok := p.values[key]
	if !ok {
		return def, nil
	}
	switch s := strings.ToLower(strings.TrimSpace(v)); s {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return def, &PropertyError{Key: key, Value: v, Err: ErrMalformedProperty}
		}
		return b, nil
	}
}
