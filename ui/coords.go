package ui

import (
	"math"
	"strconv"
	"strings"
)

// NoParent is the extent passed when no parent geometry is available.
const NoParent = -1

// Coord is a parsed coordinate expression.
type Coord struct {
	Value   int
	Percent bool
}

// ParseCoord parses "120" (absolute pixels, may be signed) or "50%"
// (percentage of the parent extent).
func ParseCoord(expr string) (Coord, error) {
	s := strings.TrimSpace(expr)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		if !isDigits(pct) {
			return Coord{}, ErrMalformedCoordinate
		}
		n, err := strconv.Atoi(pct)
		if err != nil {
			return Coord{}, ErrMalformedCoordinate
		}
		return Coord{Value: n, Percent: true}, nil
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if !isDigits(digits) {
		return Coord{}, ErrMalformedCoordinate
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Coord{}, ErrMalformedCoordinate
	}
	return Coord{Value: n}, nil
}

// Resolve returns the pixel value of c against parentExtent.
func (c Coord) Resolve(parentExtent int) (int, error) {
	if !c.Percent {
		return c.Value, nil
	}
	if parentExtent < 0 {
		return 0, ErrUnresolvableCoordinate
	}
	return int(math.Round(float64(c.Value) * float64(parentExtent) / 100)), nil
}

// ResolveCoord parses expr and resolves it against parentExtent, which is
// NoParent when there is no parent geometry.
func ResolveCoord(expr string, parentExtent int) (int, error) {
	c, err := ParseCoord(expr)
	if err != nil {
		return 0, err
	}
	return c.Resolve(parentExtent)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
