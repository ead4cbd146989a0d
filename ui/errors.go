package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCoordinate is returned for a coordinate that is neither an
	// integer nor a "N%" percentage.
	ErrMalformedCoordinate = errors.New("malformed coordinate expression")

	// ErrUnresolvableCoordinate is returned for a percentage evaluated
	// without a parent extent.
	ErrUnresolvableCoordinate = errors.New("relative coordinate without parent extent")

	// ErrMalformedProperty is returned by the typed property accessors.
	ErrMalformedProperty = errors.New("malformed property value")
)

// ErrorKind identifies the category of a contract violation.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindDuplicateIdentifier indicates misuse of the identifier allocator.
	KindDuplicateIdentifier
	// KindDanglingDelegate indicates an event delegate that was destroyed
	// before the widgets delegating to it.
	KindDanglingDelegate
	// KindDelegateCycle indicates a delegation chain revisiting a widget.
	KindDelegateCycle
	// KindTree indicates a child attached twice or under its own subtree.
	KindTree
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateIdentifier:
		return "duplicate-identifier"
	case KindDanglingDelegate:
		return "dangling-delegate"
	case KindDelegateCycle:
		return "delegate-cycle"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// ContractError is the panic value for broken construction sequences. These
// are programming errors, not bad input.
type ContractError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("ui contract violation [%s]: %s", e.Kind, e.Msg)
}

func violate(kind ErrorKind, format string, args ...any) {
	panic(&ContractError{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

// PropertyError reports a property value that cannot be converted.
type PropertyError struct {
	Key   Property
	Value string
	Err   error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// LayoutError reports a widget whose geometry could not be resolved.
type LayoutError struct {
	// Type and Name identify the widget; Name is its id property.
	Type WidgetType
	Name string
	// Property is the coordinate property that failed.
	Property Property
	// Expr is the offending expression.
	Expr string
	Err  error
}

func (e *LayoutError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("layout %s %s: %s=%q: %v", e.Type, name, e.Property, e.Expr, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}
