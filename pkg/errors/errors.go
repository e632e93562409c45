// Package errors provides structured error handling for the Facet framework.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDuplicateWidget indicates an attempt to attach a second widget of
	// the same type to an element that already carries one.
	KindDuplicateWidget
	// KindInvalidArgument indicates a required argument was absent.
	KindInvalidArgument
	// KindNotFound indicates a widget lookup yielded no match.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateWidget:
		return "duplicate widget"
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// WidgetError represents a structured error in the Facet framework.
type WidgetError struct {
	// Op is the operation that failed (e.g., "widget.Attach").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the derived widget or type name involved, if applicable.
	Widget string
	// Selector is the original selector text of the lookup, if applicable.
	Selector string
	// Err is the underlying error, if any.
	Err error
}

func (e *WidgetError) Error() string {
	msg := fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	if e.Widget != "" {
		msg += fmt.Sprintf(" widget=%s", e.Widget)
	}
	if e.Selector != "" {
		msg += fmt.Sprintf(" selector=%q", e.Selector)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// DuplicateWidget returns the error raised when an element already carries
// a widget stored under the given derived widget name.
func DuplicateWidget(op, widgetName string) *WidgetError {
	return &WidgetError{
		Op:     op,
		Kind:   KindDuplicateWidget,
		Widget: widgetName,
		Err:    fmt.Errorf("element already has a widget %q attached", widgetName),
	}
}

// InvalidArgument returns the error raised when a required argument is
// absent at an API boundary.
func InvalidArgument(op, what string) *WidgetError {
	return &WidgetError{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  fmt.Errorf("%s is required", what),
	}
}

// NotFound returns the error raised when a widget lookup by type yields no
// match. The message identifies the requested type and the selector that
// produced the searched elements.
func NotFound(op, typeName, selector string) *WidgetError {
	return &WidgetError{
		Op:       op,
		Kind:     KindNotFound,
		Widget:   typeName,
		Selector: selector,
		Err:      fmt.Errorf("no widget of type %s found on elements selected by %q", typeName, selector),
	}
}

// kindOf extracts the ErrorKind from err, or KindUnknown.
func kindOf(err error) ErrorKind {
	var we *WidgetError
	if stderrors.As(err, &we) {
		return we.Kind
	}
	return KindUnknown
}

// IsDuplicateWidget reports whether err is a duplicate-widget error.
func IsDuplicateWidget(err error) bool { return kindOf(err) == KindDuplicateWidget }

// IsInvalidArgument reports whether err is an invalid-argument error.
func IsInvalidArgument(err error) bool { return kindOf(err) == KindInvalidArgument }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }
