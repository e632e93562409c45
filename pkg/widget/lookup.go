package widget

import (
	"fmt"
	"reflect"

	"github.com/go-facet/facet/pkg/dom"
	"github.com/go-facet/facet/pkg/errors"
)

// TryGet returns the widget of type T attached to el, if any. It first
// probes the auxiliary-data entry keyed by T's derived widget name and
// verifies the stored instance really is a T (a stale or shadowed entry
// of the wrong type is skipped rather than returned); failing that, it
// scans all auxiliary-data entries in insertion order and returns the
// first that is assignable to T. A miss is not an error.
func TryGet[T Widget](r *Registry, el *dom.Element) (T, bool) {
	var zero T
	if r == nil || el == nil {
		return zero, false
	}

	key := r.WidgetName(reflect.TypeFor[T]())
	if v, ok := el.Data(key); ok {
		if w, ok := v.(T); ok {
			return w, true
		}
	}

	var found T
	var ok bool
	el.EachData(func(_ string, v any) bool {
		if w, isT := v.(T); isT {
			found, ok = w, true
			return false
		}
		return true
	})
	return found, ok
}

// Get returns the widget of type T attached to the first element of sel.
//
// A nil sel is an invalid-argument error. A sel resolving to zero
// elements is a not-found error whose message carries T's fully-qualified
// name and sel's selector text. When the element exists but TryGet
// misses, the failure is first surfaced through the global notification
// sink and then returned as a not-found error with the same message
// content. Lookup failures are programmer errors (misuse, stale generated
// code, version skew), so they are meant to be loud.
func Get[T Widget](r *Registry, sel *dom.Selection) (T, error) {
	const op = "widget.Get"
	var zero T
	typeName := qualifiedTypeName(reflect.TypeFor[T]())

	if sel == nil {
		return zero, errors.InvalidArgument(op, "selection")
	}
	if sel.Len() == 0 {
		return zero, &errors.WidgetError{
			Op:       op,
			Kind:     errors.KindNotFound,
			Widget:   typeName,
			Selector: sel.Selector(),
			Err: fmt.Errorf("selector %q matched no elements while looking up a widget of type %s",
				sel.Selector(), typeName),
		}
	}

	if w, ok := TryGet[T](r, sel.First()); ok {
		return w, nil
	}

	err := errors.NotFound(op, typeName, sel.Selector())
	errors.NotifyError(err)
	return zero, err
}
