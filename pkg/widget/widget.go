package widget

import (
	"fmt"

	"github.com/go-facet/facet/pkg/dom"
	"github.com/go-facet/facet/pkg/errors"
)

// idSeparator joins a widget's unique name and a child suffix when
// generating unique child-element identifiers.
const idSeparator = "_"

// Options is the configuration record passed to a widget at construction.
// A nil Options is treated as empty.
type Options map[string]any

// Widget is implemented by any struct that embeds Base. Concrete widgets
// override Render to populate their element's content; Base supplies
// no-op defaults for everything else.
type Widget interface {
	// Render populates the widget's element. It runs synchronously as the
	// last construction step; by the time Attach returns, rendering has
	// completed. The default implementation does nothing.
	Render()

	// Init is the post-construction extension point. The default runs fn
	// (if non-nil) with the widget and returns the widget, enabling fluent
	// setup chains.
	Init(fn func(Widget)) Widget

	// base is satisfied by embedding Base; it gives the package access to
	// the widget's bookkeeping fields.
	base() *Base
}

// Base provides the common widget lifecycle. Embed it in a concrete
// widget struct; the widget is then used through a pointer:
//
//	type DatePicker struct {
//	    widget.Base
//	}
//
// All fields are populated by [Registry.Attach] and are read-only
// afterwards.
type Base struct {
	registry *Registry
	element  *dom.Element
	options  Options
	self     Widget

	widgetName string
	uniqueName string
	idPrefix   string
	cssClass   string
}

func (b *Base) base() *Base { return b }

// Render does nothing. Override it on the concrete widget.
func (b *Base) Render() {}

// Init runs fn (if non-nil) with the widget and returns the widget.
func (b *Base) Init(fn func(Widget)) Widget {
	if fn != nil && b.self != nil {
		fn(b.self)
	}
	return b.self
}

// Registry returns the registry the widget was constructed through.
func (b *Base) Registry() *Registry { return b.registry }

// Element returns the bound element, or nil once the widget is destroyed.
func (b *Base) Element() *dom.Element { return b.element }

// Options returns the configuration record given at construction.
// Never nil after a successful Attach.
func (b *Base) Options() Options { return b.options }

// WidgetName returns the type-derived widget name.
func (b *Base) WidgetName() string { return b.widgetName }

// UniqueName returns the widget name suffixed with the registry counter
// value assigned at construction. Unique across all widgets ever
// constructed through the same registry.
func (b *Base) UniqueName() string { return b.uniqueName }

// IDPrefix returns the unique name followed by a fixed separator, for
// generating unique child-element identifiers.
func (b *Base) IDPrefix() string { return b.idPrefix }

// CSSClass returns the space-separated class tokens derived from the
// widget's concrete type.
func (b *Base) CSSClass() string { return b.cssClass }

// Destroyed reports whether Destroy has run.
func (b *Base) Destroyed() bool { return b.element == nil }

// Attach constructs w on el: it derives the widget's identity from w's
// concrete type, verifies el does not already carry a widget of that type,
// registers the automatic teardown observer, stores w as auxiliary data on
// el, applies the derived CSS classes, and finally calls w.Render().
//
// A duplicate-widget failure is detected before el is mutated, so a failed
// Attach leaves el exactly as it was. A nil opts is replaced with an empty
// record.
func (r *Registry) Attach(w Widget, el *dom.Element, opts Options) error {
	const op = "widget.Attach"
	if w == nil {
		return errors.InvalidArgument(op, "widget")
	}
	if el == nil {
		return errors.InvalidArgument(op, "element")
	}
	if opts == nil {
		opts = Options{}
	}

	b := w.base()
	b.registry = r
	b.self = w
	b.element = el
	b.options = opts
	b.widgetName = r.WidgetNameOf(w)
	b.uniqueName = fmt.Sprintf("%s%d", b.widgetName, r.nextSuffix())

	if _, exists := el.Data(b.widgetName); exists {
		b.element = nil
		return errors.DuplicateWidget(op, b.widgetName)
	}

	// Only a direct removal of the bound element tears the widget down;
	// detach events bubbling up from a removed descendant, and cancelable
	// ones, are ignored.
	el.On(dom.EventDetach, b.widgetName, func(ev *dom.Event) {
		if ev.Bubbled() || ev.Cancelable {
			return
		}
		b.Destroy()
	})

	el.SetData(b.widgetName, w)
	b.cssClass = r.CSSClassOf(w)
	el.AddClass(b.cssClass)
	b.idPrefix = b.uniqueName + idSeparator

	w.Render()
	return nil
}

// Destroy detaches the widget from its element: it removes the derived
// CSS classes, every event handler registered under the widget-name or
// unique-name namespace, and the element's auxiliary-data entry, then
// drops the element reference. Destroy is idempotent; calling it on an
// already-destroyed widget is a no-op. The widget must not be used for
// anything else afterwards.
func (b *Base) Destroy() {
	if b.element == nil {
		return
	}
	el := b.element
	el.RemoveClass(b.cssClass)
	el.Off(b.widgetName)
	el.Off(b.uniqueName)
	el.RemoveData(b.widgetName)
	b.element = nil
}
