// Package widget provides the widget registry, lifecycle, and factory for
// the Facet framework.
//
// A widget is a long-lived component bound 1:1 to a [dom.Element] at
// construction time. The package derives stable string identities from Go
// types, stores widget instances as auxiliary data on their elements,
// scopes event handlers per widget instance, and tears everything down
// again when the widget is destroyed or its element is removed from the
// tree.
//
// # Registry
//
// All process-lifetime state lives in an explicit [Registry]: the
// monotonically increasing widget counter and the CSS class configuration.
// Create one registry per application and thread it through construction:
//
//	reg := widget.NewRegistry(nil)
//
// # Defining widgets
//
// Concrete widgets embed [Base] and override the hooks they need:
//
//	type DatePicker struct {
//	    widget.Base
//	}
//
//	func (p *DatePicker) Render() {
//	    p.Element().SetAttr("type", "date")
//	}
//
// They are constructed either directly on an existing element:
//
//	picker := &DatePicker{}
//	if err := reg.Attach(picker, el, nil); err != nil { ... }
//
// or through the factory, which synthesizes a root element (or lets a
// [DialogWidget] create its own):
//
//	err := reg.Create(picker, widget.CreateParams{Container: form})
//
// # Identity
//
// Each widget gets a widget name (derived from its Go type, with path
// separators normalized to '-'), a unique name (widget name plus a
// counter value never reused within the registry's lifetime), and a CSS
// class list applied to its element. The widget name keys the element's
// auxiliary-data entry, which is what makes [TryGet] and [Get] work; the
// unique name namespaces the widget's own event handlers so destroy can
// remove them without disturbing other widgets sharing the element.
//
// # Lifecycle
//
// Attach validates that the element does not already carry a widget of
// the same type (returning a duplicate-widget error before touching the
// element), registers the automatic teardown observer, stores the
// instance, applies CSS classes, and finally calls Render. Destroy is
// idempotent and reverses all of it. Removing the bound element from the
// tree destroys the widget automatically; removal notifications that
// merely bubbled up from a removed descendant are ignored.
package widget
