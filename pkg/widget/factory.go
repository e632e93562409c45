package widget

import (
	"github.com/go-facet/facet/pkg/dom"
	"github.com/go-facet/facet/pkg/errors"
)

// defaultTag is the tag of the root element synthesized for widget types
// that declare no element template.
const defaultTag = "input"

// DialogWidget marks widget types that create their own root element
// rather than being bound to a caller-supplied or synthesized one.
// The factory constructs a DialogWidget on the element CreateRoot
// returns and never consults the type's element template.
type DialogWidget interface {
	Widget

	// CreateRoot builds the dialog's root element.
	CreateRoot() *dom.Element
}

// ElementTemplater lets a widget type declare the root element the
// factory should synthesize for it. Types without it get a plain
// input element.
type ElementTemplater interface {
	// ElementTemplate builds a fresh root element for the widget type.
	ElementTemplate() *dom.Element
}

// ElementFor synthesizes a root element appropriate for w's type: the
// type's declared element template when it has one, otherwise a generic
// input element.
func ElementFor(w Widget) *dom.Element {
	if t, ok := w.(ElementTemplater); ok {
		if el := t.ElementTemplate(); el != nil {
			return el
		}
	}
	return dom.NewElement(defaultTag)
}

// CreateParams configures a factory construction.
type CreateParams struct {
	// Options is the widget configuration record. Nil means empty.
	Options Options
	// Container, if non-nil, receives the widget's root element via Append.
	Container *dom.Element
	// OnElement, if non-nil, is called with the root element before the
	// widget is returned (for plain widgets, before construction; for
	// dialog widgets, after, since dialogs create their root themselves).
	OnElement func(*dom.Element)
	// OnInit, if non-nil, runs after the widget's own Init hook.
	OnInit func(Widget)
}

// Create constructs w through the factory.
//
// Dialog widgets (types implementing [DialogWidget]) are constructed on
// the root element they create themselves; the root is then appended to
// p.Container (if given) and handed to p.OnElement (if given). No element
// template lookup happens on this path.
//
// All other widgets get a root synthesized via [ElementFor], appended to
// p.Container and customized by p.OnElement before construction.
//
// On either path, Create then invokes w.Init(nil) followed by p.OnInit.
func (r *Registry) Create(w Widget, p CreateParams) error {
	const op = "widget.Create"
	if w == nil {
		return errors.InvalidArgument(op, "widget")
	}

	if d, ok := w.(DialogWidget); ok {
		root := d.CreateRoot()
		if root == nil {
			root = dom.NewElement("div")
		}
		if err := r.Attach(w, root, p.Options); err != nil {
			return err
		}
		if p.Container != nil {
			p.Container.Append(root)
		}
		if p.OnElement != nil {
			p.OnElement(root)
		}
	} else {
		root := ElementFor(w)
		if p.Container != nil {
			p.Container.Append(root)
		}
		if p.OnElement != nil {
			p.OnElement(root)
		}
		if err := r.Attach(w, root, p.Options); err != nil {
			return err
		}
	}

	w.Init(nil)
	if p.OnInit != nil {
		p.OnInit(w)
	}
	return nil
}
