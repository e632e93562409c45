package dom

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Element is a node in a UI tree. It carries a tag name, an optional id,
// attributes, an ordered CSS class list, per-element auxiliary data, and
// namespaced event handlers.
//
// Elements are not safe for concurrent mutation; like the widget layer
// built on top of them, they assume a single-threaded, event-driven
// execution model.
type Element struct {
	tag      string
	id       string
	attrs    map[string]string
	parent   *Element
	children []*Element

	classes []string

	data     map[string]any
	dataKeys []string // insertion order, drives EachData

	handlers []handlerEntry
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

// Tag returns the element's tag name.
func (el *Element) Tag() string { return el.tag }

// ID returns the element's id, or "" if none is set.
func (el *Element) ID() string { return el.id }

// SetID sets the element's id and returns the element.
func (el *Element) SetID(id string) *Element {
	el.id = id
	return el
}

// Attr returns the named attribute value, or "" if unset.
func (el *Element) Attr(name string) string {
	return el.attrs[name]
}

// SetAttr sets an attribute and returns the element.
func (el *Element) SetAttr(name, value string) *Element {
	if el.attrs == nil {
		el.attrs = make(map[string]string)
	}
	el.attrs[name] = value
	return el
}

// Parent returns the element's parent, or nil for a detached root.
func (el *Element) Parent() *Element { return el.parent }

// Children returns a copy of the element's child list.
func (el *Element) Children() []*Element {
	return slices.Clone(el.children)
}

// Append attaches child as the last child of el, detaching it from any
// previous parent first. Appending an element to itself or to one of its
// own descendants is a no-op.
func (el *Element) Append(child *Element) *Element {
	if child == nil || child == el {
		return el
	}
	for a := el; a != nil; a = a.parent {
		if a == child {
			return el
		}
	}
	if child.parent != nil {
		child.parent.unlink(child)
	}
	child.parent = el
	el.children = append(el.children, child)
	return el
}

func (el *Element) unlink(child *Element) {
	for i, c := range el.children {
		if c == child {
			el.children = append(el.children[:i], el.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Remove detaches el (and its subtree) from its parent and fires a
// non-cancelable "detach" event on every node of the removed subtree,
// depth-first from el down. The event bubbles within the removed subtree,
// so an ancestor inside the subtree observes its descendants' detach
// events as bubbled while its own arrives non-bubbled.
//
// Removing an element that has no parent still fires the detach events;
// the tree unlink is simply skipped.
func (el *Element) Remove() {
	if el.parent != nil {
		el.parent.unlink(el)
	}
	el.walk(func(n *Element) {
		n.Trigger(EventDetach)
	})
}

// walk visits el and every descendant, parents before children.
func (el *Element) walk(visit func(*Element)) {
	visit(el)
	for _, c := range slices.Clone(el.children) {
		c.walk(visit)
	}
}

// AddClass adds the given class tokens to the element's class list.
// The argument may contain several space-separated tokens. Tokens already
// present are skipped; insertion order of new tokens is preserved.
func (el *Element) AddClass(classes string) *Element {
	for _, c := range strings.Fields(classes) {
		if !slices.Contains(el.classes, c) {
			el.classes = append(el.classes, c)
		}
	}
	return el
}

// RemoveClass removes the given space-separated class tokens. Tokens not
// present are ignored.
func (el *Element) RemoveClass(classes string) *Element {
	for _, c := range strings.Fields(classes) {
		if i := slices.Index(el.classes, c); i >= 0 {
			el.classes = append(el.classes[:i], el.classes[i+1:]...)
		}
	}
	return el
}

// HasClass reports whether the element carries the single class token c.
func (el *Element) HasClass(c string) bool {
	return slices.Contains(el.classes, c)
}

// ClassList returns a copy of the element's class tokens in order.
func (el *Element) ClassList() []string {
	return slices.Clone(el.classes)
}

// SetData stores an auxiliary value on the element under key, replacing
// any previous value for that key.
func (el *Element) SetData(key string, value any) {
	if el.data == nil {
		el.data = make(map[string]any)
	}
	if _, exists := el.data[key]; !exists {
		el.dataKeys = append(el.dataKeys, key)
	}
	el.data[key] = value
}

// Data returns the auxiliary value stored under key, and whether one exists.
func (el *Element) Data(key string) (any, bool) {
	v, ok := el.data[key]
	return v, ok
}

// RemoveData deletes the auxiliary value stored under key, if any.
func (el *Element) RemoveData(key string) {
	if _, ok := el.data[key]; !ok {
		return
	}
	delete(el.data, key)
	if i := slices.Index(el.dataKeys, key); i >= 0 {
		el.dataKeys = append(el.dataKeys[:i], el.dataKeys[i+1:]...)
	}
}

// EachData calls fn for every auxiliary data entry in insertion order,
// stopping early if fn returns false.
func (el *Element) EachData(fn func(key string, value any) bool) {
	for _, k := range slices.Clone(el.dataKeys) {
		if v, ok := el.data[k]; ok {
			if !fn(k, v) {
				return
			}
		}
	}
}
