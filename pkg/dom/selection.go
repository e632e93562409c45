package dom

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Selection pairs a selector string with the elements it resolved to.
// The widget layer threads the original selector text through lookup
// failures so error messages can identify what was asked for.
//
// A Selection holding zero elements is valid and distinct from a nil
// Selection; lookups treat the former as "nothing matched" and the
// latter as a caller error.
type Selection struct {
	selector string
	elements []*Element
}

// NewSelection builds a Selection from a selector string and the elements
// it is taken to have resolved to.
func NewSelection(selector string, elements ...*Element) *Selection {
	return &Selection{selector: selector, elements: slices.Clone(elements)}
}

// Selector returns the original selector text.
func (s *Selection) Selector() string { return s.selector }

// Elements returns a copy of the resolved element list.
func (s *Selection) Elements() []*Element {
	return slices.Clone(s.elements)
}

// First returns the first resolved element, or nil when empty.
func (s *Selection) First() *Element {
	if len(s.elements) == 0 {
		return nil
	}
	return s.elements[0]
}

// Len returns the number of resolved elements.
func (s *Selection) Len() int { return len(s.elements) }

// Query resolves a simple selector against el's subtree (el included) and
// returns the matches as a Selection, in document order.
//
// Only the simple forms "tag", "#id", and ".class" are understood; richer
// selector grammars belong to a real DOM library, not this package.
func (el *Element) Query(selector string) *Selection {
	sel := &Selection{selector: selector}
	el.walk(func(n *Element) {
		if n.Matches(selector) {
			sel.elements = append(sel.elements, n)
		}
	})
	return sel
}

// Closest returns the nearest element, starting at el itself and walking
// ancestors, that matches the simple selector. Returns nil when no
// ancestor matches.
func (el *Element) Closest(selector string) *Element {
	for n := el; n != nil; n = n.parent {
		if n.Matches(selector) {
			return n
		}
	}
	return nil
}

// Matches reports whether el matches a simple selector: "#id" compares the
// element id, ".class" tests class membership, anything else compares the
// tag name case-insensitively.
func (el *Element) Matches(selector string) bool {
	switch {
	case selector == "":
		return false
	case strings.HasPrefix(selector, "#"):
		return el.id != "" && el.id == selector[1:]
	case strings.HasPrefix(selector, "."):
		return el.HasClass(selector[1:])
	default:
		return strings.EqualFold(el.tag, selector)
	}
}
