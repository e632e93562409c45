// Package dom provides a minimal tree of UI nodes for the Facet widget layer.
//
// The package implements exactly the element capabilities the widget layer
// consumes: CSS class manipulation, namespaced event subscription and
// dispatch, per-element auxiliary data storage, tree insertion and removal,
// and a small ancestor/subtree query facility.
//
// # Elements
//
// An Element is a node in a tree. Elements are created with NewElement and
// composed with Append:
//
//	form := dom.NewElement("form")
//	input := dom.NewElement("input")
//	form.Append(input)
//
// # Events
//
// Handlers are registered under a namespace so that one subscriber's handlers
// can be removed without disturbing another's:
//
//	el.On("change", "MyWidget7", onChange)
//	el.Off("MyWidget7") // removes only that widget's handlers
//
// Events dispatched with Trigger bubble to ancestors. A handler can ask
// whether the event it received originated on a descendant via
// Event.Bubbled.
//
// # Removal
//
// Remove detaches a subtree and fires a non-cancelable "detach" event on
// every node in it. Each node's own detach arrives non-bubbled; detach
// events reaching a node from a removed descendant arrive bubbled. The
// widget layer relies on this distinction for automatic teardown.
//
// Full CSS selector semantics are out of scope. Query and Closest accept
// only the simple forms "tag", "#id", and ".class".
package dom
