package dom

import "golang.org/x/exp/slices"

// Event types used by the widget layer. Any other string is equally valid
// as an event type; these are just the ones this module dispatches itself.
const (
	// EventChange is fired when an element's value changes.
	EventChange = "change"
	// EventDetach is fired on every node of a subtree removed via
	// Element.Remove. It is never cancelable.
	EventDetach = "detach"
)

// Handler receives a dispatched event.
type Handler func(*Event)

// Event describes a notification dispatched on an element tree.
type Event struct {
	// Type is the event type, e.g. "change" or "detach".
	Type string
	// Target is the element the event was dispatched on.
	Target *Element
	// Cancelable marks events whose default action may be prevented.
	// Detach events are never cancelable.
	Cancelable bool
	// Bubbles controls whether dispatch continues to ancestors after the
	// target's handlers have run.
	Bubbles bool
	// Args carries extra arguments passed to Trigger, in order.
	Args []any

	current *Element
	stopped bool
}

// Current returns the element whose handlers are currently running. During
// bubbling this differs from Target.
func (e *Event) Current() *Element { return e.current }

// Bubbled reports whether the event reached the current element by bubbling
// up from a descendant rather than being dispatched on it directly.
func (e *Event) Bubbled() bool {
	return e.current != nil && e.current != e.Target
}

// StopPropagation prevents the event from bubbling to further ancestors.
// Handlers already scheduled on the current element still run.
func (e *Event) StopPropagation() { e.stopped = true }

// Arg returns the i'th extra argument, or nil when absent.
func (e *Event) Arg(i int) any {
	if i < 0 || i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}

type handlerEntry struct {
	typ string
	ns  string
	fn  Handler
}

// On registers fn for events of the given type under a namespace. The
// namespace exists so a subscriber can later remove exactly its own
// handlers with Off; it never affects matching during dispatch. An empty
// namespace is allowed.
func (el *Element) On(typ, namespace string, fn Handler) {
	if fn == nil {
		return
	}
	el.handlers = append(el.handlers, handlerEntry{typ: typ, ns: namespace, fn: fn})
}

// Off removes every handler registered under the given namespace,
// regardless of event type. Removing an unknown namespace is a no-op.
func (el *Element) Off(namespace string) {
	el.handlers = slices.DeleteFunc(el.handlers, func(h handlerEntry) bool {
		return h.ns == namespace
	})
}

// OffType removes handlers matching both event type and namespace.
func (el *Element) OffType(typ, namespace string) {
	el.handlers = slices.DeleteFunc(el.handlers, func(h handlerEntry) bool {
		return h.typ == typ && h.ns == namespace
	})
}

// Trigger dispatches a bubbling, non-cancelable event of the given type on
// el, with args available to handlers via Event.Args.
func (el *Element) Trigger(typ string, args ...any) {
	el.Dispatch(&Event{Type: typ, Bubbles: true, Args: args})
}

// Dispatch runs ev's matching handlers on el, then, if ev.Bubbles, walks
// the ancestor chain running their matching handlers until the root is
// reached or a handler calls StopPropagation. ev.Target is set to el if
// unset, so a caller can prepare an Event once and dispatch it.
//
// Handlers may register or remove handlers (including their own) during
// dispatch; such changes take effect for subsequent events, not the one
// in flight.
func (el *Element) Dispatch(ev *Event) {
	if ev == nil {
		return
	}
	if ev.Target == nil {
		ev.Target = el
	}
	for n := el; n != nil; n = n.parent {
		ev.current = n
		for _, h := range slices.Clone(n.handlers) {
			if h.typ == ev.Type {
				h.fn(ev)
			}
		}
		if !ev.Bubbles || ev.stopped {
			break
		}
	}
	ev.current = nil
}
