package dom

import (
	"reflect"
	"testing"
)

func TestOn_Trigger_Args(t *testing.T) {
	el := NewElement("input")

	var got []any
	el.On(EventChange, "ns", func(ev *Event) {
		got = ev.Args
	})
	el.Trigger(EventChange, "value", 2)

	if want := []any{"value", 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("handler args = %v, want %v", got, want)
	}
}

func TestOff_RemovesOnlyNamespace(t *testing.T) {
	el := NewElement("input")

	var a, b int
	el.On(EventChange, "first", func(*Event) { a++ })
	el.On(EventChange, "second", func(*Event) { b++ })

	el.Off("first")
	el.Trigger(EventChange)

	if a != 0 {
		t.Errorf("removed namespace handler ran %d times", a)
	}
	if b != 1 {
		t.Errorf("surviving namespace handler ran %d times, want 1", b)
	}
}

func TestOffType_MatchesTypeAndNamespace(t *testing.T) {
	el := NewElement("input")

	var change, focus int
	el.On(EventChange, "ns", func(*Event) { change++ })
	el.On("focus", "ns", func(*Event) { focus++ })

	el.OffType(EventChange, "ns")
	el.Trigger(EventChange)
	el.Trigger("focus")

	if change != 0 {
		t.Errorf("change handler survived OffType, ran %d times", change)
	}
	if focus != 1 {
		t.Errorf("focus handler ran %d times, want 1", focus)
	}
}

func TestDispatch_BubblesToAncestors(t *testing.T) {
	root := NewElement("div")
	mid := NewElement("div")
	leaf := NewElement("input")
	root.Append(mid)
	mid.Append(leaf)

	type seen struct {
		current *Element
		bubbled bool
	}
	var order []seen
	record := func(ev *Event) {
		order = append(order, seen{ev.Current(), ev.Bubbled()})
	}
	leaf.On(EventChange, "", record)
	mid.On(EventChange, "", record)
	root.On(EventChange, "", record)

	leaf.Trigger(EventChange)

	want := []seen{{leaf, false}, {mid, true}, {root, true}}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("dispatch order = %v, want %v", order, want)
	}
}

func TestDispatch_NonBubblingStopsAtTarget(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("input")
	parent.Append(child)

	var parentRan bool
	parent.On(EventChange, "", func(*Event) { parentRan = true })

	child.Dispatch(&Event{Type: EventChange, Bubbles: false})

	if parentRan {
		t.Error("non-bubbling event reached an ancestor")
	}
}

func TestStopPropagation(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("input")
	parent.Append(child)

	var parentRan bool
	child.On(EventChange, "", func(ev *Event) { ev.StopPropagation() })
	parent.On(EventChange, "", func(*Event) { parentRan = true })

	child.Trigger(EventChange)

	if parentRan {
		t.Error("propagation continued after StopPropagation")
	}
}

func TestRemove_FiresDetachPerNode(t *testing.T) {
	root := NewElement("div")
	mid := NewElement("div")
	leaf := NewElement("span")
	root.Append(mid)
	mid.Append(leaf)

	// mid sees its own detach non-bubbled, and leaf's detach bubbled.
	var direct, bubbled int
	mid.On(EventDetach, "", func(ev *Event) {
		if ev.Cancelable {
			t.Error("detach event must not be cancelable")
		}
		if ev.Bubbled() {
			bubbled++
		} else {
			direct++
		}
	})

	mid.Remove()

	if direct != 1 {
		t.Errorf("direct detach events = %d, want 1", direct)
	}
	if bubbled != 1 {
		t.Errorf("bubbled detach events = %d, want 1", bubbled)
	}
}

func TestRemove_DetachDoesNotReachOldAncestors(t *testing.T) {
	root := NewElement("div")
	child := NewElement("div")
	root.Append(child)

	var rootSaw int
	root.On(EventDetach, "", func(*Event) { rootSaw++ })

	child.Remove()

	if rootSaw != 0 {
		t.Errorf("detach leaked to the former parent %d times", rootSaw)
	}
}

func TestDispatch_HandlerMutationAffectsNextEventOnly(t *testing.T) {
	el := NewElement("input")

	runs := 0
	el.On(EventChange, "ns", func(*Event) {
		runs++
		el.Off("ns")
	})

	el.Trigger(EventChange)
	el.Trigger(EventChange)

	if runs != 1 {
		t.Errorf("handler ran %d times, want 1", runs)
	}
}

func TestArg_OutOfRange(t *testing.T) {
	el := NewElement("input")

	var first, missing any
	el.On(EventChange, "", func(ev *Event) {
		first = ev.Arg(0)
		missing = ev.Arg(5)
	})
	el.Trigger(EventChange, "x")

	if first != "x" {
		t.Errorf("Arg(0) = %v, want x", first)
	}
	if missing != nil {
		t.Errorf("Arg(5) = %v, want nil", missing)
	}
}
