package widget_test

import (
	"testing"

	"github.com/go-facet/facet/pkg/dom"
	"github.com/go-facet/facet/pkg/widget"
)

func attachPicker(t *testing.T) (*widget.Registry, *dom.Element, *DatePicker) {
	t.Helper()
	reg := widget.NewRegistry(nil)
	el := dom.NewElement("input")
	p := &DatePicker{}
	if err := reg.Attach(p, el, nil); err != nil {
		t.Fatal(err)
	}
	return reg, el, p
}

func TestOnChange_Delivered(t *testing.T) {
	_, el, p := attachPicker(t)

	var got any
	p.OnChange(func(ev *dom.Event) { got = ev.Arg(0) })
	el.Trigger(dom.EventChange, "new value")

	if got != "new value" {
		t.Errorf("handler saw %v, want new value", got)
	}
}

func TestOnChange_OnDestroyedWidgetIsNoOp(t *testing.T) {
	_, el, p := attachPicker(t)
	p.Destroy()

	ran := false
	p.OnChange(func(*dom.Event) { ran = true })
	el.Trigger(dom.EventChange)

	if ran {
		t.Error("change handler registered on a destroyed widget ran")
	}
}

func TestOnSelect2Change_Guard(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want bool // handler invoked
	}{
		{"no args", nil, true},
		{"exactly true", []any{true}, false},
		{"false", []any{false}, true},
		{"string true", []any{"true"}, true},
		{"non-bool truthy", []any{1}, true},
		{"nil arg", []any{nil}, true},
		{"true in second position", []any{"x", true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, el, p := attachPicker(t)

			invoked := false
			p.OnSelect2Change(func(*dom.Event) { invoked = true })
			el.Trigger(dom.EventChange, tt.args...)

			if invoked != tt.want {
				t.Errorf("invoked = %v, want %v", invoked, tt.want)
			}
		})
	}
}

func TestOnSelect2Change_RemovedOnDestroy(t *testing.T) {
	_, el, p := attachPicker(t)

	invoked := false
	p.OnSelect2Change(func(*dom.Event) { invoked = true })
	p.Destroy()
	el.Trigger(dom.EventChange)

	if invoked {
		t.Error("select2 change handler survived destroy")
	}
}
