package widget

import "github.com/go-facet/facet/pkg/dom"

// OnChange subscribes fn to the element's "change" events under the
// widget's unique-name namespace, so the subscription is removed
// automatically on destroy and independently of any other widget's
// handlers on a shared element. No-op on a destroyed widget.
func (b *Base) OnChange(fn dom.Handler) {
	if b.element == nil || fn == nil {
		return
	}
	b.element.On(dom.EventChange, b.uniqueName, fn)
}

// OnSelect2Change is OnChange with the select2 echo guard: delivery is
// suppressed when the event's first extra argument is exactly boolean
// true, the convention a select2-style selection widget uses to flag a
// synthetic change it fired while setting its own value programmatically.
// Any other first argument (absent, false, or a non-boolean truthy value)
// is delivered. The exact-equality check is deliberate; do not broaden it.
func (b *Base) OnSelect2Change(fn dom.Handler) {
	if fn == nil {
		return
	}
	b.OnChange(func(ev *dom.Event) {
		if flag, ok := ev.Arg(0).(bool); ok && flag {
			return
		}
		fn(ev)
	})
}
