// Package main demonstrates idiomatic use of the Facet widget layer:
// registry setup, direct attachment, factory construction (plain and
// dialog), lookup by type, change subscriptions, and teardown.
package main

import (
	"fmt"
	"log"

	"github.com/go-facet/facet/pkg/dom"
	"github.com/go-facet/facet/pkg/icons"
	"github.com/go-facet/facet/pkg/widget"
)

// DatePicker is a plain widget: it is attached to an input element the
// factory synthesizes from its template.
type DatePicker struct {
	widget.Base
}

func (p *DatePicker) ElementTemplate() *dom.Element {
	return dom.NewElement("input").SetAttr("type", "text")
}

func (p *DatePicker) Render() {
	p.Element().SetAttr("placeholder", "dd/mm/yyyy")
}

// ConfirmDialog is a dialog widget: it creates and owns its root element.
type ConfirmDialog struct {
	widget.Base
}

func (d *ConfirmDialog) CreateRoot() *dom.Element {
	return dom.NewElement("div").SetID("confirm-dialog")
}

func (d *ConfirmDialog) Render() {
	title := dom.NewElement("h2").SetID(d.IDPrefix() + "Title")
	ok := dom.NewElement("button").AddClass(icons.FA(icons.Apply))
	cancel := dom.NewElement("button").AddClass(icons.FA(icons.Cancel))
	d.Element().Append(title).Append(ok).Append(cancel)
}

func main() {
	cfg, err := widget.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	if len(cfg.RootNamespaces) == 0 {
		cfg.RootNamespaces = []string{"github.com/go-facet/facet"}
	}
	reg := widget.NewRegistry(cfg)

	body := dom.NewElement("body")
	form := dom.NewElement("form").SetID("booking")
	body.Append(form)

	// Factory construction of a plain widget into the form.
	picker := &DatePicker{}
	err = reg.Create(picker, widget.CreateParams{
		Options:   widget.Options{"min": "01/01/2026"},
		Container: form,
		OnInit: func(w widget.Widget) {
			log.Printf("created %T", w)
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("picker unique name: %s\n", picker.UniqueName())
	fmt.Printf("picker classes:     %v\n", picker.Element().ClassList())

	picker.OnChange(func(ev *dom.Event) {
		fmt.Printf("picker change, value=%v\n", ev.Arg(0))
	})
	picker.Element().Trigger(dom.EventChange, "14/02/2026")

	// Lookup by type from a selection.
	sel := body.Query("input")
	found, err := widget.Get[*DatePicker](reg, sel)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("lookup found:       %s\n", found.UniqueName())

	// Dialog construction: the dialog creates its own root.
	dialog := &ConfirmDialog{}
	err = reg.Create(dialog, widget.CreateParams{Container: body})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("dialog root:        #%s\n", dialog.Element().ID())

	// Removing the form tears the picker down automatically.
	form.Remove()
	fmt.Printf("picker destroyed:   %v\n", picker.Destroyed())

	dialog.Destroy()
	fmt.Printf("dialog destroyed:   %v\n", dialog.Destroyed())
}
