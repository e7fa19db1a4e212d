//go:build js && wasm

package main

import "syscall/js"

// dom adapts the live page to scrollspy.Document and scrollspy.Events.
type dom struct {
	window   js.Value
	document js.Value
}

func newDOM() *dom {
	w := js.Global()
	return &dom{window: w, document: w.Get("document")}
}

func (d *dom) element(id string) (js.Value, bool) {
	el := d.document.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}

// OffsetTop reports the section's top relative to the document.
func (d *dom) OffsetTop(id string) (float64, bool) {
	el, ok := d.element(id)
	if !ok {
		return 0, false
	}
	return el.Get("offsetTop").Float(), true
}

func (d *dom) ScrollY() float64 {
	return d.window.Get("scrollY").Float()
}

func (d *dom) listen(event string, fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	opts := map[string]any{"passive": true}
	d.window.Call("addEventListener", event, cb, opts)
	return func() {
		d.window.Call("removeEventListener", event, cb, opts)
		cb.Release()
	}
}

func (d *dom) OnScroll(fn func()) func() { return d.listen("scroll", fn) }

func (d *dom) OnResize(fn func()) func() { return d.listen("resize", fn) }

// highlight marks the nav controls for active and clears the rest.
func (d *dom) highlight(active string) {
	controls := d.document.Call("querySelectorAll", "[data-nav]")
	for i := 0; i < controls.Length(); i++ {
		el := controls.Index(i)
		isActive := el.Get("dataset").Get("nav").String() == active
		el.Get("classList").Call("toggle", "active", isActive)
		if isActive {
			el.Call("setAttribute", "aria-current", "true")
		} else {
			el.Call("removeAttribute", "aria-current")
		}
	}
}

// bindNavClicks smooth-scrolls to a section when its nav control is clicked.
func (d *dom) bindNavClicks() func() {
	var release []func()
	controls := d.document.Call("querySelectorAll", "[data-nav]")
	for i := 0; i < controls.Length(); i++ {
		el := controls.Index(i)
		id := el.Get("dataset").Get("nav").String()
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			target, ok := d.element(id)
			if !ok {
				return nil
			}
			if len(args) > 0 {
				args[0].Call("preventDefault")
			}
			target.Call("scrollIntoView", map[string]any{"behavior": "smooth", "block": "start"})
			return nil
		})
		el.Call("addEventListener", "click", cb)
		release = append(release, func() {
			el.Call("removeEventListener", "click", cb)
			cb.Release()
		})
	}
	return func() {
		for _, r := range release {
			r()
		}
	}
}
