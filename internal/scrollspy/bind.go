package scrollspy

import "sync"

// Events is the host's scroll and resize event source. Each registration
// returns a function that removes exactly that listener.
type Events interface {
	OnScroll(fn func()) (cancel func())
	OnResize(fn func()) (cancel func())
}

type binding struct {
	once   sync.Once
	cancel []func()
	detach func()
}

// Attach measures doc, resolves the initial active section and registers one
// scroll and one resize listener on ev. Resizes re-measure before resolving.
// Calling Attach again while attached returns the existing detach function
// without registering more listeners. Detach is safe to call repeatedly.
func (t *Tracker) Attach(doc Document, ev Events) (detach func()) {
	t.mu.Lock()
	if t.attached != nil {
		d := t.attached.detach
		t.mu.Unlock()
		return d
	}
	b := &binding{}
	b.detach = func() {
		b.once.Do(func() {
			for _, c := range b.cancel {
				c()
			}
			t.mu.Lock()
			if t.attached == b {
				t.attached = nil
			}
			t.mu.Unlock()
			t.log.Debug("scrollspy detached")
		})
	}
	t.attached = b
	t.mu.Unlock()

	t.Measure(doc)
	t.OnScrollOrResize(doc.ScrollY())

	b.cancel = append(b.cancel,
		ev.OnScroll(func() {
			t.OnScrollOrResize(doc.ScrollY())
		}),
		ev.OnResize(func() {
			t.Measure(doc)
			t.OnScrollOrResize(doc.ScrollY())
		}),
	)
	t.log.Debug("scrollspy attached", "sections", len(t.ids))
	return b.detach
}
