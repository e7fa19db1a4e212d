package scrollspy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvents struct {
	scroll map[int]func()
	resize map[int]func()
	next   int
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{scroll: map[int]func(){}, resize: map[int]func(){}}
}

func (e *fakeEvents) OnScroll(fn func()) func() {
	e.next++
	id := e.next
	e.scroll[id] = fn
	return func() { delete(e.scroll, id) }
}

func (e *fakeEvents) OnResize(fn func()) func() {
	e.next++
	id := e.next
	e.resize[id] = fn
	return func() { delete(e.resize, id) }
}

func (e *fakeEvents) fireScroll() {
	for _, fn := range e.scroll {
		fn()
	}
}

func (e *fakeEvents) fireResize() {
	for _, fn := range e.resize {
		fn()
	}
}

func TestAttachMeasuresAndResolvesImmediately(t *testing.T) {
	tr, err := New(Config{SectionIDs: []string{"A", "B", "C"}, FocusOffset: 80})
	require.NoError(t, err)
	doc := &fakeDoc{offsets: map[string]float64{"A": 0, "B": 400, "C": 900}, scrollY: 850}

	detach := tr.Attach(doc, newFakeEvents())
	defer detach()

	assert.Equal(t, "C", tr.Active())
}

func TestAttachRegistersOnePairOfListeners(t *testing.T) {
	tr, _ := newABC(t)
	ev := newFakeEvents()
	doc := &fakeDoc{offsets: map[string]float64{"A": 0, "B": 400, "C": 900}}

	d1 := tr.Attach(doc, ev)
	d2 := tr.Attach(doc, ev)
	assert.Len(t, ev.scroll, 1)
	assert.Len(t, ev.resize, 1)

	d2()
	assert.Empty(t, ev.scroll)
	assert.Empty(t, ev.resize)
	d1()

	// A fresh attach after detaching registers again.
	d3 := tr.Attach(doc, ev)
	assert.Len(t, ev.scroll, 1)
	d3()
}

func TestScrollEventsDriveActiveSection(t *testing.T) {
	tr, _ := newABC(t)
	ev := newFakeEvents()
	doc := &fakeDoc{offsets: map[string]float64{"A": 0, "B": 400, "C": 900}}
	var got []string
	unsub := tr.Subscribe(func(id string) { got = append(got, id) })
	defer unsub()

	detach := tr.Attach(doc, ev)
	doc.scrollY = 350
	ev.fireScroll()
	ev.fireScroll()
	doc.scrollY = 850
	ev.fireScroll()

	detach()
	doc.scrollY = 0
	ev.fireScroll()

	assert.Equal(t, []string{"B", "C"}, got)
	assert.Equal(t, "C", tr.Active())
}

func TestResizeRemeasures(t *testing.T) {
	tr, _ := newABC(t)
	ev := newFakeEvents()
	doc := &fakeDoc{offsets: map[string]float64{"A": 0, "B": 400, "C": 900}, scrollY: 350}

	detach := tr.Attach(doc, ev)
	defer detach()
	require.Equal(t, "B", tr.Active())

	// A narrower layout pushes B further down without any scrolling.
	doc.offsets["B"] = 800
	doc.offsets["C"] = 1600
	ev.fireScroll()
	assert.Equal(t, "B", tr.Active(), "scroll alone must not re-read layout")

	ev.fireResize()
	assert.Equal(t, "A", tr.Active())
}
