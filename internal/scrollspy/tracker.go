// Package scrollspy maps a scroll position to the section of a page that is
// currently in focus, for highlighting the matching navigation control.
package scrollspy

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
)

// Section is a named region of a vertically stacked document.
type Section struct {
	ID        string
	OffsetTop float64
}

// Config describes the sections to track and where the decision line sits.
type Config struct {
	// SectionIDs in document order, top to bottom.
	SectionIDs []string
	// FocusOffset is the distance from the viewport top to the decision line.
	FocusOffset float64
}

// ConfigError is returned by New when a Config cannot produce a tracker.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "scrollspy: invalid config: " + e.Reason
}

// Document reads live layout. OffsetTop reports false when the section is
// no longer present.
type Document interface {
	OffsetTop(id string) (float64, bool)
	ScrollY() float64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

type subscriber struct {
	id uint64
	fn func(string)
}

// Tracker holds section geometry and the active section.
type Tracker struct {
	mu      sync.Mutex
	ids     []string
	index   map[string]int
	focus   float64
	offsets []float64
	active  string

	subs   []subscriber
	nextID uint64

	attached *binding

	log *slog.Logger
}

// New creates a tracker. Until Measure is called every section is treated as
// unplaced, so the first section is active.
func New(cfg Config, opts ...Option) (*Tracker, error) {
	if len(cfg.SectionIDs) == 0 {
		return nil, &ConfigError{Reason: "no section ids"}
	}
	if cfg.FocusOffset < 0 || math.IsNaN(cfg.FocusOffset) || math.IsInf(cfg.FocusOffset, 0) {
		return nil, &ConfigError{Reason: fmt.Sprintf("focus offset %v must be a finite value >= 0", cfg.FocusOffset)}
	}

	ids := make([]string, len(cfg.SectionIDs))
	index := make(map[string]int, len(cfg.SectionIDs))
	for i, id := range cfg.SectionIDs {
		if id == "" {
			return nil, &ConfigError{Reason: fmt.Sprintf("section %d has an empty id", i)}
		}
		if _, dup := index[id]; dup {
			return nil, &ConfigError{Reason: fmt.Sprintf("duplicate section id %q", id)}
		}
		index[id] = i
		ids[i] = id
	}

	offsets := make([]float64, len(ids))
	for i := range offsets {
		offsets[i] = math.Inf(1)
	}

	t := &Tracker{
		ids:     ids,
		index:   index,
		focus:   cfg.FocusOffset,
		offsets: offsets,
		active:  ids[0],
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Measure re-reads every section's offset from doc. Sections the document
// no longer contains are placed at +Inf so they never become active.
func (t *Tracker) Measure(doc Document) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, id := range t.ids {
		top, ok := doc.OffsetTop(id)
		if !ok || math.IsNaN(top) {
			if !math.IsInf(t.offsets[i], 1) {
				t.log.Debug("section missing from layout", "section", id)
			}
			top = math.Inf(1)
		}
		t.offsets[i] = top
	}
}

// Resolve returns the section that would be active at scrollY, without
// changing the tracker's state.
func (t *Tracker) Resolve(scrollY float64) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resolveLocked(scrollY)
}

func (t *Tracker) resolveLocked(scrollY float64) string {
	line := scrollY + t.focus + 1
	// Scanning bottom-up lets the lowest section already past the line win.
	for i := len(t.ids) - 1; i >= 0; i-- {
		if t.offsets[i] <= line {
			return t.ids[i]
		}
	}
	return t.ids[0]
}

// OnScrollOrResize recomputes the active section for scrollY, notifies
// subscribers if it changed, and returns it.
func (t *Tracker) OnScrollOrResize(scrollY float64) string {
	t.mu.Lock()
	next := t.resolveLocked(scrollY)
	if next == t.active {
		t.mu.Unlock()
		return next
	}
	prev := t.active
	t.active = next
	fns := make([]func(string), len(t.subs))
	for i, s := range t.subs {
		fns[i] = s.fn
	}
	t.mu.Unlock()

	t.log.Debug("active section changed", "from", prev, "to", next, "scroll_y", scrollY)
	for _, fn := range fns {
		fn(next)
	}
	return next
}

// Active returns the current active section id.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Subscribe registers fn to be called whenever the active section changes.
// The returned function removes the subscription and may be called more
// than once.
func (t *Tracker) Subscribe(fn func(active string)) (unsubscribe func()) {
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscriber{id: id, fn: fn})
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			for i, s := range t.subs {
				if s.id == id {
					t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Sections returns a snapshot of the measured geometry in document order.
func (t *Tracker) Sections() []Section {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Section, len(t.ids))
	for i, id := range t.ids {
		out[i] = Section{ID: id, OffsetTop: t.offsets[i]}
	}
	return out
}

// SectionIDs returns the tracked ids in document order.
func (t *Tracker) SectionIDs() []string {
	return append([]string(nil), t.ids...)
}

// ScrollTarget returns the scroll position that brings the top of section id
// to the top of the viewport. It reports false for unknown or unplaced
// sections.
func (t *Tracker) ScrollTarget(id string) (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.index[id]
	if !ok || math.IsInf(t.offsets[i], 1) {
		return 0, false
	}
	return math.Max(0, t.offsets[i]), true
}
