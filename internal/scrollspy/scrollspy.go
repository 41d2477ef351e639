package scrollspy

import (
	"context"
	"log/slog"
	"sync"
)

// DefaultThreshold approximates the height of a fixed page header, in pixels.
const DefaultThreshold = 100

// Anchor is a rendered heading and its top offset inside the scrolling container.
type Anchor struct {
	ID  string  `json:"id"`
	Top float64 `json:"top"`
}

// Active returns the index of the active anchor for a scroll position.
//
// The active anchor is the last one, in document order, whose top sits at or
// above the threshold line (Top-scrollTop <= threshold). A position above the
// first qualifying anchor activates nothing.
//
// Overscroll rule: any scrollTop below zero means no heading is active, even
// when an anchor would otherwise be within the threshold (scrollTop -10 with
// anchors at 0, 300 and 600 activates nothing).
func Active(anchors []Anchor, scrollTop, threshold float64) (int, bool) {
	if scrollTop < 0 {
		return -1, false
	}
	idx := -1
	for i, a := range anchors {
		if a.Top-scrollTop <= threshold {
			idx = i
		}
	}
	return idx, idx >= 0
}

// Scroller performs the smooth scroll for NavigateTo.
type Scroller interface {
	ScrollTo(a Anchor)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(a Anchor)

func (f ScrollerFunc) ScrollTo(a Anchor) { f(a) }

// Tracker holds the active heading of one mounted table of contents.
// It is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	anchors   []Anchor
	threshold float64
	active    string
	scroller  Scroller
	log       *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThreshold sets the header offset. Defaults to DefaultThreshold.
func WithThreshold(px float64) Option {
	return func(t *Tracker) { t.threshold = px }
}

// WithScroller sets the scroller used by NavigateTo.
func WithScroller(s Scroller) Option {
	return func(t *Tracker) { t.scroller = s }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// NewTracker creates a Tracker with no anchors mounted.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		threshold: DefaultThreshold,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetAnchors replaces the anchor positions after a render, resize or reflow.
// The active heading is kept until the next scroll event.
func (t *Tracker) SetAnchors(anchors []Anchor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.anchors = append(t.anchors[:0:0], anchors...)
}

// OnScroll recomputes the active heading for a scroll position and returns it.
// An empty string means no heading is active.
func (t *Tracker) OnScroll(scrollTop float64) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = ""
	if i, ok := Active(t.anchors, scrollTop, t.threshold); ok {
		t.active = t.anchors[i].ID
	}
	return t.active
}

// Active returns the current active anchor id, or "".
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// IsActive reports whether id is the active anchor.
func (t *Tracker) IsActive(id string) bool {
	return id != "" && t.Active() == id
}

// NavigateTo scrolls to the anchor and marks it active right away instead of
// waiting for scroll events. It returns false if the anchor is not mounted.
func (t *Tracker) NavigateTo(id string) bool {
	t.mu.Lock()
	var target *Anchor
	for i := range t.anchors {
		if t.anchors[i].ID == id {
			target = &t.anchors[i]
			break
		}
	}
	if target == nil {
		t.mu.Unlock()
		t.log.Debug("navigate to unknown anchor", "anchor", id)
		return false
	}
	a := *target
	t.active = id
	scroller := t.scroller
	t.mu.Unlock()

	if scroller != nil {
		scroller.ScrollTo(a)
	}
	return true
}

// Event is one scroll notification. Anchors is non-nil when the layout
// changed since the previous event.
type Event struct {
	ScrollTop float64
	Anchors   []Anchor
}

// Watch subscribes the tracker to a stream of scroll events until ctx is
// done or events is closed. Bursts are coalesced to the latest event, and
// onChange is called whenever the active anchor changes.
func (t *Tracker) Watch(ctx context.Context, events <-chan Event, onChange func(active string)) {
	last := t.Active()
	for {
		var ev Event
		var ok bool
		select {
		case <-ctx.Done():
			return
		case ev, ok = <-events:
			if !ok {
				return
			}
		}

		// Drain whatever queued up while we were busy.
	drain:
		for {
			select {
			case next, more := <-events:
				if !more {
					break drain
				}
				if next.Anchors == nil {
					next.Anchors = ev.Anchors
				}
				ev = next
			default:
				break drain
			}
		}

		if ev.Anchors != nil {
			t.SetAnchors(ev.Anchors)
		}
		active := t.OnScroll(ev.ScrollTop)
		if active != last {
			last = active
			if onChange != nil {
				onChange(active)
			}
		}
	}
}
