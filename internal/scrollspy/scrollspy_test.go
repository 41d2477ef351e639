package scrollspy

import (
	"context"
	"testing"
	"time"
)

func anchors(tops ...float64) []Anchor {
	out := make([]Anchor, len(tops))
	for i, top := range tops {
		out[i] = Anchor{ID: string(rune('a' + i)), Top: top}
	}
	return out
}

func TestActive(t *testing.T) {
	as := anchors(0, 300, 600)

	tests := []struct {
		name      string
		anchors   []Anchor
		scrollTop float64
		wantIdx   int
		wantOK    bool
	}{
		{"middle section", as, 350, 1, true},
		{"above top", as, -10, -1, false},
		{"overscroll just below zero", as, -0.5, -1, false},
		{"at top", as, 0, 0, true},
		{"threshold line reached", as, 200, 1, true},
		{"just short of threshold", as, 199, 0, true},
		{"bottom", as, 5000, 2, true},
		{"not mounted", nil, 350, -1, false},
		{"first heading below fold", anchors(500, 900), 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := Active(tt.anchors, tt.scrollTop, 100)
			if idx != tt.wantIdx || ok != tt.wantOK {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.wantIdx, tt.wantOK, idx, ok)
			}
		})
	}

	// Overscroll wins over a threshold wide enough to reach every anchor.
	if idx, ok := Active(as, -10, 1000); ok {
		t.Errorf("expected overscroll to activate nothing, got %d", idx)
	}
}

func TestTracker_OnScroll(t *testing.T) {
	tr := NewTracker(WithThreshold(100))
	if got := tr.OnScroll(350); got != "" {
		t.Errorf("expected no active anchor before mount, got %q", got)
	}

	tr.SetAnchors(anchors(0, 300, 600))
	if got := tr.OnScroll(350); got != "b" {
		t.Errorf("expected %q, got %q", "b", got)
	}
	if !tr.IsActive("b") || tr.IsActive("a") {
		t.Error("expected only b to be active")
	}
	if got := tr.OnScroll(-10); got != "" {
		t.Errorf("expected no active anchor above top, got %q", got)
	}
}

func TestTracker_NavigateToIsImmediate(t *testing.T) {
	var scrolled []string
	tr := NewTracker(WithScroller(ScrollerFunc(func(a Anchor) {
		scrolled = append(scrolled, a.ID)
	})))
	tr.SetAnchors(anchors(0, 300, 600))
	tr.OnScroll(0)

	if !tr.NavigateTo("c") {
		t.Fatal("expected NavigateTo to succeed")
	}
	if tr.Active() != "c" {
		t.Errorf("expected c active immediately, got %q", tr.Active())
	}
	if len(scrolled) != 1 || scrolled[0] != "c" {
		t.Errorf("expected one scroll to c, got %v", scrolled)
	}

	if tr.NavigateTo("zzz") {
		t.Error("expected unknown anchor to fail")
	}
	if tr.Active() != "c" {
		t.Errorf("unknown anchor changed active to %q", tr.Active())
	}
}

func TestTracker_SetAnchorsCopies(t *testing.T) {
	as := anchors(0, 300)
	tr := NewTracker()
	tr.SetAnchors(as)
	as[1].Top = 10000

	if got := tr.OnScroll(300); got != "b" {
		t.Errorf("expected tracker to keep its own copy, got %q", got)
	}
}

func TestTracker_Watch(t *testing.T) {
	tr := NewTracker()
	events := make(chan Event, 8)
	changes := make(chan string, 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tr.Watch(ctx, events, func(active string) { changes <- active })
		close(done)
	}()

	events <- Event{ScrollTop: 0, Anchors: anchors(0, 300, 600)}
	expectChange(t, changes, "a")

	events <- Event{ScrollTop: 350}
	expectChange(t, changes, "b")

	events <- Event{ScrollTop: -10}
	expectChange(t, changes, "")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestTracker_WatchStopsOnClose(t *testing.T) {
	tr := NewTracker()
	events := make(chan Event, 2)
	events <- Event{ScrollTop: 700, Anchors: anchors(0, 300, 600)}
	close(events)

	tr.Watch(context.Background(), events, nil)
	if tr.Active() != "c" {
		t.Errorf("expected c active, got %q", tr.Active())
	}
}

func expectChange(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Errorf("expected change to %q, got %q", want, got)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for change to %q", want)
	}
}
