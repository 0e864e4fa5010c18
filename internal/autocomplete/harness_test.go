package autocomplete

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"
)

// manualHost is a Host whose clock only moves when the test says so. Timer
// callbacks run on the test goroutine; posted callbacks wait in a channel until
// the test runs them.
type manualHost struct {
	now    time.Duration
	timers []*manualTimer
	posts  chan func()
}

type manualTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func newManualHost() *manualHost {
	return &manualHost{posts: make(chan func(), 64)}
}

func (h *manualHost) Post(fn func()) {
	h.posts <- fn
}

func (h *manualHost) AfterFunc(d time.Duration, fn func()) func() bool {
	t := &manualTimer{at: h.now + d, fn: fn}
	h.timers = append(h.timers, t)
	return func() bool {
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

// Advance moves the clock and fires due timers in order
func (h *manualHost) Advance(d time.Duration) {
	h.now += d
	due := make([]*manualTimer, 0)
	for _, t := range h.timers {
		if !t.stopped && !t.fired && t.at <= h.now {
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.fired = true
		t.fn()
	}
}

// ActiveTimers counts timers that may still fire
func (h *manualHost) ActiveTimers() int {
	n := 0
	for _, t := range h.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// RunPosted waits for one posted callback and runs it
func (h *manualHost) RunPosted(t *testing.T) {
	t.Helper()
	select {
	case fn := <-h.posts:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a posted callback")
	}
}

type fakeView struct {
	value       string
	list        ListModel
	visible     bool
	highlight   int
	scrolled    []int
	focused     int
	valueWrites int
}

func newFakeView() *fakeView {
	return &fakeView{highlight: -1}
}

func (v *fakeView) SetDropdown(list ListModel)      { v.list = list }
func (v *fakeView) SetDropdownVisible(visible bool) { v.visible = visible }
func (v *fakeView) Highlight(index int)             { v.highlight = index }
func (v *fakeView) ScrollIntoView(index int)        { v.scrolled = append(v.scrolled, index) }
func (v *fakeView) InputValue() string              { return v.value }
func (v *fakeView) FocusInput()                     { v.focused++ }

func (v *fakeView) SetInputValue(value string) {
	v.value = value
	v.valueWrites++
}

type fetchReply struct {
	titles []string
	err    error
}

type fetchCall struct {
	query string
	reply chan fetchReply
}

// scriptedFetcher hands every call to the test, which answers in any order
type scriptedFetcher struct {
	calls chan *fetchCall
}

func newScriptedFetcher() *scriptedFetcher {
	return &scriptedFetcher{calls: make(chan *fetchCall, 16)}
}

func (f *scriptedFetcher) Fetch(ctx context.Context, query string) ([]string, error) {
	call := &fetchCall{query: query, reply: make(chan fetchReply, 1)}
	f.calls <- call
	select {
	case r := <-call.reply:
		return r.titles, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *scriptedFetcher) Next(t *testing.T) *fetchCall {
	t.Helper()
	select {
	case c := <-f.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a fetch")
		return nil
	}
}

func (f *scriptedFetcher) AssertNoCall(t *testing.T) {
	t.Helper()
	select {
	case c := <-f.calls:
		t.Fatalf("unexpected fetch for %q", c.query)
	case <-time.After(20 * time.Millisecond):
	}
}

// countingFetcher answers immediately from a table
type countingFetcher struct {
	mu      sync.Mutex
	results map[string][]string
	err     error
	queries []string
}

func (f *countingFetcher) Fetch(_ context.Context, query string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

func (f *countingFetcher) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}
