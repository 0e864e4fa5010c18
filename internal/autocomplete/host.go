package autocomplete

import (
	"context"
	"sync"
	"time"
)

// Host is the single event loop a Controller lives on. Every callback handed
// to a Host runs on that loop, one at a time.
type Host interface {
	// Post queues fn to run on the loop. It may be called from any goroutine.
	Post(fn func())
	// AfterFunc queues fn on the loop once d has elapsed. stop prevents fn
	// from being queued if it has not been yet.
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Loop is a channel-backed Host for programs without an event loop of their own.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with room for size queued callbacks
func NewLoop(size int) *Loop {
	if size < 1 {
		size = 1
	}
	return &Loop{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Post queues fn. Callbacks posted after the loop stopped are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// AfterFunc posts fn after d
func (l *Loop) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, func() { l.Post(fn) })
	return t.Stop
}

// Run executes queued callbacks until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
