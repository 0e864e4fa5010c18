package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// teaHost runs autocomplete callbacks inside Update. Callbacks wait on a
// channel and a command pulls them in one at a time, re-armed after each.
type teaHost struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

func newTeaHost(size int) *teaHost {
	if size < 1 {
		size = 1
	}
	return &teaHost{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Post queues fn for the update loop. After close it is dropped.
func (h *teaHost) Post(fn func()) {
	select {
	case h.queue <- fn:
	case <-h.done:
	}
}

// AfterFunc queues fn once d has elapsed
func (h *teaHost) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, func() { h.Post(fn) })
	return t.Stop
}

// wait returns the command that delivers the next callback
func (h *teaHost) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-h.queue:
			return callbackMsg{fn: fn}
		case <-h.done:
			return nil
		}
	}
}

func (h *teaHost) close() {
	h.once.Do(func() { close(h.done) })
}
