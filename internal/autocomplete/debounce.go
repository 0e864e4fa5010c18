package autocomplete

import "time"

// DefaultDebounce is the quiet interval before a search fires
const DefaultDebounce = 300 * time.Millisecond

// Debouncer runs the most recently scheduled action once input has been quiet
// for its interval. It must only be used from its host's loop.
type Debouncer struct {
	host     Host
	interval time.Duration
	gen      uint64
	stop     func() bool
}

// NewDebouncer creates a debouncer firing on host after interval
func NewDebouncer(host Host, interval time.Duration) *Debouncer {
	return &Debouncer{host: host, interval: interval}
}

// Schedule replaces any pending action with action
func (d *Debouncer) Schedule(action func()) {
	d.Cancel()
	gen := d.gen
	d.stop = d.host.AfterFunc(d.interval, func() {
		// the timer may have been queued on the loop before it was superseded
		if gen != d.gen {
			return
		}
		d.stop = nil
		action()
	})
}

// Cancel drops the pending action, if any
func (d *Debouncer) Cancel() {
	d.gen++
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
}

// Pending reports whether an action is waiting to fire
func (d *Debouncer) Pending() bool {
	return d.stop != nil
}
