package form

import "time"

// DefaultToastLifetime is how long a notification stays up
const DefaultToastLifetime = 3 * time.Second

// Toast is a transient notification
type Toast struct {
	ID      int
	Message string
	Expires time.Time
}

// Toasts is a queue of notifications that drop out after their lifetime
type Toasts struct {
	lifetime time.Duration
	nextID   int
	items    []Toast
}

// NewToasts creates a queue; a non-positive lifetime uses the default
func NewToasts(lifetime time.Duration) *Toasts {
	if lifetime <= 0 {
		lifetime = DefaultToastLifetime
	}
	return &Toasts{lifetime: lifetime}
}

// Lifetime returns how long each toast lives
func (t *Toasts) Lifetime() time.Duration {
	return t.lifetime
}

// Push adds a toast shown from now
func (t *Toasts) Push(msg string, now time.Time) Toast {
	t.nextID++
	toast := Toast{ID: t.nextID, Message: msg, Expires: now.Add(t.lifetime)}
	t.items = append(t.items, toast)
	return toast
}

// Dismiss removes the toast with id
func (t *Toasts) Dismiss(id int) {
	for i, item := range t.items {
		if item.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Expire drops every toast past its lifetime and reports whether any went
func (t *Toasts) Expire(now time.Time) bool {
	kept := t.items[:0]
	for _, item := range t.items {
		if now.Before(item.Expires) {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(t.items)
	t.items = kept
	return removed
}

// Active returns the toasts on screen, oldest first
func (t *Toasts) Active() []Toast {
	return append([]Toast(nil), t.items...)
}
