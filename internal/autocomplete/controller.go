// Package autocomplete drives a search-as-you-type dropdown for a single
// text input: keystrokes are debounced into searches, the latest search wins,
// and the resulting list can be walked with the keyboard or clicked.
//
// A Controller never touches the screen directly. It talks to a View and runs
// every callback on a Host loop, so the same logic works under bubbletea, a
// plain Loop, or a test harness.
package autocomplete

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"movieform/internal/eventbus"
)

// Key is a keyboard command understood by the controller
type Key int

const (
	KeyArrowDown Key = iota + 1
	KeyArrowUp
	KeyEnter
	KeyEscape
)

// Options tune a Controller
type Options struct {
	Debounce       time.Duration
	MinQueryLength int
	RequestTimeout time.Duration
	Bus            eventbus.EventBus
}

// DefaultOptions returns the stock settings
func DefaultOptions() Options {
	return Options{
		Debounce:       DefaultDebounce,
		MinQueryLength: 2,
		RequestTimeout: 5 * time.Second,
	}
}

// Controller owns the autocomplete state for one input/dropdown pair. All
// methods must be called on the host loop.
type Controller struct {
	view    View
	fetcher Fetcher
	host    Host
	opts    Options

	debounce *Debouncer
	nav      *Navigator
	list     ListModel
	open     bool

	seq     uint64 // last token minted
	pending uint64 // token whose response may render; 0 when none

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// NewController binds a controller to view
func NewController(view View, fetcher Fetcher, host Host, opts Options) *Controller {
	if opts.MinQueryLength < 1 {
		opts.MinQueryLength = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		view:     view,
		fetcher:  fetcher,
		host:     host,
		opts:     opts,
		debounce: NewDebouncer(host, opts.Debounce),
		nav:      NewNavigator(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// InputChanged reacts to the user editing the input
func (c *Controller) InputChanged() {
	if c.closed {
		return
	}
	query := strings.TrimSpace(c.view.InputValue())
	if utf8.RuneCountInString(query) < c.opts.MinQueryLength {
		c.hide("short query")
		return
	}
	c.debounce.Schedule(func() { c.search(query) })
}

// KeyDown handles a navigation key and reports whether the host should
// suppress the key's default action.
func (c *Controller) KeyDown(key Key) bool {
	if c.closed {
		return false
	}
	switch key {
	case KeyArrowDown:
		c.move(Down)
		return true
	case KeyArrowUp:
		c.move(Up)
		return true
	case KeyEnter:
		i, ok := c.nav.Current()
		if !ok {
			return false
		}
		c.Click(i)
		return true
	case KeyEscape:
		c.nav.Escape()
		c.hide("escape")
	}
	return false
}

// Click commits entry i of the shown list. The placeholder row is inert.
func (c *Controller) Click(i int) {
	if c.closed || !c.open || i < 0 || i >= len(c.list.Entries) {
		return
	}

	entry := c.list.Entries[i]
	switch entry.Kind {
	case EntryPlaceholder:
		return
	case EntrySuggestion:
		c.view.SetInputValue(entry.Value)
		c.publish(eventbus.SuggestionCommittedEvent{Value: entry.Value})
	case EntryFallback:
		c.publish(eventbus.SuggestionCommittedEvent{FreeText: true})
	}

	c.hide("commit")
	c.view.FocusInput()
}

// PointerOutside handles a click that landed neither on the input nor on the dropdown
func (c *Controller) PointerOutside() {
	if c.closed {
		return
	}
	c.hide("pointer outside")
}

// Close releases the controller. Pending searches never fire and in-flight
// responses are dropped.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.debounce.Cancel()
	c.pending = 0
	c.closed = true
	c.cancel()
}

// HighlightIndex returns the highlighted entry or -1
func (c *Controller) HighlightIndex() int {
	return c.nav.Index()
}

// List returns the list currently shown
func (c *Controller) List() ListModel {
	return c.list
}

// Open reports whether the dropdown is visible
func (c *Controller) Open() bool {
	return c.open
}

// Searching reports whether a search is debounced or in flight
func (c *Controller) Searching() bool {
	return c.debounce.Pending() || c.pending != 0
}

func (c *Controller) move(dir Direction) {
	if !c.open || !c.nav.Move(dir) {
		return
	}
	i := c.nav.Index()
	c.view.Highlight(i)
	c.view.ScrollIntoView(i)
}

// search mints a token and runs the fetch off the loop
func (c *Controller) search(query string) {
	c.seq++
	token := c.seq
	c.pending = token
	c.publish(eventbus.SuggestionsRequestedEvent{Query: query, Token: token})
	log.Debug("Fetching suggestions", "query", query, "token", token)

	ctx, fetcher, host, timeout := c.ctx, c.fetcher, c.host, c.opts.RequestTimeout
	go func() {
		var cancel context.CancelFunc
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
		} else {
			ctx, cancel = context.WithCancel(ctx)
		}
		defer cancel()

		titles, err := fetcher.Fetch(ctx, query)
		host.Post(func() { c.deliver(token, query, titles, err) })
	}()
}

// deliver renders a response if its token is still the latest one
func (c *Controller) deliver(token uint64, query string, titles []string, err error) {
	if c.closed || token != c.pending {
		log.Debug("Dropping stale suggestions", "query", query, "token", token, "current", c.pending)
		c.publish(eventbus.SuggestionsDiscardedEvent{Query: query, Token: token})
		return
	}

	if err != nil {
		log.Warn("Error fetching suggestions", "query", query, "err", err)
		c.publish(eventbus.SuggestionsFailedEvent{Query: query, Token: token, Err: err})
		c.hide("fetch failed")
		return
	}

	c.list = Render(query, titles, c.view.InputValue())
	c.nav.Reset(c.list.Navigable)
	c.view.SetDropdown(c.list)
	c.view.Highlight(-1)
	c.view.SetDropdownVisible(true)
	c.open = true
	c.publish(eventbus.SuggestionsRenderedEvent{Query: query, Token: token, Count: len(titles)})
}

// hide closes the dropdown, discarding its list and any pending search
func (c *Controller) hide(reason string) {
	c.debounce.Cancel()
	c.pending = 0
	c.nav.Reset(0)
	c.list = ListModel{}
	c.view.Highlight(-1)
	c.view.SetDropdown(ListModel{})
	c.view.SetDropdownVisible(false)

	if c.open {
		c.open = false
		c.publish(eventbus.DropdownClosedEvent{Reason: reason})
	}
}

func (c *Controller) publish(e eventbus.DomainEvent) {
	if c.opts.Bus != nil {
		c.opts.Bus.Publish(e)
	}
}
