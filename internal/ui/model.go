// Package ui is the terminal front end: a bubbletea model hosting the movie
// prediction form and the title autocomplete.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"movieform/internal/autocomplete"
	"movieform/internal/config"
	"movieform/internal/domain"
	"movieform/internal/eventbus"
	"movieform/internal/form"
	"movieform/internal/ui/views"
)

// Focus slots in tab order. The genre checkboxes follow fieldDays and the
// submit button comes last.
const (
	fieldTitle = iota
	fieldTheaters
	fieldDays
	fieldFirstGenre
)

var fieldSubmit = fieldFirstGenre + len(domain.Genres)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	styles *views.Styles
	keys   keyMap
	help   help.Model

	width  int
	height int

	title    textinput.Model
	theaters textinput.Model
	days     textinput.Model
	genres   []bool
	focus    int

	dropdown *views.Dropdown
	host     *teaHost
	ctrl     *autocomplete.Controller

	toasts      *form.Toasts
	showHelp    bool
	inPagerMode bool
	submission  *domain.Submission

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Suggestions for the title field come from fetcher.
func NewModel(bus eventbus.EventBus, cfg *config.Config, fetcher autocomplete.Fetcher) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:      bus,
		config:   cfg,
		styles:   views.NewStyles(),
		keys:     newKeyMap(),
		help:     help.New(),
		title:    newInput("Start typing a movie title...", 200),
		theaters: newInput("e.g. 3,500", 12),
		days:     newInput("e.g. 90", 12),
		genres:   make([]bool, len(domain.Genres)),
		dropdown: views.NewDropdown(cfg.UI.DropdownHeight),
		host:     newTeaHost(16),
		toasts:   form.NewToasts(cfg.UI.ToastLifetime()),
	}

	m.ctrl = autocomplete.NewController(&titleView{m: m}, fetcher, m.host, autocomplete.Options{
		Debounce:       cfg.Search.Debounce(),
		MinQueryLength: cfg.Search.MinQueryLength,
		RequestTimeout: cfg.Search.Timeout(),
		Bus:            bus,
	})

	m.focusField(fieldTitle)
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "> "
	return ti
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Submission returns the submitted form, if the user submitted one
func (m *Model) Submission() (domain.Submission, bool) {
	if m.submission == nil {
		return domain.Submission{}, false
	}
	return *m.submission, true
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.host.wait(), textinput.Blink)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w := m.contentWidth() - 4
		m.title.Width = w
		m.theaters.Width = w
		m.days.Width = w
		return m, nil

	case callbackMsg:
		msg.fn()
		return m, m.host.wait()

	case toastExpiredMsg:
		m.toasts.Dismiss(msg.id)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager unavailable: show the help inline instead
			log.Warn("Help pager failed", "err", msg.err)
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// Cursor blink and friends go to the focused input
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldTheaters:
		m.theaters, cmd = m.theaters.Update(msg)
	case fieldDays:
		m.days, cmd = m.days.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch msg.String() {
		case "esc", "q", "f1", "enter":
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(renderHelpContent())
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus((m.focus + 1) % (fieldSubmit + 1))
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus((m.focus + fieldSubmit) % (fieldSubmit + 1))
	}

	if m.focus == fieldTitle {
		return m.handleTitleKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		return m.moveFocus(min(m.focus+1, fieldSubmit))
	case key.Matches(msg, m.keys.Up):
		return m.moveFocus(max(m.focus-1, fieldTitle))
	case key.Matches(msg, m.keys.Toggle) && m.isGenre(m.focus):
		m.genres[m.focus-fieldFirstGenre] = !m.genres[m.focus-fieldFirstGenre]
		return nil
	case key.Matches(msg, m.keys.Select), m.focus == fieldSubmit && key.Matches(msg, m.keys.Toggle):
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTheaters:
		m.theaters, cmd = m.theaters.Update(msg)
	case fieldDays:
		m.days, cmd = m.days.Update(msg)
	}
	return cmd
}

// handleTitleKey gives the autocomplete first pick of a key; whatever it does
// not consume gets the field's default behavior
func (m *Model) handleTitleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.ctrl.KeyDown(autocomplete.KeyArrowDown)
		return nil
	case key.Matches(msg, m.keys.Up):
		m.ctrl.KeyDown(autocomplete.KeyArrowUp)
		return nil
	case key.Matches(msg, m.keys.Escape):
		m.ctrl.KeyDown(autocomplete.KeyEscape)
		return nil
	case key.Matches(msg, m.keys.Select):
		if m.ctrl.KeyDown(autocomplete.KeyEnter) {
			return nil
		}
		return m.submit()
	}

	before := m.title.Value()
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	if m.title.Value() != before {
		m.ctrl.InputChanged()
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp || msg.Action != tea.MouseActionPress {
		return nil
	}

	line, ok := m.lineAt(msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if ok && (line.hit.kind == hitEntry || line.hit.kind == hitDropdown) {
			delta := 1
			if msg.Button == tea.MouseButtonWheelUp {
				delta = -1
			}
			m.dropdown.Scroll(delta)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	switch {
	case ok && line.hit.kind == hitEntry:
		m.ctrl.Click(line.hit.index)
		return nil
	case ok && line.hit.kind == hitDropdown:
		return nil
	case ok && line.hit.kind == hitField && line.hit.index == fieldTitle:
		return m.focusField(fieldTitle)
	}

	m.ctrl.PointerOutside()
	if !ok || line.hit.kind != hitField {
		return nil
	}

	target := line.hit.index
	cmd := m.moveFocus(target)
	switch {
	case m.isGenre(target):
		m.genres[target-fieldFirstGenre] = !m.genres[target-fieldFirstGenre]
	case target == fieldSubmit:
		return tea.Batch(cmd, m.submit())
	}
	return cmd
}

// moveFocus changes the focused field. Leaving the title field counts as a
// pointer interaction outside the dropdown.
func (m *Model) moveFocus(to int) tea.Cmd {
	if m.focus == fieldTitle && to != fieldTitle {
		m.ctrl.PointerOutside()
	}
	return m.focusField(to)
}

// focusField moves focus without touching the dropdown. Number fields show
// grouped digits only while unfocused.
func (m *Model) focusField(to int) tea.Cmd {
	switch m.focus {
	case fieldTitle:
		m.title.Blur()
	case fieldTheaters:
		m.theaters.Blur()
		m.theaters.SetValue(form.FormatThousands(m.theaters.Value()))
	case fieldDays:
		m.days.Blur()
		m.days.SetValue(form.FormatThousands(m.days.Value()))
	}

	m.focus = to

	switch to {
	case fieldTitle:
		return m.title.Focus()
	case fieldTheaters:
		m.theaters.SetValue(form.StripThousands(m.theaters.Value()))
		return m.theaters.Focus()
	case fieldDays:
		m.days.SetValue(form.StripThousands(m.days.Value()))
		return m.days.Focus()
	}
	return nil
}

func (m *Model) isGenre(field int) bool {
	return field >= fieldFirstGenre && field < fieldSubmit
}

func (m *Model) fields() form.Fields {
	f := form.Fields{
		Title:           m.title.Value(),
		OpeningTheaters: m.theaters.Value(),
		ReleaseDays:     m.days.Value(),
		Genres:          []string{},
	}
	for i, on := range m.genres {
		if on {
			f.Genres = append(f.Genres, domain.Genres[i])
		}
	}
	return f
}

func (m *Model) selectedGenres() int {
	n := 0
	for _, on := range m.genres {
		if on {
			n++
		}
	}
	return n
}

// submit validates the form and either raises a toast or finishes the program
func (m *Model) submit() tea.Cmd {
	sub, err := m.fields().Submission()
	if err != nil {
		toast := m.toasts.Push(form.NotPositiveMessage, time.Now())
		m.publish(eventbus.ValidationFailedEvent{Message: toast.Message})
		return tea.Tick(m.toasts.Lifetime(), func(time.Time) tea.Msg {
			return toastExpiredMsg{id: toast.ID}
		})
	}

	m.submission = &sub
	m.publish(eventbus.FormSubmittedEvent{Submission: sub})
	log.Info("Form submitted", "title", sub.Title, "theaters", sub.OpeningTheaters, "days", sub.ReleaseDays)
	m.shutdown()
	return tea.Quit
}

func (m *Model) shutdown() {
	m.ctrl.Close()
	m.host.close()
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// titleView exposes the title field and dropdown to the autocomplete controller
type titleView struct {
	m *Model
}

func (v *titleView) SetDropdown(list autocomplete.ListModel) { v.m.dropdown.SetList(list) }
func (v *titleView) SetDropdownVisible(visible bool)        { v.m.dropdown.SetVisible(visible) }
func (v *titleView) Highlight(index int)                    { v.m.dropdown.Highlight(index) }
func (v *titleView) ScrollIntoView(index int)               { v.m.dropdown.ScrollIntoView(index) }
func (v *titleView) InputValue() string                     { return v.m.title.Value() }
func (v *titleView) FocusInput()                            { v.m.focusField(fieldTitle) }

// SetInputValue replaces the title without going through Update, so the
// controller is not told about its own edit
func (v *titleView) SetInputValue(value string) {
	v.m.title.SetValue(value)
	v.m.title.CursorEnd()
}
