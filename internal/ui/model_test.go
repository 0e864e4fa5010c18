package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieform/internal/autocomplete"
	"movieform/internal/config"
	"movieform/internal/domain"
	"movieform/internal/eventbus"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) Of(typ eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == typ {
			out = append(out, e)
		}
	}
	return out
}

var movieTitles = []string{"Mamma Mia!", "Madagascar", "The Matrix"}

func staticFetcher(titles []string) autocomplete.Fetcher {
	return autocomplete.FetcherFunc(func(context.Context, string) ([]string, error) {
		return titles, nil
	})
}

func newTestModel(t *testing.T, bus eventbus.EventBus, fetcher autocomplete.Fetcher) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Search.DebounceMS = 1
	cfg.UI.DropdownHeight = 4
	m := NewModel(bus, cfg, fetcher)
	t.Cleanup(m.shutdown)
	return m
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func click(m *Model, y int) {
	m.Update(tea.MouseMsg{X: 4, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

// pump delivers the next autocomplete callback to the model
func pump(t *testing.T, m *Model) {
	t.Helper()
	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- m.host.wait()() }()
	select {
	case msg := <-msgs:
		m.Update(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an autocomplete callback")
	}
}

// showSuggestions types "ma" and waits for the dropdown to render
func showSuggestions(t *testing.T, m *Model) {
	t.Helper()
	typeText(m, "ma")
	pump(t, m) // debounce fires, search starts
	pump(t, m) // response delivered
	require.True(t, m.dropdown.Visible())
}

// rowOf returns the terminal row showing entry
func rowOf(t *testing.T, m *Model, entry int) int {
	t.Helper()
	for i, l := range m.lines() {
		if l.hit.kind == hitEntry && l.hit.index == entry {
			return i + topPadding
		}
	}
	t.Fatalf("entry %d is not on screen", entry)
	return -1
}

func TestTypingShowsSuggestions(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	showSuggestions(t, m)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Mamma Mia!")
	assert.Contains(t, out, "The Matrix")
	assert.Contains(t, out, `Enter "ma" manually`)
	assert.Equal(t, -1, m.dropdown.HighlightIndex())
}

func TestShortQueryKeepsDropdownClosed(t *testing.T) {
	var calls int
	var mu sync.Mutex
	m := newTestModel(t, nil, autocomplete.FetcherFunc(func(context.Context, string) ([]string, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return movieTitles, nil
	}))

	typeText(m, "m")
	time.Sleep(20 * time.Millisecond)

	assert.False(t, m.dropdown.Visible())
	assert.False(t, m.ctrl.Searching())
	mu.Lock()
	assert.Zero(t, calls)
	mu.Unlock()
}

func TestArrowAndEnterCommitSuggestion(t *testing.T) {
	bus := &recordingBus{}
	m := newTestModel(t, bus, staticFetcher(movieTitles))
	showSuggestions(t, m)

	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyUp)
	assert.Equal(t, 0, m.dropdown.HighlightIndex())

	cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd, "enter was consumed by the dropdown")
	assert.Equal(t, "Mamma Mia!", m.title.Value())
	assert.False(t, m.dropdown.Visible())
	assert.Equal(t, fieldTitle, m.focus)
	_, submitted := m.Submission()
	assert.False(t, submitted)

	committed := bus.Of(eventbus.EventSuggestionCommitted)
	require.Len(t, committed, 1)
	assert.Equal(t, "Mamma Mia!", committed[0].(eventbus.SuggestionCommittedEvent).Value)
}

func TestUpFromNothingWrapsToLastSuggestion(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	showSuggestions(t, m)

	press(m, tea.KeyUp)
	assert.Equal(t, 2, m.dropdown.HighlightIndex())
	press(m, tea.KeyDown)
	assert.Equal(t, 0, m.dropdown.HighlightIndex())
}

func TestEnterWithoutHighlightSubmits(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	showSuggestions(t, m)

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Len(t, m.toasts.Active(), 1)
	assert.Contains(t, ansi.Strip(m.View()), "Opening theaters and release days must be greater than 0")
}

func TestEscapeClosesDropdown(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	showSuggestions(t, m)
	press(m, tea.KeyDown)

	press(m, tea.KeyEsc)
	assert.False(t, m.dropdown.Visible())
	assert.Equal(t, -1, m.dropdown.HighlightIndex())
	assert.Equal(t, "ma", m.title.Value())
}

func TestTabAwayFromTitleClosesDropdown(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	showSuggestions(t, m)

	press(m, tea.KeyTab)
	assert.Equal(t, fieldTheaters, m.focus)
	assert.False(t, m.dropdown.Visible())
}

func TestClickSuggestion(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	showSuggestions(t, m)

	click(m, rowOf(t, m, 1))
	assert.Equal(t, "Madagascar", m.title.Value())
	assert.False(t, m.dropdown.Visible())
	assert.Equal(t, fieldTitle, m.focus)
}

func TestClickFallbackKeepsTypedText(t *testing.T) {
	bus := &recordingBus{}
	m := newTestModel(t, bus, staticFetcher(movieTitles))
	showSuggestions(t, m)

	click(m, rowOf(t, m, len(movieTitles)))
	assert.Equal(t, "ma", m.title.Value())
	assert.False(t, m.dropdown.Visible())

	committed := bus.Of(eventbus.EventSuggestionCommitted)
	require.Len(t, committed, 1)
	assert.True(t, committed[0].(eventbus.SuggestionCommittedEvent).FreeText)
}

func TestClickPlaceholderIsInert(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(nil))
	showSuggestions(t, m)
	assert.Contains(t, ansi.Strip(m.View()), "No suggestions found")

	click(m, rowOf(t, m, 0))
	assert.True(t, m.dropdown.Visible())
}

func TestClickOutsideClosesDropdown(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	showSuggestions(t, m)

	click(m, 0)
	assert.False(t, m.dropdown.Visible())
	assert.Equal(t, fieldTitle, m.focus)
}

func TestClickGenreTogglesIt(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))

	row := -1
	for i, l := range m.lines() {
		if l.hit.kind == hitField && l.hit.index == fieldFirstGenre+1 {
			row = i + topPadding
		}
	}
	require.NotEqual(t, -1, row)

	click(m, row)
	assert.Equal(t, fieldFirstGenre+1, m.focus)
	assert.Equal(t, []string{"animation"}, m.fields().Genres)
}

func TestNumberFieldsGroupDigitsWhenBlurred(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))

	press(m, tea.KeyTab)
	typeText(m, "3500")
	assert.Contains(t, ansi.Strip(m.View()), "3,500 theaters")

	press(m, tea.KeyTab)
	assert.Equal(t, "3,500", m.theaters.Value())

	press(m, tea.KeyShiftTab)
	assert.Equal(t, "3500", m.theaters.Value())
	assert.Contains(t, ansi.Strip(m.View()), "Enter number of days")
}

func TestGenreToggleWithSpace(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	m.moveFocus(fieldFirstGenre + 2)

	press(m, tea.KeySpace)
	assert.Equal(t, []string{"comedy"}, m.fields().Genres)
	assert.Contains(t, ansi.Strip(m.View()), "1 genre selected")

	press(m, tea.KeySpace)
	assert.Contains(t, ansi.Strip(m.View()), "No genres selected")
}

func TestSubmitInvalidRaisesToast(t *testing.T) {
	bus := &recordingBus{}
	m := newTestModel(t, bus, staticFetcher(movieTitles))
	m.title.SetValue("Up")
	m.days.SetValue("90")
	m.moveFocus(fieldSubmit)

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	_, submitted := m.Submission()
	assert.False(t, submitted)
	require.Len(t, bus.Of(eventbus.EventValidationFailed), 1)

	toasts := m.toasts.Active()
	require.Len(t, toasts, 1)
	m.Update(toastExpiredMsg{id: toasts[0].ID})
	assert.Empty(t, m.toasts.Active())
}

func TestSubmitValidQuits(t *testing.T) {
	bus := &recordingBus{}
	m := newTestModel(t, bus, staticFetcher(movieTitles))
	m.title.SetValue("Up")
	m.theaters.SetValue("3,500")
	m.days.SetValue("90")
	m.genres[1] = true
	m.moveFocus(fieldSubmit)

	cmd := press(m, tea.KeySpace)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	sub, ok := m.Submission()
	require.True(t, ok)
	assert.Equal(t, domain.Submission{
		Title:           "Up",
		OpeningTheaters: 3500,
		ReleaseDays:     90,
		Genres:          []string{"animation"},
	}, sub)
	assert.Len(t, bus.Of(eventbus.EventFormSubmitted), 1)
}

func TestQuitWithoutSubmitting(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	_, ok := m.Submission()
	assert.False(t, ok)
}

func TestHelpFallsBackToInlineWithoutPager(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))

	cmd := press(m, tea.KeyF1)
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.True(t, m.showHelp)
	assert.Contains(t, ansi.Strip(m.View()), "Title suggestions")

	press(m, tea.KeyEsc)
	assert.False(t, m.showHelp)
}

func TestPagerModeBlanksView(t *testing.T) {
	m := newTestModel(t, nil, staticFetcher(movieTitles))
	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())
	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}
