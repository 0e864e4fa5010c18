package ui

import (
	"strings"

	"movieform/internal/domain"
	"movieform/internal/form"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitField
	hitEntry
	hitDropdown
)

// hit says what a click on a screen line lands on
type hit struct {
	kind  hitKind
	index int
}

type screenLine struct {
	text string
	hit  hit
}

// topPadding matches the vertical padding of the Main style
const topPadding = 1

// View renders the form
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.showHelp {
		return m.styles.Main.Render(renderHelpContent() + "\n" + m.styles.Help.Render("esc to close"))
	}

	lines := m.lines()
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	return m.styles.Main.Render(strings.Join(texts, "\n"))
}

// lineAt maps a terminal row to the line drawn there
func (m *Model) lineAt(y int) (screenLine, bool) {
	lines := m.lines()
	i := y - topPadding
	if i < 0 || i >= len(lines) {
		return screenLine{}, false
	}
	return lines[i], true
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 60
	}
	return min(max(m.width-4, 20), 72)
}

// lines lays out the whole form. Rendering and mouse hit testing both read it.
func (m *Model) lines() []screenLine {
	s := m.styles
	var out []screenLine
	add := func(text string, h hit) {
		out = append(out, screenLine{text: text, hit: h})
	}
	field := func(i int) hit { return hit{kind: hitField, index: i} }

	add(s.Title.Render("🎬 Movie Box Office Predictor"), hit{})
	add("", hit{})

	titleLabel := m.label("Movie title", fieldTitle)
	if m.ctrl.Searching() {
		titleLabel += s.StatusLoading.Render("  searching…")
	}
	add(titleLabel, field(fieldTitle))
	add(m.title.View(), field(fieldTitle))
	for _, l := range m.dropdown.Lines(s, m.contentWidth()-2) {
		if l.Entry < 0 {
			add(l.Text, hit{kind: hitDropdown})
		} else {
			add(l.Text, hit{kind: hitEntry, index: l.Entry})
		}
	}
	add("", hit{})

	add(m.label("Opening theaters", fieldTheaters), field(fieldTheaters))
	add(m.theaters.View(), field(fieldTheaters))
	add(s.Counter.Render(form.CounterText(m.theaters.Value(), "theaters")), field(fieldTheaters))
	add("", hit{})

	add(m.label("Release days", fieldDays), field(fieldDays))
	add(m.days.View(), field(fieldDays))
	add(s.Counter.Render(form.CounterText(m.days.Value(), "days")), field(fieldDays))
	add("", hit{})

	add(s.Label.Render("Genres"), hit{})
	for i, g := range domain.Genres {
		slot := fieldFirstGenre + i
		box := "[ ]"
		if m.genres[i] {
			box = s.Checkbox.Render("[x]")
		}
		cursor := "  "
		if m.focus == slot {
			cursor = "› "
		}
		add(cursor+box+" "+g, field(slot))
	}
	add(s.Counter.Render(form.GenreCounterText(m.selectedGenres())), hit{})
	add("", hit{})

	button := s.Button
	if m.fields().Ready() {
		button = s.ButtonReady
	}
	if m.focus == fieldSubmit {
		button = button.Inherit(s.ButtonFocused)
	}
	add(button.Render("Predict box office"), field(fieldSubmit))

	for _, t := range m.toasts.Active() {
		add(s.Toast.Render("⚠ "+t.Message), hit{})
	}

	add("", hit{})
	add(m.help.View(m.keys), hit{})

	return out
}

func (m *Model) label(text string, slot int) string {
	if m.focus == slot {
		return m.styles.FocusedLabel.Render("› " + text)
	}
	return m.styles.Label.Render("  " + text)
}
