package autocomplete

import (
	"html"
	"regexp"
	"strings"
)

// EntryKind distinguishes the rows of a rendered dropdown
type EntryKind int

const (
	// EntrySuggestion commits its Value into the input
	EntrySuggestion EntryKind = iota
	// EntryFallback keeps the free text already in the input
	EntryFallback
	// EntryPlaceholder is the inert "no results" row
	EntryPlaceholder
)

const (
	noResultsText = "No suggestions found"
	noResultsHint = "You can enter any movie title"
)

// Segment is a run of display text, emphasized where it matched the query
type Segment struct {
	Text     string
	Emphasis bool
}

// Entry is one row of the dropdown
type Entry struct {
	Kind   EntryKind
	Value  string
	Label  []Segment
	Hint   string
	Markup string
}

// Text returns the entry's label without emphasis
func (e Entry) Text() string {
	var b strings.Builder
	for _, s := range e.Label {
		b.WriteString(s.Text)
	}
	return b.String()
}

// ListModel is the dropdown produced for one query. The first Navigable
// entries are the suggestions; keyboard selection never leaves them.
type ListModel struct {
	Query     string
	Entries   []Entry
	Navigable int
}

// Empty reports whether the list holds no suggestions
func (l ListModel) Empty() bool {
	return l.Navigable == 0
}

// HTML returns the dropdown markup
func (l ListModel) HTML() string {
	var b strings.Builder
	for _, e := range l.Entries {
		b.WriteString(e.Markup)
		b.WriteByte('\n')
	}
	return b.String()
}

// Render builds the dropdown for suggestions returned for query. rawInput is
// the untrimmed text of the field, offered back as the fallback entry.
func Render(query string, suggestions []string, rawInput string) ListModel {
	if len(suggestions) == 0 {
		return ListModel{
			Query: query,
			Entries: []Entry{{
				Kind:  EntryPlaceholder,
				Label: []Segment{{Text: noResultsText}},
				Hint:  noResultsHint,
				Markup: `<div class="autocomplete-item autocomplete-no-results">` +
					`<span>` + noResultsText + `</span><br><small>` + noResultsHint + `</small></div>`,
			}},
		}
	}

	pattern := emphasisPattern(query)
	entries := make([]Entry, 0, len(suggestions)+1)
	for _, s := range suggestions {
		label := emphasize(s, pattern)
		entries = append(entries, Entry{
			Kind:   EntrySuggestion,
			Value:  s,
			Label:  label,
			Markup: `<div class="autocomplete-item" data-value="` + html.EscapeString(s) + `"><span>🎬</span> ` + segmentsHTML(label) + `</div>`,
		})
	}

	fallback := `Enter "` + rawInput + `" manually`
	entries = append(entries, Entry{
		Kind:   EntryFallback,
		Label:  []Segment{{Text: fallback}},
		Markup: `<div class="autocomplete-item autocomplete-custom"><span>✏️</span> Enter "` + html.EscapeString(rawInput) + `" manually</div>`,
	})

	return ListModel{
		Query:     query,
		Entries:   entries,
		Navigable: len(suggestions),
	}
}

// Emphasize splits text into segments, marking every case-insensitive literal
// occurrence of query.
func Emphasize(text, query string) []Segment {
	return emphasize(text, emphasisPattern(query))
}

// emphasisPattern quotes the query so metacharacters match literally
func emphasisPattern(query string) *regexp.Regexp {
	if query == "" {
		return nil
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}

func emphasize(text string, pattern *regexp.Regexp) []Segment {
	if pattern == nil {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Text: text[last:loc[0]]})
		}
		segs = append(segs, Segment{Text: text[loc[0]:loc[1]], Emphasis: true})
		last = loc[1]
	}
	if last < len(text) || len(segs) == 0 {
		segs = append(segs, Segment{Text: text[last:]})
	}
	return segs
}

func segmentsHTML(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Emphasis {
			b.WriteString("<strong>")
			b.WriteString(html.EscapeString(s.Text))
			b.WriteString("</strong>")
			continue
		}
		b.WriteString(html.EscapeString(s.Text))
	}
	return b.String()
}
