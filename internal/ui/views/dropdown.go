package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"movieform/internal/autocomplete"
)

// Dropdown holds the on-screen state of the suggestion list: the entries, the
// highlighted row and the scroll window.
type Dropdown struct {
	list      autocomplete.ListModel
	visible   bool
	highlight int
	offset    int
	height    int
}

// DropdownLine is one rendered line of the dropdown. Entry is -1 for the frame.
type DropdownLine struct {
	Text  string
	Entry int
}

// NewDropdown creates a dropdown that shows at most height entries at once
func NewDropdown(height int) *Dropdown {
	if height < 1 {
		height = 1
	}
	return &Dropdown{highlight: -1, height: height}
}

// SetList replaces the entries and scrolls back to the top
func (d *Dropdown) SetList(list autocomplete.ListModel) {
	d.list = list
	d.offset = 0
	d.highlight = -1
}

// SetVisible shows or hides the dropdown
func (d *Dropdown) SetVisible(visible bool) {
	d.visible = visible
}

// Highlight marks entry index; -1 clears it
func (d *Dropdown) Highlight(index int) {
	d.highlight = index
}

// ScrollIntoView moves the window so entry index is shown
func (d *Dropdown) ScrollIntoView(index int) {
	if index < 0 || index >= len(d.list.Entries) {
		return
	}
	if index < d.offset {
		d.offset = index
	}
	if index >= d.offset+d.height {
		d.offset = index - d.height + 1
	}
	d.clamp()
}

// Scroll moves the window by delta rows
func (d *Dropdown) Scroll(delta int) {
	d.offset += delta
	d.clamp()
}

func (d *Dropdown) clamp() {
	maxOffset := len(d.list.Entries) - d.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if d.offset > maxOffset {
		d.offset = maxOffset
	}
	if d.offset < 0 {
		d.offset = 0
	}
}

// Visible reports whether the dropdown takes up screen space
func (d *Dropdown) Visible() bool {
	return d.visible && len(d.list.Entries) > 0
}

// HighlightIndex returns the highlighted entry or -1
func (d *Dropdown) HighlightIndex() int {
	return d.highlight
}

// Offset returns the first entry in the window
func (d *Dropdown) Offset() int {
	return d.offset
}

// List returns the entries being shown
func (d *Dropdown) List() autocomplete.ListModel {
	return d.list
}

// Lines renders the frame and the entries in the window, width columns wide
func (d *Dropdown) Lines(styles *Styles, width int) []DropdownLine {
	if !d.Visible() {
		return nil
	}
	if width < 10 {
		width = 10
	}

	end := d.offset + d.height
	if end > len(d.list.Entries) {
		end = len(d.list.Entries)
	}

	truncate := lipgloss.NewStyle().MaxWidth(width)
	rows := make([]string, 0, end-d.offset)
	for i := d.offset; i < end; i++ {
		row := truncate.Render(d.renderEntry(styles, d.list.Entries[i], i == d.highlight))
		if i == d.highlight {
			row = styles.HighlightBg.Width(width).Render(row)
		}
		rows = append(rows, row)
	}

	box := styles.Dropdown.Width(width).Render(strings.Join(rows, "\n"))
	boxLines := strings.Split(box, "\n")

	lines := make([]DropdownLine, len(boxLines))
	for i, text := range boxLines {
		entry := -1
		if i > 0 && i < len(boxLines)-1 {
			entry = d.offset + i - 1
		}
		lines[i] = DropdownLine{Text: text, Entry: entry}
	}
	return lines
}

func (d *Dropdown) renderEntry(styles *Styles, entry autocomplete.Entry, highlighted bool) string {
	cursor := "  "
	if highlighted {
		cursor = "› "
	}

	switch entry.Kind {
	case autocomplete.EntryPlaceholder:
		return cursor + styles.Placeholder.Render(entry.Text()) + styles.Dim.Render(" · "+entry.Hint)
	case autocomplete.EntryFallback:
		return cursor + "✏ " + styles.Fallback.Render(entry.Text())
	}

	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString("🎬 ")
	for _, seg := range entry.Label {
		if seg.Emphasis {
			b.WriteString(styles.Emphasis.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
