package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// renderHelpContent renders the help information
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(k, desc string) string {
		return fmt.Sprintf("  %s %s\n", keyStyle.Width(12).Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Movie Box Office Predictor Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Title suggestions"))
	help.WriteString("\n")
	help.WriteString(row("type", "Search titles once two characters are entered"))
	help.WriteString(row("↑/↓", "Move through suggestions (wraps around)"))
	help.WriteString(row("Enter", "Use the highlighted suggestion"))
	help.WriteString(row("Esc", "Close the suggestions"))
	help.WriteString(row("click", "Pick a suggestion or keep your own text"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Form"))
	help.WriteString("\n")
	help.WriteString(row("Tab", "Next field"))
	help.WriteString(row("Shift+Tab", "Previous field"))
	help.WriteString(row("Space", "Toggle the focused genre"))
	help.WriteString(row("Enter", "Submit the prediction"))
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Opening theaters and release days must be greater than 0"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(row("F1", "Show this help"))
	help.WriteString(row("Ctrl+C", "Quit without submitting"))

	return help.String()
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return helpPagerMsg{err: errNoProgram}
		}

		program.Send(pauseRenderingMsg{})
		err := showHelpInPager(program, helpContent)
		program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// showHelpInPager hands the terminal to ov until the pager exits
func showHelpInPager(program *tea.Program, helpContent string) error {
	if err := program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
