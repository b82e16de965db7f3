package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpOverlay struct {
	sections []helpSection
}

type helpSection struct {
	title string
	items []key.Binding
}

func newHelpOverlay(keys keyMap) *helpOverlay {
	groups := keys.FullHelp()
	titles := []string{"Search", "Content", "General"}
	sections := make([]helpSection, 0, len(groups))
	for i, g := range groups {
		sections = append(sections, helpSection{title: titles[i], items: g})
	}
	return &helpOverlay{sections: sections}
}

// Update closes the overlay on any key.
func (h *helpOverlay) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return h, nil, true
	}
	return h, nil, false
}

// View renders the help overlay.
func (h *helpOverlay) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Width(12)

	for i, section := range h.sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")

		for _, binding := range section.items {
			help := binding.Help()
			b.WriteString(keyStyle.Render(help.Key))
			b.WriteString(styles.Text.Render(help.Desc))
			b.WriteString("\n")
		}

		if i < len(h.sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.TitleBg)).
		Background(lipgloss.Color(theme.Window)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Desktop)),
	)
}
