package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/apod98/internal/logtail"
)

// activityLines caps how much of the log file the overlay reads.
const activityLines = 200

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		lines, err := logtail.Read(path, activityLines)
		if err != nil {
			return activityMsg{err: err}
		}
		entries := make([]logtail.Entry, 0, len(lines))
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			entries = append(entries, logtail.Parse(line))
		}
		return activityMsg{entries: entries}
	}
}

// activityOverlay shows the tail of the application log.
type activityOverlay struct {
	path    string
	entries []logtail.Entry
	err     error
	loaded  bool
	scroll  int // entries hidden at the bottom
}

func newActivityOverlay(path string) *activityOverlay {
	return &activityOverlay{path: path}
}

func (a *activityOverlay) load(msg activityMsg) {
	a.entries = msg.entries
	a.err = msg.err
	a.loaded = true
	a.scroll = 0
}

func (a *activityOverlay) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil, false
	}
	if key.Matches(km, keys.Activity) {
		return a, nil, true
	}
	switch km.String() {
	case "esc", "enter":
		return a, nil, true
	case "up", "k":
		if a.scroll < len(a.entries)-1 {
			a.scroll++
		}
	case "down", "j":
		if a.scroll > 0 {
			a.scroll--
		}
	case "r":
		return a, loadActivityCmd(a.path), false
	}
	return a, nil, false
}

func (a *activityOverlay) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	boxWidth := max(min(width-4, 110), 30)
	textWidth := boxWidth - 4
	rows := max(height-8, 3)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Activity"))
	b.WriteString(styles.MutedText.Render("  " + truncateMiddle(a.path, textWidth-10)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(strings.Repeat("─", textWidth)))
	b.WriteString("\n")

	switch {
	case a.path == "":
		b.WriteString(styles.MutedText.Render("Logging is disabled."))
	case a.err != nil:
		b.WriteString(styles.DangerText.Render(a.err.Error()))
	case !a.loaded:
		b.WriteString(styles.MutedText.Render("Reading log..."))
	case len(a.entries) == 0:
		b.WriteString(styles.MutedText.Render("No activity yet."))
	default:
		end := len(a.entries) - a.scroll
		start := max(end-rows, 0)
		lines := make([]string, 0, end-start)
		for _, e := range a.entries[start:end] {
			lines = append(lines, formatEntry(theme, e, textWidth))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("up/down scroll · r reload · esc close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.TitleBg)).
		Background(lipgloss.Color(theme.Window)).
		Padding(0, 2).
		Width(boxWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Desktop)),
	)
}

// formatEntry renders one log record on a single line: clock, level, message
// and attributes.
func formatEntry(theme Theme, e logtail.Entry, width int) string {
	styles := theme.Styles()
	if e.Level == "" {
		return styles.Text.Render(truncateMiddle(e.Msg, width))
	}

	clock := e.Time
	if i := strings.IndexByte(clock, 'T'); i >= 0 && len(clock) >= i+9 {
		clock = clock[i+1 : i+9]
	}

	level := styles.MutedText
	switch e.Level {
	case "WARN":
		level = styles.WarningText
	case "ERROR":
		level = styles.DangerText
	case "INFO":
		level = styles.SuccessText
	}

	attrs := make([]string, 0, len(e.Attrs))
	for _, attr := range e.Attrs {
		attrs = append(attrs, attr.Key+"="+attr.Value)
	}
	rest := e.Msg
	if len(attrs) > 0 {
		rest += "  " + strings.Join(attrs, " ")
	}

	prefix := clock + " " + padRight(e.Level, 5) + " "
	return styles.MutedText.Render(clock+" ") +
		level.Render(padRight(e.Level, 5)) +
		styles.Text.Render(" "+truncateMiddle(rest, width-lipgloss.Width(prefix)))
}
