package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/apod98/internal/apod"
	"github.com/five82/apod98/internal/state"
)

const (
	windowTitle    = "NASA APOD Explorer 98"
	minWindowWidth = 40
	minPanelHeight = 3

	// Rows outside the content panel: desktop top margin, window border (2),
	// title, menu, two spacers, search row, panel border (2), today row,
	// status bar.
	chromeHeight = 12
)

type alertDialog struct {
	title   string
	message string
}

func (m Model) windowWidth() int {
	return max(m.width-2*shakeMargin, minWindowWidth)
}

// innerWidth is the usable width inside the window border.
func (m Model) innerWidth() int {
	return m.windowWidth() - 2
}

// layout sizes the content viewport to whatever the chrome leaves over.
func (m *Model) layout() {
	w := m.innerWidth()
	m.content.Width = max(w-4, 10)

	h := m.height - chromeHeight
	if m.alert != nil {
		h -= lipgloss.Height(m.renderAlert(w))
	}
	m.content.Height = max(h, minPanelHeight)
}

// refreshContent re-renders the displayed record into the viewport.
func (m *Model) refreshContent() {
	rec := m.snapshot.Displayed()
	if rec == nil || m.content.Width <= 0 {
		m.content.SetContent("")
		return
	}
	m.content.SetContent(m.renderRecord(*rec, m.content.Width))
}

// renderDesktop places the window on the desktop, offset by the shake.
func (m Model) renderDesktop() string {
	styles := m.theme.Styles()
	pad := max(shakeMargin+m.shake.offset(), 0)
	return styles.Desktop.
		Width(m.width).
		Height(m.height).
		PaddingTop(1).
		PaddingLeft(pad).
		Render(m.renderWindow())
}

func (m Model) renderWindow() string {
	styles := m.theme.Styles()
	w := m.innerWidth()
	bg := NewBgStyle(m.theme.Window)

	rows := []string{
		m.renderTitleBar(w),
		m.renderMenuBar(w),
		bg.Spaces(w),
		m.renderSearchRow(w),
		bg.Spaces(w),
	}
	if m.alert != nil {
		rows = append(rows, m.renderAlert(w))
	}
	rows = append(rows,
		m.renderPanel(w),
		m.renderTodayRow(w),
		m.renderStatusBar(w),
	)

	return styles.Raised.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderTitleBar(width int) string {
	styles := m.theme.Styles()
	bar := NewBgStyle(m.theme.TitleBg)

	left := bar.Render(" ▣ "+windowTitle, styles.TitleBar)

	controls := make([]string, 0, 3)
	for _, c := range []string{"_", "□", "×"} {
		controls = append(controls, styles.Button.Render(c))
	}
	right := bar.Join(controls, " ") + bar.Space()

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + bar.Spaces(gap) + right
}

func (m Model) renderMenuBar(width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Window)

	items := make([]string, 0, len(m.labels.Menu))
	for _, item := range m.labels.Menu {
		items = append(items, bg.Render(item, styles.Text))
	}
	return bg.FillLine(bg.Space()+bg.Join(items, "   "), width)
}

func (m Model) renderSearchRow(width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Window)

	label := bg.Render(" "+m.labels.SearchLabel, styles.Text)
	field := styles.Panel.Padding(0, 1).Render(m.input.View())
	button := m.renderButton(m.labels.SearchButton, !m.busy())

	return bg.FillLine(label+bg.Space()+field+bg.Space()+button, width)
}

func (m Model) renderTodayRow(width int) string {
	bg := NewBgStyle(m.theme.Window)
	button := m.renderButton("☼ "+m.labels.TodayButton, !m.busy())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, button,
		lipgloss.WithWhitespaceBackground(bg.Color()))
}

func (m Model) renderButton(label string, enabled bool) string {
	styles := m.theme.Styles()
	if !enabled {
		return styles.ButtonDisabled.Render("[" + label + "]")
	}
	return styles.Button.Render("[" + label + "]")
}

// renderAlert renders the failure dialog. It sits above the content panel so
// a record kept from before a validation failure stays visible beneath it.
func (m Model) renderAlert(width int) string {
	if m.alert == nil {
		return ""
	}
	styles := m.theme.Styles()
	boxWidth := max(min(width-4, 56), 20)

	title := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Danger)).
		Foreground(lipgloss.Color(m.theme.TitleText)).
		Bold(true).
		Width(boxWidth).
		Render(" ⚠ " + m.alert.title)

	body := styles.Window.
		Width(boxWidth).
		Padding(1, 2).
		Render(m.alert.message)

	ok := styles.Window.
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(m.renderButton(m.labels.OK, true))

	box := styles.Raised.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, ok))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Window)))
}

// renderPanel renders the sunken content panel for the current phase.
func (m Model) renderPanel(width int) string {
	styles := m.theme.Styles()
	inner := width - 2
	height := m.content.Height
	panelBg := lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Panel))

	var body string
	switch {
	case m.snapshot.Phase == state.PhaseLoading:
		loading := m.spinner.View() +
			lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Panel)).Render(" ") +
			styles.AccentText.Background(lipgloss.Color(m.theme.Panel)).Render(m.labels.Loading)
		body = lipgloss.Place(inner-2, height, lipgloss.Center, lipgloss.Center, loading, panelBg)
	case m.snapshot.Displayed() != nil:
		body = m.content.View()
	default:
		empty := styles.MutedText.Background(lipgloss.Color(m.theme.Panel)).Render(m.labels.Empty)
		body = lipgloss.Place(inner-2, height, lipgloss.Center, lipgloss.Center, empty, panelBg)
	}

	return styles.Sunken.Render(
		styles.Panel.Width(inner).Height(height).Padding(0, 1).Render(body),
	)
}

// renderRecord lays out one record for the viewport.
func (m Model) renderRecord(rec apod.Record, width int) string {
	t := m.theme
	bg := lipgloss.Color(t.Panel)
	panel := NewBgStyle(t.Panel)

	centered := lipgloss.NewStyle().Background(bg).Width(width).Align(lipgloss.Center)
	text := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(t.PanelText))
	muted := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(t.Muted))
	accent := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(t.Accent)).Bold(true)

	lines := []string{
		centered.Foreground(lipgloss.Color(t.Accent)).Bold(true).Render(rec.Title),
		centered.Foreground(lipgloss.Color(t.Muted)).Render(m.labels.Date + ": " + rec.Date),
	}
	if c := collapseSpace(rec.Copyright); c != "" {
		lines = append(lines, centered.Foreground(lipgloss.Color(t.Muted)).Render("© "+c))
	}
	lines = append(lines, muted.Render(strings.Repeat("─", width)), panel.Spaces(width))

	field := func(label, value string) string {
		prefix := label + ": "
		return panel.FillLine(
			muted.Render(prefix)+text.Render(truncateMiddle(value, width-lipgloss.Width(prefix))),
			width,
		)
	}

	if rec.IsImage() {
		lines = append(lines, field(m.labels.Image, rec.MediaURL))
		if rec.HDURL != "" && rec.HDURL != rec.MediaURL {
			lines = append(lines, field(m.labels.HDImage, rec.HDURL))
		}
	} else {
		lines = append(lines, centered.Foreground(lipgloss.Color(t.Muted)).Render("▶ "+m.labels.Video))
		if rec.MediaURL != "" {
			lines = append(lines, field("URL", rec.MediaURL))
		}
		if rec.ThumbnailURL != "" {
			lines = append(lines, field(m.labels.Thumbnail, rec.ThumbnailURL))
		}
	}

	lines = append(lines,
		panel.Spaces(width),
		panel.FillLine(accent.Render(m.labels.Description), width),
		text.Width(width).Render(rec.Explanation),
	)
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar(width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Window)

	left := bg.Space() + bg.Render("["+m.labels.Status+"]", styles.Text)

	var phase string
	switch {
	case m.snapshot.IsOffline():
		phase = bg.Render(m.labels.Offline, styles.DangerText)
	case m.snapshot.Phase == state.PhaseLoading:
		phase = bg.Render(m.snapshot.Phase.String(), styles.WarningText)
	case m.snapshot.Phase == state.PhaseFailure:
		phase = bg.Render(m.snapshot.ErrorKind.String(), styles.DangerText)
	default:
		phase = bg.Render(m.snapshot.Phase.String(), styles.SuccessText)
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.AccentText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}
	right := bg.Join(hints, "  ") + bg.Render("  apod98 "+m.version, styles.MutedText)

	middle := bg.Spaces(2) + phase
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(middle)-lipgloss.Width(right)-1, 1)
	return bg.FillLine(left+middle+bg.Spaces(gap)+right, width)
}

// collapseSpace joins whitespace runs into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
