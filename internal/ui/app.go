package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/apod98/internal/apod"
	"github.com/five82/apod98/internal/prefs"
	"github.com/five82/apod98/internal/state"
)

// Querier starts date queries. Outcomes arrive through the store, never as
// return values. *query.Controller satisfies it.
type Querier interface {
	Submit(raw string)
	Reset()
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Querier   Querier
	Store     *state.Store
	ThemeName string
	PrefsPath string
	LogFile   string
	Language  string
	Version   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	querier     Querier
	updates     <-chan state.Snapshot
	unsubscribe func()
	prefsPath   string
	logFile     string
	version     string
	labels      labels

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot

	// Widgets
	input   textinput.Model
	content viewport.Model
	spinner spinner.Model

	// Failure dialog. alertGen is the generation it was opened for, so a
	// republished snapshot does not reopen a dismissed alert.
	alert    *alertDialog
	alertGen uint64

	shake shakeState

	// Help or activity overlay
	overlay Modal
}

// New creates a new Bubble Tea model. When a store is given the model
// subscribes to it; call Close once the program has exited.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}

	lbl := labelsFor(opts.Language)

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = lbl.Placeholder
	input.CharLimit = 10
	input.Width = 11
	input.Focus()

	m := Model{
		ctx:       ctx,
		querier:   opts.Querier,
		prefsPath: opts.PrefsPath,
		logFile:   opts.LogFile,
		version:   version,
		labels:    lbl,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		input:     input,
		content:   viewport.New(0, 0),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Line)),
	}
	if opts.Store != nil {
		m.updates, m.unsubscribe = opts.Store.Subscribe()
	}
	m.applyTheme()
	return m
}

// Close releases the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model. It asks for today's record once.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.updates != nil {
		cmds = append(cmds, waitForState(m.updates))
	}
	if m.querier != nil {
		cmds = append(cmds, resetCmd(m.querier))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.refreshContent()
		return m, nil

	case stateMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, waitForState(m.updates)

	case shakeMsg:
		return m, m.shake.advance(msg)

	case activityMsg:
		if ov, ok := m.overlay.(*activityOverlay); ok {
			ov.load(msg)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.overlay != nil {
		return m.overlay.View(m.theme, m.width, m.height)
	}

	return m.renderDesktop()
}

// handleKey processes keyboard input. An open alert swallows everything but
// its dismiss keys; overlays get keys before the window does.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.alert != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.alert = nil
			m.layout()
		}
		return m, nil
	}

	if m.overlay != nil {
		next, cmd, closed := m.overlay.Update(msg, m.keys)
		if closed {
			m.overlay = nil
		} else {
			m.overlay = next
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.overlay = newHelpOverlay(m.keys)
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.overlay = newActivityOverlay(m.logFile)
		return m, loadActivityCmd(m.logFile)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.refreshContent()
		// An empty path saves to the default prefs location.
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m.trigger(func(q Querier) { q.Submit(m.input.Value()) })

	case key.Matches(msg, m.keys.Today):
		if m.busy() {
			return m, nil
		}
		m.input.SetValue("")
		return m.trigger(func(q Querier) { q.Reset() })

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// trigger runs a query action unless one is already loading. Every accepted
// trigger shakes the window, whatever the outcome.
func (m Model) trigger(submit func(Querier)) (tea.Model, tea.Cmd) {
	if m.busy() || m.querier == nil {
		return m, nil
	}
	submit(m.querier)
	return m, m.shake.start()
}

func (m Model) busy() bool {
	return m.snapshot.Phase == state.PhaseLoading
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	recordChanged := !sameRecord(snap.Displayed(), m.snapshot.Displayed())
	m.snapshot = snap

	if snap.Phase == state.PhaseFailure && snap.Generation != m.alertGen {
		m.alert = &alertDialog{title: snap.ErrorTitle, message: snap.ErrorMessage}
		m.alertGen = snap.Generation
		m.layout()
	}

	m.refreshContent()
	if recordChanged {
		m.content.GotoTop()
	}
}

// sameRecord compares by identity on the provider side; snapshots carry
// fresh copies on every publish.
func sameRecord(a, b *apod.Record) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Date == b.Date && a.Title == b.Title
}

func (m *Model) applyTheme() {
	t := m.theme
	panel := lipgloss.Color(t.Panel)
	m.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.PanelText)).Background(panel)
	m.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Background(panel)
	m.input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.PanelText))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Background(panel)
}

// Messages

type stateMsg state.Snapshot

// Commands

// waitForState blocks on the subscription and delivers the newest snapshot.
// A closed channel ends the loop.
func waitForState(updates <-chan state.Snapshot) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return stateMsg(snap)
	}
}

func resetCmd(q Querier) tea.Cmd {
	return func() tea.Msg {
		q.Reset()
		return nil
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}

// Interference effect

// shakeOffsets are the horizontal window offsets, in cells, one per frame.
var shakeOffsets = [...]int{5, -5, 3, -3, 0}

const (
	shakeFrame  = 40 * time.Millisecond
	shakeMargin = 5
)

type shakeState struct {
	seq    int
	step   int
	active bool
}

type shakeMsg struct {
	seq  int
	step int
}

// start restarts the sequence. Frames from an earlier sequence are ignored.
func (s *shakeState) start() tea.Cmd {
	s.seq++
	s.step = 0
	s.active = true
	return shakeTick(s.seq, 1)
}

func (s *shakeState) advance(msg shakeMsg) tea.Cmd {
	if !s.active || msg.seq != s.seq {
		return nil
	}
	s.step = msg.step
	if s.step >= len(shakeOffsets)-1 {
		s.active = false
		return nil
	}
	return shakeTick(s.seq, s.step+1)
}

func (s shakeState) offset() int {
	if !s.active {
		return 0
	}
	return shakeOffsets[s.step]
}

func shakeTick(seq, step int) tea.Cmd {
	return tea.Tick(shakeFrame, func(time.Time) tea.Msg {
		return shakeMsg{seq: seq, step: step}
	})
}
