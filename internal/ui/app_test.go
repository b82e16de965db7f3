package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/apod98/internal/apod"
	"github.com/five82/apod98/internal/prefs"
	"github.com/five82/apod98/internal/state"
)

type fakeQuerier struct {
	submitted []string
	resets    int
}

func (f *fakeQuerier) Submit(raw string) { f.submitted = append(f.submitted, raw) }
func (f *fakeQuerier) Reset()            { f.resets++ }

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	t.Cleanup(m.Close)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	todayKey = tea.KeyMsg{Type: tea.KeyCtrlT}
)

func sampleRecord() *apod.Record {
	return &apod.Record{
		Title:       "Comet Over Dunes",
		Date:        "2024-05-01",
		MediaType:   apod.MediaImage,
		MediaURL:    "https://apod.nasa.gov/apod/image/2405/dunes.jpg",
		Explanation: "A comet hangs above desert dunes.",
	}
}

func TestInit_RequestsTodayOnce(t *testing.T) {
	q := &fakeQuerier{}
	m := New(Options{Querier: q})

	msg := m.Init()()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("Init() produced %T, want tea.BatchMsg", msg)
	}
	for _, cmd := range batch {
		if cmd != nil {
			cmd()
		}
	}

	if q.resets != 1 || len(q.submitted) != 0 {
		t.Fatalf("resets=%d submitted=%v, want one reset", q.resets, q.submitted)
	}
}

func TestEnterSubmitsTypedText(t *testing.T) {
	q := &fakeQuerier{}
	m := newTestModel(t, Options{Querier: q})

	m = typeText(t, m, "2024-05-01")
	m, cmd := updateCmd(t, m, enterKey)

	if len(q.submitted) != 1 || q.submitted[0] != "2024-05-01" {
		t.Fatalf("submitted = %v, want [2024-05-01]", q.submitted)
	}
	if cmd == nil {
		t.Fatalf("expected shake command")
	}
	if got := m.shake.offset(); got != 5 {
		t.Fatalf("shake offset = %d, want 5", got)
	}
}

func TestEnterSubmitsInvalidTextUnchanged(t *testing.T) {
	q := &fakeQuerier{}
	m := newTestModel(t, Options{Querier: q})

	m = typeText(t, m, "05/01/24")
	update(t, m, enterKey)

	if len(q.submitted) != 1 || q.submitted[0] != "05/01/24" {
		t.Fatalf("submitted = %v, want raw text passed through", q.submitted)
	}
}

func TestTodayClearsFieldAndResets(t *testing.T) {
	q := &fakeQuerier{}
	m := newTestModel(t, Options{Querier: q})

	m = typeText(t, m, "2024-05-01")
	m = update(t, m, todayKey)

	if got := m.input.Value(); got != "" {
		t.Fatalf("input = %q, want cleared", got)
	}
	if q.resets != 1 || len(q.submitted) != 0 {
		t.Fatalf("resets=%d submitted=%v, want one reset", q.resets, q.submitted)
	}
}

func TestTriggersDisabledWhileLoading(t *testing.T) {
	q := &fakeQuerier{}
	m := newTestModel(t, Options{Querier: q})
	m = update(t, m, stateMsg(state.Snapshot{Phase: state.PhaseLoading, Generation: 1}))

	m = typeText(t, m, "2024-05-01")
	m = update(t, m, enterKey)
	m = update(t, m, todayKey)

	if len(q.submitted) != 0 || q.resets != 0 {
		t.Fatalf("resets=%d submitted=%v, want no triggers while loading", q.resets, q.submitted)
	}
	if got := m.input.Value(); got != "2024-05-01" {
		t.Fatalf("input = %q, want untouched while loading", got)
	}
	if m.shake.active {
		t.Fatalf("shake started for a disabled trigger")
	}
}

func TestFailureOpensAlertOnce(t *testing.T) {
	q := &fakeQuerier{}
	m := newTestModel(t, Options{Querier: q})

	failure := state.Snapshot{
		Phase:        state.PhaseFailure,
		ErrorTitle:   "Network Error",
		ErrorMessage: "Network error: could not connect to the NASA API.",
		ErrorKind:    state.ErrorNetwork,
		Generation:   2,
	}
	m = update(t, m, stateMsg(failure))
	if m.alert == nil || m.alert.title != "Network Error" {
		t.Fatalf("alert = %+v, want network alert", m.alert)
	}
	if !strings.Contains(m.View(), "could not connect") {
		t.Fatalf("alert message not rendered")
	}

	// Enter dismisses the alert without submitting.
	m = update(t, m, enterKey)
	if m.alert != nil {
		t.Fatalf("alert still open after enter")
	}
	if len(q.submitted) != 0 {
		t.Fatalf("dismissing the alert submitted %v", q.submitted)
	}

	// The same snapshot delivered again does not reopen it.
	m = update(t, m, stateMsg(failure))
	if m.alert != nil {
		t.Fatalf("alert reopened for an already dismissed failure")
	}

	failure.Generation = 3
	m = update(t, m, stateMsg(failure))
	if m.alert == nil {
		t.Fatalf("new failure did not open an alert")
	}
}

func TestAlertSwallowsKeys(t *testing.T) {
	m := newTestModel(t, Options{Querier: &fakeQuerier{}})
	m = update(t, m, stateMsg(state.Snapshot{Phase: state.PhaseFailure, ErrorTitle: "x", ErrorMessage: "y", Generation: 1}))

	m = typeText(t, m, "2024")
	if got := m.input.Value(); got != "" {
		t.Fatalf("typing reached the field under an alert: %q", got)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.alert != nil {
		t.Fatalf("esc did not dismiss the alert")
	}
}

func TestValidationFailureKeepsPreviousRecordVisible(t *testing.T) {
	m := newTestModel(t, Options{Querier: &fakeQuerier{}})
	rec := sampleRecord()

	m = update(t, m, stateMsg(state.Snapshot{Phase: state.PhaseSuccess, Record: rec, Generation: 1}))
	m = update(t, m, stateMsg(state.Snapshot{
		Phase:        state.PhaseFailure,
		Previous:     rec,
		ErrorTitle:   "Invalid Format",
		ErrorMessage: "Invalid date format.",
		ErrorKind:    state.ErrorValidation,
		Generation:   2,
	}))

	view := m.View()
	if !strings.Contains(view, "Invalid Format") {
		t.Fatalf("alert title missing from view")
	}
	if !strings.Contains(view, rec.Title) {
		t.Fatalf("previous record %q not rendered beneath the alert", rec.Title)
	}
}

func TestRendersVideoPlaceholder(t *testing.T) {
	m := newTestModel(t, Options{Querier: &fakeQuerier{}})
	rec := &apod.Record{
		Title:        "Solar Eclipse",
		Date:         "2024-04-08",
		MediaType:    apod.MediaOther,
		MediaURL:     "https://www.youtube.com/embed/abc",
		ThumbnailURL: "https://img.youtube.com/vi/abc/0.jpg",
		Explanation:  "Totality.",
	}
	m = update(t, m, stateMsg(state.Snapshot{Phase: state.PhaseSuccess, Record: rec, Generation: 1}))

	view := m.View()
	for _, want := range []string{"Solar Eclipse", "video", "youtube.com/embed/abc", "Totality."} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestLoadingShowsIndicator(t *testing.T) {
	m := newTestModel(t, Options{Querier: &fakeQuerier{}, Language: "pt"})
	m = update(t, m, stateMsg(state.Snapshot{Phase: state.PhaseLoading, Generation: 1}))

	if !strings.Contains(m.View(), "Carregando dados da NASA...") {
		t.Fatalf("loading text missing")
	}
}

func TestShakeSequence(t *testing.T) {
	var s shakeState
	if s.offset() != 0 {
		t.Fatalf("idle offset = %d", s.offset())
	}

	s.start()
	got := []int{s.offset()}
	for step := 1; step < len(shakeOffsets); step++ {
		s.advance(shakeMsg{seq: 1, step: step})
		got = append(got, s.offset())
	}
	for i, want := range shakeOffsets {
		if got[i] != want {
			t.Fatalf("offsets = %v, want %v", got, shakeOffsets)
		}
	}
	if s.active {
		t.Fatalf("shake still active after last frame")
	}
}

func TestShakeRestartIgnoresOldFrames(t *testing.T) {
	var s shakeState
	s.start()
	s.start()

	if cmd := s.advance(shakeMsg{seq: 1, step: 1}); cmd != nil {
		t.Fatalf("stale frame scheduled another")
	}
	if got := s.offset(); got != 5 {
		t.Fatalf("offset = %d, want restart at 5", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c did not quit")
	}
}

func TestStoreSubscription(t *testing.T) {
	var st state.Store
	m := New(Options{Store: &st})
	defer m.Close()

	msg := waitForState(m.updates)()
	if snap, ok := msg.(stateMsg); !ok || snap.Phase != state.PhaseIdle {
		t.Fatalf("first message = %#v, want idle snapshot", msg)
	}

	st.Begin("")
	msg = waitForState(m.updates)()
	if snap, ok := msg.(stateMsg); !ok || snap.Phase != state.PhaseLoading {
		t.Fatalf("second message = %#v, want loading snapshot", msg)
	}

	m.Close()
	if msg := waitForState(m.updates)(); msg != nil {
		t.Fatalf("closed subscription delivered %#v", msg)
	}
}

func TestCycleThemePersists(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, Options{PrefsPath: prefsPath})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF3})
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}
	if got := prefs.Load(prefsPath).Theme; got != "Slate" {
		t.Fatalf("saved theme = %q, want Slate", got)
	}
}

func TestCycleThemePersistsWithDefaultPrefsPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := newTestModel(t, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF3})
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}
	if got := prefs.Load("").Theme; got != "Slate" {
		t.Fatalf("theme after restart with default prefs path = %q, want Slate", got)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if _, ok := m.overlay.(*helpOverlay); !ok {
		t.Fatalf("overlay = %T, want help", m.overlay)
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help not rendered")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.overlay != nil {
		t.Fatalf("help did not close on key")
	}
	if got := m.input.Value(); got != "" {
		t.Fatalf("closing key reached the field: %q", got)
	}
}

func TestActivityOverlayShowsLogTail(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "apod98.log")
	lines := `time=2024-05-01T10:00:00.000Z level=INFO msg="query submitted" date=today generation=1
time=2024-05-01T10:00:01.000Z level=WARN msg="query failed" kind=network
`
	if err := os.WriteFile(logFile, []byte(lines), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := newTestModel(t, Options{LogFile: logFile})
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if cmd == nil {
		t.Fatalf("expected log load command")
	}
	m = update(t, m, cmd())

	ov, ok := m.overlay.(*activityOverlay)
	if !ok {
		t.Fatalf("overlay = %T, want activity", m.overlay)
	}
	if len(ov.entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(ov.entries))
	}
	view := m.View()
	for _, want := range []string{"query submitted", "10:00:01", "kind=network"} {
		if !strings.Contains(view, want) {
			t.Fatalf("activity view missing %q", want)
		}
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay != nil {
		t.Fatalf("esc did not close activity overlay")
	}
}
