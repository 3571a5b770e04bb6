package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/clockpanel/internal/config"
	"github.com/jask/clockpanel/internal/timefeed"
	"github.com/jask/clockpanel/widgets"
	"github.com/jask/clockpanel/worldclock"
)

func testConfig() config.Config {
	return config.Config{
		UI:  config.UIConfig{Corner: "top-right", ShowOnStart: true, Timezone: "Local"},
		Log: config.LogConfig{Path: "/tmp/clockpanel-test.log", Level: "info"},
	}
}

func testClock(t *testing.T) worldclock.Model {
	t.Helper()
	feed, err := timefeed.New(nil)
	if err != nil {
		t.Fatalf("new feed: %v", err)
	}
	return worldclock.New(zap.NewNop(), feed, widgets.TopRight)
}

func testApp(t *testing.T) *App {
	t.Helper()
	app := New(testConfig(), zap.NewNop(), testClock(t), time.UTC)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return app
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStartsWithClockShown(t *testing.T) {
	app := testApp(t)
	if !app.clock.Show() {
		t.Fatal("clock should be shown on start")
	}
	if !strings.Contains(app.View(), "World Clock") {
		t.Fatal("view should contain the clock panel")
	}
}

func TestShowOnStartDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.UI.ShowOnStart = false
	app := New(cfg, zap.NewNop(), testClock(t), time.UTC)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if app.clock.Show() {
		t.Fatal("clock should start hidden")
	}
	if strings.Contains(app.View(), "World Clock") {
		t.Fatal("view should not contain the clock panel")
	}
	if app.clock.Init() != nil {
		t.Fatal("pre-hidden clock should contribute no startup timers")
	}
}

func TestToggleKeyHidesAndShows(t *testing.T) {
	app := testApp(t)

	app.Update(keyPress('w'))
	if app.clock.Show() {
		t.Fatal("toggle should hide the clock")
	}
	if app.status != "clock hidden" {
		t.Fatalf("status = %q", app.status)
	}

	_, cmd := app.Update(keyPress('w'))
	if !app.clock.Show() {
		t.Fatal("toggle should show the clock again")
	}
	if cmd == nil {
		t.Fatal("showing should schedule clock timers")
	}
	if app.status != "clock shown" {
		t.Fatalf("status = %q", app.status)
	}
}

func TestEscCollapsesPanel(t *testing.T) {
	app := testApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should produce a close notification")
	}
	msg := cmd()
	if _, ok := msg.(worldclock.ClosedMsg); !ok {
		t.Fatalf("cmd returned %T, want worldclock.ClosedMsg", msg)
	}
	if app.clock.Expanded() {
		t.Fatal("clock should be collapsed")
	}

	app.Update(msg)
	if app.closedCount != 1 {
		t.Fatalf("closedCount = %d, want 1", app.closedCount)
	}
	if !strings.Contains(app.status, "collapsed (1)") {
		t.Fatalf("status = %q", app.status)
	}
}

func TestQuitKey(t *testing.T) {
	app := testApp(t)
	_, cmd := app.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should produce tea.QuitMsg")
	}
}

func TestMouseForwardedToClock(t *testing.T) {
	app := testApp(t)

	press := tea.MouseMsg{X: 5, Y: 25, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	_, cmd := app.Update(press)
	if cmd == nil {
		t.Fatal("outside press should collapse the panel")
	}
	if _, ok := cmd().(worldclock.ClosedMsg); !ok {
		t.Fatal("outside press should produce worldclock.ClosedMsg")
	}
	if app.clock.Expanded() {
		t.Fatal("clock should be collapsed after outside press")
	}
}

func TestTickAdvancesBackdrop(t *testing.T) {
	app := testApp(t)

	at := time.Date(2026, time.January, 15, 14, 5, 0, 0, time.UTC)
	_, cmd := app.Update(tickMsg(at))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if !strings.Contains(app.View(), "02:05:00 PM") {
		t.Fatal("backdrop should show the tick time")
	}
	if !strings.Contains(app.View(), "Thursday, 15 January 2026") {
		t.Fatal("backdrop should show the date")
	}
}

func TestWindowSizeStoredAndForwarded(t *testing.T) {
	app := testApp(t)
	if app.width != 100 || app.height != 30 {
		t.Fatalf("size = %dx%d, want 100x30", app.width, app.height)
	}

	app.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if app.width != 60 || app.height != 20 {
		t.Fatalf("size = %dx%d, want 60x20", app.width, app.height)
	}
	r := app.clock.Bounds()
	if r.X+r.W > 60 {
		t.Fatalf("panel right edge %d exceeds width 60", r.X+r.W)
	}
}

func TestStatusDefaultsToReady(t *testing.T) {
	app := testApp(t)
	if !strings.Contains(app.View(), "ready") {
		t.Fatal("status bar should show ready")
	}
}

func TestStatusBarStaysOneLine(t *testing.T) {
	app := testApp(t)
	app.status = strings.Repeat("clock collapsed ", 20)

	bar := app.renderStatus()
	if lipgloss.Height(bar) != 1 {
		t.Fatalf("status bar height = %d, want 1", lipgloss.Height(bar))
	}
	if !strings.Contains(bar, "…") {
		t.Fatal("overlong status should be truncated with an ellipsis")
	}
}

func TestHelpFooterListsBindings(t *testing.T) {
	app := testApp(t)
	view := app.View()
	for _, want := range []string{"toggle clock", "collapse", "quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("footer missing %q", want)
		}
	}
}
