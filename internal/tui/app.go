package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/clockpanel/internal/config"
	"github.com/jask/clockpanel/worldclock"
)

// App hosts the desktop backdrop and the floating clock panel.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	keys   keyMap
	clock  worldclock.Model

	width  int
	height int
	now    time.Time
	loc    *time.Location

	status      string
	closedCount int
}

func New(cfg config.Config, logger *zap.Logger, clock worldclock.Model, loc *time.Location) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	if !cfg.UI.ShowOnStart {
		clock, _ = clock.SetShow(false)
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		keys:   newKeyMap(),
		clock:  clock,
		now:    time.Now(),
		loc:    loc,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.clock.Init(), tickCmd())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Toggle):
			var cmd tea.Cmd
			a.clock, cmd = a.clock.SetShow(!a.clock.Show())
			if a.clock.Show() {
				a.status = "clock shown"
			} else {
				a.status = "clock hidden"
			}
			return a, cmd
		case key.Matches(m, a.keys.Close):
			var cmd tea.Cmd
			a.clock, cmd = a.clock.Close()
			return a, cmd
		}
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		var cmd tea.Cmd
		a.clock, cmd = a.clock.Update(msg)
		return a, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		a.clock, cmd = a.clock.Update(msg)
		return a, cmd
	case worldclock.ClosedMsg:
		a.closedCount++
		a.status = fmt.Sprintf("clock collapsed (%d)", a.closedCount)
		a.logger.Info("clock panel closed", zap.Int("count", a.closedCount))
	case tickMsg:
		a.now = time.Time(m)
		return a, tickCmd()
	default:
		// clock timer messages are unexported; anything unmatched is forwarded
		var cmd tea.Cmd
		a.clock, cmd = a.clock.Update(msg)
		return a, cmd
	}
	return a, nil
}

// messages
type tickMsg time.Time

// commands
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
