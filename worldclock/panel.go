package worldclock

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/jask/clockpanel/internal/timefeed"
	"github.com/jask/clockpanel/widgets"
)

// autoCollapseAfter is how long an expanded panel stays up with no
// interaction before it collapses on its own. The countdown only runs while
// the panel is shown and expanded; it rearms whenever that pair becomes
// true again.
const autoCollapseAfter = 10 * time.Second

// ClosedMsg is emitted exactly once every time the panel collapses on its
// own — outside press, close control or idle timeout. Hosts that track the
// panel's visual state listen for it; they never drive the state machine
// directly.
type ClosedMsg struct{}

// Model is the floating world-clock panel. It owns its expanded/collapsed
// state; the host owns only the show flag and where the panel is anchored.
type Model struct {
	id      string
	logger  *zap.Logger
	machine *fsm.FSM
	feed    *timefeed.Feed
	corner  widgets.Corner

	show     bool
	snapshot timefeed.Snapshot

	width  int
	height int

	// Generation counters for the two timer families. tea.Tick cannot be
	// revoked, so every scheduled tick carries the generation that armed it
	// and stale generations are dropped on arrival.
	collapseSeq int
	feedSeq     int
}

// New builds a shown, expanded panel and publishes the first snapshot
// immediately. Init schedules the minute alignment and the idle countdown.
func New(logger *zap.Logger, feed *timefeed.Feed, corner widgets.Corner) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return Model{
		id:       id,
		logger:   logger,
		machine:  newMachine(logger, id),
		feed:     feed,
		corner:   corner,
		show:     true,
		snapshot: feed.Take(),
	}
}

// Init arms the idle countdown and the minute alignment. A panel the host
// hid before the program started arms nothing; the next show edge replays
// the whole activation sequence.
func (m Model) Init() tea.Cmd {
	if !m.show {
		return nil
	}
	return tea.Batch(
		collapseTimerCmd(m.collapseSeq),
		alignTickCmd(m.feedSeq, timefeed.AlignDelay(m.feed.Now())),
	)
}

// Show reports the host-supplied visibility flag.
func (m Model) Show() bool { return m.show }

// Expanded reports whether the panel is in its expanded state.
func (m Model) Expanded() bool { return m.machine.Is(stateExpanded) }

// SetShow applies the host's visibility intent. Hiding disowns every
// pending tick; showing republishes a fresh snapshot, realigns the feed and
// rearms the countdown if the panel is still expanded.
func (m Model) SetShow(show bool) (Model, tea.Cmd) {
	if show == m.show {
		return m, nil
	}
	m.show = show
	m.logger.Debug("panel visibility", zap.String("panel", m.id), zap.Bool("show", show))
	if !show {
		m.collapseSeq++
		m.feedSeq++
		return m, nil
	}
	m.feedSeq++
	m.snapshot = m.feed.Take()
	cmds := []tea.Cmd{alignTickCmd(m.feedSeq, timefeed.AlignDelay(m.feed.Now()))}
	if m.machine.Is(stateExpanded) {
		m.collapseSeq++
		cmds = append(cmds, collapseTimerCmd(m.collapseSeq))
	}
	return m, tea.Batch(cmds...)
}

// Close collapses the panel through the explicit close control. Keyboard
// hosts route their close binding here; the ✕ cell routes through the mouse
// path to the same event.
func (m Model) Close() (Model, tea.Cmd) {
	if !m.show {
		return m, nil
	}
	return m.collapse(eventClose)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case collapseTimeoutMsg:
		if msg.seq != m.collapseSeq || !m.show {
			return m, nil
		}
		return m.collapse(eventTimeout)

	case alignTickMsg:
		if msg.seq != m.feedSeq || !m.show {
			return m, nil
		}
		m.snapshot = m.feed.Take()
		return m, refreshTickCmd(m.feedSeq)

	case refreshTickMsg:
		if msg.seq != m.feedSeq || !m.show {
			return m, nil
		}
		m.snapshot = m.feed.Take()
		return m, refreshTickCmd(m.feedSeq)
	}
	return m, nil
}

// handleMouse implements the pointer contract: while expanded, a press
// outside the panel dismisses it and a press on the ✕ closes it; while
// collapsed, a left press on the pill re-expands it. The press on the pill
// is consumed here and never reaches the host's own mouse handling.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.show || msg.Action != tea.MouseActionPress || isWheel(msg.Button) {
		return m, nil
	}
	bounds := m.Bounds()
	inside := bounds.Contains(msg.X, msg.Y)

	if m.machine.Is(stateExpanded) {
		if !inside {
			return m.collapse(eventDismiss)
		}
		if m.closeHit(msg.X, msg.Y, bounds) {
			return m.collapse(eventClose)
		}
		return m, nil
	}

	if inside && msg.Button == tea.MouseButtonLeft {
		return m.expand()
	}
	return m, nil
}

// collapse fires one of the three collapse events. A nil error from the
// machine means the transition happened, which is the only path that emits
// ClosedMsg — stale or out-of-state triggers fall through silently.
func (m Model) collapse(event string) (Model, tea.Cmd) {
	if err := m.machine.Event(context.Background(), event); err != nil {
		return m, nil
	}
	m.collapseSeq++
	return m, closedCmd()
}

func (m Model) expand() (Model, tea.Cmd) {
	if err := m.machine.Event(context.Background(), eventExpand); err != nil {
		return m, nil
	}
	m.collapseSeq++
	return m, collapseTimerCmd(m.collapseSeq)
}

func isWheel(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}

// messages
type collapseTimeoutMsg struct{ seq int }

type alignTickMsg struct{ seq int }

type refreshTickMsg struct{ seq int }

// commands
func closedCmd() tea.Cmd {
	return func() tea.Msg { return ClosedMsg{} }
}

// collapseTimerCmd starts the idle countdown for one (show, expanded)
// episode.
func collapseTimerCmd(seq int) tea.Cmd {
	return tea.Tick(autoCollapseAfter, func(time.Time) tea.Msg {
		return collapseTimeoutMsg{seq: seq}
	})
}

// alignTickCmd fires once at the next minute boundary.
func alignTickCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return alignTickMsg{seq: seq}
	})
}

// refreshTickCmd fires on the fixed once-a-minute cadence after alignment.
func refreshTickCmd(seq int) tea.Cmd {
	return tea.Tick(timefeed.RefreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{seq: seq}
	})
}
