package worldclock

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clockpanel/widgets"
)

// Width breakpoints. Wide terminals get the full panel and roomier corner
// margins; narrow ones a reduced width so the panel never crowds the view.
const (
	breakpointWide   = 80
	panelWidthWide   = 36
	panelWidthNarrow = 32
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha subset
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	pillStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	dotStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	closeStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	nameStyle  = lipgloss.NewStyle().Foreground(colorText)
	timeStyle  = lipgloss.NewStyle().Foreground(colorTeal)
)

// Rect is a panel rectangle in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// View renders the panel for its current state: the full card when
// expanded, the compact pill when collapsed, nothing while hidden.
func (m Model) View() string {
	if !m.show {
		return ""
	}
	if m.machine.Is(stateCollapsed) {
		return m.viewCollapsed()
	}
	return m.viewExpanded()
}

// Bounds returns the panel's on-screen rectangle for the current terminal
// size, state and corner. Hit testing and host compositing both read this,
// so pointer geometry can never drift from what was drawn.
func (m Model) Bounds() Rect {
	if !m.show || m.width <= 0 || m.height <= 0 {
		return Rect{}
	}
	view := m.View()
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	mx, my := m.margins()
	x, y := widgets.Anchor(m.corner, m.width, m.height, w, h, mx, my)
	return Rect{X: x, Y: y, W: w, H: h}
}

func (m Model) viewExpanded() string {
	inner := m.panelWidth() - 2
	lines := make([]string, 0, len(m.snapshot)+1)
	lines = append(lines, spread(
		dotStyle.Render("●")+" "+titleStyle.Render("World Clock"),
		closeStyle.Render("✕"),
		inner,
	))
	for _, e := range m.snapshot {
		left := iconFor(e.Name) + " " + nameStyle.Render(e.Name)
		lines = append(lines, spread(left, timeStyle.Render(e.Time), inner))
	}
	return panelStyle.Width(m.panelWidth()).Render(strings.Join(lines, "\n"))
}

// viewCollapsed renders the pill: indicator plus the local time, nothing
// else. The whole pill is the re-expansion target.
func (m Model) viewCollapsed() string {
	local, _ := m.snapshot.Get("Local Time")
	return pillStyle.Render(dotStyle.Render("●") + " " + timeStyle.Render(local))
}

// closeHit reports whether a press landed on the ✕ control: the right end
// of the header line, with a cell of slack either side.
func (m Model) closeHit(x, y int, r Rect) bool {
	if y != r.Y+1 {
		return false
	}
	return x >= r.X+r.W-4 && x <= r.X+r.W-2
}

func (m Model) panelWidth() int {
	if m.width >= breakpointWide {
		return panelWidthWide
	}
	return panelWidthNarrow
}

func (m Model) margins() (x, y int) {
	if m.width >= breakpointWide {
		return 2, 1
	}
	return 1, 1
}

// spread lays left and right at opposite ends of a row of the given visual
// width.
func spread(left, right string, width int) string {
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
