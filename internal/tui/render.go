package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clockpanel/widgets"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerHintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorMantle)

	// Backdrop clock face
	clockFaceStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	dateStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	utcStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Help key styling
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)

// ---------------------------------------------------------------------------
// Chrome rendering
// ---------------------------------------------------------------------------

func (a *App) View() string {
	base := a.composeFrame(a.renderHeader(), a.renderBackdrop(), a.renderStatus(), a.renderFooter())
	if !a.clock.Show() || a.width <= 0 || a.height <= 0 {
		return base
	}
	r := a.clock.Bounds()
	return widgets.OverlayAt(base, a.clock.View(), r.X, r.Y, a.width, a.height)
}

func (a *App) renderHeader() string {
	content := headerAppStyle.Render("ClockPanel") + headerHintStyle.Render("  world clock overlay")
	if a.width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(a.width).Render(content)
}

func (a *App) renderBackdrop() string {
	now := a.now.In(a.loc)
	face := clockFaceStyle.Render(now.Format("03:04:05 PM"))
	date := dateStyle.Render(now.Format("Monday, 02 January 2006"))
	utc := utcStyle.Render("UTC " + a.now.UTC().Format("15:04"))
	return lipgloss.JoinVertical(lipgloss.Center, face, date, utc)
}

func (a *App) renderStatus() string {
	text := a.status
	if text == "" {
		text = "ready"
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	if a.width <= 0 {
		return statusBarStyle.Render(flat)
	}
	// The bar must stay one line tall; lipgloss wraps overflowing content.
	flat = widgets.Truncate(flat, a.width-4)
	return statusBarStyle.Width(a.width).Render(flat)
}

func (a *App) renderFooter() string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, 3)
	for _, binding := range a.keys.ShortHelp() {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width <= 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func (a *App) composeFrame(header, body, statusLine, footer string) string {
	if a.height <= 0 {
		return header + "\n" + body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, body)
	// Ensure every line is full-width to prevent ghosting from previous frames
	lines := widgets.SplitLines(main)
	for i, line := range lines {
		lines[i] = widgets.PadRight(line, a.width)
	}
	return header + "\n" + strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}
