package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// OverlayAt composites a rendered block on top of a base canvas at the given
// cell position (x, y). Both strings are treated as line-based grids; the
// splice is ANSI-aware so styled base content survives on either side of the
// block. Rows of the block that fall outside the base are dropped.
func OverlayAt(base, block string, x, y, width, height int) string {
	baseLines := SplitLines(base)
	blockLines := SplitLines(block)
	blockWidth := MaxLineWidth(blockLines)
	for i, line := range blockLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		baseLines[row] = spliceLine(PadRight(baseLines[row], width), PadRight(line, blockWidth), x, width)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine replaces the cells [x, x+width(block)) of a single base line
// with the block line, keeping whatever of the base remains to the right.
func spliceLine(base, block string, x, width int) string {
	left := ansi.Truncate(base, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	pos := x + ansi.StringWidth(block)
	right := ""
	if width > 0 {
		right = ansi.TruncateLeft(base, pos, "")
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
	}
	return left + block + right
}

// ---------------------------------------------------------------------------
// Corner anchoring
// ---------------------------------------------------------------------------

// Corner names a screen corner for overlay placement.
type Corner string

const (
	TopRight    Corner = "top-right"
	TopLeft     Corner = "top-left"
	BottomRight Corner = "bottom-right"
	BottomLeft  Corner = "bottom-left"
)

// ParseCorner maps a config string onto a Corner.
func ParseCorner(s string) (Corner, bool) {
	switch Corner(strings.ToLower(strings.TrimSpace(s))) {
	case TopRight:
		return TopRight, true
	case TopLeft:
		return TopLeft, true
	case BottomRight:
		return BottomRight, true
	case BottomLeft:
		return BottomLeft, true
	}
	return TopRight, false
}

// Anchor returns the top-left cell position that places a block of size
// (w, h) in the given corner of a (width, height) canvas, inset by the
// margins. Positions are clamped to the canvas origin so undersized
// terminals degrade instead of going negative.
func Anchor(corner Corner, width, height, w, h, marginX, marginY int) (x, y int) {
	switch corner {
	case TopLeft:
		x, y = marginX, marginY
	case BottomRight:
		x, y = width-w-marginX, height-h-marginY
	case BottomLeft:
		x, y = marginX, height-h-marginY
	default: // TopRight
		x, y = width-w-marginX, marginY
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

// SplitLines splits a string on newlines, returning at least one element.
func SplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// MaxLineWidth returns the visual width of the widest line.
func MaxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// PadRight pads s with spaces so its visual width equals width.
func PadRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Truncate shortens s to the given visual width, appending an ellipsis if
// anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
