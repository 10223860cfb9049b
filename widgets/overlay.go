package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card wraps content in the rounded chrome used for popups.
func Card(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Render(content)
}

// Overlay draws layer over base with its top-left corner at column x, row y.
// The layer is shifted left or up when it would spill past the canvas, and
// base cells outside the layer are kept.
func Overlay(base, layer string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := splitToLines(fitCanvas(base, width, height), height)
	lines := splitToLines(layer, 0)
	layerW := maxLineWidth(lines)
	if layerW == 0 {
		return strings.Join(canvas, "\n")
	}
	x = clamp(x, 0, max(0, width-layerW))
	y = clamp(y, 0, max(0, height-len(lines)))

	for i, line := range lines {
		row := y + i
		if row >= height {
			break
		}
		target := canvas[row]
		left := padRight(ansi.Truncate(target, x, ""), x)
		cell := padRight(line, min(layerW, width-x))
		right := dropColumns(target, x+ansi.StringWidth(cell))
		canvas[row] = padRight(left+cell+right, width)
	}
	return strings.Join(canvas, "\n")
}

// Centered draws layer in the middle of base.
func Centered(base, layer string, width, height int) string {
	lines := splitToLines(layer, 0)
	x := (width - maxLineWidth(lines)) / 2
	y := (height - len(lines)) / 2
	return Overlay(base, layer, x, y, width, height)
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// splitToLines splits s into lines, clipped or padded to height when height
// is positive.
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
