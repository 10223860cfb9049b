package widgets

import "github.com/charmbracelet/lipgloss"

// Box draws a rounded panel with a title line.
type Box struct {
	Title   string
	Content string
	Active  bool
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	border := colorBorder
	if b.Active {
		border = colorAccent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		MaxHeight(height)
	title := titleStyle.Render(b.Title)
	return style.Render(title + "\n" + b.Content)
}
