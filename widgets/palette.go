package widgets

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSurface lipgloss.Color = "#313244"
	colorFaint   lipgloss.Color = "#6c7086"
	colorWarn    lipgloss.Color = "#f9e2af"

	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
