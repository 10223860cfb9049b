package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerMetaStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)

	chevronStyle     = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	chevronOpenStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)
	noTipStyle       = lipgloss.NewStyle().Foreground(colorBorder).Italic(true)
	conflictStyle    = lipgloss.NewStyle().Foreground(colorWarn)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
