package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Visual state names a ButtonView understands.
const (
	StatePlacedInBar      = "PlacedInBar"
	StatePlacedInDropDown = "PlacedInDropDown"
)

// ButtonStyles are the looks of a ButtonView in each placement.
type ButtonStyles struct {
	Bar          lipgloss.Style
	BarFocused   lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	Hint         lipgloss.Style
	Transition   lipgloss.Style
	ToolTip      lipgloss.Style
}

func DefaultButtonStyles() ButtonStyles {
	return ButtonStyles{
		Bar:          lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1),
		BarFocused:   lipgloss.NewStyle().Foreground(colorSurface).Background(colorAccent).Bold(true).Padding(0, 1),
		MenuItem:     lipgloss.NewStyle().Foreground(colorText),
		MenuSelected: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Hint:         lipgloss.NewStyle().Foreground(colorMuted),
		Transition:   lipgloss.NewStyle().Foreground(colorFaint).Padding(0, 1),
		ToolTip:      lipgloss.NewStyle().Foreground(colorWarn).Italic(true),
	}
}

// ButtonView renders one toolbar button. It receives visual state changes
// and tooltip text from the button and reads label and icon lazily.
//
// A state change requested with transitions runs for a fixed number of
// frames; the host advances them with Step.
type ButtonView struct {
	label  func() string
	icon   func() string
	styles ButtonStyles
	frames int

	state     string
	from      string
	remaining int
	tooltip   string
	changes   int
}

// NewButtonView returns a view with no state yet. frames is the transition
// length; zero makes every change immediate.
func NewButtonView(label, icon func() string, frames int, styles ButtonStyles) *ButtonView {
	return &ButtonView{label: label, icon: icon, frames: max(0, frames), styles: styles}
}

// GoToState switches to state. It returns false for an unknown state name.
func (v *ButtonView) GoToState(state string, useTransitions bool) bool {
	if state != StatePlacedInBar && state != StatePlacedInDropDown {
		return false
	}
	if state == v.state {
		return true
	}
	v.from, v.state = v.state, state
	v.changes++
	v.remaining = 0
	if useTransitions && v.from != "" {
		v.remaining = v.frames
	}
	return true
}

func (v *ButtonView) SetToolTip(text string) { v.tooltip = text }

func (v *ButtonView) ToolTip() string { return v.tooltip }

func (v *ButtonView) State() string { return v.state }

// Changes counts state switches since construction.
func (v *ButtonView) Changes() int { return v.changes }

func (v *ButtonView) Animating() bool { return v.remaining > 0 }

// Step advances a running transition by one frame and reports whether it is
// still running.
func (v *ButtonView) Step() bool {
	if v.remaining > 0 {
		v.remaining--
	}
	return v.remaining > 0
}

// Progress is the completed share of the current transition, 1 when idle.
func (v *ButtonView) Progress() float64 {
	if v.remaining == 0 || v.frames == 0 {
		return 1
	}
	return 1 - float64(v.remaining)/float64(v.frames)
}

// Caption is the icon followed by the label.
func (v *ButtonView) Caption() string {
	var parts []string
	if v.icon != nil {
		if icon := strings.TrimSpace(v.icon()); icon != "" {
			parts = append(parts, icon)
		}
	}
	if v.label != nil {
		if label := strings.TrimSpace(v.label()); label != "" {
			parts = append(parts, label)
		}
	}
	if len(parts) == 0 {
		return "·"
	}
	return strings.Join(parts, " ")
}

// Face renders the button as it sits in the bar.
func (v *ButtonView) Face(focused bool) string {
	style := v.styles.Bar
	switch {
	case v.Animating():
		style = v.styles.Transition
	case focused:
		style = v.styles.BarFocused
	}
	return style.Render(v.Caption())
}

// MenuRow renders the button as a drop-down entry of the given width, with
// hint right-aligned.
func (v *ButtonView) MenuRow(width int, selected bool, hint string) string {
	if width <= 0 {
		return ""
	}
	marker, style := "  ", v.styles.MenuItem
	if selected {
		marker, style = "› ", v.styles.MenuSelected
	}
	if v.Animating() {
		style = v.styles.Transition.UnsetPadding()
	}
	left := marker + v.Caption()
	if hint == "" {
		return style.Render(padRight(left, width))
	}
	room := width - ansi.StringWidth(hint) - 1
	if room < ansi.StringWidth(marker)+1 {
		return style.Render(padRight(left, width))
	}
	return style.Render(padRight(left, room)) + " " + v.styles.Hint.Render(hint)
}

// ToolTipLine renders the tooltip slot, empty when there is no tooltip.
func (v *ButtonView) ToolTipLine(width int) string {
	if v.tooltip == "" || width <= 0 {
		return ""
	}
	return v.styles.ToolTip.Render(ansi.Truncate(v.tooltip, width, "…"))
}

// Render draws the view in its current placement.
func (v *ButtonView) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if v.state == StatePlacedInDropDown {
		return v.MenuRow(width, false, "")
	}
	return ansi.Truncate(v.Face(false), width, "…")
}
