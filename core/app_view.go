package core

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/toolstrip/internal/a11y"
	"github.com/jask/toolstrip/widgets"
)

const (
	barRow           = 1
	activityMinWidth = 90
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width, height := max(1, m.width), max(1, m.height)
	row, chevronX := m.renderBarRow(width)
	page := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(renderHeader(m, width)),
			widgets.Text(row),
			widgets.Text(m.renderToolTipRow(width)),
			m.journalWidget(width),
			widgets.Text(RenderStatusBar(m)),
			widgets.Text(RenderFooter(m)),
		},
		Heights: []int{1, 1, 1, 0, 1, 1},
	}
	view := page.Render(width, height)
	if top := m.screens.Top(); top != nil {
		layer := top.View(max(20, width-4), max(4, height-barRow-3))
		if top.Scope() == ScopeDropDown {
			view = widgets.Overlay(view, layer, chevronX, barRow+1, width, height)
		} else {
			view = widgets.Centered(view, layer, width, height)
		}
	}
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

func renderHeader(m Model, width int) string {
	left := headerAppStyle.Render(m.title)
	inline, overflow := len(m.bar.Placed(false)), len(m.bar.Placed(true))
	meta := fmt.Sprintf("%d in bar · %d in drop-down · %d events", inline, overflow, m.journal.Total())
	right := headerMetaStyle.Render(meta)
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	line := left + headerMetaStyle.Render(strings.Repeat(" ", gap)) + right
	return renderBar(headerBarStyle, width, line, colorMantle)
}

// renderBarRow draws inline buttons followed by the drop-down chevron and
// returns the column where the chevron starts.
func (m Model) renderBarRow(width int) (string, int) {
	focused := m.bar.Focus().Focused()
	parts := make([]string, 0, len(m.bar.Buttons())+1)
	for _, b := range m.bar.Placed(false) {
		v, ok := m.views[b.ID()]
		if !ok {
			continue
		}
		parts = append(parts, v.Face(b.ID() == focused))
	}
	line := strings.Join(parts, " ")
	chevronX := 0
	if line != "" {
		chevronX = ansi.StringWidth(line) + 1
	}
	if n := len(m.bar.Placed(true)); n > 0 {
		style := chevronStyle
		if m.ActiveScope() == ScopeDropDown {
			style = chevronOpenStyle
		}
		chevron := style.Render(fmt.Sprintf("» %d", n))
		if line != "" {
			line += " "
		}
		line += chevron
	}
	if line == "" {
		line = noTipStyle.Render("(no buttons)")
	}
	return ansi.Truncate(line, width, "…"), min(chevronX, max(0, width-1))
}

func (m Model) renderToolTipRow(width int) string {
	b, ok := m.Focused()
	if !ok {
		return ""
	}
	var tip string
	if v, ok := m.views[b.ID()]; ok {
		tip = v.ToolTipLine(width)
	}
	if tip == "" {
		tip = noTipStyle.Render(b.Label())
	}
	if conflicts := m.bar.Conflicts(); len(conflicts) > 0 {
		keys := make([]string, 0, len(conflicts))
		for g := range conflicts {
			keys = append(keys, g)
		}
		sort.Strings(keys)
		tip += "  " + conflictStyle.Render("shared shortcut: "+strings.Join(keys, ", "))
	}
	if shadowed := m.shadowedKeys(); len(shadowed) > 0 {
		tip += "  " + conflictStyle.Render("overrides toolbar key: "+strings.Join(slices.Sorted(maps.Keys(shadowed)), ", "))
	}
	return ansi.Truncate(tip, width, "…")
}

// journalWidget shows recent events, with an activity chart beside them
// when the terminal is wide enough.
func (m Model) journalWidget(width int) widgets.Widget {
	events := m.journal.Recent(32)
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{e.At.Format("15:04:05"), string(e.Kind), e.AutomationID, eventDetail(e)})
	}
	m.journalPane.SetRows(rows)
	if width < activityMinWidth {
		return m.journalPane
	}
	all := m.journal.Events()
	times := make([]time.Time, 0, len(all))
	for _, e := range all {
		times = append(times, e.At)
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{m.journalPane, widgets.ActivityChart{Title: "Activity", Times: times}},
		Ratios:  []float64{0.65, 0.35},
		Gap:     1,
	}
}

func eventDetail(e a11y.Event) string {
	switch e.Kind {
	case a11y.EventPropertyChanged:
		return fmt.Sprintf("%s %q → %q", e.Property, e.OldValue, e.NewValue)
	default:
		return e.Name
	}
}
