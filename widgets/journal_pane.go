package widgets

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// JournalPane lists automation events, newest first, in a bubbles table.
// Rows are Time, Event, Button, Detail.
type JournalPane struct {
	title string
	table table.Model
}

func NewJournalPane(title string) *JournalPane {
	t := table.New(table.WithColumns(journalColumns(60)), table.WithFocused(false), table.WithHeight(4))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorAccent)
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return &JournalPane{title: title, table: t}
}

func (p *JournalPane) SetRows(rows [][]string) {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row(r))
	}
	p.table.SetRows(out)
}

func (p *JournalPane) Rows() int { return len(p.table.Rows()) }

func (p *JournalPane) Render(width, height int) string {
	innerW := max(20, width-4)
	innerH := max(2, height-3)
	p.table.SetColumns(journalColumns(innerW))
	p.table.SetWidth(innerW)
	p.table.SetHeight(innerH)
	content := p.table.View()
	if len(p.table.Rows()) == 0 {
		content = "no automation events yet"
	}
	return Box{Title: p.title, Content: content}.Render(width, height)
}

func journalColumns(width int) []table.Column {
	const timeW, kindW = 8, 8
	rest := max(8, width-timeW-kindW-6)
	buttonW := max(6, rest/3)
	return []table.Column{
		{Title: "Time", Width: timeW},
		{Title: "Event", Width: kindW},
		{Title: "Button", Width: buttonW},
		{Title: "Detail", Width: max(4, rest-buttonW)},
	}
}
