package widgets

import "strings"

// MenuEntry is one row of a drop-down menu.
type MenuEntry struct {
	View *ButtonView
	Hint string
}

// Menu is the overflow drop-down: a titled card of button rows with a cursor.
type Menu struct {
	Title   string
	Entries []MenuEntry
	Cursor  int
}

// Size returns the card's outer width and height for a width budget.
func (m Menu) Size(maxWidth int) (int, int) {
	return m.innerWidth(maxWidth) + 4, len(m.Entries) + 3
}

func (m Menu) innerWidth(maxWidth int) int {
	w := len([]rune(m.Title))
	for _, e := range m.Entries {
		row := 2 + len([]rune(e.View.Caption()))
		if e.Hint != "" {
			row += len([]rune(e.Hint)) + 2
		}
		w = max(w, row)
	}
	return max(1, min(w, maxWidth-4))
}

// Render returns the card. height clips the rows, not the chrome.
func (m Menu) Render(width, height int) string {
	if width <= 4 || height <= 2 {
		return ""
	}
	inner := m.innerWidth(width)
	rows := make([]string, 0, len(m.Entries)+1)
	rows = append(rows, titleStyle.Render(padRight(m.Title, inner)))
	for i, e := range m.Entries {
		if len(rows) >= height-2 {
			break
		}
		rows = append(rows, e.View.MenuRow(inner, i == m.Cursor, e.Hint))
	}
	if len(m.Entries) == 0 {
		rows = append(rows, padRight("(empty)", inner))
	}
	return Card(strings.Join(rows, "\n"))
}
