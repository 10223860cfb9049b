package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func baseCanvas(rows, width int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return strings.Join(lines, "\n")
}

func TestOverlayPlacesLayerAtAnchor(t *testing.T) {
	out := Overlay(baseCanvas(5, 10), "AB\nCD", 3, 1, 10, 5)
	lines := strings.Split(out, "\n")
	if lines[0] != ".........." {
		t.Fatalf("row 0 = %q", lines[0])
	}
	if lines[1] != "...AB....." || lines[2] != "...CD....." {
		t.Fatalf("rows = %q", lines[1:3])
	}
}

func TestOverlayShiftsLayerInsideCanvas(t *testing.T) {
	out := Overlay(baseCanvas(3, 10), "XYZ", 9, 7, 10, 3)
	lines := strings.Split(out, "\n")
	if lines[2] != ".......XYZ" {
		t.Fatalf("expected layer clamped to bottom-right, got %q", lines)
	}
}

func TestCenteredCardKeepsBase(t *testing.T) {
	out := Centered(baseCanvas(9, 20), Card("Popup"), 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(ansi.Strip(out), "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if lines[0] != strings.Repeat(".", 20) || lines[8] != strings.Repeat(".", 20) {
		t.Fatalf("expected outer base rows preserved")
	}
}

func TestMenuRendersEntriesWithCursor(t *testing.T) {
	a := NewButtonView(func() string { return "Find" }, nil, 0, DefaultButtonStyles())
	b := NewButtonView(func() string { return "Replace" }, nil, 0, DefaultButtonStyles())
	m := Menu{Title: "More", Entries: []MenuEntry{{View: a, Hint: "Ctrl+F"}, {View: b}}, Cursor: 1}
	out := ansi.Strip(m.Render(40, 10))
	if !strings.Contains(out, "  Find") || !strings.Contains(out, "› Replace") || !strings.Contains(out, "Ctrl+F") {
		t.Fatalf("menu = %q", out)
	}
	w, h := m.Size(40)
	lines := strings.Split(out, "\n")
	if len(lines) != h || ansi.StringWidth(lines[0]) != w {
		t.Fatalf("size = %dx%d, rendered %dx%d", w, h, ansi.StringWidth(lines[0]), len(lines))
	}
}

func TestJournalPaneShowsRows(t *testing.T) {
	p := NewJournalPane("Automation")
	if !strings.Contains(ansi.Strip(p.Render(60, 8)), "no automation events yet") {
		t.Fatalf("expected empty placeholder")
	}
	p.SetRows([][]string{{"12:00:00", "invoked", "save", "Save"}})
	out := ansi.Strip(p.Render(60, 8))
	if p.Rows() != 1 || !strings.Contains(out, "invoked") || !strings.Contains(out, "save") {
		t.Fatalf("journal = %q", out)
	}
}
