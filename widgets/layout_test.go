package widgets

import (
	"strings"
	"testing"
)

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{Text("A"), Text("B")}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	lines := strings.Split(h.Render(21, 2), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if strings.Index(lines[0], "B") != 16 {
		t.Fatalf("expected second column at 16, got %q", lines[0])
	}
}

func TestVStackFixedAndFlexibleRows(t *testing.T) {
	v := VStack{Widgets: []Widget{Text("top"), Text("middle"), Text("bottom")}, Heights: []int{1, 0, 1}}
	lines := strings.Split(v.Render(10, 6), "\n")
	if len(lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(lines))
	}
	if !strings.HasPrefix(lines[0], "top") || !strings.HasPrefix(lines[1], "middle") || !strings.HasPrefix(lines[5], "bottom") {
		t.Fatalf("unexpected layout %q", lines)
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{Text("top"), Text("bottom")}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
}

func TestSplitWidthsDistributesRemainder(t *testing.T) {
	got := splitWidths(10, 3, nil)
	if got[0] != 4 || got[1] != 3 || got[2] != 3 {
		t.Fatalf("splitWidths = %v", got)
	}
	got = splitWidths(10, 2, []float64{0, 1})
	if got[0] != 5 || got[1] != 5 {
		t.Fatalf("non-positive ratio should weigh 1, got %v", got)
	}
}
