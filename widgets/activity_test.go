package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestActivityBuckets(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Second)
	times := []time.Time{
		start.Add(-time.Second),
		start,
		start.Add(1500 * time.Millisecond),
		start.Add(1900 * time.Millisecond),
		end,
		end.Add(time.Second),
	}
	got := ActivityBuckets(times, start, end)
	want := []float64{1, 2, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d = %v, want %v (%v)", i, got[i], want[i], got)
		}
	}
	if ActivityBuckets(times, end, start) != nil {
		t.Fatalf("reversed range should give no buckets")
	}
}

func TestActivityChartSmallFallsBackToSummary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 30, 0, time.UTC)
	a := ActivityChart{Title: "Activity", Times: []time.Time{now, now.Add(-2 * time.Second)}, Now: now}
	out := ansi.Strip(a.Render(16, 4))
	if !strings.Contains(out, "2 in last 1m0s") {
		t.Fatalf("expected summary, got:\n%s", out)
	}
}

func TestActivityChartDrawsWithinBounds(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 30, 0, time.UTC)
	a := ActivityChart{Title: "Activity", Times: []time.Time{now, now.Add(-5 * time.Second)}, Now: now, Window: 20 * time.Second}
	out := a.Render(40, 10)
	if !strings.Contains(ansi.Strip(out), "Activity") {
		t.Fatalf("missing title:\n%s", out)
	}
	if got := len(strings.Split(out, "\n")); got != 10 {
		t.Fatalf("line count = %d, want 10", got)
	}
}
