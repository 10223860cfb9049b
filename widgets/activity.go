package widgets

import (
	"fmt"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

const (
	activityMinChartWidth  = 12
	activityMinChartHeight = 3
)

// ActivityChart plots automation events per second over a trailing window.
type ActivityChart struct {
	Title  string
	Times  []time.Time
	Now    time.Time
	Window time.Duration
}

func (a ActivityChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	window := a.Window
	if window <= 0 {
		window = time.Minute
	}
	now := a.Now
	if now.IsZero() {
		now = time.Now()
	}
	end := now.Truncate(time.Second)
	start := end.Add(-window)
	counts := ActivityBuckets(a.Times, start, end)

	innerW, innerH := width-4, height-3
	if innerW < activityMinChartWidth || innerH < activityMinChartHeight {
		total := 0
		for _, c := range counts {
			total += int(c)
		}
		return Box{Title: a.Title, Content: fmt.Sprintf("%d in last %s", total, window)}.Render(width, height)
	}

	peak := 1.0
	for _, c := range counts {
		peak = max(peak, c)
	}
	chart := tslc.New(innerW, innerH)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorAccent))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorBorder)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorFaint)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, peak)
	chart.SetViewYRange(0, peak)
	for i, c := range counts {
		chart.Push(tslc.TimePoint{Time: start.Add(time.Duration(i) * time.Second), Value: c})
	}
	chart.DrawBraille()
	return Box{Title: a.Title, Content: chart.View()}.Render(width, height)
}

// ActivityBuckets counts times per whole second from start to end, both
// included. Times outside the range are ignored.
func ActivityBuckets(times []time.Time, start, end time.Time) []float64 {
	start, end = start.Truncate(time.Second), end.Truncate(time.Second)
	if end.Before(start) {
		return nil
	}
	out := make([]float64, int(end.Sub(start)/time.Second)+1)
	for _, t := range times {
		t = t.Truncate(time.Second)
		if t.Before(start) || t.After(end) {
			continue
		}
		out[int(t.Sub(start)/time.Second)]++
	}
	return out
}
