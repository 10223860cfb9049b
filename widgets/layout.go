package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Rows with a positive entry in Heights
// get exactly that many lines; the remaining rows share what is left,
// weighted by Ratios when its length matches the number of flexible rows.
type VStack struct {
	Widgets []Widget
	Heights []int
	Ratios  []float64
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := v.layout(height)
	blocks := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		blocks = append(blocks, fitCanvas(w.Render(width, heights[i]), width, heights[i]))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				blocks = append(blocks, strings.Repeat(" ", width))
			}
		}
	}
	return fitCanvas(strings.Join(blocks, "\n"), width, height)
}

func (v VStack) layout(height int) []int {
	n := len(v.Widgets)
	out := make([]int, n)
	remaining := height - max(0, v.Spacing*(n-1))
	flexible := make([]int, 0, n)
	for i := range v.Widgets {
		if i < len(v.Heights) && v.Heights[i] > 0 {
			out[i] = min(v.Heights[i], max(0, remaining))
			remaining -= out[i]
			continue
		}
		flexible = append(flexible, i)
	}
	if len(flexible) == 0 || remaining <= 0 {
		return out
	}
	shares := splitWidths(remaining, len(flexible), v.Ratios)
	for k, i := range flexible {
		out[i] = shares[k]
	}
	return out
}

// HStack places widgets side by side.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	usable := max(1, width-max(0, h.Gap*(len(h.Widgets)-1)))
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	columns := make([][]string, len(h.Widgets))
	for i, w := range h.Widgets {
		columns[i] = splitToLines(w.Render(max(1, widths[i]), height), height)
	}
	gap := strings.Repeat(" ", max(0, h.Gap))
	out := make([]string, height)
	for line := range out {
		cells := make([]string, len(columns))
		for i := range columns {
			cells[i] = padRight(columns[i][line], widths[i])
		}
		out[line] = strings.Join(cells, gap)
	}
	return strings.Join(out, "\n")
}

// splitWidths divides total into n parts, proportionally to ratios when
// there is one ratio per part, evenly otherwise. Leftover cells go to the
// first parts.
func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if total <= 0 {
		return out
	}
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	weights := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		weights[i] = r
		sum += r
	}
	used := 0
	for i := range out {
		out[i] = int(math.Floor(weights[i] / sum * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
