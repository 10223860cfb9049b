package widgets

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Text is a widget that renders a fixed string, clipped to the area.
type Text string

func (t Text) Render(width, height int) string {
	return fitCanvas(string(t), width, height)
}
