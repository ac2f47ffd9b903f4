package ggchart

import "log/slog"

// barGutter is the total horizontal gap inside each bar slot.
const barGutter = 10.0

// BarRenderer draws one filled rectangle per point, colored by point
// position rather than by series.
type BarRenderer struct{}

// Draw implements Renderer.
func (BarRenderer) Draw(cv Canvas, f *Frame) []Mark {
	m := f.Mapper
	n := len(f.Points)
	slot := m.ChartWidth / float64(n)
	barWidth := slot - barGutter
	if barWidth <= 0 {
		Logger().Debug("ggchart: bars too narrow to render",
			slog.Int("points", n), slog.Float64("barWidth", barWidth))
	}

	marks := make([]Mark, 0, n)
	for i, p := range f.Points {
		x := m.Padding + slot*float64(i) + barGutter/2
		h := (p.Value - m.Domain.Min) / m.Domain.Range * m.ChartHeight
		y := m.Baseline() - h

		if barWidth > 0 {
			cv.SetColor(f.Colors.Color(i))
			cv.DrawRectangle(x, y, barWidth, h)
			fill(cv, "bar")
		}
		marks = append(marks, Mark{
			Index:  i,
			Series: p.SeriesKey(),
			Point:  p,
			Kind:   ShapeRect,
			X:      x,
			Y:      y,
			W:      barWidth,
			H:      h,
		})
	}
	return marks
}
