package ggchart

const (
	lineWidth    = 2.0
	markerRadius = 4.0
)

// LineRenderer strokes one piecewise-linear trace per series and marks
// every point with a filled circle. Series take palette colors in the
// order they first appear.
type LineRenderer struct{}

// Draw implements Renderer.
func (LineRenderer) Draw(cv Canvas, f *Frame) []Mark {
	m := f.Mapper
	marks := make([]Mark, 0, len(f.Points))

	for g, group := range GroupSeries(f.Points) {
		col := f.Colors.Color(g)
		n := len(group.Points)

		cv.SetColor(col)
		cv.SetLineWidth(lineWidth)
		for j, p := range group.Points {
			x, y := m.X(j, n), m.Y(p.Value)
			if j == 0 {
				cv.MoveTo(x, y)
			} else {
				cv.LineTo(x, y)
			}
		}
		stroke(cv, "line")

		for j, p := range group.Points {
			x, y := m.X(j, n), m.Y(p.Value)
			cv.DrawCircle(x, y, markerRadius)
			fill(cv, "marker")
			marks = append(marks, Mark{
				Index:  group.Indices[j],
				Series: group.Key,
				Point:  p,
				Kind:   ShapeCircle,
				X:      x,
				Y:      y,
				R:      markerRadius,
			})
		}
	}
	return marks
}
