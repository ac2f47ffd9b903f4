package ggchart

// areaAlpha is the opacity of the filled region under an area trace.
const areaAlpha = 0.3

// AreaRenderer fills the region between the plotted points and the
// baseline with the first palette color at 30% opacity, then draws the
// line chart on top of it.
type AreaRenderer struct {
	Line LineRenderer
}

// Draw implements Renderer.
func (r AreaRenderer) Draw(cv Canvas, f *Frame) []Mark {
	m := f.Mapper
	n := len(f.Points)
	base := m.Baseline()

	cv.SetColor(f.Colors.Translucent(0, areaAlpha))
	for i, p := range f.Points {
		x, y := m.X(i, n), m.Y(p.Value)
		if i == 0 {
			cv.MoveTo(x, base)
		}
		cv.LineTo(x, y)
	}
	cv.LineTo(m.Right(), base)
	cv.ClosePath()
	fill(cv, "area")

	return r.Line.Draw(cv, f)
}
