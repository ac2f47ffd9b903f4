package ggchart

import "github.com/gogpu/gg"

// gridColor is rgba(128, 128, 128, 0.1).
var gridColor = gg.RGBA{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255, A: 0.1}

// GridRows is the number of horizontal bands; GridRows+1 lines are drawn.
const GridRows = 5

// maxGridColumns caps vertical gridlines at roughly this many.
const maxGridColumns = 10

// GridStep returns the index stride between vertical gridlines for n points.
func GridStep(n int) int {
	return max(1, n/maxGridColumns)
}

// DrawGrid draws the decorative reference lines for f.
func DrawGrid(cv Canvas, f *Frame) {
	m := f.Mapper
	cv.SetColor(gridColor)
	cv.SetLineWidth(1)

	for i := 0; i <= GridRows; i++ {
		y := m.Padding + m.ChartHeight/GridRows*float64(i)
		cv.MoveTo(m.Padding, y)
		cv.LineTo(f.Width-m.Padding, y)
		stroke(cv, "grid")
	}

	n := len(f.Points)
	for i := 0; i < n; i += GridStep(n) {
		x := m.X(i, n)
		cv.MoveTo(x, m.Padding)
		cv.LineTo(x, f.Height-m.Padding)
		stroke(cv, "grid")
	}
}
