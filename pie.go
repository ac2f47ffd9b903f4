package ggchart

import (
	"log/slog"
	"math"
)

const (
	// pieInset shrinks the pie radius inside the plot area.
	pieInset = 20.0
	// donutHole is the hole radius as a fraction of the outer radius.
	donutHole = 0.6
	// pieStart is 12 o'clock.
	pieStart = -math.Pi / 2
	// maxArcSegment is the largest arc approximated by one cubic Bézier.
	maxArcSegment = math.Pi / 2
)

// Slice is the angular extent of one pie wedge, in radians.
type Slice struct {
	Start float64
	Sweep float64
}

// SliceAngles lays points out clockwise from 12 o'clock, each sweeping its
// share of the total. When the total is zero every sweep is zero.
func SliceAngles(points []DataPoint) []Slice {
	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	slices := make([]Slice, len(points))
	angle := pieStart
	for i, p := range points {
		sweep := 0.0
		if total != 0 {
			sweep = p.Value / total * 2 * math.Pi
		}
		slices[i] = Slice{Start: angle, Sweep: sweep}
		angle += sweep
	}
	return slices
}

// PieGeometry returns the pie center and outer radius for f.
func PieGeometry(f *Frame) (cx, cy, r float64) {
	m := f.Mapper
	return f.Width / 2, f.Height / 2, math.Min(m.ChartWidth, m.ChartHeight)/2 - pieInset
}

// PieRenderer fills one wedge per point, colored by point position.
type PieRenderer struct{}

// Draw implements Renderer.
func (PieRenderer) Draw(cv Canvas, f *Frame) []Mark {
	cx, cy, r := PieGeometry(f)
	if r <= 0 {
		Logger().Debug("ggchart: surface too small for pie", slog.Float64("radius", r))
		return nil
	}

	marks := make([]Mark, 0, len(f.Points))
	for i, s := range SliceAngles(f.Points) {
		p := f.Points[i]
		cv.SetColor(f.Colors.Color(i))
		cv.MoveTo(cx, cy)
		cv.LineTo(cx+r*math.Cos(s.Start), cy+r*math.Sin(s.Start))
		arcTo(cv, cx, cy, r, s.Start, s.Start+s.Sweep)
		cv.ClosePath()
		fill(cv, "wedge")

		marks = append(marks, Mark{
			Index:  i,
			Series: p.SeriesKey(),
			Point:  p,
			Kind:   ShapeWedge,
			X:      cx,
			Y:      cy,
			R:      r,
			Start:  s.Start,
			Sweep:  s.Sweep,
		})
	}
	return marks
}

// DonutRenderer draws a pie and punches a hole in it with the background color.
type DonutRenderer struct {
	Pie PieRenderer
}

// Draw implements Renderer.
func (d DonutRenderer) Draw(cv Canvas, f *Frame) []Mark {
	marks := d.Pie.Draw(cv, f)
	cx, cy, r := PieGeometry(f)
	if r <= 0 {
		return marks
	}
	inner := r * donutHole
	cv.SetColor(f.Background)
	cv.DrawCircle(cx, cy, inner)
	fill(cv, "donut hole")

	for i := range marks {
		marks[i].Inner = inner
	}
	return marks
}

// arcTo appends a circular arc from angle a1 to a2 to the current path,
// which must already end at the arc's start point. The arc is split into
// cubic Bézier segments of at most maxArcSegment each.
func arcTo(cv Canvas, cx, cy, r, a1, a2 float64) {
	sweep := a2 - a1
	if sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / maxArcSegment))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	for i := 0; i < n; i++ {
		s := a1 + step*float64(i)
		e := s + step
		cosS, sinS := math.Cos(s), math.Sin(s)
		cosE, sinE := math.Cos(e), math.Sin(e)
		cv.CubicTo(
			cx+r*(cosS-k*sinS), cy+r*(sinS+k*cosS),
			cx+r*(cosE+k*sinE), cy+r*(sinE-k*cosE),
			cx+r*cosE, cy+r*sinE,
		)
	}
}
