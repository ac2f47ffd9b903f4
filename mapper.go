package ggchart

import "math"

// DefaultPadding is the logical-pixel inset between the surface edge and the plot area.
const DefaultPadding = 40.0

// Domain is the value range plotted on the vertical axis.
// Min always includes zero so bars and areas anchor on a visible baseline.
type Domain struct {
	Min   float64
	Max   float64
	Range float64 // Max - Min, or 1 when the data span is zero
}

// NewDomain computes the domain of points. It returns false when points is
// empty, in which case no geometry is defined and nothing should be drawn.
func NewDomain(points []DataPoint) (Domain, bool) {
	if len(points) == 0 {
		return Domain{}, false
	}
	minV, maxV := 0.0, math.Inf(-1)
	for _, p := range points {
		minV = math.Min(minV, p.Value)
		maxV = math.Max(maxV, p.Value)
	}
	span := maxV - minV
	if span == 0 {
		span = 1
	}
	return Domain{Min: minV, Max: maxV, Range: span}, true
}

// Mapper maps data indices and values onto logical pixel space.
// Y grows downward.
type Mapper struct {
	Padding     float64
	ChartWidth  float64
	ChartHeight float64
	Domain      Domain
}

// NewMapper builds a mapper for a surface of the given logical size.
// It returns false when points is empty.
func NewMapper(width, height, padding float64, points []DataPoint) (Mapper, bool) {
	d, ok := NewDomain(points)
	if !ok {
		return Mapper{}, false
	}
	return Mapper{
		Padding:     padding,
		ChartWidth:  width - padding*2,
		ChartHeight: height - padding*2,
		Domain:      d,
	}, true
}

// X returns the horizontal position of index i out of n points.
// A single point sits on the left edge.
func (m Mapper) X(i, n int) float64 {
	return m.Padding + m.ChartWidth/float64(max(n-1, 1))*float64(i)
}

// Y returns the vertical position of value v.
func (m Mapper) Y(v float64) float64 {
	return m.Padding + m.ChartHeight - (v-m.Domain.Min)/m.Domain.Range*m.ChartHeight
}

// Baseline returns the y of the bottom edge of the plot area.
func (m Mapper) Baseline() float64 {
	return m.Padding + m.ChartHeight
}

// Right returns the x of the right edge of the plot area.
func (m Mapper) Right() float64 {
	return m.Padding + m.ChartWidth
}
