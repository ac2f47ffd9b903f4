package ggchart

import (
	"math"
	"strconv"
	"strings"
)

// tooltipOffsetX and tooltipOffsetY place the tooltip relative to the pointer.
const (
	tooltipOffsetX = 10.0
	tooltipOffsetY = -10.0
)

// HitTester maps a horizontal pointer position back to a data index using
// the geometry of the last drawn frame.
type HitTester struct {
	Padding    float64
	ChartWidth float64
	N          int
}

// PointWidth returns the horizontal distance between neighboring points.
func (h HitTester) PointWidth() float64 {
	return h.ChartWidth / float64(max(h.N-1, 1))
}

// Index returns the index nearest to x, rounding halves up, and whether it
// lies within [0, N).
func (h HitTester) Index(x float64) (int, bool) {
	if h.N <= 0 {
		return 0, false
	}
	f := math.Floor((x-h.Padding)/h.PointWidth() + 0.5)
	if math.IsNaN(f) || f < 0 || f >= float64(h.N) {
		return 0, false
	}
	return int(f), true
}

// Tooltip is the pointer overlay state. It never influences drawing.
type Tooltip struct {
	Visible bool
	X, Y    float64
	Content string
}

// Anchor returns the top-left corner of the tooltip box.
func (t Tooltip) Anchor() (x, y float64) {
	return t.X + tooltipOffsetX, t.Y + tooltipOffsetY
}

// ValueFormatter renders a value for tooltip content.
type ValueFormatter func(v float64) string

// FormatValue renders v in its shortest form: 10, 2.5, 0.125. Magnitudes of
// 1e21 and above or below 1e-6 use exponent notation: 1e+21, 1e-7.
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if a := math.Abs(v); a == 0 || (a >= 1e-6 && a < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	s = strings.Replace(s, "e+0", "e+", 1)
	return strings.Replace(s, "e-0", "e-", 1)
}

// TooltipContent returns "{label}: {value}".
func TooltipContent(p DataPoint, format ValueFormatter) string {
	if format == nil {
		format = FormatValue
	}
	return p.Label + ": " + format(p.Value)
}
