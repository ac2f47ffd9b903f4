package ggchart

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Canvas is the path-drawing subset of *gg.Context used by renderers.
// Coordinates are logical pixels; device scaling is applied by the surface.
type Canvas interface {
	SetColor(c color.Color)
	SetLineWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)
	Fill() error
	Stroke() error
}

var _ Canvas = (*gg.Context)(nil)

// Frame carries everything a renderer needs for one draw pass.
type Frame struct {
	Width      float64 // logical surface width
	Height     float64 // logical surface height
	Points     []DataPoint
	Mapper     Mapper
	Colors     *ColorAssigner
	Background gg.RGBA
}

// Renderer draws one chart type. Draw returns one Mark per drawn point.
type Renderer interface {
	Draw(cv Canvas, f *Frame) []Mark
}

// RendererFor returns the renderer for t, or nil for an unknown type.
func RendererFor(t Type) Renderer {
	switch t {
	case TypeLine:
		return LineRenderer{}
	case TypeBar:
		return BarRenderer{}
	case TypeArea:
		return AreaRenderer{}
	case TypePie:
		return PieRenderer{}
	case TypeDonut:
		return DonutRenderer{}
	}
	return nil
}

// ShapeKind identifies the hit shape of a Mark.
type ShapeKind uint8

// Mark shapes.
const (
	ShapeCircle ShapeKind = iota
	ShapeRect
	ShapeWedge
)

// Mark is the position metadata of one drawn data point, in logical pixels.
//
// For circles X, Y is the center and R the radius. For rectangles X, Y is
// the top-left corner and W, H the size. For wedges X, Y is the pie center,
// R the outer radius, Inner the hole radius, and Start, Sweep the angles.
type Mark struct {
	Index  int // position in the visible points
	Series string
	Point  DataPoint
	Kind   ShapeKind

	X, Y, W, H   float64
	R, Inner     float64
	Start, Sweep float64
}

// Contains reports whether (x, y) falls inside the mark's shape.
func (m Mark) Contains(x, y float64) bool {
	switch m.Kind {
	case ShapeCircle:
		return math.Hypot(x-m.X, y-m.Y) <= m.R
	case ShapeRect:
		if m.W <= 0 || m.H < 0 {
			return false
		}
		return x >= m.X && x <= m.X+m.W && y >= m.Y && y <= m.Y+m.H
	case ShapeWedge:
		d := math.Hypot(x-m.X, y-m.Y)
		if d > m.R || d < m.Inner || m.Sweep == 0 {
			return false
		}
		start, sweep := m.Start, m.Sweep
		if sweep < 0 {
			start, sweep = start+sweep, -sweep
		}
		a := math.Atan2(y-m.Y, x-m.X) - start
		a = math.Mod(a, 2*math.Pi)
		if a < 0 {
			a += 2 * math.Pi
		}
		return a <= sweep || sweep >= 2*math.Pi
	}
	return false
}

// fill and stroke log raster failures and let the pass continue.
func fill(cv Canvas, what string) {
	if err := cv.Fill(); err != nil {
		Logger().Warn("ggchart: fill failed", slog.String("shape", what), slog.Any("err", err))
	}
}

func stroke(cv Canvas, what string) {
	if err := cv.Stroke(); err != nil {
		Logger().Warn("ggchart: stroke failed", slog.String("shape", what), slog.Any("err", err))
	}
}
