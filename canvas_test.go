package ggchart

import (
	"image/color"
	"math"
	"testing"
)

// op is one recorded Canvas call.
type op struct {
	name string
	args []float64
	col  color.Color
}

// recordingCanvas is a Canvas that records every call.
type recordingCanvas struct {
	ops       []op
	fillErr   error
	strokeErr error
}

var _ Canvas = (*recordingCanvas)(nil)

func (r *recordingCanvas) rec(name string, args ...float64) {
	r.ops = append(r.ops, op{name: name, args: args})
}

func (r *recordingCanvas) SetColor(c color.Color) {
	r.ops = append(r.ops, op{name: "SetColor", col: c})
}
func (r *recordingCanvas) SetLineWidth(w float64)       { r.rec("SetLineWidth", w) }
func (r *recordingCanvas) MoveTo(x, y float64)          { r.rec("MoveTo", x, y) }
func (r *recordingCanvas) LineTo(x, y float64)          { r.rec("LineTo", x, y) }
func (r *recordingCanvas) ClosePath()                   { r.rec("ClosePath") }
func (r *recordingCanvas) DrawCircle(x, y, rad float64) { r.rec("DrawCircle", x, y, rad) }
func (r *recordingCanvas) DrawRectangle(x, y, w, h float64) {
	r.rec("DrawRectangle", x, y, w, h)
}
func (r *recordingCanvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.rec("CubicTo", c1x, c1y, c2x, c2y, x, y)
}

func (r *recordingCanvas) Fill() error {
	r.rec("Fill")
	return r.fillErr
}

func (r *recordingCanvas) Stroke() error {
	r.rec("Stroke")
	return r.strokeErr
}

// count returns how many calls named name were recorded.
func (r *recordingCanvas) count(name string) int {
	n := 0
	for _, o := range r.ops {
		if o.name == name {
			n++
		}
	}
	return n
}

// calls returns the recorded calls named name.
func (r *recordingCanvas) calls(name string) []op {
	var out []op
	for _, o := range r.ops {
		if o.name == name {
			out = append(out, o)
		}
	}
	return out
}

// colors returns the colors passed to SetColor in order.
func (r *recordingCanvas) colors() []color.Color {
	var out []color.Color
	for _, o := range r.calls("SetColor") {
		out = append(out, o.col)
	}
	return out
}

// testFrame builds a frame over points with the default padding, palette and theme.
func testFrame(t *testing.T, width, height float64, points []DataPoint) *Frame {
	t.Helper()
	m, ok := NewMapper(width, height, DefaultPadding, points)
	if !ok {
		t.Fatalf("NewMapper(%v points) not ok", len(points))
	}
	colors := NewColorAssigner(DefaultPalette(), DefaultTheme())
	return &Frame{
		Width:      width,
		Height:     height,
		Points:     points,
		Mapper:     m,
		Colors:     colors,
		Background: colors.Resolve(backgroundColor),
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
