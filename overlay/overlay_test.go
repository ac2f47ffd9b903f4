package overlay

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/ggchart"
)

func fixedMeasure(s string) float64 { return float64(len(s)) * 6 }

func entries(labels ...string) []ggchart.LegendEntry {
	out := make([]ggchart.LegendEntry, len(labels))
	for i, l := range labels {
		out[i] = ggchart.LegendEntry{LegendItem: ggchart.LegendItem{Label: l, Value: l}}
	}
	return out
}

func TestLayout_Rows(t *testing.T) {
	s := DefaultStyle()
	// Each item is 12 + 6 + 12 = 30 wide; two items plus spacing span 76.
	tests := []struct {
		pos ggchart.LegendPosition
		y   float64
	}{
		{ggchart.LegendTop, 8},
		{ggchart.LegendBottom, 200 - 8 - 16},
	}
	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			boxes := s.Layout(entries("ab", "cd"), tt.pos, 300, 200, fixedMeasure)
			if len(boxes) != 2 {
				t.Fatalf("boxes = %d, want 2", len(boxes))
			}
			if boxes[0].X != 112 || boxes[1].X != 158 {
				t.Errorf("x = %v, %v, want 112, 158", boxes[0].X, boxes[1].X)
			}
			for _, b := range boxes {
				if b.Y != tt.y || b.W != 30 || b.H != 16 {
					t.Errorf("box = %+v, want y %v and 30x16", b, tt.y)
				}
			}
		})
	}
}

func TestLayout_Columns(t *testing.T) {
	s := DefaultStyle()
	left := s.Layout(entries("a", "bbbb"), ggchart.LegendLeft, 300, 200, fixedMeasure)
	right := s.Layout(entries("a", "bbbb"), ggchart.LegendRight, 300, 200, fixedMeasure)

	// Two rows of 16 with 8 between them, centered in 200.
	if left[0].Y != 80 || left[1].Y != 104 {
		t.Errorf("left y = %v, %v, want 80, 104", left[0].Y, left[1].Y)
	}
	if left[0].X != 8 || left[1].X != 8 {
		t.Errorf("left x = %v, %v, want 8", left[0].X, left[1].X)
	}
	// The widest label is 12 + 6 + 24 = 42.
	if right[0].X != 250 || right[1].X != 250 {
		t.Errorf("right x = %v, %v, want 250", right[0].X, right[1].X)
	}
	if s.Layout(nil, ggchart.LegendTop, 300, 200, fixedMeasure) != nil {
		t.Error("empty legend should have no boxes")
	}
}

func TestAt(t *testing.T) {
	boxes := DefaultStyle().Layout(entries("ab", "cd"), ggchart.LegendTop, 300, 200, fixedMeasure)
	if e, ok := At(boxes, 160, 15); !ok || e.Value != "cd" {
		t.Errorf("At(160, 15) = %+v, %v", e, ok)
	}
	if _, ok := At(boxes, 150, 15); ok {
		t.Error("gap between items should miss")
	}
}

func newPainter(t *testing.T) *Painter {
	t.Helper()
	p, err := New()
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func seriesChart(t *testing.T, opts ...ggchart.Option) *ggchart.Chart {
	t.Helper()
	data := []ggchart.DataPoint{
		{Label: "Jan", Value: 10, Series: "a"},
		{Label: "Feb", Value: 20, Series: "a"},
		{Label: "Jan", Value: 15, Series: "b"},
		{Label: "Feb", Value: 5, Series: "b"},
	}
	c := ggchart.New(ggchart.NewStaticHost(300, 200, 1), append([]ggchart.Option{ggchart.WithData(data)}, opts...)...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCompose_NoFrame(t *testing.T) {
	p := newPainter(t)
	c := seriesChart(t)
	if _, err := p.Compose(c); !errors.Is(err, ggchart.ErrNoFrame) {
		t.Errorf("Compose() error = %v, want ErrNoFrame", err)
	}
}

func TestCompose_Tooltip(t *testing.T) {
	p := newPainter(t)
	c := seriesChart(t, ggchart.WithLegend(false))
	c.Render()
	c.PointerMove(150, 100)

	img, err := p.Compose(c)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 300, 200) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	// Just inside the tooltip box, which is filled with the opaque background.
	if _, _, _, a := img.At(163, 93).RGBA(); a != 0xffff {
		t.Errorf("tooltip alpha = %#x, want opaque", a)
	}
	// The chart's own frame is untouched.
	if _, _, _, a := c.Image().At(163, 93).RGBA(); a == 0xffff {
		t.Error("overlay was painted onto the chart surface")
	}
}

func TestClickLegend(t *testing.T) {
	p := newPainter(t)
	c := seriesChart(t, ggchart.WithLegendPosition(ggchart.LegendBottom))
	c.Render()

	boxes := p.Legend(c)
	if len(boxes) != 2 {
		t.Fatalf("legend boxes = %d, want 2", len(boxes))
	}
	b := boxes[0]
	if !p.ClickLegend(c, b.X+1, b.Y+1) {
		t.Fatal("ClickLegend() missed the first entry")
	}
	if !c.Hidden("a") || !c.Dirty() {
		t.Error("clicking the legend should hide series a and invalidate")
	}
	if boxes := p.Legend(c); !boxes[0].Entry.Hidden {
		t.Error("legend entry not shown as pressed")
	}
	if p.ClickLegend(c, 1, 1) {
		t.Error("click outside the legend should miss")
	}

	c.SetShowLegend(false)
	if p.Legend(c) != nil {
		t.Error("disabled legend should have no boxes")
	}
}
