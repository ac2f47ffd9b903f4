package overlay

import "github.com/gogpu/ggchart"

// Box is the placed rectangle of one legend toggle, in logical pixels.
type Box struct {
	Entry ggchart.LegendEntry
	X, Y  float64
	W, H  float64
}

// Contains reports whether (x, y) is inside the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Layout places legend entries along the edge named by pos on a surface
// of the given logical size. Rows (top, bottom) are centered horizontally;
// columns (left, right) are centered vertically. measure returns the width
// of a label.
func (s Style) Layout(entries []ggchart.LegendEntry, pos ggchart.LegendPosition, width, height float64, measure func(string) float64) []Box {
	if len(entries) == 0 {
		return nil
	}
	boxes := make([]Box, len(entries))
	for i, e := range entries {
		boxes[i] = Box{
			Entry: e,
			W:     s.Swatch + s.Gap + measure(e.Label),
			H:     s.ItemHeight,
		}
	}

	switch pos {
	case ggchart.LegendLeft, ggchart.LegendRight:
		colW := 0.0
		for _, b := range boxes {
			colW = max(colW, b.W)
		}
		total := float64(len(boxes))*s.ItemHeight + float64(len(boxes)-1)*s.Spacing/2
		x := s.Margin
		if pos == ggchart.LegendRight {
			x = width - s.Margin - colW
		}
		y := (height - total) / 2
		for i := range boxes {
			boxes[i].X, boxes[i].Y = x, y
			y += s.ItemHeight + s.Spacing/2
		}
	default:
		total := -s.Spacing
		for _, b := range boxes {
			total += b.W + s.Spacing
		}
		y := height - s.Margin - s.ItemHeight
		if pos == ggchart.LegendTop {
			y = s.Margin
		}
		x := (width - total) / 2
		for i := range boxes {
			boxes[i].X, boxes[i].Y = x, y
			x += boxes[i].W + s.Spacing
		}
	}
	return boxes
}

// At returns the legend entry whose box contains (x, y).
func At(boxes []Box, x, y float64) (ggchart.LegendEntry, bool) {
	for _, b := range boxes {
		if b.Contains(x, y) {
			return b.Entry, true
		}
	}
	return ggchart.LegendEntry{}, false
}
