package ggchart

import (
	"slices"
)

// HiddenSeries is the set of series keys switched off through the legend.
// The zero value is an empty set ready to use.
type HiddenSeries struct {
	keys map[string]struct{}
}

// Toggle hides a visible key or shows a hidden one. It is the only mutation.
func (h *HiddenSeries) Toggle(key string) {
	if h.keys == nil {
		h.keys = make(map[string]struct{})
	}
	if _, ok := h.keys[key]; ok {
		delete(h.keys, key)
		return
	}
	h.keys[key] = struct{}{}
}

// Has reports whether key is hidden.
func (h *HiddenSeries) Has(key string) bool {
	if h == nil {
		return false
	}
	_, ok := h.keys[key]
	return ok
}

// Len returns the number of hidden keys.
func (h *HiddenSeries) Len() int {
	if h == nil {
		return 0
	}
	return len(h.keys)
}

// Keys returns the hidden keys in sorted order.
func (h *HiddenSeries) Keys() []string {
	if h == nil {
		return nil
	}
	keys := make([]string, 0, len(h.keys))
	for k := range h.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Visible reports whether p survives filtering: points without a series are
// always visible, others unless their series is hidden.
func (h *HiddenSeries) Visible(p DataPoint) bool {
	return p.Series == "" || !h.Has(p.Series)
}

// FilterVisible returns the visible subset of points in array order.
func FilterVisible(points []DataPoint, hidden *HiddenSeries) []DataPoint {
	out := make([]DataPoint, 0, len(points))
	for _, p := range points {
		if hidden.Visible(p) {
			out = append(out, p)
		}
	}
	return out
}

// LegendPosition places the legend overlay. It does not affect geometry.
type LegendPosition string

// Legend positions.
const (
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
)

// LegendEntry is one legend toggle affordance. Hidden is its pressed state.
type LegendEntry struct {
	LegendItem
	Hidden bool
}
