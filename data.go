package ggchart

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSeries is the synthetic series key for points without a Series.
const DefaultSeries = "default"

// ErrUnknownType is returned by ParseType for unsupported chart types.
var ErrUnknownType = errors.New("ggchart: unknown chart type")

// Type selects the series renderer.
type Type string

// Chart types.
const (
	TypeLine  Type = "line"
	TypeBar   Type = "bar"
	TypeArea  Type = "area"
	TypePie   Type = "pie"
	TypeDonut Type = "donut"
)

// Types lists every supported chart type in declaration order.
func Types() []Type {
	return []Type{TypeLine, TypeBar, TypeArea, TypePie, TypeDonut}
}

// ParseType converts a type name (case-insensitive) into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Types() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// DataPoint is one caller-supplied, already aggregated value.
//
// Series groups points into one trace; an empty Series means the point
// belongs to no series and is always visible. Color is carried for callers
// and legend overrides; renderers color by palette position.
type DataPoint struct {
	Label  string  `yaml:"label" json:"label"`
	Value  float64 `yaml:"value" json:"value"`
	Color  string  `yaml:"color,omitempty" json:"color,omitempty"`
	Series string  `yaml:"series,omitempty" json:"series,omitempty"`
}

// SeriesKey returns the grouping key of p.
func (p DataPoint) SeriesKey() string {
	if p.Series == "" {
		return DefaultSeries
	}
	return p.Series
}

// SeriesGroup is the ordered run of points sharing one series key.
// Indices holds each point's position in the slice the group was built from.
type SeriesGroup struct {
	Key     string
	Points  []DataPoint
	Indices []int
}

// GroupSeries groups points by series key. Groups appear in the order their
// key is first encountered and points keep their array order; that order
// drives palette assignment and left-to-right plotting.
func GroupSeries(points []DataPoint) []SeriesGroup {
	var groups []SeriesGroup
	pos := make(map[string]int)
	for i, p := range points {
		key := p.SeriesKey()
		g, ok := pos[key]
		if !ok {
			g = len(groups)
			pos[key] = g
			groups = append(groups, SeriesGroup{Key: key})
		}
		groups[g].Points = append(groups[g].Points, p)
		groups[g].Indices = append(groups[g].Indices, i)
	}
	return groups
}

// LegendItem is one legend entry. Value is the series key toggled by it.
type LegendItem struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Color string `yaml:"color" json:"color"`
}

// DeriveLegend builds one item per distinct series in first-seen order,
// colored by palette position. Data without any series yields a single
// synthetic "Data" item; empty data yields none.
func DeriveLegend(points []DataPoint, palette Palette) []LegendItem {
	var items []LegendItem
	seen := make(map[string]bool)
	for _, p := range points {
		if p.Series == "" || seen[p.Series] {
			continue
		}
		seen[p.Series] = true
		items = append(items, LegendItem{
			Label: p.Series,
			Value: p.Series,
			Color: palette.At(len(items)),
		})
	}
	if len(items) == 0 && len(points) > 0 {
		items = append(items, LegendItem{
			Label: "Data",
			Value: DefaultSeries,
			Color: palette.At(0),
		})
	}
	return items
}
