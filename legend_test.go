package ggchart

import (
	"errors"
	"slices"
	"testing"
)

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(" " + string(typ) + " ")
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %q, %v", typ, got, err)
		}
	}
	if got, err := ParseType("DONUT"); err != nil || got != TypeDonut {
		t.Errorf("ParseType(DONUT) = %q, %v", got, err)
	}
	if _, err := ParseType("radar"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ParseType(radar) error = %v, want ErrUnknownType", err)
	}
}

func TestGroupSeries(t *testing.T) {
	points := []DataPoint{
		{Label: "1", Series: "b"},
		{Label: "2"},
		{Label: "3", Series: "a"},
		{Label: "4", Series: "b"},
		{Label: "5", Series: "default"},
	}
	groups := GroupSeries(points)

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	if want := []string{"b", "default", "a"}; !slices.Equal(keys, want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	if want := []int{0, 3}; !slices.Equal(groups[0].Indices, want) {
		t.Errorf("b indices = %v, want %v", groups[0].Indices, want)
	}
	if want := []int{1, 4}; !slices.Equal(groups[1].Indices, want) {
		t.Errorf("default indices = %v, want %v", groups[1].Indices, want)
	}
}

func TestDeriveLegend(t *testing.T) {
	palette := Palette{"red", "green"}
	tests := []struct {
		name   string
		points []DataPoint
		want   []LegendItem
	}{
		{
			name:   "series in first-seen order",
			points: []DataPoint{{Series: "b"}, {Series: "a"}, {Series: "b"}, {Series: "c"}},
			want: []LegendItem{
				{Label: "b", Value: "b", Color: "red"},
				{Label: "a", Value: "a", Color: "green"},
				{Label: "c", Value: "c", Color: "red"},
			},
		},
		{
			name:   "no series",
			points: []DataPoint{{Label: "x", Value: 1}},
			want:   []LegendItem{{Label: "Data", Value: DefaultSeries, Color: "red"}},
		},
		{
			name:   "empty",
			points: nil,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveLegend(tt.points, palette); !slices.Equal(got, tt.want) {
				t.Errorf("DeriveLegend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHiddenSeries_ToggleRoundTrip(t *testing.T) {
	var h HiddenSeries
	h.Toggle("x")
	before := h.Keys()

	h.Toggle("a")
	if !h.Has("a") {
		t.Fatal("a should be hidden after toggle")
	}
	h.Toggle("a")
	if h.Has("a") {
		t.Error("a should be visible after second toggle")
	}
	if after := h.Keys(); !slices.Equal(before, after) {
		t.Errorf("keys = %v, want %v", after, before)
	}
}

func TestHiddenSeries_Visible(t *testing.T) {
	var h HiddenSeries
	h.Toggle("a")
	h.Toggle(DefaultSeries)

	tests := []struct {
		p    DataPoint
		want bool
	}{
		{DataPoint{Series: "a"}, false},
		{DataPoint{Series: "b"}, true},
		{DataPoint{}, true},
	}
	for _, tt := range tests {
		if got := h.Visible(tt.p); got != tt.want {
			t.Errorf("Visible(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	var nilSet *HiddenSeries
	if !nilSet.Visible(DataPoint{Series: "a"}) {
		t.Error("nil set should hide nothing")
	}
	if nilSet.Len() != 0 || nilSet.Keys() != nil || nilSet.Has("a") {
		t.Error("nil set should report no keys")
	}
	if got := FilterVisible([]DataPoint{{Series: "a"}}, nil); len(got) != 1 {
		t.Errorf("FilterVisible(nil set) = %v", got)
	}
}

func TestFilterVisible_LegendScenario(t *testing.T) {
	points := []DataPoint{
		{Label: "a1", Value: 1, Series: "a"},
		{Label: "b1", Value: 5, Series: "b"},
		{Label: "a2", Value: 100, Series: "a"},
		{Label: "b2", Value: 7, Series: "b"},
	}
	var h HiddenSeries
	h.Toggle("a")

	visible := FilterVisible(points, &h)
	if len(visible) != 2 || visible[0].Label != "b1" || visible[1].Label != "b2" {
		t.Fatalf("visible = %v, want only series b", visible)
	}
	d, _ := NewDomain(visible)
	if d.Max != 7 {
		t.Errorf("domain max = %v, want 7 from series b only", d.Max)
	}
}
