package ggchart

import (
	"math"
	"testing"
)

func TestNewDomain(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Domain
	}{
		{"positive", []float64{10, 20}, Domain{Min: 0, Max: 20, Range: 20}},
		{"negative", []float64{-5, 5}, Domain{Min: -5, Max: 5, Range: 10}},
		{"all negative", []float64{-4, -2}, Domain{Min: -4, Max: -2, Range: 2}},
		{"all zero", []float64{0, 0, 0}, Domain{Min: 0, Max: 0, Range: 1}},
		{"single", []float64{7}, Domain{Min: 0, Max: 7, Range: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := NewDomain(valuesToPoints(tt.values))
			if !ok {
				t.Fatal("NewDomain() not ok")
			}
			if d != tt.want {
				t.Errorf("NewDomain() = %+v, want %+v", d, tt.want)
			}
		})
	}
}

func TestNewDomain_Empty(t *testing.T) {
	if _, ok := NewDomain(nil); ok {
		t.Error("NewDomain(nil) ok = true, want false")
	}
	if _, ok := NewMapper(300, 300, DefaultPadding, nil); ok {
		t.Error("NewMapper(nil) ok = true, want false")
	}
}

func TestDomainBounds(t *testing.T) {
	inputs := [][]float64{
		{1, 2, 3},
		{-10, 0, 10},
		{5},
		{0.001, 1e9},
		{-3, -3},
	}
	for _, values := range inputs {
		d, _ := NewDomain(valuesToPoints(values))
		if d.Min > 0 {
			t.Errorf("%v: Min = %v, want <= 0", values, d.Min)
		}
		if d.Range == 0 {
			t.Errorf("%v: Range is zero", values)
		}
		for _, v := range values {
			if v < d.Min || v > d.Max {
				t.Errorf("%v: value %v outside [%v, %v]", values, v, d.Min, d.Max)
			}
		}
	}
}

func TestMapper_LineScenario(t *testing.T) {
	points := []DataPoint{{Label: "Jan", Value: 10}, {Label: "Feb", Value: 20}}
	m, ok := NewMapper(300, 300, DefaultPadding, points)
	if !ok {
		t.Fatal("NewMapper() not ok")
	}
	if m.ChartWidth != 220 || m.ChartHeight != 220 {
		t.Errorf("chart size = %vx%v, want 220x220", m.ChartWidth, m.ChartHeight)
	}
	if got := m.Y(10); got != 150 {
		t.Errorf("Y(10) = %v, want 150", got)
	}
	if got := m.Y(20); got != 40 {
		t.Errorf("Y(20) = %v, want 40", got)
	}
	if got := m.Y(0); got != m.Baseline() {
		t.Errorf("Y(0) = %v, want baseline %v", got, m.Baseline())
	}
	if got := m.X(0, 2); got != 40 {
		t.Errorf("X(0, 2) = %v, want 40", got)
	}
	if got := m.X(1, 2); got != 260 {
		t.Errorf("X(1, 2) = %v, want 260", got)
	}
}

func TestMapper_SinglePointSitsLeft(t *testing.T) {
	m, _ := NewMapper(300, 200, DefaultPadding, []DataPoint{{Value: 3}})
	if got := m.X(0, 1); got != m.Padding {
		t.Errorf("X(0, 1) = %v, want %v", got, m.Padding)
	}
	if got := m.Y(3); got != m.Padding {
		t.Errorf("Y(max) = %v, want top %v", got, m.Padding)
	}
}

func TestMapper_ZeroRangeIsFinite(t *testing.T) {
	m, _ := NewMapper(300, 300, DefaultPadding, []DataPoint{{Value: 0}, {Value: 0}})
	y := m.Y(0)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		t.Fatalf("Y(0) = %v, want finite", y)
	}
	if y != m.Baseline() {
		t.Errorf("Y(0) = %v, want baseline %v", y, m.Baseline())
	}
}

func valuesToPoints(values []float64) []DataPoint {
	points := make([]DataPoint, len(values))
	for i, v := range values {
		points[i] = DataPoint{Value: v}
	}
	return points
}
