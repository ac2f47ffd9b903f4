package ggchart

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.chartType != TypeLine || o.padding != DefaultPadding || o.legendPosition != LegendBottom {
		t.Errorf("defaults = type %q, padding %v, legend %q", o.chartType, o.padding, o.legendPosition)
	}
	if !o.showGrid || !o.showLegend || !o.showTooltip || !o.showAnimation {
		t.Error("all flags should default to on")
	}
	if !o.palette.Equal(DefaultPalette()) {
		t.Error("default palette mismatch")
	}
}

func TestOptions_IgnoreInvalid(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithPalette(nil),
		WithTheme(nil),
		WithPadding(-5),
		WithValueFormatter(nil),
	} {
		opt(&o)
	}
	if !o.palette.Equal(DefaultPalette()) || o.theme == nil || o.padding != DefaultPadding || o.format == nil {
		t.Errorf("invalid options were applied: %+v", o)
	}
}

func TestWithData_Copies(t *testing.T) {
	points := []DataPoint{{Label: "a", Value: 1}}
	c := New(NewStaticHost(100, 100, 1), WithData(points), WithPadding(10))
	t.Cleanup(func() { _ = c.Close() })

	points[0].Value = 99
	if got := c.Data()[0].Value; got != 1 {
		t.Errorf("chart data aliased caller slice: value = %v", got)
	}
	c.Render()
	if hit := c.HitTester(); hit.Padding != 10 || hit.ChartWidth != 80 {
		t.Errorf("hit tester = %+v, want padding 10", hit)
	}
}
