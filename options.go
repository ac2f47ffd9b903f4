package ggchart

import "slices"

// Option configures a Chart during creation.
//
// Example:
//
//	host := ggchart.NewStaticHost(600, 400, 2)
//	c := ggchart.New(host,
//		ggchart.WithType(ggchart.TypeBar),
//		ggchart.WithData(points),
//		ggchart.WithGrid(false),
//	)
type Option func(*options)

// options holds the chart inputs supplied by the caller.
type options struct {
	chartType      Type
	data           []DataPoint
	palette        Palette
	theme          Theme
	showGrid       bool
	showLegend     bool
	showTooltip    bool
	showAnimation  bool
	legendPosition LegendPosition
	legendItems    []LegendItem
	padding        float64
	format         ValueFormatter
	onClick        func(p DataPoint, index int)
}

// defaultOptions returns the default chart options.
func defaultOptions() options {
	return options{
		chartType:      TypeLine,
		palette:        DefaultPalette(),
		theme:          DefaultTheme(),
		showGrid:       true,
		showLegend:     true,
		showTooltip:    true,
		showAnimation:  true,
		legendPosition: LegendBottom,
		padding:        DefaultPadding,
		format:         FormatValue,
	}
}

// WithType selects the chart type. Unknown types draw no series.
func WithType(t Type) Option {
	return func(o *options) {
		o.chartType = t
	}
}

// WithData sets the data points. The slice is copied.
func WithData(points []DataPoint) Option {
	return func(o *options) {
		o.data = append([]DataPoint(nil), points...)
	}
}

// WithPalette overrides the color palette. An empty palette keeps the default.
func WithPalette(p Palette) Option {
	return func(o *options) {
		if len(p) > 0 {
			o.palette = append(Palette(nil), p...)
		}
	}
}

// WithTheme sets the custom properties that var(--name) palette entries
// and the donut hole color resolve against.
func WithTheme(t Theme) Option {
	return func(o *options) {
		if t != nil {
			o.theme = t
		}
	}
}

// WithGrid toggles the background grid.
func WithGrid(show bool) Option {
	return func(o *options) {
		o.showGrid = show
	}
}

// WithLegend toggles the legend overlay.
func WithLegend(show bool) Option {
	return func(o *options) {
		o.showLegend = show
	}
}

// WithTooltip toggles pointer tracking and the tooltip overlay.
func WithTooltip(show bool) Option {
	return func(o *options) {
		o.showTooltip = show
	}
}

// WithAnimation sets the animation flag.
//
// The flag is reserved: it is stored and a change triggers a redraw, but
// no transition timeline exists and frames are drawn in their final state.
func WithAnimation(show bool) Option {
	return func(o *options) {
		o.showAnimation = show
	}
}

// WithLegendPosition places the legend overlay. It never changes chart geometry.
func WithLegendPosition(p LegendPosition) Option {
	return func(o *options) {
		o.legendPosition = p
	}
}

// WithLegendItems replaces the derived legend with explicit items.
// A nil slice keeps derivation; an empty one hides every entry.
func WithLegendItems(items []LegendItem) Option {
	return func(o *options) {
		o.legendItems = slices.Clone(items)
	}
}

// WithPadding sets the inset between surface edge and plot area in
// logical pixels. Negative values are ignored.
func WithPadding(padding float64) Option {
	return func(o *options) {
		if padding >= 0 {
			o.padding = padding
		}
	}
}

// WithValueFormatter sets how values are rendered in tooltip content.
func WithValueFormatter(f ValueFormatter) Option {
	return func(o *options) {
		if f != nil {
			o.format = f
		}
	}
}

// WithDataPointClick registers the callback invoked by Chart.Click with the
// activated point and its index among the visible points.
func WithDataPointClick(fn func(p DataPoint, index int)) Option {
	return func(o *options) {
		o.onClick = fn
	}
}
