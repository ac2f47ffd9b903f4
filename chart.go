package ggchart

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"maps"
	"slices"
)

// ErrNoFrame is returned when pixels are requested before any frame was drawn.
var ErrNoFrame = errors.New("ggchart: no frame rendered")

// backgroundColor fills the donut hole.
const backgroundColor = "hsl(var(--background))"

// Chart renders one chart onto its own Surface.
//
// Inputs are set through options and setters; every input that feeds the
// draw pass marks the chart dirty and the next Render redraws it in full.
// Pointer handling only updates the tooltip and never redraws.
//
// Chart is NOT safe for concurrent use. Each goroutine should own its chart.
type Chart struct {
	opts    options
	surface *Surface
	sched   Scheduler
	hidden  HiddenSeries
	colors  *ColorAssigner
	tooltip Tooltip

	// Geometry of the last drawn frame.
	visible []DataPoint
	hit     HitTester
	marks   []Mark

	closed bool
}

// New creates a chart drawing into host. The chart subscribes to host
// resizes when the host supports it and is dirty until its first Render.
func New(host Host, opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Chart{
		opts:    o,
		surface: NewSurface(host),
	}
	c.colors = NewColorAssigner(o.palette, o.theme)
	c.surface.Attach(func() { c.sched.Invalidate(ReasonResize) })
	c.sched.Invalidate(ReasonMount)
	return c
}

// Close releases the resize subscription and the drawing surface.
// Render is a no-op afterwards. Close is idempotent.
func (c *Chart) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.marks = nil
	return c.surface.Close()
}

// SetData replaces the data points.
func (c *Chart) SetData(points []DataPoint) {
	if slices.Equal(c.opts.data, points) {
		return
	}
	c.opts.data = append([]DataPoint(nil), points...)
	c.sched.Invalidate(ReasonData)
}

// Data returns a copy of the data points.
func (c *Chart) Data() []DataPoint {
	return append([]DataPoint(nil), c.opts.data...)
}

// SetType changes the chart type.
func (c *Chart) SetType(t Type) {
	if c.opts.chartType == t {
		return
	}
	c.opts.chartType = t
	c.sched.Invalidate(ReasonType)
}

// Type returns the chart type.
func (c *Chart) Type() Type { return c.opts.chartType }

// SetPalette replaces the palette. An empty palette selects the default.
func (c *Chart) SetPalette(p Palette) {
	if len(p) == 0 {
		p = DefaultPalette()
	}
	if c.opts.palette.Equal(p) {
		return
	}
	c.opts.palette = append(Palette(nil), p...)
	c.colors = NewColorAssigner(c.opts.palette, c.opts.theme)
	c.sched.Invalidate(ReasonPalette)
}

// Palette returns a copy of the palette.
func (c *Chart) Palette() Palette {
	return append(Palette(nil), c.opts.palette...)
}

// SetTheme replaces the theme palette entries resolve against.
func (c *Chart) SetTheme(t Theme) {
	if t == nil || maps.Equal(c.opts.theme, t) {
		return
	}
	c.opts.theme = t
	c.colors = NewColorAssigner(c.opts.palette, t)
	c.sched.Invalidate(ReasonPalette)
}

// SetShowGrid toggles the background grid.
func (c *Chart) SetShowGrid(show bool) {
	if c.opts.showGrid == show {
		return
	}
	c.opts.showGrid = show
	c.sched.Invalidate(ReasonGrid)
}

// SetShowAnimation sets the reserved animation flag. See WithAnimation.
func (c *Chart) SetShowAnimation(show bool) {
	if c.opts.showAnimation == show {
		return
	}
	c.opts.showAnimation = show
	c.sched.Invalidate(ReasonAnimation)
}

// SetShowTooltip toggles pointer tracking. Disabling hides the tooltip.
func (c *Chart) SetShowTooltip(show bool) {
	c.opts.showTooltip = show
	if !show {
		c.tooltip.Visible = false
	}
}

// SetShowLegend toggles the legend overlay.
func (c *Chart) SetShowLegend(show bool) { c.opts.showLegend = show }

// SetLegendPosition places the legend overlay.
func (c *Chart) SetLegendPosition(p LegendPosition) { c.opts.legendPosition = p }

// SetLegend replaces the derived legend with items. Nil restores derivation.
func (c *Chart) SetLegend(items []LegendItem) {
	c.opts.legendItems = slices.Clone(items)
}

// ShowGrid reports whether the grid is drawn.
func (c *Chart) ShowGrid() bool { return c.opts.showGrid }

// ShowAnimation reports the reserved animation flag.
func (c *Chart) ShowAnimation() bool { return c.opts.showAnimation }

// ShowTooltip reports whether the tooltip overlay is enabled.
func (c *Chart) ShowTooltip() bool { return c.opts.showTooltip }

// ShowLegend reports whether the legend overlay is enabled.
func (c *Chart) ShowLegend() bool { return c.opts.showLegend }

// LegendPosition returns the legend overlay placement.
func (c *Chart) LegendPosition() LegendPosition { return c.opts.legendPosition }

// ToggleSeries flips the visibility of the series key, as a legend click does.
func (c *Chart) ToggleSeries(key string) {
	c.hidden.Toggle(key)
	c.sched.Invalidate(ReasonVisible)
}

// Hidden reports whether the series key is hidden.
func (c *Chart) Hidden(key string) bool { return c.hidden.Has(key) }

// Legend returns the legend entries with their pressed state.
func (c *Chart) Legend() []LegendEntry {
	items := c.opts.legendItems
	if items == nil {
		items = DeriveLegend(c.opts.data, c.opts.palette)
	}
	entries := make([]LegendEntry, len(items))
	for i, it := range items {
		entries[i] = LegendEntry{LegendItem: it, Hidden: c.hidden.Has(it.Value)}
	}
	return entries
}

// Colors returns the resolved palette.
func (c *Chart) Colors() *ColorAssigner { return c.colors }

// SetHost moves the chart to host. The resize subscription follows it and
// the chart is redrawn on the next Render.
func (c *Chart) SetHost(host Host) {
	if c.closed {
		return
	}
	c.surface.SetHost(host)
}

// Surface returns the chart's drawing surface.
func (c *Chart) Surface() *Surface { return c.surface }

// Dirty reports whether the next Render will draw.
func (c *Chart) Dirty() bool { return c.sched.Dirty() }

// Frames returns how many frames have been rendered.
func (c *Chart) Frames() uint64 { return c.sched.Frames() }

// Redraw marks the chart dirty and renders it.
func (c *Chart) Redraw() bool {
	c.sched.Invalidate(ReasonRedraw)
	return c.Render()
}

// Render runs the draw pass if the chart is dirty and reports whether it did.
func (c *Chart) Render() bool {
	if c.closed {
		return false
	}
	reasons := c.sched.Pending()
	if !c.sched.Consume() {
		return false
	}
	c.draw(reasons)
	return true
}

// draw clears the surface and redraws everything from the current inputs.
func (c *Chart) draw(reasons []Reason) {
	c.visible, c.marks, c.hit = nil, nil, HitTester{}

	cv, ok := c.surface.Begin()
	if !ok {
		Logger().Debug("ggchart: no surface, frame skipped")
		return
	}

	visible := FilterVisible(c.opts.data, &c.hidden)
	width, height := c.surface.Size()
	m, ok := NewMapper(width, height, c.opts.padding, visible)
	if !ok {
		Logger().Debug("ggchart: no visible data, frame cleared")
		return
	}

	f := &Frame{
		Width:      width,
		Height:     height,
		Points:     visible,
		Mapper:     m,
		Colors:     c.colors,
		Background: c.colors.Resolve(backgroundColor),
	}

	if c.opts.showGrid {
		DrawGrid(cv, f)
	}

	var marks []Mark
	if r := RendererFor(c.opts.chartType); r != nil {
		marks = r.Draw(cv, f)
	} else {
		Logger().Warn("ggchart: no renderer for chart type", slog.String("type", string(c.opts.chartType)))
	}

	c.visible = visible
	c.marks = marks
	c.hit = HitTester{Padding: m.Padding, ChartWidth: m.ChartWidth, N: len(visible)}

	Logger().Debug("ggchart: frame",
		slog.String("type", string(c.opts.chartType)),
		slog.Int("points", len(visible)),
		slog.Float64("width", width),
		slog.Float64("height", height),
		slog.Float64("min", m.Domain.Min),
		slog.Float64("max", m.Domain.Max),
		slog.Any("reasons", reasons))
}

// PointerMove updates the tooltip for a pointer at (x, y) in logical pixels.
// The point nearest to x horizontally in the last frame is reported; outside
// the plotted range the tooltip is hidden.
func (c *Chart) PointerMove(x, y float64) {
	if !c.opts.showTooltip {
		return
	}
	i, ok := c.hit.Index(x)
	if !ok || i >= len(c.visible) {
		c.tooltip.Visible = false
		return
	}
	c.tooltip = Tooltip{
		Visible: true,
		X:       x,
		Y:       y,
		Content: TooltipContent(c.visible[i], c.opts.format),
	}
}

// PointerLeave hides the tooltip.
func (c *Chart) PointerLeave() {
	c.tooltip.Visible = false
}

// Tooltip returns the current tooltip state.
func (c *Chart) Tooltip() Tooltip { return c.tooltip }

// Click activates the topmost drawn point containing (x, y). It invokes the
// WithDataPointClick callback, if any, and returns the point and its index
// among the visible points.
func (c *Chart) Click(x, y float64) (DataPoint, int, bool) {
	for i := len(c.marks) - 1; i >= 0; i-- {
		m := c.marks[i]
		if !m.Contains(x, y) {
			continue
		}
		if c.opts.onClick != nil {
			c.opts.onClick(m.Point, m.Index)
		}
		return m.Point, m.Index, true
	}
	return DataPoint{}, 0, false
}

// Marks returns the position metadata of the last frame.
func (c *Chart) Marks() []Mark {
	return append([]Mark(nil), c.marks...)
}

// Visible returns the points plotted in the last frame.
func (c *Chart) Visible() []DataPoint {
	return append([]DataPoint(nil), c.visible...)
}

// HitTester returns the hit-testing geometry of the last frame.
func (c *Chart) HitTester() HitTester { return c.hit }

// Image returns the last frame at device resolution, or nil before the first frame.
func (c *Chart) Image() image.Image { return c.surface.Image() }

// EncodePNG writes the last frame as PNG.
func (c *Chart) EncodePNG(w io.Writer) error { return c.surface.EncodePNG(w) }
