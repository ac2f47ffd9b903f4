// Package overlay paints the tooltip and legend of a ggchart.Chart over
// its rendered frame.
//
// A chart exposes tooltip and legend only as state. Painter turns that
// state into pixels on a copy of the frame, so the chart surface itself is
// never written outside its draw pass.
package overlay

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggchart"
)

// Theme colors used by the overlays.
const (
	surfaceColor = "hsl(var(--background))"
	textColor    = "hsl(var(--foreground))"
	borderColor  = "hsl(var(--border))"
)

// Style holds overlay metrics in logical pixels.
type Style struct {
	FontSize      float64
	Swatch        float64 // legend color square
	Gap           float64 // swatch to label
	Spacing       float64 // between legend items
	ItemHeight    float64
	Margin        float64 // legend to surface edge
	TooltipPad    float64
	Radius        float64
	HiddenOpacity float64 // legend entries of hidden series
}

// DefaultStyle returns the default overlay metrics.
func DefaultStyle() Style {
	return Style{
		FontSize:      12,
		Swatch:        12,
		Gap:           6,
		Spacing:       16,
		ItemHeight:    16,
		Margin:        8,
		TooltipPad:    6,
		Radius:        4,
		HiddenOpacity: 0.5,
	}
}

// Option configures a Painter.
type Option func(*painterOptions)

type painterOptions struct {
	style Style
	font  []byte
}

// WithStyle replaces the overlay metrics.
func WithStyle(s Style) Option {
	return func(o *painterOptions) {
		o.style = s
	}
}

// WithFont sets the TrueType/OpenType font used for labels.
// The default is Go Regular.
func WithFont(ttf []byte) Option {
	return func(o *painterOptions) {
		if len(ttf) > 0 {
			o.font = ttf
		}
	}
}

// Painter draws chart overlays. A Painter may be shared by charts rendered
// on one goroutine; it is NOT safe for concurrent use.
type Painter struct {
	style  Style
	source *text.FontSource
	face   text.Face
}

// New creates a painter and loads its font.
func New(opts ...Option) (*Painter, error) {
	o := painterOptions{style: DefaultStyle(), font: goregular.TTF}
	for _, opt := range opts {
		opt(&o)
	}
	source, err := text.NewFontSource(o.font)
	if err != nil {
		return nil, fmt.Errorf("overlay: load font: %w", err)
	}
	return &Painter{
		style:  o.style,
		source: source,
		face:   source.Face(o.style.FontSize),
	}, nil
}

// Close releases the font.
func (p *Painter) Close() error {
	return p.source.Close()
}

// Style returns the painter's metrics.
func (p *Painter) Style() Style { return p.style }

// Measure returns the logical width of a label.
func (p *Painter) Measure(s string) float64 {
	w, _ := text.Measure(s, p.face)
	return w
}

// Legend lays out the chart's legend entries.
func (p *Painter) Legend(c *ggchart.Chart) []Box {
	if !c.ShowLegend() {
		return nil
	}
	w, h := c.Surface().Size()
	return p.style.Layout(c.Legend(), c.LegendPosition(), w, h, p.Measure)
}

// ClickLegend toggles the series whose legend entry is at (x, y).
// It reports whether an entry was hit.
func (p *Painter) ClickLegend(c *ggchart.Chart, x, y float64) bool {
	e, ok := At(p.Legend(c), x, y)
	if ok {
		c.ToggleSeries(e.Value)
	}
	return ok
}

// Compose returns the chart's last frame with the enabled overlays painted
// on top. It returns ggchart.ErrNoFrame before the chart has rendered.
func (p *Painter) Compose(c *ggchart.Chart) (image.Image, error) {
	frame := c.Image()
	if frame == nil {
		return nil, ggchart.ErrNoFrame
	}
	dc := gg.NewContextForImage(frame)
	defer func() { _ = dc.Close() }()

	ratio := c.Surface().Ratio()
	dc.Scale(ratio, ratio)
	dc.SetFont(p.face)

	colors := c.Colors()
	for _, b := range p.Legend(c) {
		p.drawLegendItem(dc, b, colors)
	}
	if tip := c.Tooltip(); c.ShowTooltip() && tip.Visible {
		p.drawTooltip(dc, tip, colors)
	}
	return dc.Image(), nil
}

func (p *Painter) drawLegendItem(dc *gg.Context, b Box, colors *ggchart.ColorAssigner) {
	alpha := 1.0
	if b.Entry.Hidden {
		alpha = p.style.HiddenOpacity
	}

	swatch := colors.Resolve(b.Entry.Color)
	swatch.A *= alpha
	dc.SetColor(swatch)
	dc.DrawRoundedRectangle(b.X, b.Y+(b.H-p.style.Swatch)/2, p.style.Swatch, p.style.Swatch, 2)
	fillOrLog(dc, "legend swatch")

	label := colors.Resolve(textColor)
	label.A *= alpha
	dc.SetColor(label)
	dc.DrawStringAnchored(b.Entry.Label, b.X+p.style.Swatch+p.style.Gap, b.Y+b.H/2, 0, 0.5)
}

func (p *Painter) drawTooltip(dc *gg.Context, tip ggchart.Tooltip, colors *ggchart.ColorAssigner) {
	x, y := tip.Anchor()
	pad := p.style.TooltipPad
	w := p.Measure(tip.Content) + 2*pad
	h := p.style.FontSize + 2*pad

	dc.SetColor(colors.Resolve(surfaceColor))
	dc.DrawRoundedRectangle(x, y, w, h, p.style.Radius)
	fillOrLog(dc, "tooltip")

	dc.SetColor(colors.Resolve(borderColor))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, w, h, p.style.Radius)
	if err := dc.Stroke(); err != nil {
		ggchart.Logger().Warn("overlay: stroke failed", slog.String("shape", "tooltip"), slog.Any("err", err))
	}

	dc.SetColor(colors.Resolve(textColor))
	dc.DrawStringAnchored(tip.Content, x+pad, y+h/2, 0, 0.5)
}

func fillOrLog(dc *gg.Context, what string) {
	if err := dc.Fill(); err != nil {
		ggchart.Logger().Warn("overlay: fill failed", slog.String("shape", what), slog.Any("err", err))
	}
}
