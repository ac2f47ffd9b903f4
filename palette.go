package ggchart

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/internal/csscolor"
)

// Theme maps CSS custom property names to values; see DefaultTheme.
type Theme = csscolor.Theme

// DefaultTheme returns the light theme used to resolve var() palette entries.
func DefaultTheme() Theme { return csscolor.DefaultTheme() }

// DarkTheme returns the dark theme.
func DarkTheme() Theme { return csscolor.DarkTheme() }

// Palette is an ordered list of CSS color strings cycled by index.
type Palette []string

// DefaultPalette returns the 12-entry theme palette.
func DefaultPalette() Palette {
	return Palette{
		"hsl(var(--primary))",
		"hsl(var(--secondary))",
		"hsl(var(--accent))",
		"hsl(var(--success))",
		"hsl(var(--warning))",
		"hsl(var(--destructive))",
		"hsl(var(--info))",
		"hsl(var(--chart-1))",
		"hsl(var(--chart-2))",
		"hsl(var(--chart-3))",
		"hsl(var(--chart-4))",
		"hsl(var(--chart-5))",
	}
}

// At returns p[i % len(p)]. An empty palette cycles the default palette.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		p = DefaultPalette()
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Equal reports whether p and q hold the same entries in the same order.
func (p Palette) Equal(q Palette) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

var variantPalettes = map[string]Palette{
	"default": {
		"oklch(0.50 0.18 275)", "oklch(0.50 0.15 145)", "oklch(0.50 0.15 250)",
		"oklch(0.55 0.25 340)", "oklch(0.55 0.12 185)", "oklch(0.60 0.15 65)",
		"oklch(0.50 0.20 25)", "oklch(0.58 0.18 300)", "oklch(0.55 0.15 110)",
		"oklch(0.50 0.18 220)",
	},
	"primary": {
		"oklch(0.50 0.23 270)", "oklch(0.55 0.25 340)", "oklch(0.50 0.15 250)",
		"oklch(0.55 0.12 185)", "oklch(0.58 0.18 300)", "oklch(0.60 0.15 65)",
		"oklch(0.50 0.18 220)", "oklch(0.55 0.20 290)", "oklch(0.52 0.15 240)",
		"oklch(0.58 0.10 260)",
	},
	"secondary": {
		"oklch(0.55 0.25 340)", "oklch(0.58 0.18 300)", "oklch(0.50 0.20 25)",
		"oklch(0.55 0.12 185)", "oklch(0.60 0.15 65)", "oklch(0.50 0.23 270)",
		"oklch(0.60 0.22 350)", "oklch(0.52 0.18 320)", "oklch(0.58 0.15 10)",
		"oklch(0.55 0.20 330)",
	},
	"accent": {
		"oklch(0.55 0.12 185)", "oklch(0.50 0.15 250)", "oklch(0.50 0.15 145)",
		"oklch(0.60 0.15 65)", "oklch(0.58 0.18 300)", "oklch(0.55 0.25 340)",
		"oklch(0.52 0.15 170)", "oklch(0.58 0.12 200)", "oklch(0.50 0.18 220)",
		"oklch(0.60 0.10 190)",
	},
	"success": {
		"oklch(0.50 0.15 145)", "oklch(0.55 0.12 185)", "oklch(0.50 0.18 275)",
		"oklch(0.60 0.15 65)", "oklch(0.50 0.15 250)", "oklch(0.55 0.18 130)",
		"oklch(0.58 0.10 160)", "oklch(0.52 0.12 110)", "oklch(0.55 0.20 155)",
		"oklch(0.60 0.08 170)",
	},
	"warning": {
		"oklch(0.60 0.15 65)", "oklch(0.65 0.18 85)", "oklch(0.50 0.20 25)",
		"oklch(0.50 0.15 250)", "oklch(0.55 0.25 340)", "oklch(0.62 0.18 55)",
		"oklch(0.58 0.20 45)", "oklch(0.68 0.15 95)", "oklch(0.55 0.18 35)",
		"oklch(0.60 0.12 75)",
	},
	"error": {
		"oklch(0.50 0.20 25)", "oklch(0.55 0.25 340)", "oklch(0.60 0.15 65)",
		"oklch(0.50 0.15 145)", "oklch(0.58 0.18 300)", "oklch(0.52 0.22 15)",
		"oklch(0.48 0.25 35)", "oklch(0.58 0.18 350)", "oklch(0.55 0.20 10)",
		"oklch(0.60 0.15 40)",
	},
	"info": {
		"oklch(0.50 0.15 250)", "oklch(0.55 0.12 185)", "oklch(0.58 0.18 300)",
		"oklch(0.60 0.15 65)", "oklch(0.50 0.15 145)", "oklch(0.52 0.18 220)",
		"oklch(0.48 0.18 260)", "oklch(0.58 0.10 240)", "oklch(0.55 0.15 210)",
		"oklch(0.60 0.08 230)",
	},
	"outline": {
		"oklch(0.35 0.02 270)", "oklch(0.45 0.02 340)", "oklch(0.55 0.02 145)",
		"oklch(0.65 0.02 65)", "oklch(0.25 0.02 185)", "oklch(0.40 0.02 250)",
		"oklch(0.50 0.02 25)", "oklch(0.60 0.02 300)", "oklch(0.30 0.02 110)",
		"oklch(0.70 0.02 220)",
	},
	"ghost": {
		"oklch(0.50 0.04 270)", "oklch(0.55 0.04 145)", "oklch(0.45 0.04 340)",
		"oklch(0.60 0.04 65)", "oklch(0.47 0.04 185)", "oklch(0.53 0.04 300)",
		"oklch(0.57 0.04 25)", "oklch(0.43 0.04 250)", "oklch(0.63 0.04 110)",
		"oklch(0.40 0.04 220)",
	},
	"glass": {
		"oklch(0.65 0.20 200 / 0.75)", "oklch(0.70 0.22 340 / 0.75)", "oklch(0.68 0.18 160 / 0.75)",
		"oklch(0.72 0.20 60 / 0.75)", "oklch(0.65 0.18 290 / 0.75)", "oklch(0.70 0.15 180 / 0.75)",
		"oklch(0.68 0.22 350 / 0.75)", "oklch(0.67 0.18 120 / 0.75)", "oklch(0.75 0.18 80 / 0.75)",
		"oklch(0.63 0.20 230 / 0.75)",
	},
}

// VariantPalette returns the named styling-variant palette ("default",
// "primary", "secondary", "accent", "success", "warning", "error", "info",
// "outline", "ghost", "glass"). The second result is false for unknown names.
func VariantPalette(name string) (Palette, bool) {
	p, ok := variantPalettes[name]
	if !ok {
		return nil, false
	}
	return append(Palette(nil), p...), true
}

// ColorAssigner maps palette indices to resolved colors. All entries are
// resolved once when the assigner is built, so lookups are deterministic and
// allocation free. Unparseable entries resolve to opaque black.
type ColorAssigner struct {
	palette  Palette
	theme    Theme
	resolved []gg.RGBA
}

// NewColorAssigner resolves palette against theme.
func NewColorAssigner(palette Palette, theme Theme) *ColorAssigner {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	a := &ColorAssigner{
		palette:  palette,
		theme:    theme,
		resolved: make([]gg.RGBA, len(palette)),
	}
	for i, s := range palette {
		a.resolved[i] = a.Resolve(s)
	}
	return a
}

// Len returns the palette length.
func (a *ColorAssigner) Len() int { return len(a.palette) }

// Name returns the palette string for index i (cycling).
func (a *ColorAssigner) Name(i int) string { return a.palette.At(i) }

// Color returns the resolved color for index i (cycling).
func (a *ColorAssigner) Color(i int) gg.RGBA {
	n := len(a.resolved)
	i %= n
	if i < 0 {
		i += n
	}
	return a.resolved[i]
}

// Translucent returns palette entry i with its alpha replaced by alpha.
// The color string is rewritten (hsl→hsla and friends) when its form allows,
// otherwise the alpha is applied to the resolved color.
func (a *ColorAssigner) Translucent(i int, alpha float64) gg.RGBA {
	if s, ok := csscolor.WithAlpha(a.Name(i), alpha); ok {
		return a.Resolve(s)
	}
	c := a.Color(i)
	c.A = alpha
	return c
}

// Resolve parses an arbitrary CSS color string against the assigner's theme.
func (a *ColorAssigner) Resolve(s string) gg.RGBA {
	c, err := csscolor.Parse(s, a.theme)
	if err != nil {
		Logger().Debug("ggchart: unresolved color, using black", slog.String("color", s), slog.Any("err", err))
		return gg.Black
	}
	return c
}
