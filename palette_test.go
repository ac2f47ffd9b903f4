package ggchart

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/internal/csscolor"
)

func TestPaletteAt(t *testing.T) {
	p := Palette{"a", "b", "c"}
	tests := []struct {
		i    int
		want string
	}{
		{0, "a"}, {2, "c"}, {3, "a"}, {7, "b"}, {-1, "c"},
	}
	for _, tt := range tests {
		if got := p.At(tt.i); got != tt.want {
			t.Errorf("At(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
	if got := Palette(nil).At(0); got != DefaultPalette()[0] {
		t.Errorf("empty palette At(0) = %q, want default", got)
	}
}

func TestColorAssigner_Cycles(t *testing.T) {
	a := NewColorAssigner(DefaultPalette(), DefaultTheme())
	if a.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", a.Len())
	}
	if a.Color(0) != a.Color(12) || a.Color(11) != a.Color(-1) {
		t.Error("colors do not cycle by palette length")
	}
	if a.Color(0) == a.Color(1) {
		t.Error("primary and secondary resolved to the same color")
	}
	if a.Color(0) == gg.Black {
		t.Error("primary did not resolve through the theme")
	}
}

func TestColorAssigner_InvalidIsBlack(t *testing.T) {
	a := NewColorAssigner(Palette{"not-a-color", "hsl(var(--missing))"}, DefaultTheme())
	for i := range 2 {
		if got := a.Color(i); got != gg.Black {
			t.Errorf("Color(%d) = %v, want black", i, got)
		}
	}
}

func TestColorAssigner_Translucent(t *testing.T) {
	tests := []struct {
		name  string
		color string
	}{
		{"hsl var", "hsl(var(--primary))"},
		{"hsl commas", "hsl(120, 50%, 50%)"},
		{"rgb", "rgb(10 20 30)"},
		{"named", "gray"},
		{"oklch", "oklch(0.5 0.18 275)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewColorAssigner(Palette{tt.color}, DefaultTheme())
			got := a.Translucent(0, 0.3)
			want := a.Color(0)
			if !approx(got.A, 0.3) {
				t.Errorf("alpha = %v, want 0.3", got.A)
			}
			if d := absDiff(got.R, want.R) + absDiff(got.G, want.G) + absDiff(got.B, want.B); d > 1e-6 {
				t.Errorf("rgb changed: got %v, want %v", got, want)
			}
		})
	}
}

func TestVariantPalettes(t *testing.T) {
	names := []string{"default", "primary", "secondary", "accent", "success", "warning", "error", "info", "outline", "ghost", "glass"}
	for _, name := range names {
		p, ok := VariantPalette(name)
		if !ok || len(p) != 10 {
			t.Errorf("VariantPalette(%q) = %d entries, %v", name, len(p), ok)
			continue
		}
		for _, s := range p {
			if _, err := csscolor.Parse(s, nil); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}
	}
	if _, ok := VariantPalette("neon"); ok {
		t.Error("VariantPalette(neon) ok = true")
	}

	p, _ := VariantPalette("default")
	p[0] = "changed"
	if q, _ := VariantPalette("default"); q[0] == "changed" {
		t.Error("VariantPalette returned shared storage")
	}
}

func TestDefaultPaletteResolves(t *testing.T) {
	for _, theme := range []Theme{DefaultTheme(), DarkTheme()} {
		for _, s := range DefaultPalette() {
			if _, err := csscolor.Parse(s, theme); err != nil {
				t.Errorf("%s: %v", s, err)
			}
		}
		if _, err := csscolor.Parse(backgroundColor, theme); err != nil {
			t.Errorf("background: %v", err)
		}
	}
}

func TestLocaleFormatter(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		v    float64
		want string
	}{
		{language.English, 1234.5, "1,234.5"},
		{language.German, 1234.5, "1.234,5"},
		{language.English, 2.0, "2"},
	}
	for _, tt := range tests {
		f := LocaleFormatter(tt.tag, 2)
		if got := f(tt.v); got != tt.want {
			t.Errorf("LocaleFormatter(%v)(%v) = %q, want %q", tt.tag, tt.v, got, tt.want)
		}
	}
	if got := TooltipContent(DataPoint{Label: "Q1", Value: 1234.5}, LocaleFormatter(language.German, 2)); got != "Q1: 1.234,5" {
		t.Errorf("TooltipContent() = %q", got)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
