// Package dataset decodes chart documents.
//
// A document names a chart type, its data points and optional display
// flags. YAML and JSON are both accepted:
//
//	type: line
//	variant: primary
//	showGrid: false
//	data:
//	  - {label: Jan, value: 10, series: revenue}
//	  - {label: Feb, value: 20, series: revenue}
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
)

// ErrInvalidDocument is returned for documents that do not describe a chart.
var ErrInvalidDocument = errors.New("dataset: invalid document")

// Document is a decoded chart document. Unset flags keep chart defaults.
type Document struct {
	Type           string               `yaml:"type"`
	Data           []ggchart.DataPoint  `yaml:"data"`
	Colors         []string             `yaml:"colors"`
	Variant        string               `yaml:"variant"`
	Theme          string               `yaml:"theme"`
	ShowGrid       *bool                `yaml:"showGrid"`
	ShowLegend     *bool                `yaml:"showLegend"`
	ShowTooltip    *bool                `yaml:"showTooltip"`
	ShowAnimation  *bool                `yaml:"showAnimation"`
	LegendPosition string               `yaml:"legendPosition"`
	Legend         []ggchart.LegendItem `yaml:"legend"`
	Padding        *float64             `yaml:"padding"`
	Vars           map[string]string    `yaml:"vars"`
}

// Decode reads a document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	doc, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the enumerated fields of d.
func (d *Document) Validate() error {
	if d.Type != "" {
		if _, err := ggchart.ParseType(d.Type); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	if d.Variant != "" {
		if len(d.Colors) > 0 {
			return fmt.Errorf("%w: colors and variant are mutually exclusive", ErrInvalidDocument)
		}
		if _, ok := ggchart.VariantPalette(d.Variant); !ok {
			return fmt.Errorf("%w: unknown variant %q", ErrInvalidDocument, d.Variant)
		}
	}
	switch strings.ToLower(d.Theme) {
	case "", "light", "dark":
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidDocument, d.Theme)
	}
	switch ggchart.LegendPosition(d.LegendPosition) {
	case "", ggchart.LegendTop, ggchart.LegendBottom, ggchart.LegendLeft, ggchart.LegendRight:
	default:
		return fmt.Errorf("%w: unknown legend position %q", ErrInvalidDocument, d.LegendPosition)
	}
	for i, p := range d.Data {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return fmt.Errorf("%w: point %d (%q): non-finite value", ErrInvalidDocument, i, p.Label)
		}
	}
	if d.Padding != nil && *d.Padding < 0 {
		return fmt.Errorf("%w: negative padding", ErrInvalidDocument)
	}
	return nil
}

// Palette returns the palette selected by the document, or nil for the default.
func (d *Document) Palette() ggchart.Palette {
	if len(d.Colors) > 0 {
		return ggchart.Palette(d.Colors)
	}
	if p, ok := ggchart.VariantPalette(d.Variant); ok {
		return p
	}
	return nil
}

// ThemeTokens returns the document theme with its vars applied.
func (d *Document) ThemeTokens() ggchart.Theme {
	theme := ggchart.DefaultTheme()
	if strings.EqualFold(d.Theme, "dark") {
		theme = ggchart.DarkTheme()
	}
	for name, value := range d.Vars {
		theme = theme.With(name, value)
	}
	return theme
}

// Options converts the document into chart options.
func (d *Document) Options() []ggchart.Option {
	opts := []ggchart.Option{
		ggchart.WithData(d.Data),
		ggchart.WithTheme(d.ThemeTokens()),
	}
	if d.Type != "" {
		t, _ := ggchart.ParseType(d.Type)
		opts = append(opts, ggchart.WithType(t))
	}
	if p := d.Palette(); p != nil {
		opts = append(opts, ggchart.WithPalette(p))
	}
	if d.ShowGrid != nil {
		opts = append(opts, ggchart.WithGrid(*d.ShowGrid))
	}
	if d.ShowLegend != nil {
		opts = append(opts, ggchart.WithLegend(*d.ShowLegend))
	}
	if d.ShowTooltip != nil {
		opts = append(opts, ggchart.WithTooltip(*d.ShowTooltip))
	}
	if d.ShowAnimation != nil {
		opts = append(opts, ggchart.WithAnimation(*d.ShowAnimation))
	}
	if d.LegendPosition != "" {
		opts = append(opts, ggchart.WithLegendPosition(ggchart.LegendPosition(d.LegendPosition)))
	}
	if d.Legend != nil {
		opts = append(opts, ggchart.WithLegendItems(d.Legend))
	}
	if d.Padding != nil {
		opts = append(opts, ggchart.WithPadding(*d.Padding))
	}
	return opts
}
