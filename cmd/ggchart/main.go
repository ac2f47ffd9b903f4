// Command ggchart renders a chart document to PNG.
//
// Usage:
//
//	ggchart -input sales.yaml -output sales.png
//	ggchart -input sales.yaml -all -output out/sales.png   # one file per chart type
//	ggchart -input sales.yaml -hide cost -hover 220,140
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/dataset"
	"github.com/gogpu/ggchart/overlay"
)

// job is one chart to render.
type job struct {
	doc    *dataset.Document
	typ    ggchart.Type
	output string
}

type settings struct {
	width, height float64
	ratio         float64
	hide          []string
	hover         *[2]float64
	locale        language.Tag
}

func main() {
	var (
		input   = flag.String("input", "", "chart document (YAML or JSON); empty renders a sample")
		output  = flag.String("output", "chart.png", "output file")
		width   = flag.Float64("width", 800, "logical width")
		height  = flag.Float64("height", 500, "logical height")
		ratio   = flag.Float64("dpr", 1, "device pixel ratio")
		typ     = flag.String("type", "", "chart type, overrides the document")
		all     = flag.Bool("all", false, "render every chart type")
		hide    = flag.String("hide", "", "comma-separated series to hide")
		hover   = flag.String("hover", "", "pointer position x,y for the tooltip")
		locale  = flag.String("locale", "", "BCP 47 tag for tooltip numbers, e.g. de")
		verbose = flag.Bool("v", false, "log frames to stderr")
	)
	flag.Parse()

	if *verbose {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, err := loadDocument(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	s := settings{width: *width, height: *height, ratio: *ratio}
	if *hide != "" {
		s.hide = strings.Split(*hide, ",")
	}
	if *hover != "" {
		p, err := parsePoint(*hover)
		if err != nil {
			log.Fatalf("Invalid -hover: %v", err)
		}
		s.hover = &p
	}
	if *locale != "" {
		tag, err := language.Parse(*locale)
		if err != nil {
			log.Fatalf("Invalid -locale: %v", err)
		}
		s.locale = tag
	}

	jobs, err := plan(doc, *typ, *all, *output)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return render(j, s)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	for _, j := range jobs {
		log.Printf("Chart saved to %s (%s, %gx%g @%gx)\n", j.output, j.typ, s.width, s.height, s.ratio)
	}
}

func loadDocument(path string) (*dataset.Document, error) {
	if path == "" {
		return dataset.Decode(strings.NewReader(sample))
	}
	return dataset.Load(path)
}

// plan expands the command line into render jobs.
func plan(doc *dataset.Document, typ string, all bool, output string) ([]job, error) {
	if all {
		ext := filepath.Ext(output)
		base := strings.TrimSuffix(output, ext)
		jobs := make([]job, 0, len(ggchart.Types()))
		for _, t := range ggchart.Types() {
			jobs = append(jobs, job{doc: doc, typ: t, output: fmt.Sprintf("%s-%s%s", base, t, ext)})
		}
		return jobs, nil
	}

	name := typ
	if name == "" {
		name = doc.Type
	}
	t := ggchart.TypeLine
	if name != "" {
		var err error
		if t, err = ggchart.ParseType(name); err != nil {
			return nil, err
		}
	}
	return []job{{doc: doc, typ: t, output: output}}, nil
}

func render(j job, s settings) error {
	opts := append(j.doc.Options(), ggchart.WithType(j.typ))
	if s.locale != language.Und {
		opts = append(opts, ggchart.WithValueFormatter(ggchart.LocaleFormatter(s.locale, 2)))
	}
	c := ggchart.New(ggchart.NewStaticHost(s.width, s.height, s.ratio), opts...)
	defer func() { _ = c.Close() }()

	for _, key := range s.hide {
		c.ToggleSeries(strings.TrimSpace(key))
	}
	c.Render()
	if s.hover != nil {
		c.PointerMove(s.hover[0], s.hover[1])
	}

	painter, err := overlay.New()
	if err != nil {
		return err
	}
	defer func() { _ = painter.Close() }()

	img, err := painter.Compose(c)
	if err != nil {
		return fmt.Errorf("%s: %w", j.typ, err)
	}

	f, err := os.Create(j.output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func parsePoint(s string) ([2]float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]float64{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return [2]float64{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{x, y}, nil
}

const sample = `
type: line
data:
  - {label: Jan, value: 12, series: revenue}
  - {label: Feb, value: 19, series: revenue}
  - {label: Mar, value: 15, series: revenue}
  - {label: Apr, value: 24, series: revenue}
  - {label: May, value: 28, series: revenue}
  - {label: Jan, value: 8, series: cost}
  - {label: Feb, value: 11, series: cost}
  - {label: Mar, value: 9, series: cost}
  - {label: Apr, value: 14, series: cost}
  - {label: May, value: 13, series: cost}
`
