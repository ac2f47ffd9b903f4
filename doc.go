// Package ggchart renders 2D charts onto a gg raster surface.
//
// # Overview
//
// ggchart draws line, bar, area, pie and donut charts from a flat list of
// labeled values. Points may carry a series name; series are plotted as
// separate traces and can be hidden through the legend. Drawing goes
// through github.com/gogpu/gg, so the output is an ordinary image.Image.
//
// # Quick Start
//
//	host := ggchart.NewStaticHost(600, 400, 2)
//	c := ggchart.New(host,
//		ggchart.WithType(ggchart.TypeLine),
//		ggchart.WithData([]ggchart.DataPoint{
//			{Label: "Jan", Value: 10},
//			{Label: "Feb", Value: 20},
//		}),
//	)
//	defer c.Close()
//
//	c.Render()
//	_ = c.EncodePNG(w)
//
// # Redraws
//
// Every setter that changes drawn output marks the chart dirty. Render
// redraws the whole frame when dirty and does nothing otherwise. A frame
// always starts from a cleared surface, so rendering the same inputs twice
// yields identical pixels. Pointer events (PointerMove, PointerLeave) only
// update the tooltip state and never redraw.
//
// # Coordinate System
//
// All geometry is in logical pixels. The surface backing store is
// logical size times the host's device pixel ratio and is scaled so
// renderers never see device pixels:
//   - Origin (0,0) at top-left
//   - Y increases down
//   - Pie slices start at 12 o'clock and run clockwise
//
// # Overlays
//
// Tooltip and legend are exposed as state (Chart.Tooltip, Chart.Legend).
// Package overlay paints them over a rendered frame.
package ggchart
