package plot

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"gridiron/internal/errors"
)

// ScatterRequest carries everything needed to draw one scatter chart with
// its fitted line. XS and YS must be the already-cleaned series, at least
// two points with at least two distinct x values.
type ScatterRequest struct {
	XS          []float64
	YS          []float64
	Slope       float64
	Intercept   float64
	Correlation float64
	XLabel      string
	YLabel      string
	Title       string
}

const (
	chartWidth  = 800
	chartHeight = 600
)

// dotAlpha approximates 70% opacity for the scatter points
const dotAlpha = 178

// RenderScatter draws the scatter points with a dashed contrasting line of
// best fit and a legend, and returns the encoded PNG. Every call renders
// into a fresh buffer; no drawing state survives between requests.
func RenderScatter(req ScatterRequest) ([]byte, error) {
	ch := chart.Chart{
		Title:  req.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: req.XLabel},
		YAxis: chart.YAxis{Name: req.YLabel, Range: yRange(req.YS)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Teams",
				XValues: req.XS,
				YValues: req.YS,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    chart.ColorBlue.WithAlpha(dotAlpha),
				},
			},
			fitLineSeries(req),
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to render scatter chart")
	}
	return buf.Bytes(), nil
}

// fitLineSeries spans the fitted line across the observed x extent, labeled
// with the correlation coefficient to three decimals.
func fitLineSeries(req ScatterRequest) chart.ContinuousSeries {
	minX, maxX := req.XS[0], req.XS[0]
	for _, x := range req.XS[1:] {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	return chart.ContinuousSeries{
		Name:    fmt.Sprintf("Line of Best Fit (r=%.3f)", req.Correlation),
		XValues: []float64{minX, maxX},
		YValues: []float64{req.Slope*minX + req.Intercept, req.Slope*maxX + req.Intercept},
		Style: chart.Style{
			StrokeColor:     chart.ColorRed,
			StrokeWidth:     2.0,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// yRange pads a flat y series so the renderer still has a drawable span.
// go-chart refuses a zero-height range, and a flat series is legitimate
// here (a constant metric still has a defined flat fit).
func yRange(ys []float64) chart.Range {
	minY, maxY := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if minY != maxY {
		return nil
	}
	return &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
}
