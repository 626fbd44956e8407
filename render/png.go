package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"dashboard/chartjs"
	"dashboard/charts"
)

var (
	ErrUnsupportedKind = errors.New("render: chart kind not supported by surface")
	ErrSurfaceUsed     = errors.New("render: surface already holds a chart")
	ErrTooFewPoints    = errors.New("render: not enough points to draw")
	ErrNegativeSlice   = errors.New("render: pie slice value is negative")
)

const (
	DefaultWidth  = 900
	DefaultHeight = 450
)

// PNG rasterises a single chart to w. Like a canvas, it holds exactly one
// chart; radar charts have no raster equivalent.
type PNG struct {
	w      io.Writer
	width  int
	height int
	used   bool
}

func NewPNG(w io.Writer, width, height int) *PNG {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &PNG{w: w, width: width, height: height}
}

func (p *PNG) Draw(c *charts.Chart) error {
	if p.used {
		return ErrSurfaceUsed
	}
	if len(c.Config.Data.Datasets) == 0 {
		return chartjs.ErrNoDatasets
	}

	var (
		r   interface{ Render(chart.RendererProvider, io.Writer) error }
		err error
	)
	switch c.Config.Type {
	case chartjs.Bar:
		r, err = p.bar(c)
	case chartjs.Pie:
		r, err = p.pie(c)
	case chartjs.Line:
		r, err = p.line(c)
	default:
		return fmt.Errorf("%w: %s as png", ErrUnsupportedKind, c.Config.Type)
	}
	if err != nil {
		return err
	}
	if err := r.Render(chart.PNG, p.w); err != nil {
		return fmt.Errorf("render: png %s: %w", c.ID, err)
	}
	p.used = true
	return nil
}

func textStyle(d chartjs.Defaults) chart.Style {
	st := chart.Style{FontSize: float64(d.Font.Size)}
	if col, err := parseColor(d.Color); err == nil {
		st.FontColor = col
	}
	return st
}

func colorAt(c *chartjs.Color, i int) (drawing.Color, error) {
	if c == nil {
		return chart.ColorTransparent, nil
	}
	return parseColor(c.At(i))
}

func upperBound(c chartjs.Config, axis string, values []float64) float64 {
	if s, ok := c.Scale(axis); ok && s.Max != nil {
		return *s.Max
	}
	hi := 0.0
	for _, v := range values {
		if v > hi {
			hi = v
		}
	}
	if hi == 0 {
		return 1
	}
	return hi
}

func lowerBound(c chartjs.Config, axis string, values []float64) float64 {
	s, _ := c.Scale(axis)
	if s.Min != nil {
		return *s.Min
	}
	lo := 0.0
	if s.BeginAtZero {
		return lo
	}
	for i, v := range values {
		if i == 0 || v < lo {
			lo = v
		}
	}
	return lo
}

func (p *PNG) bar(c *charts.Chart) (*chart.BarChart, error) {
	ds := c.Config.Data.Datasets[0]
	if len(ds.Data) == 0 {
		return nil, fmt.Errorf("%w: bar chart %s is empty", ErrTooFewPoints, c.ID)
	}
	bars := make([]chart.Value, 0, len(ds.Data))
	for i, v := range ds.Data {
		fill, err := colorAt(ds.BackgroundColor, i)
		if err != nil {
			return nil, err
		}
		stroke, err := colorAt(ds.BorderColor, i)
		if err != nil {
			return nil, err
		}
		bars = append(bars, chart.Value{
			Label: c.Config.Data.Labels[i],
			Value: v,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: stroke,
				StrokeWidth: float64(ds.BorderWidth),
			},
		})
	}
	text := textStyle(c.Defaults)
	return &chart.BarChart{
		Title:      ds.Label,
		TitleStyle: text,
		Width:      p.width,
		Height:     p.height,
		XAxis:      text,
		YAxis: chart.YAxis{
			Style: text,
			Range: &chart.ContinuousRange{
				Min: lowerBound(c.Config, "y", ds.Data),
				Max: upperBound(c.Config, "y", ds.Data),
			},
		},
		Bars: bars,
	}, nil
}

func (p *PNG) pie(c *charts.Chart) (*chart.PieChart, error) {
	ds := c.Config.Data.Datasets[0]
	total := 0.0
	slices := make([]chart.Value, 0, len(ds.Data))
	for i, v := range ds.Data {
		fill, err := colorAt(ds.BackgroundColor, i)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: pie chart %s, %q = %v", ErrNegativeSlice, c.ID, c.Config.Data.Labels[i], v)
		}
		total += v
		slices = append(slices, chart.Value{
			Label: c.Config.Data.Labels[i],
			Value: v,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: float64(ds.BorderWidth),
				FontSize:    float64(c.Defaults.Font.Size),
			},
		})
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: pie chart %s has no positive values", ErrTooFewPoints, c.ID)
	}
	return &chart.PieChart{
		Title:      ds.Label,
		TitleStyle: textStyle(c.Defaults),
		Width:      p.width,
		Height:     p.height,
		Values:     slices,
	}, nil
}

func (p *PNG) line(c *charts.Chart) (*chart.Chart, error) {
	ds := c.Config.Data.Datasets[0]
	if len(ds.Data) < 2 {
		return nil, fmt.Errorf("%w: line chart %s needs two points", ErrTooFewPoints, c.ID)
	}
	stroke, err := colorAt(ds.BorderColor, 0)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(ds.Data))
	ticks := make([]chart.Tick, len(ds.Data))
	for i := range ds.Data {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: c.Config.Data.Labels[i]}
	}
	series := chart.ContinuousSeries{
		Name:    ds.Label,
		XValues: xs,
		YValues: append([]float64(nil), ds.Data...),
		Style: chart.Style{
			StrokeColor: stroke,
			StrokeWidth: float64(ds.BorderWidth),
			DotColor:    stroke,
			DotWidth:    float64(ds.PointRadius),
		},
	}
	text := textStyle(c.Defaults)
	return &chart.Chart{
		Title:      ds.Label,
		TitleStyle: text,
		Width:      p.width,
		Height:     p.height,
		XAxis: chart.XAxis{
			Style: text,
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Style: text,
			Range: &chart.ContinuousRange{
				Min: lowerBound(c.Config, "y", ds.Data),
				Max: upperBound(c.Config, "y", ds.Data),
			},
		},
		Series: []chart.Series{series},
	}, nil
}
