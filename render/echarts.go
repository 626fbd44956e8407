package render

import (
	"fmt"
	"io"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"dashboard/chartjs"
	"dashboard/charts"
)

// ECharts renders charts as an Apache ECharts page. Each drawn chart keeps
// its Chart.js colors and the font defaults it carries.
type ECharts struct {
	page   *components.Page
	width  string
	height string
	count  int
}

func NewECharts(title string, width, height int) *ECharts {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	page := components.NewPage()
	page.PageTitle = title
	return &ECharts{
		page:   page,
		width:  fmt.Sprintf("%dpx", width),
		height: fmt.Sprintf("%dpx", height),
	}
}

func (e *ECharts) Draw(c *charts.Chart) error {
	if len(c.Config.Data.Datasets) == 0 {
		return chartjs.ErrNoDatasets
	}
	global := []echarts.GlobalOpts{
		echarts.WithInitializationOpts(opts.Initialization{
			ChartID: c.ID,
			Width:   e.width,
			Height:  e.height,
		}),
		echarts.WithTitleOpts(opts.Title{
			Title: c.Config.Data.Datasets[0].Label,
			TitleStyle: &opts.TextStyle{
				Color:      c.Defaults.Color,
				FontSize:   c.Defaults.Font.Size,
				FontFamily: c.Defaults.Font.Family,
			},
		}),
		echarts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
			TextStyle: &opts.TextStyle{
				Color:      c.Defaults.Color,
				FontSize:   c.Defaults.Font.Size,
				FontFamily: c.Defaults.Font.Family,
			},
		}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}

	switch c.Config.Type {
	case chartjs.Bar:
		e.page.AddCharts(e.bar(c, global))
	case chartjs.Pie:
		e.page.AddCharts(e.pie(c, global))
	case chartjs.Line:
		e.page.AddCharts(e.line(c, global))
	case chartjs.Radar:
		e.page.AddCharts(e.radar(c, global))
	default:
		return fmt.Errorf("%w: %s as echarts", ErrUnsupportedKind, c.Config.Type)
	}
	e.count++
	return nil
}

func (e *ECharts) Len() int {
	return e.count
}

func (e *ECharts) Render(w io.Writer) error {
	if e.count == 0 {
		return ErrEmptyPage
	}
	if err := e.page.Render(w); err != nil {
		return fmt.Errorf("render: write echarts page: %w", err)
	}
	return nil
}

func yAxis(c chartjs.Config) opts.YAxis {
	y := opts.YAxis{}
	if s, ok := c.Scale("y"); ok {
		if s.BeginAtZero {
			y.Min = 0
		}
		if s.Min != nil {
			y.Min = *s.Min
		}
		if s.Max != nil {
			y.Max = *s.Max
		}
	}
	return y
}

func (e *ECharts) bar(c *charts.Chart, global []echarts.GlobalOpts) *echarts.Bar {
	ds := c.Config.Data.Datasets[0]
	items := make([]opts.BarData, 0, len(ds.Data))
	for _, v := range ds.Data {
		items = append(items, opts.BarData{Value: v})
	}
	bar := echarts.NewBar()
	bar.SetGlobalOptions(append(global,
		echarts.WithColorsOpts(opts.Colors{ds.BackgroundColor.At(0)}),
		echarts.WithYAxisOpts(yAxis(c.Config)),
	)...)
	bar.SetXAxis(c.Config.Data.Labels).AddSeries(ds.Label, items)
	return bar
}

func (e *ECharts) pie(c *charts.Chart, global []echarts.GlobalOpts) *echarts.Pie {
	ds := c.Config.Data.Datasets[0]
	items := make([]opts.PieData, 0, len(ds.Data))
	for i, v := range ds.Data {
		items = append(items, opts.PieData{Name: c.Config.Data.Labels[i], Value: v})
	}
	pie := echarts.NewPie()
	pie.SetGlobalOptions(append(global,
		echarts.WithColorsOpts(opts.Colors(ds.BackgroundColor.Values())),
	)...)
	pie.AddSeries(ds.Label, items).SetSeriesOptions(
		echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie
}

func (e *ECharts) line(c *charts.Chart, global []echarts.GlobalOpts) *echarts.Line {
	ds := c.Config.Data.Datasets[0]
	items := make([]opts.LineData, 0, len(ds.Data))
	for _, v := range ds.Data {
		items = append(items, opts.LineData{Value: v})
	}
	line := echarts.NewLine()
	line.SetGlobalOptions(append(global,
		echarts.WithColorsOpts(opts.Colors{ds.BorderColor.At(0)}),
		echarts.WithYAxisOpts(yAxis(c.Config)),
	)...)
	line.SetXAxis(c.Config.Data.Labels).AddSeries(ds.Label, items).SetSeriesOptions(
		echarts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(ds.Tension > 0),
			ShowSymbol: opts.Bool(ds.PointRadius > 0),
		}),
	)
	return line
}

func (e *ECharts) radar(c *charts.Chart, global []echarts.GlobalOpts) *echarts.Radar {
	ds := c.Config.Data.Datasets[0]
	hi := float32(charts.KPIMax)
	if s, ok := c.Config.Scale("r"); ok && s.Max != nil {
		hi = float32(*s.Max)
	}
	indicators := make([]*opts.Indicator, 0, len(c.Config.Data.Labels))
	for _, l := range c.Config.Data.Labels {
		indicators = append(indicators, &opts.Indicator{Name: l, Min: 0, Max: hi})
	}
	radar := echarts.NewRadar()
	radar.SetGlobalOptions(append(global,
		echarts.WithColorsOpts(opts.Colors{ds.BorderColor.At(0)}),
		echarts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}),
	)...)
	radar.AddSeries(ds.Label, []opts.RadarData{{Name: ds.Label, Value: ds.Data}})
	return radar
}
