package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"dashboard/chartjs"
	"dashboard/charts"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func stockFactory() *charts.Factory {
	return charts.New(charts.WithDefaults(chartjs.StockDefaults()))
}

func TestParseColor(t *testing.T) {
	cases := map[string]drawing.Color{
		"#0d6efd":                 {R: 0x0d, G: 0x6e, B: 0xfd, A: 255},
		"#333":                    {R: 0x33, G: 0x33, B: 0x33, A: 255},
		"rgba(33, 150, 243, 0.6)": {R: 33, G: 150, B: 243, A: 153},
		"rgba(13,110,253,0.2)":    {R: 13, G: 110, B: 253, A: 51},
		"rgb(1,2,3)":              {R: 1, G: 2, B: 3, A: 255},
	}
	for in, want := range cases {
		got, err := parseColor(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, bad := range []string{"blue", "#12", "rgba(1,2,3)", "rgb(300,0,0)", "rgba(1,2,3,2)"} {
		_, err := parseColor(bad)
		require.Error(t, err, bad)
	}
}

func TestPNGBarPieLine(t *testing.T) {
	f := stockFactory()
	draws := map[chartjs.Kind]func(charts.Surface) error{
		chartjs.Bar: func(s charts.Surface) error {
			_, err := f.OrdersChart(s, []string{"Mon", "Tue"}, []float64{3, 5})
			return err
		},
		chartjs.Pie: func(s charts.Surface) error {
			_, err := f.ServicePieChart(s, []string{"Repair", "Wash"}, []float64{10, 20})
			return err
		},
		chartjs.Line: func(s charts.Surface) error {
			_, err := f.OrdersLineChart(s, []string{"D1", "D2", "D3"}, []float64{1, 2, 1})
			return err
		},
	}
	for kind, draw := range draws {
		t.Run(kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			surf := NewPNG(&buf, 400, 300)
			require.NoError(t, draw(surf))
			require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

			require.ErrorIs(t, draw(surf), ErrSurfaceUsed, "a png surface holds one chart")
		})
	}
}

func TestPNGRejectsRadar(t *testing.T) {
	var buf bytes.Buffer
	_, err := stockFactory().KPIChart(NewPNG(&buf, 0, 0), []string{"Speed"}, []float64{50})
	require.ErrorIs(t, err, ErrUnsupportedKind)
	require.Zero(t, buf.Len())
}

func TestPNGTooFewPoints(t *testing.T) {
	f := stockFactory()

	_, err := f.OrdersLineChart(NewPNG(&bytes.Buffer{}, 0, 0), []string{"D1"}, []float64{1})
	require.ErrorIs(t, err, ErrTooFewPoints)

	_, err = f.ServicePieChart(NewPNG(&bytes.Buffer{}, 0, 0), []string{"a", "b"}, []float64{0, 0})
	require.ErrorIs(t, err, ErrTooFewPoints)

	_, err = f.OrdersChart(NewPNG(&bytes.Buffer{}, 0, 0), nil, nil)
	require.ErrorIs(t, err, ErrTooFewPoints)
}

func TestPNGRejectsNegativeSlice(t *testing.T) {
	var buf bytes.Buffer
	_, err := stockFactory().ServicePieChart(NewPNG(&buf, 0, 0), []string{"Repair", "Wash"}, []float64{5, -2})
	require.ErrorIs(t, err, ErrNegativeSlice)
	require.ErrorContains(t, err, "Wash")
	require.Zero(t, buf.Len())
}

func TestBounds(t *testing.T) {
	cfg, err := charts.OrdersConfig([]string{"a", "b"}, []float64{2, 7})
	require.NoError(t, err)
	require.Equal(t, 0.0, lowerBound(cfg, "y", []float64{2, 7}))
	require.Equal(t, 7.0, upperBound(cfg, "y", []float64{2, 7}))
	require.Equal(t, 1.0, upperBound(cfg, "y", []float64{0, 0}))

	kpi, err := charts.KPIConfig([]string{"a"}, []float64{20})
	require.NoError(t, err)
	require.Equal(t, 100.0, upperBound(kpi, "r", []float64{20}))

	pie, err := charts.ServicePieConfig([]string{"a", "b"}, []float64{4, 3})
	require.NoError(t, err)
	require.Equal(t, 3.0, lowerBound(pie, "y", []float64{4, 3}))
}

func TestEChartsPage(t *testing.T) {
	f := charts.New(
		charts.WithDefaults(chartjs.StockDefaults()),
		charts.WithIDs(func(k chartjs.Kind) string { return "ec-" + k.String() }),
	)
	page := NewECharts("Analytics", 0, 0)
	require.ErrorIs(t, page.Render(&bytes.Buffer{}), ErrEmptyPage)

	labels := []string{"Speed", "Quality"}
	values := []float64{80, 95}
	for _, kind := range chartjs.Kinds() {
		_, err := f.Create(kind, page, labels, values)
		require.NoError(t, err, kind)
	}
	require.Equal(t, 4, page.Len())

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	out := buf.String()
	for _, kind := range chartjs.Kinds() {
		require.Contains(t, out, "ec-"+kind.String())
	}
	require.Contains(t, out, charts.KPILabel)
	require.Contains(t, out, "Segoe UI")
}
