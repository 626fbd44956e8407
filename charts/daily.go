package charts

import "dashboard/chartjs"

const DailyOrdersLabel = "Kunlik buyurtmalar"

// OrdersLineConfig builds the per-day order trend line chart.
func OrdersLineConfig(labels []string, values []float64) (chartjs.Config, error) {
	if err := validateSeries(labels, values); err != nil {
		return chartjs.Config{}, err
	}
	labels, values = cloneSeries(labels, values)

	return chartjs.Config{
		Type: chartjs.Line,
		Data: chartjs.Data{
			Labels: labels,
			Datasets: []chartjs.Dataset{{
				Label:       DailyOrdersLabel,
				Data:        values,
				Fill:        chartjs.Bool(false),
				BorderColor: chartjs.Solid("#198754"),
				BorderWidth: 3,
				Tension:     0.3,
				PointRadius: 5,
			}},
		},
		Options: &chartjs.Options{
			Responsive: chartjs.Bool(true),
			Scales: map[string]chartjs.Scale{
				"y": {BeginAtZero: true},
			},
		},
	}, nil
}

func (f *Factory) OrdersLineChart(s Surface, labels []string, values []float64) (*Chart, error) {
	return f.create(s, chartjs.Line, func() (chartjs.Config, error) {
		return OrdersLineConfig(labels, values)
	})
}
