package charts

import "dashboard/chartjs"

const OrdersLabel = "Buyurtmalar soni"

// OrdersConfig builds the order count bar chart.
func OrdersConfig(labels []string, values []float64) (chartjs.Config, error) {
	if err := validateSeries(labels, values); err != nil {
		return chartjs.Config{}, err
	}
	labels, values = cloneSeries(labels, values)

	return chartjs.Config{
		Type: chartjs.Bar,
		Data: chartjs.Data{
			Labels: labels,
			Datasets: []chartjs.Dataset{{
				Label:           OrdersLabel,
				Data:            values,
				BackgroundColor: chartjs.Solid("rgba(33, 150, 243, 0.6)"),
				BorderColor:     chartjs.Solid("#0d6efd"),
				BorderWidth:     2,
				BorderRadius:    6,
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

// OrdersChart draws the order count bar chart on s.
func (f *Factory) OrdersChart(s Surface, labels []string, values []float64) (*Chart, error) {
	return f.create(s, chartjs.Bar, func() (chartjs.Config, error) {
		return OrdersConfig(labels, values)
	})
}
