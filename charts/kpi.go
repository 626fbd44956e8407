package charts

import "dashboard/chartjs"

const (
	KPILabel = "Usta KPI"

	// KPIMax is the top of the radial scale; KPI scores are percentages.
	KPIMax = 100
)

// KPIConfig builds a master's KPI radar chart, one axis per KPI dimension.
// Scores must lie in [0, KPIMax].
func KPIConfig(labels []string, values []float64) (chartjs.Config, error) {
	if err := validateBounded(labels, values, 0, KPIMax); err != nil {
		return chartjs.Config{}, err
	}
	labels, values = cloneSeries(labels, values)

	return chartjs.Config{
		Type: chartjs.Radar,
		Data: chartjs.Data{
			Labels: labels,
			Datasets: []chartjs.Dataset{{
				Label:                KPILabel,
				Data:                 values,
				BackgroundColor:      chartjs.Solid("rgba(13,110,253,0.2)"),
				BorderColor:          chartjs.Solid("#0d6efd"),
				BorderWidth:          2,
				PointBackgroundColor: chartjs.Solid("#0d6efd"),
			}},
		},
		Options: &chartjs.Options{
			Responsive: chartjs.Bool(true),
			Scales: map[string]chartjs.Scale{
				"r": {BeginAtZero: true, Max: chartjs.Float(KPIMax)},
			},
		},
	}, nil
}

func (f *Factory) KPIChart(s Surface, labels []string, values []float64) (*Chart, error) {
	return f.create(s, chartjs.Radar, func() (chartjs.Config, error) {
		return KPIConfig(labels, values)
	})
}
