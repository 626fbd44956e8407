package charts

import "dashboard/chartjs"

// ServicePieConfig builds the service share pie chart using the default
// palette.
func ServicePieConfig(labels []string, values []float64) (chartjs.Config, error) {
	return std.ServicePieConfig(labels, values)
}

// ServicePieConfig builds the service share pie chart. Slices are colored
// from the factory palette, repeating it when there are more services than
// colors.
func (f *Factory) ServicePieConfig(labels []string, values []float64) (chartjs.Config, error) {
	if err := validateSeries(labels, values); err != nil {
		return chartjs.Config{}, err
	}
	labels, values = cloneSeries(labels, values)

	return chartjs.Config{
		Type: chartjs.Pie,
		Data: chartjs.Data{
			Labels: labels,
			Datasets: []chartjs.Dataset{{
				Data:            values,
				BackgroundColor: chartjs.Colors(f.palette.Cycle(len(labels))...),
				BorderWidth:     2,
			}},
		},
	}, nil
}

func (f *Factory) ServicePieChart(s Surface, labels []string, values []float64) (*Chart, error) {
	return f.create(s, chartjs.Pie, func() (chartjs.Config, error) {
		return f.ServicePieConfig(labels, values)
	})
}
