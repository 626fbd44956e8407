package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dashboard/chartjs"
	"dashboard/charts"
)

func (a *app) defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the chart defaults and palette in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := struct {
				Defaults chartjs.Defaults `yaml:"defaults"`
				Palette  []string         `yaml:"palette"`
				Script   string           `yaml:"chartjs_src"`
			}{
				Defaults: chartjs.GlobalDefaults(),
				Palette:  a.cfg.Palette,
				Script:   a.cfg.ChartJSSrc,
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode defaults: %w", err)
			}
			return enc.Close()
		},
	}
}

var kindInfo = map[chartjs.Kind]struct {
	dataset string
	about   string
}{
	chartjs.Bar:   {charts.OrdersLabel, "order counts per category"},
	chartjs.Pie:   {"", "share of orders per service"},
	chartjs.Line:  {charts.DailyOrdersLabel, "orders per day"},
	chartjs.Radar: {charts.KPILabel, "master KPI profile, scores 0-100"},
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the chart kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tDATASET\tSHOWS")
			for _, k := range chartjs.Kinds() {
				info := kindInfo[k]
				label := info.dataset
				if label == "" {
					label = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k, label, info.about)
			}
			return tw.Flush()
		},
	}
}
