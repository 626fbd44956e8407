package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dashboard/chartjs"
	"dashboard/charts"
	"dashboard/dataset"
	"dashboard/render"
)

type renderFlags struct {
	kind        string
	format      string
	inputFormat string
	out         string
	title       string
	id          string
	dryRun      bool
}

func (a *app) renderCmd() *cobra.Command {
	var fl renderFlags
	cmd := &cobra.Command{
		Use:   "render [flags] FILE...",
		Short: "Render charts from JSON, YAML or CSV series",
		Long: `Reads one series per FILE (labels and values) and draws it.

Formats:
  html     Chart.js page, one canvas per file
  json     Chart.js configs with the defaults to apply
  echarts  Apache ECharts page
  png      single image (bar, pie and line only)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(fl, args)
		},
	}
	cmd.Flags().StringVarP(&fl.kind, "kind", "k", "", "chart kind: bar, pie, line or radar (default: from the file)")
	cmd.Flags().StringVarP(&fl.format, "format", "f", "html", "output format: html, json, echarts or png")
	cmd.Flags().StringVar(&fl.inputFormat, "input-format", "", "input format: json, yaml or csv (default: by extension)")
	cmd.Flags().StringVarP(&fl.out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&fl.title, "title", "", "page title")
	cmd.Flags().StringVar(&fl.id, "id", "", "canvas id, only with a single FILE")
	cmd.Flags().BoolVar(&fl.dryRun, "dry-run", false, "validate and build the charts, log them, write nothing")
	return cmd
}

// target is a surface that is written out once every chart is drawn.
type target interface {
	charts.Surface
	flush(w io.Writer) error
}

type pageTarget struct{ *render.Page }

func (t pageTarget) flush(w io.Writer) error { return t.Render(w) }

type echartsTarget struct{ *render.ECharts }

func (t echartsTarget) flush(w io.Writer) error { return t.Render(w) }

// streamTarget surfaces write while drawing.
type streamTarget struct{ charts.Surface }

func (streamTarget) flush(io.Writer) error { return nil }

func (a *app) render(fl renderFlags, files []string) error {
	if fl.id != "" && len(files) > 1 {
		return errors.New("--id needs exactly one input file")
	}

	var inFormat dataset.Format
	if fl.inputFormat != "" {
		f, err := dataset.ParseFormat(fl.inputFormat)
		if err != nil {
			return err
		}
		inFormat = f
	}
	series := make([]dataset.Series, 0, len(files))
	for _, path := range files {
		s, err := dataset.Load(path, inFormat)
		if err != nil {
			return err
		}
		series = append(series, s)
	}

	title := fl.title
	if title == "" {
		title = series[0].Title
	}

	// Output is buffered so a failed render leaves no partial file behind.
	var buf bytes.Buffer
	var (
		t   target
		rec *render.Recorder
		err error
	)
	if t, err = a.target(strings.ToLower(fl.format), title, &buf, len(series)); err != nil {
		return err
	}
	if fl.dryRun {
		rec = &render.Recorder{}
		t = streamTarget{rec}
	}

	opts := []charts.Option{
		charts.WithPalette(charts.Palette(a.cfg.Palette)),
		charts.WithLogger(a.log),
	}
	if fl.id != "" {
		id := fl.id
		opts = append(opts, charts.WithIDs(func(chartjs.Kind) string { return id }))
	}
	f := charts.New(opts...)

	for i, s := range series {
		name := fl.kind
		if name == "" {
			name = s.Kind
		}
		if name == "" {
			return fmt.Errorf("%s: no chart kind, pass --kind", files[i])
		}
		kind, err := chartjs.ParseKind(name)
		if err != nil {
			return fmt.Errorf("%s: %w", files[i], err)
		}
		c, err := f.Create(kind, t, s.Labels, s.Values)
		if err != nil {
			return fmt.Errorf("%s: %w", files[i], err)
		}
		a.log.Info().Str("file", files[i]).Str("kind", kind.String()).Str("id", c.ID).Msg("chart built")
	}

	if rec != nil {
		for _, c := range rec.Charts {
			a.log.Info().
				Str("kind", c.Config.Type.String()).
				Str("id", c.ID).
				Int("points", len(c.Config.Data.Labels)).
				Msg("dry run, chart not written")
		}
		return nil
	}

	if err := t.flush(&buf); err != nil {
		return err
	}
	if fl.out == "" {
		_, err := buf.WriteTo(a.stdout)
		return err
	}
	if err := os.WriteFile(fl.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fl.out, err)
	}
	return nil
}

func (a *app) target(format, title string, w io.Writer, n int) (target, error) {
	switch format {
	case "html":
		return pageTarget{render.NewPage(title, render.WithScriptSrc(a.cfg.ChartJSSrc))}, nil
	case "json":
		return streamTarget{render.NewJSON(w, true)}, nil
	case "echarts":
		return echartsTarget{render.NewECharts(title, a.cfg.Output.Width, a.cfg.Output.Height)}, nil
	case "png":
		if n != 1 {
			return nil, errors.New("png output takes exactly one input file")
		}
		return streamTarget{render.NewPNG(w, a.cfg.Output.Width, a.cfg.Output.Height)}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
