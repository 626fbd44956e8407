// Package charts builds the dashboard's Chart.js charts: order counts as a
// bar chart, service share as a pie chart, daily orders as a line chart and
// a master's KPI profile as a radar chart.
//
// Every factory validates its input, builds a fresh chartjs.Config and hands
// the resulting Chart to a Surface, which does the actual rendering.
package charts

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dashboard/chartjs"
)

// Chart is one chart instance bound to a surface.
type Chart struct {
	ID       string
	Config   chartjs.Config
	Defaults chartjs.Defaults
}

// Surface is the drawing target a chart is bound to. A surface owns the
// rendering; the factory only hands over the configuration.
type Surface interface {
	Draw(c *Chart) error
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(c *Chart) error

func (f SurfaceFunc) Draw(c *Chart) error {
	return f(c)
}

type Option func(*Factory)

// WithDefaults pins the styling defaults instead of reading the
// process-wide ones on every call.
func WithDefaults(d chartjs.Defaults) Option {
	return func(f *Factory) {
		f.defaults = &d
	}
}

// WithPalette replaces the pie chart palette. An empty palette is ignored.
func WithPalette(p Palette) Option {
	return func(f *Factory) {
		if len(p) > 0 {
			f.palette = append(Palette(nil), p...)
		}
	}
}

// WithIDs sets the function used to name chart instances.
func WithIDs(fn func(kind chartjs.Kind) string) Option {
	return func(f *Factory) {
		if fn != nil {
			f.newID = fn
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(f *Factory) {
		f.log = l
	}
}

// Factory builds charts. It holds no per-chart state, so one Factory may be
// shared by any number of callers.
type Factory struct {
	defaults *chartjs.Defaults
	palette  Palette
	newID    func(kind chartjs.Kind) string
	log      zerolog.Logger
}

func New(opts ...Option) *Factory {
	f := &Factory{
		palette: append(Palette(nil), ServicePalette...),
		newID:   randomID,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func randomID(kind chartjs.Kind) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString()[:8])
}

// Defaults returns the styling defaults charts from this factory carry.
func (f *Factory) Defaults() chartjs.Defaults {
	if f.defaults != nil {
		return *f.defaults
	}
	return chartjs.GlobalDefaults()
}

func (f *Factory) Palette() Palette {
	return append(Palette(nil), f.palette...)
}

func (f *Factory) bind(s Surface, cfg chartjs.Config) (*Chart, error) {
	c := &Chart{
		ID:       f.newID(cfg.Type),
		Config:   cfg,
		Defaults: f.Defaults(),
	}
	if err := s.Draw(c); err != nil {
		f.log.Warn().Err(err).Str("kind", cfg.Type.String()).Str("id", c.ID).Msg("surface failed to draw chart")
		return nil, fmt.Errorf("charts: draw %s chart %s: %w", cfg.Type, c.ID, err)
	}
	f.log.Debug().
		Str("kind", cfg.Type.String()).
		Str("id", c.ID).
		Int("points", len(cfg.Data.Labels)).
		Msg("chart drawn")
	return c, nil
}

func (f *Factory) create(s Surface, kind chartjs.Kind, build func() (chartjs.Config, error)) (*Chart, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %s chart", ErrNilSurface, kind)
	}
	cfg, err := build()
	if err != nil {
		f.log.Warn().Err(err).Str("kind", kind.String()).Msg("rejected chart input")
		return nil, err
	}
	return f.bind(s, cfg)
}

var std = New()

// Default returns the factory behind the package-level Create functions.
// It follows the process-wide defaults set with chartjs.ApplyGlobalDefaults.
func Default() *Factory {
	return std
}

func CreateOrdersChart(s Surface, labels []string, values []float64) (*Chart, error) {
	return std.OrdersChart(s, labels, values)
}

func CreateServicePieChart(s Surface, labels []string, values []float64) (*Chart, error) {
	return std.ServicePieChart(s, labels, values)
}

func CreateOrdersLineChart(s Surface, labels []string, values []float64) (*Chart, error) {
	return std.OrdersLineChart(s, labels, values)
}

func CreateKPIChart(s Surface, labels []string, values []float64) (*Chart, error) {
	return std.KPIChart(s, labels, values)
}

// Create builds the chart for kind and draws it on s.
func (f *Factory) Create(kind chartjs.Kind, s Surface, labels []string, values []float64) (*Chart, error) {
	return f.create(s, kind, func() (chartjs.Config, error) {
		return f.Config(kind, labels, values)
	})
}

// Config builds the configuration for kind without binding it to a surface.
func (f *Factory) Config(kind chartjs.Kind, labels []string, values []float64) (chartjs.Config, error) {
	switch kind {
	case chartjs.Bar:
		return OrdersConfig(labels, values)
	case chartjs.Pie:
		return f.ServicePieConfig(labels, values)
	case chartjs.Line:
		return OrdersLineConfig(labels, values)
	case chartjs.Radar:
		return KPIConfig(labels, values)
	}
	return chartjs.Config{}, fmt.Errorf("%w: %q", chartjs.ErrUnknownKind, kind)
}
