// Package chartjs holds typed Chart.js configuration values.
// Field names and JSON tags follow the Chart.js configuration schema so a
// marshalled Config can be handed to `new Chart(ctx, config)` unchanged.
package chartjs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownKind    = errors.New("chartjs: unknown chart kind")
	ErrNoDatasets     = errors.New("chartjs: config has no datasets")
	ErrLengthMismatch = errors.New("chartjs: dataset length does not match labels")
)

// Kind is the chart type passed as `type`.
type Kind string

const (
	Bar   Kind = "bar"
	Pie   Kind = "pie"
	Line  Kind = "line"
	Radar Kind = "radar"
)

// Kinds lists every supported chart kind.
func Kinds() []Kind {
	return []Kind{Bar, Pie, Line, Radar}
}

func (k Kind) Valid() bool {
	switch k {
	case Bar, Pie, Line, Radar:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts a kind name in any case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

type Config struct {
	Type    Kind     `json:"type"`
	Data    Data     `json:"data"`
	Options *Options `json:"options,omitempty"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one named series plotted against Data.Labels.
// Optional style fields are pointers so that unset values are omitted and
// Chart.js falls back to its own defaults.
type Dataset struct {
	Label                string    `json:"label,omitempty"`
	Data                 []float64 `json:"data"`
	BackgroundColor      *Color    `json:"backgroundColor,omitempty"`
	BorderColor          *Color    `json:"borderColor,omitempty"`
	BorderWidth          int       `json:"borderWidth,omitempty"`
	BorderRadius         int       `json:"borderRadius,omitempty"`
	Fill                 *bool     `json:"fill,omitempty"`
	Tension              float64   `json:"tension,omitempty"`
	PointRadius          int       `json:"pointRadius,omitempty"`
	PointBackgroundColor *Color    `json:"pointBackgroundColor,omitempty"`
}

type Options struct {
	Responsive *bool            `json:"responsive,omitempty"`
	Scales     map[string]Scale `json:"scales,omitempty"`
}

// Scale configures one axis. Cartesian charts use the "y" key, radar charts
// use "r".
type Scale struct {
	BeginAtZero bool     `json:"beginAtZero,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

// Scale returns the scale configured under id, if any.
func (c Config) Scale(id string) (Scale, bool) {
	if c.Options == nil || c.Options.Scales == nil {
		return Scale{}, false
	}
	s, ok := c.Options.Scales[id]
	return s, ok
}

// Validate checks the structural invariants Chart.js relies on but does not
// enforce itself.
func (c Config) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, c.Type)
	}
	if len(c.Data.Datasets) == 0 {
		return ErrNoDatasets
	}
	for i, ds := range c.Data.Datasets {
		if len(ds.Data) != len(c.Data.Labels) {
			return fmt.Errorf("%w: dataset %d has %d values for %d labels",
				ErrLengthMismatch, i, len(ds.Data), len(c.Data.Labels))
		}
	}
	return nil
}

// Clone returns a deep copy so callers can adjust a config without touching
// the original.
func (c Config) Clone() Config {
	out := Config{Type: c.Type}
	out.Data.Labels = append([]string(nil), c.Data.Labels...)
	for _, ds := range c.Data.Datasets {
		cp := ds
		cp.Data = append([]float64(nil), ds.Data...)
		cp.BackgroundColor = ds.BackgroundColor.clone()
		cp.BorderColor = ds.BorderColor.clone()
		cp.PointBackgroundColor = ds.PointBackgroundColor.clone()
		if ds.Fill != nil {
			cp.Fill = Bool(*ds.Fill)
		}
		out.Data.Datasets = append(out.Data.Datasets, cp)
	}
	if c.Options != nil {
		opts := Options{}
		if c.Options.Responsive != nil {
			opts.Responsive = Bool(*c.Options.Responsive)
		}
		if c.Options.Scales != nil {
			opts.Scales = make(map[string]Scale, len(c.Options.Scales))
			for id, s := range c.Options.Scales {
				if s.Min != nil {
					s.Min = Float(*s.Min)
				}
				if s.Max != nil {
					s.Max = Float(*s.Max)
				}
				opts.Scales[id] = s
			}
		}
		out.Options = &opts
	}
	return out
}

func Bool(b bool) *bool {
	return &b
}

func Float(f float64) *float64 {
	return &f
}
