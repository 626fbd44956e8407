package render

import (
	"encoding/json"
	"fmt"
	"io"

	"dashboard/chartjs"
	"dashboard/charts"
)

// Document is what the JSON surface writes for each chart: the Chart.js
// config ready for `new Chart(ctx, config)`, plus the defaults the caller
// should apply to Chart.defaults.
type Document struct {
	ID       string           `json:"id"`
	Defaults chartjs.Defaults `json:"defaults"`
	Config   chartjs.Config   `json:"config"`
}

// JSON writes one Document per drawn chart.
type JSON struct {
	enc *json.Encoder
}

func NewJSON(w io.Writer, indent bool) *JSON {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return &JSON{enc: enc}
}

func (j *JSON) Draw(c *charts.Chart) error {
	doc := Document{ID: c.ID, Defaults: c.Defaults, Config: c.Config}
	if err := j.enc.Encode(doc); err != nil {
		return fmt.Errorf("render: encode chart %s: %w", c.ID, err)
	}
	return nil
}

// Recorder keeps a snapshot of every drawn chart in memory. Later changes to
// a chart do not reach the recorded copy.
type Recorder struct {
	Charts []*charts.Chart
}

func (r *Recorder) Draw(c *charts.Chart) error {
	snap := *c
	snap.Config = c.Config.Clone()
	r.Charts = append(r.Charts, &snap)
	return nil
}

// Last returns the most recently drawn chart, or nil.
func (r *Recorder) Last() *charts.Chart {
	if len(r.Charts) == 0 {
		return nil
	}
	return r.Charts[len(r.Charts)-1]
}
