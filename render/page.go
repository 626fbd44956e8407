// Package render provides the surfaces charts are drawn on: an HTML page
// driven by Chart.js, raw JSON configs, ECharts pages and PNG images.
package render

import (
	"errors"
	"fmt"
	"html/template"
	"io"

	"dashboard/chartjs"
	"dashboard/charts"
)

// ChartJSSrc is the Chart.js build the page loads by default.
const ChartJSSrc = "https://cdn.jsdelivr.net/npm/chart.js"

var (
	ErrDuplicateID      = errors.New("render: chart id already drawn")
	ErrDefaultsConflict = errors.New("render: chart defaults differ from page defaults")
	ErrEmptyPage        = errors.New("render: page has no charts")
)

type PageOption func(*Page)

func WithScriptSrc(src string) PageOption {
	return func(p *Page) {
		if src != "" {
			p.scriptSrc = src
		}
	}
}

// WithPageDefaults fixes the defaults the page applies. Without it the page
// takes them from the first chart drawn.
func WithPageDefaults(d chartjs.Defaults) PageOption {
	return func(p *Page) {
		p.defaults = &d
	}
}

// Page is an HTML document with one canvas per chart. Chart.defaults are
// written once at the top of the page script, as every chart on the page
// shares the same Chart.js instance.
type Page struct {
	title     string
	scriptSrc string
	defaults  *chartjs.Defaults
	charts    []*charts.Chart
	ids       map[string]struct{}
}

func NewPage(title string, opts ...PageOption) *Page {
	p := &Page{
		title:     title,
		scriptSrc: ChartJSSrc,
		ids:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Page) Draw(c *charts.Chart) error {
	if _, ok := p.ids[c.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
	}
	if p.defaults == nil {
		d := c.Defaults
		p.defaults = &d
	} else if *p.defaults != c.Defaults {
		return fmt.Errorf("%w: chart %s", ErrDefaultsConflict, c.ID)
	}
	p.ids[c.ID] = struct{}{}
	p.charts = append(p.charts, c)
	return nil
}

func (p *Page) Len() int {
	return len(p.charts)
}

// Render writes the page. A page without charts is an error.
func (p *Page) Render(w io.Writer) error {
	if len(p.charts) == 0 {
		return ErrEmptyPage
	}
	if err := pageTemplate.Execute(w, p.view()); err != nil {
		return fmt.Errorf("render: write page: %w", err)
	}
	return nil
}

type pageView struct {
	Title     string
	ScriptSrc string
	Defaults  chartjs.Defaults
	Charts    []pageChart
}

type pageChart struct {
	ID     string
	Config chartjs.Config
}

func (p *Page) view() pageView {
	v := pageView{
		Title:     p.title,
		ScriptSrc: p.scriptSrc,
		Defaults:  *p.defaults,
	}
	for _, c := range p.charts {
		v.Charts = append(v.Charts, pageChart{ID: c.ID, Config: c.Config})
	}
	return v
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.ScriptSrc}}"></script>
</head>
<body>
{{- range .Charts}}
<div class="chart"><canvas id="{{.ID}}"></canvas></div>
{{- end}}
<script>
Chart.defaults.font.family = {{.Defaults.Font.Family}};
Chart.defaults.font.size = {{.Defaults.Font.Size}};
Chart.defaults.color = {{.Defaults.Color}};
{{- range .Charts}}
new Chart(document.getElementById({{.ID}}), {{.Config}});
{{- end}}
</script>
</body>
</html>
`))
