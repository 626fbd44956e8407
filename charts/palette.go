package charts

// Palette is an ordered list of slice colors.
type Palette []string

// ServicePalette colors the service share pie chart.
var ServicePalette = Palette{
	"#0d6efd", // blue
	"#dc3545", // red
	"#ffc107", // amber
	"#198754", // green
	"#6f42c1", // purple
	"#fd7e14", // orange
}

// Cycle returns colors for n categories. Up to len(p) categories get the
// whole palette; beyond that the palette repeats, one color per category.
func (p Palette) Cycle(n int) []string {
	if len(p) == 0 {
		return nil
	}
	if n <= len(p) {
		return append([]string(nil), p...)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = p[i%len(p)]
	}
	return out
}
