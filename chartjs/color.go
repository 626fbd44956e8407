package chartjs

import (
	"encoding/json"
	"errors"
)

// Color is a Chart.js color option: either one CSS color applied to the
// whole dataset, or a list indexed per data point.
type Color struct {
	one  string
	many []string
}

// Solid is a single color for every point of a dataset.
func Solid(c string) *Color {
	return &Color{one: c}
}

// Colors is a per-point color list. Chart.js indexes it by point position.
func Colors(cs ...string) *Color {
	return &Color{many: append([]string{}, cs...)}
}

// IsList reports whether the color is a per-point list.
func (c *Color) IsList() bool {
	return c != nil && c.many != nil
}

// Values returns the colors as a slice; a solid color yields one element.
func (c *Color) Values() []string {
	switch {
	case c == nil:
		return nil
	case c.many != nil:
		return append([]string(nil), c.many...)
	default:
		return []string{c.one}
	}
}

// At returns the color used for point i.
func (c *Color) At(i int) string {
	if c == nil {
		return ""
	}
	if c.many == nil {
		return c.one
	}
	if len(c.many) == 0 {
		return ""
	}
	return c.many[i%len(c.many)]
}

func (c *Color) clone() *Color {
	if c == nil {
		return nil
	}
	if c.many != nil {
		return Colors(c.many...)
	}
	return Solid(c.one)
}

func (c Color) MarshalJSON() ([]byte, error) {
	if c.many != nil {
		return json.Marshal(c.many)
	}
	return json.Marshal(c.one)
}

func (c *Color) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*c = Color{one: one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return errors.New("chartjs: color must be a string or a list of strings")
	}
	if many == nil {
		many = []string{}
	}
	*c = Color{many: many}
	return nil
}
