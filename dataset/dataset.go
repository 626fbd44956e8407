// Package dataset reads the labels and values a chart is drawn from.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

var ErrUnknownFormat = errors.New("dataset: unknown format")

// Series is one chart's worth of input. Kind is optional and only used when
// the caller does not pick a chart kind itself.
type Series struct {
	Title  string    `json:"title,omitempty" yaml:"title,omitempty"`
	Kind   string    `json:"kind,omitempty" yaml:"kind,omitempty"`
	Labels []string  `json:"labels" yaml:"labels"`
	Values []float64 `json:"values" yaml:"values"`
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case JSON, YAML, CSV:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Load reads a series from path. An empty format means "by extension".
func Load(path string, format Format) (Series, error) {
	if format == "" {
		f, err := FormatOf(path)
		if err != nil {
			return Series{}, err
		}
		format = f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Series{}, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	s, err := Read(bytes.NewReader(data), format)
	if err != nil {
		return Series{}, fmt.Errorf("dataset: %s: %w", path, err)
	}
	if s.Title == "" {
		s.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

func Read(r io.Reader, format Format) (Series, error) {
	var s Series
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return Series{}, fmt.Errorf("decode json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return Series{}, fmt.Errorf("decode yaml: %w", err)
		}
	case CSV:
		return readCSV(r)
	default:
		return Series{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return s, nil
}

// readCSV takes label,value rows. The first row is a header only when its
// value cell is a plain word such as "orders"; a malformed number there is
// an error like on any other line.
func readCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return Series{}, fmt.Errorf("decode csv: %w", err)
	}
	s := Series{Labels: []string{}, Values: []float64{}}
	for i, row := range rows {
		cell := strings.TrimSpace(row[1])
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			if i == 0 && isHeaderWord(cell) {
				continue
			}
			return Series{}, fmt.Errorf("decode csv: line %d: value %q: %w", i+1, row[1], err)
		}
		s.Labels = append(s.Labels, row[0])
		s.Values = append(s.Values, v)
	}
	return s, nil
}

// isHeaderWord reports whether cell is a column name: letters, spaces,
// underscores and dashes, with no digits.
func isHeaderWord(cell string) bool {
	if cell == "" {
		return false
	}
	for _, r := range cell {
		if !unicode.IsLetter(r) && r != ' ' && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
