package charts

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNilSurface     = errors.New("charts: nil surface")
	ErrLengthMismatch = errors.New("charts: labels and values differ in length")
	ErrNonFinite      = errors.New("charts: value is not a finite number")
	ErrOutOfRange     = errors.New("charts: value outside scale range")
)

// ValueError reports the offending point of a series.
type ValueError struct {
	Index int
	Label string
	Value float64
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: point %d (%q) = %v", e.Err, e.Index, e.Label, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

func validateSeries(labels []string, values []float64) error {
	if len(labels) != len(values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLengthMismatch, len(labels), len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValueError{Index: i, Label: labels[i], Value: v, Err: ErrNonFinite}
		}
	}
	return nil
}

// validateBounded additionally requires every value to sit in [lo, hi].
func validateBounded(labels []string, values []float64, lo, hi float64) error {
	if err := validateSeries(labels, values); err != nil {
		return err
	}
	for i, v := range values {
		if v < lo || v > hi {
			return &ValueError{
				Index: i,
				Label: labels[i],
				Value: v,
				Err:   fmt.Errorf("%w [%v, %v]", ErrOutOfRange, lo, hi),
			}
		}
	}
	return nil
}

func cloneSeries(labels []string, values []float64) ([]string, []float64) {
	return append([]string{}, labels...), append([]float64{}, values...)
}
