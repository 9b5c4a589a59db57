package core

import "fmt"

// Series is an ordered pair of an axis (time, delay or range) and the values
// sampled on it. Both slices have equal length.
type Series struct {
	Axis   []float64
	Values []float64
}

// NewSeries validates that axis and values have equal length.
func NewSeries(axis, values []float64) (Series, error) {
	if len(axis) != len(values) {
		return Series{}, fmt.Errorf("core: series axis length %d != values length %d: %w",
			len(axis), len(values), ErrInvalidParameter)
	}

	return Series{Axis: axis, Values: values}, nil
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Values) }

// Peak returns the index, axis position and value of the largest value.
// It returns index -1 for an empty series.
func (s Series) Peak() (index int, at, value float64) {
	if len(s.Values) == 0 {
		return -1, 0, 0
	}

	index = 0
	value = s.Values[0]
	for i, v := range s.Values {
		if v > value {
			index = i
			value = v
		}
	}

	if index < len(s.Axis) {
		at = s.Axis[index]
	}

	return index, at, value
}
