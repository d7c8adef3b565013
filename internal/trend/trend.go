// Package trend turns a signal history into a single scalar delta.
package trend

import (
	"errors"
	"sort"
	"strings"
)

// ErrInsufficientData indicates a history too short to define a trend.
var ErrInsufficientData = errors.New("insufficient data: trend requires at least two readings")

// Estimator maps an ordered series of readings to a trend delta.
type Estimator func(values []float64) (float64, error)

const (
	// ModeLastFirst measures the full-window change: last reading minus first.
	ModeLastFirst = "last_first"
	// ModeLastPrev measures the most recent step: last reading minus previous.
	ModeLastPrev = "last_prev"
	// ModeMedianDiff takes the median of successive differences, a cheap
	// robust slope proxy.
	ModeMedianDiff = "median_diff"
)

// LastFirst returns the difference between the newest and oldest readings.
func LastFirst(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientData
	}
	return values[len(values)-1] - values[0], nil
}

// LastPrev returns the most recent single-step difference.
func LastPrev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientData
	}
	return values[len(values)-1] - values[len(values)-2], nil
}

// MedianDiff returns the median of successive differences. Outlier steps
// do not dominate the estimate the way they do with LastPrev.
func MedianDiff(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientData
	}
	diffs := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		diffs = append(diffs, values[i]-values[i-1])
	}
	sort.Float64s(diffs)
	mid := len(diffs) / 2
	if len(diffs)%2 == 1 {
		return diffs[mid], nil
	}
	return (diffs[mid-1] + diffs[mid]) / 2, nil
}

// Build returns the estimator matching the configured mode.
func Build(mode string) Estimator {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeLastFirst:
		return LastFirst
	case ModeLastPrev:
		return LastPrev
	case "", ModeMedianDiff:
		return MedianDiff
	default:
		return MedianDiff
	}
}
