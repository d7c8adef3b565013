// Package signal standardizes payloads shared between sample feeds and the decision layer.
package signal

import "time"

const (
	// SourceSelf names the internal capability/progress proxy.
	SourceSelf = "q_self"
	// SourceEnv names the external pressure/opportunity proxy.
	SourceEnv = "q_env"
)

// Sample models a single scalar reading of one tracked source.
type Sample struct {
	Source string
	Value  float64
	Ts     time.Time
}

// History is an ordered, append-only series of readings for one source.
// It lives for a single run and is owned by the decision loop; it is not
// safe for concurrent use.
type History struct {
	source string
	values []float64
}

// NewHistory creates an empty history for the named source.
func NewHistory(source string) *History {
	return &History{source: source}
}

// Source returns the name this history tracks.
func (h *History) Source() string { return h.source }

// Append records one more reading.
func (h *History) Append(v float64) {
	h.values = append(h.values, v)
}

// Len reports the number of recorded readings.
func (h *History) Len() int { return len(h.values) }

// Values returns a copy of every recorded reading in arrival order.
func (h *History) Values() []float64 {
	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}

// Tail returns a copy of the most recent n readings. A non-positive n,
// or n larger than the history, yields the full series.
func (h *History) Tail(n int) []float64 {
	if n <= 0 || n >= len(h.values) {
		return h.Values()
	}
	out := make([]float64, n)
	copy(out, h.values[len(h.values)-n:])
	return out
}
