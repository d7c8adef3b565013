// Package report announces policy outcomes to operators.
package report

import (
	"github.com/rs/zerolog"

	"github.com/hanayukiz/aifunny/internal/metrics"
	"github.com/hanayukiz/aifunny/internal/policy"
)

// Reporter implements a logger-backed announcer for decision switches.
type Reporter struct{ log zerolog.Logger }

// NewReporter wraps a zerolog logger for outcome announcements.
func NewReporter(log zerolog.Logger) *Reporter { return &Reporter{log: log} }

// Announce logs the outcome with its rationale and bumps the decision counter.
func (reporter *Reporter) Announce(out policy.Outcome) {
	metrics.DecisionsTotal.WithLabelValues(string(out.Action)).Inc()
	reporter.log.Info().
		Str("action", string(out.Action)).
		Str("decision", string(out.Decision)).
		Float64("self_delta", out.SelfDelta).
		Float64("env_delta", out.EnvDelta).
		Float64("combined", out.Combined).
		Str("rationale", out.Action.Rationale()).
		Msg("decision")
}
