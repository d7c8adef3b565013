// Package policy maps two signal histories onto a categorical decision.
package policy

import (
	"fmt"
	"time"

	"github.com/hanayukiz/aifunny/internal/signal"
	"github.com/hanayukiz/aifunny/internal/trend"
)

// Decision is the two-valued output of the core comparison rule.
type Decision string

const (
	// DecisionEvolveOrDie means the environment trend outpaces the self
	// trend; seek a novel strategy.
	DecisionEvolveOrDie Decision = "EVOLVE_OR_DIE"
	// DecisionObserveAndFarm means the self trend holds up; consolidate
	// and refine the current strategy.
	DecisionObserveAndFarm Decision = "OBSERVE_AND_FARM"
)

// Action is the three-valued output of the banded policy.
type Action string

const (
	// ActionEvolve prioritizes exploring a new hypothesis or pathway.
	ActionEvolve Action = "EVOLVE_OR_DIE"
	// ActionObserve probes safely while neither side dominates.
	ActionObserve Action = "OBSERVE"
	// ActionFarm leverages the current edge and harvests easy wins.
	ActionFarm Action = "FARM_AND_OPTIMIZE"
)

// Rationale returns the one-line justification announced with an action.
func (a Action) Rationale() string {
	switch a {
	case ActionEvolve:
		return "environment outpaces internal gains; pivot to a new hypothesis or skill pathway"
	case ActionFarm:
		return "leverage current edge; harvest and refine"
	default:
		return "neither side dominates; probe safely and watch for shifts"
	}
}

// Bands holds the dead-band thresholds for the three-way policy.
// A combined delta below TauNeg evolves, above TauPos farms, in between
// observes.
type Bands struct {
	TauPos float64
	TauNeg float64
}

// DefaultBands mirrors the original toy thresholds.
func DefaultBands() Bands { return Bands{TauPos: 0.2, TauNeg: -0.2} }

// Outcome captures everything a single evaluation produced.
type Outcome struct {
	SelfDelta float64   `json:"self_delta"`
	EnvDelta  float64   `json:"env_delta"`
	Combined  float64   `json:"combined"`
	Decision  Decision  `json:"decision"`
	Action    Action    `json:"action"`
	Reason    string    `json:"reason"`
	Ts        time.Time `json:"ts"`
}

// Comparator applies a trend estimator and band thresholds to a pair of
// histories. It holds no memory of past evaluations.
type Comparator struct {
	est    trend.Estimator
	bands  Bands
	window int
}

// Option configures Comparator construction.
type Option func(*Comparator)

// WithWindow caps how many trailing readings each evaluation sees.
// Zero means the full history.
func WithWindow(n int) Option {
	return func(c *Comparator) {
		if n >= 0 {
			c.window = n
		}
	}
}

// New builds a comparator. A nil estimator falls back to the default
// trend mode.
func New(est trend.Estimator, bands Bands, opts ...Option) *Comparator {
	if est == nil {
		est = trend.Build("")
	}
	c := &Comparator{est: est, bands: bands}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Comparator) deltas(self, env *signal.History) (float64, float64, error) {
	selfDelta, err := c.est(self.Tail(c.window))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", self.Source(), err)
	}
	envDelta, err := c.est(env.Tail(c.window))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", env.Source(), err)
	}
	return selfDelta, envDelta, nil
}

// Compare applies the core two-valued rule: a combined delta below zero
// evolves, anything at or above zero observes-and-farms. Inputs are
// never mutated; identical histories always yield the same Decision.
func (c *Comparator) Compare(self, env *signal.History) (Decision, error) {
	selfDelta, envDelta, err := c.deltas(self, env)
	if err != nil {
		return "", err
	}
	if selfDelta-envDelta < 0 {
		return DecisionEvolveOrDie, nil
	}
	return DecisionObserveAndFarm, nil
}

// Evaluate applies the banded three-way rule and returns a full Outcome,
// including the two-valued Decision for the same inputs.
func (c *Comparator) Evaluate(self, env *signal.History) (Outcome, error) {
	selfDelta, envDelta, err := c.deltas(self, env)
	if err != nil {
		return Outcome{}, err
	}
	combined := selfDelta - envDelta

	decision := DecisionObserveAndFarm
	if combined < 0 {
		decision = DecisionEvolveOrDie
	}

	action := ActionObserve
	switch {
	case combined < c.bands.TauNeg:
		action = ActionEvolve
	case combined > c.bands.TauPos:
		action = ActionFarm
	}

	return Outcome{
		SelfDelta: selfDelta,
		EnvDelta:  envDelta,
		Combined:  combined,
		Decision:  decision,
		Action:    action,
		Reason:    fmt.Sprintf("Δself=%+.3f Δenv=%+.3f combined=%+.3f", selfDelta, envDelta, combined),
		Ts:        time.Now(),
	}, nil
}
