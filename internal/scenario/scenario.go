// Package scenario holds hand-crafted input pairs with expected decisions.
package scenario

import (
	"errors"

	"github.com/hanayukiz/aifunny/internal/policy"
	"github.com/hanayukiz/aifunny/internal/signal"
	"github.com/hanayukiz/aifunny/internal/trend"
)

// Scenario pairs two input histories with the decision they must produce.
// WantErr marks cases expected to fail instead of deciding.
type Scenario struct {
	Name    string
	Self    []float64
	Env     []float64
	Want    policy.Decision
	WantErr bool
}

// Result reports one scenario run.
type Result struct {
	Name string
	Got  policy.Decision
	Want policy.Decision
	Err  error
	Pass bool
}

// Builtin returns the standing suite of puzzles.
func Builtin() []Scenario {
	return []Scenario{
		{Name: "flat self, rising env", Self: []float64{1.0, 1.0}, Env: []float64{1.0, 5.0}, Want: policy.DecisionEvolveOrDie},
		{Name: "rising self, flat env", Self: []float64{1.0, 5.0}, Env: []float64{1.0, 1.0}, Want: policy.DecisionObserveAndFarm},
		{Name: "both flat", Self: []float64{2.0, 2.0}, Env: []float64{2.0, 2.0}, Want: policy.DecisionObserveAndFarm},
		{Name: "matched climb", Self: []float64{0, 1, 2, 3}, Env: []float64{5, 6, 7, 8}, Want: policy.DecisionObserveAndFarm},
		{Name: "self falls behind accelerating env", Self: []float64{0, 0.1, 0.18, 0.25, 0.29}, Env: []float64{0, 0.12, 0.22, 0.31, 0.41}, Want: policy.DecisionEvolveOrDie},
		{Name: "self recovers faster", Self: []float64{10, 8, 9, 12}, Env: []float64{10, 9, 9, 10}, Want: policy.DecisionObserveAndFarm},
		{Name: "lone self reading", Self: []float64{5.0}, Env: []float64{1.0, 2.0}, WantErr: true},
		{Name: "lone env reading", Self: []float64{1.0, 2.0}, Env: []float64{7.0}, WantErr: true},
	}
}

// Run evaluates every scenario with the supplied estimator.
func Run(cases []Scenario, est trend.Estimator) []Result {
	cmp := policy.New(est, policy.DefaultBands())
	results := make([]Result, 0, len(cases))
	for _, sc := range cases {
		self := signal.NewHistory(signal.SourceSelf)
		for _, v := range sc.Self {
			self.Append(v)
		}
		env := signal.NewHistory(signal.SourceEnv)
		for _, v := range sc.Env {
			env.Append(v)
		}

		got, err := cmp.Compare(self, env)
		res := Result{Name: sc.Name, Got: got, Want: sc.Want, Err: err}
		if sc.WantErr {
			res.Pass = errors.Is(err, trend.ErrInsufficientData)
		} else {
			res.Pass = err == nil && got == sc.Want
		}
		results = append(results, res)
	}
	return results
}
