package policy

import (
	"errors"
	"testing"

	"github.com/hanayukiz/aifunny/internal/signal"
	"github.com/hanayukiz/aifunny/internal/trend"
)

func histories(self, env []float64) (*signal.History, *signal.History) {
	sh := signal.NewHistory(signal.SourceSelf)
	for _, v := range self {
		sh.Append(v)
	}
	eh := signal.NewHistory(signal.SourceEnv)
	for _, v := range env {
		eh.Append(v)
	}
	return sh, eh
}

func TestCompareEnvironmentOutpacesSelf(t *testing.T) {
	// self_delta=0, env_delta=4, combined=-4 -> evolve.
	self, env := histories([]float64{1.0, 1.0}, []float64{1.0, 5.0})
	cmp := New(trend.LastFirst, DefaultBands())
	got, err := cmp.Compare(self, env)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if got != DecisionEvolveOrDie {
		t.Fatalf("expected EVOLVE_OR_DIE, got %s", got)
	}
}

func TestCompareSelfOutpacesEnvironment(t *testing.T) {
	// self_delta=4, env_delta=0, combined=4 -> observe and farm.
	self, env := histories([]float64{1.0, 5.0}, []float64{1.0, 1.0})
	cmp := New(trend.LastFirst, DefaultBands())
	got, err := cmp.Compare(self, env)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if got != DecisionObserveAndFarm {
		t.Fatalf("expected OBSERVE_AND_FARM, got %s", got)
	}
}

func TestCompareTieFavorsObservation(t *testing.T) {
	self, env := histories([]float64{2.0, 2.0}, []float64{2.0, 2.0})
	cmp := New(trend.LastFirst, DefaultBands())
	got, err := cmp.Compare(self, env)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if got != DecisionObserveAndFarm {
		t.Fatalf("expected OBSERVE_AND_FARM on tie, got %s", got)
	}
}

func TestCompareInsufficientData(t *testing.T) {
	self, env := histories([]float64{5.0}, []float64{1.0, 2.0})
	cmp := New(trend.LastFirst, DefaultBands())
	if _, err := cmp.Compare(self, env); !errors.Is(err, trend.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	// Order does not matter: the env side alone being short also fails.
	self, env = histories([]float64{1.0, 2.0}, []float64{5.0})
	if _, err := cmp.Compare(self, env); !errors.Is(err, trend.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for short env, got %v", err)
	}
}

func TestCompareIsDeterministicAndPure(t *testing.T) {
	self, env := histories([]float64{1, 2, 3}, []float64{1, 4, 9})
	cmp := New(trend.MedianDiff, DefaultBands())

	first, err := cmp.Compare(self, env)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := cmp.Compare(self, env)
		if err != nil {
			t.Fatalf("Compare returned error on repeat: %v", err)
		}
		if again != first {
			t.Fatalf("decision changed across identical calls: %s then %s", first, again)
		}
	}
	if self.Len() != 3 || env.Len() != 3 {
		t.Fatalf("Compare mutated its inputs: self=%d env=%d", self.Len(), env.Len())
	}
}

func TestEvaluateBands(t *testing.T) {
	cmp := New(trend.LastFirst, Bands{TauPos: 0.2, TauNeg: -0.2})

	cases := []struct {
		name string
		self []float64
		env  []float64
		want Action
	}{
		{"deep negative evolves", []float64{0, 0}, []float64{0, 1}, ActionEvolve},
		{"deep positive farms", []float64{0, 1}, []float64{0, 0}, ActionFarm},
		{"dead band observes", []float64{0, 0.1}, []float64{0, 0}, ActionObserve},
		{"zero observes", []float64{1, 1}, []float64{1, 1}, ActionObserve},
	}
	for _, tc := range cases {
		self, env := histories(tc.self, tc.env)
		out, err := cmp.Evaluate(self, env)
		if err != nil {
			t.Fatalf("%s: Evaluate returned error: %v", tc.name, err)
		}
		if out.Action != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, out.Action)
		}
	}
}

func TestEvaluateCarriesDecisionAndDeltas(t *testing.T) {
	self, env := histories([]float64{1.0, 1.0}, []float64{1.0, 5.0})
	cmp := New(trend.LastFirst, DefaultBands())
	out, err := cmp.Evaluate(self, env)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if out.SelfDelta != 0 || out.EnvDelta != 4 || out.Combined != -4 {
		t.Fatalf("unexpected deltas: %+v", out)
	}
	if out.Decision != DecisionEvolveOrDie || out.Action != ActionEvolve {
		t.Fatalf("unexpected verdicts: %+v", out)
	}
	if out.Reason == "" {
		t.Fatalf("expected a reason string")
	}
}

func TestEvaluateWindowLimitsLookback(t *testing.T) {
	// Full history falls, but the last two readings rise; a window of 2
	// must only see the rise.
	self, env := histories([]float64{10, 5, 6}, []float64{0, 0, 0})
	cmp := New(trend.LastFirst, DefaultBands(), WithWindow(2))
	out, err := cmp.Evaluate(self, env)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if out.SelfDelta != 1 {
		t.Fatalf("expected windowed self delta 1, got %.2f", out.SelfDelta)
	}
	if out.Action != ActionFarm {
		t.Fatalf("expected FARM_AND_OPTIMIZE, got %s", out.Action)
	}
}

func TestActionRationale(t *testing.T) {
	for _, a := range []Action{ActionEvolve, ActionObserve, ActionFarm} {
		if a.Rationale() == "" {
			t.Fatalf("expected rationale for %s", a)
		}
	}
}
