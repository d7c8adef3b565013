// Package guard debounces mode switches so one noisy evaluation cannot
// flip the active action.
package guard

import "github.com/hanayukiz/aifunny/internal/policy"

// Guard requires an action to repeat across consecutive evaluations
// before it becomes active. The run starts in OBSERVE.
type Guard struct {
	minConfirmations int
	current          policy.Action
	candidate        policy.Action
	streak           int
}

// New builds a guard. minConfirmations below 2 makes it a pass-through.
func New(minConfirmations int) *Guard {
	if minConfirmations < 1 {
		minConfirmations = 1
	}
	return &Guard{
		minConfirmations: minConfirmations,
		current:          policy.ActionObserve,
	}
}

// Active returns the currently admitted action.
func (g *Guard) Active() policy.Action { return g.current }

// Confirm feeds one evaluation result and returns the active action plus
// whether this call switched it.
func (g *Guard) Confirm(next policy.Action) (policy.Action, bool) {
	if next == g.current {
		g.candidate = ""
		g.streak = 0
		return g.current, false
	}
	if next == g.candidate {
		g.streak++
	} else {
		g.candidate = next
		g.streak = 1
	}
	if g.streak < g.minConfirmations {
		return g.current, false
	}
	g.current = g.candidate
	g.candidate = ""
	g.streak = 0
	return g.current, true
}
