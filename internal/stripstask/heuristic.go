package stripstask

import "github.com/ehcplan/ehcplan/internal/ehc"

// GoalCountHeuristic counts unsatisfied goal facts as a distance-to-goal
// estimate. It is admissible for unit-cost STRIPS tasks
// where every operator contributes at most one goal fact per step is not
// guaranteed, but it is a reasonable non-negative, zero-at-goal heuristic
// suitable for exercising the EHC family.
type GoalCountHeuristic struct {
	Goal []string
}

// Name satisfies ehc.Heuristic.
func (h GoalCountHeuristic) Name() string { return "goal-count" }

// Value satisfies ehc.Heuristic.
func (h GoalCountHeuristic) Value(n *ehc.Node) float64 {
	st := n.State.(State)
	unmet := 0
	for _, f := range h.Goal {
		if !st.Contains(f) {
			unmet++
		}
	}
	return float64(unmet)
}
