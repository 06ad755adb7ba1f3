package stripstask

import (
	"testing"

	"github.com/ehcplan/ehcplan/internal/ehc"
)

// DeadlockHeuristic is a test-only fixed lookup table mapping state keys to
// heuristic values, including +Inf, used to exercise the infinite-heuristic
// pruning invariant deterministically without depending on GoalCountHeuristic
// ever actually producing +Inf on a reachable domain.
type DeadlockHeuristic struct {
	Values map[string]float64
}

func (h DeadlockHeuristic) Name() string { return "deadlock-table" }

func (h DeadlockHeuristic) Value(n *ehc.Node) float64 {
	if v, ok := h.Values[n.State.Key()]; ok {
		return v
	}
	return ehc.Inf()
}

func TestDeadlockHeuristic(t *testing.T) {
	task := BuildCorridor(2)
	root := task.InitialState()
	succs := task.Successors(root)
	if len(succs) != 1 {
		t.Fatalf("expected 1 successor from corridor s0, got %d", len(succs))
	}
	next := succs[0].State

	h := DeadlockHeuristic{Values: map[string]float64{
		root.Key(): 2,
		next.Key(): ehc.Inf(),
	}}

	if v := ehc.ValueOfState(h, root); v != 2 {
		t.Errorf("expected h(root)=2, got %v", v)
	}
	if v := ehc.ValueOfState(h, next); v != ehc.Inf() {
		t.Errorf("expected h(next)=+Inf, got %v", v)
	}

	unknown := task.Successors(next)
	if len(unknown) == 0 {
		t.Skip("corridor exhausted before reaching an unlisted state")
	}
	if v := ehc.ValueOfState(h, unknown[0].State); v != ehc.Inf() {
		t.Errorf("expected unlisted states to default to +Inf, got %v", v)
	}
}
