package ehc_test

import (
	"testing"

	"github.com/ehcplan/ehcplan/internal/ehc"
	"github.com/ehcplan/ehcplan/internal/stripstask"
)

// fixedHeuristic assigns an explicit value per state key, standing in for
// a heuristic with genuine gradient values (rather than the binary
// GoalCountHeuristic a single-fact corridor goal produces) to reproduce
// spec.md §8's worked examples, which give h directly.
type fixedHeuristic map[string]float64

func (h fixedHeuristic) Name() string { return "fixed" }

func (h fixedHeuristic) Value(n *ehc.Node) float64 {
	if v, ok := h[n.State.Key()]; ok {
		return v
	}
	return ehc.Inf()
}

// TestPlateauThenDescent reproduces spec.md §8 scenario 3: S0(h=2) ->
// S1(h=2) -> S2(h=1) -> G(h=0). classic_ehc must take exactly two
// lookaheads: the first crosses the S0->S1 plateau to land on S2 (the
// first node BFS meets with h strictly less than the anchor's), the
// second finds G directly.
func TestPlateauThenDescent(t *testing.T) {
	task := stripstask.BuildCorridor(3)
	h := fixedHeuristic{
		"at(s0)": 2,
		"at(s1)": 2,
		"at(s2)": 1,
		"at(s3)": 0,
	}

	d := ehc.NewDriver("test-plateau", task, h, ehc.VariantConfig(ehc.ClassicEHC))
	plan, rec := d.Run()

	if plan == nil {
		t.Fatalf("expected a plan, got none (%s)", rec.ExitMessage)
	}
	if len(plan) != 3 {
		t.Errorf("expected a 3-step plan, got %d", len(plan))
	}
	if rec.LookaheadCount != 2 {
		t.Errorf("expected exactly 2 lookaheads (plateau crossing, then descent to goal), got %d", rec.LookaheadCount)
	}
}

// TestDeadEndExhausts reproduces the non-restarting half of spec.md §8
// scenario 4: from d0, the only operator leads to d1, whose only operator
// self-loops back to d1, and the goal is never reachable. classic_ehc has
// no dead-end cache or restart, so it must exhaust the frontier and fail
// rather than loop on the self-loop forever.
func TestDeadEndExhausts(t *testing.T) {
	task := stripstask.BuildDeadEndSpur()
	h := stripstask.GoalCountHeuristic{Goal: task.Goal}

	d := ehc.NewDriver("test-deadend-classic", task, h, ehc.VariantConfig(ehc.ClassicEHC))
	plan, rec := d.Run()

	if plan != nil {
		t.Fatalf("expected no plan against an unreachable goal, got %v", plan)
	}
	if rec.RestartCount != 0 {
		t.Errorf("classic_ehc does not restart, expected 0 restarts, got %d", rec.RestartCount)
	}
}

// TestDeadEndEpisodicRestartsThenFails reproduces the restart-based half
// of spec.md §8 scenario 4: episodic_ehc adds d0 to the dead-end cache on
// its first exhaust, restarts from root (which is d0 itself), finds root
// already cached, and terminates with failure after exactly one restart.
func TestDeadEndEpisodicRestartsThenFails(t *testing.T) {
	task := stripstask.BuildDeadEndSpur()
	h := stripstask.GoalCountHeuristic{Goal: task.Goal}

	d := ehc.NewDriver("test-deadend-episodic", task, h, ehc.VariantConfig(ehc.EpisodicEHC))
	plan, rec := d.Run()

	if plan != nil {
		t.Fatalf("expected no plan against an unreachable goal, got %v", plan)
	}
	if rec.RestartCount != 1 {
		t.Errorf("expected exactly 1 restart before root is detected as dead-end, got %d", rec.RestartCount)
	}
}
