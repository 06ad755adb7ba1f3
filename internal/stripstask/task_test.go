package stripstask

import (
	"testing"

	"github.com/ehcplan/ehcplan/internal/ehc"
)

func TestBuildCorridor(t *testing.T) {
	task := BuildCorridor(3)

	if task.GoalReached(task.InitialState()) {
		t.Fatal("initial state must not already satisfy the goal")
	}

	succs := task.Successors(task.InitialState())
	if len(succs) != 1 {
		t.Fatalf("expected exactly one applicable operator from s0, got %d", len(succs))
	}
	if succs[0].Operator.Name() != "advance(0)" {
		t.Errorf("expected advance(0), got %s", succs[0].Operator.Name())
	}

	state := task.InitialState()
	for i := 0; i < 3; i++ {
		succs := task.Successors(state)
		if len(succs) != 1 {
			t.Fatalf("step %d: expected one successor, got %d", i, len(succs))
		}
		state = succs[0].State
	}
	if !task.GoalReached(state) {
		t.Fatal("expected goal reached after walking the full corridor")
	}
}

func TestBuildBlocksWorld(t *testing.T) {
	task := BuildBlocksWorld(3)

	if task.GoalReached(task.InitialState()) {
		t.Fatal("initial state (all on table) must not satisfy a tower goal")
	}

	succs := task.Successors(task.InitialState())
	if len(succs) == 0 {
		t.Fatal("expected at least one applicable stack operator from the initial state")
	}
	for _, s := range succs {
		if s.Operator.Name()[:5] != "stack" {
			t.Errorf("only stack operators should be applicable from the all-clear initial state, got %s", s.Operator.Name())
		}
	}
}

func TestGoalCountHeuristic(t *testing.T) {
	task := BuildCorridor(2)
	h := GoalCountHeuristic{Goal: task.Goal}

	root := ehc.MakeRoot(task.InitialState())
	if v := h.Value(root); v != 1 {
		t.Errorf("expected h=1 at a non-goal state with a single unmet goal fact, got %v", v)
	}
}
