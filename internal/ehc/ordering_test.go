package ehc

import "testing"

type fakeTask struct {
	ops []Operator
}

func (f fakeTask) Name() string           { return "fake" }
func (f fakeTask) InitialState() State    { return fakeState("s0") }
func (f fakeTask) Operators() []Operator  { return f.ops }
func (f fakeTask) GoalReached(s State) bool { return false }
func (f fakeTask) Successors(s State) []Successor {
	succs := make([]Successor, len(f.ops))
	for i, op := range f.ops {
		succs[i] = Successor{Operator: op, State: s}
	}
	return succs
}

func TestTaskOrder(t *testing.T) {
	task := fakeTask{ops: []Operator{fakeOp("b"), fakeOp("a")}}
	ord := TaskOrder{}
	if ord.Learns() {
		t.Error("TaskOrder must not learn")
	}
	succs := ord.Order(task, fakeState("s0"))
	if succs[0].Operator.Name() != "b" || succs[1].Operator.Name() != "a" {
		t.Error("TaskOrder must preserve task-declared order")
	}
}

func TestLeastFailedFirst(t *testing.T) {
	task := fakeTask{ops: []Operator{fakeOp("x"), fakeOp("y"), fakeOp("z")}}

	t.Run("seeds every operator at weight 0", func(t *testing.T) {
		lff := NewLeastFailedFirst(task)
		for _, op := range task.ops {
			if w := lff.WeightOf(op); w != 0 {
				t.Errorf("expected initial weight 0 for %s, got %v", op.Name(), w)
			}
		}
	})

	t.Run("strict improvement applies no penalty", func(t *testing.T) {
		lff := NewLeastFailedFirst(task)
		lff.Update(5, 2, fakeOp("x"))
		if w := lff.WeightOf(fakeOp("x")); w != 0 {
			t.Errorf("expected unchanged weight after strict improvement, got %v", w)
		}
	})

	t.Run("plateau and regression are penalized", func(t *testing.T) {
		lff := NewLeastFailedFirst(task)
		lff.Update(3, 3, fakeOp("y")) // plateau: h_p == h_s
		if w := lff.WeightOf(fakeOp("y")); w != 1 {
			t.Errorf("expected weight -(3-3-1) = 1, got %v", w)
		}

		lff2 := NewLeastFailedFirst(task)
		lff2.Update(2, 5, fakeOp("z")) // regression: h_p < h_s
		if w := lff2.WeightOf(fakeOp("z")); w != -2 {
			t.Errorf("expected weight -(5-2-1) = -2, got %v", w)
		}
	})

	t.Run("Order prefers higher weight, ties broken by name", func(t *testing.T) {
		lff := NewLeastFailedFirst(task)
		lff.Update(1, 1, fakeOp("x")) // penalized: weight -1
		// y and z stay at weight 0

		ordered := lff.Order(task, fakeState("s0"))
		names := make([]string, len(ordered))
		for i, s := range ordered {
			names[i] = s.Operator.Name()
		}
		want := []string{"y", "z", "x"}
		for i, n := range want {
			if names[i] != n {
				t.Errorf("Order()[%d] = %s, want %s (got %v)", i, names[i], n, names)
			}
		}
	})
}
