package stripstask

import "github.com/ehcplan/ehcplan/internal/ehc"

// Task is a grounded STRIPS-like planning task: a fixed operator list,
// initial state, and goal fact set.
type Task struct {
	TaskName string
	Ops      []Operator
	Init     State
	Goal     []string
}

// Name satisfies ehc.Task.
func (t *Task) Name() string { return t.TaskName }

// InitialState satisfies ehc.Task.
func (t *Task) InitialState() ehc.State { return t.Init }

// Operators satisfies ehc.Task, returning operators in the task's
// declared order (spec.md §4.C default order).
func (t *Task) Operators() []ehc.Operator {
	ops := make([]ehc.Operator, len(t.Ops))
	for i, op := range t.Ops {
		ops[i] = op
	}
	return ops
}

// GoalReached satisfies ehc.Task.
func (t *Task) GoalReached(s ehc.State) bool {
	return s.(State).ContainsAll(t.Goal)
}

// GoalFacts satisfies ehc.FactTask.
func (t *Task) GoalFacts() []string { return t.Goal }

// Successors satisfies ehc.Task: yields (operator, apply(operator, state))
// for every applicable operator, in declared operator order.
func (t *Task) Successors(s ehc.State) []ehc.Successor {
	var succs []ehc.Successor
	for _, op := range t.Ops {
		if op.Applicable(s) {
			succs = append(succs, ehc.Successor{Operator: op, State: op.Apply(s)})
		}
	}
	return succs
}
