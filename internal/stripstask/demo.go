package stripstask

import "fmt"

// BuildBlocksWorld returns a small n-block "stack everything on the table
// into one tower" task: blocks b0..b(n-1), all initially on the table and
// clear, goal is a single tower b0-on-b1-on-...-on-b(n-1) with b(n-1) on
// the table. It is a standard STRIPS textbook domain and is small enough
// for every EHC variant to solve well within the default time budget.
func BuildBlocksWorld(n int) *Task {
	blocks := make([]string, n)
	for i := range blocks {
		blocks[i] = fmt.Sprintf("b%d", i)
	}

	facts := []string{}
	for _, b := range blocks {
		facts = append(facts, fmt.Sprintf("on-table(%s)", b), fmt.Sprintf("clear(%s)", b))
	}
	facts = append(facts, "hand-empty")

	var ops []Operator
	for _, x := range blocks {
		for _, y := range blocks {
			if x == y {
				continue
			}
			// stack x on y: x and y must both be clear, x on the table,
			// hand empty.
			ops = append(ops, Operator{
				OpName: fmt.Sprintf("stack(%s,%s)", x, y),
				Precond: []string{
					fmt.Sprintf("clear(%s)", x),
					fmt.Sprintf("clear(%s)", y),
					fmt.Sprintf("on-table(%s)", x),
					"hand-empty",
				},
				AddEffect: []string{fmt.Sprintf("on(%s,%s)", x, y)},
				DelEffect: []string{
					fmt.Sprintf("clear(%s)", y),
					fmt.Sprintf("on-table(%s)", x),
				},
			})
			// unstack x from y back to the table.
			ops = append(ops, Operator{
				OpName: fmt.Sprintf("unstack(%s,%s)", x, y),
				Precond: []string{
					fmt.Sprintf("on(%s,%s)", x, y),
					fmt.Sprintf("clear(%s)", x),
					"hand-empty",
				},
				AddEffect: []string{
					fmt.Sprintf("clear(%s)", y),
					fmt.Sprintf("on-table(%s)", x),
				},
				DelEffect: []string{fmt.Sprintf("on(%s,%s)", x, y)},
			})
		}
	}

	goal := make([]string, 0, n-1)
	for i := 0; i < n-1; i++ {
		goal = append(goal, fmt.Sprintf("on(%s,%s)", blocks[i], blocks[i+1]))
	}

	return &Task{
		TaskName: fmt.Sprintf("blocksworld-%d", n),
		Ops:      ops,
		Init:     NewState(facts...),
		Goal:     goal,
	}
}

// BuildCorridor returns a tiny linear task with n+1 states s0..sn where
// only the operator advance(i) moves si -> s(i+1), goal is sn. Its single
// path and lack of branching make lookahead behavior easy to hand-trace
// (see internal/ehc's lookahead and driver tests); paired with a
// gradient-valued heuristic rather than GoalCountHeuristic, it is also the
// fixture spec.md §8's plateau-then-descent scenario runs against (see
// internal/ehc's TestPlateauThenDescent). It has no branching and so
// cannot produce a dead end; see BuildDeadEndSpur for that.
func BuildCorridor(n int) *Task {
	facts := []string{"at(s0)"}
	var ops []Operator
	for i := 0; i < n; i++ {
		ops = append(ops, Operator{
			OpName:    fmt.Sprintf("advance(%d)", i),
			Precond:   []string{fmt.Sprintf("at(s%d)", i)},
			AddEffect: []string{fmt.Sprintf("at(s%d)", i+1)},
			DelEffect: []string{fmt.Sprintf("at(s%d)", i)},
		})
	}
	return &Task{
		TaskName: fmt.Sprintf("corridor-%d", n),
		Ops:      ops,
		Init:     NewState(facts...),
		Goal:     []string{fmt.Sprintf("at(s%d)", n)},
	}
}

// BuildDeadEndSpur returns spec.md §8 scenario 4's dead-end fixture: from
// d0, the only operator leads to d1, whose only operator self-loops back
// to d1, and the goal fact is never added by any operator. A lookahead
// strategy must exhaust the frontier (the self-loop is pruned as already
// visited) rather than loop forever; restart-based variants cache d0 as a
// dead end and terminate on the next restart rather than retry it.
func BuildDeadEndSpur() *Task {
	return &Task{
		TaskName: "dead-end-spur",
		Ops: []Operator{
			{
				OpName:    "advance",
				Precond:   []string{"at(d0)"},
				AddEffect: []string{"at(d1)"},
				DelEffect: []string{"at(d0)"},
			},
			{
				OpName:    "loop",
				Precond:   []string{"at(d1)"},
				AddEffect: []string{"at(d1)"},
			},
		},
		Init: NewState("at(d0)"),
		Goal: []string{"at(unreachable)"},
	}
}
