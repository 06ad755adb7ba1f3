package ehc

import "sort"

// Ordering is a successor-enumeration policy (component E). It may
// influence the order in which a lookahead strategy explores a node's
// successors, and is given a chance to learn from each expansion's
// parent/successor heuristic pair.
type Ordering interface {
	Name() string
	// Order returns task.Successors(state), possibly reordered.
	Order(task Task, state State) []Successor
	// Update records the outcome of expanding one successor during a
	// lookahead: hParent is the heuristic of the node being expanded,
	// hSuccessor is the heuristic of the successor reached via op.
	Update(hParent, hSuccessor float64, op Operator)
	// Learns reports whether Update has any effect. BFS-family lookaheads
	// only pay for an extra heuristic call to obtain hParent when the
	// active policy actually learns from it.
	Learns() bool
}

// TaskOrder is the no-ordering ablation policy: successors are yielded in
// whatever order the task produces them.
type TaskOrder struct{}

func (TaskOrder) Name() string                                    { return "None" }
func (TaskOrder) Order(task Task, state State) []Successor        { return task.Successors(state) }
func (TaskOrder) Update(hParent, hSuccessor float64, op Operator) {}
func (TaskOrder) Learns() bool                                    { return false }

// LeastFailedFirst biases successor enumeration toward operators that have
// not historically led to heuristic plateaus or regressions. Weight starts
// at 0 for every operator known at construction time; operators first seen
// later default to 0 on first mention.
//
// Update rule: given parent heuristic h_p and successor heuristic h_s for
// operator op,
//   - h_p > h_s (strict improvement): weight[op] unchanged.
//   - otherwise: weight[op] -= (h_s - h_p - 1).
//
// This specification locks the h_p > h_s ⇒ no-penalty interpretation; the
// reference implementation carries both directions in different revisions
// with an explicit "I think that maybe this should be < instead" comment
// questioning its own sign. We do not guess past that: strict improvement
// is rewarded with no penalty, everything else (plateau or regression) is
// penalized.
type LeastFailedFirst struct {
	weight map[string]float64
}

// NewLeastFailedFirst seeds weights at 0 for every operator in task.
func NewLeastFailedFirst(task Task) *LeastFailedFirst {
	w := make(map[string]float64, len(task.Operators()))
	for _, op := range task.Operators() {
		w[op.Name()] = 0
	}
	return &LeastFailedFirst{weight: w}
}

func (l *LeastFailedFirst) Name() string { return "LFF" }

func (l *LeastFailedFirst) Learns() bool { return true }

func (l *LeastFailedFirst) weightOf(op Operator) float64 {
	if w, ok := l.weight[op.Name()]; ok {
		return w
	}
	return 0
}

// Order sorts successors by descending weight (higher = less failed =
// preferred first), tie-broken by ascending operator name.
func (l *LeastFailedFirst) Order(task Task, state State) []Successor {
	succs := task.Successors(state)
	sorted := make([]Successor, len(succs))
	copy(sorted, succs)
	sort.SliceStable(sorted, func(i, j int) bool {
		wi, wj := l.weightOf(sorted[i].Operator), l.weightOf(sorted[j].Operator)
		if wi != wj {
			return wi > wj
		}
		return sorted[i].Operator.Name() < sorted[j].Operator.Name()
	})
	return sorted
}

func (l *LeastFailedFirst) Update(hParent, hSuccessor float64, op Operator) {
	if hParent > hSuccessor {
		return
	}
	l.weight[op.Name()] = l.weightOf(op) - (hSuccessor - hParent - 1)
}

// WeightOf exposes the current learned weight for op, for tests and
// diagnostics. Unknown operators report 0.
func (l *LeastFailedFirst) WeightOf(op Operator) float64 {
	return l.weightOf(op)
}
