package ehc

import "math"

// Heuristic is the external state-evaluating heuristic (component D). It
// must be deterministic and pure per state within one planning run.
// Inf denotes "no plan extractable from here under this heuristic".
type Heuristic interface {
	Name() string
	Value(n *Node) float64
}

// Inf is the sentinel "no plan from here" heuristic value. It is a func,
// not a var, so it can't be reassigned by an importer the way a package
// var could: math.Inf(1) is not a constant expression, so a plain const
// declaration isn't available here.
func Inf() float64 { return math.Inf(1) }

// ValueOfState evaluates h on a bare state by wrapping it in a rootless
// node. Heuristics must only look at n.State, never n.Parent/n.Depth, when
// invoked this way.
func ValueOfState(h Heuristic, s State) float64 {
	return h.Value(&Node{State: s})
}
