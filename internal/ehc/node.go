// Package ehc implements the lookahead-driven Enforced Hill-Climbing
// search family: a shared node/queue/lookahead/driver harness that powers
// eight EHC variants over a grounded STRIPS-like planning task.
package ehc

// Node is an immutable, parent-linked search-space node. Children
// reference parents; parents never reference children. The root node has
// no parent and no incoming action.
type Node struct {
	State  State
	Parent *Node
	Action Operator
	Depth  int
}

// MakeRoot creates the root node for a planning run.
func MakeRoot(state State) *Node {
	return &Node{State: state}
}

// MakeChild creates a child of parent reached via operator, landing in
// nextState. Depth is parent.Depth + 1.
func MakeChild(parent *Node, operator Operator, nextState State) *Node {
	return &Node{
		State:  nextState,
		Parent: parent,
		Action: operator,
		Depth:  parent.Depth + 1,
	}
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// ExtractSolution walks the parent chain from n to the root and returns
// the ordered sequence of operators that produced n.State from the root's
// state. The root itself contributes no operator.
func (n *Node) ExtractSolution() []Operator {
	var reversed []Operator
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		reversed = append(reversed, cur.Action)
	}
	plan := make([]Operator, len(reversed))
	for i, op := range reversed {
		plan[len(reversed)-1-i] = op
	}
	return plan
}
