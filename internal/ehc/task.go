package ehc

// State is an opaque, hashable, equality-comparable world configuration.
// Key must be stable and position-independent with respect to however the
// implementation orders its underlying facts: two states representing the
// same set of facts must return the same Key.
type State interface {
	Key() string
}

// Operator is an immutable action: a precondition test plus a state
// transformer. Two operators are equal iff their Name matches.
type Operator interface {
	Name() string
	Applicable(s State) bool
	Apply(s State) State
}

// Successor pairs an operator with the state reached by applying it.
type Successor struct {
	Operator Operator
	State    State
}

// Task is the external planning-task adapter (component C). Implementations
// are read-only: Successors must yield (operator, Apply(operator, state))
// for every operator applicable in state. The order is task-defined but
// must be stable so that LFF's tie-break by operator name is meaningful.
type Task interface {
	Name() string
	InitialState() State
	Operators() []Operator
	GoalReached(s State) bool
	Successors(s State) []Successor
}

// FactTask is an optional narrowing of Task for fact-set-based domains: a
// Task that also exposes its goal as a flat fact list lets a validator
// check for an empty goal without depending on the concrete domain
// package (mirrors the Task/stripstask.Task split).
type FactTask interface {
	GoalFacts() []string
}

// FactOperator is an optional narrowing of Operator for fact-set-based
// domains: an Operator that also exposes its add/delete effects as flat
// fact lists lets a validator check for a self-contradictory operator.
type FactOperator interface {
	AddFacts() []string
	DelFacts() []string
}
