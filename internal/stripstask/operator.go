package stripstask

import "github.com/ehcplan/ehcplan/internal/ehc"

// Operator is an immutable STRIPS action: a precondition fact set plus
// add/delete effect fact sets.
type Operator struct {
	OpName    string
	Precond   []string
	AddEffect []string
	DelEffect []string
}

// Name satisfies ehc.Operator.
func (o Operator) Name() string { return o.OpName }

// Applicable satisfies ehc.Operator: s must be a stripstask.State.
func (o Operator) Applicable(s ehc.State) bool {
	st := s.(State)
	return st.ContainsAll(o.Precond)
}

// Apply satisfies ehc.Operator.
func (o Operator) Apply(s ehc.State) ehc.State {
	st := s.(State)
	return st.Apply(o.AddEffect, o.DelEffect)
}

// AddFacts satisfies ehc.FactOperator.
func (o Operator) AddFacts() []string { return o.AddEffect }

// DelFacts satisfies ehc.FactOperator.
func (o Operator) DelFacts() []string { return o.DelEffect }
