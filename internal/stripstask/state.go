// Package stripstask is a concrete, hashable fact-set implementation of
// the ehc.State/ehc.Operator/ehc.Task interfaces, keyed by a sorted-fact
// fingerprint for world-state equality. It exists so internal/ehc can be
// exercised without an external PDDL grounder; PDDL parsing itself is out
// of scope (spec.md §1).
package stripstask

import (
	"sort"
	"strings"
)

const factSep = "\x1f"

// State is an immutable set of true facts. Two States with the same facts
// produce the same Key regardless of construction order.
type State struct {
	facts map[string]struct{}
	key   string
}

// NewState builds a State from a list of facts (duplicates collapse).
func NewState(facts ...string) State {
	set := make(map[string]struct{}, len(facts))
	for _, f := range facts {
		set[f] = struct{}{}
	}
	return State{facts: set, key: fingerprint(set)}
}

func fingerprint(set map[string]struct{}) string {
	names := make([]string, 0, len(set))
	for f := range set {
		names = append(names, f)
	}
	sort.Strings(names)
	return strings.Join(names, factSep)
}

// Key satisfies ehc.State.
func (s State) Key() string { return s.key }

// Contains reports whether fact is true in s.
func (s State) Contains(fact string) bool {
	_, ok := s.facts[fact]
	return ok
}

// ContainsAll reports whether every fact in facts is true in s.
func (s State) ContainsAll(facts []string) bool {
	for _, f := range facts {
		if !s.Contains(f) {
			return false
		}
	}
	return true
}

// Apply returns the state obtained by removing del then adding add.
func (s State) Apply(add, del []string) State {
	next := make(map[string]struct{}, len(s.facts)+len(add))
	delSet := make(map[string]struct{}, len(del))
	for _, f := range del {
		delSet[f] = struct{}{}
	}
	for f := range s.facts {
		if _, removed := delSet[f]; !removed {
			next[f] = struct{}{}
		}
	}
	for _, f := range add {
		next[f] = struct{}{}
	}
	return State{facts: next, key: fingerprint(next)}
}

// Facts returns a sorted snapshot of the true facts, for logging/tests.
func (s State) Facts() []string {
	names := make([]string, 0, len(s.facts))
	for f := range s.facts {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}
