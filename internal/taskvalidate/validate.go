// Package taskvalidate checks a planning task and run configuration for
// structural problems before a search begins, reporting each issue as a
// field/message/fix triple.
package taskvalidate

import (
	"fmt"

	"github.com/ehcplan/ehcplan/internal/ehc"
)

// Issue is one validation error or warning.
type Issue struct {
	Field   string
	Message string
	Fix     string
}

func (i Issue) Error() string {
	msg := fmt.Sprintf("%s: %s", i.Field, i.Message)
	if i.Fix != "" {
		msg += fmt.Sprintf(" (fix: %s)", i.Fix)
	}
	return msg
}

// Result holds the issues found by a validation pass.
type Result struct {
	Errors   []Issue
	Warnings []Issue
}

// IsValid reports whether no errors (warnings are non-fatal) were found.
func (r *Result) IsValid() bool { return len(r.Errors) == 0 }

func (r *Result) addError(field, message, fix string) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: message, Fix: fix})
}

func (r *Result) addWarning(field, message, fix string) {
	r.Warnings = append(r.Warnings, Issue{Field: field, Message: message, Fix: fix})
}

// Task validates an ehc.Task: operator names must be unique (component C
// requires operator identity to key LFF weights and dead-end entries
// meaningfully), the goal must be reachable in principle (non-empty, or
// the task is trivially already solved), and no operator may add and
// delete the same fact (an operator whose effect is self-contradictory
// can never be satisfied by Apply, since add is applied after delete).
// The goal-emptiness and effect-overlap checks only run against domains
// that implement the optional ehc.FactTask/ehc.FactOperator interfaces;
// a Task backed by a non-fact-set representation skips them silently.
func Task(task ehc.Task) *Result {
	result := &Result{}

	seen := make(map[string]bool)
	for _, op := range task.Operators() {
		name := op.Name()
		if name == "" {
			result.addError("operators", "an operator has an empty name", "give every operator a unique, non-empty name")
			continue
		}
		if seen[name] {
			result.addError("operators", fmt.Sprintf("duplicate operator name %q", name), "operator names must be unique: LFF weights and plan output are keyed by name")
			continue
		}
		seen[name] = true

		if fo, ok := op.(ehc.FactOperator); ok {
			if overlap := intersect(fo.AddFacts(), fo.DelFacts()); len(overlap) > 0 {
				result.addError("operators", fmt.Sprintf("operator %q adds and deletes %v", name, overlap), "remove the fact from either the add or delete effect list")
			}
		}
	}

	if len(task.Operators()) == 0 {
		result.addWarning("operators", "task has no operators", "a task with no operators can only succeed if the initial state already satisfies the goal")
	}

	if ft, ok := task.(ehc.FactTask); ok {
		if len(ft.GoalFacts()) == 0 {
			result.addError("goal", "goal fact set is empty", "set at least one goal fact")
		}
	}

	if task.GoalReached(task.InitialState()) {
		result.addWarning("goal", "initial state already satisfies the goal", "every variant will return the empty plan with zero lookaheads")
	}

	return result
}

// intersect returns the facts present in both a and b, in a's order.
func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, f := range b {
		inB[f] = true
	}
	var out []string
	for _, f := range a {
		if inB[f] {
			out = append(out, f)
		}
	}
	return out
}

// Config validates an ehc.Config's knobs.
func Config(cfg ehc.Config) *Result {
	result := &Result{}

	if cfg.QMax <= 0 {
		result.addError("q_max", "must be positive", "set Q_max to a positive queue-size cap, e.g. 10000")
	}
	if cfg.DepthBound < 0 {
		result.addError("depth_bound", "must be non-negative", "set D to 0 or a positive depth bound")
	}
	if cfg.UseBacktracking && cfg.BacktrackBudget <= 0 {
		result.addError("backtrack_budget", "must be positive when backtracking is enabled", "set L to a positive backtrack budget, e.g. 50")
	}
	if cfg.TimeBudget <= 0 {
		result.addError("time_budget", "must be positive", "set T to a positive wall-clock budget in seconds, e.g. 60")
	}

	return result
}
