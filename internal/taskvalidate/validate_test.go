package taskvalidate

import (
	"testing"

	"github.com/ehcplan/ehcplan/internal/ehc"
	"github.com/ehcplan/ehcplan/internal/stripstask"
)

func TestTask(t *testing.T) {
	t.Run("valid task has no errors", func(t *testing.T) {
		task := stripstask.BuildCorridor(3)
		result := Task(task)
		if !result.IsValid() {
			t.Errorf("expected a valid corridor task, got errors: %v", result.Errors)
		}
	})

	t.Run("already-solved task warns", func(t *testing.T) {
		task := stripstask.BuildCorridor(0)
		result := Task(task)
		if !result.IsValid() {
			t.Errorf("an already-solved task is still structurally valid, got errors: %v", result.Errors)
		}
		if len(result.Warnings) == 0 {
			t.Error("expected a warning when the initial state already satisfies the goal")
		}
	})

	t.Run("duplicate operator names are an error", func(t *testing.T) {
		task := &stripstask.Task{
			TaskName: "dup",
			Ops: []stripstask.Operator{
				{OpName: "a", Precond: nil, AddEffect: []string{"x"}},
				{OpName: "a", Precond: nil, AddEffect: []string{"y"}},
			},
			Init: stripstask.NewState(),
			Goal: []string{"x", "y"},
		}
		result := Task(task)
		if result.IsValid() {
			t.Error("expected an error for duplicate operator names")
		}
	})

	t.Run("empty goal is an error", func(t *testing.T) {
		task := &stripstask.Task{
			TaskName: "no-goal",
			Ops: []stripstask.Operator{
				{OpName: "a", AddEffect: []string{"x"}},
			},
			Init: stripstask.NewState(),
			Goal: nil,
		}
		result := Task(task)
		if result.IsValid() {
			t.Error("expected an error for an empty goal fact set")
		}
	})

	t.Run("an operator that adds and deletes the same fact is an error", func(t *testing.T) {
		task := &stripstask.Task{
			TaskName: "contradictory",
			Ops: []stripstask.Operator{
				{OpName: "a", AddEffect: []string{"x", "y"}, DelEffect: []string{"y"}},
			},
			Init: stripstask.NewState(),
			Goal: []string{"x"},
		}
		result := Task(task)
		if result.IsValid() {
			t.Error("expected an error for an operator that adds and deletes the same fact")
		}
	})
}

func TestConfig(t *testing.T) {
	t.Run("canonical variant configs are all valid", func(t *testing.T) {
		for _, v := range []ehc.Variant{
			ehc.ClassicEHC, ehc.DepthBoundEHC, ehc.EpisodicEHC, ehc.AdaptedEHC,
			ehc.DBAdaptedEHC, ehc.GuidedEHC, ehc.SuperEHC, ehc.BacktrackEHC,
		} {
			result := Config(ehc.VariantConfig(v))
			if !result.IsValid() {
				t.Errorf("variant %s: expected valid config, got errors: %v", v, result.Errors)
			}
		}
	})

	t.Run("non-positive QMax is an error", func(t *testing.T) {
		cfg := ehc.VariantConfig(ehc.ClassicEHC)
		cfg.QMax = 0
		result := Config(cfg)
		if result.IsValid() {
			t.Error("expected an error for QMax=0")
		}
	})

	t.Run("negative depth bound is an error", func(t *testing.T) {
		cfg := ehc.VariantConfig(ehc.ClassicEHC)
		cfg.DepthBound = -1
		result := Config(cfg)
		if result.IsValid() {
			t.Error("expected an error for a negative depth bound")
		}
	})

	t.Run("backtracking without a budget is an error", func(t *testing.T) {
		cfg := ehc.VariantConfig(ehc.BacktrackEHC)
		cfg.BacktrackBudget = 0
		result := Config(cfg)
		if result.IsValid() {
			t.Error("expected an error for backtracking enabled with zero budget")
		}
	})
}
