package ehc

import (
	"strings"
	"testing"
	"time"
)

func TestBenchmark(t *testing.T) {
	t.Run("TimeUp respects the configured budget", func(t *testing.T) {
		b := NewBenchmark("run-1", "task", "h", "classic_ehc", "BFS", "None", 10*time.Millisecond)
		b.StartTimer()
		if b.TimeUp() {
			t.Error("should not be time up immediately after StartTimer")
		}
		time.Sleep(20 * time.Millisecond)
		if !b.TimeUp() {
			t.Error("expected TimeUp after the budget elapsed")
		}
	})

	t.Run("non-positive budget defaults to DefaultTimeBudget", func(t *testing.T) {
		b := NewBenchmark("run-2", "task", "h", "classic_ehc", "BFS", "None", 0)
		b.StartTimer()
		if b.TimeUp() {
			t.Error("a freshly started default-budget benchmark must not be time up")
		}
	})

	t.Run("LogSolution sums totals across lookaheads", func(t *testing.T) {
		b := NewBenchmark("run-3", "task", "h", "classic_ehc", "BFS", "None", time.Second)
		b.StartTimer()
		b.LogLookahead(false, 3, 4, 1, "Lookahead exhausted")
		b.LogLookahead(true, 5, 6, 2, "Successor found")
		b.LogRestart()

		rec := b.LogSolution(nil, "")
		if rec.LookaheadCount != 2 {
			t.Errorf("expected 2 lookaheads, got %d", rec.LookaheadCount)
		}
		if rec.TotalExpansions != 8 {
			t.Errorf("expected 8 total expansions, got %d", rec.TotalExpansions)
		}
		if rec.TotalHeuristicCalls != 10 {
			t.Errorf("expected 10 total heuristic calls, got %d", rec.TotalHeuristicCalls)
		}
		if rec.TotalOrderingCalls != 3 {
			t.Errorf("expected 3 total ordering calls, got %d", rec.TotalOrderingCalls)
		}
		if rec.RestartCount != 1 {
			t.Errorf("expected 1 restart, got %d", rec.RestartCount)
		}
		if rec.ExitMessage != "Successor found" {
			t.Errorf("empty message should inherit the last lookahead's exit reason, got %q", rec.ExitMessage)
		}
		if rec.SolutionFound {
			t.Error("nil solution must report SolutionFound=false")
		}
	})

	t.Run("LogSolution with a plan reports length and found", func(t *testing.T) {
		b := NewBenchmark("run-4", "task", "h", "classic_ehc", "BFS", "None", time.Second)
		b.StartTimer()
		rec := b.LogSolution([]Operator{fakeOp("a"), fakeOp("b")}, "Solution found")
		if !rec.SolutionFound || rec.SolutionLength != 2 {
			t.Errorf("expected found=true length=2, got found=%v length=%d", rec.SolutionFound, rec.SolutionLength)
		}
	})

	t.Run("CSVLine produces one quote-safe line", func(t *testing.T) {
		b := NewBenchmark("run-5", "task,with,commas", "h", "classic_ehc", "BFS", "None", time.Second)
		b.StartTimer()
		rec := b.LogSolution(nil, "exit \"reason\"")
		line := rec.CSVLine()
		if strings.Contains(line, "\n") {
			t.Error("CSVLine must render as a single line")
		}
		if !strings.Contains(line, "task,with,commas") && !strings.Contains(line, `"task,with,commas"`) {
			t.Error("expected the task name field to survive quoting")
		}
	})
}
