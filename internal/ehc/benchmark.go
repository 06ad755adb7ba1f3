package ehc

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeBudget is the wall-clock budget (component F, knob T) applied
// when a run does not override it.
const DefaultTimeBudget = 60 * time.Second

// LookaheadRecord is one per-lookahead statistics tuple.
type LookaheadRecord struct {
	Success        bool
	Expansions     int
	HeuristicCalls int
	OrderingCalls  int
	ExitReason     string
}

// BenchmarkRecord is the finalized, outbound benchmark record (spec.md
// §3, §6).
type BenchmarkRecord struct {
	TaskName       string
	SearchName     string
	HeuristicName  string
	LookaheadName  string
	OrderingName   string
	SolutionFound  bool
	SolutionLength int
	ElapsedSeconds float64
	LookaheadCount int
	TotalExpansions     int
	TotalHeuristicCalls int
	TotalOrderingCalls  int
	RestartCount        int
	ExitMessage         string
	Lookaheads          []LookaheadRecord
}

// CSVLine renders the record as the one comma-joined line described by
// spec.md §6, quote-safe at the consumer via encoding/csv.
func (r *BenchmarkRecord) CSVLine() string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fields := []string{
		r.TaskName,
		r.SearchName,
		r.HeuristicName,
		r.LookaheadName,
		r.OrderingName,
		fmt.Sprintf("%v", r.SolutionFound),
		fmt.Sprintf("%d", r.SolutionLength),
		fmt.Sprintf("%f", r.ElapsedSeconds),
		fmt.Sprintf("%d", r.LookaheadCount),
		fmt.Sprintf("%d", r.TotalExpansions),
		fmt.Sprintf("%d", r.TotalHeuristicCalls),
		fmt.Sprintf("%d", r.TotalOrderingCalls),
		fmt.Sprintf("%d", r.RestartCount),
		r.ExitMessage,
		fmt.Sprintf("%v", r.Lookaheads),
	}
	_ = w.Write(fields)
	w.Flush()
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

var benchLog = log.With("component", "benchmark")

// Benchmark is the per-lookahead/per-run logger and timeout clock
// (component F). One Benchmark is owned by exactly one EHC driver run.
type Benchmark struct {
	RunID         string
	taskName      string
	heuristicName string
	searchName    string
	lookaheadName string
	orderingName  string
	timeBudget    time.Duration

	startTime  time.Time
	lookaheads []LookaheadRecord
	restarts   int
}

// NewBenchmark builds a logger identifying the run. timeBudget <= 0 uses
// DefaultTimeBudget.
func NewBenchmark(runID, taskName, heuristicName, searchName, lookaheadName, orderingName string, timeBudget time.Duration) *Benchmark {
	if timeBudget <= 0 {
		timeBudget = DefaultTimeBudget
	}
	return &Benchmark{
		RunID:         runID,
		taskName:      taskName,
		heuristicName: heuristicName,
		searchName:    searchName,
		lookaheadName: lookaheadName,
		orderingName:  orderingName,
		timeBudget:    timeBudget,
	}
}

// StartTimer marks the beginning of the wall-clock budget window.
func (b *Benchmark) StartTimer() {
	b.startTime = time.Now()
}

// TimeUp reports whether the wall-clock budget has elapsed.
func (b *Benchmark) TimeUp() bool {
	return time.Since(b.startTime) > b.timeBudget
}

// LogLookahead appends one lookahead's statistics.
func (b *Benchmark) LogLookahead(success bool, expansions, heuristicCalls, orderingCalls int, reason string) {
	b.lookaheads = append(b.lookaheads, LookaheadRecord{
		Success:        success,
		Expansions:     expansions,
		HeuristicCalls: heuristicCalls,
		OrderingCalls:  orderingCalls,
		ExitReason:     reason,
	})
	benchLog.Debug("lookahead complete", "run", b.RunID, "success", success, "expansions", expansions, "reason", reason)
}

// LogRestart increments the restart counter.
func (b *Benchmark) LogRestart() {
	b.restarts++
}

// LastLookahead returns the most recently logged lookahead's statistics,
// for a Driver observer to report without exposing the full slice.
func (b *Benchmark) LastLookahead() (LookaheadRecord, bool) {
	if len(b.lookaheads) == 0 {
		return LookaheadRecord{}, false
	}
	return b.lookaheads[len(b.lookaheads)-1], true
}

// Restarts reports the current restart count.
func (b *Benchmark) Restarts() int {
	return b.restarts
}

// LogSolution finalizes the benchmark record: totals are summed across all
// logged lookaheads, elapsed time is measured from StartTimer, and a
// structured record is emitted at the Info level. An empty message
// inherits the last lookahead's exit reason.
func (b *Benchmark) LogSolution(solution []Operator, message string) *BenchmarkRecord {
	if message == "" && len(b.lookaheads) > 0 {
		message = b.lookaheads[len(b.lookaheads)-1].ExitReason
	}

	rec := &BenchmarkRecord{
		TaskName:      b.taskName,
		SearchName:    b.searchName,
		HeuristicName: b.heuristicName,
		LookaheadName: b.lookaheadName,
		OrderingName:  b.orderingName,
		ElapsedSeconds: time.Since(b.startTime).Seconds(),
		LookaheadCount: len(b.lookaheads),
		RestartCount:   b.restarts,
		ExitMessage:    message,
		Lookaheads:     b.lookaheads,
	}

	if solution != nil {
		rec.SolutionFound = true
		rec.SolutionLength = len(solution)
	}

	for _, la := range b.lookaheads {
		rec.TotalExpansions += la.Expansions
		rec.TotalHeuristicCalls += la.HeuristicCalls
		rec.TotalOrderingCalls += la.OrderingCalls
	}

	benchLog.Info("run finished",
		"run", b.RunID,
		"task", rec.TaskName,
		"search", rec.SearchName,
		"solutionFound", rec.SolutionFound,
		"solutionLength", rec.SolutionLength,
		"elapsed", rec.ElapsedSeconds,
		"lookaheads", rec.LookaheadCount,
		"expansions", rec.TotalExpansions,
		"restarts", rec.RestartCount,
		"exitMessage", rec.ExitMessage,
	)

	return rec
}
