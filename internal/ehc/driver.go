package ehc

import (
	"time"

	"github.com/charmbracelet/log"
)

// Variant names the eight driver configurations this package implements.
type Variant string

const (
	ClassicEHC    Variant = "classic_ehc"
	DepthBoundEHC Variant = "depthbound_ehc"
	EpisodicEHC   Variant = "episodic_ehc"
	AdaptedEHC    Variant = "adapted_ehc"
	DBAdaptedEHC  Variant = "db_adapted_ehc"
	GuidedEHC     Variant = "guided_ehc"
	SuperEHC      Variant = "super_ehc"
	BacktrackEHC  Variant = "hb_ehc"
)

// DefaultQMax, DefaultQMaxLegacy, DefaultDepthBestFirst, DefaultDepthBFS,
// DefaultBacktrackBudget are the configuration defaults of spec.md §6.
const (
	DefaultQMax            = 10_000
	DefaultQMaxLegacy       = 10_000_000
	DefaultDepthBestFirst   = 5
	DefaultDepthBFS         = 7
	DefaultBacktrackBudget  = 50
)

// Config is the driver's configuration record (spec.md §9 "Variant
// dispatch"): a single generic driver consumes this record instead of one
// subtype per variant.
type Config struct {
	Variant         Variant
	UseDeadEndCache bool
	UseBacktracking bool
	UseHeuristicCache bool
	UseLFF          bool
	QMax            int
	DepthBound      int
	BacktrackBudget int
	TimeBudget      time.Duration
}

// VariantConfig returns the canonical configuration record for one of the
// eight named variants, with spec.md §6's default knob values.
func VariantConfig(v Variant) Config {
	switch v {
	case ClassicEHC:
		return Config{Variant: v, QMax: DefaultQMax, TimeBudget: DefaultTimeBudget}
	case DepthBoundEHC:
		return Config{Variant: v, QMax: DefaultQMax, DepthBound: DefaultDepthBFS, TimeBudget: DefaultTimeBudget}
	case EpisodicEHC:
		return Config{Variant: v, UseDeadEndCache: true, QMax: DefaultQMax, DepthBound: DefaultDepthBFS, TimeBudget: DefaultTimeBudget}
	case AdaptedEHC:
		return Config{Variant: v, QMax: DefaultQMaxLegacy, TimeBudget: DefaultTimeBudget}
	case DBAdaptedEHC:
		return Config{Variant: v, UseDeadEndCache: true, QMax: DefaultQMax, DepthBound: DefaultDepthBestFirst, TimeBudget: DefaultTimeBudget}
	case GuidedEHC:
		return Config{Variant: v, UseLFF: true, QMax: DefaultQMax, TimeBudget: DefaultTimeBudget}
	case SuperEHC:
		return Config{Variant: v, UseDeadEndCache: true, UseLFF: true, UseHeuristicCache: true, QMax: DefaultQMax, TimeBudget: DefaultTimeBudget}
	case BacktrackEHC:
		return Config{Variant: v, UseBacktracking: true, QMax: DefaultQMaxLegacy, BacktrackBudget: DefaultBacktrackBudget, TimeBudget: DefaultTimeBudget}
	default:
		return Config{Variant: ClassicEHC, QMax: DefaultQMax, TimeBudget: DefaultTimeBudget}
	}
}

func (v Variant) lookaheadName() string {
	switch v {
	case ClassicEHC, EpisodicEHC, GuidedEHC:
		return "BFS"
	case DepthBoundEHC:
		return "DB_BFS"
	case AdaptedEHC, SuperEHC, BacktrackEHC:
		return "BeFS"
	case DBAdaptedEHC:
		return "DB_BeFS"
	default:
		return "BFS"
	}
}

func (cfg Config) orderingName() string {
	if cfg.UseLFF {
		return "LFF"
	}
	return "None"
}

func (cfg Config) lookahead() func(*Context) Result {
	switch cfg.Variant {
	case ClassicEHC, EpisodicEHC, GuidedEHC:
		return BFSLookahead
	case DepthBoundEHC:
		return DepthBoundedBFSLookahead
	case AdaptedEHC, SuperEHC, BacktrackEHC:
		return BestFirstLookahead
	case DBAdaptedEHC:
		return DepthBoundedBestFirstLookahead
	default:
		return BFSLookahead
	}
}

var driverLog = log.With("component", "ehc-driver")

// Observer receives one notification per completed lookahead: index is
// the 1-based lookahead count so far, rec is that lookahead's statistics,
// and restarts is the run's restart count at the time of the call. It is
// not invoked when a restart is immediately followed by termination (the
// restarted-into root is already dead-end-cached) with no further
// lookahead — callers that need to react to every restart itself, not
// just restarts visible through a later lookahead, should inspect the
// final BenchmarkRecord.RestartCount instead. A CLI wires this to
// progress.Indicator's Step/Stat.
type Observer func(index int, rec LookaheadRecord, restarts int)

// Driver runs one EHC planning search (component H). A fresh Driver (and a
// fresh heuristic cache / dead-end cache / LFF weight map, if the variant
// uses them) must be constructed per planning run; none of its state is
// safe to share across concurrent runs.
type Driver struct {
	cfg       Config
	task      Task
	heuristic Heuristic
	ordering  Ordering
	bench     *Benchmark
	observer  Observer

	deadEnd map[string]bool
	hCache  map[string]float64
}

// SetObserver registers a callback invoked after every lookahead completes.
// Optional; a nil observer (the default) disables the hook entirely.
func (d *Driver) SetObserver(obs Observer) {
	d.observer = obs
}

// NewDriver builds a driver for one run. runID identifies the run in the
// benchmark record and record store; it is caller-supplied (see
// internal/ehc/record_store.go) so callers can use whatever ID scheme they
// like (e.g. google/uuid).
func NewDriver(runID string, task Task, heuristic Heuristic, cfg Config) *Driver {
	d := &Driver{
		cfg:       cfg,
		task:      task,
		heuristic: heuristic,
	}

	if cfg.UseLFF {
		d.ordering = NewLeastFailedFirst(task)
	} else {
		d.ordering = TaskOrder{}
	}

	if cfg.UseDeadEndCache {
		d.deadEnd = make(map[string]bool)
	}
	if cfg.UseHeuristicCache {
		d.hCache = make(map[string]float64)
	}

	d.bench = NewBenchmark(runID, task.Name(), heuristic.Name(), string(cfg.Variant), cfg.Variant.lookaheadName(), cfg.orderingName(), cfg.TimeBudget)

	return d
}

// cachedHeuristic wraps d.heuristic with the hybrid variant's heuristic
// cache, when enabled.
type cachedHeuristic struct {
	inner Heuristic
	cache map[string]float64
}

func (c *cachedHeuristic) Name() string { return c.inner.Name() }
func (c *cachedHeuristic) Value(n *Node) float64 {
	if v, ok := c.cache[n.State.Key()]; ok {
		return v
	}
	v := c.inner.Value(n)
	c.cache[n.State.Key()] = v
	return v
}

func (d *Driver) heuristicFor() Heuristic {
	if d.hCache != nil {
		return &cachedHeuristic{inner: d.heuristic, cache: d.hCache}
	}
	return d.heuristic
}

// Run executes the search per spec.md §4.H and returns the operator plan,
// or nil on any of §7's failure outcomes. The returned *BenchmarkRecord is
// always non-nil and always finalized.
func (d *Driver) Run() ([]Operator, *BenchmarkRecord) {
	d.bench.StartTimer()

	heuristic := d.heuristicFor()
	root := MakeRoot(d.task.InitialState())
	current := root

	var tracker *Tracker
	if d.cfg.UseBacktracking {
		tracker = &Tracker{}
	}

	backtrackBudget := d.cfg.BacktrackBudget

	for {
		if d.task.GoalReached(current.State) {
			plan := current.ExtractSolution()
			rec := d.bench.LogSolution(plan, "Solution found")
			return plan, rec
		}

		if d.bench.TimeUp() {
			driverLog.Info("timeout", "run", d.bench.RunID, "variant", d.cfg.Variant)
			rec := d.bench.LogSolution(nil, "Time limit reached")
			return nil, rec
		}

		ctx := &Context{
			Anchor:     current,
			Task:       d.task,
			Heuristic:  heuristic,
			Ordering:   d.ordering,
			Benchmark:  d.bench,
			DeadEnd:    d.deadEnd,
			QMax:       d.cfg.QMax,
			DepthBound: d.cfg.DepthBound,
			Tracker:    tracker,
		}

		result := d.cfg.lookahead()(ctx)

		if d.observer != nil {
			if rec, ok := d.bench.LastLookahead(); ok {
				d.observer(len(d.bench.lookaheads), rec, d.bench.Restarts())
			}
		}

		switch result.Outcome {
		case Improvement:
			current = result.Node
			if tracker != nil {
				tracker.Reset()
			}
			continue

		case Exhausted, BoundedOut:
			if d.cfg.UseBacktracking {
				if tracker == nil || tracker.Node == nil || tracker.Node == root || backtrackBudget <= 0 {
					rec := d.bench.LogSolution(nil, "No backtracks left")
					return nil, rec
				}
				backtrackBudget--
				current = tracker.Node.Parent
				if current == nil {
					current = root
				}
				continue
			}

			if d.deadEnd != nil {
				d.deadEnd[current.State.Key()] = true
				d.bench.LogRestart()
				current = root
				if d.deadEnd[root.State.Key()] {
					rec := d.bench.LogSolution(nil, "No solution found")
					return nil, rec
				}
				continue
			}

			rec := d.bench.LogSolution(nil, "No solution found")
			return nil, rec
		}
	}
}
