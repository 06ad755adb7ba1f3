package ehc

// Outcome tags the result of one lookahead invocation (component G).
type Outcome int

const (
	// Improvement: a strictly better (or goal) node was found.
	Improvement Outcome = iota
	// Exhausted: the frontier emptied with no improvement.
	Exhausted
	// BoundedOut: an internal resource bound (queue size) was hit.
	BoundedOut
)

func (o Outcome) String() string {
	switch o {
	case Improvement:
		return "Improvement"
	case Exhausted:
		return "Exhausted"
	case BoundedOut:
		return "BoundedOut"
	default:
		return "Unknown"
	}
}

// Result is what a lookahead strategy returns to the driver.
type Result struct {
	Outcome Outcome
	Node    *Node // valid iff Outcome == Improvement
	Reason  string
}

// Tracker records the lowest-heuristic node observed across lookaheads
// since the last improvement. Only the backtracking variant consults it.
type Tracker struct {
	Node *Node
	H    float64
	set  bool
}

// Consider updates the tracker if n's heuristic is the lowest seen so far.
func (t *Tracker) Consider(n *Node, h float64) {
	if !t.set || h < t.H {
		t.Node, t.H, t.set = n, h, true
	}
}

// Reset clears the tracker, starting a new "since last improvement" window.
func (t *Tracker) Reset() {
	t.Node, t.H, t.set = nil, 0, false
}

// Context bundles everything a lookahead strategy needs. DeadEnd is nil
// when the variant does not use the dead-end cache. Ordering is nil to
// mean "task-defined order" (equivalent to TaskOrder{}). Tracker is nil
// unless the caller wants best-local-state bookkeeping (backtracking
// variant only).
type Context struct {
	Anchor     *Node
	Task       Task
	Heuristic  Heuristic
	Ordering   Ordering
	Benchmark  *Benchmark
	DeadEnd    map[string]bool
	QMax       int
	DepthBound int // only consulted by depth-bounded strategies
	Tracker    *Tracker
}

func (c *Context) ordering() Ordering {
	if c.Ordering == nil {
		return TaskOrder{}
	}
	return c.Ordering
}

func (c *Context) deadEnded(s State) bool {
	return c.DeadEnd != nil && c.DeadEnd[s.Key()]
}

// improves reports whether successor is an acceptable lookahead result:
// it satisfies the goal, or its heuristic is 0, or it is strictly better
// than the anchor's heuristic h0 (spec.md §4.G common pruning (iv)).
func (c *Context) improves(n *Node, h, h0 float64) bool {
	return c.Task.GoalReached(n.State) || h == 0 || h < h0
}

// BFSLookahead is strategy G1: plain FIFO lookahead, first-improvement
// wins, unbounded depth.
func BFSLookahead(ctx *Context) Result {
	return bfsCore(ctx, -1)
}

// DepthBoundedBFSLookahead is strategy G2: as G1, but successors beyond
// anchor.Depth+D are never enqueued.
func DepthBoundedBFSLookahead(ctx *Context) Result {
	return bfsCore(ctx, ctx.DepthBound)
}

// bfsCore implements G1/G2. depthBound < 0 means unbounded.
func bfsCore(ctx *Context, depthBound int) Result {
	h0 := ctx.Heuristic.Value(ctx.Anchor)
	ord := ctx.ordering()

	queue := []*Node{ctx.Anchor}
	visited := make(map[string]bool)

	expansions, heuristicCalls, orderingCalls := 0, 1, 0

	for len(queue) > 0 {
		if ctx.Benchmark.TimeUp() {
			ctx.Benchmark.LogLookahead(false, expansions, heuristicCalls, orderingCalls, "Timeout")
			return Result{Outcome: Exhausted, Reason: "Timeout"}
		}

		node := queue[0]
		queue = queue[1:]

		if visited[node.State.Key()] {
			continue
		}
		visited[node.State.Key()] = true

		var parentH float64
		if ord.Learns() {
			parentH = ctx.Heuristic.Value(node)
			heuristicCalls++
		}

		for _, succ := range ord.Order(ctx.Task, node.State) {
			if visited[succ.State.Key()] {
				continue
			}
			if ctx.deadEnded(succ.State) {
				continue
			}

			expansions++
			childNode := MakeChild(node, succ.Operator, succ.State)
			h := ctx.Heuristic.Value(childNode)
			heuristicCalls++

			if ctx.Tracker != nil {
				ctx.Tracker.Consider(childNode, h)
			}

			if ctx.improves(childNode, h, h0) {
				ctx.Benchmark.LogLookahead(true, expansions, heuristicCalls, orderingCalls, "Successor found")
				return Result{Outcome: Improvement, Node: childNode, Reason: "Successor found"}
			}

			if h == Inf() {
				continue
			}

			if ord.Learns() {
				ord.Update(parentH, h, succ.Operator)
				orderingCalls++
			}

			if depthBound >= 0 && childNode.Depth > ctx.Anchor.Depth+depthBound {
				continue
			}

			queue = append(queue, childNode)
		}
	}

	ctx.Benchmark.LogLookahead(false, expansions, heuristicCalls, orderingCalls, "Lookahead exhausted")
	return Result{Outcome: Exhausted, Reason: "Lookahead exhausted"}
}

// BestFirstLookahead is strategy G3: min-heap over heuristic value, FIFO
// among equal values, bounded by QMax.
func BestFirstLookahead(ctx *Context) Result {
	return bestFirstCore(ctx, -1)
}

// DepthBoundedBestFirstLookahead is strategy G4: G3 plus a depth bound on
// enqueueing (an improving successor may still be returned before the
// depth check is applied).
func DepthBoundedBestFirstLookahead(ctx *Context) Result {
	return bestFirstCore(ctx, ctx.DepthBound)
}

func bestFirstCore(ctx *Context, depthBound int) Result {
	h0 := ctx.Heuristic.Value(ctx.Anchor)
	ord := ctx.ordering()

	pq := NewPriorityQueue()
	pq.Push(ctx.Anchor, h0)
	priorities := map[string]float64{ctx.Anchor.State.Key(): h0}

	visited := make(map[string]bool)
	expansions, heuristicCalls, orderingCalls := 0, 1, 0

	for !pq.Empty() {
		if ctx.Benchmark.TimeUp() {
			ctx.Benchmark.LogLookahead(false, expansions, heuristicCalls, orderingCalls, "Timeout")
			return Result{Outcome: Exhausted, Reason: "Timeout"}
		}

		node := pq.Pop()
		if visited[node.State.Key()] {
			continue
		}
		visited[node.State.Key()] = true
		parentH := priorities[node.State.Key()]

		if ctx.Tracker != nil {
			ctx.Tracker.Consider(node, parentH)
		}

		for _, succ := range ord.Order(ctx.Task, node.State) {
			if visited[succ.State.Key()] {
				continue
			}
			if ctx.deadEnded(succ.State) {
				continue
			}

			expansions++
			childNode := MakeChild(node, succ.Operator, succ.State)
			h := ctx.Heuristic.Value(childNode)
			heuristicCalls++

			if ctx.Tracker != nil {
				ctx.Tracker.Consider(childNode, h)
			}

			if ctx.improves(childNode, h, h0) {
				ctx.Benchmark.LogLookahead(true, expansions, heuristicCalls, orderingCalls, "Successor found")
				return Result{Outcome: Improvement, Node: childNode, Reason: "Successor found"}
			}

			if h == Inf() {
				continue
			}

			if ord.Learns() {
				ord.Update(parentH, h, succ.Operator)
				orderingCalls++
			}

			if depthBound >= 0 && childNode.Depth > ctx.Anchor.Depth+depthBound {
				continue
			}

			priorities[childNode.State.Key()] = h
			pq.Push(childNode, h)

			if ctx.QMax > 0 && pq.Len() > ctx.QMax {
				ctx.Benchmark.LogLookahead(false, expansions, heuristicCalls, orderingCalls, "Queue length limit reached")
				return Result{Outcome: BoundedOut, Reason: "Queue length limit reached"}
			}
		}
	}

	ctx.Benchmark.LogLookahead(false, expansions, heuristicCalls, orderingCalls, "Lookahead exhausted")
	return Result{Outcome: Exhausted, Reason: "Lookahead exhausted"}
}
