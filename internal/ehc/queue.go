package ehc

import "container/heap"

// entry is one (priority, insertion-order, item) slot in the queue's
// internal heap. Superseded entries are left in place but flagged dead;
// Pop skips over them (lazy deletion), matching the tombstone idiom of
// pyperplan's PriorityQueue.
type entry struct {
	priority float64
	seq      int64
	node     *Node
	dead     bool
	index    int // heap.Interface bookkeeping
}

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *entryHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// PriorityQueue is a min-heap of nodes keyed by (priority, insertion
// counter), with lazy deletion and push-time supersedence: pushing an item
// already present tombstones its previous entry before inserting the new
// one. Ties break by FIFO insertion order. Len() reports the count of
// non-tombstoned entries.
type PriorityQueue struct {
	h       entryHeap
	byState map[string]*entry
	counter int64
}

// NewPriorityQueue returns an empty priority queue.
func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{byState: make(map[string]*entry)}
}

// Push inserts node at the given priority. If a live entry for the same
// state already exists, it is tombstoned first (supersedence).
func (pq *PriorityQueue) Push(node *Node, priority float64) {
	if old, ok := pq.byState[node.State.Key()]; ok {
		old.dead = true
	}
	e := &entry{priority: priority, seq: pq.counter, node: node}
	pq.counter++
	pq.byState[node.State.Key()] = e
	heap.Push(&pq.h, e)
}

// Pop removes and returns the live entry with the lowest priority,
// discarding tombstones along the way. Popping an empty queue is a
// programming error and panics, matching the "fail fast" contract of
// spec.md §7 for invariant violations.
func (pq *PriorityQueue) Pop() *Node {
	for pq.h.Len() > 0 {
		e := heap.Pop(&pq.h).(*entry)
		if e.dead {
			continue
		}
		delete(pq.byState, e.node.State.Key())
		return e.node
	}
	panic("ehc: pop from empty priority queue")
}

// Reset empties the queue.
func (pq *PriorityQueue) Reset() {
	pq.h = nil
	pq.byState = make(map[string]*entry)
	pq.counter = 0
}

// Len reports the number of live (non-tombstoned) entries.
func (pq *PriorityQueue) Len() int {
	return len(pq.byState)
}

// Empty reports whether the queue holds no live entries.
func (pq *PriorityQueue) Empty() bool {
	return pq.Len() == 0
}
