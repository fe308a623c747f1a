package sat

import "container/heap"

// scoreEntry is one (score, literal) pair pushed onto the heap. score is the
// value at push time — entries are never updated in place, only re-pushed,
// so an entry can go stale relative to the live score map (vsidsHeuristic.scores).
type scoreEntry struct {
	score float64
	lit   Literal
}

// scoreHeapImpl backs scoreHeap's container/heap.Interface. It is a plain
// min-heap with no index: duplicate and stale entries are expected and
// simply discarded lazily at pop time (see vsidsHeuristic.calculate). This
// is grounded on cespare/saturday's litHeap, which is the only repo in the
// pack driving container/heap over a literal priority queue — but unlike
// litHeap (which keeps a lit->index map so it can heap.Fix/heap.Remove
// arbitrary entries), this variant intentionally drops that bookkeeping: the
// spec calls for a lazy, duplicate-tolerant heap rather than a decrease-key
// one, and a plain heap.Push/heap.Pop pair is all that design needs.
type scoreHeapImpl []scoreEntry

func (h scoreHeapImpl) Len() int            { return len(h) }
func (h scoreHeapImpl) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h scoreHeapImpl) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoreHeapImpl) Push(x interface{}) { *h = append(*h, x.(scoreEntry)) }
func (h *scoreHeapImpl) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// scoreHeap is the min-heap of (score, literal) pairs described in spec.md
// §4.6: the literal with the smallest (most negative) score — i.e. the one
// whose negated score has the highest magnitude — comes out first.
type scoreHeap struct {
	impl scoreHeapImpl
}

func newScoreHeap(capacity int) *scoreHeap {
	return &scoreHeap{impl: make(scoreHeapImpl, 0, capacity)}
}

func (h *scoreHeap) Push(score float64, lit Literal) {
	heap.Push(&h.impl, scoreEntry{score: score, lit: lit})
}

func (h *scoreHeap) Len() int {
	return h.impl.Len()
}

// Pop removes and returns the entry with the smallest score. Panics if empty
// — callers must check Len() first.
func (h *scoreHeap) Pop() scoreEntry {
	return heap.Pop(&h.impl).(scoreEntry)
}
