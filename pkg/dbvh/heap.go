package dbvh

import "container/heap"

// qnode is one candidate in the exact-SAH / Bittner priority queue: the
// node being considered as a sibling, together with the lower bound on the
// total cost achievable by descending beneath it.
//
// Grounded on junjiewwang-perf-analysis's analysis_biggest_objects.go,
// the one place in the reference corpus that drives a manual
// container/heap of application-level structs; here the struct is a
// (node index, bound) pair instead of an (object, size) pair.
type qnode struct {
	index int32
	bound float64
}

// pqueue is a min-heap of qnode ordered by bound, reused across calls to
// avoid per-insert allocation (spec §3/§5 "reusable priority-queue
// buffer"). The zero value is an empty, ready-to-use queue.
type pqueue []qnode

var _ heap.Interface = (*pqueue)(nil)

func (q pqueue) Len() int            { return len(q) }
func (q pqueue) Less(i, j int) bool  { return q[i].bound < q[j].bound }
func (q pqueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pqueue) Push(x any)         { *q = append(*q, x.(qnode)) }
func (q *pqueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// reset truncates the queue to length 0 without releasing its backing
// array, so repeated inserts do not reallocate (mirrors the teacher's
// Arena.Reset keeping the largest block around for reuse).
func (q *pqueue) reset() { *q = (*q)[:0] }

func (q *pqueue) pushBound(index int32, bound float64) {
	heap.Push(q, qnode{index, bound})
}

func (q *pqueue) popMin() qnode {
	return heap.Pop(q).(qnode)
}
