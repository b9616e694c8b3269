package shortestpath

// item is one entry in a lazy-deletion priority queue: a candidate state
// with the distance it was pushed at. Pushing a better distance for a state
// already in the queue leaves the stale entry behind, skipped on pop by
// comparing against the authoritative distance array.
type item struct {
	state int
	dist  Cost64
}

// itemPQ is a min-heap of *item ordered by dist ascending.
type itemPQ []*item

func (pq itemPQ) Len() int            { return len(pq) }
func (pq itemPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq itemPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
