package gridpath

// PriorityQueueItem is one frontier entry. A cell may have several entries;
// all but the cheapest are stale and get skipped when popped.
type PriorityQueueItem struct {
	Cell   Cell
	GScore float64
	FCost  float64
}

// PriorityQueue is a min-heap on FCost for use with container/heap.
// Only FCost is compared, so equal-F entries come out in an order fixed by
// the insertion sequence.
type PriorityQueue []PriorityQueueItem

func (queue PriorityQueue) Len() int           { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool { return queue[i].FCost < queue[j].FCost }
func (queue PriorityQueue) Swap(i, j int)      { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}
