package gridpath

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueuePopsLowestF(t *testing.T) {
	t.Parallel()

	queue := make(PriorityQueue, 0)
	heap.Init(&queue)
	for _, f := range []float64{4, 1.5, 3, 0.5, 2} {
		heap.Push(&queue, PriorityQueueItem{FCost: f})
	}
	// a stale duplicate is just another entry
	heap.Push(&queue, PriorityQueueItem{Cell: Cell{1, 1}, FCost: 1.5})

	var got []float64
	for queue.Len() > 0 {
		got = append(got, heap.Pop(&queue).(PriorityQueueItem).FCost)
	}
	assert.Equal(t, []float64{0.5, 1.5, 1.5, 2, 3, 4}, got)
}
