package event

// Queue is a fixed-capacity ring buffer of output records
// Thread-Safety: single producer (simulation tick), single consumer (frontend), same goroutine
// Overflow: oldest records overwritten when full
type Queue[T any] struct {
	items   []T
	mask    uint64
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

// NewQueue creates a queue with capacity rounded up to a power of two
func NewQueue[T any](capacity int) *Queue[T] {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &Queue[T]{
		items: make([]T, size),
		mask:  uint64(size - 1),
	}
}

// Push appends a record, overwriting the oldest unread one when full
func (q *Queue[T]) Push(item T) {
	q.items[q.tail&q.mask] = item
	q.tail++
	if q.tail-q.head > uint64(len(q.items)) {
		q.head = q.tail - uint64(len(q.items))
		q.dropped++
	}
}

// Drain returns all pending records in FIFO order and clears the queue
func (q *Queue[T]) Drain() []T {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]T, 0, n)
	for i := q.head; i < q.tail; i++ {
		idx := i & q.mask
		result = append(result, q.items[idx])
		var zero T
		q.items[idx] = zero
	}
	q.head = q.tail
	return result
}

// Len returns pending record count
func (q *Queue[T]) Len() int {
	return int(q.tail - q.head)
}

// Cap returns the ring capacity
func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// Dropped returns how many records were overwritten before being drained
func (q *Queue[T]) Dropped() uint64 {
	return q.dropped
}
