package internal

import "container/heap"

// Priority queue shared by the greedy stages. Items pop in ascending key
// order, and equal keys pop in insertion order, so floating point ties never
// depend on heap internals.
type priorityQueue[T any] struct {
	items    []queueItem[T]
	sequence int
}

type queueItem[T any] struct {
	key      float64
	sequence int
	value    T
}

func (q *priorityQueue[T]) Len() int { return len(q.items) }

func (q *priorityQueue[T]) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.key != b.key {
		return a.key < b.key
	}
	return a.sequence < b.sequence
}

func (q *priorityQueue[T]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *priorityQueue[T]) Push(x interface{}) { q.items = append(q.items, x.(queueItem[T])) }

func (q *priorityQueue[T]) Pop() interface{} {
	last := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return last
}

func (q *priorityQueue[T]) push(key float64, value T) {
	heap.Push(q, queueItem[T]{key: key, sequence: q.sequence, value: value})
	q.sequence++
}

func (q *priorityQueue[T]) pop() (float64, T) {
	item := heap.Pop(q).(queueItem[T])
	return item.key, item.value
}

func (q *priorityQueue[T]) empty() bool {
	return len(q.items) == 0
}
