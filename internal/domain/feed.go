package domain

// Feed is a bounded, newest-first history. A capacity of zero or less keeps
// every item. Feed is not safe for concurrent use; its owner serializes access.
type Feed[T any] struct {
	capacity int
	items    []T
}

func NewFeed[T any](capacity int) *Feed[T] {
	return &Feed[T]{capacity: capacity}
}

func (f *Feed[T]) Push(item T) {
	size := len(f.items) + 1
	if f.capacity > 0 && size > f.capacity {
		size = f.capacity
	}

	next := make([]T, 0, size)
	next = append(next, item)
	for _, existing := range f.items {
		if len(next) == size {
			break
		}
		next = append(next, existing)
	}
	f.items = next
}

// Append adds item at the tail, for buffers read in playback order.
func (f *Feed[T]) Append(item T) {
	f.items = append(f.items, item)
	if f.capacity > 0 && len(f.items) > f.capacity {
		f.items = f.items[len(f.items)-f.capacity:]
	}
}

func (f *Feed[T]) Items() []T {
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Feed[T]) Len() int {
	return len(f.items)
}

func (f *Feed[T]) Cap() int {
	return f.capacity
}

func (f *Feed[T]) Clear() {
	f.items = nil
}
