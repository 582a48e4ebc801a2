package iterators

// DefaultBatchSize is used by Batch when the given size is not a positive integer.
const DefaultBatchSize = 100

// Batch regroups the source iterator's elements into groups of at most size.
// Order is preserved: concatenating the emitted groups yields the source sequence.
// Every group except possibly the last has exactly size elements,
// and an exhausted source yields zero groups rather than one empty group.
//
// Closing the batch iterator closes the source, so the source's cursor is
// released even when the consumer abandons the stream mid-way.
func Batch[T any](src Interface[T], size int) *BatchIter[T] {
	if size < 1 {
		size = DefaultBatchSize
	}
	return &BatchIter[T]{src: src, size: size}
}

type BatchIter[T any] struct {
	src  Interface[T]
	size int

	value []T
}

func (i *BatchIter[T]) Close() error {
	return i.src.Close()
}

func (i *BatchIter[T]) Err() error {
	return i.src.Err()
}

func (i *BatchIter[T]) Next() bool {
	batch := make([]T, 0, i.size)
	for len(batch) < i.size && i.src.Next() {
		batch = append(batch, i.src.Value())
	}
	if len(batch) == 0 {
		return false
	}
	i.value = batch
	return true
}

func (i *BatchIter[T]) Value() []T {
	return i.value
}
