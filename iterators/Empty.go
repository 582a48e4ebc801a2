package iterators

// Empty returns an iterator with no elements.
// It stands in for a nil result where the signature still promises an iterator (Null Object pattern).
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

type EmptyIter[T any] struct{}

func (i *EmptyIter[T]) Close() error {
	return nil
}

func (i *EmptyIter[T]) Next() bool {
	return false
}

func (i *EmptyIter[T]) Err() error {
	return nil
}

func (i *EmptyIter[T]) Value() T {
	var v T
	return v
}
