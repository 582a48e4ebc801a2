package iterators

// NewError returns an iterator that has no elements and whose Err reports the given error.
// This can be used when an external resource encounters an unrecoverable error during query execution,
// while the function signature still promises an iterator.
func NewError[T any](err error) *Error[T] {
	return &Error[T]{err: err}
}

type Error[T any] struct {
	err error
}

func (i *Error[T]) Close() error {
	return nil
}

func (i *Error[T]) Next() bool {
	return false
}

func (i *Error[T]) Err() error {
	return i.err
}

func (i *Error[T]) Value() T {
	var v T
	return v
}
