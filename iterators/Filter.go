package iterators

// Filter keeps only those elements of the source iterator for which match reports true.
func Filter[T any](src Interface[T], match func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{src: src, match: match}
}

type FilterIter[T any] struct {
	src   Interface[T]
	match func(T) bool

	value T
}

func (i *FilterIter[T]) Close() error {
	return i.src.Close()
}

func (i *FilterIter[T]) Err() error {
	return i.src.Err()
}

func (i *FilterIter[T]) Next() bool {
	for i.src.Next() {
		if v := i.src.Value(); i.match(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *FilterIter[T]) Value() T {
	return i.value
}
