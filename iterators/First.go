package iterators

// First returns the first element of the iterator and closes it.
// ErrNotFound is returned when the iterator was empty.
func First[T any](i Interface[T]) (v T, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()

	if !i.Next() {
		if iterErr := i.Err(); iterErr != nil {
			return v, iterErr
		}
		return v, ErrNotFound
	}

	return i.Value(), nil
}
