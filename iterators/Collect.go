package iterators

// Collect drains the iterator into a slice and closes it.
// The iterator is closed even when iteration fails part way through.
func Collect[T any](i Interface[T]) (vs []T, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()

	for i.Next() {
		vs = append(vs, i.Value())
	}

	return vs, i.Err()
}
