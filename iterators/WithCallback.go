package iterators

import "io"

// WithCallback lets you hook into the iterator's Close call,
// for example to release resources that live beside the iterator's own cursor.
func WithCallback[T any](i Interface[T], c Callback) *CallbackIterator[T] {
	return &CallbackIterator[T]{Interface: i, Callback: c}
}

type Callback struct {
	OnClose func(io.Closer) error
}

type CallbackIterator[T any] struct {
	Interface[T]
	Callback
}

func (i *CallbackIterator[T]) Close() error {
	if i.Callback.OnClose != nil {
		return i.Callback.OnClose(i.Interface)
	}
	return i.Interface.Close()
}
