package iterators

import "io"

// Interface define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// Every iterator is one-shot: once Next reported false, whether because the
// source is exhausted, failed or the iterator got closed, it never reports
// true again.
type Interface[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene.
	// For all other cases where the underlying io is handled on a higher level, it should simply return nil.
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}
