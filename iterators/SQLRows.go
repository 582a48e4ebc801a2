package iterators

import "io"

func SQLRows[T any](rows Rows, mapper RowMapper[T]) *SQLRowsIter[T] {
	return &SQLRowsIter[T]{Rows: rows, Mapper: mapper}
}

// SQLRowsIter allow you to use the same iterator pattern with the sql.Rows structure.
// It allows you to do dynamic filtering, pipeline/middleware pattern on your sql results,
// and it makes testing easier with the same Interface.
//
// The iterator owns the rows handle: Close releases the underlying cursor,
// and must be called on every exit path, including early abandonment.
type SQLRowsIter[T any] struct {
	Rows   Rows
	Mapper RowMapper[T]

	value T
	err   error
}

func (i *SQLRowsIter[T]) Close() error {
	return i.Rows.Close()
}

func (i *SQLRowsIter[T]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.Rows.Next() {
		return false
	}
	v, err := i.Mapper.Map(i.Rows)
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *SQLRowsIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.Rows.Err()
}

func (i *SQLRowsIter[T]) Value() T {
	return i.value
}

// sql rows iterator dependencies

// Rows is the cursor contract of database/sql's *sql.Rows.
type Rows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...interface{}) error
}

type RowScanner interface {
	Scan(...interface{}) error
}

type RowMapper[T any] interface {
	Map(s RowScanner) (T, error)
}

type RowMapperFunc[T any] func(RowScanner) (T, error)

func (fn RowMapperFunc[T]) Map(s RowScanner) (T, error) { return fn(s) }
