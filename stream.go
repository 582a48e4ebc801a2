package userstream

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/prodev-io/userstream/iterators"
)

// DefaultBatchSize is the suggested batch size for UserBatches and Pages.
const DefaultBatchSize = iterators.DefaultBatchSize

// Users streams every row of user_data one at a time.
//
// The query executes when Users is called and the returned iterator holds its
// cursor until Close. Connection or query failures surface through the
// iterator: the first Next returns false and Err reports the cause, wrapped
// as ErrConnection or ErrQuery. The stream is one-shot and cannot be resumed
// after exhaustion or failure.
func Users(ctx context.Context, conn Connection) iterators.Interface[Row] {
	rows, err := conn.QueryContext(ctx, SelectUsers)
	if err != nil {
		return iterators.NewError[Row](classify(err))
	}
	return iterators.SQLRows[Row](rows, iterators.RowMapperFunc[Row](scanRow))
}

// UserBatches streams user_data in order-preserving batches of at most size rows.
//
// Same cursor discipline as Users: one SELECT, one cursor, released on Close.
// Every batch except possibly the last has exactly size rows and the final
// batch is never empty; an empty table yields zero batches. Concatenating all
// batches equals the Users stream for the same table state.
//
// A non-positive size is a caller error: the iterator fails with
// ErrInvalidBatchSize and no query is executed.
func UserBatches(ctx context.Context, conn Connection, size int) iterators.Interface[[]Row] {
	if size <= 0 {
		return iterators.NewError[[]Row](fmt.Errorf("%w: %d", ErrInvalidBatchSize, size))
	}
	return iterators.Batch[Row](Users(ctx, conn), size)
}

// Pages streams user_data as LIMIT/OFFSET pages of at most size rows.
//
// Unlike UserBatches, each page runs its own query and its cursor is closed
// before the page is handed to the consumer, so no cursor outlives a single
// advance. The stream ends on the first short or empty page. A non-positive
// size fails with ErrInvalidBatchSize before any query executes.
func Pages(ctx context.Context, conn Connection, size int) iterators.Interface[[]Row] {
	if size <= 0 {
		return iterators.NewError[[]Row](fmt.Errorf("%w: %d", ErrInvalidBatchSize, size))
	}
	return &pageIter{ctx: ctx, conn: conn, size: size}
}

type pageIter struct {
	ctx  context.Context
	conn Connection
	size int

	offset int
	value  []Row
	err    error
	done   bool
}

func (i *pageIter) Close() error {
	i.done = true
	return nil
}

func (i *pageIter) Err() error {
	return i.err
}

func (i *pageIter) Next() bool {
	if i.done || i.err != nil {
		return false
	}

	rows, err := i.conn.QueryContext(i.ctx, selectUsersPage, i.size, i.offset)
	if err != nil {
		i.err = classify(err)
		return false
	}

	page, err := iterators.Collect[Row](iterators.SQLRows[Row](rows, iterators.RowMapperFunc[Row](scanRow)))
	if err != nil {
		i.err = classify(err)
		return false
	}

	if len(page) == 0 {
		i.done = true
		return false
	}
	if len(page) < i.size {
		// short page, the table has nothing past it
		i.done = true
	}

	i.value = page
	i.offset += i.size
	return true
}

func (i *pageIter) Value() []Row {
	return i.value
}

// OlderThan keeps only the rows of src whose Age exceeds the given age.
func OlderThan(src iterators.Interface[Row], age float64) iterators.Interface[Row] {
	return iterators.Filter[Row](src, func(r Row) bool {
		return r.Age > age
	})
}

// Ages streams the age column of user_data.
func Ages(ctx context.Context, conn Connection) iterators.Interface[float64] {
	rows, err := conn.QueryContext(ctx, selectAges)
	if err != nil {
		return iterators.NewError[float64](classify(err))
	}
	return iterators.SQLRows[float64](rows, iterators.RowMapperFunc[float64](func(s iterators.RowScanner) (float64, error) {
		var age float64
		err := s.Scan(&age)
		return age, err
	}))
}

// AverageAge consumes the age stream and returns the mean age together with
// the number of rows seen, without materializing the result set.
// An empty table yields (0, 0, nil).
func AverageAge(ctx context.Context, conn Connection) (avg float64, n int, err error) {
	iter := Ages(ctx, conn)
	defer func() {
		closeErr := iter.Close()
		if err == nil {
			err = closeErr
		}
	}()

	var total float64
	for iter.Next() {
		total += iter.Value()
		n++
	}
	if err := iter.Err(); err != nil {
		return 0, 0, err
	}
	if n == 0 {
		return 0, 0, nil
	}
	return total / float64(n), n, nil
}

func scanRow(s iterators.RowScanner) (Row, error) {
	var r Row
	err := s.Scan(&r.UserID, &r.Name, &r.Email, &r.Age)
	return r, err
}

// classify wraps a driver error with the matching package error kind.
// Classification is best effort: database/sql does not export its
// "database is closed" error value, so that one is matched by message.
func classify(err error) error {
	if isConnectionErr(err) {
		return fmt.Errorf("%w: %s", ErrConnection, err)
	}
	return fmt.Errorf("%w: %s", ErrQuery, err)
}

func isConnectionErr(err error) bool {
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	return strings.Contains(err.Error(), "database is closed")
}
