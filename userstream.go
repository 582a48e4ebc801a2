// Package userstream streams rows of the MySQL user_data table as lazy,
// one-shot iterators.
//
// Two fetch modes are offered over the same fixed query: Users yields rows
// one at a time, UserBatches yields them regrouped into bounded-size batches.
// Both hold a single cursor for the lifetime of the stream and release it on
// Close, whether the consumer drained the stream, abandoned it early, or hit
// an error.
package userstream

import (
	"context"
	"database/sql"
)

// SelectUsers is the fixed query every full-table stream executes.
// No parameters, no filtering, no ordering clause: rows arrive in the
// result set's natural order.
const SelectUsers = `SELECT user_id, name, email, age FROM user_data`

// selectUsersPage is the paginated variant used by Pages.
const selectUsersPage = SelectUsers + ` LIMIT ? OFFSET ?`

// selectAges feeds the age-only stream behind AverageAge.
const selectAges = `SELECT age FROM user_data`

// Row is one record of the user_data table. Immutable once fetched;
// it has no identity beyond its fields.
type Row struct {
	UserID string
	Name   string
	Email  string
	Age    float64
}

// Connection is the read surface this package needs from a database handle.
// *sql.DB and *sql.Tx both satisfy it. The handle is owned by the caller and
// must outlive every stream created from it; it is the caller's to release.
type Connection interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Error is an error implementation that allows the package's error kinds
// to be declared with the const keyword.
type Error string

func (err Error) Error() string { return string(err) }

const (
	// ErrConnection signals that the supplied connection is invalid, closed or unreachable.
	ErrConnection Error = "userstream: connection unavailable"
	// ErrQuery signals that the fixed SELECT failed against the schema.
	ErrQuery Error = "userstream: query failed"
	// ErrInvalidBatchSize signals a non-positive batch or page size.
	// It surfaces before any query executes.
	ErrInvalidBatchSize Error = "userstream: batch size must be a positive integer"
)
