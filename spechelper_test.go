package userstream_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"

	"github.com/prodev-io/userstream"
)

var userColumns = []string{"user_id", "name", "email", "age"}

// newMockDB gives a sqlmock-backed handle that is closed and verified on cleanup.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		mock.ExpectClose()
		require.NoError(t, db.Close())
		require.NoError(t, mock.ExpectationsWereMet())
	})
	return db, mock
}

func randomRow() userstream.Row {
	return userstream.Row{
		UserID: uuid.NewV4().String(),
		Name:   randomdata.FullName(randomdata.RandomGender),
		Email:  randomdata.Email(),
		Age:    float64(randomdata.Number(18, 99)),
	}
}

func randomRows(n int) []userstream.Row {
	rows := make([]userstream.Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, randomRow())
	}
	return rows
}

// asMockRows renders fixture rows in the shape the driver would return them.
func asMockRows(rows []userstream.Row) *sqlmock.Rows {
	out := sqlmock.NewRows(userColumns)
	for _, r := range rows {
		out.AddRow(r.UserID, r.Name, r.Email, r.Age)
	}
	return out
}
