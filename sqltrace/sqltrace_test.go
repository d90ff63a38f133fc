package sqltrace

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriver struct{ driver.Driver }

type fakeDB struct {
	lastQuery string
	execErr   error
}

func (f *fakeDB) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	f.lastQuery = query
	return nil, f.execErr
}

func (f *fakeDB) QueryContext(_ context.Context, query string, _ ...interface{}) (*sql.Rows, error) {
	f.lastQuery = query
	return nil, nil
}

func (f *fakeDB) QueryRowContext(_ context.Context, query string, _ ...interface{}) *sql.Row {
	f.lastQuery = query
	return nil
}

func (f *fakeDB) Driver() driver.Driver { return fakeDriver{} }

func TestWrapTracesSanitizedSQL(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	fake := &fakeDB{}
	db := Wrap(fake, logger)

	_, err := db.ExecContext(context.Background(), "SELECT * FROM secrets WHERE token = 'abc123'")
	require.NoError(t, err)

	require.Len(t, hook.Entries, 1)
	assert.NotContains(t, hook.Entries[0].Data["sql"], "abc123")
	assert.Equal(t, "SELECT secrets", hook.Entries[0].Data["summary"])
	assert.Equal(t, DialectUnknown, hook.Entries[0].Data["dialect"])
}

func TestWrapWrapsExecErrorWithSanitizedStatement(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fake := &fakeDB{execErr: errors.New("boom")}
	db := Wrap(fake, logger)

	_, err := db.ExecContext(context.Background(), "UPDATE accounts SET balance = 0 WHERE id = 1")
	require.Error(t, err)

	var stmtErr *StatementError
	require.ErrorAs(t, err, &stmtErr)
	assert.Equal(t, "UPDATE accounts", stmtErr.Info.Summary)
	assert.ErrorIs(t, stmtErr, stmtErr.Err)
}

func TestDialectOfDetectsKnownDrivers(t *testing.T) {
	assert.Equal(t, DialectSQLServer, dialectOf(&mssql.Driver{}))
	assert.Equal(t, DialectUnknown, dialectOf(fakeDriver{}))
}
