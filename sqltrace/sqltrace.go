// Package sqltrace wraps a database/sql handle so that every statement it
// executes is sanitized and summarized before it reaches the log, the way an
// instrumentation layer sitting in front of application queries would. It
// knows nothing about the SQL dialect beyond what it needs to label a log
// line: the driver in use is detected once, when the handle is wrapped, by a
// type switch, not by a config flag, so wrapping a *sql.DB for either backend
// is interchangeable.
package sqltrace

import (
	"context"
	"database/sql"
	"database/sql/driver"

	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"

	"github.com/tracewell/sqlsanitize"
)

// DB is the subset of *sql.DB that Wrap instruments (*sql.Tx has the
// context-taking methods but no Driver, so it does not satisfy DB). Driver is included so the dialect can be detected
// without threading a separate parameter through every call.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	Driver() driver.Driver
}

var _ DB = &sql.DB{}

// Dialect names the database family behind a DB, as detected from its
// driver.Driver value.
type Dialect string

const (
	DialectUnknown    Dialect = "unknown"
	DialectSQLServer  Dialect = "sqlserver"
	DialectPostgreSQL Dialect = "postgres"
)

func dialectOf(d driver.Driver) Dialect {
	switch d.(type) {
	case *mssql.Driver:
		return DialectSQLServer
	case *stdlib.Driver:
		return DialectPostgreSQL
	default:
		return DialectUnknown
	}
}

// tracingDB wraps a DB, logging a sanitized summary of every statement it is
// asked to run before delegating to the wrapped handle.
type tracingDB struct {
	DB
	dialect Dialect
	log     logrus.FieldLogger
}

// Wrap returns a DB that logs a sanitized version of every query passed to
// ExecContext/QueryContext/QueryRowContext via log, then delegates to db
// unchanged. The dialect is detected once, from db.Driver(), at wrap time.
func Wrap(db DB, log logrus.FieldLogger) DB {
	return &tracingDB{DB: db, dialect: dialectOf(db.Driver()), log: log}
}

func (t *tracingDB) trace(query string) {
	info := sqlsanitize.SanitizeString(query)
	t.log.WithFields(logrus.Fields{
		"dialect": t.dialect,
		"summary": info.Summary,
		"sql":     info.SanitizedSQL,
	}).Debug("sql statement")
}

func (t *tracingDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	t.trace(query)
	res, err := t.DB.ExecContext(ctx, query, args...)
	return res, wrapError(t.dialect, query, err)
}

func (t *tracingDB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	t.trace(query)
	rows, err := t.DB.QueryContext(ctx, query, args...)
	return rows, wrapError(t.dialect, query, err)
}

func (t *tracingDB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	t.trace(query)
	return t.DB.QueryRowContext(ctx, query, args...)
}
