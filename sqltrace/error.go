package sqltrace

import (
	"errors"
	"fmt"

	mssql "github.com/microsoft/go-mssqldb"

	"github.com/tracewell/sqlsanitize"
)

// StatementError wraps a driver error with the sanitized form of the
// statement that produced it, so error logs never carry raw literal values
// even on the failure path.
type StatementError struct {
	Dialect Dialect
	Info    sqlsanitize.SqlStatementInfo
	Err     error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Dialect, e.Info.Summary, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

// AsMSSQLError reports whether e wraps a SQL Server driver error, for
// callers that want the per-message detail (proc name, line number) the
// driver attaches: mssql.Error.All.
func (e *StatementError) AsMSSQLError() (mssql.Error, bool) {
	var me mssql.Error
	if errors.As(e.Err, &me) {
		return me, true
	}
	return mssql.Error{}, false
}

// wrapError annotates err, if non-nil, with the sanitized form of query and
// the dialect that produced it.
func wrapError(dialect Dialect, query string, err error) error {
	if err == nil {
		return nil
	}
	return &StatementError{
		Dialect: dialect,
		Info:    sqlsanitize.SanitizeString(query),
		Err:     err,
	}
}
