package sqltrace

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"  // registers "pgx"
	_ "github.com/microsoft/go-mssqldb" // registers "sqlserver"
)

// Open is a thin wrapper around sql.Open that exists so callers only need to
// import sqltrace, not the driver packages themselves; driverName is still
// "sqlserver" or "pgx", same as sql.Open expects.
func Open(driverName, dsn string) (*sql.DB, error) {
	return sql.Open(driverName, dsn)
}
