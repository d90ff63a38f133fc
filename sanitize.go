// Package sqlsanitize implements a single-pass SQL sanitizer and
// summarizer: given a possibly user-supplied SQL statement, it produces a
// sanitized copy with literal values masked by '?' and comments removed,
// plus a short bounded summary of the statement's shape (its principal
// keywords and target identifiers). It is meant to sit on the hot path of
// an instrumentation layer that observes every SQL statement an
// application issues, so it never errors, never blocks, and allocates at
// most the two strings it returns.
package sqlsanitize

import (
	"github.com/tracewell/sqlsanitize/internal/bufpool"
	"github.com/tracewell/sqlsanitize/sqlparser"
)

// SqlStatementInfo is the result of sanitizing a SQL statement: the
// statement with literals masked and comments removed, and a bounded
// summary of its operation and targets. Both fields may be empty.
type SqlStatementInfo struct {
	SanitizedSQL string
	Summary      string
}

// Sanitize computes the sanitized statement and summary for sql. A nil sql
// returns the empty result without touching the cache or the scanner.
//
// Results are cached process-wide when a capacity was set via
// SetCacheCapacity; repeated calls with equal input return equal results -
// the cache is the only state Sanitize reads or writes beyond its argument,
// and it never changes what is returned for a given input.
func Sanitize(sql *string) SqlStatementInfo {
	if sql == nil {
		return SqlStatementInfo{}
	}
	return SanitizeString(*sql)
}

// SanitizeString is Sanitize for callers that already know sql is present.
func SanitizeString(sql string) SqlStatementInfo {
	if info, ok := globalCache.lookup(sql); ok {
		return info
	}

	info := scan(sql)

	globalCache.insertIfAbsent(sql, info)
	return info
}

// scan runs the C1-C3 recognizers once over sql using a pooled scratch
// buffer of size 2*len(sql), as described in spec section 4.1: the lower
// half backs the sanitized output, the upper half backs the summary.
func scan(sql string) SqlStatementInfo {
	if len(sql) == 0 {
		return SqlStatementInfo{}
	}

	scratch := bufpool.Get(2 * len(sql))
	defer bufpool.Put(scratch)

	buf := *scratch
	san := buf[:0:len(sql)]
	sum := buf[len(sql) : len(sql) : 2*len(sql)]

	s := sqlparser.NewScanner(sql, san, sum)
	s.Run()

	return SqlStatementInfo{
		SanitizedSQL: s.Sanitized(),
		Summary:      s.Summary(),
	}
}
