// Package identfmt decides how to display an identifier (the query command's
// result column names) in CLI output: bare if it is a safe, ordinary
// identifier, bracket-quoted otherwise. This is purely a pretty-printing concern for cmd/sqlsanitize -
// the sanitizer's own identifier scanning in sqlparser is ASCII-only by
// contract and never needs it.
package identfmt

import (
	"strings"

	"github.com/smasher164/xid"
)

// Quote returns ident as-is if it is a plain identifier (a valid XID start
// followed by XID continue characters, per the Unicode identifier syntax
// used by most SQL dialects' unquoted-identifier rule), or bracket-quoted
// otherwise so the CLI's pretty output never runs an odd-looking captured
// token into the surrounding text.
func Quote(ident string) string {
	if isPlain(ident) {
		return ident
	}
	return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
}

func isPlain(ident string) bool {
	if ident == "" {
		return false
	}
	for i, r := range ident {
		if i == 0 {
			if !xid.Start(r) {
				return false
			}
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	return true
}
