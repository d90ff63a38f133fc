package sqlsanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeNilIsEmpty(t *testing.T) {
	info := Sanitize(nil)
	assert.Equal(t, SqlStatementInfo{}, info)
}

func TestSanitizeScenarios(t *testing.T) {
	cases := []struct {
		name, sql, wantSan, wantSum string
	}{
		{"select comma list", "SELECT * FROM Orders o, OrderDetails od",
			"SELECT * FROM Orders o, OrderDetails od", "SELECT Orders OrderDetails"},
		{"insert mixed literals",
			"INSERT INTO Orders(Id, Name, Bin, Rate) VALUES(1, 'abc''def', 0xFF, 1.23e-5)",
			"INSERT INTO Orders(Id, Name, Bin, Rate) VALUES(?, ?, ?, ?)", "INSERT Orders"},
		{"update", "UPDATE Orders SET Name = 'foo' WHERE Id = 42",
			"UPDATE Orders SET Name = ? WHERE Id = ?", "UPDATE Orders"},
		{"delete", "DELETE FROM Orders WHERE Id = 42",
			"DELETE FROM Orders WHERE Id = ?", "DELETE Orders"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			info := Sanitize(&c.sql)
			assert.Equal(t, c.wantSan, info.SanitizedSQL)
			assert.Equal(t, c.wantSum, info.Summary)
		})
	}
}

func TestSanitizeIsPure(t *testing.T) {
	sql := "SELECT a, b FROM widgets WHERE id = 7"
	first := SanitizeString(sql)
	second := SanitizeString(sql)
	assert.Equal(t, first, second)
}

func TestSanitizeEmptyString(t *testing.T) {
	empty := ""
	info := Sanitize(&empty)
	assert.Equal(t, SqlStatementInfo{}, info)
}

func TestCacheTransparency(t *testing.T) {
	defer SetCacheCapacity(0)

	sql := "SELECT * FROM widgets_for_cache_test"
	want := SanitizeString(sql)

	for _, capacity := range []int{0, -1, 1, 1000} {
		SetCacheCapacity(capacity)
		got := SanitizeString(sql)
		assert.Equal(t, want, got, "capacity=%d", capacity)
	}
}

func TestCacheDisabledByDefault(t *testing.T) {
	SetCacheCapacity(0)
	defer SetCacheCapacity(0)

	before := CacheLen()
	SanitizeString("SELECT 1 FROM disabled_cache_probe_table")
	assert.Equal(t, before, CacheLen())
}

func TestCacheNeverExceedsCapacityUnderSingleThreadedUse(t *testing.T) {
	SetCacheCapacity(2)
	defer SetCacheCapacity(0)

	before := CacheLen()
	SanitizeString("SELECT 1 FROM cache_cap_probe_a")
	SanitizeString("SELECT 1 FROM cache_cap_probe_b")
	SanitizeString("SELECT 1 FROM cache_cap_probe_c")
	require.LessOrEqual(t, CacheLen()-before, 2)
}

func TestUnterminatedConstructsDoNotPanic(t *testing.T) {
	inputs := []string{
		"SELECT * FROM t WHERE name = 'unterminated",
		"SELECT * FROM t /* unterminated comment",
		"SELECT * FROM t -- unterminated line comment",
		"",
		"   ",
		"'''",
		"/* */ /* */ /*",
	}
	for _, in := range inputs {
		in := in
		assert.NotPanics(t, func() {
			Sanitize(&in)
		})
	}
}

func TestSummaryNeverExceeds255(t *testing.T) {
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	for i := 0; i < 200; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("a_fairly_long_table_identifier_name")
	}
	sql := b.String()
	info := Sanitize(&sql)
	assert.LessOrEqual(t, len(info.Summary), 255)
}

func TestNoLiteralCharactersLeakIntoSanitizedOutput(t *testing.T) {
	sql := "SELECT secret_column FROM accounts WHERE token = 'sk-super-secret-value' /* don't log me */"
	info := Sanitize(&sql)
	assert.NotContains(t, info.SanitizedSQL, "sk-super-secret-value")
	assert.NotContains(t, info.SanitizedSQL, "don't log me")
}
