package sqlparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runScanner is the shared test harness: it sizes san/sum the way the
// driver in the root package does (len(input) each) and runs the scanner
// to completion.
func runScanner(input string) (sanitized, summary string) {
	san := make([]byte, 0, len(input))
	sum := make([]byte, 0, len(input))
	s := NewScanner(input, san, sum)
	s.Run()
	return s.Sanitized(), s.Summary()
}

func TestScenarios(t *testing.T) {
	test := func(input, wantSan, wantSum string) func(*testing.T) {
		return func(t *testing.T) {
			gotSan, gotSum := runScanner(input)
			assert.Equal(t, wantSan, gotSan)
			assert.Equal(t, wantSum, gotSum)
		}
	}

	t.Run("S1 select with comma table list", test(
		"SELECT * FROM Orders o, OrderDetails od",
		"SELECT * FROM Orders o, OrderDetails od",
		"SELECT Orders OrderDetails",
	))
	t.Run("S2 insert with mixed literals", test(
		"INSERT INTO Orders(Id, Name, Bin, Rate) VALUES(1, 'abc''def', 0xFF, 1.23e-5)",
		"INSERT INTO Orders(Id, Name, Bin, Rate) VALUES(?, ?, ?, ?)",
		"INSERT Orders",
	))
	t.Run("S3 update", test(
		"UPDATE Orders SET Name = 'foo' WHERE Id = 42",
		"UPDATE Orders SET Name = ? WHERE Id = ?",
		"UPDATE Orders",
	))
	t.Run("S4 delete", test(
		"DELETE FROM Orders WHERE Id = 42",
		"DELETE FROM Orders WHERE Id = ?",
		"DELETE Orders",
	))
	t.Run("S5 create unique clustered index", test(
		"CREATE UNIQUE CLUSTERED INDEX IX_Orders_Id ON Orders(Id)",
		"CREATE UNIQUE CLUSTERED INDEX IX_Orders_Id ON Orders(Id)",
		"CREATE UNIQUE CLUSTERED INDEX IX_Orders_Id Orders",
	))
	t.Run("S6 select distinct join", test(
		"SELECT DISTINCT o.Id FROM Orders o JOIN Customers c ON o.CustomerId = c.Id",
		"SELECT DISTINCT o.Id FROM Orders o JOIN Customers c ON o.CustomerId = c.Id",
		"SELECT DISTINCT Orders Customers",
	))
	t.Run("S7 line and block comments", test(
		"SELECT column -- end of line comment\nFROM /* block \n comment */ table",
		"SELECT column \nFROM  table",
		"SELECT table",
	))
}

func TestStringLiteral(t *testing.T) {
	test := func(input, wantSan string, wantConsumed int) func(*testing.T) {
		return func(t *testing.T) {
			s := NewScanner(input, make([]byte, 0, len(input)), make([]byte, 0, len(input)))
			ok := s.sanitizeStringLiteral()
			assert.True(t, ok)
			assert.Equal(t, wantSan, s.Sanitized())
			assert.Equal(t, wantConsumed, s.pos)
		}
	}

	t.Run("simple", test("'hello world'", "?", len("'hello world'")))
	t.Run("escaped quote", test("'hello ''world'''", "?", len("'hello ''world'''")))
	t.Run("empty", test("''", "?", 2))
	t.Run("unterminated", test("'abc", "?", 4))
}

func TestHexLiteral(t *testing.T) {
	s := NewScanner("0xFF more", make([]byte, 0, 20), make([]byte, 0, 20))
	assert.True(t, s.sanitizeHexLiteral())
	assert.Equal(t, "?", s.Sanitized())
	assert.Equal(t, 4, s.pos)

	s2 := NewScanner("0X1a2B ", make([]byte, 0, 20), make([]byte, 0, 20))
	assert.True(t, s2.sanitizeHexLiteral())
	assert.Equal(t, 6, s2.pos)

	s3 := NewScanner("0yFF", make([]byte, 0, 20), make([]byte, 0, 20))
	assert.False(t, s3.sanitizeHexLiteral())
}

func TestNumericLiteral(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"123", "123"},
		{"+123.e-3_asdf", "+123.e-3"},
		{"-123.12e-35+a", "-123.12e-35"},
		{".5rest", ".5"},
		{"-.5rest", "-.5"},
		{"123.45.67", "123.45"},
	}
	for _, c := range cases {
		s := NewScanner(c.input, make([]byte, 0, len(c.input)), make([]byte, 0, len(c.input)))
		ok := s.sanitizeNumericLiteral()
		assert.True(t, ok, c.input)
		assert.Equal(t, len(c.want), s.pos, c.input)
		assert.Equal(t, "?", s.Sanitized(), c.input)
	}

	// a bare sign followed by non-digit/non-dot is not a numeric literal
	s := NewScanner("- 5", make([]byte, 0, 3), make([]byte, 0, 3))
	assert.False(t, s.sanitizeNumericLiteral())
}

func TestParenDigitsPassthrough(t *testing.T) {
	sanitized, _ := runScanner("VARCHAR(50)")
	assert.Equal(t, "VARCHAR(50)", sanitized)

	// not a clean digit-run-then-close: falls back to the numeric rule,
	// so the digits get replaced like any other literal.
	sanitized2, _ := runScanner("f(12,3)")
	assert.Equal(t, "f(?,?)", sanitized2)
}

func TestCommentSkipper(t *testing.T) {
	// the space between "1" and the comment marker is its own whitespace
	// run, preserved even though the comment itself vanishes.
	sanitized, summary := runScanner("SELECT 1 /* unterminated")
	assert.Equal(t, "SELECT ? ", sanitized)
	assert.Equal(t, "SELECT", summary)

	sanitized2, _ := runScanner("SELECT 1 -- trailing line comment, no newline")
	assert.Equal(t, "SELECT ? ", sanitized2)
}

func TestCaseInsensitiveKeywordMatching(t *testing.T) {
	lower := "select * from orders"
	upper := "SELECT * FROM ORDERS"
	mixed := "SeLeCt * FrOm Orders"

	_, sumLower := runScanner(lower)
	_, sumUpper := runScanner(upper)
	_, sumMixed := runScanner(mixed)

	assert.Equal(t, strings.ToUpper(sumLower), strings.ToUpper(sumUpper))
	assert.Equal(t, strings.ToUpper(sumLower), strings.ToUpper(sumMixed))

	sanLower, _ := runScanner(lower)
	sanMixed, _ := runScanner(mixed)
	assert.Equal(t, strings.ToLower(sanLower), strings.ToLower(sanMixed))
}

func TestSubqueryRuleOnlyMatchesSelect(t *testing.T) {
	sanitized, summary := runScanner("WHERE x IN (SELECT y FROM z)")
	assert.Equal(t, "WHERE x IN (SELECT y FROM z)", sanitized)
	assert.Equal(t, "SELECT z", summary)
}

func TestSummaryNeverExceedsMaxLen(t *testing.T) {
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	for i := 0; i < 100; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("table_name_number_")
		b.WriteString(strings.Repeat("x", 5))
	}
	_, summary := runScanner(b.String())
	assert.LessOrEqual(t, len(summary), MaxSummaryLen)
	assert.False(t, strings.HasSuffix(summary, " "))
}

func TestWhitespaceOnlyAndEmptyInput(t *testing.T) {
	sanitized, summary := runScanner("   \t\n  ")
	assert.Equal(t, "   \t\n  ", sanitized)
	assert.Equal(t, "", summary)
}

func TestUnterminatedStringDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		runScanner("SELECT 'abc")
	})
	assert.NotPanics(t, func() {
		runScanner("SELECT /* never closes")
	})
	assert.NotPanics(t, func() {
		runScanner("")
	})
}
