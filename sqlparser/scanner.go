package sqlparser

import (
	"regexp"
	"strings"
)

// MaxSummaryLen is the hard bound on the produced summary, named per the
// open question in spec section 9.4: the 255 cap is a convention, not a
// derived value, so it gets a name instead of a bare literal.
const MaxSummaryLen = 255

// numberRegexp recognizes the numeric-literal grammar: an optional leading
// sign (only meaningful when followed by a digit or a dot, which the
// alternation below guarantees), digits with at most one embedded dot, or a
// leading-dot fraction, followed by an optional e/E exponent with its own
// optional sign.
var numberRegexp = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]*)?`)

// parenDigitsRegexp matches the body of a `(123)` type-modifier sequence
// immediately after an opening paren we've already copied through. Only a
// bare run of digits followed by the closing paren qualifies; anything else
// falls back to the plain numeric-literal rule.
var parenDigitsRegexp = regexp.MustCompile(`^[0-9]+\)`)

// Scanner drives one single-pass scan of a SQL statement, writing the
// sanitized text and the bounded summary into caller-supplied buffers as it
// goes. It never allocates beyond what NewScanner is given: san and sum are
// written into directly, byte by byte, the same way the scratch buffer in
// spec section 3 is described - this is the zero-copy contract the driver
// relies on.
type Scanner struct {
	input string
	pos   int

	san    []byte
	sanLen int

	sum    []byte
	sumLen int

	prevKeyword *Keyword
	rootVerb    Category
	captureNext bool

	// OnKeywordMatch, if set, is invoked every time a keyword token is
	// recognized. It exists solely for CLI/debug tracing; the scan itself
	// never reads it back.
	OnKeywordMatch func(kw *Keyword)

	// OnToken, if set, is invoked after every token the dispatch loop in Run
	// consumes, keyword or not, with the kind of token and its raw source
	// text. Like OnKeywordMatch it exists for CLI/debug tracing only.
	OnToken func(tt TokenType, text string)
}

// NewScanner prepares a scanner over input. san must have capacity for the
// full sanitized output (len(input) is always enough); sum must have
// capacity for the summary, capped independently at MaxSummaryLen by the
// writer methods below.
func NewScanner(input string, san, sum []byte) *Scanner {
	return &Scanner{input: input, san: san[:0], sum: sum[:0]}
}

// Run scans the whole input, trying each recognizer in the fixed priority
// order spec section 4.1 describes: comments, then the three literal kinds,
// then whitespace, then the keyword/identifier tokenizer. The first
// recognizer to consume input wins the position and the loop restarts.
func (s *Scanner) Run() {
	for s.pos < len(s.input) {
		start := s.pos
		var tt TokenType
		switch {
		case s.skipComment():
			tt = CommentToken
		case s.sanitizeStringLiteral():
			tt = StringLiteralToken
		case s.sanitizeHexLiteral():
			tt = HexLiteralToken
		case s.sanitizeNumericLiteral():
			tt = NumericLiteralToken
		case s.parseWhitespace():
			tt = WhitespaceToken
		default:
			tt = s.parseNextToken()
		}
		if s.OnToken != nil {
			s.OnToken(tt, s.input[start:s.pos])
		}
	}
}

// Sanitized returns the sanitized output accumulated so far.
func (s *Scanner) Sanitized() string {
	return string(s.san[:s.sanLen])
}

// Summary returns the trimmed summary accumulated so far: a single trailing
// separator space, if present, is dropped.
func (s *Scanner) Summary() string {
	n := s.sumLen
	if n > 0 && s.sum[n-1] == ' ' {
		n--
	}
	return string(s.sum[:n])
}

func (s *Scanner) writeSan(str string) {
	n := copy(s.san[s.sanLen:cap(s.san)], str)
	s.sanLen += n
}

func (s *Scanner) writeSanByte(b byte) {
	s.san = s.san[:s.sanLen+1]
	s.san[s.sanLen] = b
	s.sanLen++
}

func (s *Scanner) sumCap() int {
	if MaxSummaryLen < cap(s.sum) {
		return MaxSummaryLen
	}
	return cap(s.sum)
}

func (s *Scanner) writeSum(str string) {
	max := s.sumCap()
	if s.sumLen >= max {
		return
	}
	n := copy(s.sum[s.sumLen:max], str)
	s.sumLen += n
}

func (s *Scanner) writeSumByte(b byte) {
	max := s.sumCap()
	if s.sumLen >= max {
		return
	}
	s.sum = s.sum[:s.sumLen+1]
	s.sum[s.sumLen] = b
	s.sumLen++
}

func (s *Scanner) prevCategory() Category {
	if s.prevKeyword == nil {
		return Unknown
	}
	return s.prevKeyword.Category
}

// isTopLevelVerb reports whether cat opens a new statement (or subquery) -
// the categories that reset rootVerb rather than extending the current
// chain.
func isTopLevelVerb(cat Category) bool {
	for _, c := range topLevelVerbs {
		if cat == c {
			return true
		}
	}
	return false
}

// skipComment is C2: block and line comments are dropped entirely from the
// sanitized output. A line comment leaves its terminating \r or \n in place
// for parseWhitespace to copy through, so surrounding line breaks survive.
func (s *Scanner) skipComment() bool {
	if s.pos+1 >= len(s.input) {
		return false
	}
	switch {
	case s.input[s.pos] == '/' && s.input[s.pos+1] == '*':
		if idx := strings.Index(s.input[s.pos+2:], "*/"); idx == -1 {
			s.pos = len(s.input)
		} else {
			s.pos += 2 + idx + 2
		}
		return true
	case s.input[s.pos] == '-' && s.input[s.pos+1] == '-':
		rest := s.input[s.pos+2:]
		if idx := strings.IndexAny(rest, "\r\n"); idx == -1 {
			s.pos = len(s.input)
		} else {
			s.pos += 2 + idx
		}
		return true
	}
	return false
}

// sanitizeStringLiteral is C1's string-literal rule: '' inside a literal
// escapes a single quote rather than closing it.
func (s *Scanner) sanitizeStringLiteral() bool {
	if s.input[s.pos] != '\'' {
		return false
	}
	i := s.pos + 1
	for i < len(s.input) {
		if s.input[i] != '\'' {
			i++
			continue
		}
		if i+1 < len(s.input) && s.input[i+1] == '\'' {
			i += 2
			continue
		}
		i++
		s.writeSanByte('?')
		s.pos = i
		return true
	}
	// unterminated: benignly consume to end of input
	s.writeSanByte('?')
	s.pos = len(s.input)
	return true
}

// sanitizeHexLiteral is C1's hex-literal rule, triggered by 0x/0X.
func (s *Scanner) sanitizeHexLiteral() bool {
	if s.pos+1 >= len(s.input) || s.input[s.pos] != '0' {
		return false
	}
	if c := s.input[s.pos+1]; c != 'x' && c != 'X' {
		return false
	}
	i := s.pos + 2
	for i < len(s.input) && isHexDigit(s.input[i]) {
		i++
	}
	s.writeSanByte('?')
	s.pos = i
	return true
}

// sanitizeNumericLiteral is C1's numeric-literal rule. It special-cases a
// parenthesized digit run immediately after an opening paren - a type
// modifier like VARCHAR(50) - by copying it through unchanged instead of
// replacing it with a placeholder.
func (s *Scanner) sanitizeNumericLiteral() bool {
	if s.pos > 0 && s.input[s.pos-1] == '(' {
		if m := parenDigitsRegexp.FindString(s.input[s.pos:]); m != "" {
			s.writeSan(m)
			s.pos += len(m)
			return true
		}
		// not a valid paren-digits-close: fall through to the normal rule
	}
	m := numberRegexp.FindString(s.input[s.pos:])
	if m == "" {
		return false
	}
	s.writeSanByte('?')
	s.pos += len(m)
	return true
}

func isWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// parseWhitespace copies any contiguous run of space/tab/CR/LF through
// verbatim; it is not part of the keyword/identifier tokenizer's matching.
func (s *Scanner) parseWhitespace() bool {
	if !isWhitespaceByte(s.input[s.pos]) {
		return false
	}
	start := s.pos
	for s.pos < len(s.input) && isWhitespaceByte(s.input[s.pos]) {
		s.pos++
	}
	s.writeSan(s.input[start:s.pos])
	return true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isAsciiLetter(b byte) bool {
	lower := b | 0x20
	return lower >= 'a' && lower <= 'z'
}

func isIdentChar(b byte) bool {
	return isAsciiLetter(b) || (b >= '0' && b <= '9') || b == '_' || b == '.'
}

// candidateSet is step 3 of the per-token dispatch in spec section 4.4: the
// set of keywords worth trying to match at the current position.
func (s *Scanner) candidateSet() []Category {
	if s.pos > 0 && s.input[s.pos-1] == '(' {
		return subqueryCandidates
	}
	if s.prevKeyword != nil && len(s.prevKeyword.FollowOn) > 0 {
		return s.prevKeyword.FollowOn
	}
	return topLevelVerbs
}

// parseNextToken is C3: the keyword/identifier dispatch. It is only called
// once none of the comment/literal/whitespace recognizers consumed the
// current position. It reports what kind of token it consumed, for
// OnToken's benefit.
func (s *Scanner) parseNextToken() TokenType {
	c := s.input[s.pos]

	if isAsciiLetter(c) {
		if !s.captureNext {
			for _, cat := range s.candidateSet() {
				if s.tryMatchKeyword(keywordTable[cat]) {
					return KeywordToken
				}
			}
		}
		s.scanIdentifier()
		return IdentifierToken
	}

	if c == '_' {
		s.scanIdentifier()
		return IdentifierToken
	}

	s.handleOtherChar(c)
	return OtherToken
}

// tryMatchKeyword attempts a case-insensitive exact match of kw.Text at the
// current position, requiring the following character (if any) to be
// whitespace. On success it copies the matched text verbatim - preserving
// the caller's casing - advances past it, and updates the chain state.
func (s *Scanner) tryMatchKeyword(kw *Keyword) bool {
	n := len(kw.Text)
	if s.pos+n > len(s.input) {
		return false
	}
	candidate := s.input[s.pos : s.pos+n]
	if !strings.EqualFold(candidate, kw.Text) {
		return false
	}
	if s.pos+n < len(s.input) && !isWhitespaceByte(s.input[s.pos+n]) {
		return false
	}

	s.writeSan(candidate)
	if s.sumLen < s.sumCap() && kw.CaptureInSummary(s.prevCategory(), s.rootVerb) {
		s.writeSum(candidate)
		s.writeSumByte(' ')
	}
	s.prevKeyword = kw
	if isTopLevelVerb(kw.Category) {
		s.rootVerb = kw.Category
	}
	s.captureNext = kw.FollowedByIdent
	s.pos += n
	if s.OnKeywordMatch != nil {
		s.OnKeywordMatch(kw)
	}
	return true
}

// scanIdentifier is step 5: the maximal run of [A-Za-z0-9_.] starting at the
// current position, captured into the summary only when a prior
// identifier-expecting keyword armed captureNext.
func (s *Scanner) scanIdentifier() {
	start := s.pos
	for s.pos < len(s.input) && isIdentChar(s.input[s.pos]) {
		s.pos++
	}
	token := s.input[start:s.pos]
	s.writeSan(token)
	if s.captureNext {
		s.writeSum(token)
		s.writeSumByte(' ')
	}
	s.captureNext = false
}

// handleOtherChar is step 6: any character that is neither part of a
// keyword/identifier nor consumed upstream is copied through as-is. The two
// sugar cases toggle captureNext so that the very next identifier-looking
// token still lands in the summary even though no keyword introduced it
// directly - a comma after FROM (table lists) and, optionally, an equals
// sign after ON (join targets).
func (s *Scanner) handleOtherChar(c byte) {
	s.writeSanByte(c)
	s.pos++

	switch {
	case s.prevCategory() == From && c == ',':
		s.captureNext = true
	case s.prevCategory() == On && c == '=' && captureIdentifierAfterOnEquals:
		s.captureNext = true
	}
}

// captureIdentifierAfterOnEquals resolves an open question from spec
// section 9: whether `ON ... = ` should arm identifier capture is
// implementation-defined. The default here is off, matching the spec's
// stated default.
const captureIdentifierAfterOnEquals = false
