// Package syntax implements the lexical scanner that classifies source text
// into styled spans for rendering. A Scanner walks the input once, left to
// right, consulting an immutable per-language Table at each decision point
// and emitting Spans as it advances. The scan is total: malformed input
// degrades to Unknown or unterminated spans, never an error.
package syntax

import (
	"strings"
	"unicode/utf8"
)

// scanMode is the scanner's current lexical context.
type scanMode int

const (
	modeNormal scanMode = iota
	modeString
	modeLineComment
	modeBlockComment
	modeRegex
)

// Scanner produces a lazy stream of classified spans over one source text.
// A Scanner is single-use: a fresh one must be created to re-scan. It is not
// safe for concurrent use; the Table it reads is.
type Scanner struct {
	table *Table
	src   string
	pos   int

	mode scanMode
	str  StringRule // active string rule, prefix flags merged

	// Previous significant span, for deciding whether a regex literal may
	// start here. Whitespace and comments are not significant.
	prevCat  Category
	prevText string
	hasPrev  bool
}

// NewScanner creates a scanner over src using the given rule table.
func NewScanner(table *Table, src string) *Scanner {
	return &Scanner{table: table, src: src}
}

// Scan tokenizes src in full and returns the spans in order. Concatenating
// the spans' text reproduces src exactly.
func Scan(table *Table, src string) []Span {
	sc := NewScanner(table, src)
	var spans []Span
	for {
		sp, ok := sc.Next()
		if !ok {
			return spans
		}
		spans = append(spans, sp)
	}
}

// Next advances the scanner by one token and returns its span. The second
// result is false once the input is exhausted. Every call consumes at least
// one byte, so a scan over finite input always terminates.
func (s *Scanner) Next() (Span, bool) {
	if s.pos >= len(s.src) {
		return Span{}, false
	}
	start := s.pos
	for {
		var sp Span
		switch s.mode {
		case modeString:
			sp = s.scanString(start)
		case modeLineComment:
			sp = s.scanLineComment(start)
		case modeBlockComment:
			sp = s.scanBlockComment(start)
		case modeRegex:
			sp = s.scanRegex(start)
		default:
			var opened bool
			sp, opened = s.scanNormal(start)
			if opened {
				// A construct opener switched the mode; the next
				// pass scans its body.
				continue
			}
		}
		if sp.Category != CatWhitespace && sp.Category != CatComment {
			s.prevCat = sp.Category
			s.prevText = sp.Text(s.src)
			s.hasPrev = true
		}
		return sp, true
	}
}

// scanNormal classifies one token at the current position. When the token
// opens a string, comment, or regex construct it records the mode and
// reports opened=true instead of emitting a span.
func (s *Scanner) scanNormal(start int) (sp Span, opened bool) {
	ch := s.src[s.pos]
	rest := s.src[s.pos:]

	// Keywords, types, and prefix-bound string openers all start as words.
	if isWordStart(ch) {
		word := s.readWord()
		if flags, ok := s.table.prefixFlags(word); ok {
			if rule, ok := s.table.matchString(s.src[s.pos:]); ok {
				s.openString(rule, flags)
				return Span{}, true
			}
		}
		return s.wordSpan(start, word), false
	}

	// Comment and literal openers beat operators.
	if lc := s.table.LineComment; lc != "" && strings.HasPrefix(rest, lc) {
		s.pos += len(lc)
		s.mode = modeLineComment
		return Span{}, true
	}
	if bc := s.table.BlockComment; bc != nil && strings.HasPrefix(rest, bc.Open) {
		s.pos += len(bc.Open)
		s.mode = modeBlockComment
		return Span{}, true
	}
	if rule, ok := s.table.matchString(rest); ok {
		s.openString(rule, PrefixFlags{})
		return Span{}, true
	}
	if re := s.table.Regex; re != nil && ch == re.Delim && s.regexAllowed() {
		s.pos++
		s.mode = modeRegex
		return Span{}, true
	}

	if isDigit(ch) || (ch == '.' && s.peekDigit()) {
		s.scanNumber()
		return s.span(start, CatNumber), false
	}
	if op, ok := s.table.matchOperator(rest); ok {
		s.pos += len(op)
		return s.span(start, CatOperator), false
	}
	if isSpace(ch) {
		for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
			s.pos++
		}
		return s.span(start, CatWhitespace), false
	}

	// Nothing matched: one Unknown rune keeps the scan advancing.
	_, size := utf8.DecodeRuneInString(rest)
	s.pos += size
	return s.span(start, CatUnknown), false
}

// openString records the string rule under scan and consumes its opening
// delimiter. Prefix flags merge into the rule, so r"..." scans raw.
func (s *Scanner) openString(rule StringRule, flags PrefixFlags) {
	rule.Raw = rule.Raw || flags.Raw
	rule.Formatted = rule.Formatted || flags.Formatted
	s.str = rule
	s.pos += len(rule.Delim)
	s.mode = modeString
}

// scanString consumes a string body through its closing delimiter. Escapes
// become nested Escape sub-spans; in formatted strings, interpolations
// become nested Expression sub-spans. A literal that cannot span lines is
// closed unterminated at the line break; end of input closes any string
// unterminated.
func (s *Scanner) scanString(start int) Span {
	sp := Span{Start: start, Category: CatString}
	closer := s.str.Delim
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		rest := s.src[s.pos:]

		if esc := s.table.Escape; esc != 0 && !s.str.Raw && ch == esc {
			escStart := s.pos
			s.pos++
			if s.pos < len(s.src) {
				// The introducer consumes exactly one character,
				// so an escaped quote cannot close the string.
				_, size := utf8.DecodeRuneInString(s.src[s.pos:])
				s.pos += size
			}
			sp.Nested = append(sp.Nested, Span{
				Start:    escStart - start,
				End:      s.pos - start,
				Category: CatEscape,
			})
			continue
		}
		if s.str.Formatted && s.table.InterpOpen != "" {
			if s.table.InterpOpen == "{" && (strings.HasPrefix(rest, "{{") || strings.HasPrefix(rest, "}}")) {
				s.pos += 2 // doubled braces are literal
				continue
			}
			if strings.HasPrefix(rest, s.table.InterpOpen) {
				sp.Nested = append(sp.Nested, s.scanInterpolation(start))
				continue
			}
		}
		if strings.HasPrefix(rest, closer) {
			s.pos += len(closer)
			s.mode = modeNormal
			sp.End = s.pos
			return sp
		}
		if ch == '\n' && !s.str.Multiline {
			break
		}
		s.pos++
	}
	s.mode = modeNormal
	sp.End = s.pos
	sp.Unterminated = true
	return sp
}

// scanInterpolation consumes an interpolated expression opaquely, tracking
// brace depth so the expression may safely contain quote characters or
// nested braces. The returned sub-span is relative to the enclosing
// string's start and includes the interpolation markers.
func (s *Scanner) scanInterpolation(strStart int) Span {
	exprStart := s.pos
	s.pos += len(s.table.InterpOpen)
	depth := 1
	for s.pos < len(s.src) && depth > 0 {
		ch := s.src[s.pos]
		if ch == '\n' && !s.str.Multiline {
			break
		}
		if strings.HasPrefix(s.src[s.pos:], s.table.InterpClose) {
			depth--
			s.pos += len(s.table.InterpClose)
			continue
		}
		if ch == '{' {
			depth++
		}
		s.pos++
	}
	return Span{
		Start:    exprStart - strStart,
		End:      s.pos - strStart,
		Category: CatExpression,
	}
}

// scanLineComment consumes to end of line. The line break itself is left
// for the following whitespace span.
func (s *Scanner) scanLineComment(start int) Span {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	s.mode = modeNormal
	return s.span(start, CatComment)
}

// scanBlockComment consumes through the closing marker, tracking depth for
// languages whose block comments nest.
func (s *Scanner) scanBlockComment(start int) Span {
	bc := s.table.BlockComment
	depth := 1
	for s.pos < len(s.src) {
		rest := s.src[s.pos:]
		if bc.Nested && strings.HasPrefix(rest, bc.Open) {
			depth++
			s.pos += len(bc.Open)
			continue
		}
		if strings.HasPrefix(rest, bc.Close) {
			depth--
			s.pos += len(bc.Close)
			if depth == 0 {
				s.mode = modeNormal
				return s.span(start, CatComment)
			}
			continue
		}
		s.pos++
	}
	s.mode = modeNormal
	sp := s.span(start, CatComment)
	sp.Unterminated = true
	return sp
}

// scanRegex consumes a regex literal through its closing delimiter. An
// escaped delimiter does not close the literal, nor does a delimiter inside
// a [...] character class. Trailing flag letters belong to the literal.
func (s *Scanner) scanRegex(start int) Span {
	delim := s.table.Regex.Delim
	esc := s.table.Escape
	inClass := false
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case esc != 0 && ch == esc:
			s.pos++
			if s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case ch == '[':
			inClass = true
			s.pos++
		case ch == ']':
			inClass = false
			s.pos++
		case ch == delim && !inClass:
			s.pos++
			for s.pos < len(s.src) && isLetter(s.src[s.pos]) {
				s.pos++ // flags
			}
			s.mode = modeNormal
			return s.span(start, CatRegex)
		case ch == '\n':
			s.mode = modeNormal
			sp := s.span(start, CatRegex)
			sp.Unterminated = true
			return sp
		default:
			s.pos++
		}
	}
	s.mode = modeNormal
	sp := s.span(start, CatRegex)
	sp.Unterminated = true
	return sp
}

// regexAllowed reports whether a regex literal may start at the current
// position. A delimiter after a value (identifier, number, literal, or a
// closing bracket) is division, not a regex.
func (s *Scanner) regexAllowed() bool {
	if !s.hasPrev {
		return true
	}
	switch s.prevCat {
	case CatKeyword:
		return true
	case CatOperator:
		switch s.prevText {
		case ")", "]", "}":
			return false
		}
		return true
	default:
		return false
	}
}

// scanNumber consumes a number literal greedily: an optional base prefix,
// digits with underscores, an optional single decimal point, and an
// optional exponent.
func (s *Scanner) scanNumber() {
	if s.src[s.pos] == '0' && s.pos+1 < len(s.src) {
		switch s.src[s.pos+1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			s.pos += 2
			for s.pos < len(s.src) && (isHexDigit(s.src[s.pos]) || s.src[s.pos] == '_') {
				s.pos++
			}
			return
		}
	}
	digits := func() {
		for s.pos < len(s.src) && (isDigit(s.src[s.pos]) || s.src[s.pos] == '_') {
			s.pos++
		}
	}
	digits()
	if s.pos < len(s.src) && s.src[s.pos] == '.' && s.peekDigit() {
		s.pos++
		digits()
	}
	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		p := s.pos + 1
		if p < len(s.src) && (s.src[p] == '+' || s.src[p] == '-') {
			p++
		}
		if p < len(s.src) && isDigit(s.src[p]) {
			s.pos = p
			digits()
		}
	}
}

// readWord consumes a maximal identifier-shaped word.
func (s *Scanner) readWord() string {
	start := s.pos
	for s.pos < len(s.src) && isWordChar(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// wordSpan classifies a completed word. Keywords win over types; whole-word
// matching is implicit because readWord is maximal.
func (s *Scanner) wordSpan(start int, word string) Span {
	switch {
	case s.table.Keywords[word]:
		return s.span(start, CatKeyword)
	case s.table.Types[word]:
		return s.span(start, CatType)
	default:
		return s.span(start, CatIdentifier)
	}
}

// span builds a span from start to the current position.
func (s *Scanner) span(start int, cat Category) Span {
	return Span{Start: start, End: s.pos, Category: cat}
}

// peekDigit returns true if the byte after the current one is a digit.
func (s *Scanner) peekDigit() bool {
	return s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1])
}

// isWordStart returns true if c can begin an identifier.
func isWordStart(c byte) bool {
	return isLetter(c) || c == '_'
}

// isWordChar returns true if c can continue an identifier.
func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

// isLetter returns true if c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigit returns true if c is a digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHexDigit returns true if c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isSpace returns true if c is horizontal or vertical whitespace.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
