package syntax

// Category identifies the lexical class of a span.
type Category int

const (
	CatUnknown Category = iota
	CatKeyword
	CatType
	CatString
	CatComment
	CatRegex
	CatNumber
	CatOperator
	CatIdentifier
	CatWhitespace

	// Nested categories, only ever emitted as sub-spans of a String.
	CatEscape
	CatExpression
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CatUnknown:
		return "Unknown"
	case CatKeyword:
		return "Keyword"
	case CatType:
		return "Type"
	case CatString:
		return "String"
	case CatComment:
		return "Comment"
	case CatRegex:
		return "Regex"
	case CatNumber:
		return "Number"
	case CatOperator:
		return "Operator"
	case CatIdentifier:
		return "Identifier"
	case CatWhitespace:
		return "Whitespace"
	case CatEscape:
		return "Escape"
	case CatExpression:
		return "Expression"
	default:
		return "Unknown"
	}
}

// Span is a contiguous classified range of source text. Offsets are byte
// offsets into the scanned source; End is exclusive. Spans emitted by a scan
// are contiguous and non-overlapping, and concatenating their text in order
// reproduces the source exactly.
type Span struct {
	Start    int
	End      int
	Category Category

	// Unterminated marks a string, block comment, or regex literal still
	// open when its input ran out. Never fatal; the renderer styles it.
	Unterminated bool

	// Nested holds Escape and Expression sub-spans for String and Regex
	// spans. Sub-span offsets are relative to Start.
	Nested []Span
}

// Len returns the span's width in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the slice of src the span covers.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}
