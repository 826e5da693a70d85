package syntax

// Go is the rule table for Go source. Backtick strings are raw and may span
// lines; rune literals scan with the same escape rules as strings.
var Go = newTable(Table{
	Name:    "go",
	Aliases: []string{"golang"},
	Keywords: map[string]bool{
		"break": true, "case": true, "chan": true, "const": true,
		"continue": true, "default": true, "defer": true, "else": true,
		"fallthrough": true, "for": true, "func": true, "go": true,
		"goto": true, "if": true, "import": true, "interface": true,
		"map": true, "package": true, "range": true, "return": true,
		"select": true, "struct": true, "switch": true, "type": true,
		"var": true,
		// predeclared constants
		"true": true, "false": true, "iota": true, "nil": true,
	},
	Types: map[string]bool{
		"any": true, "bool": true, "byte": true, "comparable": true,
		"complex64": true, "complex128": true, "error": true,
		"float32": true, "float64": true,
		"int": true, "int8": true, "int16": true, "int32": true,
		"int64": true, "rune": true, "string": true,
		"uint": true, "uint8": true, "uint16": true, "uint32": true,
		"uint64": true, "uintptr": true,
	},
	LineComment:  "//",
	BlockComment: &BlockComment{Open: "/*", Close: "*/"},
	Strings: []StringRule{
		{Delim: `"`},
		{Delim: "'"},
		{Delim: "`", Raw: true, Multiline: true},
	},
	Escape: '\\',
	Operators: []string{
		"<<=", ">>=", "&^=", "...",
		":=", "<-", "&&", "||", "==", "!=", "<=", ">=", "<<", ">>", "&^",
		"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
		"+", "-", "*", "/", "%", "&", "|", "^", "!",
		"<", ">", "=", "(", ")", "[", "]", "{", "}",
		",", ":", ".", ";",
	},
})
