package syntax

// Python is the rule table for Python-family source. Raw and format string
// prefixes bind to the quote that follows them, in any case and order, so
// r"...", f'...', and rb"..." all scan as one literal.
var Python = newTable(Table{
	Name:    "python",
	Aliases: []string{"py", "python3"},
	Keywords: map[string]bool{
		"False": true, "None": true, "True": true,
		"and": true, "as": true, "assert": true, "async": true,
		"await": true, "break": true, "class": true, "continue": true,
		"def": true, "del": true, "elif": true, "else": true,
		"except": true, "finally": true, "for": true, "from": true,
		"global": true, "if": true, "import": true, "in": true,
		"is": true, "lambda": true, "nonlocal": true, "not": true,
		"or": true, "pass": true, "raise": true, "return": true,
		"try": true, "while": true, "with": true, "yield": true,
	},
	Types: map[string]bool{
		// builtins
		"bool": true, "bytearray": true, "bytes": true, "complex": true,
		"dict": true, "float": true, "frozenset": true, "int": true,
		"list": true, "memoryview": true, "object": true, "set": true,
		"str": true, "tuple": true, "type": true,
		// typing
		"Any": true, "Callable": true, "ClassVar": true, "Dict": true,
		"FrozenSet": true, "Iterable": true, "Iterator": true,
		"List": true, "Mapping": true, "Optional": true,
		"Sequence": true, "Set": true, "Tuple": true, "Type": true,
		"Union": true,
	},
	LineComment: "#",
	Strings: []StringRule{
		{Delim: `"""`, Multiline: true},
		{Delim: "'''", Multiline: true},
		{Delim: `"`},
		{Delim: "'"},
	},
	StringPrefixes: map[string]PrefixFlags{
		"r": {Raw: true},
		"b": {},
		"u": {},
		"f": {Formatted: true},
		"rb": {Raw: true}, "br": {Raw: true},
		"rf": {Raw: true, Formatted: true}, "fr": {Raw: true, Formatted: true},
	},
	Escape:      '\\',
	InterpOpen:  "{",
	InterpClose: "}",
	Operators: []string{
		"**=", "//=", "<<=", ">>=", ":=", "->",
		"**", "//", "==", "!=", "<=", ">=", "+=", "-=", "*=", "/=",
		"%=", "@=", "&=", "|=", "^=", "<<", ">>",
		"+", "-", "*", "/", "%", "@", "&", "|", "^", "~",
		"<", ">", "=", "(", ")", "[", "]", "{", "}",
		",", ":", ".", ";",
	},
})
