package syntax

// Rust is the rule table for Rust source. Block comments nest, plain
// strings may span lines, and r"..." scans raw. Lifetimes keep the single
// quote out of the string rules.
var Rust = newTable(Table{
	Name:    "rust",
	Aliases: []string{"rs"},
	Keywords: map[string]bool{
		"as": true, "async": true, "await": true, "break": true,
		"const": true, "continue": true, "crate": true, "dyn": true,
		"else": true, "enum": true, "extern": true, "false": true,
		"fn": true, "for": true, "if": true, "impl": true, "in": true,
		"let": true, "loop": true, "match": true, "mod": true,
		"move": true, "mut": true, "pub": true, "ref": true,
		"return": true, "self": true, "Self": true, "static": true,
		"struct": true, "super": true, "trait": true, "true": true,
		"type": true, "unsafe": true, "use": true, "where": true,
		"while": true,
	},
	Types: map[string]bool{
		"bool": true, "char": true, "str": true,
		"f32": true, "f64": true,
		"i8": true, "i16": true, "i32": true, "i64": true, "i128": true,
		"isize": true,
		"u8": true, "u16": true, "u32": true, "u64": true, "u128": true,
		"usize": true,
		"Arc": true, "Box": true, "HashMap": true, "HashSet": true,
		"Option": true, "Rc": true, "Result": true, "String": true,
		"Vec": true,
	},
	LineComment:  "//",
	BlockComment: &BlockComment{Open: "/*", Close: "*/", Nested: true},
	Strings: []StringRule{
		{Delim: `"`, Multiline: true},
	},
	StringPrefixes: map[string]PrefixFlags{
		"r":  {Raw: true},
		"b":  {},
		"br": {Raw: true},
	},
	Escape: '\\',
	Operators: []string{
		"..=", "<<=", ">>=",
		"::", "->", "=>", "..", "==", "!=", "<=", ">=", "&&", "||",
		"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
		"+", "-", "*", "/", "%", "&", "|", "^", "!", "?", "@", "#",
		"<", ">", "=", "(", ")", "[", "]", "{", "}",
		",", ":", ".", ";",
	},
})
