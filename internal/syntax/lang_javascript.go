package syntax

// JavaScript is the rule table for JavaScript-family source. It carries the
// two constructs Python lacks: template strings with ${...} interpolation
// and /.../ regex literals, which only open where a value cannot end.
var JavaScript = newTable(Table{
	Name:    "javascript",
	Aliases: []string{"js", "mjs", "jsx"},
	Keywords: map[string]bool{
		"async": true, "await": true, "break": true, "case": true,
		"catch": true, "class": true, "const": true, "continue": true,
		"debugger": true, "default": true, "delete": true, "do": true,
		"else": true, "export": true, "extends": true, "false": true,
		"finally": true, "for": true, "from": true, "function": true,
		"get": true, "if": true, "import": true, "in": true,
		"instanceof": true, "let": true, "new": true, "null": true,
		"of": true, "return": true, "set": true, "static": true,
		"super": true, "switch": true, "this": true, "throw": true,
		"true": true, "try": true, "typeof": true, "undefined": true,
		"var": true, "void": true, "while": true, "with": true,
		"yield": true,
	},
	Types: map[string]bool{
		"Array": true, "ArrayBuffer": true, "BigInt": true,
		"Boolean": true, "Date": true, "Error": true, "Function": true,
		"JSON": true, "Map": true, "Math": true, "Number": true,
		"Object": true, "Promise": true, "Proxy": true, "Reflect": true,
		"RegExp": true, "Set": true, "String": true, "Symbol": true,
		"WeakMap": true, "WeakSet": true,
	},
	LineComment:  "//",
	BlockComment: &BlockComment{Open: "/*", Close: "*/"},
	Strings: []StringRule{
		{Delim: `"`},
		{Delim: "'"},
		{Delim: "`", Formatted: true, Multiline: true},
	},
	Escape:      '\\',
	InterpOpen:  "${",
	InterpClose: "}",
	Regex:       &RegexRule{Delim: '/'},
	Operators: []string{
		">>>=", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
		"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "...",
		"**", "++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
		"<<", ">>",
		"+", "-", "*", "/", "%", "&", "|", "^", "~", "!", "?",
		"<", ">", "=", "(", ")", "[", "]", "{", "}",
		",", ":", ".", ";",
	},
})
