package syntax

// Shell is the rule table for POSIX-ish shell source. Double-quoted strings
// interpolate ${...}; single-quoted strings are raw. Both may span lines.
var Shell = newTable(Table{
	Name:    "shell",
	Aliases: []string{"sh", "bash", "zsh"},
	Keywords: map[string]bool{
		"alias": true, "break": true, "case": true, "continue": true,
		"declare": true, "do": true, "done": true, "elif": true,
		"else": true, "esac": true, "eval": true, "exec": true,
		"exit": true, "export": true, "fi": true, "for": true,
		"function": true, "if": true, "in": true, "local": true,
		"readonly": true, "return": true, "select": true, "set": true,
		"shift": true, "source": true, "then": true, "time": true,
		"until": true, "unset": true, "while": true,
	},
	Types:       map[string]bool{},
	LineComment: "#",
	Strings: []StringRule{
		{Delim: `"`, Formatted: true, Multiline: true},
		{Delim: "'", Raw: true, Multiline: true},
	},
	Escape:      '\\',
	InterpOpen:  "${",
	InterpClose: "}",
	Operators: []string{
		"[[", "]]", "&&", "||", ";;", "<<", ">>", "==", "!=", ">=", "<=",
		"$", "|", "&", ";", "(", ")", "{", "}", "[", "]",
		"<", ">", "=", "!", "*", "?", "~", "+", "-", "/", "%",
		",", ":", ".",
	},
})
