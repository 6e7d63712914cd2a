package scripts

import "strings"

// Every caller-supplied string crosses exactly one of these boundaries before
// being embedded into a synthesized script, one function per semantic role.

// Path embeds a filesystem path as a single-quoted shell literal.
func Path(s string) string {
	return shellQuote(s)
}

// QuotedContent embeds arbitrary text as a single-quoted shell literal.
// Embedded single quotes close the literal, insert an escaped quote and
// reopen it, so the content cannot break the quoting.
func QuotedContent(s string) string {
	return shellQuote(s)
}

// PatternLiteral escapes search text for a literal sed substitution: the
// characters that are metacharacters in a basic substitution pattern
// ('[', ']', '/') are backslash-escaped.
func PatternLiteral(s string) string {
	return sedEscape(s)
}

// ReplacementLiteral escapes replacement text for a literal sed substitution,
// with the same character set as PatternLiteral.
func ReplacementLiteral(s string) string {
	return sedEscape(s)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

var sedEscaper = strings.NewReplacer(
	`[`, `\[`,
	`]`, `\]`,
	`/`, `\/`,
)

func sedEscape(s string) string {
	return sedEscaper.Replace(s)
}
