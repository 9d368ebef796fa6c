package ast

import "strings"

// reservedChars are the characters with special meaning in the output
// pattern syntax. Literal atoms escape all of them up front, so the text
// they carry is safe to splice into a pattern.
var reservedChars = map[byte]bool{
	'[': true, ']': true, '(': true, ')': true, '{': true, '}': true,
	'*': true, '+': true, '?': true, '|': true, '^': true, '$': true,
	'.': true, '-': true, '\\': true,
}

// unquoteEscapeRaw strips the backtick delimiters from a raw token's span
// and turns escaped backticks into bare ones. Everything else passes
// through untouched; raw atoms are the author's escape hatch for
// unescaped output.
func unquoteEscapeRaw(text string) string {
	return strings.ReplaceAll(text[1:len(text)-1], "\\`", "`")
}

// unquoteEscapeLiteral converts a quoted token's span into its atom text:
// escape every reserved character across the whole span, strip the (still
// unescaped) delimiters, then restore only the escaped quote matching the
// opening delimiter. Other escaped reserved characters stay escaped.
func unquoteEscapeLiteral(text string) string {
	quote := byte('"')
	if len(text) > 0 {
		quote = text[0]
	}

	escaped := escapeReserved(text)
	literal := escaped[1 : len(escaped)-1]

	switch quote {
	case '"':
		return strings.ReplaceAll(literal, `\\"`, `"`)
	case '\'':
		return strings.ReplaceAll(literal, `\\'`, `'`)
	default:
		return literal
	}
}

// escapeReserved prefixes every reserved character with a backslash.
func escapeReserved(source string) string {
	var b strings.Builder
	b.Grow(len(source))
	for i := 0; i < len(source); i++ {
		if reservedChars[source[i]] {
			b.WriteByte('\\')
		}
		b.WriteByte(source[i])
	}
	return b.String()
}
