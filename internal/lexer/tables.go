// internal/lexer/tables.go

package lexer

import "strings"

// delimiters is the exact character set that terminates a "word" during
// extraction. Tested against full Unicode scalar values, never raw bytes,
// so multi-byte runes are never split mid-codepoint.
const delimiters = " \r\n\t\"'\\&|;=(){}[]<>+-*/%^`!.:~,$"

func isDelim(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}
