package scanner

import "strings"

// unitSeparator is the U+001E control character, the only codepoint with a
// dedicated \u escape in the grammar.
const unitSeparator = 0x1E

// NeedsQuoting reports whether a text value must be quoted on write: when it
// is empty, equal to ?, or contains a character with lexical meaning. The
// policy mirrors the tokenizer exactly so that every written value reads
// back as a single token.
func NeedsQuoting(s string) bool {
	if s == "" || s == "?" {
		return true
	}

	return strings.ContainsAny(s, "\"'%\\\r\n\t ,{}\x1e")
}

// Quote wraps s in single quotes, backslash-escaping the characters the
// tokenizer treats specially inside quotes.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\'':
			sb.WriteString(`\'`)
		case '%':
			sb.WriteString(`\%`)
		case '\\':
			sb.WriteString(`\\`)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case unitSeparator:
			sb.WriteString(`\u001E`)
		default:
			sb.WriteByte(c)
		}
	}

	sb.WriteByte('\'')

	return sb.String()
}

// QuoteIfNeeded returns s quoted when the policy requires it, otherwise s
// unchanged.
func QuoteIfNeeded(s string) string {
	if NeedsQuoting(s) {
		return Quote(s)
	}

	return s
}
