// Package scanner turns an ARFF character stream into a sequence of typed
// tokens, resolving escape sequences and stripping comments inline. It also
// owns the quoting policy shared by the read and write paths.
package scanner

import "fmt"

// Kind identifies the type of a token.
type Kind uint8

const (
	KindUnquoted Kind = iota // KindUnquoted is a bare token (also single-char , { }).
	KindQuoted               // KindQuoted is a quoted token with escapes resolved.
	KindEOL                  // KindEOL marks a line terminator (\r, \r\n or \n).
	KindEOF                  // KindEOF marks the end of the input.
)

func (k Kind) String() string {
	switch k {
	case KindUnquoted:
		return "Unquoted"
	case KindQuoted:
		return "Quoted"
	case KindEOL:
		return "EOL"
	case KindEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit of an ARFF document.
type Token struct {
	// Kind is the token type.
	Kind Kind

	// Text is the token text with quotes stripped and escapes resolved.
	// Empty for EOL and EOF tokens.
	Text string

	// Line is the 1-based line the token started on.
	Line int
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case KindEOL, KindEOF:
		return t.Kind.String()
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
}

// IsMissing reports whether the token is the missing-value sentinel: the
// bare unquoted ?. The quoted text '?' is the literal text, never missing.
func (t Token) IsMissing() bool {
	return t.Kind == KindUnquoted && t.Text == "?"
}

// IsValue reports whether the token carries a value. Quoted tokens always
// do; unquoted tokens do unless they are one-character separators. An
// unquoted token can never otherwise contain a separator character, so the
// text alone is decisive, and a literal "," or "{" value is always quoted.
func (t Token) IsValue() bool {
	if t.Kind == KindQuoted {
		return true
	}
	if t.Kind != KindUnquoted {
		return false
	}

	switch t.Text {
	case ",", "{", "}":
		return false
	default:
		return true
	}
}
