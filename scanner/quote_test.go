package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"Plain", "hello", false},
		{"Digits", "5.1", false},
		{"Empty", "", true},
		{"QuestionMark", "?", true},
		{"Space", "a b", true},
		{"Comma", "a,b", true},
		{"OpenBrace", "a{", true},
		{"CloseBrace", "}b", true},
		{"Percent", "50%", true},
		{"SingleQuote", "it's", true},
		{"DoubleQuote", `say "hi"`, true},
		{"Backslash", `a\b`, true},
		{"Tab", "a\tb", true},
		{"Newline", "a\nb", true},
		{"CarriageReturn", "a\rb", true},
		{"UnitSeparator", "a\x1eb", true},
		{"QuestionMarkInside", "a?b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NeedsQuoting(tt.in))
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	// Every quoted string must read back as exactly one quoted token with
	// the original text.
	inputs := []string{
		"",
		"?",
		"plain",
		"two words",
		"a,b{c}d",
		`quotes ' and "`,
		"back\\slash",
		"100%",
		"cr\rlf\ntab\t",
		"unit\x1esep",
		`all \' of " them % \ at \r once`,
		"non-ascii: åäö 日本語",
	}
	for _, in := range inputs {
		toks := collect(t, Quote(in))
		require.Equal(t, []Kind{KindQuoted, KindEOF}, kinds(toks), "input %q", in)
		require.Equal(t, in, toks[0].Text, "input %q", in)
	}
}

func TestQuoteIfNeeded(t *testing.T) {
	t.Run("PlainUnchanged", func(t *testing.T) {
		require.Equal(t, "hello", QuoteIfNeeded("hello"))
	})

	t.Run("EmptyQuoted", func(t *testing.T) {
		require.Equal(t, "''", QuoteIfNeeded(""))
	})

	t.Run("QuestionMarkQuoted", func(t *testing.T) {
		require.Equal(t, `'?'`, QuoteIfNeeded("?"))
	})

	t.Run("SpecialsEscaped", func(t *testing.T) {
		require.Equal(t, `'a\'b'`, QuoteIfNeeded("a'b"))
		require.Equal(t, `'a\u001Eb'`, QuoteIfNeeded("a\x1eb"))
	})
}
