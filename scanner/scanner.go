package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/arff/errs"
)

// Scanner is a streaming ARFF tokenizer over a character source.
//
// Note: The Scanner is NOT thread-safe. Each scanner instance must be used by
// a single logical call at a time.
type Scanner struct {
	r      *bufio.Reader
	line   int
	peeked *Token
}

// New creates a Scanner reading from r.
func New(r io.Reader) *Scanner {
	return &Scanner{
		r:    bufio.NewReader(r),
		line: 1,
	}
}

// NewString creates a Scanner over an in-memory document. Used for relational
// sub-documents, whose value text is itself a complete token stream.
func NewString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Line returns the 1-based line number of the current position.
func (s *Scanner) Line() int {
	return s.line
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (Token, error) {
	if s.peeked == nil {
		tok, err := s.next()
		if err != nil {
			return tok, err
		}
		s.peeked = &tok
	}

	return *s.peeked, nil
}

// Next returns the next token.
//
// Whitespace other than line terminators is skipped before a token starts.
// A % outside quotes discards the rest of the line and yields an EOL token.
// Each of \r, \r\n and \n is a single EOL token.
func (s *Scanner) Next() (Token, error) {
	if s.peeked != nil {
		tok := *s.peeked
		s.peeked = nil

		return tok, nil
	}

	return s.next()
}

func (s *Scanner) next() (Token, error) {
	if err := s.skipSpace(); err != nil {
		return Token{}, err
	}

	start := s.line

	c, err := s.r.ReadByte()
	if err == io.EOF {
		return Token{Kind: KindEOF, Line: start}, nil
	}
	if err != nil {
		return Token{}, err
	}

	switch c {
	case '\r', '\n':
		if err := s.finishEOL(c); err != nil {
			return Token{}, err
		}

		return Token{Kind: KindEOL, Line: start}, nil
	case '%':
		if err := s.skipComment(); err != nil {
			return Token{}, err
		}

		return Token{Kind: KindEOL, Line: start}, nil
	case '\'', '"':
		text, err := s.scanQuoted(c, start)
		if err != nil {
			return Token{}, err
		}

		return Token{Kind: KindQuoted, Text: text, Line: start}, nil
	case ',', '{', '}':
		// Separators read at token start are one-character tokens.
		return Token{Kind: KindUnquoted, Text: string(c), Line: start}, nil
	default:
		text, err := s.scanUnquoted(c)
		if err != nil {
			return Token{}, err
		}

		return Token{Kind: KindUnquoted, Text: text, Line: start}, nil
	}
}

// skipSpace consumes the whitespace that may precede a token: spaces and
// tabs, never line terminators. The set mirrors the quoting policy, so any
// character that can split a token forces quoting on write.
func (s *Scanner) skipSpace() error {
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if c == ' ' || c == '\t' {
			continue
		}

		return s.r.UnreadByte()
	}
}

// finishEOL consumes the \n of a \r\n pair and advances the line counter.
func (s *Scanner) finishEOL(first byte) error {
	s.line++

	if first != '\r' {
		return nil
	}

	c, err := s.r.ReadByte()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if c != '\n' {
		return s.r.UnreadByte()
	}

	return nil
}

// skipComment discards characters up to and including the line terminator.
func (s *Scanner) skipComment() error {
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			// A comment on the last line still yields its EOL.
			return nil
		}
		if err != nil {
			return err
		}

		if c == '\r' || c == '\n' {
			return s.finishEOL(c)
		}
	}
}

// scanUnquoted accumulates a bare token. The token ends at whitespace,
// a separator, a comment start or a line terminator; the terminating
// character is left unconsumed.
func (s *Scanner) scanUnquoted(first byte) (string, error) {
	var sb strings.Builder
	sb.WriteByte(first)

	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch c {
		case ' ', '\t', ',', '{', '}', '%', '\r', '\n':
			return sb.String(), s.r.UnreadByte()
		default:
			sb.WriteByte(c)
		}
	}
}

// scanQuoted accumulates a quoted token, resolving backslash escapes, until
// the matching closing quote. Reaching a line terminator or end of file
// first is fatal.
func (s *Scanner) scanQuoted(quote byte, start int) (string, error) {
	var sb strings.Builder

	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			return "", fmt.Errorf("%w (line %d)", errs.ErrUnterminatedQuote, start)
		}
		if err != nil {
			return "", err
		}

		switch c {
		case quote:
			return sb.String(), nil
		case '\r', '\n':
			return "", fmt.Errorf("%w (line %d)", errs.ErrUnterminatedQuote, start)
		case '\\':
			if err := s.scanEscape(&sb, start); err != nil {
				return "", err
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func (s *Scanner) scanEscape(sb *strings.Builder, start int) error {
	c, err := s.r.ReadByte()
	if err == io.EOF {
		return fmt.Errorf("%w (line %d)", errs.ErrUnterminatedQuote, start)
	}
	if err != nil {
		return err
	}

	switch c {
	case '"', '\'', '%', '\\':
		sb.WriteByte(c)
	case 'r':
		sb.WriteByte('\r')
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		return s.scanUnicodeEscape(sb, start)
	default:
		// Unrecognized escapes pass the following character through.
		sb.WriteByte(c)
	}

	return nil
}

// scanUnicodeEscape handles the single universal escape \u001E, which must
// appear in exactly that 4-hex-digit form. Any other \u sequence is fatal.
// \u sequence is fatal.
func (s *Scanner) scanUnicodeEscape(sb *strings.Builder, start int) error {
	var hex [4]byte
	for i := range hex {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			return fmt.Errorf("%w: truncated \\u sequence (line %d)", errs.ErrBadEscape, start)
		}
		if err != nil {
			return err
		}
		hex[i] = c
	}

	if hex[0] != '0' || hex[1] != '0' || hex[2] != '1' || hex[3] != 'E' {
		return fmt.Errorf("%w: \\u%s (line %d)", errs.ErrBadEscape, string(hex[:]), start)
	}

	sb.WriteByte(unitSeparator)

	return nil
}
