// Package codec implements the ARFF grammar above the tokenizer: the header
// parser, the instance decoder (dense, sparse, relational recursion, weight
// suffix) and the symmetric instance encoder.
package codec

import (
	"fmt"
	"strings"

	"github.com/arloliu/arff/errs"
	"github.com/arloliu/arff/format"
	"github.com/arloliu/arff/scanner"
)

// Section keywords, compared case-insensitively.
const (
	kwRelation  = "@relation"
	kwAttribute = "@attribute"
	kwData      = "@data"
	kwEnd       = "@end"
)

// maxRelationalDepth bounds relational nesting so pathological documents
// fail with an invalid-data error instead of exhausting the stack.
const maxRelationalDepth = 64

// ReadHeader consumes tokens from the beginning of a document and produces
// the header: the relation name and the ordered, non-empty attribute list.
// The scanner is left positioned at the first token after the @data line.
func ReadHeader(sc *scanner.Scanner) (*format.Header, error) {
	if err := skipBlankLines(sc); err != nil {
		return nil, err
	}

	tok, err := sc.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != scanner.KindUnquoted || !strings.EqualFold(tok.Text, kwRelation) {
		return nil, fmt.Errorf("%w: expected %s, got %s (line %d)", errs.ErrMissingSection, kwRelation, tok, tok.Line)
	}

	name, err := readValueToken(sc, "relation name")
	if err != nil {
		return nil, err
	}
	if err := expectEOL(sc); err != nil {
		return nil, err
	}

	header := &format.Header{Relation: name.Text}

	for {
		if err := skipBlankLines(sc); err != nil {
			return nil, err
		}

		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}

		switch {
		case tok.Kind == scanner.KindEOF:
			return nil, fmt.Errorf("%w: %s not found (line %d)", errs.ErrMissingSection, kwData, tok.Line)
		case tok.Kind != scanner.KindUnquoted:
			return nil, fmt.Errorf("%w: expected %s or %s, got %s (line %d)",
				errs.ErrUnexpectedToken, kwAttribute, kwData, tok, tok.Line)
		case strings.EqualFold(tok.Text, kwAttribute):
			attr, err := readAttributeDecl(sc, 0)
			if err != nil {
				return nil, err
			}
			header.Attributes = append(header.Attributes, attr)
		case strings.EqualFold(tok.Text, kwData):
			if len(header.Attributes) == 0 {
				return nil, fmt.Errorf("%w (line %d)", errs.ErrNoAttributes, tok.Line)
			}
			if err := expectEOLOrEOF(sc); err != nil {
				return nil, err
			}

			return header, nil
		default:
			return nil, fmt.Errorf("%w: expected %s or %s, got %s (line %d)",
				errs.ErrUnexpectedToken, kwAttribute, kwData, tok, tok.Line)
		}
	}
}

// readAttributeDecl parses one attribute declaration after its @attribute
// keyword, up to and including the terminating end-of-line.
func readAttributeDecl(sc *scanner.Scanner, depth int) (format.Attribute, error) {
	var attr format.Attribute

	name, err := readValueToken(sc, "attribute name")
	if err != nil {
		return attr, err
	}
	attr.Name = name.Text

	tok, err := sc.Next()
	if err != nil {
		return attr, err
	}
	if tok.Kind != scanner.KindUnquoted {
		return attr, fmt.Errorf("%w: %s (line %d)", errs.ErrUnknownAttributeType, tok, tok.Line)
	}

	if tok.Text == "{" {
		attr.Type = format.TypeNominal
		attr.Values, err = readNominalValues(sc)
		if err != nil {
			return attr, err
		}

		return attr, expectEOL(sc)
	}

	switch strings.ToLower(tok.Text) {
	case "numeric", "integer", "real":
		attr.Type = format.TypeNumeric

		return attr, expectEOL(sc)
	case "string":
		attr.Type = format.TypeString

		return attr, expectEOL(sc)
	case "date":
		attr.Type = format.TypeDate

		return attr, readDateFormat(sc, &attr)
	case "relational":
		if depth+1 > maxRelationalDepth {
			return attr, fmt.Errorf("%w (line %d)", errs.ErrNestingTooDeep, tok.Line)
		}
		attr.Type = format.TypeRelational
		if err := expectEOL(sc); err != nil {
			return attr, err
		}
		attr.Children, err = readRelationalBlock(sc, attr.Name, depth+1)

		return attr, err
	default:
		return attr, fmt.Errorf("%w: %q (line %d)", errs.ErrUnknownAttributeType, tok.Text, tok.Line)
	}
}

// readNominalValues parses the value list after an opening {, consuming the
// closing }. An empty list is legal.
func readNominalValues(sc *scanner.Scanner) ([]string, error) {
	var values []string

	tok, err := sc.Peek()
	if err != nil {
		return nil, err
	}
	if isSeparator(tok, "}") {
		_, _ = sc.Next()
		return values, nil
	}

	for {
		val, err := readValueToken(sc, "nominal value")
		if err != nil {
			return nil, err
		}
		values = append(values, val.Text)

		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case isSeparator(tok, "}"):
			return values, nil
		case isSeparator(tok, ","):
			continue
		default:
			return nil, fmt.Errorf("%w: expected , or } in nominal list, got %s (line %d)",
				errs.ErrUnexpectedToken, tok, tok.Line)
		}
	}
}

// readDateFormat parses the optional format token of a date attribute and
// validates the pattern eagerly, so a bad pattern fails at declaration time
// rather than on the first data row.
func readDateFormat(sc *scanner.Scanner, attr *format.Attribute) error {
	tok, err := sc.Peek()
	if err != nil {
		return err
	}

	if tok.IsValue() {
		_, _ = sc.Next()
		attr.DateFormat = tok.Text
	}

	if _, err := format.GoLayout(attr.Format()); err != nil {
		return fmt.Errorf("%w (line %d)", err, tok.Line)
	}

	return expectEOL(sc)
}

// readRelationalBlock parses the nested @attribute/@end loop of a relational
// attribute. The closing @end must be followed by the attribute's own name.
func readRelationalBlock(sc *scanner.Scanner, name string, depth int) ([]format.Attribute, error) {
	var children []format.Attribute

	for {
		if err := skipBlankLines(sc); err != nil {
			return nil, err
		}

		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}

		switch {
		case tok.Kind == scanner.KindEOF:
			return nil, fmt.Errorf("%w: %s %s not found (line %d)", errs.ErrMissingSection, kwEnd, name, tok.Line)
		case tok.Kind != scanner.KindUnquoted:
			return nil, fmt.Errorf("%w: expected %s or %s, got %s (line %d)",
				errs.ErrUnexpectedToken, kwAttribute, kwEnd, tok, tok.Line)
		case strings.EqualFold(tok.Text, kwAttribute):
			child, err := readAttributeDecl(sc, depth)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		case strings.EqualFold(tok.Text, kwEnd):
			endName, err := readValueToken(sc, "@end name")
			if err != nil {
				return nil, err
			}
			if endName.Text != name {
				return nil, fmt.Errorf("%w: got %q, want %q (line %d)",
					errs.ErrEndNameMismatch, endName.Text, name, endName.Line)
			}
			if len(children) == 0 {
				return nil, fmt.Errorf("%w (line %d)", errs.ErrNoAttributes, endName.Line)
			}

			return children, expectEOL(sc)
		default:
			return nil, fmt.Errorf("%w: expected %s or %s, got %s (line %d)",
				errs.ErrUnexpectedToken, kwAttribute, kwEnd, tok, tok.Line)
		}
	}
}

// skipBlankLines consumes consecutive EOL tokens (blank and comment lines).
func skipBlankLines(sc *scanner.Scanner) error {
	for {
		tok, err := sc.Peek()
		if err != nil {
			return err
		}
		if tok.Kind != scanner.KindEOL {
			return nil
		}
		_, _ = sc.Next()
	}
}

// readValueToken reads the next token and requires it to carry a value.
func readValueToken(sc *scanner.Scanner, what string) (scanner.Token, error) {
	tok, err := sc.Next()
	if err != nil {
		return tok, err
	}
	if !tok.IsValue() {
		return tok, fmt.Errorf("%w: expected %s, got %s (line %d)", errs.ErrUnexpectedToken, what, tok, tok.Line)
	}

	return tok, nil
}

// expectEOL requires the next token to be a line terminator.
func expectEOL(sc *scanner.Scanner) error {
	tok, err := sc.Next()
	if err != nil {
		return err
	}
	if tok.Kind != scanner.KindEOL {
		return fmt.Errorf("%w: expected end of line, got %s (line %d)", errs.ErrUnexpectedToken, tok, tok.Line)
	}

	return nil
}

// expectEOLOrEOF requires a line terminator, tolerating end of file so a
// document may end directly after its @data line.
func expectEOLOrEOF(sc *scanner.Scanner) error {
	tok, err := sc.Next()
	if err != nil {
		return err
	}
	if tok.Kind != scanner.KindEOL && tok.Kind != scanner.KindEOF {
		return fmt.Errorf("%w: expected end of line, got %s (line %d)", errs.ErrUnexpectedToken, tok, tok.Line)
	}

	return nil
}

func isSeparator(tok scanner.Token, sep string) bool {
	return tok.Kind == scanner.KindUnquoted && tok.Text == sep
}
