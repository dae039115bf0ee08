package codec

import (
	"fmt"
	"strconv"

	"github.com/arloliu/arff/errs"
	"github.com/arloliu/arff/format"
	"github.com/arloliu/arff/internal/pool"
	"github.com/arloliu/arff/scanner"
)

// EncodeRow appends the dense encoding of row to bb: one value per
// attribute, comma separated, no line terminator.
func EncodeRow(bb *pool.ByteBuffer, attrs []format.Attribute, row format.Row) error {
	if len(row) != len(attrs) {
		return fmt.Errorf("%w: %d values for %d attributes", errs.ErrRowMismatch, len(row), len(attrs))
	}

	for i := range row {
		if i > 0 {
			_ = bb.WriteByte(',')
		}
		if err := appendValue(bb, &attrs[i], &row[i]); err != nil {
			return err
		}
	}

	return nil
}

// EncodeSparseRow appends the sparse encoding of row to bb, listing only
// slots whose value differs from the sparse default (0.0 for numeric, index
// 0 for nominal, missing otherwise). A missing numeric or nominal slot is
// written explicitly as ? since eliding it would decode to the default.
func EncodeSparseRow(bb *pool.ByteBuffer, attrs []format.Attribute, row format.Row) error {
	if len(row) != len(attrs) {
		return fmt.Errorf("%w: %d values for %d attributes", errs.ErrRowMismatch, len(row), len(attrs))
	}

	_ = bb.WriteByte('{')

	first := true
	for i := range row {
		if sparseDefault(&attrs[i], &row[i]) {
			continue
		}

		if !first {
			_ = bb.WriteByte(',')
		}
		first = false

		bb.WriteString(strconv.Itoa(i))
		_ = bb.WriteByte(' ')
		if err := appendValue(bb, &attrs[i], &row[i]); err != nil {
			return err
		}
	}

	_ = bb.WriteByte('}')

	return nil
}

// AppendWeight appends the ,{w} weight suffix to an encoded row.
func AppendWeight(bb *pool.ByteBuffer, weight float64) {
	bb.WriteString(",{")
	bb.WriteString(formatFloat(weight))
	_ = bb.WriteByte('}')
}

// AppendAttributeDecl appends the full @attribute declaration of attr,
// including its trailing line terminator. Relational attributes expand into
// a multi-line block closed by @end.
func AppendAttributeDecl(bb *pool.ByteBuffer, attr *format.Attribute) error {
	bb.WriteString(kwAttribute)
	_ = bb.WriteByte(' ')
	bb.WriteString(scanner.QuoteIfNeeded(attr.Name))
	_ = bb.WriteByte(' ')

	switch attr.Type {
	case format.TypeNumeric:
		bb.WriteString("numeric")
	case format.TypeString:
		bb.WriteString("string")
	case format.TypeDate:
		bb.WriteString("date ")
		bb.WriteString(scanner.QuoteIfNeeded(attr.Format()))
	case format.TypeNominal:
		_ = bb.WriteByte('{')
		for i, v := range attr.Values {
			if i > 0 {
				_ = bb.WriteByte(',')
			}
			bb.WriteString(scanner.QuoteIfNeeded(v))
		}
		_ = bb.WriteByte('}')
	case format.TypeRelational:
		bb.WriteString("relational\n")
		for i := range attr.Children {
			if err := AppendAttributeDecl(bb, &attr.Children[i]); err != nil {
				return err
			}
		}
		bb.WriteString(kwEnd)
		_ = bb.WriteByte(' ')
		bb.WriteString(scanner.QuoteIfNeeded(attr.Name))
	default:
		return fmt.Errorf("%w: attribute %q", errs.ErrUnknownAttributeType, attr.Name)
	}

	_ = bb.WriteByte('\n')

	return nil
}

// sparseDefault reports whether the slot holds its sparse default value and
// can be elided from a sparse encoding.
func sparseDefault(attr *format.Attribute, v *format.Value) bool {
	switch attr.Type {
	case format.TypeNumeric:
		return v.Kind == format.KindNumeric && v.Num == 0
	case format.TypeNominal:
		return v.Kind == format.KindNominal && v.Index == 0
	default:
		return v.IsMissing()
	}
}

// appendValue appends the textual form of one typed slot.
func appendValue(bb *pool.ByteBuffer, attr *format.Attribute, v *format.Value) error {
	if v.IsMissing() {
		_ = bb.WriteByte('?')
		return nil
	}

	if !v.Matches(attr) {
		return fmt.Errorf("%w: %s value for %s attribute %q",
			errs.ErrRowMismatch, v.Kind, attr.Type, attr.Name)
	}

	switch attr.Type {
	case format.TypeNumeric:
		bb.WriteString(formatFloat(v.Num))
	case format.TypeString:
		bb.WriteString(scanner.QuoteIfNeeded(v.Str))
	case format.TypeNominal:
		bb.WriteString(scanner.QuoteIfNeeded(attr.Values[v.Index]))
	case format.TypeDate:
		text, err := format.FormatDate(attr.Format(), v.Time)
		if err != nil {
			return err
		}
		bb.WriteString(scanner.QuoteIfNeeded(text))
	case format.TypeRelational:
		return appendRelational(bb, attr, v)
	}

	return nil
}

// appendRelational encodes the sub-rows densely, separated by a line
// terminator, then quotes the whole sub-document as a single value. Sparse
// encoding is never used for relational sub-rows.
func appendRelational(bb *pool.ByteBuffer, attr *format.Attribute, v *format.Value) error {
	sub := pool.GetRowBuffer()
	defer pool.PutRowBuffer(sub)

	for i, row := range v.Rows {
		if i > 0 {
			_ = sub.WriteByte('\n')
		}
		if err := EncodeRow(sub, attr.Children, row); err != nil {
			return err
		}
	}

	bb.WriteString(scanner.Quote(sub.String()))

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
