package codec

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/arloliu/arff/errs"
	"github.com/arloliu/arff/format"
	"github.com/arloliu/arff/scanner"
)

// Decoder decodes instances against a fixed attribute list.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance must be used by
// a single logical call at a time.
type Decoder struct {
	attrs         []format.Attribute
	nominal       []map[string]int // per-attribute value lookup, nil for non-nominal slots
	depth         int
	strictWeights bool
}

// NewDecoder creates a Decoder for the given attribute list.
func NewDecoder(attrs []format.Attribute) *Decoder {
	return newDecoder(attrs, 0)
}

// SetStrictWeights makes the decoder reject negative and NaN instance
// weights instead of passing them through. The setting applies to sub-row
// weights of relational values as well, even though those are discarded.
func (d *Decoder) SetStrictWeights(strict bool) {
	d.strictWeights = strict
}

func newDecoder(attrs []format.Attribute, depth int) *Decoder {
	d := &Decoder{
		attrs:   attrs,
		nominal: make([]map[string]int, len(attrs)),
		depth:   depth,
	}

	for i := range attrs {
		if attrs[i].Type != format.TypeNominal {
			continue
		}
		lookup := make(map[string]int, len(attrs[i].Values))
		for idx, v := range attrs[i].Values {
			// Duplicates are permitted in declarations; the first
			// occurrence wins on lookup.
			if _, ok := lookup[v]; !ok {
				lookup[v] = idx
			}
		}
		d.nominal[i] = lookup
	}

	return d
}

// Read decodes the next instance from sc, in dense or sparse layout, with an
// optional trailing weight. It returns io.EOF when no rows remain. A weight
// suffix is parsed at any depth, but only the outermost caller keeps it;
// relational sub-rows discard theirs.
func (d *Decoder) Read(sc *scanner.Scanner) (*format.Instance, error) {
	if err := skipBlankLines(sc); err != nil {
		return nil, err
	}

	tok, err := sc.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == scanner.KindEOF {
		return nil, io.EOF
	}

	var row format.Row
	if isSeparator(tok, "{") {
		row, err = d.readSparseRow(sc)
	} else {
		row, err = d.readDenseRow(sc)
	}
	if err != nil {
		return nil, err
	}

	inst := &format.Instance{Row: row}
	if err := d.readRowEnd(sc, inst); err != nil {
		return nil, err
	}

	return inst, nil
}

// readDenseRow reads exactly one value per attribute, separated by commas.
func (d *Decoder) readDenseRow(sc *scanner.Scanner) (format.Row, error) {
	row := make(format.Row, len(d.attrs))

	for i := range d.attrs {
		if i > 0 {
			tok, err := sc.Next()
			if err != nil {
				return nil, err
			}
			if !isSeparator(tok, ",") {
				return nil, fmt.Errorf("%w: expected , after value %d, got %s (line %d)",
					errs.ErrUnexpectedToken, i, tok, tok.Line)
			}
		}

		tok, err := readValueToken(sc, "value")
		if err != nil {
			return nil, err
		}

		row[i], err = d.parseValue(tok, i)
		if err != nil {
			return nil, err
		}
	}

	return row, nil
}

// readSparseRow reads an {index value, ...} row. Numeric slots default to
// 0.0 and nominal slots to index 0; all other slot types default to missing.
func (d *Decoder) readSparseRow(sc *scanner.Scanner) (format.Row, error) {
	_, _ = sc.Next() // opening {

	row := make(format.Row, len(d.attrs))
	for i := range d.attrs {
		switch d.attrs[i].Type {
		case format.TypeNumeric:
			row[i] = format.Num(0)
		case format.TypeNominal:
			row[i] = format.Nominal(0)
		default:
			row[i] = format.Missing()
		}
	}

	tok, err := sc.Peek()
	if err != nil {
		return nil, err
	}
	if isSeparator(tok, "}") {
		_, _ = sc.Next()
		return row, nil
	}

	for {
		idx, err := d.readSparseIndex(sc)
		if err != nil {
			return nil, err
		}

		tok, err := readValueToken(sc, "value")
		if err != nil {
			return nil, err
		}
		row[idx], err = d.parseValue(tok, idx)
		if err != nil {
			return nil, err
		}

		tok, err = sc.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case isSeparator(tok, "}"):
			return row, nil
		case isSeparator(tok, ","):
			continue
		default:
			return nil, fmt.Errorf("%w: expected , or } in sparse row, got %s (line %d)",
				errs.ErrUnexpectedToken, tok, tok.Line)
		}
	}
}

func (d *Decoder) readSparseIndex(sc *scanner.Scanner) (int, error) {
	tok, err := sc.Next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != scanner.KindUnquoted {
		return 0, fmt.Errorf("%w: expected sparse index, got %s (line %d)",
			errs.ErrUnexpectedToken, tok, tok.Line)
	}

	idx, err := strconv.Atoi(tok.Text)
	if err != nil || idx < 0 || idx >= len(d.attrs) {
		return 0, fmt.Errorf("%w: %q with %d attributes (line %d)",
			errs.ErrIndexOutOfRange, tok.Text, len(d.attrs), tok.Line)
	}

	return idx, nil
}

// readRowEnd consumes the optional ,{weight} suffix and the terminating
// end-of-line (or end-of-file on the last row).
func (d *Decoder) readRowEnd(sc *scanner.Scanner, inst *format.Instance) error {
	tok, err := sc.Next()
	if err != nil {
		return err
	}

	if isSeparator(tok, ",") {
		weight, err := d.readWeight(sc)
		if err != nil {
			return err
		}
		inst.Weight = weight
		inst.HasWeight = true

		tok, err = sc.Next()
		if err != nil {
			return err
		}
	}

	if tok.Kind != scanner.KindEOL && tok.Kind != scanner.KindEOF {
		return fmt.Errorf("%w: expected end of line after row, got %s (line %d)",
			errs.ErrUnexpectedToken, tok, tok.Line)
	}

	return nil
}

// readWeight parses the { <float> } weight body after its leading comma.
func (d *Decoder) readWeight(sc *scanner.Scanner) (float64, error) {
	tok, err := sc.Next()
	if err != nil {
		return 0, err
	}
	if !isSeparator(tok, "{") {
		return 0, fmt.Errorf("%w: expected { after trailing comma, got %s (line %d)",
			errs.ErrBadWeight, tok, tok.Line)
	}

	tok, err = sc.Next()
	if err != nil {
		return 0, err
	}
	if !tok.IsValue() {
		return 0, fmt.Errorf("%w: got %s (line %d)", errs.ErrBadWeight, tok, tok.Line)
	}
	weight, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (line %d)", errs.ErrBadWeight, tok.Text, tok.Line)
	}
	if d.strictWeights && (weight < 0 || math.IsNaN(weight)) {
		return 0, fmt.Errorf("%w: %q (line %d)", errs.ErrBadWeight, tok.Text, tok.Line)
	}

	tok, err = sc.Next()
	if err != nil {
		return 0, err
	}
	if !isSeparator(tok, "}") {
		return 0, fmt.Errorf("%w: expected } after weight, got %s (line %d)",
			errs.ErrBadWeight, tok, tok.Line)
	}

	return weight, nil
}

// parseValue converts one value token into the typed slot value for
// attribute i. The bare unquoted ? decodes to missing for every type.
func (d *Decoder) parseValue(tok scanner.Token, i int) (format.Value, error) {
	if tok.IsMissing() {
		return format.Missing(), nil
	}

	attr := &d.attrs[i]

	switch attr.Type {
	case format.TypeNumeric:
		num, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return format.Value{}, fmt.Errorf("%w: %q for attribute %q (line %d)",
				errs.ErrBadNumber, tok.Text, attr.Name, tok.Line)
		}

		return format.Num(num), nil
	case format.TypeString:
		return format.Str(tok.Text), nil
	case format.TypeNominal:
		idx, ok := d.nominal[i][tok.Text]
		if !ok {
			return format.Value{}, fmt.Errorf("%w: %q for attribute %q (line %d)",
				errs.ErrValueNotNominal, tok.Text, attr.Name, tok.Line)
		}

		return format.Nominal(idx), nil
	case format.TypeDate:
		t, err := format.ParseDate(attr.Format(), tok.Text)
		if err != nil {
			return format.Value{}, fmt.Errorf("%w for attribute %q (line %d)", err, attr.Name, tok.Line)
		}

		return format.Date(t), nil
	case format.TypeRelational:
		rows, err := d.parseRelational(tok.Text, attr)
		if err != nil {
			return format.Value{}, err
		}

		return format.Relational(rows...), nil
	default:
		return format.Value{}, fmt.Errorf("%w: attribute %q (line %d)",
			errs.ErrUnknownAttributeType, attr.Name, tok.Line)
	}
}

// parseRelational decodes a relational value: its text is itself a complete
// instance stream, decoded repeatedly with the child attributes until its
// own end of input. Sub-row weights are parsed then discarded.
func (d *Decoder) parseRelational(text string, attr *format.Attribute) ([]format.Row, error) {
	if d.depth+1 > maxRelationalDepth {
		return nil, fmt.Errorf("%w: attribute %q", errs.ErrNestingTooDeep, attr.Name)
	}

	sub := newDecoder(attr.Children, d.depth+1)
	sub.strictWeights = d.strictWeights
	sc := scanner.NewString(text)

	var rows []format.Row
	for {
		inst, err := sub.Read(sc)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("in relational attribute %q: %w", attr.Name, err)
		}
		rows = append(rows, inst.Row)
	}
}
