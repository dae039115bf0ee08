package arff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"

	"github.com/arloliu/arff/codec"
	"github.com/arloliu/arff/compress"
	"github.com/arloliu/arff/errs"
	"github.com/arloliu/arff/format"
	"github.com/arloliu/arff/internal/pool"
	"github.com/arloliu/arff/scanner"
)

// writerState tracks the required section order of an ARFF document.
type writerState uint8

const (
	stateStart             writerState = iota // nothing written yet
	stateRelationWritten                      // @relation emitted
	stateAttributesWritten                    // at least one @attribute emitted
	stateDataWritten                          // @data emitted, rows may follow
)

func (s writerState) String() string {
	switch s {
	case stateStart:
		return "Start"
	case stateRelationWritten:
		return "RelationWritten"
	case stateAttributesWritten:
		return "AttributesWritten"
	case stateDataWritten:
		return "DataWritten"
	default:
		return "Unknown"
	}
}

// Writer writes one ARFF document in the required order: the relation name,
// then at least one attribute, then instances. The first instance write
// emits the @data marker. Comments may be written in any state.
//
// Note: The Writer is NOT thread-safe. Each writer instance holds exclusive
// ownership of its underlying stream and must be used by a single logical
// call at a time.
type Writer struct {
	file    *os.File // non-nil only when the writer owns the file handle
	comp    io.WriteCloser
	charset io.WriteCloser // non-nil only with a non-default text encoding
	buf     *bufio.Writer
	cfg     *config
	state   writerState
	attrs   []format.Attribute
	closed  bool
}

// Create creates (or truncates) an ARFF file for writing. Compression is
// inferred from the file extension unless forced with WithCompression.
//
// Parameters:
//   - path: File to create; .gz/.gzip, .zst/.zstd, .s2 and .lz4 extensions
//     select the matching container codec
//   - opts: Optional configuration (WithCompression, WithTextEncoding,
//     WithDefaultDateFormat, WithStrictWeights)
//
// Returns:
//   - *Writer: Writer owning the file handle; Close flushes and releases it
//   - error: File-system error, or a configuration error for invalid options
func Create(path string, opts ...Option) (*Writer, error) {
	cfg := newConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, err
	}
	if !cfg.compressionSet {
		cfg.compression = compress.ByExtension(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w, err := newWriter(f, cfg)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.file = f

	return w, nil
}

// NewWriter creates a Writer over a caller-owned stream. Close flushes and
// releases the writer's own resources but leaves w open.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil writer", errs.ErrInvalidArgument)
	}

	cfg := newConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, err
	}

	return newWriter(w, cfg)
}

func newWriter(w io.Writer, cfg *config) (*Writer, error) {
	c, err := compress.For(cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidArgument, err)
	}

	comp, err := c.WrapWriter(w)
	if err != nil {
		return nil, err
	}

	wr := &Writer{comp: comp, cfg: cfg}

	var sink io.Writer = comp
	if cfg.textEncoding != nil {
		tw := transform.NewWriter(comp, cfg.textEncoding.NewEncoder())
		wr.charset = tw
		sink = tw
	}
	wr.buf = bufio.NewWriter(sink)

	return wr, nil
}

// WriteRelation writes the @relation line. Legal only as the very first
// write of the document.
func (w *Writer) WriteRelation(name string) error {
	if err := w.require(stateStart); err != nil {
		return err
	}

	w.buf.WriteString("@relation ")
	w.buf.WriteString(scanner.QuoteIfNeeded(name))
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	w.state = stateRelationWritten

	return nil
}

// WriteAttribute writes one @attribute declaration (a multi-line block for
// relational attributes). Legal after the relation name and before the
// first instance.
func (w *Writer) WriteAttribute(attr format.Attribute) error {
	if err := w.require(stateRelationWritten, stateAttributesWritten); err != nil {
		return err
	}
	if w.cfg.defaultDateFormat != "" {
		fillDefaultDateFormat(&attr, w.cfg.defaultDateFormat)
	}
	if err := validateAttribute(&attr); err != nil {
		return err
	}

	bb := pool.GetRowBuffer()
	defer pool.PutRowBuffer(bb)

	if err := codec.AppendAttributeDecl(bb, &attr); err != nil {
		return err
	}
	if _, err := bb.WriteTo(w.buf); err != nil {
		return err
	}

	w.attrs = append(w.attrs, attr)
	w.state = stateAttributesWritten

	return nil
}

// WriteHeader writes a full header: the relation name and every attribute.
func (w *Writer) WriteHeader(header *format.Header) error {
	if header == nil {
		return fmt.Errorf("%w: nil header", errs.ErrInvalidArgument)
	}
	if err := w.WriteRelation(header.Relation); err != nil {
		return err
	}
	for i := range header.Attributes {
		if err := w.WriteAttribute(header.Attributes[i]); err != nil {
			return err
		}
	}

	return nil
}

// WriteInstance writes one instance in dense layout, with its weight suffix
// when inst.HasWeight is set. The first instance write emits the @data
// marker; after it the header is sealed.
func (w *Writer) WriteInstance(inst format.Instance) error {
	return w.writeInstance(inst, false)
}

// WriteSparseInstance writes one instance in sparse layout, listing only
// slots that differ from their sparse defaults.
func (w *Writer) WriteSparseInstance(inst format.Instance) error {
	return w.writeInstance(inst, true)
}

func (w *Writer) writeInstance(inst format.Instance, sparse bool) error {
	if err := w.require(stateAttributesWritten, stateDataWritten); err != nil {
		return err
	}
	if inst.HasWeight && inst.Weight < 0 {
		return fmt.Errorf("%w: %v", errs.ErrNegativeWeight, inst.Weight)
	}

	bb := pool.GetRowBuffer()
	defer pool.PutRowBuffer(bb)

	var err error
	if sparse {
		err = codec.EncodeSparseRow(bb, w.attrs, inst.Row)
	} else {
		err = codec.EncodeRow(bb, w.attrs, inst.Row)
	}
	if err != nil {
		return err
	}
	if inst.HasWeight {
		codec.AppendWeight(bb, inst.Weight)
	}

	if w.state != stateDataWritten {
		if _, err := w.buf.WriteString("@data\n"); err != nil {
			return err
		}
		w.state = stateDataWritten
	}

	if _, err := bb.WriteTo(w.buf); err != nil {
		return err
	}

	return w.buf.WriteByte('\n')
}

// WriteComment writes text as comment lines, splitting multi-line text into
// one %-prefixed line each. Legal in any state.
func (w *Writer) WriteComment(text string) error {
	if w.closed {
		return errs.ErrClosed
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		w.buf.WriteString("% ")
		w.buf.WriteString(line)
		if err := w.buf.WriteByte('\n'); err != nil {
			return err
		}
	}

	return nil
}

// Flush pushes buffered text into the underlying stream.
func (w *Writer) Flush() error {
	if w.closed {
		return errs.ErrClosed
	}

	return w.buf.Flush()
}

// Close flushes and releases the writer's resources exactly once. The
// underlying stream is closed only when the writer created it itself (via
// Create). All further operations on a closed writer fail with ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return errs.ErrClosed
	}
	w.closed = true

	err := w.buf.Flush()
	if w.charset != nil {
		if cerr := w.charset.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := w.comp.Close(); err == nil {
		err = cerr
	}
	if w.file != nil {
		if cerr := w.file.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

// require checks the writer is open and in one of the given states.
func (w *Writer) require(states ...writerState) error {
	if w.closed {
		return errs.ErrClosed
	}
	for _, s := range states {
		if w.state == s {
			return nil
		}
	}

	return fmt.Errorf("%w: not legal in state %s", errs.ErrWrongState, w.state)
}

// fillDefaultDateFormat applies the configured fallback pattern to date
// attributes that carry none, recursing through relational children. The
// emitted declaration then states the pattern explicitly.
func fillDefaultDateFormat(attr *format.Attribute, pattern string) {
	switch attr.Type {
	case format.TypeDate:
		if attr.DateFormat == "" {
			attr.DateFormat = pattern
		}
	case format.TypeRelational:
		// Copy per level so the caller's attribute tree stays untouched.
		children := make([]format.Attribute, len(attr.Children))
		copy(children, attr.Children)
		attr.Children = children
		for i := range attr.Children {
			fillDefaultDateFormat(&attr.Children[i], pattern)
		}
	}
}

// validateAttribute rejects declarations the grammar cannot express.
func validateAttribute(attr *format.Attribute) error {
	switch attr.Type {
	case format.TypeNumeric, format.TypeString, format.TypeNominal:
		return nil
	case format.TypeDate:
		if _, err := format.GoLayout(attr.Format()); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidArgument, err)
		}

		return nil
	case format.TypeRelational:
		if len(attr.Children) == 0 {
			return fmt.Errorf("%w: relational attribute %q has no children", errs.ErrInvalidArgument, attr.Name)
		}
		for i := range attr.Children {
			if err := validateAttribute(&attr.Children[i]); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("%w: attribute %q has unknown type", errs.ErrInvalidArgument, attr.Name)
	}
}
