package arff

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/transform"

	"github.com/arloliu/arff/codec"
	"github.com/arloliu/arff/compress"
	"github.com/arloliu/arff/errs"
	"github.com/arloliu/arff/format"
	"github.com/arloliu/arff/scanner"
)

// Reader reads one ARFF document: the header exactly once, then instances
// one at a time.
//
// Note: The Reader is NOT thread-safe. Each reader instance holds exclusive
// ownership of its underlying stream and must be used by a single logical
// call at a time.
type Reader struct {
	file   *os.File // non-nil only when the reader owns the file handle
	decomp io.ReadCloser
	sc     *scanner.Scanner
	cfg    *config
	header *format.Header
	dec    *codec.Decoder
	closed bool
}

// Open opens an ARFF file for reading. Compression is inferred from the
// file extension unless forced with WithCompression.
//
// Parameters:
//   - path: File to open; .gz/.gzip, .zst/.zstd, .s2 and .lz4 extensions
//     select the matching container codec
//   - opts: Optional configuration (WithCompression, WithTextEncoding,
//     WithDefaultDateFormat, WithStrictWeights)
//
// Returns:
//   - *Reader: Reader owning the file handle; Close releases it
//   - error: File-system error, or a configuration error for invalid options
func Open(path string, opts ...Option) (*Reader, error) {
	cfg := newConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, err
	}
	if !cfg.compressionSet {
		cfg.compression = compress.ByExtension(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := newReader(f, cfg)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f

	return r, nil
}

// NewReader creates a Reader over a caller-owned stream. Close releases the
// reader's own resources but leaves r open.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", errs.ErrInvalidArgument)
	}

	cfg := newConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, err
	}

	return newReader(r, cfg)
}

func newReader(r io.Reader, cfg *config) (*Reader, error) {
	c, err := compress.For(cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidArgument, err)
	}

	decomp, err := c.WrapReader(r)
	if err != nil {
		return nil, err
	}

	var chars io.Reader = decomp
	if cfg.textEncoding != nil {
		chars = transform.NewReader(decomp, cfg.textEncoding.NewDecoder())
	}

	return &Reader{
		decomp: decomp,
		sc:     scanner.New(chars),
		cfg:    cfg,
	}, nil
}

// ReadHeader parses the document header: the relation name and the attribute
// declarations, up to and including the @data line. It must be called
// exactly once, before any instance reads.
func (r *Reader) ReadHeader() (*format.Header, error) {
	if r.closed {
		return nil, errs.ErrClosed
	}
	if r.header != nil {
		return nil, errs.ErrHeaderAlreadyRead
	}

	header, err := codec.ReadHeader(r.sc)
	if err != nil {
		return nil, err
	}
	if r.cfg.defaultDateFormat != "" {
		applyDefaultDateFormat(header.Attributes, r.cfg.defaultDateFormat)
	}

	r.header = header
	r.dec = codec.NewDecoder(header.Attributes)
	r.dec.SetStrictWeights(r.cfg.strictWeights)

	return header, nil
}

// applyDefaultDateFormat fills the configured fallback pattern into date
// attributes declared without one, recursing through relational children.
func applyDefaultDateFormat(attrs []format.Attribute, pattern string) {
	for i := range attrs {
		switch attrs[i].Type {
		case format.TypeDate:
			if attrs[i].DateFormat == "" {
				attrs[i].DateFormat = pattern
			}
		case format.TypeRelational:
			applyDefaultDateFormat(attrs[i].Children, pattern)
		}
	}
}

// ReadInstance decodes the next instance, dense or sparse, with its optional
// weight. It returns io.EOF when no rows remain. ReadHeader must have been
// called first.
func (r *Reader) ReadInstance() (*format.Instance, error) {
	if r.closed {
		return nil, errs.ErrClosed
	}
	if r.header == nil {
		return nil, fmt.Errorf("%w: ReadHeader not called", errs.ErrWrongState)
	}

	return r.dec.Read(r.sc)
}

// ReadAll eagerly collects all remaining instances. The header is read
// first when it has not been read yet.
func (r *Reader) ReadAll() ([]format.Instance, error) {
	if r.closed {
		return nil, errs.ErrClosed
	}
	if r.header == nil {
		if _, err := r.ReadHeader(); err != nil {
			return nil, err
		}
	}

	var instances []format.Instance
	for {
		inst, err := r.ReadInstance()
		if err == io.EOF {
			return instances, nil
		}
		if err != nil {
			return nil, err
		}
		instances = append(instances, *inst)
	}
}

// Header returns the parsed header, or nil before ReadHeader.
func (r *Reader) Header() *format.Header {
	return r.header
}

// Close releases the reader's resources exactly once. The underlying stream
// is closed only when the reader opened it itself (via Open). All further
// operations on a closed reader fail with ErrClosed.
func (r *Reader) Close() error {
	if r.closed {
		return errs.ErrClosed
	}
	r.closed = true

	err := r.decomp.Close()
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
	}

	return err
}
