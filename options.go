package arff

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/arloliu/arff/compress"
	"github.com/arloliu/arff/errs"
	"github.com/arloliu/arff/format"
	"github.com/arloliu/arff/internal/options"
)

// Option configures a Reader or Writer at construction time.
type Option = options.Option[*config]

type config struct {
	compression       format.CompressionType
	compressionSet    bool
	textEncoding      encoding.Encoding
	defaultDateFormat string
	strictWeights     bool
}

func newConfig() *config {
	return &config{compression: format.CompressionNone}
}

func (c *config) apply(opts ...Option) error {
	return options.Apply(c, opts...)
}

// WithCompression forces a stream compression codec, overriding the
// extension-based inference of Open and Create. Required when reading a
// compressed document from a plain io.Reader.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.For(ct); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidArgument, err)
		}
		c.compression = ct
		c.compressionSet = true

		return nil
	})
}

// WithTextEncoding selects the character encoding of the underlying stream,
// e.g. charmap.ISO8859_1. The default is UTF-8 without a byte-order mark.
func WithTextEncoding(enc encoding.Encoding) Option {
	return options.New(func(c *config) error {
		if enc == nil {
			return fmt.Errorf("%w: nil text encoding", errs.ErrInvalidArgument)
		}
		c.textEncoding = enc

		return nil
	})
}

// WithDefaultDateFormat replaces the fallback pattern applied to date
// attributes declared without an explicit format. On read the pattern governs
// value parsing for such attributes; on write it is filled into their
// declarations. The pattern is validated eagerly.
func WithDefaultDateFormat(pattern string) Option {
	return options.New(func(c *config) error {
		if _, err := format.GoLayout(pattern); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidArgument, err)
		}
		c.defaultDateFormat = pattern

		return nil
	})
}

// WithStrictWeights makes a Reader reject negative and NaN instance weights
// with ErrBadWeight. By default weights read back exactly as written.
func WithStrictWeights() Option {
	return options.New(func(c *config) error {
		c.strictWeights = true

		return nil
	})
}
