package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec wraps the stream in the gzip format, the conventional container
// for compressed ARFF files (.arff.gz).
type GzipCodec struct{}

// WrapReader returns a gzip decompressing reader.
func (GzipCodec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}

	return gr, nil
}

// WrapWriter returns a gzip compressing writer.
func (GzipCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
