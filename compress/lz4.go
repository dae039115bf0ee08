package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec wraps the stream in the LZ4 frame format.
type LZ4Codec struct{}

// WrapReader returns an LZ4 decompressing reader.
func (LZ4Codec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return nopReadCloser{lz4.NewReader(r)}, nil
}

// WrapWriter returns an LZ4 compressing writer.
func (LZ4Codec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
