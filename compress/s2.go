package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Codec wraps the stream in the S2 framing format.
type S2Codec struct{}

// WrapReader returns an S2 decompressing reader.
func (S2Codec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return nopReadCloser{s2.NewReader(r)}, nil
}

// WrapWriter returns an S2 compressing writer.
func (S2Codec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
