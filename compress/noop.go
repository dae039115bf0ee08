package compress

import "io"

// NoopCodec passes the stream through unchanged.
type NoopCodec struct{}

// WrapReader returns r unchanged behind a no-op Close.
func (NoopCodec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return nopReadCloser{r}, nil
}

// WrapWriter returns w unchanged behind a no-op Close.
func (NoopCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
