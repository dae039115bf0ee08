//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// WrapReader returns a zstd decompressing reader using the cgo backend.
func (ZstdCodec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReader{zr: gozstd.NewReader(r)}, nil
}

// WrapWriter returns a zstd compressing writer using the cgo backend.
func (ZstdCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriter{zw: gozstd.NewWriter(w)}, nil
}

// gozstdReader releases the C-side decompression context on Close.
type gozstdReader struct {
	zr *gozstd.Reader
}

func (r *gozstdReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *gozstdReader) Close() error {
	r.zr.Release()
	return nil
}

// gozstdWriter finishes the frame and releases the C-side context on Close.
type gozstdWriter struct {
	zw *gozstd.Writer
}

func (w *gozstdWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

func (w *gozstdWriter) Close() error {
	err := w.zw.Close()
	w.zw.Release()

	return err
}
