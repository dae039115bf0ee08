//go:build !cgo

package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WrapReader returns a zstd decompressing reader using the pure-Go backend.
func (ZstdCodec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
		zstd.WithDecoderLowmem(false),  // Use more memory for better performance
	)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}

	return dec.IOReadCloser(), nil
}

// WrapWriter returns a zstd compressing writer using the pure-Go backend.
func (ZstdCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}

	return enc, nil
}
