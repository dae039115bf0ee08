// Package compress provides stream codecs for compressed ARFF containers.
//
// ARFF files are routinely stored compressed (conventionally gzip, as
// .arff.gz); the codecs here wrap the underlying byte stream so the reader
// and writer operate on plain characters regardless of the container.
package compress

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/arff/format"
)

// Codec wraps a byte stream with transparent compression.
//
// Both returned wrappers own only the compression state: closing them
// flushes and releases codec resources but never closes the underlying
// stream, whose lifetime belongs to the caller.
type Codec interface {
	// WrapReader returns a reader yielding the decompressed content of r.
	WrapReader(r io.Reader) (io.ReadCloser, error)

	// WrapWriter returns a writer compressing into w. Close must be called
	// to flush the final frame.
	WrapWriter(w io.Writer) (io.WriteCloser, error)
}

// For returns the codec for the given compression type.
func For(c format.CompressionType) (Codec, error) {
	switch c {
	case format.CompressionNone:
		return NoopCodec{}, nil
	case format.CompressionGzip:
		return GzipCodec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	case format.CompressionS2:
		return S2Codec{}, nil
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("unknown compression type %d", c)
	}
}

// ByExtension infers the compression type from a file name:
// .gz/.gzip, .zst/.zstd, .s2 and .lz4 map to their codecs, anything else to
// CompressionNone.
func ByExtension(path string) format.CompressionType {
	switch {
	case strings.HasSuffix(path, ".gz"), strings.HasSuffix(path, ".gzip"):
		return format.CompressionGzip
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		return format.CompressionZstd
	case strings.HasSuffix(path, ".s2"):
		return format.CompressionS2
	case strings.HasSuffix(path, ".lz4"):
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// nopReadCloser adapts codecs whose reader has no Close method.
type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }
