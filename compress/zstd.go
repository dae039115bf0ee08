package compress

// ZstdCodec wraps the stream in the Zstandard frame format.
//
// Two backends share this type: the pure-Go klauspost/compress/zstd
// implementation on builds without cgo, and valyala/gozstd (bindings to the
// reference C library) when cgo is available. Both produce and consume
// standard zstd frames, so files are interchangeable between backends.
type ZstdCodec struct{}
