package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest accumulates an xxHash64 over multiple writes. Used for structural
// fingerprints (e.g. header schemas) where the input is assembled piecewise.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString appends s to the digest.
func (d *Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
}

// WriteByte appends a single byte to the digest.
func (d *Digest) WriteByte(b byte) error {
	_, _ = d.d.Write([]byte{b})
	return nil
}

// WriteUint64 appends v in little-endian order to the digest.
func (d *Digest) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.d.Write(buf[:])
}

// Sum64 returns the current hash value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
