package layout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates the size-relevant configuration of a widget tree.
//
// Two trees that would lay out identically under the same limits must hash
// identically; differing hashes say nothing about whether layouts differ.
type Hasher struct {
	digest *xxhash.Digest
	buf    [8]byte
}

// NewHasher returns an empty hasher.
func NewHasher() *Hasher {
	return &Hasher{digest: xxhash.New()}
}

// WriteKind writes a widget-kind discriminant.
func (h *Hasher) WriteKind(kind string) {
	h.WriteString(kind)
}

// WriteString writes a length-prefixed string.
func (h *Hasher) WriteString(s string) {
	h.WriteUint64(uint64(len(s)))
	_, _ = h.digest.WriteString(s)
}

// WriteUint64 writes v in little-endian order.
func (h *Hasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.digest.Write(h.buf[:])
}

// WriteFloat64 writes the bit pattern of v. Negative zero is folded into zero.
func (h *Hasher) WriteFloat64(v float64) {
	if v == 0 {
		v = 0
	}
	h.WriteUint64(math.Float64bits(v))
}

// WriteBool writes b as a single word.
func (h *Hasher) WriteBool(b bool) {
	if b {
		h.WriteUint64(1)
		return
	}
	h.WriteUint64(0)
}

// Sum64 returns the current hash.
func (h *Hasher) Sum64() uint64 {
	return h.digest.Sum64()
}

// Reset clears the hasher for reuse.
func (h *Hasher) Reset() {
	h.digest.Reset()
}
