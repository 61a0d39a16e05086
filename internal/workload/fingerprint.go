package workload

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns an order-sensitive 64-bit digest of values.
// Each value is hashed as 8 little-endian bytes.
func Fingerprint(values iter.Seq[int64]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for v := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
