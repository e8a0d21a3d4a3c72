package lattice

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is a BLAKE3 hash of an ordered bond list.
type Digest [32]byte

// String returns the lowercase hex form.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 12 hex characters, enough to compare runs by eye.
func (d Digest) Short() string {
	return d.String()[:12]
}

// DigestBonds hashes bonds in order, each as three little-endian int64s.
// Equal digests mean identical bonds in identical order.
func DigestBonds(bonds []Bond) Digest {
	h := blake3.New()
	var buf [24]byte
	for _, b := range bonds {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(int64(b.Class)))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(int64(b.A)))
		binary.LittleEndian.PutUint64(buf[16:24], uint64(int64(b.B)))
		_, _ = h.Write(buf[:])
	}
	var d Digest
	copy(d[:], h.Sum(nil))

	return d
}

// Digest hashes the result's bond list.
func (r *Result) Digest() Digest {
	return DigestBonds(r.Bonds)
}
