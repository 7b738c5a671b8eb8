package orientation

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprints hash the exact IEEE-754 bit patterns of the elements, so two values share a fingerprint only if they are
// bit-for-bit identical (0 and -0 differ). They are meant as cache keys, not approximate comparisons.

func fingerprint(values ...float32) uint64 {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return xxhash.Sum64(buf)
}

// Fingerprint returns a 64-bit hash of the Vector3's exact components.
func (vec Vector3) Fingerprint() uint64 {
	return fingerprint(vec.X, vec.Y, vec.Z)
}

// Fingerprint returns a 64-bit hash of the Quaternion's exact components, in X, Y, Z, W order.
func (q Quaternion) Fingerprint() uint64 {
	return fingerprint(q.X, q.Y, q.Z, q.W)
}

// Fingerprint returns a 64-bit hash of the Matrix33's exact elements, in row-major order.
func (matrix Matrix33) Fingerprint() uint64 {
	d := [9]float32{}
	matrix.RowMajor(d[:])
	return fingerprint(d[:]...)
}

// Fingerprint returns a 64-bit hash of the Matrix34's exact elements: M in row-major order, then T.
func (matrix Matrix34) Fingerprint() uint64 {
	d := [12]float32{}
	matrix.M.RowMajor(d[:9])
	d[9], d[10], d[11] = matrix.T.X, matrix.T.Y, matrix.T.Z
	return fingerprint(d[:]...)
}
