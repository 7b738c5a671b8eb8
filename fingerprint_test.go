package orientation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {

	a := NewMatrix34RT(NewMatrix33RotateX(0.5), Vector3{1, 2, 3})
	b := a

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.T.Z = 3.0000002
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	// The translation is part of a transform's fingerprint, so it differs from that of its rotation alone.
	assert.NotEqual(t, a.M.Fingerprint(), a.Fingerprint())

	// Exact bits are hashed: positive and negative zero differ.
	assert.NotEqual(t, Vector3{0, 0, 0}.Fingerprint(), Vector3{0, 0, float32(math.Copysign(0, -1))}.Fingerprint())

	q := NewQuaternionAngleAxis(20, VecY)
	assert.Equal(t, q.Fingerprint(), NewQuaternionAngleAxis(20, VecY).Fingerprint())
	assert.NotEqual(t, q.Fingerprint(), q.Negated().Fingerprint())

}
