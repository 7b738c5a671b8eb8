package orientation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDelta = 1e-5

func assertVectorInDelta(t *testing.T, want, got Vector3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X of %s vs %s", want, got)
	assert.InDelta(t, want.Y, got.Y, delta, "Y of %s vs %s", want, got)
	assert.InDelta(t, want.Z, got.Z, delta, "Z of %s vs %s", want, got)
}

func assertQuaternionInDelta(t *testing.T, want, got Quaternion, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X of %s vs %s", want, got)
	assert.InDelta(t, want.Y, got.Y, delta, "Y of %s vs %s", want, got)
	assert.InDelta(t, want.Z, got.Z, delta, "Z of %s vs %s", want, got)
	assert.InDelta(t, want.W, got.W, delta, "W of %s vs %s", want, got)
}

// assertSameRotation accepts either q or -q.
func assertSameRotation(t *testing.T, want, got Quaternion, delta float64) {
	t.Helper()
	if want.Dot(got) < 0 {
		got = got.Negated()
	}
	assertQuaternionInDelta(t, want, got, delta)
}

func assertMatrixInDelta(t *testing.T, want, got Matrix33, delta float64) {
	t.Helper()
	for i := range 3 {
		for j := range 3 {
			assert.InDelta(t, want[i][j], got[i][j], delta, "element [%d][%d] of\n%s\nvs\n%s", i, j, want, got)
		}
	}
}

func assertTransformInDelta(t *testing.T, want, got Matrix34, delta float64) {
	t.Helper()
	assertMatrixInDelta(t, want.M, got.M, delta)
	assertVectorInDelta(t, want.T, got.T, delta)
}

func randomTransforms(count int, seed int64) []Matrix34 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Matrix34, 0, count)
	for range count {
		q := NewQuaternionRandom(rng)
		t := Vector3{rng.Float32()*20 - 10, rng.Float32()*20 - 10, rng.Float32()*20 - 10}
		out = append(out, NewMatrix34FromQuaternion(q, t))
	}
	return out
}
