package orientation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkVectorCross(b *testing.B) {

	b.ReportAllocs()

	a := Vector3{1, 2, 3}
	c := Vector3{-4, 0.5, 2}

	for i := 0; i < b.N; i++ {
		a = a.Cross(c).Unit()
	}

}

func TestVectorArithmetic(t *testing.T) {

	a := Vector3{1, 2, 3}
	b := Vector3{-2, 0.5, 4}

	assert.Equal(t, Vector3{-1, 2.5, 7}, a.Add(b))
	assert.Equal(t, Vector3{3, 1.5, -1}, a.Sub(b))
	assert.Equal(t, Vector3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Vector3{0.5, 1, 1.5}, a.Divide(2))
	assert.False(t, a.Divide(0).IsFinite())
	assert.Equal(t, Vector3{-2, 1, 12}, a.MultComp(b))
	assert.Equal(t, Vector3{-1, -2, -3}, a.Invert())
	assert.Equal(t, float32(-2+1+12), a.Dot(b))
	assert.Equal(t, Vector3{-2, 0.5, 3}, a.Min(b))
	assert.Equal(t, Vector3{1, 2, 4}, a.Max(b))

	// a is untouched by the copying methods.
	assert.Equal(t, Vector3{1, 2, 3}, a)

}

func TestVectorCross(t *testing.T) {

	assert.Equal(t, VecZ, VecX.Cross(VecY))
	assert.Equal(t, VecX, VecY.Cross(VecZ))
	assert.Equal(t, VecY, VecZ.Cross(VecX))
	assert.Equal(t, VecZ.Invert(), VecY.Cross(VecX))

	a := Vector3{1, 2, 3}
	b := Vector3{-2, 0.5, 4}
	c := a.Cross(b)

	assert.InDelta(t, 0, c.Dot(a), testDelta)
	assert.InDelta(t, 0, c.Dot(b), testDelta)

}

func TestVectorMagnitude(t *testing.T) {

	v := Vector3{3, 4, 12}

	assert.Equal(t, float32(13), v.Magnitude())
	assert.Equal(t, float32(169), v.MagnitudeSquared())
	assert.Equal(t, float32(13), Vector3{}.Distance(v))
	assert.InDelta(t, 1, v.Unit().Magnitude(), testDelta)

}

func TestVectorUnitZero(t *testing.T) {
	assert.Equal(t, Vector3{}, Vector3{}.Unit())
}

func TestVectorPredicates(t *testing.T) {

	assert.True(t, Vector3{}.IsZero())
	assert.False(t, Vector3{0, 1e-30, 0}.IsZero())

	assert.True(t, Vector3{1, 2, 3}.IsFinite())
	inf := float32(math.Inf(1))
	assert.False(t, Vector3{inf, 0, 0}.IsFinite())
	assert.False(t, Vector3{0, float32(math.NaN()), 0}.IsFinite())

	assert.True(t, Vector3{1, 2, 3}.Equals(Vector3{1, 2, 3.000001}))
	assert.False(t, Vector3{1, 2, 3}.Equals(Vector3{1, 2, 3.1}))

}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "{1, -2.5, 0}", Vector3{1, -2.5, 0}.String())
}
