package orientation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkTransformMultiply(b *testing.B) {

	b.ReportAllocs()

	transforms := randomTransforms(2, 1)
	out := NewMatrix34()

	for i := 0; i < b.N; i++ {
		out.SetMultiply(&transforms[0], &transforms[1])
	}

}

func TestTransformMultVec(t *testing.T) {

	tf := NewMatrix34RT(NewMatrix33RotateZ(Pi/2), Vector3{1, 2, 3})

	moved := tf.MultVec(VecX)
	assertVectorInDelta(t, Vector3{1, 3, 3}, moved, testDelta)
	assertVectorInDelta(t, VecX, tf.MultVecInverseRT(moved), testDelta)

}

func TestTransformAssociativity(t *testing.T) {

	transforms := randomTransforms(30, 5)

	for i := 0; i+2 < len(transforms); i += 3 {

		a, b, c := transforms[i], transforms[i+1], transforms[i+2]

		left := a.Mult(b).Mult(c)
		right := a.Mult(b.Mult(c))

		assertTransformInDelta(t, left, right, 1e-4)

		// Composition order: c is applied first.
		v := Vector3{0.5, -1, 2}
		assertVectorInDelta(t, a.MultVec(b.MultVec(c.MultVec(v))), left.MultVec(v), 1e-4)

	}

}

func TestTransformInverseRT(t *testing.T) {

	for _, tf := range randomTransforms(20, 9) {

		inv := Matrix34{}
		assert.True(t, tf.InverseRT(&inv))

		assertTransformInDelta(t, NewMatrix34(), tf.Mult(inv), 1e-4)
		assertTransformInDelta(t, NewMatrix34(), inv.Mult(tf), 1e-4)
		assertTransformInDelta(t, inv, tf.InvertedRT(), 0)

		self := tf
		self.InverseRT(&self)
		assertTransformInDelta(t, inv, self, 0)

	}

}

func TestTransformInverse(t *testing.T) {

	tf := NewMatrix34RT(
		NewMatrix33RotateX(0.4).Mult(NewMatrix33Diagonal(Vector3{2, 0.5, 3})),
		Vector3{-3, 1, 7},
	)

	inv, ok := tf.Inverted()
	require.True(t, ok)

	assertTransformInDelta(t, NewMatrix34(), tf.Mult(inv), 1e-4)
	assertTransformInDelta(t, NewMatrix34(), inv.Mult(tf), 1e-4)

	self := tf
	require.True(t, self.Inverse(&self))
	assert.Equal(t, inv, self)

	// For a rigid transform, both inverses agree.
	rigid := randomTransforms(1, 4)[0]
	general, ok := rigid.Inverted()
	require.True(t, ok)
	assertTransformInDelta(t, rigid.InvertedRT(), general, 1e-4)

}

func TestTransformInverseSingular(t *testing.T) {

	tf := NewMatrix34RT(NewMatrix33Diagonal(Vector3{1, 0, 1}), Vector3{1, 2, 3})

	inv, ok := tf.Inverted()
	assert.False(t, ok)
	assert.True(t, inv.M.IsIdentity())
	assert.Equal(t, Vector3{-1, -2, -3}, inv.T)

}

func TestTransformMultiplyInverseRT(t *testing.T) {

	transforms := randomTransforms(10, 21)

	for i := 0; i+1 < len(transforms); i += 2 {

		a, b := transforms[i], transforms[i+1]

		invLeft := Matrix34{}
		invLeft.SetMultiplyInverseRTLeft(&a, &b)
		assertTransformInDelta(t, a.InvertedRT().Mult(b), invLeft, 1e-4)

		invRight := Matrix34{}
		invRight.SetMultiplyInverseRTRight(&a, &b)
		assertTransformInDelta(t, a.Mult(b.InvertedRT()), invRight, 1e-4)

		// A transform composed with its own inverse is the identity.
		self := a
		self.SetMultiplyInverseRTLeft(&self, &self)
		assertTransformInDelta(t, NewMatrix34(), self, 1e-4)

		self = a
		self.SetMultiplyInverseRTRight(&self, &self)
		assertTransformInDelta(t, NewMatrix34(), self, 1e-4)

	}

}

func TestTransformMultiplyAliasing(t *testing.T) {

	transforms := randomTransforms(2, 13)
	a, b := transforms[0], transforms[1]

	type multiply func(m, left, right *Matrix34)

	variants := map[string]multiply{
		"plain":               (*Matrix34).SetMultiply,
		"inverse rt of left":  (*Matrix34).SetMultiplyInverseRTLeft,
		"inverse rt of right": (*Matrix34).SetMultiplyInverseRTRight,
	}

	for name, fn := range variants {
		t.Run(name, func(t *testing.T) {

			aCopy, bCopy := a, b
			want := Matrix34{}
			fn(&want, &aCopy, &bCopy)

			left := a
			fn(&left, &left, &b)
			assert.Equal(t, want, left)

			right := b
			fn(&right, &a, &right)
			assert.Equal(t, want, right)

			aCopy2 := a
			squaredWant := Matrix34{}
			fn(&squaredWant, &aCopy, &aCopy2)

			self := a
			fn(&self, &self, &self)
			assert.Equal(t, squaredWant, self)

		})
	}

}

func TestTransformIdentity(t *testing.T) {

	tf := NewMatrix34()
	assert.True(t, tf.IsIdentity())
	assert.True(t, tf.IsFinite())

	tf.T.X = 1
	assert.False(t, tf.IsIdentity())

	tf.SetIdentity()
	assert.True(t, tf.IsIdentity())

	tf.SetZero()
	assert.Equal(t, NewMatrix34Zero(), tf)

}

func TestTransformSlerp(t *testing.T) {

	a := NewMatrix34RT(NewMatrix33(), Vector3{0, 0, 0})
	b := NewMatrix34RT(NewMatrix33RotateY(Pi/2), Vector3{10, 0, -4})

	mid := a.Slerp(b, 0.5)
	assertMatrixInDelta(t, NewMatrix33RotateY(Pi/4), mid.M, testDelta)
	assertVectorInDelta(t, Vector3{5, 0, -2}, mid.T, testDelta)

	assertTransformInDelta(t, a, a.Slerp(b, 0), testDelta)
	assertTransformInDelta(t, b, a.Slerp(b, 1), testDelta)

}

func TestTransformFromQuaternion(t *testing.T) {

	q := NewQuaternionAngleAxis(30, Vector3{1, 2, 3})
	tf := NewMatrix34FromQuaternion(q, Vector3{1, 1, 1})

	assert.Equal(t, MatrixFromQuaternion(q), tf.M)
	assert.True(t, tf.Equals(NewMatrix34RT(q.ToMatrix33(), Vector3{1, 1, 1})))

}
