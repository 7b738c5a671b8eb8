package orientation

import (
	"math/rand"
	"strconv"

	"github.com/solarlune/orientation/math32"
)

// Quaternion represents a rotation as w + xi + yj + zk. Rotation functions assume the Quaternion is of unit length
// (X²+Y²+Z²+W² == 1) and do not check it; a Quaternion and its negation represent the same rotation.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion creates a new Quaternion out of the given components.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns the identity rotation, [0, 0, 0, 1].
func NewQuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// NewQuaternionFromVector copies the X, Y, and Z components from the vector given, and sets W to w.
func NewQuaternionFromVector(vec Vector3, w float32) Quaternion {
	return Quaternion{vec.X, vec.Y, vec.Z, w}
}

// NewQuaternionAngleAxis creates a Quaternion that rotates by angle (in degrees) around the axis given.
// The axis is normalized internally, but must not be zero-length. Angles past 360 wrap around.
func NewQuaternionAngleAxis(angleDegrees float32, axis Vector3) Quaternion {
	q := Quaternion{}
	q.SetAngleAxis(angleDegrees, axis)
	return q
}

// NewQuaternionAngleAxisFast creates a Quaternion that rotates by angle (in radians) around the axis given.
// The axis must already be of unit length.
func NewQuaternionAngleAxisFast(angleRadians float32, axis Vector3) Quaternion {
	q := Quaternion{}
	q.SetAngleAxisFast(angleRadians, axis)
	return q
}

// NewQuaternionRandom creates a random unit Quaternion using the random source given; each component is drawn from [0, 1)
// before normalizing.
func NewQuaternionRandom(rng *rand.Rand) Quaternion {
	q := Quaternion{rng.Float32(), rng.Float32(), rng.Float32(), rng.Float32()}
	q.Normalize()
	return q
}

// SetIdentity sets the Quaternion to the identity rotation.
func (q *Quaternion) SetIdentity() {
	q.X, q.Y, q.Z, q.W = 0, 0, 0, 1
}

// IsIdentityRotation returns true if the Quaternion is exactly [0, 0, 0, ±1].
func (q Quaternion) IsIdentityRotation() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && math32.Abs(q.W) == 1
}

// SetWXYZ sets the components of the Quaternion, given in W, X, Y, Z order.
func (q *Quaternion) SetWXYZ(w, x, y, z float32) {
	q.X, q.Y, q.Z, q.W = x, y, z, w
}

// SetXYZW sets the components of the Quaternion, given in X, Y, Z, W order.
func (q *Quaternion) SetXYZW(x, y, z, w float32) {
	q.X, q.Y, q.Z, q.W = x, y, z, w
}

// SetAngleAxis sets the Quaternion to rotate by angle (in degrees) around the axis given. The axis is normalized
// by dividing by its length; a zero-length axis produces NaNs.
func (q *Quaternion) SetAngleAxis(angleDegrees float32, axis Vector3) {

	invLength := 1 / math32.Sqrt(axis.X*axis.X+axis.Y*axis.Y+axis.Z*axis.Z)

	x := axis.X * invLength
	y := axis.Y * invLength
	z := axis.Z * invLength

	half := math32.ToRadians(angleDegrees * 0.5)

	q.W = math32.Cos(half)
	s := math32.Sin(half)
	q.X = x * s
	q.Y = y * s
	q.Z = z * s

}

// SetAngleAxisFast sets the Quaternion to rotate by angle (in radians) around the axis given, which must already be normalized.
func (q *Quaternion) SetAngleAxisFast(angleRadians float32, axis Vector3) {
	s, c := math32.Sincos(angleRadians * 0.5)
	q.W = c
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
}

// AngleAxis returns the angle (in degrees) and the axis of rotation of the unit Quaternion.
// When the axis is undefined (W == ±1), the axis returned is +X.
func (q Quaternion) AngleAxis() (float32, Vector3) {

	w := math32.Clamp(q.W, -1, 1)
	angle := math32.ToDegrees(math32.Acos(w) * 2)

	sa := math32.Sqrt(math32.Max(1-w*w, 0))
	if sa == 0 {
		return angle, VecX
	}

	return angle, Vector3{q.X / sa, q.Y / sa, q.Z / sa}

}

// Angle returns the angle (in radians) between the Quaternion and the identity rotation.
func (q Quaternion) Angle() float32 {
	return math32.Acos(math32.Clamp(q.W, -1, 1)) * 2
}

// AngleTo returns the angle (in radians) between the Quaternion and the other Quaternion provided.
func (q Quaternion) AngleTo(other Quaternion) float32 {
	return math32.Acos(math32.Clamp(q.Dot(other), -1, 1)) * 2
}

// Dot returns the 4D dot product of the two Quaternions.
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// MagnitudeSquared returns the squared 4D length of the Quaternion; this should be 1 for unit Quaternions.
func (q Quaternion) MagnitudeSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Magnitude returns the 4D length of the Quaternion.
func (q Quaternion) Magnitude() float32 {
	return math32.Sqrt(q.MagnitudeSquared())
}

// IsFinite returns true if no component of the Quaternion is NaN or Inf.
func (q Quaternion) IsFinite() bool {
	return math32.IsFinite(q.X) && math32.IsFinite(q.Y) && math32.IsFinite(q.Z) && math32.IsFinite(q.W)
}

// Normalize maps the Quaternion to the closest unit Quaternion. A zero Quaternion is left untouched.
func (q *Quaternion) Normalize() {
	mag := q.Magnitude()
	if mag == 0 {
		return
	}
	inv := 1 / mag
	q.X *= inv
	q.Y *= inv
	q.Z *= inv
	q.W *= inv
}

// Normalized returns a unit-length copy of the Quaternion.
func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

// Conjugate sets the Quaternion to its own conjugate. For unit Quaternions, this is the inverse rotation.
func (q *Quaternion) Conjugate() {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
}

// Conjugated returns the conjugate of the Quaternion.
func (q Quaternion) Conjugated() Quaternion {
	q.Conjugate()
	return q
}

// Invert sets the Quaternion to the opposite rotation, assuming it is of unit length.
func (q *Quaternion) Invert() {
	q.Conjugate()
}

// Negate negates all components of the Quaternion. The rotation represented does not change.
func (q *Quaternion) Negate() {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	q.W = -q.W
}

// Negated returns a negated copy of the Quaternion.
func (q Quaternion) Negated() Quaternion {
	q.Negate()
	return q
}

// Add returns the component-wise sum of the two Quaternions.
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Sub returns the component-wise difference of the two Quaternions.
func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// Scale returns the Quaternion with all components multiplied by the scalar given.
func (q Quaternion) Scale(scalar float32) Quaternion {
	return Quaternion{q.X * scalar, q.Y * scalar, q.Z * scalar, q.W * scalar}
}

// SetMultiply sets the Quaternion to the Hamilton product left * right. Either argument may point to the calling Quaternion.
func (q *Quaternion) SetMultiply(left, right *Quaternion) {

	w := left.W*right.W - left.X*right.X - left.Y*right.Y - left.Z*right.Z
	x := left.W*right.X + right.W*left.X + left.Y*right.Z - right.Y*left.Z
	y := left.W*right.Y + right.W*left.Y + left.Z*right.X - right.Z*left.X
	z := left.W*right.Z + right.W*left.Z + left.X*right.Y - right.X*left.Y

	q.W = w
	q.X = x
	q.Y = y
	q.Z = z

}

// SetMultiplyVector sets the Quaternion to left * [v.X, v.Y, v.Z, 0].
func (q *Quaternion) SetMultiplyVector(left *Quaternion, v Vector3) {

	w := -left.X*v.X - left.Y*v.Y - left.Z*v.Z
	x := left.W*v.X + left.Y*v.Z - v.Y*left.Z
	y := left.W*v.Y + left.Z*v.X - v.Z*left.X
	z := left.W*v.Z + left.X*v.Y - v.X*left.Y

	q.W = w
	q.X = x
	q.Y = y
	q.Z = z

}

// Mult returns the Hamilton product of the calling Quaternion and the other one (q * other).
func (q Quaternion) Mult(other Quaternion) Quaternion {
	out := Quaternion{}
	out.SetMultiply(&q, &other)
	return out
}

// SetSlerp sets the Quaternion to the spherical linear interpolation between a and b by t, along the shorter arc.
// If a and b are (nearly) parallel, the Quaternion is set to a unchanged. The result is not renormalized.
// Either argument may point to the calling Quaternion.
func (q *Quaternion) SetSlerp(t float32, a, b *Quaternion) {

	right := *b
	*q = *a

	cosine := q.Dot(right)

	sign := float32(1)
	if cosine < 0 {
		cosine = -cosine
		sign = -1
	}

	sin := 1 - cosine*cosine

	if sin < math32.Epsilon*math32.Epsilon {
		return
	}

	sin = math32.Sqrt(sin)
	angle := math32.Atan2(sin, cosine)
	invSin := 1 / sin

	lowerWeight := math32.Sin(angle*(1-t)) * invSin
	upperWeight := math32.Sin(angle*t) * invSin * sign

	q.W = q.W*lowerWeight + right.W*upperWeight
	q.X = q.X*lowerWeight + right.X*upperWeight
	q.Y = q.Y*lowerWeight + right.Y*upperWeight
	q.Z = q.Z*lowerWeight + right.Z*upperWeight

}

// Slerp returns the spherical linear interpolation from the calling Quaternion to the other one by t (0 to 1).
func (q Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	out := Quaternion{}
	out.SetSlerp(t, &q, &other)
	return out
}

// Rotate rotates the Vector3 pointed to by the unit Quaternion, overwriting it (v = q * v * q⁻¹).
// A non-unit Quaternion scales the vector as well.
func (q Quaternion) Rotate(v *Vector3) {

	inverse := Quaternion{-q.X, -q.Y, -q.Z, q.W}

	left := Quaternion{}
	left.SetMultiplyVector(&q, *v)

	v.X = left.W*inverse.X + inverse.W*left.X + left.Y*inverse.Z - inverse.Y*left.Z
	v.Y = left.W*inverse.Y + inverse.W*left.Y + left.Z*inverse.X - inverse.Z*left.X
	v.Z = left.W*inverse.Z + inverse.W*left.Z + left.X*inverse.Y - inverse.X*left.Y

}

// InverseRotate rotates the Vector3 pointed to by the opposite of the unit Quaternion, overwriting it (v = q⁻¹ * v * q).
func (q Quaternion) InverseRotate(v *Vector3) {

	inverse := Quaternion{-q.X, -q.Y, -q.Z, q.W}

	left := Quaternion{}
	left.SetMultiplyVector(&inverse, *v)

	v.X = left.W*q.X + q.W*left.X + left.Y*q.Z - q.Y*left.Z
	v.Y = left.W*q.Y + q.W*left.Y + left.Z*q.X - q.Z*left.X
	v.Z = left.W*q.Z + q.W*left.Z + left.X*q.Y - q.X*left.Y

}

// Rot returns the Vector3 rotated by the unit Quaternion, using the closed-form expansion of q * v * q⁻¹.
func (q Quaternion) Rot(v Vector3) Vector3 {
	qv := Vector3{q.X, q.Y, q.Z}
	return v.Scale(q.W*q.W - 0.5).Add(qv.Cross(v).Scale(q.W)).Add(qv.Scale(qv.Dot(v))).Scale(2)
}

// InvRot returns the Vector3 rotated by the opposite of the unit Quaternion.
func (q Quaternion) InvRot(v Vector3) Vector3 {
	qv := Vector3{q.X, q.Y, q.Z}
	return v.Scale(q.W*q.W - 0.5).Sub(qv.Cross(v).Scale(q.W)).Add(qv.Scale(qv.Dot(v))).Scale(2)
}

// Transform rotates v by the unit Quaternion and then translates it by p.
func (q Quaternion) Transform(v, p Vector3) Vector3 {
	return q.Rot(v).Add(p)
}

// InvTransform undoes Transform: it removes the translation p and then applies the inverse rotation.
func (q Quaternion) InvTransform(v, p Vector3) Vector3 {
	return q.InvRot(v.Sub(p))
}

// ToMatrix33 returns the rotation Matrix33 equivalent to the Quaternion.
func (q Quaternion) ToMatrix33() Matrix33 {
	return MatrixFromQuaternion(q)
}

// Equals returns true if the two Quaternions are close enough in all components. Note that q and -q are not considered equal.
func (q Quaternion) Equals(other Quaternion) bool {
	return math32.Abs(q.X-other.X) <= epsilon && math32.Abs(q.Y-other.Y) <= epsilon &&
		math32.Abs(q.Z-other.Z) <= epsilon && math32.Abs(q.W-other.W) <= epsilon
}

// SameRotation returns true if the two unit Quaternions represent the same rotation, accounting for sign ambiguity.
func (q Quaternion) SameRotation(other Quaternion) bool {
	return q.Equals(other) || q.Equals(other.Negated())
}

func (q Quaternion) String() string {
	return "{" + strconv.FormatFloat(float64(q.X), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(q.Y), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(q.Z), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(q.W), 'f', -1, 32) + "}"
}
