package orientation

import "golang.org/x/image/math/f32"

// Conversions to and from the fixed-size types of golang.org/x/image/math/f32, which are row-major like Matrix33.

// Vec3 returns the Vector3 as an f32.Vec3.
func (vec Vector3) Vec3() f32.Vec3 {
	return f32.Vec3{vec.X, vec.Y, vec.Z}
}

// NewVector3FromVec3 creates a Vector3 from an f32.Vec3.
func NewVector3FromVec3(v f32.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// Vec4 returns the Quaternion as an f32.Vec4 in X, Y, Z, W order.
func (q Quaternion) Vec4() f32.Vec4 {
	return f32.Vec4(q.XYZW())
}

// NewQuaternionFromVec4 creates a Quaternion from an f32.Vec4 in X, Y, Z, W order.
func NewQuaternionFromVec4(v f32.Vec4) Quaternion {
	return Quaternion{v[0], v[1], v[2], v[3]}
}

// Mat3 returns the Matrix33 as an f32.Mat3.
func (matrix Matrix33) Mat3() f32.Mat3 {
	out := f32.Mat3{}
	matrix.RowMajor(out[:])
	return out
}

// NewMatrix33FromMat3 creates a Matrix33 from an f32.Mat3.
func NewMatrix33FromMat3(m f32.Mat3) Matrix33 {
	out := Matrix33{}
	out.SetRowMajor(m[:])
	return out
}

// Mat4 returns the Matrix34 as a homogeneous f32.Mat4, with a bottom row of [0, 0, 0, 1].
func (matrix Matrix34) Mat4() f32.Mat4 {
	out := f32.Mat4{}
	matrix.RowMajor44(out[:])
	return out
}

// NewMatrix34FromMat4 creates a Matrix34 from a homogeneous f32.Mat4; the bottom row is ignored.
func NewMatrix34FromMat4(m f32.Mat4) Matrix34 {
	out := Matrix34{}
	out.SetRowMajor44(m[:])
	return out
}
