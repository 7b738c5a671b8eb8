package orientation

// Matrix34 is a rigid-body pose: a Matrix33 M paired with a translation T, mapping x to M * x + T.
// M is not required to be orthonormal, but the functions ending in RT assume it is a pure rotation and return
// garbage otherwise.
type Matrix34 struct {
	M Matrix33
	T Vector3
}

// NewMatrix34 returns an identity Matrix34 (identity rotation, zero translation).
func NewMatrix34() Matrix34 {
	return Matrix34{M: NewMatrix33()}
}

// NewMatrix34Zero returns a Matrix34 with every element set to 0.
func NewMatrix34Zero() Matrix34 {
	return Matrix34{}
}

// NewMatrix34RT returns a Matrix34 composed of the rotation and translation given.
func NewMatrix34RT(rotation Matrix33, translation Vector3) Matrix34 {
	return Matrix34{M: rotation, T: translation}
}

// NewMatrix34FromQuaternion returns a Matrix34 rotating by the (unit) Quaternion given and then translating.
func NewMatrix34FromQuaternion(rotation Quaternion, translation Vector3) Matrix34 {
	return Matrix34{M: MatrixFromQuaternion(rotation), T: translation}
}

// SetZero sets every element of the Matrix34 to 0.
func (matrix *Matrix34) SetZero() {
	matrix.M.SetZero()
	matrix.T = Vector3{}
}

// SetIdentity sets the Matrix34 to the identity transform.
func (matrix *Matrix34) SetIdentity() {
	matrix.M.SetIdentity()
	matrix.T = Vector3{}
}

// IsIdentity returns true if the rotation is exactly identity and the translation exactly zero.
func (matrix Matrix34) IsIdentity() bool {
	return matrix.M.IsIdentity() && matrix.T.IsZero()
}

// IsFinite returns true if no element of the Matrix34 is NaN or Inf.
func (matrix Matrix34) IsFinite() bool {
	return matrix.M.IsFinite() && matrix.T.IsFinite()
}

// Equals returns true if both Matrix34s are equal within a small tolerance.
func (matrix Matrix34) Equals(other Matrix34) bool {
	return matrix.M.Equals(other.M) && matrix.T.Equals(other.T)
}

// Inverse assigns the inverse of the Matrix34 to dest, which may point to the Matrix34 itself.
// If M is singular, dest.M is set to identity and false is returned.
func (matrix *Matrix34) Inverse(dest *Matrix34) bool {
	// inv([M t]) = [inv(M), inv(M) * -t]
	negT := matrix.T.Invert()
	ok := matrix.M.Inverse(&dest.M)
	dest.T = dest.M.MultVec(negT)
	return ok
}

// InverseRT assigns the inverse of the Matrix34 to dest, assuming M is orthonormal so its transpose is its inverse.
// It always returns true; the orthonormality of M is not verified.
func (matrix *Matrix34) InverseRT(dest *Matrix34) bool {
	// inv([M t]) = [M', M' * -t]
	negT := matrix.T.Invert()
	dest.M.SetTransposed(&matrix.M)
	dest.T = dest.M.MultVec(negT)
	return true
}

// Inverted returns the inverse of the Matrix34, along with false if M was singular.
func (matrix Matrix34) Inverted() (Matrix34, bool) {
	out := Matrix34{}
	ok := matrix.Inverse(&out)
	return out, ok
}

// InvertedRT returns the inverse of the Matrix34, assuming M is a pure rotation.
func (matrix Matrix34) InvertedRT() Matrix34 {
	out := Matrix34{}
	matrix.InverseRT(&out)
	return out
}

// MultVec returns M * vec + T.
func (matrix Matrix34) MultVec(vec Vector3) Vector3 {
	return matrix.M.MultVec(vec).Add(matrix.T)
}

// MultVecInverseRT returns inverse(matrix) * vec, computed as transpose(M) * (vec - T); M must be a pure rotation.
func (matrix Matrix34) MultVecInverseRT(vec Vector3) Vector3 {
	return matrix.M.MultVecTransposed(vec.Sub(matrix.T))
}

// SetMultiply sets the Matrix34 to left * right, so that the result applies right first and then left.
// Either argument may point to the calling Matrix34.
func (matrix *Matrix34) SetMultiply(left, right *Matrix34) {
	// [aR at] * [bR bt] = [aR * bR, aR * bt + at]; T is written first as it reads left.M.
	matrix.T = left.M.MultVec(right.T).Add(left.T)
	matrix.M.SetMultiply(&left.M, &right.M)
}

// SetMultiplyInverseRTLeft sets the Matrix34 to inverse(left) * right, assuming left.M is a pure rotation.
// Either argument may point to the calling Matrix34.
func (matrix *Matrix34) SetMultiplyInverseRTLeft(left, right *Matrix34) {
	// [aR' -aR'*at] * [bR bt] = [aR' * bR, aR' * (bt - at)]
	matrix.T = left.M.MultVecTransposed(right.T.Sub(left.T))
	matrix.M.SetMultiplyTransposeLeft(&left.M, &right.M)
}

// SetMultiplyInverseRTRight sets the Matrix34 to left * inverse(right), assuming right.M is a pure rotation.
// Either argument may point to the calling Matrix34.
func (matrix *Matrix34) SetMultiplyInverseRTRight(left, right *Matrix34) {
	// [aR at] * [bR' -bR'*bt] = [aR * bR', at - aR * bR' * bt]; M is written first, T reads the new M.
	rightT := right.T
	leftT := left.T
	matrix.M.SetMultiplyTransposeRight(&left.M, &right.M)
	matrix.T = leftT.Sub(matrix.M.MultVec(rightT))
}

// Mult returns matrix * other, the transform that applies other first and then matrix.
func (matrix Matrix34) Mult(other Matrix34) Matrix34 {
	matrix.SetMultiply(&matrix, &other)
	return matrix
}

// Slerp interpolates between two rigid poses: the rotations are slerped through Quaternions and the translations lerped.
func (matrix Matrix34) Slerp(other Matrix34, t float32) Matrix34 {
	return Matrix34{
		M: matrix.M.Slerp(other.M, t),
		T: matrix.T.Add(other.T.Sub(matrix.T).Scale(t)),
	}
}

func (matrix Matrix34) String() string {
	return "{M: " + matrix.M.String() + ", T: " + matrix.T.String() + "}"
}
