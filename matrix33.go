package orientation

import (
	"strconv"

	"github.com/solarlune/orientation/math32"
)

// Matrix33 represents a 3x3 matrix for rotation and other linear transforms. A Matrix33 is row-major (i.e. matrix[1][2] is
// the element in the second row and third column), and multiplies column vectors from the left (M * v).
type Matrix33 [3][3]float32

// NewMatrix33 returns a new identity Matrix33.
func NewMatrix33() Matrix33 {
	return Matrix33{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMatrix33Zero returns a new Matrix33 with all elements set to 0.
func NewMatrix33Zero() Matrix33 {
	return Matrix33{}
}

// NewMatrix33Rows returns a new Matrix33 composed of the three rows given.
func NewMatrix33Rows(row0, row1, row2 Vector3) Matrix33 {
	return Matrix33{
		{row0.X, row0.Y, row0.Z},
		{row1.X, row1.Y, row1.Z},
		{row2.X, row2.Y, row2.Z},
	}
}

// NewMatrix33Columns returns a new Matrix33 composed of the three columns given.
func NewMatrix33Columns(col0, col1, col2 Vector3) Matrix33 {
	return Matrix33{
		{col0.X, col1.X, col2.X},
		{col0.Y, col1.Y, col2.Y},
		{col0.Z, col1.Z, col2.Z},
	}
}

// NewMatrix33Diagonal returns a new Matrix33 with the diagonal set to the Vector3 given and 0 elsewhere.
func NewMatrix33Diagonal(diagonal Vector3) Matrix33 {
	mat := Matrix33{}
	mat.SetDiagonal(diagonal)
	return mat
}

// NewMatrix33Star returns the skew-symmetric Matrix33 of vec, such that NewMatrix33Star(vec).MultVec(x) == vec.Cross(x).
func NewMatrix33Star(vec Vector3) Matrix33 {
	mat := Matrix33{}
	mat.SetStar(vec)
	return mat
}

// NewMatrix33RotateX returns a Matrix33 rotating by the angle given (in radians) around the X axis.
func NewMatrix33RotateX(angle float32) Matrix33 {
	mat := Matrix33{}
	mat.SetRotateX(angle)
	return mat
}

// NewMatrix33RotateY returns a Matrix33 rotating by the angle given (in radians) around the Y axis.
func NewMatrix33RotateY(angle float32) Matrix33 {
	mat := Matrix33{}
	mat.SetRotateY(angle)
	return mat
}

// NewMatrix33RotateZ returns a Matrix33 rotating by the angle given (in radians) around the Z axis.
func NewMatrix33RotateZ(angle float32) Matrix33 {
	mat := Matrix33{}
	mat.SetRotateZ(angle)
	return mat
}

// MatrixFromQuaternion returns the rotation Matrix33 represented by the (unit) Quaternion given.
func MatrixFromQuaternion(q Quaternion) Matrix33 {

	w, x, y, z := q.W, q.X, q.Y, q.Z

	return Matrix33{
		{1 - y*y*2 - z*z*2, x*y*2 - w*z*2, x*z*2 + w*y*2},
		{x*y*2 + w*z*2, 1 - x*x*2 - z*z*2, y*z*2 - w*x*2},
		{x*z*2 - w*y*2, y*z*2 + w*x*2, 1 - x*x*2 - y*y*2},
	}

}

// QuaternionFromMatrix returns a Quaternion representative of the Matrix33's rotation (assuming it is purely rotational).
// When the trace is negative, the largest diagonal element picks which component is solved first, so that
// rotations close to 180 degrees keep their precision.
func QuaternionFromMatrix(m Matrix33) Quaternion {

	q := Quaternion{}

	tr := m[0][0] + m[1][1] + m[2][2]

	if tr >= 0 {

		s := math32.Sqrt(tr + 1)
		q.W = 0.5 * s
		s = 0.5 / s
		q.X = (m[2][1] - m[1][2]) * s
		q.Y = (m[0][2] - m[2][0]) * s
		q.Z = (m[1][0] - m[0][1]) * s
		return q

	}

	// Ties go to the lower index.
	i := 0
	if m[1][1] > m[0][0] {
		i = 1
	}
	if m[2][2] > m[i][i] {
		i = 2
	}

	switch i {

	case 0:
		s := math32.Sqrt((m[0][0] - (m[1][1] + m[2][2])) + 1)
		q.X = 0.5 * s
		s = 0.5 / s
		q.Y = (m[0][1] + m[1][0]) * s
		q.Z = (m[2][0] + m[0][2]) * s
		q.W = (m[2][1] - m[1][2]) * s

	case 1:
		s := math32.Sqrt((m[1][1] - (m[2][2] + m[0][0])) + 1)
		q.Y = 0.5 * s
		s = 0.5 / s
		q.Z = (m[1][2] + m[2][1]) * s
		q.X = (m[0][1] + m[1][0]) * s
		q.W = (m[0][2] - m[2][0]) * s

	case 2:
		s := math32.Sqrt((m[2][2] - (m[0][0] + m[1][1])) + 1)
		q.Z = 0.5 * s
		s = 0.5 / s
		q.X = (m[2][0] + m[0][2]) * s
		q.Y = (m[1][2] + m[2][1]) * s
		q.W = (m[1][0] - m[0][1]) * s

	}

	return q

}

// SetFromQuaternion overwrites the Matrix33 with the rotation represented by the Quaternion given.
func (matrix *Matrix33) SetFromQuaternion(q Quaternion) {
	*matrix = MatrixFromQuaternion(q)
}

// ToQuaternion returns a Quaternion representative of the Matrix33's rotation (assuming it is purely rotational).
func (matrix Matrix33) ToQuaternion() Quaternion {
	return QuaternionFromMatrix(matrix)
}

// Row returns the indiced row from the Matrix33 as a Vector3.
func (matrix Matrix33) Row(rowIndex int) Vector3 {
	return Vector3{matrix[rowIndex][0], matrix[rowIndex][1], matrix[rowIndex][2]}
}

// Column returns the indiced column from the Matrix33 as a Vector3.
func (matrix Matrix33) Column(columnIndex int) Vector3 {
	return Vector3{matrix[0][columnIndex], matrix[1][columnIndex], matrix[2][columnIndex]}
}

// SetRow sets the row in rowIndex to the Vector3 passed.
func (matrix *Matrix33) SetRow(rowIndex int, vec Vector3) {
	matrix[rowIndex][0] = vec.X
	matrix[rowIndex][1] = vec.Y
	matrix[rowIndex][2] = vec.Z
}

// SetColumn sets the column in columnIndex to the Vector3 passed.
func (matrix *Matrix33) SetColumn(columnIndex int, vec Vector3) {
	matrix[0][columnIndex] = vec.X
	matrix[1][columnIndex] = vec.Y
	matrix[2][columnIndex] = vec.Z
}

// IsIdentity returns true if the Matrix33 is exactly the identity matrix.
func (matrix Matrix33) IsIdentity() bool {
	return matrix == Matrix33{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IsZero returns true if every element of the Matrix33 is exactly 0.
func (matrix Matrix33) IsZero() bool {
	return matrix == Matrix33{}
}

// IsFinite returns true if no element of the Matrix33 is NaN or Inf.
func (matrix Matrix33) IsFinite() bool {
	for i := range 3 {
		for j := range 3 {
			if !math32.IsFinite(matrix[i][j]) {
				return false
			}
		}
	}
	return true
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix33, within a small tolerance.
func (matrix Matrix33) Equals(other Matrix33) bool {
	for i := range 3 {
		for j := range 3 {
			if math32.Abs(matrix[i][j]-other[i][j]) > epsilon {
				return false
			}
		}
	}
	return true
}

// SetZero sets every element of the Matrix33 to 0.
func (matrix *Matrix33) SetZero() {
	*matrix = Matrix33{}
}

// SetIdentity sets the Matrix33 to the identity matrix.
func (matrix *Matrix33) SetIdentity() {
	*matrix = NewMatrix33()
}

// SetNegative negates every element of the Matrix33.
func (matrix *Matrix33) SetNegative() {
	for i := range 3 {
		for j := range 3 {
			matrix[i][j] = -matrix[i][j]
		}
	}
}

// SetDiagonal sets the Matrix33 to a diagonal matrix, with the diagonal taken from the Vector3 given.
func (matrix *Matrix33) SetDiagonal(vec Vector3) {
	*matrix = Matrix33{
		{vec.X, 0, 0},
		{0, vec.Y, 0},
		{0, 0, vec.Z},
	}
}

// SetStar sets the Matrix33 to the skew-symmetric matrix of vec.
func (matrix *Matrix33) SetStar(vec Vector3) {
	*matrix = Matrix33{
		{0, -vec.Z, vec.Y},
		{vec.Z, 0, -vec.X},
		{-vec.Y, vec.X, 0},
	}
}

// SetRotateX overwrites the Matrix33 with a rotation by angle (in radians) around the X axis.
func (matrix *Matrix33) SetRotateX(angle float32) {
	sin, cos := math32.Sincos(angle)
	matrix.SetIdentity()
	matrix[1][1] = cos
	matrix[2][2] = cos
	matrix[1][2] = -sin
	matrix[2][1] = sin
}

// SetRotateY overwrites the Matrix33 with a rotation by angle (in radians) around the Y axis.
func (matrix *Matrix33) SetRotateY(angle float32) {
	sin, cos := math32.Sincos(angle)
	matrix.SetIdentity()
	matrix[0][0] = cos
	matrix[2][2] = cos
	matrix[0][2] = sin
	matrix[2][0] = -sin
}

// SetRotateZ overwrites the Matrix33 with a rotation by angle (in radians) around the Z axis.
func (matrix *Matrix33) SetRotateZ(angle float32) {
	sin, cos := math32.Sincos(angle)
	matrix.SetIdentity()
	matrix[0][0] = cos
	matrix[1][1] = cos
	matrix[0][1] = -sin
	matrix[1][0] = sin
}

// Determinant returns the determinant of the Matrix33.
func (matrix Matrix33) Determinant() float32 {
	return matrix[0][0]*matrix[1][1]*matrix[2][2] + matrix[0][1]*matrix[1][2]*matrix[2][0] + matrix[0][2]*matrix[1][0]*matrix[2][1] -
		matrix[0][2]*matrix[1][1]*matrix[2][0] - matrix[0][1]*matrix[1][0]*matrix[2][2] - matrix[0][0]*matrix[1][2]*matrix[2][1]
}

// Inverse assigns the inverse of the Matrix33 to dest, which may point to the Matrix33 itself.
// If the determinant is exactly 0, dest is set to the identity matrix and false is returned.
func (matrix *Matrix33) Inverse(dest *Matrix33) bool {

	m := matrix

	b00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	b01 := m[0][2]*m[2][1] - m[0][1]*m[2][2]
	b02 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	b10 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	b11 := m[0][0]*m[2][2] - m[0][2]*m[2][0]
	b12 := m[0][2]*m[1][0] - m[0][0]*m[1][2]
	b20 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	b21 := m[0][1]*m[2][0] - m[0][0]*m[2][1]
	b22 := m[0][0]*m[1][1] - m[0][1]*m[1][0]

	// The first column of cofactors is enough for the determinant.
	d := b00*m[0][0] + b01*m[1][0] + b02*m[2][0]

	if d == 0 {
		dest.SetIdentity()
		return false
	}

	d = 1 / d

	dest[0][0], dest[0][1], dest[0][2] = b00*d, b01*d, b02*d
	dest[1][0], dest[1][1], dest[1][2] = b10*d, b11*d, b12*d
	dest[2][0], dest[2][1], dest[2][2] = b20*d, b21*d, b22*d

	return true

}

// Inverted returns the inverse of the Matrix33, and false if the Matrix33 is singular (in which case the identity is returned).
func (matrix Matrix33) Inverted() (Matrix33, bool) {
	out := Matrix33{}
	ok := matrix.Inverse(&out)
	return out, ok
}

// SetTransposed sets the Matrix33 to the transpose of other. other may point to the calling Matrix33.
func (matrix *Matrix33) SetTransposed(other *Matrix33) {

	if matrix == other {
		matrix.Transpose()
		return
	}

	for i := range 3 {
		for j := range 3 {
			matrix[i][j] = other[j][i]
		}
	}

}

// Transpose transposes the Matrix33 in place by swapping the off-diagonal elements.
func (matrix *Matrix33) Transpose() {
	matrix[1][0], matrix[0][1] = matrix[0][1], matrix[1][0]
	matrix[2][0], matrix[0][2] = matrix[0][2], matrix[2][0]
	matrix[2][1], matrix[1][2] = matrix[1][2], matrix[2][1]
}

// Transposed returns a transposed copy of the Matrix33. For orthonormal matrices (like pure rotations), this is the inverse.
func (matrix Matrix33) Transposed() Matrix33 {
	matrix.Transpose()
	return matrix
}

// MultiplyDiagonal sets the Matrix33 to matrix * diag(d), scaling each column by the matching component of d.
func (matrix *Matrix33) MultiplyDiagonal(d Vector3) {
	matrix.MultiplyDiagonalInto(d, matrix)
}

// MultiplyDiagonalInto sets dst to matrix * diag(d). dst may point to the calling Matrix33.
func (matrix *Matrix33) MultiplyDiagonalInto(d Vector3, dst *Matrix33) {
	for i := range 3 {
		dst[i][0] = matrix[i][0] * d.X
		dst[i][1] = matrix[i][1] * d.Y
		dst[i][2] = matrix[i][2] * d.Z
	}
}

// MultiplyDiagonalTranspose sets the Matrix33 to transpose(matrix) * diag(d).
func (matrix *Matrix33) MultiplyDiagonalTranspose(d Vector3) {
	matrix.MultiplyDiagonalTransposeInto(d, matrix)
}

// MultiplyDiagonalTransposeInto sets dst to transpose(matrix) * diag(d). dst may point to the calling Matrix33.
func (matrix *Matrix33) MultiplyDiagonalTransposeInto(d Vector3, dst *Matrix33) {
	m := *matrix
	for i := range 3 {
		dst[i][0] = m[0][i] * d.X
		dst[i][1] = m[1][i] * d.Y
		dst[i][2] = m[2][i] * d.Z
	}
}

// MultVec returns matrix * vec.
func (matrix Matrix33) MultVec(vec Vector3) Vector3 {
	return Vector3{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z,
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z,
		Z: matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z,
	}
}

// MultVecTransposed returns transpose(matrix) * vec; for a rotation Matrix33, this applies the inverse rotation.
func (matrix Matrix33) MultVecTransposed(vec Vector3) Vector3 {
	return Vector3{
		X: matrix[0][0]*vec.X + matrix[1][0]*vec.Y + matrix[2][0]*vec.Z,
		Y: matrix[0][1]*vec.X + matrix[1][1]*vec.Y + matrix[2][1]*vec.Z,
		Z: matrix[0][2]*vec.X + matrix[1][2]*vec.Y + matrix[2][2]*vec.Z,
	}
}

// SetAdd sets the Matrix33 to a + b.
func (matrix *Matrix33) SetAdd(a, b *Matrix33) {
	for i := range 3 {
		for j := range 3 {
			matrix[i][j] = a[i][j] + b[i][j]
		}
	}
}

// SetSubtract sets the Matrix33 to a - b.
func (matrix *Matrix33) SetSubtract(a, b *Matrix33) {
	for i := range 3 {
		for j := range 3 {
			matrix[i][j] = a[i][j] - b[i][j]
		}
	}
}

// SetScale sets the Matrix33 to a * scalar.
func (matrix *Matrix33) SetScale(scalar float32, a *Matrix33) {
	for i := range 3 {
		for j := range 3 {
			matrix[i][j] = a[i][j] * scalar
		}
	}
}

// Add returns the element-wise sum of the two matrices.
func (matrix Matrix33) Add(other Matrix33) Matrix33 {
	matrix.SetAdd(&matrix, &other)
	return matrix
}

// Sub returns the element-wise difference of the two matrices.
func (matrix Matrix33) Sub(other Matrix33) Matrix33 {
	matrix.SetSubtract(&matrix, &other)
	return matrix
}

// Scale returns the Matrix33 with every element multiplied by the scalar given.
func (matrix Matrix33) Scale(scalar float32) Matrix33 {
	matrix.SetScale(scalar, &matrix)
	return matrix
}

// Divide returns the Matrix33 with every element divided by the scalar given.
func (matrix Matrix33) Divide(scalar float32) Matrix33 {
	return matrix.Scale(1 / scalar)
}

// SetMultiply sets the Matrix33 to left * right. Either argument may point to the calling Matrix33.
func (matrix *Matrix33) SetMultiply(left, right *Matrix33) {

	a := left[0][0]*right[0][0] + left[0][1]*right[1][0] + left[0][2]*right[2][0]
	b := left[0][0]*right[0][1] + left[0][1]*right[1][1] + left[0][2]*right[2][1]
	c := left[0][0]*right[0][2] + left[0][1]*right[1][2] + left[0][2]*right[2][2]

	d := left[1][0]*right[0][0] + left[1][1]*right[1][0] + left[1][2]*right[2][0]
	e := left[1][0]*right[0][1] + left[1][1]*right[1][1] + left[1][2]*right[2][1]
	f := left[1][0]*right[0][2] + left[1][1]*right[1][2] + left[1][2]*right[2][2]

	g := left[2][0]*right[0][0] + left[2][1]*right[1][0] + left[2][2]*right[2][0]
	h := left[2][0]*right[0][1] + left[2][1]*right[1][1] + left[2][2]*right[2][1]
	i := left[2][0]*right[0][2] + left[2][1]*right[1][2] + left[2][2]*right[2][2]

	matrix[0][0], matrix[0][1], matrix[0][2] = a, b, c
	matrix[1][0], matrix[1][1], matrix[1][2] = d, e, f
	matrix[2][0], matrix[2][1], matrix[2][2] = g, h, i

}

// SetMultiplyTransposeLeft sets the Matrix33 to transpose(left) * right. Either argument may point to the calling Matrix33.
func (matrix *Matrix33) SetMultiplyTransposeLeft(left, right *Matrix33) {

	a := left[0][0]*right[0][0] + left[1][0]*right[1][0] + left[2][0]*right[2][0]
	b := left[0][0]*right[0][1] + left[1][0]*right[1][1] + left[2][0]*right[2][1]
	c := left[0][0]*right[0][2] + left[1][0]*right[1][2] + left[2][0]*right[2][2]

	d := left[0][1]*right[0][0] + left[1][1]*right[1][0] + left[2][1]*right[2][0]
	e := left[0][1]*right[0][1] + left[1][1]*right[1][1] + left[2][1]*right[2][1]
	f := left[0][1]*right[0][2] + left[1][1]*right[1][2] + left[2][1]*right[2][2]

	g := left[0][2]*right[0][0] + left[1][2]*right[1][0] + left[2][2]*right[2][0]
	h := left[0][2]*right[0][1] + left[1][2]*right[1][1] + left[2][2]*right[2][1]
	i := left[0][2]*right[0][2] + left[1][2]*right[1][2] + left[2][2]*right[2][2]

	matrix[0][0], matrix[0][1], matrix[0][2] = a, b, c
	matrix[1][0], matrix[1][1], matrix[1][2] = d, e, f
	matrix[2][0], matrix[2][1], matrix[2][2] = g, h, i

}

// SetMultiplyTransposeRight sets the Matrix33 to left * transpose(right). Either argument may point to the calling Matrix33.
func (matrix *Matrix33) SetMultiplyTransposeRight(left, right *Matrix33) {

	a := left[0][0]*right[0][0] + left[0][1]*right[0][1] + left[0][2]*right[0][2]
	b := left[0][0]*right[1][0] + left[0][1]*right[1][1] + left[0][2]*right[1][2]
	c := left[0][0]*right[2][0] + left[0][1]*right[2][1] + left[0][2]*right[2][2]

	d := left[1][0]*right[0][0] + left[1][1]*right[0][1] + left[1][2]*right[0][2]
	e := left[1][0]*right[1][0] + left[1][1]*right[1][1] + left[1][2]*right[1][2]
	f := left[1][0]*right[2][0] + left[1][1]*right[2][1] + left[1][2]*right[2][2]

	g := left[2][0]*right[0][0] + left[2][1]*right[0][1] + left[2][2]*right[0][2]
	h := left[2][0]*right[1][0] + left[2][1]*right[1][1] + left[2][2]*right[1][2]
	i := left[2][0]*right[2][0] + left[2][1]*right[2][1] + left[2][2]*right[2][2]

	matrix[0][0], matrix[0][1], matrix[0][2] = a, b, c
	matrix[1][0], matrix[1][1], matrix[1][2] = d, e, f
	matrix[2][0], matrix[2][1], matrix[2][2] = g, h, i

}

// SetOuterProduct sets the Matrix33 to the outer product of left and right (left * transpose(right), treating both as columns).
func (matrix *Matrix33) SetOuterProduct(left, right Vector3) {
	*matrix = Matrix33{
		{left.X * right.X, left.X * right.Y, left.X * right.Z},
		{left.Y * right.X, left.Y * right.Y, left.Y * right.Z},
		{left.Z * right.X, left.Z * right.Y, left.Z * right.Z},
	}
}

// Mult returns matrix * other.
func (matrix Matrix33) Mult(other Matrix33) Matrix33 {
	matrix.SetMultiply(&matrix, &other)
	return matrix
}

// MultTransposeLeft returns transpose(matrix) * other.
func (matrix Matrix33) MultTransposeLeft(other Matrix33) Matrix33 {
	matrix.SetMultiplyTransposeLeft(&matrix, &other)
	return matrix
}

// MultTransposeRight returns matrix * transpose(other).
func (matrix Matrix33) MultTransposeRight(other Matrix33) Matrix33 {
	matrix.SetMultiplyTransposeRight(&matrix, &other)
	return matrix
}

// Slerp interpolates between two rotation matrices by converting both to Quaternions, slerping them, and converting the
// (renormalized) result back.
func (matrix Matrix33) Slerp(other Matrix33, t float32) Matrix33 {
	q := matrix.ToQuaternion().Slerp(other.ToQuaternion(), t)
	q.Normalize()
	return MatrixFromQuaternion(q)
}

func (matrix Matrix33) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(float64(x), 'f', -1, 32) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
