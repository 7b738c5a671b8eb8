package orientation

// Bulk import and export of matrix and quaternion elements. Every layout is implemented once over float32 and float64;
// the exported functions are the typed entry points. Slices passed in must be long enough for the layout
// (9 for dense, 11 for stride-4 3x3 blocks, 16 for 4x4), or the call panics with an index error.

type float interface {
	float32 | float64
}

// stride is the distance between rows (row-major) or columns (column-major) in the flat slice.
func setRowMajor[F float](matrix *Matrix33, d []F, stride int) {
	_ = d[2*stride+2]
	for r := range 3 {
		for c := range 3 {
			matrix[r][c] = float32(d[r*stride+c])
		}
	}
}

func setColumnMajor[F float](matrix *Matrix33, d []F, stride int) {
	_ = d[2*stride+2]
	for c := range 3 {
		for r := range 3 {
			matrix[r][c] = float32(d[c*stride+r])
		}
	}
}

func getRowMajor[F float](matrix *Matrix33, d []F, stride int) {
	_ = d[2*stride+2]
	for r := range 3 {
		for c := range 3 {
			d[r*stride+c] = F(matrix[r][c])
		}
	}
}

func getColumnMajor[F float](matrix *Matrix33, d []F, stride int) {
	_ = d[2*stride+2]
	for c := range 3 {
		for r := range 3 {
			d[c*stride+r] = F(matrix[r][c])
		}
	}
}

// SetRowMajor sets the Matrix33 from 9 elements in row-major order.
func (matrix *Matrix33) SetRowMajor(d []float32) { setRowMajor(matrix, d, 3) }

// SetRowMajor64 sets the Matrix33 from 9 double-precision elements in row-major order.
func (matrix *Matrix33) SetRowMajor64(d []float64) { setRowMajor(matrix, d, 3) }

// SetColumnMajor sets the Matrix33 from 9 elements in column-major order.
func (matrix *Matrix33) SetColumnMajor(d []float32) { setColumnMajor(matrix, d, 3) }

// SetColumnMajor64 sets the Matrix33 from 9 double-precision elements in column-major order.
func (matrix *Matrix33) SetColumnMajor64(d []float64) { setColumnMajor(matrix, d, 3) }

// RowMajor writes the Matrix33 into d as 9 elements in row-major order.
func (matrix *Matrix33) RowMajor(d []float32) { getRowMajor(matrix, d, 3) }

// RowMajor64 writes the Matrix33 into d as 9 double-precision elements in row-major order.
func (matrix *Matrix33) RowMajor64(d []float64) { getRowMajor(matrix, d, 3) }

// ColumnMajor writes the Matrix33 into d as 9 elements in column-major order.
func (matrix *Matrix33) ColumnMajor(d []float32) { getColumnMajor(matrix, d, 3) }

// ColumnMajor64 writes the Matrix33 into d as 9 double-precision elements in column-major order.
func (matrix *Matrix33) ColumnMajor64(d []float64) { getColumnMajor(matrix, d, 3) }

// SetRowMajorStride4 sets the Matrix33 from the upper-left 3x3 block of a row-major 4x4 layout, skipping every fourth element.
func (matrix *Matrix33) SetRowMajorStride4(d []float32) { setRowMajor(matrix, d, 4) }

// SetRowMajorStride4_64 is SetRowMajorStride4 for double-precision data.
func (matrix *Matrix33) SetRowMajorStride4_64(d []float64) { setRowMajor(matrix, d, 4) }

// SetColumnMajorStride4 sets the Matrix33 from the upper-left 3x3 block of a column-major 4x4 layout.
func (matrix *Matrix33) SetColumnMajorStride4(d []float32) { setColumnMajor(matrix, d, 4) }

// SetColumnMajorStride4_64 is SetColumnMajorStride4 for double-precision data.
func (matrix *Matrix33) SetColumnMajorStride4_64(d []float64) { setColumnMajor(matrix, d, 4) }

// RowMajorStride4 writes the Matrix33 into the upper-left 3x3 block of a row-major 4x4 layout. The fourth element
// of each row is left untouched.
func (matrix *Matrix33) RowMajorStride4(d []float32) { getRowMajor(matrix, d, 4) }

// RowMajorStride4_64 is RowMajorStride4 for double-precision data.
func (matrix *Matrix33) RowMajorStride4_64(d []float64) { getRowMajor(matrix, d, 4) }

// ColumnMajorStride4 writes the Matrix33 into the upper-left 3x3 block of a column-major 4x4 layout. The fourth element
// of each column is left untouched.
func (matrix *Matrix33) ColumnMajorStride4(d []float32) { getColumnMajor(matrix, d, 4) }

// ColumnMajorStride4_64 is ColumnMajorStride4 for double-precision data.
func (matrix *Matrix33) ColumnMajorStride4_64(d []float64) { getColumnMajor(matrix, d, 4) }

func setRowMajor44[F float](matrix *Matrix34, d []F) {
	_ = d[15]
	setRowMajor(&matrix.M, d, 4)
	matrix.T = Vector3{float32(d[3]), float32(d[7]), float32(d[11])}
}

func setColumnMajor44[F float](matrix *Matrix34, d []F) {
	_ = d[15]
	setColumnMajor(&matrix.M, d, 4)
	matrix.T = Vector3{float32(d[12]), float32(d[13]), float32(d[14])}
}

func getRowMajor44[F float](matrix *Matrix34, d []F) {
	_ = d[15]
	getRowMajor(&matrix.M, d, 4)
	d[3], d[7], d[11] = F(matrix.T.X), F(matrix.T.Y), F(matrix.T.Z)
	d[12], d[13], d[14] = 0, 0, 0
	d[15] = 1
}

func getColumnMajor44[F float](matrix *Matrix34, d []F) {
	_ = d[15]
	getColumnMajor(&matrix.M, d, 4)
	d[12], d[13], d[14] = F(matrix.T.X), F(matrix.T.Y), F(matrix.T.Z)
	d[3], d[7], d[11] = 0, 0, 0
	d[15] = 1
}

// SetRowMajor44 sets the Matrix34 from a row-major 4x4 homogeneous matrix (translation in the fourth column).
// The bottom row is ignored.
func (matrix *Matrix34) SetRowMajor44(d []float32) { setRowMajor44(matrix, d) }

// SetRowMajor44_64 is SetRowMajor44 for double-precision data.
func (matrix *Matrix34) SetRowMajor44_64(d []float64) { setRowMajor44(matrix, d) }

// SetColumnMajor44 sets the Matrix34 from a column-major 4x4 homogeneous matrix, the layout most rendering APIs use.
// The projective row is ignored.
func (matrix *Matrix34) SetColumnMajor44(d []float32) { setColumnMajor44(matrix, d) }

// SetColumnMajor44_64 is SetColumnMajor44 for double-precision data.
func (matrix *Matrix34) SetColumnMajor44_64(d []float64) { setColumnMajor44(matrix, d) }

// RowMajor44 writes the Matrix34 into d as a row-major 4x4 homogeneous matrix, with a bottom row of [0, 0, 0, 1].
func (matrix *Matrix34) RowMajor44(d []float32) { getRowMajor44(matrix, d) }

// RowMajor44_64 is RowMajor44 for double-precision data.
func (matrix *Matrix34) RowMajor44_64(d []float64) { getRowMajor44(matrix, d) }

// ColumnMajor44 writes the Matrix34 into d as a column-major 4x4 homogeneous matrix, with a projective row of [0, 0, 0, 1].
func (matrix *Matrix34) ColumnMajor44(d []float32) { getColumnMajor44(matrix, d) }

// ColumnMajor44_64 is ColumnMajor44 for double-precision data.
func (matrix *Matrix34) ColumnMajor44_64(d []float64) { getColumnMajor44(matrix, d) }

// WXYZ returns the components of the Quaternion in W, X, Y, Z order.
func (q Quaternion) WXYZ() [4]float32 {
	return [4]float32{q.W, q.X, q.Y, q.Z}
}

// XYZW returns the components of the Quaternion in X, Y, Z, W order.
func (q Quaternion) XYZW() [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

// WXYZ64 returns the components of the Quaternion in W, X, Y, Z order, widened to float64.
func (q Quaternion) WXYZ64() [4]float64 {
	return [4]float64{float64(q.W), float64(q.X), float64(q.Y), float64(q.Z)}
}

// XYZW64 returns the components of the Quaternion in X, Y, Z, W order, widened to float64.
func (q Quaternion) XYZW64() [4]float64 {
	return [4]float64{float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)}
}

func setWXYZ[F float](q *Quaternion, d []F) {
	_ = d[3]
	q.W, q.X, q.Y, q.Z = float32(d[0]), float32(d[1]), float32(d[2]), float32(d[3])
}

func setXYZW[F float](q *Quaternion, d []F) {
	_ = d[3]
	q.X, q.Y, q.Z, q.W = float32(d[0]), float32(d[1]), float32(d[2]), float32(d[3])
}

// SetWXYZSlice sets the Quaternion from 4 elements in W, X, Y, Z order.
func (q *Quaternion) SetWXYZSlice(d []float32) { setWXYZ(q, d) }

// SetWXYZSlice64 sets the Quaternion from 4 double-precision elements in W, X, Y, Z order.
func (q *Quaternion) SetWXYZSlice64(d []float64) { setWXYZ(q, d) }

// SetXYZWSlice sets the Quaternion from 4 elements in X, Y, Z, W order.
func (q *Quaternion) SetXYZWSlice(d []float32) { setXYZW(q, d) }

// SetXYZWSlice64 sets the Quaternion from 4 double-precision elements in X, Y, Z, W order.
func (q *Quaternion) SetXYZWSlice64(d []float64) { setXYZW(q, d) }
