package expcoord

// Vec3 is a 3-vector: an axis, an angular velocity or a translation.
type Vec3[S any] [3]S

// Vec6 is a twist: angular part in [0:3], linear part in [3:6].
type Vec6[S any] [6]S

// Mat3 is a row-major 3x3 matrix.
type Mat3[S any] [3][3]S

// Mat4 is a row-major 4x4 homogeneous transformation matrix.
type Mat4[S any] [4][4]S

// Mat6 is a row-major 6x6 matrix, the shape of both adjoints.
type Mat6[S any] [6][6]S

// Angular returns the upper three components of the twist.
func (v Vec6[S]) Angular() Vec3[S] {
	return Vec3[S]{v[0], v[1], v[2]}
}

// Linear returns the lower three components of the twist.
func (v Vec6[S]) Linear() Vec3[S] {
	return Vec3[S]{v[3], v[4], v[5]}
}

// NewVec6 stacks an angular and a linear part.
func NewVec6[S any](w, v Vec3[S]) Vec6[S] {
	return Vec6[S]{w[0], w[1], w[2], v[0], v[1], v[2]}
}

func (m Mat3[S]) T() Mat3[S] {
	var r Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Col returns column j.
func (m Mat3[S]) Col(j int) Vec3[S] {
	return Vec3[S]{m[0][j], m[1][j], m[2][j]}
}

// Rotation returns the upper-left 3x3 block.
func (m Mat4[S]) Rotation() Mat3[S] {
	var r Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j]
		}
	}
	return r
}

// Translation returns the upper three entries of the last column.
func (m Mat4[S]) Translation() Vec3[S] {
	return Vec3[S]{m[0][3], m[1][3], m[2][3]}
}

// Rows returns the matrix as a slice of rows.
func (m Mat4[S]) Rows() [][]S {
	rows := make([][]S, 4)
	for i := range m {
		rows[i] = append([]S(nil), m[i][:]...)
	}
	return rows
}

func (m Mat3[S]) Rows() [][]S {
	rows := make([][]S, 3)
	for i := range m {
		rows[i] = append([]S(nil), m[i][:]...)
	}
	return rows
}

func (m Mat6[S]) Rows() [][]S {
	rows := make([][]S, 6)
	for i := range m {
		rows[i] = append([]S(nil), m[i][:]...)
	}
	return rows
}

// block6 assembles [[a, b], [c, d]] from 3x3 blocks.
func block6[S any](a, b, c, d Mat3[S]) Mat6[S] {
	var r Mat6[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][j]
			r[i][j+3] = b[i][j]
			r[i+3][j] = c[i][j]
			r[i+3][j+3] = d[i][j]
		}
	}
	return r
}
