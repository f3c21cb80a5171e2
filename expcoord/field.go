package expcoord

// Field is the scalar algebra a backend supplies to the formulas.
//
// Equal is the only comparison the formulas use: backends with inexact
// arithmetic compare within a tolerance, exact backends compare exactly.
type Field[S any] interface {
	Zero() S
	One() S
	FromInt(n int64) S
	Pi() S
	// NaN is the sentinel stored in undefined axes.
	NaN() S

	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Div(a, b S) S
	Neg(a S) S

	Sqrt(a S) S
	Sin(a S) S
	Cos(a S) S
	Acos(a S) S

	Equal(a, b S) bool

	// Det returns the determinant of a square matrix.
	Det(a [][]S) S
	// EigenSym decomposes a symmetric matrix. Values are returned in
	// ascending order; vectors[i][j] is component i of eigenvector j.
	EigenSym(a [][]S) (values []S, vectors [][]S, err error)
}
