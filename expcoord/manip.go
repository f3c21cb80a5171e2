package expcoord

// Manipulability computes the principal axes of the manipulability
// ellipsoid of J and the condition number max(w)/min(w) of A = J·Jᵗ.
func (k Kinematics[S]) Manipulability(J [][]S) (Ellipsoid[S], error) {
	f := k.f
	rows := len(J)
	if rows == 0 || len(J[0]) == 0 {
		return Ellipsoid[S]{}, &MatrixError{Op: "manipulability", Rows: rows, Wrapped: ErrDimension}
	}
	cols := len(J[0])
	for _, row := range J {
		if len(row) != cols {
			return Ellipsoid[S]{}, &MatrixError{Op: "manipulability", Rows: rows, Cols: cols, Wrapped: ErrDimension}
		}
	}

	A := make([][]S, rows)
	for i := range A {
		A[i] = make([]S, rows)
		for j := range A[i] {
			sum := f.Zero()
			for n := 0; n < cols; n++ {
				sum = f.Add(sum, f.Mul(J[i][n], J[j][n]))
			}
			A[i][j] = sum
		}
	}

	if f.Equal(f.Det(A), f.Zero()) {
		return Ellipsoid[S]{}, &MatrixError{Op: "manipulability", Rows: rows, Cols: rows, Wrapped: ErrSingular}
	}

	w, v, err := f.EigenSym(A)
	if err != nil {
		return Ellipsoid[S]{}, err
	}

	H := make([][]S, rows)
	for i := range H {
		H[i] = make([]S, rows)
		for j := range H[i] {
			H[i][j] = f.Mul(f.Sqrt(w[j]), v[i][j])
		}
	}

	return Ellipsoid[S]{Axes: H, Condition: f.Div(w[rows-1], w[0])}, nil
}
