package num

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tolerance is an allclose-style comparison: a equals b when
// |a-b| <= ATol + RTol*|b|.
type Tolerance struct {
	RTol float64
	ATol float64
}

// DefaultTolerance matches the usual floating-point all-close convention.
var DefaultTolerance = Tolerance{RTol: 1e-5, ATol: 1e-8}

// Close reports whether a is within the tolerance of b. NaN is never close.
func (t Tolerance) Close(a, b float64) bool {
	return math.Abs(a-b) <= t.ATol+t.RTol*math.Abs(b)
}

// Field is the float64 scalar backend.
type Field struct {
	Tol Tolerance
}

func (Field) Zero() float64            { return 0 }
func (Field) One() float64             { return 1 }
func (Field) FromInt(n int64) float64  { return float64(n) }
func (Field) Pi() float64              { return math.Pi }
func (Field) NaN() float64             { return math.NaN() }
func (Field) Add(a, b float64) float64 { return a + b }
func (Field) Sub(a, b float64) float64 { return a - b }
func (Field) Mul(a, b float64) float64 { return a * b }
func (Field) Div(a, b float64) float64 { return a / b }
func (Field) Neg(a float64) float64    { return -a }
func (Field) Sqrt(a float64) float64   { return math.Sqrt(a) }
func (Field) Sin(a float64) float64    { return math.Sin(a) }
func (Field) Cos(a float64) float64    { return math.Cos(a) }

// Acos clamps its argument to [-1, 1] so that rounding just outside the
// domain does not produce NaN.
func (Field) Acos(a float64) float64 {
	return math.Acos(math.Max(-1, math.Min(1, a)))
}

func (f Field) Equal(a, b float64) bool { return f.Tol.Close(a, b) }

func (Field) Det(a [][]float64) float64 {
	return mat.Det(denseFromRows(a))
}

// EigenSym uses gonum's symmetric eigensolver, which already returns the
// values in ascending order.
func (Field) EigenSym(a [][]float64) ([]float64, [][]float64, error) {
	n := len(a)
	data := make([]float64, 0, n*n)
	for _, row := range a {
		data = append(data, row...)
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, nil, ErrNoConvergence
	}

	var vecs mat.Dense
	es.VectorsTo(&vecs)
	return es.Values(nil), rowsFromDense(&vecs), nil
}

func denseFromRows(rows [][]float64) *mat.Dense {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data)
}

func rowsFromDense(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
