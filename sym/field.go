package sym

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// closedTol decides equality of closed-form constants whose difference the
// simplifier cannot reduce to zero, such as nested radicals. It is relative
// and applied at evalPrec bits.
var closedTol = newFloat().SetFloat64(1e-60)

// Field is the exact scalar backend over Expr.
type Field struct{}

func (Field) Zero() Expr           { return Int(0) }
func (Field) One() Expr            { return Int(1) }
func (Field) FromInt(n int64) Expr { return Int(n) }
func (Field) Pi() Expr             { return Pi }
func (Field) NaN() Expr            { return NaN }
func (Field) Add(a, b Expr) Expr   { return Add(a, b) }
func (Field) Sub(a, b Expr) Expr   { return Sub(a, b) }
func (Field) Mul(a, b Expr) Expr   { return Mul(a, b) }
func (Field) Div(a, b Expr) Expr   { return Div(a, b) }
func (Field) Neg(a Expr) Expr      { return Neg(a) }
func (Field) Sqrt(a Expr) Expr     { return Sqrt(a) }
func (Field) Sin(a Expr) Expr      { return Sin(a) }
func (Field) Cos(a Expr) Expr      { return Cos(a) }
func (Field) Acos(a Expr) Expr     { return Acos(a) }
func (Field) Det(a [][]Expr) Expr  { return det(a) }

// Equal is exact: the difference must simplify to zero. Expressions with
// free symbols are only equal when they cancel structurally. NaN equals
// nothing.
func (Field) Equal(a, b Expr) bool {
	if IsNaN(a) || IsNaN(b) {
		return false
	}
	if n, ok := Sub(a, b).(*Num); ok {
		return n.IsZero()
	}
	x, okA := evalBig(a)
	y, okB := evalBig(b)
	if !okA || !okB {
		return false
	}
	diff := newFloat().Sub(x, y)
	diff.Abs(diff)
	bound := newFloat().Abs(y)
	bound.Add(bound, newFloat().SetInt64(1))
	return diff.Cmp(bound.Mul(bound, closedTol)) <= 0
}

// det expands along the first row.
func det(a [][]Expr) Expr {
	n := len(a)
	switch n {
	case 0:
		return Int(1)
	case 1:
		return a[0][0]
	case 2:
		return Sub(Mul(a[0][0], a[1][1]), Mul(a[0][1], a[1][0]))
	}

	terms := make([]Expr, 0, n)
	for j := 0; j < n; j++ {
		if Equal(a[0][j], Int(0)) {
			continue
		}
		minor := make([][]Expr, 0, n-1)
		for _, row := range a[1:] {
			r := make([]Expr, 0, n-1)
			r = append(r, row[:j]...)
			r = append(r, row[j+1:]...)
			minor = append(minor, r)
		}
		t := Mul(a[0][j], det(minor))
		if j%2 == 1 {
			t = Neg(t)
		}
		terms = append(terms, t)
	}
	return Add(terms...)
}

// EigenSym decomposes a symmetric matrix with numeric entries. Diagonal and
// 2x2 matrices are solved in closed form. Larger ones go through gonum; each
// value comes back as the square of a rational so that its root is exact.
func (Field) EigenSym(a [][]Expr) ([]Expr, [][]Expr, error) {
	n := len(a)
	data := make([]float64, n*n)
	diagonal := true
	for i := range a {
		for j := range a[i] {
			v, ok := Float64(a[i][j])
			if !ok || math.IsNaN(v) {
				return nil, nil, fmt.Errorf("entry (%d,%d) = %s: %w", i, j, a[i][j], ErrNotNumeric)
			}
			data[i*n+j] = v
			if i != j && v != 0 {
				diagonal = false
			}
		}
	}

	if diagonal {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(x, y int) bool {
			return data[idx[x]*n+idx[x]] < data[idx[y]*n+idx[y]]
		})
		values := make([]Expr, n)
		vectors := make([][]Expr, n)
		for i := range vectors {
			vectors[i] = make([]Expr, n)
		}
		for j, k := range idx {
			values[j] = a[k][k]
			for i := range vectors {
				vectors[i][j] = Int(0)
			}
			vectors[k][j] = Int(1)
		}
		return values, vectors, nil
	}
	if n == 2 {
		values, vectors := eigen2(a)
		return values, vectors, nil
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, nil, ErrNoConvergence
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	values := make([]Expr, n)
	for i, v := range es.Values(nil) {
		r := Float(math.Sqrt(math.Max(v, 0)))
		values[i] = Mul(r, r)
	}
	vectors := make([][]Expr, n)
	for i := range vectors {
		vectors[i] = make([]Expr, n)
		for j := range vectors[i] {
			vectors[i][j] = Float(vecs.At(i, j))
		}
	}
	return values, vectors, nil
}

// eigen2 solves [[p, q], [q, s]] with q != 0. Values ascend.
func eigen2(a [][]Expr) ([]Expr, [][]Expr) {
	p, q, s := a[0][0], a[0][1], a[1][1]
	gap := Sub(p, s)
	disc := Sqrt(Add(Mul(gap, gap), Mul(Int(4), q, q)))
	tr := Add(p, s)
	values := []Expr{Div(Sub(tr, disc), Int(2)), Div(Add(tr, disc), Int(2))}

	vectors := [][]Expr{make([]Expr, 2), make([]Expr, 2)}
	for j, l := range values {
		d := Sub(l, p)
		norm := Sqrt(Add(Mul(q, q), Mul(d, d)))
		vectors[0][j] = Div(q, norm)
		vectors[1][j] = Div(d, norm)
	}
	return values, vectors
}
