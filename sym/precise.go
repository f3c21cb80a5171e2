package sym

import (
	"math"
	"math/big"
)

// evalPrec is the working precision, in bits, used to compare closed forms
// the simplifier cannot cancel.
const evalPrec = 256

var bigPi, _ = new(big.Float).SetPrec(evalPrec).SetString(
	"3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798")

func newFloat() *big.Float { return new(big.Float).SetPrec(evalPrec) }

// evalBig evaluates a closed expression to evalPrec bits. It fails on free
// symbols, NaN and arguments outside the real domain.
func evalBig(e Expr) (*big.Float, bool) {
	switch t := e.(type) {
	case *Num:
		return newFloat().SetRat(t.r), true
	case *constant:
		if t.name == "pi" {
			return newFloat().Set(bigPi), true
		}
		return newFloat().SetFloat64(t.value), true
	case *add:
		sum := newFloat().SetRat(t.c)
		for _, term := range t.terms {
			v, ok := evalBig(term)
			if !ok {
				return nil, false
			}
			sum.Add(sum, v)
		}
		return sum, true
	case *mul:
		prod := newFloat().SetRat(t.c)
		for _, f := range t.factors {
			v, ok := evalBig(f)
			if !ok {
				return nil, false
			}
			prod.Mul(prod, v)
		}
		return prod, true
	case *pow:
		b, ok := evalBig(t.base)
		if !ok {
			return nil, false
		}
		return powBig(b, t.exp)
	case *fn:
		a, ok := evalBig(t.arg)
		if !ok {
			return nil, false
		}
		// series below need a reduced argument
		if f, _ := a.Float64(); math.Abs(f) > 1e6 {
			return nil, false
		}
		switch t.name {
		case "sin":
			return sinBig(a), true
		case "cos":
			return cosBig(a), true
		case "tan":
			c := cosBig(a)
			if c.Sign() == 0 {
				return nil, false
			}
			return newFloat().Quo(sinBig(a), c), true
		case "acos":
			return acosBig(a)
		}
	}
	return nil, false
}

func powBig(b *big.Float, e *big.Rat) (*big.Float, bool) {
	if !e.Num().IsInt64() || !e.Denom().IsInt64() {
		return nil, false
	}
	p, q := e.Num().Int64(), e.Denom().Int64()
	if p > 1<<20 || p < -(1<<20) {
		return nil, false
	}
	switch {
	case b.Sign() == 0:
		if p < 0 {
			return nil, false
		}
		return newFloat(), true
	case b.Sign() < 0 && q%2 == 0:
		return nil, false
	}

	r, ok := rootBig(b, q)
	if !ok {
		return nil, false
	}
	inv := p < 0
	if inv {
		p = -p
	}
	out := newFloat().SetInt64(1)
	for sq := newFloat().Set(r); p > 0; p >>= 1 {
		if p&1 == 1 {
			out.Mul(out, sq)
		}
		sq.Mul(sq, sq)
	}
	if inv {
		out.Quo(newFloat().SetInt64(1), out)
	}
	return out, true
}

// rootBig is the real q-th root; q is odd when b is negative.
func rootBig(b *big.Float, q int64) (*big.Float, bool) {
	switch q {
	case 1:
		return newFloat().Set(b), true
	case 2:
		return newFloat().Sqrt(b), true
	}
	a := newFloat().Abs(b)
	f, _ := a.Float64()
	if f == 0 || math.IsInf(f, 0) {
		return nil, false
	}
	// Newton on x^q = a from the float64 estimate
	x := newFloat().SetFloat64(math.Pow(f, 1/float64(q)))
	qf := newFloat().SetInt64(q)
	qm := newFloat().SetInt64(q - 1)
	for i := 0; i < 12; i++ {
		xq := newFloat().SetInt64(1)
		for k := int64(1); k < q; k++ {
			xq.Mul(xq, x)
		}
		next := newFloat().Quo(a, xq)
		next.Add(next, newFloat().Mul(qm, x))
		x = next.Quo(next, qf)
	}
	if b.Sign() < 0 {
		x.Neg(x)
	}
	return x, true
}

// reduce maps x into [-pi, pi].
func reduce(x *big.Float) *big.Float {
	f, _ := x.Float64()
	k := math.Round(f / (2 * math.Pi))
	if k == 0 {
		return newFloat().Set(x)
	}
	twoPi := newFloat().Mul(bigPi, newFloat().SetInt64(2))
	return newFloat().Sub(x, twoPi.Mul(twoPi, newFloat().SetFloat64(k)))
}

func sinBig(x *big.Float) *big.Float {
	r := reduce(x)
	r2 := newFloat().Mul(r, r)
	sum, term := newFloat().Set(r), newFloat().Set(r)
	for n := int64(1); ; n++ {
		term.Mul(term, r2)
		term.Quo(term, newFloat().SetInt64(-(2*n)*(2*n+1)))
		if term.Sign() == 0 || term.MantExp(nil) < -evalPrec-8 {
			return sum
		}
		sum.Add(sum, term)
	}
}

func cosBig(x *big.Float) *big.Float {
	r := reduce(x)
	r2 := newFloat().Mul(r, r)
	sum, term := newFloat().SetInt64(1), newFloat().SetInt64(1)
	for n := int64(1); ; n++ {
		term.Mul(term, r2)
		term.Quo(term, newFloat().SetInt64(-(2*n-1)*(2*n)))
		if term.Sign() == 0 || term.MantExp(nil) < -evalPrec-8 {
			return sum
		}
		sum.Add(sum, term)
	}
}

func acosBig(y *big.Float) (*big.Float, bool) {
	one := newFloat().SetInt64(1)
	switch {
	case y.Cmp(one) > 0 || y.Cmp(newFloat().Neg(one)) < 0:
		return nil, false
	case y.Cmp(one) == 0:
		return newFloat(), true
	case y.Cmp(newFloat().Neg(one)) == 0:
		return newFloat().Set(bigPi), true
	}
	f, _ := y.Float64()
	x := newFloat().SetFloat64(math.Acos(f))
	// acos(y) ≈ sqrt(2(1-y)) where float64 rounds y to ±1
	switch {
	case f > 0.999:
		x.Sqrt(newFloat().Mul(newFloat().SetInt64(2), newFloat().Sub(one, y)))
	case f < -0.999:
		x.Sqrt(newFloat().Mul(newFloat().SetInt64(2), newFloat().Add(one, y)))
		x.Sub(bigPi, x)
	}
	// Newton on cos(x) = y
	for i := 0; i < 12; i++ {
		s := sinBig(x)
		if s.Sign() == 0 {
			break
		}
		step := newFloat().Sub(cosBig(x), y)
		x.Add(x, step.Quo(step, s))
	}
	return x, true
}
