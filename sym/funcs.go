package sym

import "math/big"

var acosTable = map[string]Expr{}

func init() {
	for _, q := range []*big.Rat{
		big.NewRat(0, 1), big.NewRat(1, 6), big.NewRat(1, 4), big.NewRat(1, 3),
		big.NewRat(1, 2), big.NewRat(2, 3), big.NewRat(3, 4), big.NewRat(5, 6),
		big.NewRat(1, 1),
	} {
		v, _ := cosPi(q)
		acosTable[v.key()] = Mul(num(q), Pi)
	}
}

// piMultiple reports whether x is q·π for a rational q.
func piMultiple(x Expr) (*big.Rat, bool) {
	switch t := x.(type) {
	case *Num:
		if t.r.Sign() == 0 {
			return new(big.Rat), true
		}
	case *constant:
		if t.name == "pi" {
			return big.NewRat(1, 1), true
		}
	case *mul:
		if len(t.factors) == 1 && Equal(t.factors[0], Pi) {
			return new(big.Rat).Set(t.c), true
		}
	}
	return nil, false
}

// sinPi returns sin(qπ) when it has a closed form over square roots.
func sinPi(q *big.Rat) (Expr, bool) {
	// reduce into [0, 2)
	two := big.NewRat(2, 1)
	q = new(big.Rat).Sub(q, new(big.Rat).Mul(two, big.NewRat(floorRat(new(big.Rat).Quo(q, two)), 1)))

	if q.Cmp(oneRat) >= 0 {
		v, ok := sinPi(new(big.Rat).Sub(q, oneRat))
		if !ok {
			return nil, false
		}
		return Neg(v), true
	}
	if q.Cmp(halfRat) > 0 {
		q = new(big.Rat).Sub(oneRat, q)
	}

	switch q.RatString() {
	case "0":
		return Int(0), true
	case "1/6":
		return Rat(1, 2), true
	case "1/4":
		return Div(Sqrt(Int(2)), Int(2)), true
	case "1/3":
		return Div(Sqrt(Int(3)), Int(2)), true
	case "1/2":
		return Int(1), true
	}
	return nil, false
}

func cosPi(q *big.Rat) (Expr, bool) {
	return sinPi(new(big.Rat).Sub(halfRat, q))
}

func Sin(x Expr) Expr {
	if IsNaN(x) {
		return NaN
	}
	if q, ok := piMultiple(x); ok {
		if v, ok := sinPi(q); ok {
			return v
		}
	}
	if negative(x) {
		return Neg(Sin(Neg(x)))
	}
	if f, ok := x.(*fn); ok && f.name == "acos" {
		return Sqrt(Sub(Int(1), Mul(f.arg, f.arg)))
	}
	return &fn{name: "sin", arg: x}
}

func Cos(x Expr) Expr {
	if IsNaN(x) {
		return NaN
	}
	if q, ok := piMultiple(x); ok {
		if v, ok := cosPi(q); ok {
			return v
		}
	}
	if negative(x) {
		return Cos(Neg(x))
	}
	if f, ok := x.(*fn); ok && f.name == "acos" {
		return f.arg
	}
	return &fn{name: "cos", arg: x}
}

// Tan is undefined where the cosine vanishes exactly.
func Tan(x Expr) Expr {
	if IsNaN(x) {
		return NaN
	}
	if q, ok := piMultiple(x); ok {
		s, okS := sinPi(q)
		c, okC := cosPi(q)
		if okS && okC {
			if Equal(c, Int(0)) {
				return NaN
			}
			return Div(s, c)
		}
	}
	if negative(x) {
		return Neg(Tan(Neg(x)))
	}
	return &fn{name: "tan", arg: x}
}

// Acos is the principal arccosine. Rationals outside [-1, 1] give NaN.
func Acos(x Expr) Expr {
	if IsNaN(x) {
		return NaN
	}
	if n, ok := x.(*Num); ok && new(big.Rat).Abs(n.r).Cmp(oneRat) > 0 {
		return NaN
	}
	if v, ok := acosTable[x.key()]; ok {
		return v
	}
	if f, ok := x.(*fn); ok && f.name == "cos" {
		if q, ok := piMultiple(f.arg); ok && q.Sign() >= 0 && q.Cmp(oneRat) <= 0 {
			return f.arg
		}
	}
	return &fn{name: "acos", arg: x}
}
