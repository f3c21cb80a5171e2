package sym

import (
	"math"
	"math/big"
	"sort"
)

// Sums raised to a positive integer power up to this are expanded.
const maxExpand = 4

// trialLimit bounds the trial division used to split radicands.
const trialLimit = 100000

// maxPower bounds the exponents that are folded into rational coefficients.
// Larger powers stay symbolic.
const maxPower = 1 << 12

var (
	// Pi is the exact constant π.
	Pi Expr = &constant{name: "pi", value: math.Pi}
	// NaN marks an undefined value. Arithmetic on NaN yields NaN.
	NaN Expr = nan{}
)

func num(r *big.Rat) *Num { return &Num{r: new(big.Rat).Set(r)} }

// Int returns the integer n.
func Int(n int64) *Num { return &Num{r: new(big.Rat).SetInt64(n)} }

// Rat returns p/q, or NaN when q is zero.
func Rat(p, q int64) Expr {
	if q == 0 {
		return NaN
	}
	return &Num{r: big.NewRat(p, q)}
}

// FromRat wraps an arbitrary rational.
func FromRat(r *big.Rat) Expr { return num(r) }

// Float returns the exact rational value of f. NaN and infinities map to
// NaN.
func Float(f float64) Expr {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NaN
	}
	return &Num{r: new(big.Rat).SetFloat64(f)}
}

// Var returns the free symbol with the given name.
func Var(name string) *Symbol { return &Symbol{name: name} }

func Neg(a Expr) Expr    { return Mul(Int(-1), a) }
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }
func Div(a, b Expr) Expr { return Mul(a, Pow(b, big.NewRat(-1, 1))) }
func Sqrt(a Expr) Expr   { return Pow(a, halfRat) }

// PowInt raises a to an integer power.
func PowInt(a Expr, n int64) Expr { return Pow(a, big.NewRat(n, 1)) }

// splitCoef separates the rational coefficient of a product from the rest.
func splitCoef(e Expr) (*big.Rat, Expr) {
	m, ok := e.(*mul)
	if !ok {
		return oneRat, e
	}
	if len(m.factors) == 1 {
		return m.c, m.factors[0]
	}
	return m.c, &mul{c: oneRat, factors: m.factors}
}

func withCoef(c *big.Rat, mono Expr) Expr {
	if ratEq(c, oneRat) {
		return mono
	}
	if m, ok := mono.(*mul); ok {
		return &mul{c: new(big.Rat).Set(c), factors: m.factors}
	}
	return &mul{c: new(big.Rat).Set(c), factors: []Expr{mono}}
}

// Add returns the canonical sum of xs.
func Add(xs ...Expr) Expr {
	c := new(big.Rat)
	coefs := make(map[string]*big.Rat)
	monos := make(map[string]Expr)
	var order []string

	var collect func(e Expr) bool
	collect = func(e Expr) bool {
		switch t := e.(type) {
		case nan:
			return false
		case *Num:
			c.Add(c, t.r)
		case *add:
			c.Add(c, t.c)
			for _, term := range t.terms {
				collect(term)
			}
		default:
			coef, mono := splitCoef(e)
			k := mono.key()
			if cur, ok := coefs[k]; ok {
				cur.Add(cur, coef)
				return true
			}
			coefs[k] = new(big.Rat).Set(coef)
			monos[k] = mono
			order = append(order, k)
		}
		return true
	}
	for _, x := range xs {
		if !collect(x) {
			return NaN
		}
	}

	sort.Strings(order)
	terms := make([]Expr, 0, len(order))
	for _, k := range order {
		if coefs[k].Sign() != 0 {
			terms = append(terms, withCoef(coefs[k], monos[k]))
		}
	}

	switch {
	case len(terms) == 0:
		return num(c)
	case len(terms) == 1 && c.Sign() == 0:
		return terms[0]
	}
	return &add{c: c, terms: terms}
}

// Mul returns the canonical product of xs. Powers of a common base are
// merged, integer parts of radicals move into the coefficient and sums
// are distributed.
func Mul(xs ...Expr) Expr {
	c := big.NewRat(1, 1)
	bases := make(map[string]Expr)
	exps := make(map[string]*big.Rat)
	var order []string

	push := func(base Expr, e *big.Rat) {
		k := base.key()
		if cur, ok := exps[k]; ok {
			cur.Add(cur, e)
			return
		}
		exps[k] = new(big.Rat).Set(e)
		bases[k] = base
		order = append(order, k)
	}

	var collect func(e Expr) bool
	collect = func(e Expr) bool {
		switch t := e.(type) {
		case nan:
			return false
		case *Num:
			c.Mul(c, t.r)
		case *mul:
			c.Mul(c, t.c)
			for _, f := range t.factors {
				collect(f)
			}
		case *pow:
			push(t.base, t.exp)
		default:
			push(e, oneRat)
		}
		return true
	}
	for _, x := range xs {
		if !collect(x) {
			return NaN
		}
	}
	if c.Sign() == 0 {
		return Int(0)
	}

	sort.Strings(order)
	var factors, redo []Expr
	var sums []*add
	for _, k := range order {
		base, e := bases[k], exps[k]
		if e.Sign() == 0 {
			continue
		}
		if n, ok := base.(*Num); ok && (n.r.Sign() > 0 || e.IsInt()) && smallPower(e) {
			if e.IsInt() {
				c.Mul(c, ratPowInt(n.r, e.Num().Int64()))
				continue
			}
			whole := floorRat(e)
			c.Mul(c, ratPowInt(n.r, whole))
			if rem := new(big.Rat).Sub(e, big.NewRat(whole, 1)); rem.Sign() != 0 {
				factors = append(factors, &pow{base: n, exp: rem})
			}
			continue
		}
		if _, ok := base.(*mul); ok && e.IsInt() && smallPower(e) {
			redo = append(redo, Pow(base, e))
			continue
		}
		if s, ok := base.(*add); ok && e.IsInt() && e.Sign() > 0 && e.Num().IsInt64() && e.Num().Int64() <= maxExpand {
			for i := int64(0); i < e.Num().Int64(); i++ {
				sums = append(sums, s)
			}
			continue
		}
		if ratEq(e, oneRat) {
			factors = append(factors, base)
		} else {
			factors = append(factors, &pow{base: base, exp: e})
		}
	}

	var prod Expr
	switch {
	case len(factors) == 0:
		prod = num(c)
	case len(factors) == 1 && ratEq(c, oneRat):
		prod = factors[0]
	default:
		prod = &mul{c: c, factors: factors}
	}
	if len(redo) > 0 {
		prod = Mul(append([]Expr{prod}, redo...)...)
	}
	for _, s := range sums {
		prod = distribute(prod, s)
	}
	return prod
}

func distribute(p Expr, s *add) Expr {
	terms := make([]Expr, 0, len(s.terms)+1)
	if s.c.Sign() != 0 {
		terms = append(terms, Mul(p, num(s.c)))
	}
	for _, t := range s.terms {
		terms = append(terms, Mul(p, t))
	}
	return Add(terms...)
}

// Pow raises base to a rational exponent.
func Pow(base Expr, e *big.Rat) Expr {
	if e.Sign() == 0 {
		return Int(1)
	}
	if IsNaN(base) {
		return NaN
	}
	if ratEq(e, oneRat) {
		return base
	}

	switch b := base.(type) {
	case *Num:
		switch {
		case b.r.Sign() == 0:
			if e.Sign() < 0 {
				return NaN
			}
			return Int(0)
		case !smallPower(e):
			return &pow{base: b, exp: new(big.Rat).Set(e)}
		case e.IsInt():
			return num(ratPowInt(b.r, e.Num().Int64()))
		case b.r.Sign() < 0:
			return &pow{base: b, exp: new(big.Rat).Set(e)}
		}
		return radical(b.r, e)

	case *mul:
		if e.IsInt() && smallPower(e) {
			parts := []Expr{num(ratPowInt(b.c, e.Num().Int64()))}
			for _, f := range b.factors {
				parts = append(parts, Pow(f, e))
			}
			return Mul(parts...)
		}
		var out, rest []Expr
		if b.c.Sign() > 0 {
			out = append(out, Pow(num(b.c), e))
		} else {
			rest = append(rest, num(b.c))
		}
		for _, f := range b.factors {
			if nonNegative(f) {
				out = append(out, Pow(f, e))
			} else {
				rest = append(rest, f)
			}
		}
		if len(rest) > 0 {
			out = append(out, &pow{base: Mul(rest...), exp: new(big.Rat).Set(e)})
		}
		return Mul(out...)

	case *pow:
		if e.IsInt() || nonNegative(b.base) {
			return Pow(b.base, new(big.Rat).Mul(b.exp, e))
		}

	case *add:
		if e.IsInt() && e.Sign() < 0 {
			if conj, norm, ok := conjugate(b); ok {
				return Pow(Mul(conj, num(new(big.Rat).Inv(norm))), new(big.Rat).Neg(e))
			}
		}
	}

	return Mul(&pow{base: base, exp: new(big.Rat).Set(e)})
}

// conjugate rationalizes c + k*m where m*m is rational. It returns c - k*m
// and the norm c^2 - k^2*m^2, which must be nonzero.
func conjugate(a *add) (Expr, *big.Rat, bool) {
	if len(a.terms) != 1 {
		return nil, nil, false
	}
	k, m := splitCoef(a.terms[0])
	sq, ok := Mul(m, m).(*Num)
	if !ok {
		return nil, nil, false
	}
	norm := new(big.Rat).Mul(a.c, a.c)
	norm.Sub(norm, new(big.Rat).Mul(new(big.Rat).Mul(k, k), sq.r))
	if norm.Sign() == 0 {
		return nil, nil, false
	}
	return Add(num(a.c), withCoef(new(big.Rat).Neg(k), m)), norm, true
}

// radical splits r^e over the prime factors of r so that equal radicals
// share one canonical form.
func radical(r *big.Rat, e *big.Rat) Expr {
	var parts []Expr
	for _, pf := range factorize(r.Num()) {
		parts = append(parts, &pow{base: &Num{r: new(big.Rat).SetInt(pf.p)}, exp: new(big.Rat).Mul(e, big.NewRat(pf.m, 1))})
	}
	for _, pf := range factorize(r.Denom()) {
		exp := new(big.Rat).Mul(e, big.NewRat(-pf.m, 1))
		parts = append(parts, &pow{base: &Num{r: new(big.Rat).SetInt(pf.p)}, exp: exp})
	}
	return Mul(parts...)
}

type primePower struct {
	p *big.Int
	m int64
}

func factorize(n *big.Int) []primePower {
	if n.Cmp(big.NewInt(1)) <= 0 {
		return nil
	}
	if !n.IsInt64() {
		return squareSplit(n)
	}

	v := n.Int64()
	var out []primePower
	for p := int64(2); p <= trialLimit && p*p <= v; p++ {
		m := int64(0)
		for v%p == 0 {
			v /= p
			m++
		}
		if m > 0 {
			out = append(out, primePower{p: big.NewInt(p), m: m})
		}
	}
	if v > 1 {
		out = append(out, squareSplit(big.NewInt(v))...)
	}
	return out
}

func squareSplit(n *big.Int) []primePower {
	s := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(s, s).Cmp(n) == 0 {
		return []primePower{{p: s, m: 2}}
	}
	return []primePower{{p: new(big.Int).Set(n), m: 1}}
}

// smallPower reports whether e is small enough to evaluate exactly.
func smallPower(e *big.Rat) bool {
	if !e.Num().IsInt64() || !e.Denom().IsInt64() {
		return false
	}
	n, d := e.Num().Int64(), e.Denom().Int64()
	return d <= maxPower && n >= -maxPower*d && n <= maxPower*d
}

func floorRat(r *big.Rat) int64 {
	// Euclidean division by a positive denominator rounds toward -inf.
	return new(big.Int).Div(r.Num(), r.Denom()).Int64()
}

func ratPowInt(r *big.Rat, k int64) *big.Rat {
	if k == 0 {
		return big.NewRat(1, 1)
	}
	base := new(big.Rat).Set(r)
	if k < 0 {
		base.Inv(base)
		k = -k
	}
	num := new(big.Int).Exp(base.Num(), big.NewInt(k), nil)
	den := new(big.Int).Exp(base.Denom(), big.NewInt(k), nil)
	return new(big.Rat).SetFrac(num, den)
}

// nonNegative reports whether e is known to be >= 0.
func nonNegative(e Expr) bool {
	switch t := e.(type) {
	case *Num:
		return t.r.Sign() >= 0
	case *constant:
		return t.value >= 0
	case *fn:
		// principal value of acos lies in [0, pi]
		if t.name == "acos" {
			return true
		}
	case *pow:
		if nonNegative(t.base) {
			return true
		}
		if t.exp.IsInt() && t.exp.Num().Bit(0) == 0 {
			return true
		}
	case *mul:
		if t.c.Sign() > 0 && allNonNegative(t.factors) {
			return true
		}
	case *add:
		if t.c.Sign() >= 0 && allNonNegative(t.terms) {
			return true
		}
	}
	if v, ok := Float64(e); ok && !math.IsNaN(v) {
		return v > 1e-12
	}
	return false
}

func allNonNegative(xs []Expr) bool {
	for _, x := range xs {
		if !nonNegative(x) {
			return false
		}
	}
	return true
}

func negative(e Expr) bool {
	switch t := e.(type) {
	case *Num:
		return t.r.Sign() < 0
	case *mul:
		return t.c.Sign() < 0
	}
	return false
}
