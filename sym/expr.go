package sym

import (
	"math/big"
	"strings"
)

// Expr is an immutable symbolic expression in canonical form. Expressions
// are only built through the package constructors, which keep sums and
// products flattened, sorted and collected, so two expressions are equal
// exactly when their canonical keys match.
type Expr interface {
	String() string
	key() string
}

// Num is an exact rational number.
type Num struct{ r *big.Rat }

// Symbol is a free variable.
type Symbol struct{ name string }

type constant struct {
	name  string
	value float64
}

type nan struct{}

// add is c + Σ terms. Terms are never numbers or sums.
type add struct {
	c     *big.Rat
	terms []Expr
}

// mul is c · Π factors. Factors are atoms, sums or powers, sorted by key,
// with at most one factor per base.
type mul struct {
	c       *big.Rat
	factors []Expr
}

// pow is base^exp for a rational exponent other than 0 and 1.
type pow struct {
	base Expr
	exp  *big.Rat
}

type fn struct {
	name string
	arg  Expr
}

var (
	zeroRat = new(big.Rat)
	oneRat  = big.NewRat(1, 1)
	halfRat = big.NewRat(1, 2)
)

func (n *Num) key() string      { return "n:" + n.r.RatString() }
func (s *Symbol) key() string   { return "s:" + s.name }
func (c *constant) key() string { return "c:" + c.name }
func (nan) key() string         { return "nan" }

func (p *pow) key() string {
	return "p:(" + p.base.key() + ")^" + p.exp.RatString()
}

func (f *fn) key() string {
	return "f:" + f.name + "(" + f.arg.key() + ")"
}

func (m *mul) key() string {
	var b strings.Builder
	b.WriteString("m:")
	b.WriteString(m.c.RatString())
	for _, f := range m.factors {
		b.WriteString("*(")
		b.WriteString(f.key())
		b.WriteString(")")
	}
	return b.String()
}

func (a *add) key() string {
	var b strings.Builder
	b.WriteString("a:")
	b.WriteString(a.c.RatString())
	for _, t := range a.terms {
		b.WriteString("+(")
		b.WriteString(t.key())
		b.WriteString(")")
	}
	return b.String()
}

// Rat returns a copy of the value.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.r) }

func (n *Num) IsZero() bool { return n.r.Sign() == 0 }

// Name returns the symbol name.
func (s *Symbol) Name() string { return s.name }

// Equal reports whether a and b have the same canonical form.
func Equal(a, b Expr) bool { return a.key() == b.key() }

// IsNaN reports whether e is the undefined sentinel.
func IsNaN(e Expr) bool {
	_, ok := e.(nan)
	return ok
}

func isInt(r *big.Rat) bool { return r.IsInt() }

func ratEq(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
