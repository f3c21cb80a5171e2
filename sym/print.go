package sym

import (
	"math/big"
	"strings"
)

func (n *Num) String() string      { return n.r.RatString() }
func (s *Symbol) String() string   { return s.name }
func (c *constant) String() string { return c.name }
func (nan) String() string         { return "nan" }

func (f *fn) String() string { return f.name + "(" + f.arg.String() + ")" }

func (a *add) String() string {
	var b strings.Builder
	for i, t := range a.terms {
		writeTerm(&b, t.String(), i == 0)
	}
	if a.c.Sign() != 0 {
		writeTerm(&b, a.c.RatString(), false)
	}
	return b.String()
}

func writeTerm(b *strings.Builder, s string, first bool) {
	switch {
	case first:
		b.WriteString(s)
	case strings.HasPrefix(s, "-"):
		b.WriteString(" - ")
		b.WriteString(s[1:])
	default:
		b.WriteString(" + ")
		b.WriteString(s)
	}
}

func (m *mul) String() string {
	var numer, denom []string
	for _, f := range m.factors {
		if p, ok := f.(*pow); ok && p.exp.Sign() < 0 {
			denom = append(denom, powString(p.base, new(big.Rat).Neg(p.exp)))
			continue
		}
		numer = append(numer, factorString(f))
	}

	sign := ""
	c := new(big.Rat).Set(m.c)
	if c.Sign() < 0 {
		sign = "-"
		c.Neg(c)
	}
	if !c.Num().IsInt64() || c.Num().Int64() != 1 || len(numer) == 0 {
		numer = append([]string{c.Num().String()}, numer...)
	}
	if !c.IsInt() {
		denom = append([]string{c.Denom().String()}, denom...)
	}

	s := sign + strings.Join(numer, "*")
	switch len(denom) {
	case 0:
	case 1:
		s += "/" + denom[0]
	default:
		s += "/(" + strings.Join(denom, "*") + ")"
	}
	return s
}

func (p *pow) String() string {
	if p.exp.Sign() < 0 {
		return "1/" + powString(p.base, new(big.Rat).Neg(p.exp))
	}
	return powString(p.base, p.exp)
}

func powString(base Expr, e *big.Rat) string {
	switch {
	case ratEq(e, oneRat):
		return factorString(base)
	case ratEq(e, halfRat):
		return "sqrt(" + base.String() + ")"
	}
	exp := e.RatString()
	if !e.IsInt() {
		exp = "(" + exp + ")"
	}
	return atomString(base) + "**" + exp
}

func factorString(e Expr) string {
	if _, ok := e.(*add); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// atomString parenthesizes anything that is not a bare atom.
func atomString(e Expr) string {
	switch t := e.(type) {
	case *Symbol, *constant, *fn, nan:
		return e.String()
	case *Num:
		if t.r.IsInt() && t.r.Sign() >= 0 {
			return e.String()
		}
	}
	return "(" + e.String() + ")"
}
