package sym

import (
	"math"
	"sort"
)

// Float64 evaluates e. It reports false when e still has free symbols.
func Float64(e Expr) (float64, bool) {
	switch t := e.(type) {
	case *Num:
		v, _ := t.r.Float64()
		return v, true
	case *constant:
		return t.value, true
	case nan:
		return math.NaN(), true
	case *Symbol:
		return 0, false
	case *add:
		sum, _ := t.c.Float64()
		for _, term := range t.terms {
			v, ok := Float64(term)
			if !ok {
				return 0, false
			}
			sum += v
		}
		return sum, true
	case *mul:
		prod, _ := t.c.Float64()
		for _, f := range t.factors {
			v, ok := Float64(f)
			if !ok {
				return 0, false
			}
			prod *= v
		}
		return prod, true
	case *pow:
		b, ok := Float64(t.base)
		if !ok {
			return 0, false
		}
		e, _ := t.exp.Float64()
		return math.Pow(b, e), true
	case *fn:
		a, ok := Float64(t.arg)
		if !ok {
			return 0, false
		}
		switch t.name {
		case "sin":
			return math.Sin(a), true
		case "cos":
			return math.Cos(a), true
		case "tan":
			return math.Tan(a), true
		case "acos":
			return math.Acos(a), true
		}
	}
	return 0, false
}

// Subs replaces every occurrence of the symbol name with value and
// re-simplifies.
func Subs(e Expr, name string, value Expr) Expr {
	switch t := e.(type) {
	case *Symbol:
		if t.name == name {
			return value
		}
		return t
	case *add:
		terms := []Expr{num(t.c)}
		for _, term := range t.terms {
			terms = append(terms, Subs(term, name, value))
		}
		return Add(terms...)
	case *mul:
		factors := []Expr{num(t.c)}
		for _, f := range t.factors {
			factors = append(factors, Subs(f, name, value))
		}
		return Mul(factors...)
	case *pow:
		return Pow(Subs(t.base, name, value), t.exp)
	case *fn:
		return apply(t.name, Subs(t.arg, name, value))
	}
	return e
}

func apply(name string, arg Expr) Expr {
	switch name {
	case "sin":
		return Sin(arg)
	case "cos":
		return Cos(arg)
	case "tan":
		return Tan(arg)
	case "acos":
		return Acos(arg)
	case "sqrt":
		return Sqrt(arg)
	}
	return NaN
}

// FreeSymbols returns the sorted names of the symbols in e.
func FreeSymbols(e Expr) []string {
	seen := map[string]bool{}
	var walk func(Expr)
	walk = func(e Expr) {
		switch t := e.(type) {
		case *Symbol:
			seen[t.name] = true
		case *add:
			for _, x := range t.terms {
				walk(x)
			}
		case *mul:
			for _, x := range t.factors {
				walk(x)
			}
		case *pow:
			walk(t.base)
		case *fn:
			walk(t.arg)
		}
	}
	walk(e)

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
