package sym

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// Parse reads an expression such as "sqrt(3)/2", "pi/3" or "2*x**2 - 1".
// Both ^ and ** denote powers. The names pi and nan are constants; sqrt,
// sin, cos, tan and acos are functions; any other identifier is a symbol.
//
// Powers need a rational exponent once the right-hand side is simplified.
func Parse(s string) (Expr, error) {
	p := &parser{src: s}
	p.next()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
	return e, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNum
	tokIdent
	tokOp
)

type token struct {
	kind tokKind
	text string
	pos  int
}

type parser struct {
	src string
	pos int
	tok token
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Input: p.src, Pos: p.tok.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) next() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}

	c := p.src[p.pos]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
			p.pos++
		}
		if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
			p.pos++
			if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
				p.pos++
			}
			for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
				p.pos++
			}
		}
		p.tok = token{kind: tokNum, text: p.src[start:p.pos], pos: start}
	case c == '_' || unicode.IsLetter(rune(c)):
		for p.pos < len(p.src) && (p.src[p.pos] == '_' || isDigit(p.src[p.pos]) || unicode.IsLetter(rune(p.src[p.pos]))) {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.src[start:p.pos], pos: start}
	case c == '*' && strings.HasPrefix(p.src[p.pos:], "**"):
		p.pos += 2
		p.tok = token{kind: tokOp, text: "^", pos: start}
	default:
		p.pos++
		p.tok = token{kind: tokOp, text: string(c), pos: start}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (p *parser) isOp(s string) bool { return p.tok.kind == tokOp && p.tok.text == s }

// expr := term (('+' | '-') term)*
func (p *parser) expr() (Expr, error) {
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.tok.text
		p.next()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			lhs = Add(lhs, rhs)
		} else {
			lhs = Sub(lhs, rhs)
		}
	}
	return lhs, nil
}

// term := unary (('*' | '/') unary)*
func (p *parser) term() (Expr, error) {
	lhs, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.isOp("*") || p.isOp("/") {
		op := p.tok.text
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			lhs = Mul(lhs, rhs)
		} else {
			lhs = Div(lhs, rhs)
		}
	}
	return lhs, nil
}

// unary := ('-' | '+') unary | power
func (p *parser) unary() (Expr, error) {
	switch {
	case p.isOp("-"):
		p.next()
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Neg(e), nil
	case p.isOp("+"):
		p.next()
		return p.unary()
	}
	return p.power()
}

// power := primary ('^' unary)?
func (p *parser) power() (Expr, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	pos := p.tok.pos
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	n, ok := exp.(*Num)
	if !ok {
		return nil, &ParseError{Input: p.src, Pos: pos, Msg: "exponent " + exp.String() + " is not rational"}
	}
	if !inputExponent(n.r) {
		return nil, &ParseError{Input: p.src, Pos: pos, Msg: "exponent " + n.String() + " out of range"}
	}
	return Pow(base, n.r), nil
}

// maxExponent bounds numerator and denominator of a written exponent.
const maxExponent = 1024

func inputExponent(r *big.Rat) bool {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return false
	}
	n := r.Num().Int64()
	return n >= -maxExponent && n <= maxExponent && r.Denom().Int64() <= maxExponent
}

func (p *parser) primary() (Expr, error) {
	switch p.tok.kind {
	case tokNum:
		r, ok := new(big.Rat).SetString(p.tok.text)
		if !ok {
			return nil, p.errorf("bad number %q", p.tok.text)
		}
		p.next()
		return num(r), nil

	case tokIdent:
		name := p.tok.text
		p.next()
		switch name {
		case "pi":
			return Pi, nil
		case "nan":
			return NaN, nil
		case "sqrt", "sin", "cos", "tan", "acos":
			if !p.isOp("(") {
				return nil, p.errorf("expected ( after %q", name)
			}
			p.next()
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			if !p.isOp(")") {
				return nil, p.errorf("expected )")
			}
			p.next()
			return apply(name, arg), nil
		}
		return Var(name), nil

	case tokOp:
		if p.isOp("(") {
			p.next()
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			if !p.isOp(")") {
				return nil, p.errorf("expected )")
			}
			p.next()
			return e, nil
		}
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
	return nil, p.errorf("unexpected end of input")
}
