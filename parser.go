package symath

import (
	"errors"
	"strconv"
)

// ParseError reports malformed grammar. The parser never partially recovers.
type ParseError struct{ Msg string }

func (e *ParseError) Error() string { return e.Msg }

// ErrDepthExceeded is returned when an expression nests deeper than the
// parser's recursion ceiling.
var ErrDepthExceeded = errors.New("expression nesting too deep")

const maxDepth = 200

// Parse consumes the token sequence with recursive descent and returns the
// expression tree.
//
// Grammar, highest precedence first:
//
//	term       = number | variable | name "(" expression ")" | "(" expression ")"
//	factor     = term [ "^" factor ]                  (right-associative)
//	term-chain = factor { ("*" | "/") factor }        (left-associative)
//	expression = ["-"] term-chain { ("+" | "-") term-chain }
func Parse(tokens []Token) (Expr, error) {
	p := &parser{toks: tokens}
	e, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, &ParseError{Msg: "unexpected token: " + p.toks[p.pos].Text}
	}
	return e, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) expression(depth int) (Expr, error) {
	if depth > maxDepth {
		return nil, ErrDepthExceeded
	}
	var left Expr
	if t, ok := p.peek(); ok && t.Kind == TokOp && t.Text == "-" {
		p.pos++
		first, err := p.termChain(depth + 1)
		if err != nil {
			return nil, err
		}
		left = SubOf(Num(0), first)
	} else {
		first, err := p.termChain(depth + 1)
		if err != nil {
			return nil, err
		}
		left = first
	}
	for {
		t, ok := p.peek()
		if !ok || t.Kind != TokOp || (t.Text != "+" && t.Text != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.termChain(depth + 1)
		if err != nil {
			return nil, err
		}
		if t.Text == "+" {
			left = AddOf(left, right)
		} else {
			left = SubOf(left, right)
		}
	}
}

func (p *parser) termChain(depth int) (Expr, error) {
	if depth > maxDepth {
		return nil, ErrDepthExceeded
	}
	left, err := p.factor(depth + 1)
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.Kind != TokOp || (t.Text != "*" && t.Text != "/") {
			return left, nil
		}
		p.pos++
		right, err := p.factor(depth + 1)
		if err != nil {
			return nil, err
		}
		if t.Text == "*" {
			left = MulOf(left, right)
		} else {
			left = DivOf(left, right)
		}
	}
}

// factor parses a term with an optional right-associative exponent, so
// a^b^c parses as a^(b^c).
func (p *parser) factor(depth int) (Expr, error) {
	if depth > maxDepth {
		return nil, ErrDepthExceeded
	}
	base, err := p.term(depth + 1)
	if err != nil {
		return nil, err
	}
	t, ok := p.peek()
	if !ok || t.Kind != TokOp || t.Text != "^" {
		return base, nil
	}
	p.pos++
	exp, err := p.factor(depth + 1)
	if err != nil {
		return nil, err
	}
	return PowOf(base, exp), nil
}

func (p *parser) term(depth int) (Expr, error) {
	if depth > maxDepth {
		return nil, ErrDepthExceeded
	}
	t, ok := p.peek()
	if !ok {
		return nil, &ParseError{Msg: "unexpected end of expression"}
	}
	switch t.Kind {
	case TokNumber:
		p.pos++
		v, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return nil, &ParseError{Msg: "invalid number: " + t.Text}
		}
		return Num(v), nil
	case TokIdent:
		p.pos++
		return Var(t.Text), nil
	case TokFunc:
		p.pos++
		if err := p.expect(TokLParen); err != nil {
			return nil, err
		}
		arg, err := p.expression(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return Fn(t.Text, arg), nil
	case TokLParen:
		p.pos++
		inner, err := p.expression(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, &ParseError{Msg: "unexpected token: " + t.Text}
}

func (p *parser) expect(kind TokenKind) error {
	t, ok := p.peek()
	if !ok {
		return &ParseError{Msg: "missing closing parenthesis"}
	}
	if t.Kind != kind {
		return &ParseError{Msg: "unexpected token: " + t.Text}
	}
	p.pos++
	return nil
}
