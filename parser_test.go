package symath_test

import (
	"errors"
	"strings"
	"testing"

	symath "github.com/symath/symath"
)

// ============================================================
// Parser tests
// ============================================================

func parse(t *testing.T, text string) symath.Expr {
	t.Helper()
	toks, err := symath.Tokenize(text)
	if err != nil {
		t.Fatalf("tokenize %q: %v", text, err)
	}
	e, err := symath.Parse(toks)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return e
}

func parseErr(t *testing.T, text string) error {
	t.Helper()
	toks, err := symath.Tokenize(text)
	if err != nil {
		t.Fatalf("tokenize %q: %v", text, err)
	}
	_, err = symath.Parse(toks)
	if err == nil {
		t.Fatalf("parse %q: want error, got none", text)
	}
	return err
}

func TestParse_Precedence(t *testing.T) {
	e := parse(t, "1+2*3")
	add, ok := e.(*symath.Add)
	if !ok {
		t.Fatalf("want Add at root, got %T", e)
	}
	if _, ok := add.R.(*symath.Mul); !ok {
		t.Errorf("want Mul on the right of +, got %T", add.R)
	}
}

func TestParse_PowerRightAssociative(t *testing.T) {
	e := parse(t, "a^b^c")
	p, ok := e.(*symath.Pow)
	if !ok {
		t.Fatalf("want Pow at root, got %T", e)
	}
	if _, ok := p.Exp.(*symath.Pow); !ok {
		t.Errorf("a^b^c should parse as a^(b^c), exponent is %T", p.Exp)
	}
}

func TestParse_LeftAssociativeSub(t *testing.T) {
	e := parse(t, "1-2-3")
	s, ok := e.(*symath.Sub)
	if !ok {
		t.Fatalf("want Sub at root, got %T", e)
	}
	if _, ok := s.L.(*symath.Sub); !ok {
		t.Errorf("1-2-3 should parse as (1-2)-3, left is %T", s.L)
	}
}

func TestParse_FunctionCall(t *testing.T) {
	e := parse(t, "sin(x+1)")
	f, ok := e.(*symath.FuncCall)
	if !ok {
		t.Fatalf("want FuncCall at root, got %T", e)
	}
	if f.Name != "sin" {
		t.Errorf("want sin, got %s", f.Name)
	}
	if _, ok := f.Arg.(*symath.Add); !ok {
		t.Errorf("want Add argument, got %T", f.Arg)
	}
}

func TestParse_LeadingMinus(t *testing.T) {
	e := parse(t, "-x+1")
	if _, ok := e.(*symath.Add); !ok {
		t.Fatalf("want Add at root, got %T", e)
	}
}

func TestParse_MissingClosingParen(t *testing.T) {
	err := parseErr(t, "(x+1")
	var pe *symath.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("want ParseError, got %v", err)
	}
}

func TestParse_TrailingTokens(t *testing.T) {
	err := parseErr(t, "1+2)")
	var pe *symath.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("want ParseError, got %v", err)
	}
}

func TestParse_EndsMidExpression(t *testing.T) {
	err := parseErr(t, "1+")
	var pe *symath.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("want ParseError, got %v", err)
	}
}

func TestParse_DepthExceeded(t *testing.T) {
	deep := strings.Repeat("(", 300) + "x" + strings.Repeat(")", 300)
	err := parseErr(t, deep)
	if !errors.Is(err, symath.ErrDepthExceeded) {
		t.Errorf("want ErrDepthExceeded, got %v", err)
	}
}
