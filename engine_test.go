package symath_test

import (
	"testing"

	symath "github.com/symath/symath"
)

// ============================================================
// Function memory tests
// ============================================================

func TestDefine_Constant(t *testing.T) {
	e := symath.NewEngine()
	if got := e.Dispatch("let a = 5"); got != "defined a" {
		t.Errorf("want defined a, got %s", got)
	}
	if got := e.Dispatch("a"); got != "5" {
		t.Errorf("want 5, got %s", got)
	}
}

func TestDefine_Function(t *testing.T) {
	e := symath.NewEngine()
	if got := e.Dispatch("let f(x) = x^2 + 1"); got != "defined f(x)" {
		t.Errorf("want defined f(x), got %s", got)
	}
	if got := e.Dispatch("f(3)"); got != "10" {
		t.Errorf("want 10, got %s", got)
	}
}

func TestDefine_RedefinitionOverwrites(t *testing.T) {
	e := symath.NewEngine()
	e.Dispatch("let g(x) = x + 1")
	e.Dispatch("let g(x) = x + 2")
	if got := e.Dispatch("g(1)"); got != "3" {
		t.Errorf("want 3, got %s", got)
	}
}

func TestDefine_Invalid(t *testing.T) {
	e := symath.NewEngine()
	if got := e.Dispatch("let = 5"); got != "invalid definition" {
		t.Errorf("want invalid definition, got %s", got)
	}
	if got := e.Dispatch("let h(x) x^2"); got != "invalid definition" {
		t.Errorf("want invalid definition, got %s", got)
	}
}

func TestEval_UnknownFunction(t *testing.T) {
	e := symath.NewEngine()
	if got := e.Dispatch("f(2)"); got != "unknown variable or function" {
		t.Errorf("want unknown variable or function, got %s", got)
	}
}

func TestEval_ElementaryNameFallsToSimplify(t *testing.T) {
	e := symath.NewEngine()
	if got := e.Dispatch("sin(x+0)"); got != "sin(x)" {
		t.Errorf("want sin(x), got %s", got)
	}
}
