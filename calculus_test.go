package symath_test

import (
	"strings"
	"testing"

	symath "github.com/symath/symath"
)

// ============================================================
// Differentiation tests
// ============================================================

func TestDifferentiate_Elementary(t *testing.T) {
	cases := map[string]string{
		"x":      "1",
		"sin(x)": "cos(x)",
		"cos(x)": "-sin(x)",
		"tan(x)": "sec(x)^2",
		"e^x":    "e^x",
		"ln(x)":  "1/x",
	}
	for in, want := range cases {
		if got := symath.Differentiate(in); got != want {
			t.Errorf("d/dx %s: want %s, got %s", in, want, got)
		}
	}
}

func TestDifferentiate_Constant(t *testing.T) {
	if got := symath.Differentiate("7"); got != "0" {
		t.Errorf("want 0, got %s", got)
	}
}

func TestDifferentiate_PowerRule(t *testing.T) {
	if got := symath.Differentiate("x^3"); got != "3x^2" {
		t.Errorf("want 3x^2, got %s", got)
	}
	if got := symath.Differentiate("2x^3"); got != "6x^2" {
		t.Errorf("want 6x^2, got %s", got)
	}
	if got := symath.Differentiate("5x"); got != "5" {
		t.Errorf("want 5, got %s", got)
	}
}

func TestDifferentiate_Sum(t *testing.T) {
	if got := symath.Differentiate("x^2 + sin(x)"); got != "2x + cos(x)" {
		t.Errorf("want 2x + cos(x), got %s", got)
	}
	if got := symath.Differentiate("x^2 - x"); got != "2x - (1)" {
		t.Errorf("want 2x - (1), got %s", got)
	}
}

func TestDifferentiate_ProductRule(t *testing.T) {
	got := symath.Differentiate("x^2*sin(x)")
	want := "(2x)*(sin(x)) + (x^2)*(cos(x))"
	if got != want {
		t.Errorf("want %s, got %s", want, got)
	}
}

func TestDifferentiate_QuotientRule(t *testing.T) {
	got := symath.Differentiate("sin(x)/x")
	want := "((cos(x))*(x) - (sin(x))*(1))/(x)^2"
	if got != want {
		t.Errorf("want %s, got %s", want, got)
	}
}

func TestDifferentiate_ChainRule(t *testing.T) {
	if got := symath.Differentiate("sin(3x)"); got != "3*cos(3x)" {
		t.Errorf("want 3*cos(3x), got %s", got)
	}
	if got := symath.Differentiate("cos(x+1)"); got != "-sin(x+1)" {
		t.Errorf("want -sin(x+1), got %s", got)
	}
}

func TestDifferentiate_LinearPower(t *testing.T) {
	if got := symath.Differentiate("(2x+1)^3"); got != "6(2x+1)^2" {
		t.Errorf("want 6(2x+1)^2, got %s", got)
	}
}

func TestDifferentiate_ExpLinear(t *testing.T) {
	if got := symath.Differentiate("e^(3x)"); got != "3*e^(3x)" {
		t.Errorf("want 3*e^(3x), got %s", got)
	}
}

func TestDifferentiate_FrontDoor(t *testing.T) {
	if got := symath.Differentiate("d/dx(x^2)"); got != "2x" {
		t.Errorf("want 2x, got %s", got)
	}
}

func TestDifferentiate_NthOrder(t *testing.T) {
	if got := symath.Differentiate("d^2/dx^2(x^3)"); got != "6x" {
		t.Errorf("want 6x, got %s", got)
	}
	if got := symath.Differentiate("d^3/dx^3(x^3)"); got != "6" {
		t.Errorf("want 6, got %s", got)
	}
}

func TestDifferentiate_NthOrderMalformed(t *testing.T) {
	got := symath.Differentiate("d^2/dy^2(x)")
	if !strings.HasPrefix(got, "invalid format") {
		t.Errorf("want an invalid-format report, got %s", got)
	}
}

func TestDifferentiate_Partial(t *testing.T) {
	if got := symath.Differentiate("∂/∂y(y^2)"); got != "2y" {
		t.Errorf("want 2y, got %s", got)
	}
	if got := symath.Differentiate("∂/∂z(z^3)"); got != "3z^2" {
		t.Errorf("want 3z^2, got %s", got)
	}
}

func TestDifferentiate_PartialMalformed(t *testing.T) {
	got := symath.Differentiate("∂/∂(x)")
	if !strings.HasPrefix(got, "invalid format") {
		t.Errorf("want an invalid-format report, got %s", got)
	}
}

func TestDifferentiate_Unsupported(t *testing.T) {
	got := symath.Differentiate("sinh(x)")
	if !strings.HasPrefix(got, "not supported for:") {
		t.Errorf("want a not-supported report, got %s", got)
	}
}

// ============================================================
// Integration tests
// ============================================================

func TestIntegrate_Elementary(t *testing.T) {
	cases := map[string]string{
		"sin(x)": "-cos(x) + C",
		"cos(x)": "sin(x) + C",
		"x":      "x^2/2 + C",
		"1/x":    "ln(abs(x)) + C",
	}
	for in, want := range cases {
		if got := symath.Integrate(in); got != want {
			t.Errorf("∫ %s: want %s, got %s", in, want, got)
		}
	}
}

func TestIntegrate_PowerRule(t *testing.T) {
	if got := symath.Integrate("x^2"); got != "x^3/3 + C" {
		t.Errorf("want x^3/3 + C, got %s", got)
	}
	if got := symath.Integrate("3x^2"); got != "x^3 + C" {
		t.Errorf("want x^3 + C, got %s", got)
	}
	if got := symath.Integrate("5"); got != "5x + C" {
		t.Errorf("want 5x + C, got %s", got)
	}
}

func TestIntegrate_Sum(t *testing.T) {
	if got := symath.Integrate("2x + cos(x)"); got != "x^2 + sin(x) + C" {
		t.Errorf("want x^2 + sin(x) + C, got %s", got)
	}
}

func TestIntegrate_ChainLinear(t *testing.T) {
	if got := symath.Integrate("sin(2x)"); got != "-cos(2x)/2 + C" {
		t.Errorf("want -cos(2x)/2 + C, got %s", got)
	}
	if got := symath.Integrate("e^(2x)"); got != "e^(2x)/2 + C" {
		t.Errorf("want e^(2x)/2 + C, got %s", got)
	}
}

func TestIntegrate_Unsupported(t *testing.T) {
	got := symath.Integrate("sin(x)*cos(x)")
	if !strings.HasPrefix(got, "not supported for:") {
		t.Errorf("want a not-supported report, got %s", got)
	}
}

func TestIntegrate_InvertsDifferentiate(t *testing.T) {
	// For monomials a*x^n the antiderivative of the derivative recovers the
	// original term up to the constant.
	for _, expr := range []string{"x^2", "2x^3", "x^4", "3x^2"} {
		d := symath.Differentiate(expr)
		got := symath.Integrate(d)
		if got != expr+" + C" {
			t.Errorf("∫ d/dx %s: want %s + C, got %s", expr, expr, got)
		}
	}
}
