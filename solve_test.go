package symath_test

import (
	"errors"
	"strings"
	"testing"

	symath "github.com/symath/symath"
)

// ============================================================
// Equation solver tests
// ============================================================

func solved(t *testing.T, eq string) string {
	t.Helper()
	res, err := symath.Solve(eq)
	if err != nil {
		t.Fatalf("solve %q: %v", eq, err)
	}
	return res
}

func TestSolve_Linear(t *testing.T) {
	if got := solved(t, "x-4=0"); got != "x = 4" {
		t.Errorf("want x = 4, got %s", got)
	}
	if got := solved(t, "2x=8"); got != "x = 4" {
		t.Errorf("want x = 4, got %s", got)
	}
}

func TestSolve_DefaultRHSZero(t *testing.T) {
	if got := solved(t, "x-7"); got != "x = 7" {
		t.Errorf("want x = 7, got %s", got)
	}
}

func TestSolve_Quadratic(t *testing.T) {
	if got := solved(t, "x^2-4=0"); got != "x₁ = 2, x₂ = -2" {
		t.Errorf("want x₁ = 2, x₂ = -2, got %s", got)
	}
}

func TestSolve_QuadraticNoRealRoots(t *testing.T) {
	got := solved(t, "x^2+1=0")
	if !strings.Contains(got, "no real roots") {
		t.Errorf("want a no-real-roots report, got %s", got)
	}
}

func TestSolve_CubicThreeRealRoots(t *testing.T) {
	// delta < 0: the trigonometric branch.
	if got := solved(t, "x^3-6x^2+11x-6=0"); got != "x₁ = 3, x₂ = 1, x₃ = 2" {
		t.Errorf("want x₁ = 3, x₂ = 1, x₃ = 2, got %s", got)
	}
}

func TestSolve_CubicSingleRealRoot(t *testing.T) {
	// delta > 0: Cardano's real root.
	if got := solved(t, "x^3+x=0"); got != "x = 0" {
		t.Errorf("want x = 0, got %s", got)
	}
}

func TestSolve_CubicRepeatedRoot(t *testing.T) {
	// delta = 0: one repeated root.
	if got := solved(t, "x^3-3x+2=0"); got != "x₁ = -2, x₂ = 1" {
		t.Errorf("want x₁ = -2, x₂ = 1, got %s", got)
	}
}

func TestSolve_ZeroRootsNeverNegativeZero(t *testing.T) {
	if got := solved(t, "x^2=0"); got != "x₁ = 0, x₂ = 0" {
		t.Errorf("want x₁ = 0, x₂ = 0, got %s", got)
	}
	if got := solved(t, "2x=0"); got != "x = 0" {
		t.Errorf("want x = 0, got %s", got)
	}
}

func TestSolve_NoXTerm(t *testing.T) {
	got := solved(t, "5=5")
	if !strings.Contains(got, "no x term") {
		t.Errorf("want a no-x report, got %s", got)
	}
}

func TestSolve_UnsupportedShape(t *testing.T) {
	got := solved(t, "sin(x)=0")
	if !strings.HasPrefix(got, "unsupported equation") {
		t.Errorf("want an unsupported report, got %s", got)
	}
}

func TestSolve_MalformedInput(t *testing.T) {
	_, err := symath.Solve("x^2-")
	var pe *symath.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("want ParseError, got %v", err)
	}
}
