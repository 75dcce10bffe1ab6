package symath

import (
	"fmt"
	"math"
	"strings"
)

// Solve parses an equation, extracts polynomial coefficients up to degree
// three, and applies the closed-form solution for the leading degree. Input
// without '=' is treated as "<input> = 0". Value-level anomalies (negative
// discriminant, unsupported shape) are reported in the returned string;
// malformed input returns an error.
//
// Coefficient extraction only recognizes the monomial shapes listed on
// termParts, applied over the simplified difference lhs-rhs. Mathematically
// equivalent input outside those shapes (for example an x coefficient hidden
// inside an unexpanded function call) is reported as unsupported rather than
// silently dropped.
func Solve(equation string) (string, error) {
	lhs, rhs := equation, "0"
	if i := strings.Index(equation, "="); i >= 0 {
		lhs, rhs = equation[:i], equation[i+1:]
	}
	left, err := parseText(lhs)
	if err != nil {
		return "", err
	}
	right, err := parseText(rhs)
	if err != nil {
		return "", err
	}
	diff := SubOf(left, right).Simplify()

	coeffs := map[int]float64{}
	if !extractPolyCoeffs(diff, 1, coeffs) {
		return "unsupported equation: " + Render(diff), nil
	}
	a, b, c, d := coeffs[3], coeffs[2], coeffs[1], coeffs[0]
	switch {
	case a != 0:
		return solveCubic(a, b, c, d), nil
	case b != 0:
		return solveQuadratic(b, c, d), nil
	case c != 0:
		return fmt.Sprintf("x = %.4g", normZero(-d/c)), nil
	}
	return "unsupported equation: no x term found", nil
}

func parseText(text string) (Expr, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// extractPolyCoeffs walks an Add/Sub spine and accumulates coefficients by
// degree. Degrees above 3 and shapes outside the recognized monomial set
// fail the walk.
func extractPolyCoeffs(e Expr, sign float64, out map[int]float64) bool {
	switch v := e.(type) {
	case *Add:
		return extractPolyCoeffs(v.L, sign, out) && extractPolyCoeffs(v.R, sign, out)
	case *Sub:
		return extractPolyCoeffs(v.L, sign, out) && extractPolyCoeffs(v.R, -sign, out)
	case *Number:
		out[0] += sign * v.Val
		return true
	}
	coeff, name, pow, ok := termParts(e)
	if !ok || name != "x" {
		return false
	}
	deg := int(pow)
	if float64(deg) != pow || deg < 1 || deg > 3 {
		return false
	}
	out[deg] += sign * coeff
	return true
}

// solveQuadratic solves b*x^2 + c*x + d = 0.
func solveQuadratic(b, c, d float64) string {
	disc := c*c - 4*b*d
	if disc < 0 {
		return "no real roots: discriminant < 0"
	}
	sq := math.Sqrt(disc)
	return fmt.Sprintf("x₁ = %.4g, x₂ = %.4g",
		normZero((-c+sq)/(2*b)), normZero((-c-sq)/(2*b)))
}

// normZero collapses IEEE negative zero so roots never print as -0.
func normZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// solveCubic solves a*x^3 + b*x^2 + c*x + d = 0 via the depressed cubic
// substitution. The sign of delta selects Cardano's real-root form, the
// repeated-root form, or the trigonometric three-root form.
func solveCubic(a, b, c, d float64) string {
	p := (3*a*c - b*b) / (3 * a * a)
	q := (2*b*b*b - 9*a*b*c + 27*a*a*d) / (27 * a * a * a)
	offset := b / (3 * a)
	delta := q*q/4 + p*p*p/27

	switch {
	case delta > 0:
		sq := math.Sqrt(delta)
		root := math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq) - offset
		return fmt.Sprintf("x = %.4g", normZero(root))
	case delta == 0:
		u := math.Cbrt(-q / 2)
		return fmt.Sprintf("x₁ = %.4g, x₂ = %.4g",
			normZero(2*u-offset), normZero(-u-offset))
	}
	r := math.Sqrt(-p * p * p / 27)
	phi := math.Acos(-q / (2 * r))
	t := 2 * math.Sqrt(-p/3)
	roots := make([]float64, 3)
	for k := 0; k < 3; k++ {
		roots[k] = normZero(t*math.Cos((phi+2*math.Pi*float64(k))/3) - offset)
	}
	return fmt.Sprintf("x₁ = %.4g, x₂ = %.4g, x₃ = %.4g", roots[0], roots[1], roots[2])
}
