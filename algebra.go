package symath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Expand multiplies out the recognized binomial power shapes (x+a)^2,
// (ax+b)^2, and (x+a)^3. Anything else is unsupported.
func Expand(text string) string {
	s := stripSpace(text)
	a, b, n, _, ok := parseLinearPower(s)
	if !ok {
		return "not supported for: " + s
	}
	switch {
	case n == 2:
		return polyText([]float64{a * a, 2 * a * b, b * b})
	case n == 3 && a == 1:
		return polyText([]float64{1, 3 * b, 3 * b * b, b * b * b})
	}
	return "not supported for: " + s
}

// polyText renders descending-degree coefficients as polynomial text.
func polyText(coeffs []float64) string {
	var b strings.Builder
	deg := len(coeffs) - 1
	for i, c := range coeffs {
		e := float64(deg - i)
		if c == 0 {
			continue
		}
		term := formatMonomial(c, e)
		if b.Len() == 0 {
			b.WriteString(term)
			continue
		}
		if strings.HasPrefix(term, "-") {
			b.WriteString(" - " + term[1:])
		} else {
			b.WriteString(" + " + term)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Factor factors a quadratic a*x^2+b*x+c over the reals.
func Factor(text string) string {
	s := stripSpace(text)
	a, b, c, ok := quadraticCoeffs(s)
	if !ok || a == 0 {
		return "not supported for: " + s
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return "irreducible over the reals"
	}
	sq := math.Sqrt(disc)
	r1 := (-b + sq) / (2 * a)
	r2 := (-b - sq) / (2 * a)
	prefix := ""
	if a != 1 {
		prefix = formatNum(a)
	}
	return prefix + factorText(r1) + factorText(r2)
}

func factorText(root float64) string {
	if root < 0 {
		return "(x + " + formatNum(-root) + ")"
	}
	return "(x - " + formatNum(root) + ")"
}

// quadraticCoeffs reads a*x^2+b*x+c from text, using the monomial shapes.
func quadraticCoeffs(s string) (a, b, c float64, ok bool) {
	for _, t := range splitTopLevel(s) {
		sign := 1.0
		if t.sign == '-' {
			sign = -1
		}
		if v, err := strconv.ParseFloat(t.text, 64); err == nil {
			c += sign * v
			continue
		}
		coeff, exp, mok := parseMonomial(t.text)
		if !mok {
			return 0, 0, 0, false
		}
		switch exp {
		case 2:
			a += sign * coeff
		case 1:
			b += sign * coeff
		default:
			return 0, 0, 0, false
		}
	}
	return a, b, c, true
}

// Substitute replaces every occurrence of varName in expr with the
// parenthesized value. A purely arithmetic result is evaluated numerically;
// otherwise the substituted text is returned as-is.
func Substitute(expr, varName, value string) string {
	expr = stripSpace(expr)
	varName = stripSpace(varName)
	value = stripSpace(value)
	if varName == "" {
		return "not supported for: empty variable"
	}
	out := strings.ReplaceAll(expr, varName, "("+value+")")
	if isArithmetic(out) {
		if e, err := parseText(out); err == nil {
			if n, ok := e.Simplify().(*Number); ok {
				return formatNum(n.Val)
			}
		}
	}
	return out
}

func isArithmetic(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && c != '.' && strings.IndexByte("+-*/^()", c) < 0 {
			return false
		}
	}
	return s != ""
}

// GCD computes the greatest common divisor of two integers written as text.
func GCD(aText, bText string) string {
	a, b, err := twoInts(aText, bText)
	if err != nil {
		return "gcd requires two integers"
	}
	return fmt.Sprintf("%d", gcdInt(a, b))
}

// LCM computes the least common multiple as |a*b| / gcd(a,b).
func LCM(aText, bText string) string {
	a, b, err := twoInts(aText, bText)
	if err != nil {
		return "lcm requires two integers"
	}
	g := gcdInt(a, b)
	if g == 0 {
		return "lcm requires nonzero integers"
	}
	p := a * b
	if p < 0 {
		p = -p
	}
	return fmt.Sprintf("%d", p/g)
}

func twoInts(aText, bText string) (int64, int64, error) {
	a, err := strconv.ParseInt(strings.TrimSpace(aText), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseInt(strings.TrimSpace(bText), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func gcdInt(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// trigIdentities is the fixed double-angle/half-angle lookup.
var trigIdentities = map[string]string{
	"sin(2x)":  "2sin(x)cos(x)",
	"cos(2x)":  "cos^2(x) - sin^2(x)",
	"tan(2x)":  "2tan(x)/(1 - tan^2(x))",
	"sin^2(x)": "(1 - cos(2x))/2",
	"cos^2(x)": "(1 + cos(2x))/2",
}

// TrigIdentity looks up one of the fixed trigonometric identities.
func TrigIdentity(text string) string {
	s := stripSpace(text)
	if id, ok := trigIdentities[s]; ok {
		return id
	}
	return "not supported for: " + s
}
