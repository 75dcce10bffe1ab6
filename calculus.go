package symath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// The calculus module works on normalized expression text, never on the
// parsed tree. The two representations are deliberately independent: some
// inputs simplify but do not differentiate, and vice versa. Rules are tried
// in a fixed order (elementary tables, monomials, linear-inner powers,
// additive split, product/quotient split, chain rule) and anything left
// over is reported as unsupported rather than failing.

// derivTable maps an elementary form to its derivative.
var derivTable = map[string]string{
	"x":       "1",
	"sin(x)":  "cos(x)",
	"cos(x)":  "-sin(x)",
	"tan(x)":  "sec(x)^2",
	"sec(x)":  "sec(x)*tan(x)",
	"csc(x)":  "-csc(x)*cot(x)",
	"cot(x)":  "-csc(x)^2",
	"e^x":     "e^x",
	"exp(x)":  "exp(x)",
	"ln(x)":   "1/x",
	"log(x)":  "1/(x*ln(10))",
	"sqrt(x)": "1/(2*sqrt(x))",
	"abs(x)":  "x/abs(x)",
	"asin(x)": "1/sqrt(1-x^2)",
	"acos(x)": "-1/sqrt(1-x^2)",
	"atan(x)": "1/(1+x^2)",
}

// integTable maps an elementary form to its antiderivative, without the
// constant of integration.
var integTable = map[string]string{
	"x":       "x^2/2",
	"sin(x)":  "-cos(x)",
	"cos(x)":  "sin(x)",
	"tan(x)":  "-ln(abs(cos(x)))",
	"sec(x)":  "ln(abs(sec(x)+tan(x)))",
	"csc(x)":  "-ln(abs(csc(x)+cot(x)))",
	"cot(x)":  "ln(abs(sin(x)))",
	"e^x":     "e^x",
	"exp(x)":  "exp(x)",
	"ln(x)":   "x*ln(x)-x",
	"log(x)":  "(x*ln(x)-x)/ln(10)",
	"sqrt(x)": "(2/3)*x^(3/2)",
	"1/x":     "ln(abs(x))",
	"asin(x)": "x*asin(x)+sqrt(1-x^2)",
	"acos(x)": "x*acos(x)-sqrt(1-x^2)",
	"atan(x)": "x*atan(x)-ln(1+x^2)/2",
}

// chainOuter holds the outer-derivative template for the chain rule over a
// recognized linear inner expression.
var chainOuter = map[string]string{
	"sin":  "cos(%s)",
	"cos":  "-sin(%s)",
	"tan":  "sec(%s)^2",
	"sec":  "sec(%s)*tan(%s)",
	"csc":  "-csc(%s)*cot(%s)",
	"cot":  "-csc(%s)^2",
	"exp":  "exp(%s)",
	"ln":   "1/(%s)",
	"sqrt": "1/(2*sqrt(%s))",
}

// integChain holds the antiderivative template for a named function of a
// linear inner expression; the result is divided by the inner slope.
var integChain = map[string]string{
	"sin": "-cos(%s)",
	"cos": "sin(%s)",
	"exp": "exp(%s)",
}

// Differentiate applies the derivative rules to normalized expression text.
// It also recognizes the d/dx(...), d^n/dx^n(...), and partial-derivative
// front doors. Unsupported shapes return a "not supported for:" string;
// only malformed front-door syntax reports an invalid format.
func Differentiate(text string) string {
	s := stripSpace(text)
	switch {
	case strings.HasPrefix(s, "d/d"):
		rest := s[len("d/d"):]
		if len(rest) < 2 || !isLetter(rest[0]) || rest[1] != '(' {
			return "invalid format: expected d/dx(expr)"
		}
		inner, ok := innerParens(rest[1:])
		if !ok {
			return "invalid format: expected d/dx(expr)"
		}
		return diffWithVar(inner, rune(rest[0]))
	case strings.HasPrefix(s, "d^"):
		return nthDerivative(s)
	case strings.HasPrefix(s, "∂/∂"):
		return partialDerivative(s)
	}
	res, ok := diffText(s)
	if !ok {
		return "not supported for: " + res
	}
	return res
}

// Integrate applies the antiderivative rules to normalized expression text
// and appends the constant of integration.
func Integrate(text string) string {
	s := stripSpace(text)
	res, ok := integrateTerm(s)
	if !ok {
		return "not supported for: " + res
	}
	return res + " + C"
}

// nthDerivative recognizes d^n/dx^n(expr) and re-applies differentiation n
// times.
func nthDerivative(s string) string {
	body, ok := strings.CutPrefix(s, "d^")
	if !ok {
		return "invalid format: expected d^n/dx^n(expr)"
	}
	slash := strings.Index(body, "/")
	if slash < 1 {
		return "invalid format: expected d^n/dx^n(expr)"
	}
	n, err := strconv.Atoi(body[:slash])
	if err != nil || n < 1 {
		return "invalid format: expected d^n/dx^n(expr)"
	}
	rest := body[slash+1:]
	want := "dx^" + body[:slash]
	if !strings.HasPrefix(rest, want) || len(rest) <= len(want) || rest[len(want)] != '(' {
		return "invalid format: expected d^n/dx^n(expr)"
	}
	inner, ok := innerParens(rest[len(want):])
	if !ok {
		return "invalid format: expected d^n/dx^n(expr)"
	}
	cur := inner
	for i := 0; i < n; i++ {
		d, ok := diffText(stripSpace(cur))
		if !ok {
			return "not supported for: " + d
		}
		cur = d
	}
	return cur
}

// partialDerivative recognizes ∂/∂v(expr). Partials reduce to ordinary
// single-variable differentiation: the named variable is renamed to x,
// differentiated, and renamed back.
func partialDerivative(s string) string {
	rest := s[len("∂/∂"):]
	v, size := utf8.DecodeRuneInString(rest)
	if v == utf8.RuneError || size == 0 || len(rest) <= size || rest[size] != '(' {
		return "invalid format: expected ∂/∂v(expr)"
	}
	inner, ok := innerParens(rest[size:])
	if !ok {
		return "invalid format: expected ∂/∂v(expr)"
	}
	return diffWithVar(inner, v)
}

func diffWithVar(expr string, v rune) string {
	s := stripSpace(expr)
	if v != 'x' {
		s = strings.ReplaceAll(s, string(v), "x")
	}
	res, ok := diffText(s)
	if !ok {
		return "not supported for: " + res
	}
	if v != 'x' {
		res = strings.ReplaceAll(res, "x", string(v))
	}
	return res
}

// diffText is the ordered rule engine. On failure the returned string is
// the unhandled sub-expression.
func diffText(s string) (string, bool) {
	if s == "" {
		return s, false
	}
	if d, ok := derivTable[s]; ok {
		return d, true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return "0", true
	}
	if a, n, ok := parseMonomial(s); ok {
		return formatMonomial(a*n, n-1), true
	}
	if a, _, n, inner, ok := parseLinearPower(s); ok {
		c := a * n
		if n-1 == 1 {
			return coeffPrefix(c) + "(" + inner + ")", true
		}
		return coeffPrefix(c) + "(" + inner + ")^" + expText(n-1), true
	}
	if terms := splitTopLevel(s); len(terms) > 1 {
		var b strings.Builder
		for i, t := range terms {
			d, ok := diffText(t.text)
			if !ok {
				return d, false
			}
			if i == 0 {
				b.WriteString(d)
			} else if t.sign == '+' {
				b.WriteString(" + " + d)
			} else {
				b.WriteString(" - (" + d + ")")
			}
		}
		return b.String(), true
	}
	// Product/quotient rule. The split point is the first '*' or '/' in the
	// text with no nesting-depth tracking; this is only associativity-correct
	// for two-factor products.
	if i := strings.IndexAny(s, "*/"); i > 0 && i < len(s)-1 {
		u, v := s[:i], s[i+1:]
		du, ok := diffText(u)
		if !ok {
			return du, false
		}
		dv, ok := diffText(v)
		if !ok {
			return dv, false
		}
		if s[i] == '*' {
			return "(" + du + ")*(" + v + ") + (" + u + ")*(" + dv + ")", true
		}
		return "((" + du + ")*(" + v + ") - (" + u + ")*(" + dv + "))/(" + v + ")^2", true
	}
	if name, inner, ok := parseCall(s); ok {
		if tmpl, known := chainOuter[name]; known {
			if a, _, ok := parseLinear(inner); ok {
				outer := fillTemplate(tmpl, inner)
				if a == 1 {
					return outer, true
				}
				return formatNum(a) + "*" + outer, true
			}
		}
	}
	// e^(ax+b)
	if inner, ok := strings.CutPrefix(s, "e^"); ok && len(inner) > 1 && inner[0] == '(' {
		if body, ok := innerParens(inner); ok {
			if a, _, ok := parseLinear(body); ok {
				if a == 1 {
					return "e^(" + body + ")", true
				}
				return formatNum(a) + "*e^(" + body + ")", true
			}
		}
	}
	return s, false
}

// integrateTerm is the antiderivative rule engine; results omit "+ C".
func integrateTerm(s string) (string, bool) {
	if s == "" {
		return s, false
	}
	if f, ok := integTable[s]; ok {
		return f, true
	}
	if c, err := strconv.ParseFloat(s, 64); err == nil {
		return formatMonomial(c, 1), true
	}
	if a, n, ok := parseMonomial(s); ok {
		if n == -1 {
			if a == 1 {
				return "ln(abs(x))", true
			}
			return formatNum(a) + "*ln(abs(x))", true
		}
		c := a / (n + 1)
		if c == float64(int64(c)) {
			return formatMonomial(c, n+1), true
		}
		return formatMonomial(a, n+1) + "/" + formatNum(n+1), true
	}
	if a, _, n, inner, ok := parseLinearPower(s); ok && n != -1 {
		return "(" + inner + ")^" + expText(n+1) + "/" + formatNum(a*(n+1)), true
	}
	if terms := splitTopLevel(s); len(terms) > 1 {
		var b strings.Builder
		for i, t := range terms {
			f, ok := integrateTerm(t.text)
			if !ok {
				return f, false
			}
			if i == 0 {
				b.WriteString(f)
			} else {
				b.WriteString(" " + string(t.sign) + " " + f)
			}
		}
		return b.String(), true
	}
	if name, inner, ok := parseCall(s); ok {
		if tmpl, known := integChain[name]; known {
			if a, _, ok := parseLinear(inner); ok {
				body := fillTemplate(tmpl, inner)
				if a == 1 {
					return body, true
				}
				return body + "/" + formatNum(a), true
			}
		}
	}
	if inner, ok := strings.CutPrefix(s, "e^"); ok && len(inner) > 1 && inner[0] == '(' {
		if body, ok := innerParens(inner); ok {
			if a, _, ok := parseLinear(body); ok {
				if a == 1 {
					return "e^(" + body + ")", true
				}
				return "e^(" + body + ")/" + formatNum(a), true
			}
		}
	}
	return s, false
}

// ---- shared text helpers ----

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

// innerParens returns the contents of s when s is exactly one balanced
// parenthesized group: "(...)".
func innerParens(s string) (string, bool) {
	if len(s) < 2 || s[0] != '(' {
		return "", false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i != len(s)-1 {
					return "", false
				}
				return s[1 : len(s)-1], true
			}
		}
	}
	return "", false
}

type signedTerm struct {
	sign byte
	text string
}

// splitTopLevel splits at '+'/'-' outside parentheses. Signs that belong to
// an exponent or follow another operator are not split points.
func splitTopLevel(s string) []signedTerm {
	var terms []signedTerm
	depth := 0
	start := 0
	sign := byte('+')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '+', '-':
			if depth != 0 || i == 0 {
				continue
			}
			if prev := s[i-1]; strings.IndexByte("*/^(+-", prev) >= 0 {
				continue
			}
			terms = append(terms, signedTerm{sign, s[start:i]})
			sign = s[i]
			start = i + 1
		}
	}
	terms = append(terms, signedTerm{sign, s[start:]})
	return terms
}

// parseMonomial recognizes a*x^n, a*x, ax, x^n, x^(n), and x, returning
// the coefficient and exponent.
func parseMonomial(s string) (coeff, exp float64, ok bool) {
	i := strings.IndexByte(s, 'x')
	if i < 0 || strings.IndexByte(s[i+1:], 'x') >= 0 {
		return 0, 0, false
	}
	coeff = 1
	switch head := strings.TrimSuffix(s[:i], "*"); head {
	case "":
	case "-":
		coeff = -1
	default:
		v, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return 0, 0, false
		}
		coeff = v
	}
	rest := s[i+1:]
	if rest == "" {
		return coeff, 1, true
	}
	if rest[0] != '^' {
		return 0, 0, false
	}
	expStr := rest[1:]
	if inner, wrapped := innerParens(expStr); wrapped {
		expStr = inner
	}
	v, err := strconv.ParseFloat(expStr, 64)
	if err != nil {
		return 0, 0, false
	}
	return coeff, v, true
}

// parseLinear recognizes a*x+b shapes: "x", "ax", "a*x", "ax+b", "ax-b",
// "x+b", "x-b".
func parseLinear(s string) (a, b float64, ok bool) {
	terms := splitTopLevel(s)
	if len(terms) > 2 {
		return 0, 0, false
	}
	a, exp, ok := parseMonomial(terms[0].text)
	if !ok || exp != 1 {
		return 0, 0, false
	}
	if len(terms) == 1 {
		return a, 0, true
	}
	v, err := strconv.ParseFloat(terms[1].text, 64)
	if err != nil {
		return 0, 0, false
	}
	if terms[1].sign == '-' {
		v = -v
	}
	return a, v, true
}

// parseLinearPower recognizes (a*x+b)^n, returning the inner slope,
// intercept, exponent, and the inner source text.
func parseLinearPower(s string) (a, b, n float64, inner string, ok bool) {
	if len(s) == 0 || s[0] != '(' {
		return 0, 0, 0, "", false
	}
	depth := 0
	end := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '(' {
			depth++
		} else if s[i] == ')' {
			depth--
			if depth == 0 {
				end = i
				break
			}
		}
	}
	if end < 0 || end+1 >= len(s) || s[end+1] != '^' {
		return 0, 0, 0, "", false
	}
	expStr := s[end+2:]
	if in, wrapped := innerParens(expStr); wrapped {
		expStr = in
	}
	n, err := strconv.ParseFloat(expStr, 64)
	if err != nil {
		return 0, 0, 0, "", false
	}
	inner = s[1:end]
	a, b, ok = parseLinear(inner)
	if !ok {
		return 0, 0, 0, "", false
	}
	return a, b, n, inner, true
}

// parseCall recognizes name(inner) spanning the whole string.
func parseCall(s string) (name, inner string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 1 {
		return "", "", false
	}
	for i := 0; i < open; i++ {
		if !isLetter(s[i]) {
			return "", "", false
		}
	}
	body, ok := innerParens(s[open:])
	if !ok {
		return "", "", false
	}
	return s[:open], body, true
}

func fillTemplate(tmpl, inner string) string {
	n := strings.Count(tmpl, "%s")
	args := make([]any, n)
	for i := range args {
		args[i] = inner
	}
	return fmt.Sprintf(tmpl, args...)
}

// formatMonomial renders coeff*x^exp in display form.
func formatMonomial(coeff, exp float64) string {
	if exp == 0 || coeff == 0 {
		return formatNum(coeff)
	}
	head := ""
	switch coeff {
	case 1:
	case -1:
		head = "-"
	default:
		head = formatNum(coeff)
	}
	if exp == 1 {
		return head + "x"
	}
	return head + "x^" + expText(exp)
}

// expText parenthesizes negative or fractional exponents.
func expText(e float64) string {
	s := formatNum(e)
	if e < 0 || e != float64(int64(e)) {
		return "(" + s + ")"
	}
	return s
}

func coeffPrefix(c float64) string {
	switch c {
	case 1:
		return ""
	case -1:
		return "-"
	}
	return formatNum(c)
}
