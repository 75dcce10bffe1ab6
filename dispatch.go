package symath

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// elementaryFuncs are the function names the simplifier and calculus tables
// already know about. A bare call using one of these is an expression to
// simplify, not a function-memory recall.
var elementaryFuncs = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"sec": true, "csc": true, "cot": true,
	"asin": true, "acos": true, "atan": true,
	"exp": true, "ln": true, "log": true,
	"sqrt": true, "abs": true,
}

// Dispatch is the single entry point consumed by the front end. It routes
// one input line by literal prefix sniffing, isolates any internal fault,
// and records the outcome in the engine-health flag. An empty result is
// replaced with a fallback notice.
func (e *Engine) Dispatch(line string) (out string) {
	in := strings.TrimSpace(line)
	e.setFailed(false)

	defer func() {
		if r := recover(); r != nil {
			e.setFailed(true)
			e.log.Warn("dispatch panic", zap.String("input", in), zap.Any("cause", r))
			out = fmt.Sprintf("Error: %v", r)
		}
		if out == "" {
			out = "No result. Internal CAS fallback used."
		}
	}()

	out = e.route(in)
	e.log.Debug("dispatched", zap.String("input", in), zap.String("result", out))
	return out
}

func (e *Engine) route(in string) string {
	switch {
	case strings.HasPrefix(in, "d/d"),
		strings.HasPrefix(in, "d^"),
		strings.HasPrefix(in, "∂/∂"):
		return Differentiate(in)
	case strings.HasPrefix(in, "∫("):
		body := stripSpace(strings.TrimPrefix(in, "∫"))
		body = strings.TrimSuffix(strings.TrimSuffix(body, "dx"), "x")
		inner, ok := innerParens(body)
		if !ok {
			return e.fail("Can't simplify: invalid expression")
		}
		return Integrate(inner)
	case strings.HasPrefix(in, "int("):
		inner, ok := innerParens(stripSpace(in[len("int"):]))
		if !ok {
			return e.fail("Can't simplify: invalid expression")
		}
		if args := splitArgs(inner); len(args) == 3 {
			return definiteIntegral(args[0], args[1], args[2])
		}
		return Integrate(inner)
	case strings.HasPrefix(in, "solve("):
		inner, ok := innerParens(stripSpace(in[len("solve"):]))
		if !ok {
			return e.fail("Can't simplify: invalid expression")
		}
		if !strings.Contains(inner, "=") {
			inner += "=0"
		}
		res, err := Solve(inner)
		if err != nil {
			return e.fail(err.Error())
		}
		return res
	case strings.HasPrefix(in, "let "):
		return e.Define(in)
	case strings.HasPrefix(in, "expand("):
		return e.unary(in, "expand", Expand)
	case strings.HasPrefix(in, "subs("):
		inner, ok := innerParens(stripSpace(in[len("subs"):]))
		if !ok {
			return e.fail("Can't simplify: invalid expression")
		}
		args := splitArgs(inner)
		if len(args) != 3 {
			return "subs requires three arguments: subs(expr, var, val)"
		}
		return Substitute(args[0], args[1], args[2])
	case strings.HasPrefix(in, "factor("):
		return e.unary(in, "factor", Factor)
	case strings.HasPrefix(in, "gcd("):
		return e.binaryInt(in, "gcd", GCD)
	case strings.HasPrefix(in, "lcm("):
		return e.binaryInt(in, "lcm", LCM)
	case strings.HasPrefix(in, "trigid("):
		return e.unary(in, "trigid", TrigIdentity)
	case strings.HasPrefix(in, "simplify("):
		inner, ok := innerParens(stripSpace(in[len("simplify"):]))
		if !ok {
			return e.fail("Can't simplify: invalid expression")
		}
		return e.simplifyOrFail(inner)
	}

	if name, _, ok := parseCall(stripSpace(in)); ok && !elementaryFuncs[name] {
		if e.defined(name) {
			return e.evalFunction(in)
		}
		return "unknown variable or function"
	}
	if e.defined(stripSpace(in)) {
		return e.evalFunction(in)
	}
	return e.simplifyOrFail(in)
}

// unary routes a one-argument helper command such as expand(...) or
// factor(...).
func (e *Engine) unary(in, name string, fn func(string) string) string {
	inner, ok := innerParens(stripSpace(in[len(name):]))
	if !ok {
		return e.fail("Can't simplify: invalid expression")
	}
	return fn(inner)
}

// binaryInt routes a two-argument integer command such as gcd(a, b).
func (e *Engine) binaryInt(in, name string, fn func(a, b string) string) string {
	inner, ok := innerParens(stripSpace(in[len(name):]))
	if !ok {
		return e.fail("Can't simplify: invalid expression")
	}
	args := splitArgs(inner)
	if len(args) != 2 {
		return name + " requires two integers"
	}
	return fn(args[0], args[1])
}

func (e *Engine) simplifyOrFail(text string) string {
	res, err := simplifyText(text)
	if err != nil {
		return e.fail(err.Error())
	}
	return res
}

// fail renders an internal failure and latches the health flag.
func (e *Engine) fail(msg string) string {
	e.setFailed(true)
	e.log.Warn("dispatch failed", zap.String("message", msg))
	return "Error: " + msg
}

// definiteIntegral integrates the expression, substitutes each bound for x,
// and formats the difference of the two evaluations.
func definiteIntegral(expr, lower, upper string) string {
	anti, ok := integrateTerm(stripSpace(expr))
	if !ok {
		return "not supported for: " + anti
	}
	hi := Substitute(anti, "x", stripSpace(upper))
	lo := Substitute(anti, "x", stripSpace(lower))
	return "(" + hi + ") - (" + lo + ")"
}

// splitArgs splits comma-separated arguments at parenthesis depth zero.
func splitArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(s[start:]))
}
