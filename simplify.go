package symath

import "math"

// Simplification is bottom-up and rule-ordered: constant folding first, then
// identity elimination, power-to-product, distribution over sums, and
// finally like-term collection. The first applicable rule wins; no global
// normal form is sought beyond what the rule list guarantees.

func (n *Number) Simplify() Expr   { return n }
func (v *Variable) Simplify() Expr { return v }

// Simplify reduces the argument only; the function name is never rewritten.
func (f *FuncCall) Simplify() Expr { return Fn(f.Name, f.Arg.Simplify()) }

func (a *Add) Simplify() Expr {
	l := a.L.Simplify()
	r := a.R.Simplify()
	if ln, ok := l.(*Number); ok {
		if rn, ok := r.(*Number); ok {
			return Num(ln.Val + rn.Val)
		}
	}
	if isNum(l, 0) {
		return r
	}
	if isNum(r, 0) {
		return l
	}
	if c, ok := collectLike(l, r, +1); ok {
		return c
	}
	return AddOf(l, r)
}

func (s *Sub) Simplify() Expr {
	l := s.L.Simplify()
	r := s.R.Simplify()
	if ln, ok := l.(*Number); ok {
		if rn, ok := r.(*Number); ok {
			return Num(ln.Val - rn.Val)
		}
	}
	if isNum(r, 0) {
		return l
	}
	if c, ok := collectLike(l, r, -1); ok {
		return c
	}
	return SubOf(l, r)
}

func (m *Mul) Simplify() Expr {
	l := m.L.Simplify()
	r := m.R.Simplify()
	if ln, ok := l.(*Number); ok {
		if rn, ok := r.(*Number); ok {
			return Num(ln.Val * rn.Val)
		}
	}
	if isNum(l, 0) || isNum(r, 0) {
		return Num(0)
	}
	if isNum(l, 1) {
		return r
	}
	if isNum(r, 1) {
		return l
	}
	// Distribute over sums so like terms can recombine.
	if d, ok := distribute(l, r, false); ok {
		return d.Simplify()
	}
	if d, ok := distribute(r, l, true); ok {
		return d.Simplify()
	}
	return MulOf(l, r)
}

// distribute rewrites (a+b)*c as a*c+b*c and c*(a+b) as c*a+c*b, keeping
// the non-sum operand on its original side of each product.
func distribute(sum, other Expr, otherFirst bool) (Expr, bool) {
	mul := func(term Expr) Expr {
		if otherFirst {
			return MulOf(other, term)
		}
		return MulOf(term, other)
	}
	switch v := sum.(type) {
	case *Add:
		return AddOf(mul(v.L), mul(v.R)), true
	case *Sub:
		return SubOf(mul(v.L), mul(v.R)), true
	}
	return nil, false
}

func (d *Div) Simplify() Expr {
	l := d.L.Simplify()
	r := d.R.Simplify()
	if ln, ok := l.(*Number); ok {
		if rn, ok := r.(*Number); ok {
			// Ordinary float semantics; division by zero yields Inf/NaN
			// rather than a fault.
			return Num(ln.Val / rn.Val)
		}
	}
	if isNum(r, 1) {
		return l
	}
	return DivOf(l, r)
}

func (p *Pow) Simplify() Expr {
	base := p.Base.Simplify()
	exp := p.Exp.Simplify()
	if bn, ok := base.(*Number); ok {
		if en, ok := exp.(*Number); ok {
			return Num(math.Pow(bn.Val, en.Val))
		}
	}
	if isNum(exp, 0) {
		return Num(1)
	}
	if isNum(exp, 1) {
		return base
	}
	// x^2 becomes x*x so like-term collection can see it; higher integer
	// powers stay as Pow nodes.
	if isNum(exp, 2) {
		return MulOf(base, base).Simplify()
	}
	return PowOf(base, exp)
}

// collectLike reduces both operands of an Add/Sub to (coefficient, variable,
// power) triples and, when they agree on variable and power, combines the
// coefficients. sign is +1 for Add, -1 for Sub.
func collectLike(l, r Expr, sign float64) (Expr, bool) {
	lc, lname, lpow, ok := termParts(l)
	if !ok {
		return nil, false
	}
	rc, rname, rpow, ok := termParts(r)
	if !ok || lname != rname || lpow != rpow {
		return nil, false
	}
	c := lc + sign*rc
	if c == 0 {
		return Num(0), true
	}
	var body Expr
	switch lpow {
	case 1:
		body = Var(lname)
	case 2:
		// Matches the canonical form produced by the x^2 -> x*x rule.
		body = MulOf(Var(lname), Var(lname))
	default:
		body = PowOf(Var(lname), Num(lpow))
	}
	if c == 1 {
		return body, true
	}
	return MulOf(Num(c), body), true
}

// termParts recognizes the fixed set of monomial shapes used by like-term
// collection and the solver's coefficient walk: a bare variable,
// number*variable, variable^number, number*variable^number, and same-name
// products variable*variable, variable*variable^number,
// variable^number*variable^number. Anything else is not a recognized shape.
func termParts(e Expr) (coeff float64, name string, pow float64, ok bool) {
	switch v := e.(type) {
	case *Variable:
		return 1, v.Name, 1, true
	case *Pow:
		base, bok := v.Base.(*Variable)
		exp, eok := v.Exp.(*Number)
		if bok && eok {
			return 1, base.Name, exp.Val, true
		}
	case *Mul:
		if n, nok := v.L.(*Number); nok {
			c, nm, p, sub := termParts(v.R)
			if sub && c == 1 {
				return n.Val, nm, p, true
			}
			return 0, "", 0, false
		}
		lc, lname, lpow, lok := termParts(v.L)
		rc, rname, rpow, rok := termParts(v.R)
		if lok && rok && lc == 1 && rc == 1 && lname == rname {
			return 1, lname, lpow + rpow, true
		}
	}
	return 0, "", 0, false
}
