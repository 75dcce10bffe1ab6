package symath

import "strconv"

// Render returns the display text for a tree. An absent node renders as "?".
func Render(e Expr) string {
	if e == nil {
		return "?"
	}
	return e.String()
}

// formatNum renders the shortest decimal that round-trips, always in fixed
// notation so plain digit literals come back as typed.
func formatNum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func (n *Number) String() string   { return formatNum(n.Val) }
func (v *Variable) String() string { return v.Name }
func (f *FuncCall) String() string { return f.Name + "(" + Render(f.Arg) + ")" }

func (a *Add) String() string {
	// A negative numeric addend reads as a subtraction, not "x+-1".
	if n, ok := a.R.(*Number); ok && n.Val < 0 {
		return Render(a.L) + "-" + formatNum(-n.Val)
	}
	return Render(a.L) + "+" + Render(a.R)
}

func (s *Sub) String() string {
	r := Render(s.R)
	switch s.R.(type) {
	case *Add, *Sub:
		r = "(" + r + ")"
	}
	return Render(s.L) + "-" + r
}

func (m *Mul) String() string {
	// coeff*var renders juxtaposed, with 1 and 0 coefficients canonicalized.
	if n, ok := m.L.(*Number); ok {
		if v, ok := m.R.(*Variable); ok {
			switch n.Val {
			case 0:
				return "0"
			case 1:
				return v.Name
			}
			return formatNum(n.Val) + v.Name
		}
	}
	return mulOperand(m.L) + "*" + mulOperand(m.R)
}

func (d *Div) String() string {
	r := Render(d.R)
	switch d.R.(type) {
	case *Add, *Sub, *Mul, *Div:
		r = "(" + r + ")"
	}
	return mulOperand(d.L) + "/" + r
}

func mulOperand(e Expr) string {
	s := Render(e)
	switch e.(type) {
	case *Add, *Sub:
		return "(" + s + ")"
	}
	return s
}

func (p *Pow) String() string {
	return powOperand(p.Base) + "^" + powOperand(p.Exp)
}

// powOperand parenthesizes anything that is not already atomic.
func powOperand(e Expr) string {
	s := Render(e)
	switch v := e.(type) {
	case *Variable, *FuncCall:
		return s
	case *Number:
		if v.Val < 0 {
			return "(" + s + ")"
		}
		return s
	}
	return "(" + s + ")"
}
