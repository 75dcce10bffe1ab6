// Package symath is a small symbolic-mathematics engine: it tokenizes and
// parses textual expressions into trees, simplifies them, solves polynomial
// equations up to degree three, and provides rule-based differentiation,
// integration, and algebra helpers. The sole entry point for callers is
// (*Engine).Dispatch, which routes one line of input to the right component
// and always returns a displayable string.
package symath

// Expr is the expression tree. It is a closed union: the only
// implementations are the node types in this file. Every leaf is a *Number
// or a *Variable, and every *FuncCall carries exactly one argument tree.
// Nodes are immutable once built; Simplify returns new trees.
type Expr interface {
	// Simplify returns the reduced form of the subtree. It is total and
	// never mutates the receiver.
	Simplify() Expr
	// String renders the subtree as display text.
	String() string
	exprNode()
}

// Number is a numeric literal.
type Number struct{ Val float64 }

// Variable is a named symbol.
type Variable struct{ Name string }

// FuncCall is a named single-argument function application, e.g. sin(x).
type FuncCall struct {
	Name string
	Arg  Expr
}

// Pow is Base^Exp.
type Pow struct{ Base, Exp Expr }

// Mul is L*R.
type Mul struct{ L, R Expr }

// Div is L/R.
type Div struct{ L, R Expr }

// Add is L+R.
type Add struct{ L, R Expr }

// Sub is L-R.
type Sub struct{ L, R Expr }

func (*Number) exprNode()   {}
func (*Variable) exprNode() {}
func (*FuncCall) exprNode() {}
func (*Pow) exprNode()      {}
func (*Mul) exprNode()      {}
func (*Div) exprNode()      {}
func (*Add) exprNode()      {}
func (*Sub) exprNode()      {}

func Num(v float64) *Number { return &Number{Val: v} }
func Var(name string) *Variable { return &Variable{Name: name} }
func Fn(name string, arg Expr) *FuncCall { return &FuncCall{Name: name, Arg: arg} }
func PowOf(base, exp Expr) *Pow { return &Pow{Base: base, Exp: exp} }
func MulOf(l, r Expr) *Mul { return &Mul{L: l, R: r} }
func DivOf(l, r Expr) *Div { return &Div{L: l, R: r} }
func AddOf(l, r Expr) *Add { return &Add{L: l, R: r} }
func SubOf(l, r Expr) *Sub { return &Sub{L: l, R: r} }

func isNum(e Expr, v float64) bool {
	n, ok := e.(*Number)
	return ok && n.Val == v
}
