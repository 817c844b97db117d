package calculator

import (
	"math"
	"strconv"
)

// Option is an option for evaluating expressions.
type Option interface {
	evalOption(*evalctx)
}

// evalctx holds the settings for one evaluation.
type evalctx struct {
	angle angle
}

type angleopt angle

func (o angleopt) evalOption(ctx *evalctx) {
	ctx.angle = angle(o)
}

// Degrees makes trigonometric functions take and return angles in degrees.
// This is the default.
func Degrees() Option {
	return angleopt(degrees)
}

// Radians makes trigonometric functions take and return angles in radians.
func Radians() Option {
	return angleopt(radians)
}

// Eval evaluates the expression. The result is rounded to 12 decimal places,
// which absorbs representation error like 0.1+0.2 != 0.3. Errors are
// *DomainError, ErrDivisionByZero, or ErrNonFinite.
func (e *Expr) Eval(opts ...Option) (float64, error) {
	var ctx evalctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.evalOption(&ctx)
	}
	r, err := e.n.eval(&ctx)
	if err != nil {
		return 0, err
	}
	return round(r), nil
}

// maxround is the magnitude beyond which the spacing of float64 values is
// wider than 1e-12, so rounding to 12 places could only add error.
const maxround = (1 << 53) / 1e12

// round rounds x to 12 decimal places.
func round(x float64) float64 {
	if math.Abs(x) < maxround {
		x = math.Round(x*1e12) / 1e12
	}
	if x == 0 {
		// Normalize negative zero.
		return 0
	}
	return x
}

// eval computes the node's value. Every value it returns without error is
// finite.
func (n *node) eval(ctx *evalctx) (float64, error) {
	var r float64
	switch n.kind {
	case nodeNum:
		r = n.num
	case nodeConst:
		r = constants[n.name]
	case nodeCall:
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err = n.fn.f(x, ctx.angle)
		if err != nil {
			return 0, err
		}
	case nodeNeg:
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r = -x
	case nodeGroup:
		return n.left.eval(ctx)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		rr, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err = binary(n.kind, l, rr)
		if err != nil {
			return 0, err
		}
	default:
		panic("calculator: invalid AST node " + n.kind.String())
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, ErrNonFinite
	}
	return r, nil
}

// binary applies a binary operator.
func binary(op nodeKind, l, r float64) (float64, error) {
	switch op {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	case nodePow:
		return pow(l, r)
	default:
		panic("calculator: invalid binary operator " + op.String())
	}
}

// Evaluate parses and evaluates an expression. Empty input is an
// *EmptyExpressionError, like any other incomplete expression.
func Evaluate(src string, opts ...Option) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(opts...)
}

// IsValidExpression returns whether src evaluates without error.
func IsValidExpression(src string) bool {
	_, err := Evaluate(src)
	return err == nil
}

// FormatResult formats a result for display. Magnitudes of at least 1e15 or
// less than 1e-6, other than zero, are in exponential notation with six
// digits after the point. Anything else is the shortest decimal that
// evaluates to v.
func FormatResult(v float64) string {
	if a := math.Abs(v); a >= 1e15 || a < 1e-6 && v != 0 {
		return strconv.FormatFloat(v, 'e', 6, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
