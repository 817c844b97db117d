package calculator

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
	"golang.org/x/exp/slices"
)

// workprec is the precision in bits of intermediate values in functions
// that are computed with big.Float and rounded back to float64.
const workprec = 96

// function is a unary function that can be called by name.
type function struct {
	// name is the canonical name of the function.
	name string
	// f computes the function. a is the unit of angles in arguments to and
	// results from trigonometric functions.
	f func(x float64, a angle) (float64, error)
}

var globalfuncs = map[string]*function{
	"sin":  {"sin", sin},
	"cos":  {"cos", cos},
	"tan":  {"tan", tan},
	"asin": {"asin", asin},
	"acos": {"acos", acos},
	"atan": {"atan", atan},
	"log":  {"log", log10},
	"ln":   {"ln", ln},
	"exp":  {"exp", exp},
	"sqrt": {"sqrt", sqrt},
	"abs":  {"abs", abs},
}

// sqrtglyph is the radical sign, which is sqrt that may take a bare operand.
var sqrtglyph = &function{"√", sqrt}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Funcs returns the names of the functions that expressions can call, in
// sorted order.
func Funcs() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// angle is a unit of angles.
type angle int8

const (
	degrees angle = iota
	radians
)

// quarter returns the number of quarter turns in x degrees, modulo 4, if x
// is an exact multiple of 90.
func quarter(x float64) (int, bool) {
	if math.Mod(x, 90) != 0 {
		return 0, false
	}
	q := math.Mod(x/90, 4)
	if q < 0 {
		q += 4
	}
	return int(q), true
}

// toRadians converts an angle in unit a to radians. Degrees are reduced
// modulo a full turn first so that large angles keep their precision.
func toRadians(x float64, a angle) float64 {
	if a == radians {
		return x
	}
	return math.Mod(x, 360) * math.Pi / 180
}

// fromRadians converts an angle in radians to unit a.
func fromRadians(x float64, a angle) float64 {
	if a == radians {
		return x
	}
	return x * 180 / math.Pi
}

func sin(x float64, a angle) (float64, error) {
	if a == degrees {
		if q, ok := quarter(x); ok {
			return [...]float64{0, 1, 0, -1}[q], nil
		}
	}
	return math.Sin(toRadians(x, a)), nil
}

func cos(x float64, a angle) (float64, error) {
	if a == degrees {
		if q, ok := quarter(x); ok {
			return [...]float64{1, 0, -1, 0}[q], nil
		}
	}
	return math.Cos(toRadians(x, a)), nil
}

func tan(x float64, a angle) (float64, error) {
	if a == degrees {
		if q, ok := quarter(x); ok {
			if q%2 != 0 {
				return 0, &DomainError{X: x, Func: "tan"}
			}
			return 0, nil
		}
	}
	return math.Tan(toRadians(x, a)), nil
}

func asin(x float64, a angle) (float64, error) {
	if x < -1 || x > 1 {
		return 0, &DomainError{X: x, Func: "asin"}
	}
	return fromRadians(math.Asin(x), a), nil
}

func acos(x float64, a angle) (float64, error) {
	if x < -1 || x > 1 {
		return 0, &DomainError{X: x, Func: "acos"}
	}
	return fromRadians(math.Acos(x), a), nil
}

func atan(x float64, a angle) (float64, error) {
	return fromRadians(math.Atan(x), a), nil
}

func sqrt(x float64, _ angle) (float64, error) {
	if x < 0 {
		return 0, &DomainError{X: x, Func: "sqrt"}
	}
	return math.Sqrt(x), nil
}

func abs(x float64, _ angle) (float64, error) {
	return math.Abs(x), nil
}

// bigf creates a big.Float at the working precision.
func bigf(x float64) *big.Float {
	return new(big.Float).SetPrec(workprec).SetFloat64(x)
}

// float rounds a big.Float to the nearest float64.
func float(x *big.Float) float64 {
	r, _ := x.Float64()
	return r
}

func ln(x float64, _ angle) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{X: x, Func: "ln"}
	}
	return float(bigfloat.Log(bigf(0), bigf(x))), nil
}

func log10(x float64, _ angle) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{X: x, Func: "log"}
	}
	r := bigfloat.Log(bigf(0), bigf(x))
	ten := bigfloat.Log(bigf(0), bigf(10))
	return float(r.Quo(r, ten)), nil
}

func exp(x float64, _ angle) (float64, error) {
	// Use the float64 result to detect overflow and underflow before doing
	// the work at higher precision.
	switch r := math.Exp(x); {
	case math.IsInf(r, 0):
		return 0, ErrNonFinite
	case r == 0:
		return 0, nil
	}
	r := float(bigfloat.Exp(bigf(0), bigf(x)))
	if math.IsInf(r, 0) {
		return 0, ErrNonFinite
	}
	return r, nil
}

// pow computes x^y. A negative x requires an integer y.
func pow(x, y float64) (float64, error) {
	switch {
	case y == 0:
		return 1, nil
	case x == 0:
		if y < 0 {
			return 0, ErrDivisionByZero
		}
		return 0, nil
	}
	neg := false
	if x < 0 {
		if y != math.Trunc(y) {
			return 0, &DomainError{X: x, Func: "^"}
		}
		x = -x
		neg = math.Mod(y, 2) != 0
	}
	r := math.Pow(x, y)
	if math.IsInf(r, 0) {
		return 0, ErrNonFinite
	}
	if r != 0 {
		r = float(bigfloat.Pow(bigf(0), bigf(x), bigf(y)))
		if math.IsInf(r, 0) {
			return 0, ErrNonFinite
		}
	}
	if neg {
		r = -r
	}
	return r, nil
}
