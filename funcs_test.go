package calculator

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/slices"
)

func TestPow(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		r    float64
		err  error
	}{
		{"int", 2, 3, 8, nil},
		{"zeroexp", 5, 0, 1, nil},
		{"zerozero", 0, 0, 1, nil},
		{"zerobase", 0, 2, 0, nil},
		{"negeven", -2, 2, 4, nil},
		{"negodd", -2, 3, -8, nil},
		{"negexp", 2, -2, 0.25, nil},
		{"root", 9, 0.5, 3, nil},
		{"underflow", 10, -400, 0, nil},
		{"zeroneg", 0, -1, 0, ErrDivisionByZero},
		{"overflow", 10, 400, 0, ErrNonFinite},
		{"negoverflow", -10, 401, 0, ErrNonFinite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := pow(c.x, c.y)
			if !errors.Is(err, c.err) {
				t.Fatalf("%g^%g: want error %v, got %v", c.x, c.y, c.err, err)
			}
			if r != c.r {
				t.Errorf("%g^%g: want %g, got %g", c.x, c.y, c.r, r)
			}
		})
	}
}

func TestPowDomain(t *testing.T) {
	for _, y := range []float64{0.5, 1.0 / 3, -0.25} {
		_, err := pow(-8, y)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("-8^%g: want *DomainError, got %v", y, err)
			continue
		}
		if de.Func != "^" || de.X != -8 {
			t.Errorf("-8^%g: wrong domain error %v", y, de)
		}
	}
}

func TestQuarter(t *testing.T) {
	cases := []struct {
		x  float64
		q  int
		ok bool
	}{
		{0, 0, true},
		{90, 1, true},
		{180, 2, true},
		{270, 3, true},
		{360, 0, true},
		{450, 1, true},
		{-90, 3, true},
		{-180, 2, true},
		{-270, 1, true},
		{45, 0, false},
		{90.5, 0, false},
	}
	for _, c := range cases {
		q, ok := quarter(c.x)
		if q != c.q || ok != c.ok {
			t.Errorf("quarter(%g): want %d, %t; got %d, %t", c.x, c.q, c.ok, q, ok)
		}
	}
}

func TestTrigExact(t *testing.T) {
	cases := []struct {
		name string
		f    func(float64, angle) (float64, error)
		x    float64
		r    float64
	}{
		{"sin", sin, 0, 0},
		{"sin", sin, 90, 1},
		{"sin", sin, 180, 0},
		{"sin", sin, 270, -1},
		{"sin", sin, -90, -1},
		{"sin", sin, 3600, 0},
		{"cos", cos, 0, 1},
		{"cos", cos, 90, 0},
		{"cos", cos, 180, -1},
		{"cos", cos, 270, 0},
		{"cos", cos, -180, -1},
		{"tan", tan, 0, 0},
		{"tan", tan, 180, 0},
		{"tan", tan, -360, 0},
	}
	for _, c := range cases {
		r, err := c.f(c.x, degrees)
		if err != nil {
			t.Errorf("%s(%g): unexpected error %v", c.name, c.x, err)
			continue
		}
		if r != c.r {
			t.Errorf("%s(%g): want exactly %g, got %g", c.name, c.x, c.r, r)
		}
	}
	for _, x := range []float64{90, 270, -90, 450} {
		if _, err := tan(x, degrees); err == nil {
			t.Errorf("tan(%g) gave no error", x)
		}
	}
	// Radians have no exact points.
	if r, err := tan(90, radians); err != nil || r != math.Tan(90) {
		t.Errorf("tan(90 rad): want %g, got %g, %v", math.Tan(90), r, err)
	}
}

func TestAngleUnits(t *testing.T) {
	const eps = 1e-12
	cases := []struct {
		name string
		f    func(float64, angle) (float64, error)
		x    float64
		a    angle
		r    float64
	}{
		{"sin", sin, 30, degrees, 0.5},
		{"sin", sin, math.Pi / 6, radians, 0.5},
		{"cos", cos, 60, degrees, 0.5},
		{"tan", tan, 45, degrees, 1},
		{"asin", asin, 0.5, degrees, 30},
		{"asin", asin, 0.5, radians, math.Pi / 6},
		{"acos", acos, -1, degrees, 180},
		{"atan", atan, -1, degrees, -45},
		{"atan", atan, 1, radians, math.Pi / 4},
	}
	for _, c := range cases {
		r, err := c.f(c.x, c.a)
		if err != nil {
			t.Errorf("%s(%g): unexpected error %v", c.name, c.x, err)
			continue
		}
		if math.Abs(r-c.r) > eps {
			t.Errorf("%s(%g): want %g, got %g", c.name, c.x, c.r, r)
		}
	}
}

func TestLogExp(t *testing.T) {
	const eps = 1e-15
	cases := []struct {
		name string
		f    func(float64, angle) (float64, error)
		x    float64
		r    float64
	}{
		{"ln", ln, 1, 0},
		{"ln", ln, math.E, 1},
		{"log", log10, 1000, 3},
		{"log", log10, 1e-5, -5},
		{"exp", exp, 0, 1},
		{"exp", exp, 1, math.E},
		{"exp", exp, -1000, 0},
	}
	for _, c := range cases {
		r, err := c.f(c.x, degrees)
		if err != nil {
			t.Errorf("%s(%g): unexpected error %v", c.name, c.x, err)
			continue
		}
		if math.Abs(r-c.r) > eps*math.Max(1, math.Abs(c.r)) {
			t.Errorf("%s(%g): want %g, got %g", c.name, c.x, c.r, r)
		}
	}
	if _, err := exp(710, degrees); !errors.Is(err, ErrNonFinite) {
		t.Errorf("exp(710): want %v, got %v", ErrNonFinite, err)
	}
}

func TestFuncsSorted(t *testing.T) {
	names := Funcs()
	if len(names) != len(globalfuncs) {
		t.Errorf("want %d names, got %v", len(globalfuncs), names)
	}
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, name := range names {
		if f := globalfuncs[name]; f == nil || f.name != name {
			t.Errorf("%q has wrong function %v", name, f)
		}
	}
	if _, ok := constants["e"]; !ok {
		t.Error("no constant e")
	}
}
