// Package num is the numeric backend shared by every measure type.
//
// Values are parameterised over Float, so the same operation set serves single
// and double precision. Operations that have no native float32 implementation in
// the standard library go through float64 and are narrowed back.
package num

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Float is the set of numeric representations a measure can be backed by.
type Float interface {
	constraints.Float
}

func Zero[N Float]() N { return 0 }

func One[N Float]() N { return 1 }

func Half[N Float]() N { return 0.5 }

// Bits reports the width of N, 32 or 64.
func Bits[N Float]() int {
	return reflect.TypeFor[N]().Bits()
}

// Epsilon returns the machine epsilon of N.
func Epsilon[N Float]() N {
	if Bits[N]() == 32 {
		return N(math.Nextafter32(1, 2) - 1)
	}
	return N(math.Nextafter(1, 2) - 1)
}

func Abs[N Float](x N) N { return N(math.Abs(float64(x))) }

// Sign returns -1, 0 or +1 according to the sign of x. NaN is returned unchanged.
func Sign[N Float](x N) N {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

func Sqrt[N Float](x N) N { return N(math.Sqrt(float64(x))) }

func Cbrt[N Float](x N) N { return N(math.Cbrt(float64(x))) }

func Sin[N Float](x N) N { return N(math.Sin(float64(x))) }

func Cos[N Float](x N) N { return N(math.Cos(float64(x))) }

func Tan[N Float](x N) N { return N(math.Tan(float64(x))) }

// SinCos returns sin(x), cos(x).
func SinCos[N Float](x N) (sin, cos N) {
	s, c := math.Sincos(float64(x))
	return N(s), N(c)
}

func Atan2[N Float](y, x N) N { return N(math.Atan2(float64(y), float64(x))) }

// Mod returns the floating-point remainder of x/y with the sign of x.
func Mod[N Float](x, y N) N { return N(math.Mod(float64(x), float64(y))) }

func Hypot[N Float](x, y N) N { return N(math.Hypot(float64(x), float64(y))) }

func Pow[N Float](x, y N) N { return N(math.Pow(float64(x), float64(y))) }

func IsFinite[N Float](x N) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ToDecibels converts an amplitude ratio to decibels: 20·log10(x).
func ToDecibels[N Float](x N) N { return N(20 * math.Log10(float64(x))) }

// FromDecibels is the inverse of ToDecibels: 10^(db/20).
func FromDecibels[N Float](db N) N { return N(math.Pow(10, float64(db)/20)) }

// Sum adds xs in order.
func Sum[N Float](xs ...N) N {
	var total N
	for _, x := range xs {
		total += x
	}
	return total
}
