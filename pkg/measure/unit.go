// Package measure provides unit-tagged numeric values: scalar and vector
// measures (differences), measure points (absolute positions) and angular
// directions.
//
// A unit is a zero-size struct type. It never occupies storage inside a value;
// it only lives in the type signature, so adding a Metre to a Second or
// converting a Metre into a Second is rejected by the compiler.
//
// Declaring a property and its units:
//
//	type Length struct{ measure.Vectorial }
//
//	func (Length) Property() Length { return Length{} }
//
//	type Metre struct {
//		Length
//		measure.NoOffset
//	}
//
//	func (Metre) Ratio() float64  { return 1 }
//	func (Metre) Suffix() string  { return "m" }
package measure

import "math"

// Unit describes how a value expressed in a unit maps onto the canonical unit
// (ratio 1) of its property: canonical = value*Ratio() + Offset().
type Unit interface {
	Ratio() float64
	Offset() float64
	Suffix() string
}

// UnitOf constrains units belonging to property P. Two units can be converted
// into one another only if both satisfy UnitOf for the same P.
type UnitOf[P any] interface {
	Unit
	Property() P
}

// VectorUnit is a unit whose property allows 2D and 3D vector measures.
type VectorUnit interface {
	Unit
	VectorProperty()
}

// VectorUnitOf is a vector-capable unit of property P.
type VectorUnitOf[P any] interface {
	UnitOf[P]
	VectorProperty()
}

// AngleUnit is a unit of the Angle property. CycleFraction is the number of
// units making one full turn (360 for degrees, 2π for radians).
type AngleUnit interface {
	UnitOf[Angle]
	CycleFraction() float64
}

// Vectorial is embedded in a property type to mark it vector-capable.
type Vectorial struct{}

func (Vectorial) VectorProperty() {}

// NoOffset is embedded in units whose zero coincides with the canonical zero.
type NoOffset struct{}

func (NoOffset) Offset() float64 { return 0 }

// Angle is the property of plane angles.
type Angle struct{}

func (Angle) Property() Angle { return Angle{} }

// Radian is the canonical angle unit; every angle conversion pivots on it.
type Radian struct {
	Angle
	NoOffset
}

func (Radian) Ratio() float64         { return 1 }
func (Radian) Suffix() string         { return "rad" }
func (Radian) CycleFraction() float64 { return 2 * math.Pi }

type Degree struct {
	Angle
	NoOffset
}

func (Degree) Ratio() float64         { return math.Pi / 180 }
func (Degree) Suffix() string         { return "deg" }
func (Degree) CycleFraction() float64 { return 360 }

type Gradian struct {
	Angle
	NoOffset
}

func (Gradian) Ratio() float64         { return math.Pi / 200 }
func (Gradian) Suffix() string         { return "grad" }
func (Gradian) CycleFraction() float64 { return 400 }

type ArcMinute struct {
	Angle
	NoOffset
}

func (ArcMinute) Ratio() float64         { return math.Pi / (180 * 60) }
func (ArcMinute) Suffix() string         { return "'" }
func (ArcMinute) CycleFraction() float64 { return 360 * 60 }

type ArcSecond struct {
	Angle
	NoOffset
}

func (ArcSecond) Ratio() float64         { return math.Pi / (180 * 3600) }
func (ArcSecond) Suffix() string         { return "\"" }
func (ArcSecond) CycleFraction() float64 { return 360 * 3600 }

// Cycle is one full turn.
type Cycle struct {
	Angle
	NoOffset
}

func (Cycle) Ratio() float64         { return 2 * math.Pi }
func (Cycle) Suffix() string         { return "rev" }
func (Cycle) CycleFraction() float64 { return 1 }

// Dimensionless is the property of pure numbers.
type Dimensionless struct{ Vectorial }

func (Dimensionless) Property() Dimensionless { return Dimensionless{} }

// One is the unit of pure numbers; it renders without a suffix.
type One struct {
	Dimensionless
	NoOffset
}

func (One) Ratio() float64 { return 1 }
func (One) Suffix() string { return "" }

func ratio[U Unit]() float64 {
	var u U
	return u.Ratio()
}

// factor is the multiplier converting a difference expressed in S into D.
func factor[S, D Unit]() float64 {
	var s S
	var d D
	return s.Ratio() / d.Ratio()
}

// shift is the additive term converting a position expressed in S into D.
func shift[S, D Unit]() float64 {
	var s S
	var d D
	return (s.Offset() - d.Offset()) / d.Ratio()
}

func turn[A AngleUnit]() float64 {
	var a A
	return a.CycleFraction()
}

func withSuffix[U Unit](s string) string {
	var u U
	if suffix := u.Suffix(); suffix != "" {
		return s + " " + suffix
	}
	return s
}
