// Package units is a ready-made set of SI and customary units together with
// the operators generated from relations.yaml.
//
//	force := measure.New2d[units.Newton](3.5, -6.0)
//	arm := measure.New2d[units.Metre](17.0, 7.8)
//	torque := units.CrossNewton2dByMetre2d(force, arm) // 129.3 N·m
package units

import (
	"math"

	"github.com/zeusync/measures/pkg/measure"
)

//go:generate go run ../../cmd/unitsgen generate relations.yaml

// Angles and pure numbers come from package measure.
type (
	Radian    = measure.Radian
	Degree    = measure.Degree
	Gradian   = measure.Gradian
	ArcMinute = measure.ArcMinute
	ArcSecond = measure.ArcSecond
	Cycle     = measure.Cycle
	One       = measure.One
)

type Length struct{ measure.Vectorial }

func (Length) Property() Length { return Length{} }

type Metre struct {
	Length
	measure.NoOffset
}

func (Metre) Ratio() float64 { return 1 }
func (Metre) Suffix() string { return "m" }

type Kilometre struct {
	Length
	measure.NoOffset
}

func (Kilometre) Ratio() float64 { return 1000 }
func (Kilometre) Suffix() string { return "km" }

type Centimetre struct {
	Length
	measure.NoOffset
}

func (Centimetre) Ratio() float64 { return 0.01 }
func (Centimetre) Suffix() string { return "cm" }

type Millimetre struct {
	Length
	measure.NoOffset
}

func (Millimetre) Ratio() float64 { return 0.001 }
func (Millimetre) Suffix() string { return "mm" }

type Inch struct {
	Length
	measure.NoOffset
}

func (Inch) Ratio() float64 { return 0.0254 }
func (Inch) Suffix() string { return "in" }

type Foot struct {
	Length
	measure.NoOffset
}

func (Foot) Ratio() float64 { return 0.3048 }
func (Foot) Suffix() string { return "ft" }

type Mile struct {
	Length
	measure.NoOffset
}

func (Mile) Ratio() float64 { return 1609.344 }
func (Mile) Suffix() string { return "mi" }

type NauticalMile struct {
	Length
	measure.NoOffset
}

func (NauticalMile) Ratio() float64 { return 1852 }
func (NauticalMile) Suffix() string { return "nmi" }

// Area is vector-capable: the 3D cross product of two lengths is an oriented
// area.
type Area struct{ measure.Vectorial }

func (Area) Property() Area { return Area{} }

type SquareMetre struct {
	Area
	measure.NoOffset
}

func (SquareMetre) Ratio() float64 { return 1 }
func (SquareMetre) Suffix() string { return "m²" }

type Hectare struct {
	Area
	measure.NoOffset
}

func (Hectare) Ratio() float64 { return 10000 }
func (Hectare) Suffix() string { return "ha" }

type Time struct{}

func (Time) Property() Time { return Time{} }

type Second struct {
	Time
	measure.NoOffset
}

func (Second) Ratio() float64 { return 1 }
func (Second) Suffix() string { return "s" }

type Millisecond struct {
	Time
	measure.NoOffset
}

func (Millisecond) Ratio() float64 { return 0.001 }
func (Millisecond) Suffix() string { return "ms" }

type Minute struct {
	Time
	measure.NoOffset
}

func (Minute) Ratio() float64 { return 60 }
func (Minute) Suffix() string { return "min" }

type Hour struct {
	Time
	measure.NoOffset
}

func (Hour) Ratio() float64 { return 3600 }
func (Hour) Suffix() string { return "h" }

type Frequency struct{}

func (Frequency) Property() Frequency { return Frequency{} }

type Hertz struct {
	Frequency
	measure.NoOffset
}

func (Hertz) Ratio() float64 { return 1 }
func (Hertz) Suffix() string { return "Hz" }

type Kilohertz struct {
	Frequency
	measure.NoOffset
}

func (Kilohertz) Ratio() float64 { return 1000 }
func (Kilohertz) Suffix() string { return "kHz" }

type Mass struct{}

func (Mass) Property() Mass { return Mass{} }

type Kilogram struct {
	Mass
	measure.NoOffset
}

func (Kilogram) Ratio() float64 { return 1 }
func (Kilogram) Suffix() string { return "kg" }

type Gram struct {
	Mass
	measure.NoOffset
}

func (Gram) Ratio() float64 { return 0.001 }
func (Gram) Suffix() string { return "g" }

type Pound struct {
	Mass
	measure.NoOffset
}

func (Pound) Ratio() float64 { return 0.45359237 }
func (Pound) Suffix() string { return "lb" }

type Speed struct{ measure.Vectorial }

func (Speed) Property() Speed { return Speed{} }

type MetrePerSecond struct {
	Speed
	measure.NoOffset
}

func (MetrePerSecond) Ratio() float64 { return 1 }
func (MetrePerSecond) Suffix() string { return "m/s" }

type KilometrePerHour struct {
	Speed
	measure.NoOffset
}

func (KilometrePerHour) Ratio() float64 { return 1000. / 3600. }
func (KilometrePerHour) Suffix() string { return "km/h" }

type Knot struct {
	Speed
	measure.NoOffset
}

func (Knot) Ratio() float64 { return 1852. / 3600. }
func (Knot) Suffix() string { return "kt" }

type Acceleration struct{ measure.Vectorial }

func (Acceleration) Property() Acceleration { return Acceleration{} }

type MetrePerSecondSquared struct {
	Acceleration
	measure.NoOffset
}

func (MetrePerSecondSquared) Ratio() float64 { return 1 }
func (MetrePerSecondSquared) Suffix() string { return "m/s²" }

type Force struct{ measure.Vectorial }

func (Force) Property() Force { return Force{} }

type Newton struct {
	Force
	measure.NoOffset
}

func (Newton) Ratio() float64 { return 1 }
func (Newton) Suffix() string { return "N" }

type PoundForce struct {
	Force
	measure.NoOffset
}

func (PoundForce) Ratio() float64 { return 4.4482216152605 }
func (PoundForce) Suffix() string { return "lbf" }

type Energy struct{}

func (Energy) Property() Energy { return Energy{} }

type Joule struct {
	Energy
	measure.NoOffset
}

func (Joule) Ratio() float64 { return 1 }
func (Joule) Suffix() string { return "J" }

type KilowattHour struct {
	Energy
	measure.NoOffset
}

func (KilowattHour) Ratio() float64 { return 3.6e6 }
func (KilowattHour) Suffix() string { return "kWh" }

type Power struct{}

func (Power) Property() Power { return Power{} }

type Watt struct {
	Power
	measure.NoOffset
}

func (Watt) Ratio() float64 { return 1 }
func (Watt) Suffix() string { return "W" }

type Kilowatt struct {
	Power
	measure.NoOffset
}

func (Kilowatt) Ratio() float64 { return 1000 }
func (Kilowatt) Suffix() string { return "kW" }

// Torque is vector-capable: the 3D cross product of a force and a lever arm is
// a torque vector.
type Torque struct{ measure.Vectorial }

func (Torque) Property() Torque { return Torque{} }

type NewtonMetre struct {
	Torque
	measure.NoOffset
}

func (NewtonMetre) Ratio() float64 { return 1 }
func (NewtonMetre) Suffix() string { return "N·m" }

type AngularSpeed struct{}

func (AngularSpeed) Property() AngularSpeed { return AngularSpeed{} }

type RadianPerSecond struct {
	AngularSpeed
	measure.NoOffset
}

func (RadianPerSecond) Ratio() float64 { return 1 }
func (RadianPerSecond) Suffix() string { return "rad/s" }

type RevolutionPerMinute struct {
	AngularSpeed
	measure.NoOffset
}

func (RevolutionPerMinute) Ratio() float64 { return 2 * math.Pi / 60 }
func (RevolutionPerMinute) Suffix() string { return "rpm" }

type Temperature struct{}

func (Temperature) Property() Temperature { return Temperature{} }

type Kelvin struct {
	Temperature
	measure.NoOffset
}

func (Kelvin) Ratio() float64 { return 1 }
func (Kelvin) Suffix() string { return "K" }

type Celsius struct{ Temperature }

func (Celsius) Ratio() float64  { return 1 }
func (Celsius) Offset() float64 { return 273.15 }
func (Celsius) Suffix() string  { return "°C" }

type Fahrenheit struct{ Temperature }

func (Fahrenheit) Ratio() float64  { return 5. / 9. }
func (Fahrenheit) Offset() float64 { return 273.15 - 32.*5./9. }
func (Fahrenheit) Suffix() string  { return "°F" }
