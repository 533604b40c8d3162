package measure

import (
	"cmp"

	"github.com/zeusync/measures/pkg/num"
)

// Measure is a scalar difference expressed in unit U.
type Measure[U Unit, N num.Float] struct {
	Value N
}

// New creates a measure of value expressed in U.
func New[U Unit, N num.Float](value N) Measure[U, N] {
	return Measure[U, N]{Value: value}
}

func (m Measure[U, N]) Add(other Measure[U, N]) Measure[U, N] {
	return Measure[U, N]{Value: m.Value + other.Value}
}

func (m Measure[U, N]) Sub(other Measure[U, N]) Measure[U, N] {
	return Measure[U, N]{Value: m.Value - other.Value}
}

func (m Measure[U, N]) Neg() Measure[U, N] {
	return Measure[U, N]{Value: -m.Value}
}

// Mul scales the measure by a pure number.
func (m Measure[U, N]) Mul(k N) Measure[U, N] {
	return Measure[U, N]{Value: m.Value * k}
}

// Div divides the measure by a pure number. Dividing by zero yields an
// infinite or NaN value.
func (m Measure[U, N]) Div(k N) Measure[U, N] {
	return Measure[U, N]{Value: m.Value / k}
}

// CheckedDiv is the strict form of Div.
func (m Measure[U, N]) CheckedDiv(k N) (Measure[U, N], error) {
	v, err := num.CheckedDiv(m.Value, k)
	return Measure[U, N]{Value: v}, err
}

// Ratio returns m/other as a pure number.
func (m Measure[U, N]) Ratio(other Measure[U, N]) N {
	return m.Value / other.Value
}

func (m Measure[U, N]) Abs() Measure[U, N] {
	return Measure[U, N]{Value: num.Abs(m.Value)}
}

func (m Measure[U, N]) Min(other Measure[U, N]) Measure[U, N] {
	return Measure[U, N]{Value: min(m.Value, other.Value)}
}

func (m Measure[U, N]) Max(other Measure[U, N]) Measure[U, N] {
	return Measure[U, N]{Value: max(m.Value, other.Value)}
}

// Clamp limits m to the closed interval [lo, hi].
func (m Measure[U, N]) Clamp(lo, hi Measure[U, N]) Measure[U, N] {
	return Measure[U, N]{Value: min(max(m.Value, lo.Value), hi.Value)}
}

// Compare returns -1, 0 or +1; NaN sorts before every other value.
func (m Measure[U, N]) Compare(other Measure[U, N]) int {
	return cmp.Compare(m.Value, other.Value)
}

func (m Measure[U, N]) Less(other Measure[U, N]) bool {
	return m.Value < other.Value
}

func (m Measure[U, N]) Equal(other Measure[U, N]) bool {
	return m.Value == other.Value
}

// Decibels expresses the value as 20·log10(value).
func (m Measure[U, N]) Decibels() N {
	return num.ToDecibels(m.Value)
}

// FromDecibels creates a measure whose value is 10^(db/20).
func FromDecibels[U Unit, N num.Float](db N) Measure[U, N] {
	return Measure[U, N]{Value: num.FromDecibels(db)}
}

// LosslessInto widens the backing number to float64.
func (m Measure[U, N]) LosslessInto() Measure[U, float64] {
	return Measure[U, float64]{Value: float64(m.Value)}
}

// LossyInto narrows the backing number to float32.
func (m Measure[U, N]) LossyInto() Measure[U, float32] {
	return Measure[U, float32]{Value: float32(m.Value)}
}

// String renders "<value>[ <suffix>]".
func (m Measure[U, N]) String() string {
	return withSuffix[U](num.Format(m.Value))
}

// Sum adds measures of the same unit.
func Sum[U Unit, N num.Float](measures ...Measure[U, N]) Measure[U, N] {
	var total Measure[U, N]
	for _, m := range measures {
		total.Value += m.Value
	}
	return total
}

// Cos returns the cosine of an angle measure.
func Cos[A AngleUnit, N num.Float](m Measure[A, N]) N {
	return num.Cos(radians[A](m.Value))
}

func Sin[A AngleUnit, N num.Float](m Measure[A, N]) N {
	return num.Sin(radians[A](m.Value))
}

func Tan[A AngleUnit, N num.Float](m Measure[A, N]) N {
	return num.Tan(radians[A](m.Value))
}

// SinCos returns the sine and the cosine of an angle measure.
func SinCos[A AngleUnit, N num.Float](m Measure[A, N]) (sin, cos N) {
	return num.SinCos(radians[A](m.Value))
}

func radians[A AngleUnit, N num.Float](v N) N {
	return v * N(ratio[A]())
}
