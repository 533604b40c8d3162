package measure

import "github.com/zeusync/measures/pkg/num"

// Measure2d is a planar vector difference expressed in unit U.
type Measure2d[U VectorUnit, N num.Float] struct {
	X, Y N
}

func New2d[U VectorUnit, N num.Float](x, y N) Measure2d[U, N] {
	return Measure2d[U, N]{X: x, Y: y}
}

// FromDirection returns the unit vector pointing at angle, measured
// counterclockwise from the X axis.
func FromDirection[U VectorUnit, A AngleUnit, N num.Float](angle Point[A, N]) Measure2d[U, N] {
	sin, cos := num.SinCos(radians[A](angle.Value))
	return Measure2d[U, N]{X: cos, Y: sin}
}

func FromUnsignedDirection[U VectorUnit, A AngleUnit, N num.Float](d UnsignedDirection[A, N]) Measure2d[U, N] {
	return FromDirection[U](d.Point())
}

func FromSignedDirection[U VectorUnit, A AngleUnit, N num.Float](d SignedDirection[A, N]) Measure2d[U, N] {
	return FromDirection[U](d.Point())
}

func (v Measure2d[U, N]) Add(other Measure2d[U, N]) Measure2d[U, N] {
	return Measure2d[U, N]{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Measure2d[U, N]) Sub(other Measure2d[U, N]) Measure2d[U, N] {
	return Measure2d[U, N]{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Measure2d[U, N]) Neg() Measure2d[U, N] {
	return Measure2d[U, N]{X: -v.X, Y: -v.Y}
}

func (v Measure2d[U, N]) Mul(k N) Measure2d[U, N] {
	return Measure2d[U, N]{X: v.X * k, Y: v.Y * k}
}

func (v Measure2d[U, N]) Div(k N) Measure2d[U, N] {
	return Measure2d[U, N]{X: v.X / k, Y: v.Y / k}
}

// CheckedDiv is the strict form of Div.
func (v Measure2d[U, N]) CheckedDiv(k N) (Measure2d[U, N], error) {
	if k == 0 {
		return v.Div(k), num.NewDomainError("measure2d div", float64(k), nil)
	}
	return v.Div(k), nil
}

func (v Measure2d[U, N]) Equal(other Measure2d[U, N]) bool {
	return v.X == other.X && v.Y == other.Y
}

// XMeasure returns the X component as a scalar measure.
func (v Measure2d[U, N]) XMeasure() Measure[U, N] { return Measure[U, N]{Value: v.X} }

// YMeasure returns the Y component as a scalar measure.
func (v Measure2d[U, N]) YMeasure() Measure[U, N] { return Measure[U, N]{Value: v.Y} }

func (v Measure2d[U, N]) Components() [2]N { return [2]N{v.X, v.Y} }

// SquaredNorm returns x²+y² as a pure number.
func (v Measure2d[U, N]) SquaredNorm() N {
	return v.X*v.X + v.Y*v.Y
}

// Norm returns the length of the vector.
func (v Measure2d[U, N]) Norm() Measure[U, N] {
	return Measure[U, N]{Value: num.Sqrt(v.SquaredNorm())}
}

// Normalized returns the vector scaled to unit length. A zero vector yields
// NaN components.
func (v Measure2d[U, N]) Normalized() Measure2d[U, N] {
	return v.Div(num.Sqrt(v.SquaredNorm()))
}

// CheckedNormalized is the strict form of Normalized.
func (v Measure2d[U, N]) CheckedNormalized() (Measure2d[U, N], error) {
	if v.SquaredNorm() == 0 {
		return v.Normalized(), num.NewDomainError("measure2d normalize", 0, nil)
	}
	return v.Normalized(), nil
}

// SignedDirection returns the polar angle of the vector in [-π, π).
func (v Measure2d[U, N]) SignedDirection() SignedDirection[Radian, N] {
	return NewSignedDirection[Radian](num.Atan2(v.Y, v.X))
}

// UnsignedDirection returns the polar angle of the vector in [0, 2π).
func (v Measure2d[U, N]) UnsignedDirection() UnsignedDirection[Radian, N] {
	return NewUnsignedDirection[Radian](num.Atan2(v.Y, v.X))
}

func (v Measure2d[U, N]) LosslessInto() Measure2d[U, float64] {
	return Measure2d[U, float64]{X: float64(v.X), Y: float64(v.Y)}
}

func (v Measure2d[U, N]) LossyInto() Measure2d[U, float32] {
	return Measure2d[U, float32]{X: float32(v.X), Y: float32(v.Y)}
}

// String renders "(<x>, <y>)[ <suffix>]".
func (v Measure2d[U, N]) String() string {
	return withSuffix[U]("(" + num.Format(v.X) + ", " + num.Format(v.Y) + ")")
}
