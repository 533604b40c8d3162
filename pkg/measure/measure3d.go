package measure

import "github.com/zeusync/measures/pkg/num"

// Measure3d is a spatial vector difference expressed in unit U.
type Measure3d[U VectorUnit, N num.Float] struct {
	X, Y, Z N
}

func New3d[U VectorUnit, N num.Float](x, y, z N) Measure3d[U, N] {
	return Measure3d[U, N]{X: x, Y: y, Z: z}
}

func (v Measure3d[U, N]) Add(other Measure3d[U, N]) Measure3d[U, N] {
	return Measure3d[U, N]{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Measure3d[U, N]) Sub(other Measure3d[U, N]) Measure3d[U, N] {
	return Measure3d[U, N]{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Measure3d[U, N]) Neg() Measure3d[U, N] {
	return Measure3d[U, N]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Measure3d[U, N]) Mul(k N) Measure3d[U, N] {
	return Measure3d[U, N]{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

func (v Measure3d[U, N]) Div(k N) Measure3d[U, N] {
	return Measure3d[U, N]{X: v.X / k, Y: v.Y / k, Z: v.Z / k}
}

func (v Measure3d[U, N]) CheckedDiv(k N) (Measure3d[U, N], error) {
	if k == 0 {
		return v.Div(k), num.NewDomainError("measure3d div", float64(k), nil)
	}
	return v.Div(k), nil
}

func (v Measure3d[U, N]) Equal(other Measure3d[U, N]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

func (v Measure3d[U, N]) XMeasure() Measure[U, N] { return Measure[U, N]{Value: v.X} }
func (v Measure3d[U, N]) YMeasure() Measure[U, N] { return Measure[U, N]{Value: v.Y} }
func (v Measure3d[U, N]) ZMeasure() Measure[U, N] { return Measure[U, N]{Value: v.Z} }

func (v Measure3d[U, N]) Components() [3]N { return [3]N{v.X, v.Y, v.Z} }

func (v Measure3d[U, N]) SquaredNorm() N {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Measure3d[U, N]) Norm() Measure[U, N] {
	return Measure[U, N]{Value: num.Sqrt(v.SquaredNorm())}
}

// Normalized returns the vector scaled to unit length. A zero vector yields
// NaN components.
func (v Measure3d[U, N]) Normalized() Measure3d[U, N] {
	return v.Div(num.Sqrt(v.SquaredNorm()))
}

func (v Measure3d[U, N]) CheckedNormalized() (Measure3d[U, N], error) {
	if v.SquaredNorm() == 0 {
		return v.Normalized(), num.NewDomainError("measure3d normalize", 0, nil)
	}
	return v.Normalized(), nil
}

func (v Measure3d[U, N]) LosslessInto() Measure3d[U, float64] {
	return Measure3d[U, float64]{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func (v Measure3d[U, N]) LossyInto() Measure3d[U, float32] {
	return Measure3d[U, float32]{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// String renders "(<x>, <y>, <z>)[ <suffix>]".
func (v Measure3d[U, N]) String() string {
	return withSuffix[U]("(" + num.Format(v.X) + ", " + num.Format(v.Y) + ", " + num.Format(v.Z) + ")")
}
