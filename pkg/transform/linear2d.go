// Package transform provides 2D and 3D linear and affine maps over vector
// measures and measure points.
//
// Maps are unit-erased: their coefficients are pure numbers, so one map can
// transform measures of any vector-capable unit. Composition follows the
// right-to-left convention: a.CombinedWith(b) applies b first, then a.
package transform

import (
	"github.com/zeusync/measures/pkg/measure"
	"github.com/zeusync/measures/pkg/num"
)

// LinearMap2d is a 2×2 row-major matrix.
type LinearMap2d[N num.Float] struct {
	C [2][2]N
}

func NewLinearMap2d[N num.Float](c [2][2]N) LinearMap2d[N] {
	return LinearMap2d[N]{C: c}
}

func Identity2d[N num.Float]() LinearMap2d[N] {
	return LinearMap2d[N]{C: [2][2]N{{1, 0}, {0, 1}}}
}

// Rotation2d rotates counterclockwise by angle.
func Rotation2d[A measure.AngleUnit, N num.Float](angle measure.Measure[A, N]) LinearMap2d[N] {
	sin, cos := measure.SinCos(angle)
	return LinearMap2d[N]{C: [2][2]N{
		{cos, -sin},
		{sin, cos},
	}}
}

// RotationAtRight2d rotates clockwise by a quarter turn.
func RotationAtRight2d[N num.Float]() LinearMap2d[N] {
	return LinearMap2d[N]{C: [2][2]N{{0, 1}, {-1, 0}}}
}

// RotationAtLeft2d rotates counterclockwise by a quarter turn.
func RotationAtLeft2d[N num.Float]() LinearMap2d[N] {
	return LinearMap2d[N]{C: [2][2]N{{0, -1}, {1, 0}}}
}

// Projection2d projects onto the line through the origin forming angle with
// the X axis.
func Projection2d[A measure.AngleUnit, N num.Float](angle measure.Point[A, N]) LinearMap2d[N] {
	sin, cos := measure.SinCos(angle.Measure())
	return projection2d(cos, sin)
}

func ProjectionByUnsignedDirection2d[A measure.AngleUnit, N num.Float](d measure.UnsignedDirection[A, N]) LinearMap2d[N] {
	sin, cos := d.SinCos()
	return projection2d(cos, sin)
}

func ProjectionBySignedDirection2d[A measure.AngleUnit, N num.Float](d measure.SignedDirection[A, N]) LinearMap2d[N] {
	sin, cos := d.SinCos()
	return projection2d(cos, sin)
}

// ProjectionOntoLine2d projects onto the line spanned by the unit vector v.
func ProjectionOntoLine2d[U measure.VectorUnit, N num.Float](v measure.Measure2d[U, N]) LinearMap2d[N] {
	return projection2d(v.X, v.Y)
}

// Reflection2d reflects over the line through the origin forming angle with
// the X axis.
func Reflection2d[A measure.AngleUnit, N num.Float](angle measure.Point[A, N]) LinearMap2d[N] {
	sin, cos := measure.SinCos(angle.Measure())
	return reflection2d(cos, sin)
}

func ReflectionByUnsignedDirection2d[A measure.AngleUnit, N num.Float](d measure.UnsignedDirection[A, N]) LinearMap2d[N] {
	sin, cos := d.SinCos()
	return reflection2d(cos, sin)
}

func ReflectionBySignedDirection2d[A measure.AngleUnit, N num.Float](d measure.SignedDirection[A, N]) LinearMap2d[N] {
	sin, cos := d.SinCos()
	return reflection2d(cos, sin)
}

// ReflectionOverLine2d reflects over the line spanned by the unit vector v.
func ReflectionOverLine2d[U measure.VectorUnit, N num.Float](v measure.Measure2d[U, N]) LinearMap2d[N] {
	return reflection2d(v.X, v.Y)
}

// Scaling2d scales each axis by its own factor.
func Scaling2d[N num.Float](factors [2]N) LinearMap2d[N] {
	return LinearMap2d[N]{C: [2][2]N{{factors[0], 0}, {0, factors[1]}}}
}

func projection2d[N num.Float](cos, sin N) LinearMap2d[N] {
	cs := cos * sin
	return LinearMap2d[N]{C: [2][2]N{
		{cos * cos, cs},
		{cs, sin * sin},
	}}
}

func reflection2d[N num.Float](cos, sin N) LinearMap2d[N] {
	cs2 := 2 * cos * sin
	return LinearMap2d[N]{C: [2][2]N{
		{2*cos*cos - 1, cs2},
		{cs2, 2*sin*sin - 1},
	}}
}

// Map applies the matrix to the raw components (x, y).
func (m LinearMap2d[N]) Map(x, y N) (N, N) {
	return m.C[0][0]*x + m.C[0][1]*y,
		m.C[1][0]*x + m.C[1][1]*y
}

func (m LinearMap2d[N]) Determinant() N {
	return m.C[0][0]*m.C[1][1] - m.C[0][1]*m.C[1][0]
}

// Inverted returns the inverse map. A singular map yields infinite or NaN
// coefficients; use CheckedInverted to detect it.
func (m LinearMap2d[N]) Inverted() LinearMap2d[N] {
	inv := 1 / m.Determinant()
	return LinearMap2d[N]{C: [2][2]N{
		{m.C[1][1] * inv, -m.C[0][1] * inv},
		{-m.C[1][0] * inv, m.C[0][0] * inv},
	}}
}

func (m LinearMap2d[N]) CheckedInverted() (LinearMap2d[N], error) {
	if err := checkDeterminant(m.Determinant(), m.C[0][:], m.C[1][:]); err != nil {
		return LinearMap2d[N]{}, err
	}
	return m.Inverted(), nil
}

// CombinedWith returns the map applying other first and then m.
func (m LinearMap2d[N]) CombinedWith(other LinearMap2d[N]) LinearMap2d[N] {
	var c [2][2]N
	for i := range 2 {
		for j := range 2 {
			c[i][j] = m.C[i][0]*other.C[0][j] + m.C[i][1]*other.C[1][j]
		}
	}
	return LinearMap2d[N]{C: c}
}

func (m LinearMap2d[N]) String() string {
	return FormatMatrix([][]N{m.C[0][:], m.C[1][:]}, "")
}

// ApplyTo2d transforms the vector v.
func ApplyTo2d[U measure.VectorUnit, N num.Float](m LinearMap2d[N], v measure.Measure2d[U, N]) measure.Measure2d[U, N] {
	x, y := m.Map(v.X, v.Y)
	return measure.Measure2d[U, N]{X: x, Y: y}
}
