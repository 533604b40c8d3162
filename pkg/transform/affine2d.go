package transform

import (
	"github.com/zeusync/measures/pkg/measure"
	"github.com/zeusync/measures/pkg/num"
)

// AffineMap2d is a 2×3 row-major matrix: a linear part in the first two
// columns followed by a translation column.
type AffineMap2d[N num.Float] struct {
	C [2][3]N
}

func NewAffineMap2d[N num.Float](c [2][3]N) AffineMap2d[N] {
	return AffineMap2d[N]{C: c}
}

func AffineIdentity2d[N num.Float]() AffineMap2d[N] {
	return AffineMap2d[N]{C: [2][3]N{{1, 0, 0}, {0, 1, 0}}}
}

// Translation2d moves every point by v.
func Translation2d[U measure.VectorUnit, N num.Float](v measure.Measure2d[U, N]) AffineMap2d[N] {
	return AffineMap2d[N]{C: [2][3]N{{1, 0, v.X}, {0, 1, v.Y}}}
}

// AffineFromLinear2d lifts l into an affine map without translation.
func AffineFromLinear2d[N num.Float](l LinearMap2d[N]) AffineMap2d[N] {
	return AffineMap2d[N]{C: [2][3]N{
		{l.C[0][0], l.C[0][1], 0},
		{l.C[1][0], l.C[1][1], 0},
	}}
}

// AffineAround2d applies l around the fixed point pivot: pivot is left in
// place and every other point moves as l moves its offset from pivot.
func AffineAround2d[U measure.VectorUnit, N num.Float](l LinearMap2d[N], pivot measure.Point2d[U, N]) AffineMap2d[N] {
	x, y := l.Map(pivot.X, pivot.Y)
	return AffineMap2d[N]{C: [2][3]N{
		{l.C[0][0], l.C[0][1], pivot.X - x},
		{l.C[1][0], l.C[1][1], pivot.Y - y},
	}}
}

// AffineRotation2d rotates counterclockwise by angle around pivot.
func AffineRotation2d[U measure.VectorUnit, A measure.AngleUnit, N num.Float](pivot measure.Point2d[U, N], angle measure.Measure[A, N]) AffineMap2d[N] {
	return AffineAround2d(Rotation2d(angle), pivot)
}

func AffineRotationAtRight2d[U measure.VectorUnit, N num.Float](pivot measure.Point2d[U, N]) AffineMap2d[N] {
	return AffineAround2d(RotationAtRight2d[N](), pivot)
}

func AffineRotationAtLeft2d[U measure.VectorUnit, N num.Float](pivot measure.Point2d[U, N]) AffineMap2d[N] {
	return AffineAround2d(RotationAtLeft2d[N](), pivot)
}

// AffineProjectionOntoLine2d projects onto the line through pivot with unit
// direction v.
func AffineProjectionOntoLine2d[U measure.VectorUnit, N num.Float](pivot measure.Point2d[U, N], v measure.Measure2d[U, N]) AffineMap2d[N] {
	return AffineAround2d(ProjectionOntoLine2d(v), pivot)
}

// AffineReflectionOverLine2d reflects over the line through pivot with unit
// direction v.
func AffineReflectionOverLine2d[U measure.VectorUnit, N num.Float](pivot measure.Point2d[U, N], v measure.Measure2d[U, N]) AffineMap2d[N] {
	return AffineAround2d(ReflectionOverLine2d(v), pivot)
}

func AffineScaling2d[U measure.VectorUnit, N num.Float](pivot measure.Point2d[U, N], factors [2]N) AffineMap2d[N] {
	return AffineAround2d(Scaling2d(factors), pivot)
}

// Linear returns the linear part of m, which is what m does to displacements.
func (m AffineMap2d[N]) Linear() LinearMap2d[N] {
	return LinearMap2d[N]{C: [2][2]N{
		{m.C[0][0], m.C[0][1]},
		{m.C[1][0], m.C[1][1]},
	}}
}

func (m AffineMap2d[N]) Map(x, y N) (N, N) {
	return m.C[0][0]*x + m.C[0][1]*y + m.C[0][2],
		m.C[1][0]*x + m.C[1][1]*y + m.C[1][2]
}

func (m AffineMap2d[N]) Determinant() N {
	return m.Linear().Determinant()
}

func (m AffineMap2d[N]) Inverted() AffineMap2d[N] {
	inv := m.Linear().Inverted()
	x, y := inv.Map(m.C[0][2], m.C[1][2])
	return AffineMap2d[N]{C: [2][3]N{
		{inv.C[0][0], inv.C[0][1], -x},
		{inv.C[1][0], inv.C[1][1], -y},
	}}
}

func (m AffineMap2d[N]) CheckedInverted() (AffineMap2d[N], error) {
	if _, err := m.Linear().CheckedInverted(); err != nil {
		return AffineMap2d[N]{}, err
	}
	return m.Inverted(), nil
}

// CombinedWith returns the map applying other first and then m.
func (m AffineMap2d[N]) CombinedWith(other AffineMap2d[N]) AffineMap2d[N] {
	l := m.Linear().CombinedWith(other.Linear())
	x, y := m.Map(other.C[0][2], other.C[1][2])
	return AffineMap2d[N]{C: [2][3]N{
		{l.C[0][0], l.C[0][1], x},
		{l.C[1][0], l.C[1][1], y},
	}}
}

func (m AffineMap2d[N]) String() string {
	return FormatMatrix([][]N{m.C[0][:], m.C[1][:]}, "")
}

// ApplyToPoint2d transforms the position p.
func ApplyToPoint2d[U measure.VectorUnit, N num.Float](m AffineMap2d[N], p measure.Point2d[U, N]) measure.Point2d[U, N] {
	x, y := m.Map(p.X, p.Y)
	return measure.Point2d[U, N]{X: x, Y: y}
}
