package transform

import (
	"github.com/zeusync/measures/pkg/measure"
	"github.com/zeusync/measures/pkg/num"
)

// AffineMap3d is a 3×4 row-major matrix: a linear part in the first three
// columns followed by a translation column.
type AffineMap3d[N num.Float] struct {
	C [3][4]N
}

func NewAffineMap3d[N num.Float](c [3][4]N) AffineMap3d[N] {
	return AffineMap3d[N]{C: c}
}

func AffineIdentity3d[N num.Float]() AffineMap3d[N] {
	return AffineMap3d[N]{C: [3][4]N{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}}
}

func Translation3d[U measure.VectorUnit, N num.Float](v measure.Measure3d[U, N]) AffineMap3d[N] {
	return AffineMap3d[N]{C: [3][4]N{{1, 0, 0, v.X}, {0, 1, 0, v.Y}, {0, 0, 1, v.Z}}}
}

func AffineFromLinear3d[N num.Float](l LinearMap3d[N]) AffineMap3d[N] {
	return fromLinear3d(l, 0, 0, 0)
}

// AffineAround3d applies l around the fixed point pivot.
func AffineAround3d[U measure.VectorUnit, N num.Float](l LinearMap3d[N], pivot measure.Point3d[U, N]) AffineMap3d[N] {
	x, y, z := l.Map(pivot.X, pivot.Y, pivot.Z)
	return fromLinear3d(l, pivot.X-x, pivot.Y-y, pivot.Z-z)
}

// AffineRotation3d rotates by angle around the axis through pivot with unit
// direction axis.
func AffineRotation3d[U measure.VectorUnit, A measure.AngleUnit, N num.Float](pivot measure.Point3d[U, N], axis measure.Measure3d[U, N], angle measure.Measure[A, N]) AffineMap3d[N] {
	return AffineAround3d(Rotation3d(axis, angle), pivot)
}

func AffineProjectionOntoLine3d[U measure.VectorUnit, N num.Float](pivot measure.Point3d[U, N], u measure.Measure3d[U, N]) AffineMap3d[N] {
	return AffineAround3d(ProjectionOntoLine3d(u), pivot)
}

func AffineProjectionOntoPlane3d[U measure.VectorUnit, N num.Float](pivot measure.Point3d[U, N], n measure.Measure3d[U, N]) AffineMap3d[N] {
	return AffineAround3d(ProjectionOntoPlane3d(n), pivot)
}

func AffineReflectionOverLine3d[U measure.VectorUnit, N num.Float](pivot measure.Point3d[U, N], u measure.Measure3d[U, N]) AffineMap3d[N] {
	return AffineAround3d(ReflectionOverLine3d(u), pivot)
}

func AffineReflectionOverPlane3d[U measure.VectorUnit, N num.Float](pivot measure.Point3d[U, N], n measure.Measure3d[U, N]) AffineMap3d[N] {
	return AffineAround3d(ReflectionOverPlane3d(n), pivot)
}

func AffineScaling3d[U measure.VectorUnit, N num.Float](pivot measure.Point3d[U, N], factors [3]N) AffineMap3d[N] {
	return AffineAround3d(Scaling3d(factors), pivot)
}

func fromLinear3d[N num.Float](l LinearMap3d[N], x, y, z N) AffineMap3d[N] {
	return AffineMap3d[N]{C: [3][4]N{
		{l.C[0][0], l.C[0][1], l.C[0][2], x},
		{l.C[1][0], l.C[1][1], l.C[1][2], y},
		{l.C[2][0], l.C[2][1], l.C[2][2], z},
	}}
}

func (m AffineMap3d[N]) Linear() LinearMap3d[N] {
	return LinearMap3d[N]{C: [3][3]N{
		{m.C[0][0], m.C[0][1], m.C[0][2]},
		{m.C[1][0], m.C[1][1], m.C[1][2]},
		{m.C[2][0], m.C[2][1], m.C[2][2]},
	}}
}

func (m AffineMap3d[N]) Map(x, y, z N) (N, N, N) {
	return m.C[0][0]*x + m.C[0][1]*y + m.C[0][2]*z + m.C[0][3],
		m.C[1][0]*x + m.C[1][1]*y + m.C[1][2]*z + m.C[1][3],
		m.C[2][0]*x + m.C[2][1]*y + m.C[2][2]*z + m.C[2][3]
}

func (m AffineMap3d[N]) Determinant() N {
	return m.Linear().Determinant()
}

func (m AffineMap3d[N]) Inverted() AffineMap3d[N] {
	inv := m.Linear().Inverted()
	x, y, z := inv.Map(m.C[0][3], m.C[1][3], m.C[2][3])
	return fromLinear3d(inv, -x, -y, -z)
}

func (m AffineMap3d[N]) CheckedInverted() (AffineMap3d[N], error) {
	if _, err := m.Linear().CheckedInverted(); err != nil {
		return AffineMap3d[N]{}, err
	}
	return m.Inverted(), nil
}

// CombinedWith returns the map applying other first and then m.
func (m AffineMap3d[N]) CombinedWith(other AffineMap3d[N]) AffineMap3d[N] {
	l := m.Linear().CombinedWith(other.Linear())
	x, y, z := m.Map(other.C[0][3], other.C[1][3], other.C[2][3])
	return fromLinear3d(l, x, y, z)
}

func (m AffineMap3d[N]) String() string {
	return FormatMatrix([][]N{m.C[0][:], m.C[1][:], m.C[2][:]}, "")
}

func ApplyToPoint3d[U measure.VectorUnit, N num.Float](m AffineMap3d[N], p measure.Point3d[U, N]) measure.Point3d[U, N] {
	x, y, z := m.Map(p.X, p.Y, p.Z)
	return measure.Point3d[U, N]{X: x, Y: y, Z: z}
}
