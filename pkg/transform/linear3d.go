package transform

import (
	"github.com/zeusync/measures/pkg/measure"
	"github.com/zeusync/measures/pkg/num"
)

// LinearMap3d is a 3×3 row-major matrix.
type LinearMap3d[N num.Float] struct {
	C [3][3]N
}

func NewLinearMap3d[N num.Float](c [3][3]N) LinearMap3d[N] {
	return LinearMap3d[N]{C: c}
}

func Identity3d[N num.Float]() LinearMap3d[N] {
	return LinearMap3d[N]{C: [3][3]N{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Rotation3d rotates by angle around the unit vector axis, counterclockwise
// when looking from the tip of the axis towards the origin.
func Rotation3d[A measure.AngleUnit, U measure.VectorUnit, N num.Float](axis measure.Measure3d[U, N], angle measure.Measure[A, N]) LinearMap3d[N] {
	sin, cos := measure.SinCos(angle)
	t := 1 - cos
	x, y, z := axis.X, axis.Y, axis.Z
	return LinearMap3d[N]{C: [3][3]N{
		{cos + x*x*t, x*y*t - z*sin, x*z*t + y*sin},
		{x*y*t + z*sin, cos + y*y*t, y*z*t - x*sin},
		{x*z*t - y*sin, y*z*t + x*sin, cos + z*z*t},
	}}
}

// ProjectionOntoLine3d projects onto the line spanned by the unit vector u.
func ProjectionOntoLine3d[U measure.VectorUnit, N num.Float](u measure.Measure3d[U, N]) LinearMap3d[N] {
	return LinearMap3d[N]{C: outer(u)}
}

// ProjectionOntoPlane3d projects onto the plane through the origin whose unit
// normal is n.
func ProjectionOntoPlane3d[U measure.VectorUnit, N num.Float](n measure.Measure3d[U, N]) LinearMap3d[N] {
	return Identity3d[N]().plus(outer(n), -1)
}

// ReflectionOverLine3d reflects over the line spanned by the unit vector u.
func ReflectionOverLine3d[U measure.VectorUnit, N num.Float](u measure.Measure3d[U, N]) LinearMap3d[N] {
	m := LinearMap3d[N]{}.plus(outer(u), 2)
	return m.plus(Identity3d[N]().C, -1)
}

// ReflectionOverPlane3d reflects over the plane through the origin whose unit
// normal is n.
func ReflectionOverPlane3d[U measure.VectorUnit, N num.Float](n measure.Measure3d[U, N]) LinearMap3d[N] {
	return Identity3d[N]().plus(outer(n), -2)
}

func Scaling3d[N num.Float](factors [3]N) LinearMap3d[N] {
	return LinearMap3d[N]{C: [3][3]N{
		{factors[0], 0, 0},
		{0, factors[1], 0},
		{0, 0, factors[2]},
	}}
}

func outer[U measure.VectorUnit, N num.Float](u measure.Measure3d[U, N]) [3][3]N {
	v := [3]N{u.X, u.Y, u.Z}
	var c [3][3]N
	for i := range 3 {
		for j := range 3 {
			c[i][j] = v[i] * v[j]
		}
	}
	return c
}

// plus returns m + k·c.
func (m LinearMap3d[N]) plus(c [3][3]N, k N) LinearMap3d[N] {
	for i := range 3 {
		for j := range 3 {
			m.C[i][j] += k * c[i][j]
		}
	}
	return m
}

func (m LinearMap3d[N]) Map(x, y, z N) (N, N, N) {
	return m.C[0][0]*x + m.C[0][1]*y + m.C[0][2]*z,
		m.C[1][0]*x + m.C[1][1]*y + m.C[1][2]*z,
		m.C[2][0]*x + m.C[2][1]*y + m.C[2][2]*z
}

func (m LinearMap3d[N]) Determinant() N {
	c := m.C
	return c[0][0]*(c[1][1]*c[2][2]-c[1][2]*c[2][1]) -
		c[0][1]*(c[1][0]*c[2][2]-c[1][2]*c[2][0]) +
		c[0][2]*(c[1][0]*c[2][1]-c[1][1]*c[2][0])
}

// Inverted returns the inverse map computed from the adjugate. A singular map
// yields infinite or NaN coefficients; use CheckedInverted to detect it.
func (m LinearMap3d[N]) Inverted() LinearMap3d[N] {
	c := m.C
	inv := 1 / m.Determinant()
	return LinearMap3d[N]{C: [3][3]N{
		{
			(c[1][1]*c[2][2] - c[1][2]*c[2][1]) * inv,
			(c[0][2]*c[2][1] - c[0][1]*c[2][2]) * inv,
			(c[0][1]*c[1][2] - c[0][2]*c[1][1]) * inv,
		},
		{
			(c[1][2]*c[2][0] - c[1][0]*c[2][2]) * inv,
			(c[0][0]*c[2][2] - c[0][2]*c[2][0]) * inv,
			(c[0][2]*c[1][0] - c[0][0]*c[1][2]) * inv,
		},
		{
			(c[1][0]*c[2][1] - c[1][1]*c[2][0]) * inv,
			(c[0][1]*c[2][0] - c[0][0]*c[2][1]) * inv,
			(c[0][0]*c[1][1] - c[0][1]*c[1][0]) * inv,
		},
	}}
}

func (m LinearMap3d[N]) CheckedInverted() (LinearMap3d[N], error) {
	if err := checkDeterminant(m.Determinant(), m.C[0][:], m.C[1][:], m.C[2][:]); err != nil {
		return LinearMap3d[N]{}, err
	}
	return m.Inverted(), nil
}

// CombinedWith returns the map applying other first and then m.
func (m LinearMap3d[N]) CombinedWith(other LinearMap3d[N]) LinearMap3d[N] {
	var c [3][3]N
	for i := range 3 {
		for j := range 3 {
			c[i][j] = m.C[i][0]*other.C[0][j] + m.C[i][1]*other.C[1][j] + m.C[i][2]*other.C[2][j]
		}
	}
	return LinearMap3d[N]{C: c}
}

func (m LinearMap3d[N]) String() string {
	return FormatMatrix([][]N{m.C[0][:], m.C[1][:], m.C[2][:]}, "")
}

// ApplyTo3d transforms the vector v.
func ApplyTo3d[U measure.VectorUnit, N num.Float](m LinearMap3d[N], v measure.Measure3d[U, N]) measure.Measure3d[U, N] {
	x, y, z := m.Map(v.X, v.Y, v.Z)
	return measure.Measure3d[U, N]{X: x, Y: y, Z: z}
}
