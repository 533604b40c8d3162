package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/zeusync/measures/pkg/measure"
	"github.com/zeusync/measures/pkg/num"
)

type length struct{ measure.Vectorial }

func (length) Property() length { return length{} }

type metre struct {
	length
	measure.NoOffset
}

func (metre) Ratio() float64 { return 1 }
func (metre) Suffix() string { return "m" }

const delta = 1e-12

func assertLinear2d(t *testing.T, want, got LinearMap2d[float64]) {
	t.Helper()
	for i := range 2 {
		for j := range 2 {
			assert.InDelta(t, want.C[i][j], got.C[i][j], delta, "c[%d][%d]", i, j)
		}
	}
}

func assertLinear3d(t *testing.T, want, got LinearMap3d[float64]) {
	t.Helper()
	for i := range 3 {
		for j := range 3 {
			assert.InDelta(t, want.C[i][j], got.C[i][j], delta, "c[%d][%d]", i, j)
		}
	}
}

func TestRotation2d(t *testing.T) {
	v := measure.New2d[metre](8.0, 5.0)

	got := ApplyTo2d(Rotation2d(measure.New[measure.Degree](90.0)), v)
	assert.InDelta(t, -5.0, got.X, delta)
	assert.InDelta(t, 8.0, got.Y, delta)

	assert.Equal(t, measure.New2d[metre](-5.0, 8.0), ApplyTo2d(RotationAtLeft2d[float64](), v))
	assert.Equal(t, measure.New2d[metre](5.0, -8.0), ApplyTo2d(RotationAtRight2d[float64](), v))

	r32 := ApplyTo2d(Rotation2d(measure.New[measure.Cycle, float32](0.5)), measure.New2d[metre, float32](1, 0))
	assert.InDelta(t, -1.0, float64(r32.X), 1e-6)
	assert.InDelta(t, 0.0, float64(r32.Y), 1e-6)
}

func TestProjectionAndReflection2d(t *testing.T) {
	v := measure.New2d[metre](2.0, 0.0)

	p := ApplyTo2d(Projection2d(measure.NewPoint[measure.Degree](45.0)), v)
	assert.InDelta(t, 1.0, p.X, delta)
	assert.InDelta(t, 1.0, p.Y, delta)

	byDirection := ProjectionByUnsignedDirection2d(measure.NewUnsignedDirection[measure.Degree](405.0))
	assertLinear2d(t, Projection2d(measure.NewPoint[measure.Degree](45.0)), byDirection)

	bySigned := ReflectionBySignedDirection2d(measure.NewSignedDirection[measure.Degree](-180.0))
	assertLinear2d(t, Scaling2d([2]float64{1, -1}), bySigned)

	r := ApplyTo2d(Reflection2d(measure.NewPoint[measure.Degree](0.0)), measure.New2d[metre](3.0, 4.0))
	assert.InDelta(t, 3.0, r.X, delta)
	assert.InDelta(t, -4.0, r.Y, delta)

	axis := measure.New2d[metre](0.0, 1.0)
	assert.Equal(t, measure.New2d[metre](0.0, 4.0), ApplyTo2d(ProjectionOntoLine2d(axis), measure.New2d[metre](3.0, 4.0)))
	assert.Equal(t, measure.New2d[metre](-3.0, 4.0), ApplyTo2d(ReflectionOverLine2d(axis), measure.New2d[metre](3.0, 4.0)))

	// Reflecting twice restores the input.
	refl := ReflectionByUnsignedDirection2d(measure.NewUnsignedDirection[measure.Degree](33.0))
	assertLinear2d(t, Identity2d[float64](), refl.CombinedWith(refl))
}

func TestLinear2dComposition(t *testing.T) {
	r30 := Rotation2d(measure.New[measure.Degree](30.0))
	r60 := Rotation2d(measure.New[measure.Degree](60.0))
	assertLinear2d(t, Rotation2d(measure.New[measure.Degree](90.0)), r30.CombinedWith(r60))

	// Scaling then rotating differs from rotating then scaling.
	s := Scaling2d([2]float64{2, 1})
	v := measure.New2d[metre](1.0, 0.0)
	first := ApplyTo2d(RotationAtLeft2d[float64]().CombinedWith(s), v)
	assert.Equal(t, measure.New2d[metre](0.0, 2.0), first)
	second := ApplyTo2d(s.CombinedWith(RotationAtLeft2d[float64]()), v)
	assert.Equal(t, measure.New2d[metre](0.0, 1.0), second)
}

func TestLinear2dInverse(t *testing.T) {
	m := NewLinearMap2d([2][2]float64{{3, 1}, {-2, 4}})
	assert.InDelta(t, 14.0, m.Determinant(), delta)
	assertLinear2d(t, Identity2d[float64](), m.CombinedWith(m.Inverted()))
	assertLinear2d(t, Identity2d[float64](), m.Inverted().CombinedWith(m))

	inv, err := m.CheckedInverted()
	require.NoError(t, err)
	assert.Equal(t, m.Inverted(), inv)
}

func TestSingularInverse(t *testing.T) {
	proj := Projection2d(measure.NewPoint[measure.Degree](30.0))

	_, err := proj.CheckedInverted()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSingular)
	assert.ErrorIs(t, err, num.ErrDomain)

	inv := NewLinearMap2d([2][2]float64{{1, 2}, {2, 4}}).Inverted()
	assert.False(t, num.IsFinite(inv.C[0][0]))

	_, err = ProjectionOntoPlane3d(measure.New3d[metre](0.0, 0.0, 1.0)).CheckedInverted()
	assert.ErrorIs(t, err, ErrSingular)

	_, err = AffineScaling2d(measure.NewPoint2d[metre](1.0, 1.0), [2]float64{0, 1}).CheckedInverted()
	assert.ErrorIs(t, err, num.ErrDomain)

	_, err = LinearMap3d[float64]{}.CheckedInverted()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestRotation3d(t *testing.T) {
	z := measure.New3d[metre](0.0, 0.0, 1.0)
	got := ApplyTo3d(Rotation3d(z, measure.New[measure.Degree](90.0)), measure.New3d[metre](1.0, 0.0, 0.0))
	assert.InDelta(t, 0.0, got.X, delta)
	assert.InDelta(t, 1.0, got.Y, delta)
	assert.InDelta(t, 0.0, got.Z, delta)

	// Around the X axis: Y goes to Z.
	x := measure.New3d[metre](1.0, 0.0, 0.0)
	got = ApplyTo3d(Rotation3d(x, measure.New[measure.Degree](90.0)), measure.New3d[metre](0.0, 1.0, 0.0))
	assert.InDelta(t, 1.0, got.Z, delta)

	axis := measure.New3d[metre](1.0, 1.0, 1.0).Normalized()
	r := Rotation3d(axis, measure.New[measure.Degree](120.0))
	got = ApplyTo3d(r, measure.New3d[metre](1.0, 0.0, 0.0))
	assert.InDelta(t, 0.0, got.X, delta)
	assert.InDelta(t, 1.0, got.Y, delta)
	assert.InDelta(t, 0.0, got.Z, delta)
	assert.InDelta(t, 1.0, r.Determinant(), delta)

	assertLinear3d(t, Identity3d[float64](), r.CombinedWith(r).CombinedWith(r))
}

func TestProjectionAndReflection3d(t *testing.T) {
	n := measure.New3d[metre](0.0, 0.0, 1.0)
	v := measure.New3d[metre](1.0, 2.0, 3.0)

	assert.Equal(t, measure.New3d[metre](1.0, 2.0, 0.0), ApplyTo3d(ProjectionOntoPlane3d(n), v))
	assert.Equal(t, measure.New3d[metre](1.0, 2.0, -3.0), ApplyTo3d(ReflectionOverPlane3d(n), v))
	assert.Equal(t, measure.New3d[metre](0.0, 0.0, 3.0), ApplyTo3d(ProjectionOntoLine3d(n), v))
	assert.Equal(t, measure.New3d[metre](-1.0, -2.0, 3.0), ApplyTo3d(ReflectionOverLine3d(n), v))
	assert.Equal(t, measure.New3d[metre](2.0, -2.0, 0.75), ApplyTo3d(Scaling3d([3]float64{2, -1, 0.25}), v))
}

func TestLinear3dAgainstGonum(t *testing.T) {
	a := NewLinearMap3d([3][3]float64{{2, -1, 0.5}, {1, 3, -2}, {0.25, 4, 1}})
	b := Rotation3d(measure.New3d[metre](0.0, 0.6, 0.8), measure.New[measure.Radian](0.7))

	dense := func(m LinearMap3d[float64]) *mat.Dense {
		return mat.NewDense(3, 3, []float64{
			m.C[0][0], m.C[0][1], m.C[0][2],
			m.C[1][0], m.C[1][1], m.C[1][2],
			m.C[2][0], m.C[2][1], m.C[2][2],
		})
	}
	fromDense := func(d *mat.Dense) LinearMap3d[float64] {
		var m LinearMap3d[float64]
		for i := range 3 {
			for j := range 3 {
				m.C[i][j] = d.At(i, j)
			}
		}
		return m
	}

	var inv mat.Dense
	require.NoError(t, inv.Inverse(dense(a)))
	assertLinear3d(t, fromDense(&inv), a.Inverted())

	var product mat.Dense
	product.Mul(dense(a), dense(b))
	assertLinear3d(t, fromDense(&product), a.CombinedWith(b))

	assert.InDelta(t, mat.Det(dense(a)), a.Determinant(), 1e-9)
}

func TestAffine2d(t *testing.T) {
	pivot := measure.NewPoint2d[metre](1.0, 1.0)

	rot := AffineRotation2d(pivot, measure.New[measure.Degree](90.0))
	got := ApplyToPoint2d(rot, measure.NewPoint2d[metre](2.0, 1.0))
	assert.InDelta(t, 1.0, got.X, delta)
	assert.InDelta(t, 2.0, got.Y, delta)
	assert.Equal(t, pivot, ApplyToPoint2d(AffineRotationAtLeft2d(pivot), pivot))
	assert.Equal(t, measure.NewPoint2d[metre](1.0, 0.0), ApplyToPoint2d(AffineRotationAtRight2d(pivot), measure.NewPoint2d[metre](2.0, 1.0)))

	// Translating (1, 0) then rotating left around the origin.
	move := Translation2d(measure.New2d[metre](1.0, 0.0))
	combined := AffineRotationAtLeft2d(measure.NewPoint2d[metre](0.0, 0.0)).CombinedWith(move)
	assert.Equal(t, measure.NewPoint2d[metre](0.0, 1.0), ApplyToPoint2d(combined, measure.NewPoint2d[metre](0.0, 0.0)))

	line := AffineProjectionOntoLine2d(measure.NewPoint2d[metre](0.0, 2.0), measure.New2d[metre](1.0, 0.0))
	assert.Equal(t, measure.NewPoint2d[metre](5.0, 2.0), ApplyToPoint2d(line, measure.NewPoint2d[metre](5.0, -3.0)))

	mirror := AffineReflectionOverLine2d(measure.NewPoint2d[metre](0.0, 2.0), measure.New2d[metre](1.0, 0.0))
	assert.Equal(t, measure.NewPoint2d[metre](5.0, 7.0), ApplyToPoint2d(mirror, measure.NewPoint2d[metre](5.0, -3.0)))

	scale := AffineScaling2d(pivot, [2]float64{2, 3})
	assert.Equal(t, measure.NewPoint2d[metre](3.0, 4.0), ApplyToPoint2d(scale, measure.NewPoint2d[metre](2.0, 2.0)))

	// The linear part acts on displacements and ignores translation.
	assert.Equal(t, measure.New2d[metre](2.0, 3.0), ApplyTo2d(scale.Linear(), measure.New2d[metre](1.0, 1.0)))
}

func TestAffine2dInverse(t *testing.T) {
	m := AffineRotation2d(measure.NewPoint2d[metre](3.0, -1.0), measure.New[measure.Degree](37.0)).
		CombinedWith(Translation2d(measure.New2d[metre](4.5, 2.0)))

	inv, err := m.CheckedInverted()
	require.NoError(t, err)

	p := measure.NewPoint2d[metre](-7.0, 11.5)
	back := ApplyToPoint2d(inv, ApplyToPoint2d(m, p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)

	id := m.CombinedWith(inv)
	want := AffineIdentity2d[float64]()
	for i := range 2 {
		for j := range 3 {
			assert.InDelta(t, want.C[i][j], id.C[i][j], 1e-9)
		}
	}
}

func TestAffine3d(t *testing.T) {
	pivot := measure.NewPoint3d[metre](1.0, 0.0, 0.0)
	z := measure.New3d[metre](0.0, 0.0, 1.0)

	rot := AffineRotation3d(pivot, z, measure.New[measure.Degree](180.0))
	got := ApplyToPoint3d(rot, measure.NewPoint3d[metre](2.0, 0.0, 5.0))
	assert.InDelta(t, 0.0, got.X, delta)
	assert.InDelta(t, 0.0, got.Y, delta)
	assert.InDelta(t, 5.0, got.Z, delta)

	plane := AffineProjectionOntoPlane3d(measure.NewPoint3d[metre](0.0, 0.0, 2.0), z)
	assert.Equal(t, measure.NewPoint3d[metre](4.0, 5.0, 2.0), ApplyToPoint3d(plane, measure.NewPoint3d[metre](4.0, 5.0, 9.0)))

	mirror := AffineReflectionOverPlane3d(measure.NewPoint3d[metre](0.0, 0.0, 2.0), z)
	assert.Equal(t, measure.NewPoint3d[metre](4.0, 5.0, -5.0), ApplyToPoint3d(mirror, measure.NewPoint3d[metre](4.0, 5.0, 9.0)))

	line := AffineProjectionOntoLine3d(pivot, z)
	assert.Equal(t, measure.NewPoint3d[metre](1.0, 0.0, 9.0), ApplyToPoint3d(line, measure.NewPoint3d[metre](4.0, 5.0, 9.0)))

	axisMirror := AffineReflectionOverLine3d(pivot, z)
	assert.Equal(t, measure.NewPoint3d[metre](-2.0, -5.0, 9.0), ApplyToPoint3d(axisMirror, measure.NewPoint3d[metre](4.0, 5.0, 9.0)))

	scale := AffineScaling3d(pivot, [3]float64{2, 2, 2})
	assert.Equal(t, measure.NewPoint3d[metre](3.0, 2.0, 2.0), ApplyToPoint3d(scale, measure.NewPoint3d[metre](2.0, 1.0, 1.0)))

	m := rot.CombinedWith(Translation3d(measure.New3d[metre](0.5, -1.5, 2.0))).CombinedWith(scale)
	inv, err := m.CheckedInverted()
	require.NoError(t, err)
	p := measure.NewPoint3d[metre](3.0, -2.0, 0.5)
	back := ApplyToPoint3d(inv, ApplyToPoint3d(m, p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
	assert.InDelta(t, p.Z, back.Z, 1e-9)
	assert.InDelta(t, 8.0, m.Determinant(), 1e-9)
	assert.Equal(t, AffineIdentity3d[float64](), AffineIdentity3d[float64]().CombinedWith(AffineIdentity3d[float64]()))
}

func TestFormatMatrix(t *testing.T) {
	assert.Equal(t, "[ 2  0    ]\n[ 0  0.25 ]", Scaling2d([2]float64{2, 0.25}).String())
	assert.Equal(t, "[ -1.5  10 ]\n[ 10     2 ] m", FormatMatrix([][]float64{{-1.5, 10}, {10, 2}}, "m"))
	assert.Equal(t, "[ 1  0  0  3 ]\n[ 0  1  0  4 ]\n[ 0  0  1  5 ]",
		Translation3d(measure.New3d[metre](3.0, 4.0, 5.0)).String())
	assert.Equal(t, "", FormatMatrix[float64](nil, ""))
	assert.Contains(t, FormatMatrix([][]float64{{math.NaN()}}, ""), "NaN")
}

func TestAffineFromLinear(t *testing.T) {
	l := Scaling2d([2]float64{2, 3})
	a := AffineFromLinear2d(l)
	assert.Equal(t, l, a.Linear())
	assert.Equal(t, measure.NewPoint2d[metre](2.0, 3.0), ApplyToPoint2d(a, measure.NewPoint2d[metre](1.0, 1.0)))

	l3 := Scaling3d([3]float64{2, 3, 4})
	a3 := AffineFromLinear3d(l3)
	assert.Equal(t, l3, a3.Linear())
	assert.Equal(t, [3]float64{0, 0, 0}, [3]float64{a3.C[0][3], a3.C[1][3], a3.C[2][3]})
}
