package measure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/measures/pkg/num"
)

func TestMeasureArithmetic(t *testing.T) {
	a := New[metre](1.5)
	b := New[metre](2.25)

	assert.Equal(t, New[metre](3.75), a.Add(b))
	assert.Equal(t, New[metre](-0.75), a.Sub(b))
	assert.Equal(t, New[metre](-1.5), a.Neg())
	assert.Equal(t, New[metre](6.0), a.Mul(4))
	assert.Equal(t, New[metre](0.75), a.Div(2))
	assert.Equal(t, 1.5, New[metre](3.0).Ratio(New[metre](2.0)))
}

func TestMeasureVectorSpaceLaws(t *testing.T) {
	values := []float64{0, 1.5, -2.25, 1e6, 3.1e-3}
	for _, x := range values {
		a := New[metre](x)
		b := New[metre](0.125)
		assert.InDelta(t, a.Value, a.Add(b).Sub(b).Value, 1e-12)
		assert.InDelta(t, a.Value, a.Mul(7).Div(7).Value, 1e-9)
		assert.Equal(t, a, a.Neg().Neg())
	}
}

func TestMeasureOrdering(t *testing.T) {
	lo, hi := New[metre](-1.0), New[metre](4.0)

	assert.Equal(t, lo, New[metre](-3.0).Clamp(lo, hi))
	assert.Equal(t, hi, New[metre](9.0).Clamp(lo, hi))
	assert.Equal(t, New[metre](2.0), New[metre](2.0).Clamp(lo, hi))
	assert.Equal(t, lo, lo.Min(hi))
	assert.Equal(t, hi, lo.Max(hi))
	assert.Equal(t, -1, lo.Compare(hi))
	assert.Equal(t, 0, hi.Compare(hi))
	assert.True(t, lo.Less(hi))
	assert.Equal(t, New[metre](1.0), New[metre](-1.0).Abs())
	assert.Equal(t, New[metre](6.5), Sum(New[metre](1.0), New[metre](2.5), New[metre](3.0)))
}

func TestMeasureDecibels(t *testing.T) {
	assert.InDelta(t, 20.0, New[One](10.0).Decibels(), 1e-12)
	assert.InDelta(t, 100.0, FromDecibels[One](40.0).Value, 1e-9)
}

func TestMeasureDivisionByZero(t *testing.T) {
	assert.True(t, math.IsInf(New[metre](1.0).Div(0).Value, 1))
	assert.True(t, math.IsNaN(New[metre](0.0).Div(0).Value))

	_, err := New[metre](1.0).CheckedDiv(0)
	assert.ErrorIs(t, err, num.ErrDomain)

	m, err := New[metre](1.0).CheckedDiv(4)
	require.NoError(t, err)
	assert.Equal(t, New[metre](0.25), m)
}

func TestMeasurePrecision(t *testing.T) {
	narrow := New[metre](float32(1.25))
	assert.Equal(t, New[metre](1.25), narrow.LosslessInto())
	assert.Equal(t, narrow, New[metre](1.25).LossyInto())
	assert.Equal(t, float32(0.1), New[metre](0.1).LossyInto().Value)
}

func TestMeasureAngleTrigonometry(t *testing.T) {
	assert.InDelta(t, 0.5, Cos(New[Degree](60.0)), 1e-12)
	assert.InDelta(t, 0.5, Sin(New[Degree](30.0)), 1e-12)
	assert.InDelta(t, 1.0, Tan(New[Gradian](50.0)), 1e-12)

	sin, cos := SinCos(New[Radian](math.Pi / 2))
	assert.InDelta(t, 1.0, sin, 1e-12)
	assert.InDelta(t, 0.0, cos, 1e-12)
}

func TestMeasure2d(t *testing.T) {
	a := New2d[metre](1.5, -2.0)
	b := New2d[metre](0.5, 4.0)

	assert.Equal(t, New2d[metre](2.0, 2.0), a.Add(b))
	assert.Equal(t, New2d[metre](1.0, -6.0), a.Sub(b))
	assert.Equal(t, New2d[metre](-1.5, 2.0), a.Neg())
	assert.Equal(t, New2d[metre](3.0, -4.0), a.Mul(2))
	assert.Equal(t, New2d[metre](0.75, -1.0), a.Div(2))
	assert.True(t, a.Add(b).Sub(b).Equal(a))
	assert.Equal(t, New[metre](1.5), a.XMeasure())
	assert.Equal(t, New[metre](-2.0), a.YMeasure())

	v := New2d[metre](3.0, 4.0)
	assert.Equal(t, 25.0, v.SquaredNorm())
	assert.Equal(t, New[metre](5.0), v.Norm())
	assert.Equal(t, New2d[metre](0.6, 0.8), v.Normalized())
}

func TestMeasure2dNormalizeZero(t *testing.T) {
	zero := New2d[metre](0.0, 0.0)
	n := zero.Normalized()
	assert.True(t, math.IsNaN(n.X))
	assert.True(t, math.IsNaN(n.Y))

	_, err := zero.CheckedNormalized()
	assert.ErrorIs(t, err, num.ErrDomain)

	_, err = New2d[metre](0.0, 2.0).CheckedNormalized()
	assert.NoError(t, err)
}

func TestMeasure2dDirections(t *testing.T) {
	up := New2d[metre](0.0, 1.0)
	assert.InDelta(t, math.Pi/2, up.SignedDirection().Value(), 1e-12)
	assert.InDelta(t, math.Pi/2, up.UnsignedDirection().Value(), 1e-12)

	down := New2d[metre](0.0, -1.0)
	assert.InDelta(t, -math.Pi/2, down.SignedDirection().Value(), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, down.UnsignedDirection().Value(), 1e-12)

	left := New2d[metre](-1.0, 0.0)
	assert.InDelta(t, -math.Pi, left.SignedDirection().Value(), 1e-12)

	v := FromDirection[metre](NewPoint[Degree](90.0))
	assert.InDelta(t, 0.0, v.X, 1e-12)
	assert.InDelta(t, 1.0, v.Y, 1e-12)

	w := FromDirection[metre](NewUnsignedDirection[Degree](-60.0).Point())
	assert.InDelta(t, 0.5, w.X, 1e-12)
	assert.InDelta(t, -math.Sqrt(3)/2, w.Y, 1e-12)

	u := FromUnsignedDirection[metre](NewUnsignedDirection[Degree](300.0))
	assert.InDelta(t, 0.5, u.X, 1e-12)
	assert.InDelta(t, -math.Sqrt(3)/2, u.Y, 1e-12)

	s := FromSignedDirection[metre](NewSignedDirection[Degree](-150.0))
	assert.InDelta(t, -math.Sqrt(3)/2, s.X, 1e-12)
	assert.InDelta(t, -0.5, s.Y, 1e-12)
}

func TestMeasure3d(t *testing.T) {
	a := New3d[metre](1.0, 2.0, 2.0)
	b := New3d[metre](-0.5, 0.25, 4.0)

	assert.Equal(t, New3d[metre](0.5, 2.25, 6.0), a.Add(b))
	assert.Equal(t, New3d[metre](1.5, 1.75, -2.0), a.Sub(b))
	assert.Equal(t, New3d[metre](-1.0, -2.0, -2.0), a.Neg())
	assert.Equal(t, New3d[metre](3.0, 6.0, 6.0), a.Mul(3))
	assert.Equal(t, New3d[metre](0.5, 1.0, 1.0), a.Div(2))
	assert.Equal(t, 9.0, a.SquaredNorm())
	assert.Equal(t, New[metre](3.0), a.Norm())
	assert.Equal(t, New[metre](2.0), a.ZMeasure())

	n := a.Normalized()
	assert.InDelta(t, 1.0/3, n.X, 1e-12)
	assert.InDelta(t, 2.0/3, n.Y, 1e-12)
	assert.InDelta(t, 2.0/3, n.Z, 1e-12)

	zero := New3d[metre](0.0, 0.0, 0.0).Normalized()
	assert.True(t, math.IsNaN(zero.X) && math.IsNaN(zero.Y) && math.IsNaN(zero.Z))

	_, err := New3d[metre](1.0, 0.0, 0.0).CheckedDiv(0)
	assert.ErrorIs(t, err, num.ErrDomain)
}

func TestVectorPrecision(t *testing.T) {
	v := New3d[metre](float32(1.5), 2.5, -3.5)
	assert.Equal(t, New3d[metre](1.5, 2.5, -3.5), v.LosslessInto())
	assert.Equal(t, New2d[metre](float32(0.5), 8), New2d[metre](0.5, 8.0).LossyInto())
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"measure", New[metre](12.0).String(), "12 m"},
		{"measure fraction", New[foot](-0.25).String(), "-0.25 ft"},
		{"measure without suffix", New[One](2.5).String(), "2.5"},
		{"measure float32", New[metre](float32(0.1)).String(), "0.1 m"},
		{"measure2d", New2d[metre](3.0, -4.5).String(), "(3, -4.5) m"},
		{"measure3d", New3d[metre](1.0, 2.0, 3.5).String(), "(1, 2, 3.5) m"},
		{"point", NewPoint[celsius](21.5).String(), "at 21.5 °C"},
		{"point2d", NewPoint2d[metre](1.0, -1.0).String(), "at (1, -1) m"},
		{"point3d", NewPoint3d[metre](0.0, 0.5, 2.0).String(), "at (0, 0.5, 2) m"},
		{"unsigned direction", NewUnsignedDirection[Degree](-90.0).String(), "at 270 deg (in 0°..360°)"},
		{"signed direction", NewSignedDirection[Degree](270.0).String(), "at -90 deg (in -180°..180°)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestVectorComponents(t *testing.T) {
	assert.Equal(t, [2]float64{3, -4}, New2d[metre](3.0, -4.0).Components())
	assert.Equal(t, [3]float32{1, 2, 3}, New3d[metre, float32](1, 2, 3).Components())
}
