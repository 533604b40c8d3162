package num

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, float64(0), Zero[float64]())
	assert.Equal(t, float32(1), One[float32]())
	assert.Equal(t, 0.5, Half[float64]())
	assert.Equal(t, 32, Bits[float32]())
	assert.Equal(t, 64, Bits[float64]())
	assert.Equal(t, float32(1.1920929e-07), Epsilon[float32]())
	assert.Equal(t, 2.220446049250313e-16, Epsilon[float64]())
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3.2))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0.0))
	assert.True(t, math.IsNaN(Sign(math.NaN())))
}

func TestRootsAndTrig(t *testing.T) {
	assert.Equal(t, 3.0, Sqrt(9.0))
	assert.InDelta(t, 3.0, Cbrt(27.0), 1e-12)
	assert.InDelta(t, float32(2), Sqrt(float32(4)), 1e-6)

	s, c := SinCos(math.Pi / 6)
	assert.InDelta(t, 0.5, s, 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, c, 1e-12)
	assert.InDelta(t, 1.0, Tan(math.Pi/4), 1e-12)
	assert.InDelta(t, math.Pi/2, Atan2(1.0, 0.0), 1e-12)
	assert.Equal(t, 5.0, Hypot(3.0, 4.0))
	assert.Equal(t, -1.0, Mod(-7.0, 3.0))
}

func TestDecibels(t *testing.T) {
	assert.InDelta(t, 20.0, ToDecibels(10.0), 1e-12)
	assert.InDelta(t, 10.0, FromDecibels(20.0), 1e-12)
	assert.InDelta(t, 0.25, FromDecibels(ToDecibels(0.25)), 1e-12)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum[float64]())
	assert.Equal(t, 6.5, Sum(1.0, 2.5, 3.0))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"integer", Format(12.0), "12"},
		{"fraction", Format(-0.25), "-0.25"},
		{"large", Format(1e21), "1000000000000000000000"},
		{"float32 shortest", Format(float32(0.1)), "0.1"},
		{"float64 of float32", Format(float64(float32(0.1))), "0.10000000149011612"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestCheckedDiv(t *testing.T) {
	q, err := CheckedDiv(7.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, q)

	_, err = CheckedDiv(1.0, 0.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDomain))

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "div", domainErr.Op)

	_, err = CheckedDiv(math.Inf(1), 2.0)
	assert.ErrorIs(t, err, ErrDomain)
}
