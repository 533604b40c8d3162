package measure

import "github.com/zeusync/measures/pkg/num"

// UnsignedDirection is an angular position kept in [0, turn), where turn is
// the CycleFraction of A. The zero value points along the X axis.
type UnsignedDirection[A AngleUnit, N num.Float] struct {
	value N
}

// NewUnsignedDirection reduces value modulo one turn into [0, turn).
func NewUnsignedDirection[A AngleUnit, N num.Float](value N) UnsignedDirection[A, N] {
	return UnsignedDirection[A, N]{value: normalizeUnsigned(value, N(turn[A]()))}
}

func UnsignedDirectionFromPoint[A AngleUnit, N num.Float](p Point[A, N]) UnsignedDirection[A, N] {
	return NewUnsignedDirection[A](p.Value)
}

func (d UnsignedDirection[A, N]) Value() N { return d.value }

func (d UnsignedDirection[A, N]) Point() Point[A, N] {
	return Point[A, N]{Value: d.value}
}

func (d UnsignedDirection[A, N]) ToSigned() SignedDirection[A, N] {
	return NewSignedDirection[A](d.value)
}

func (d UnsignedDirection[A, N]) AddMeasure(m Measure[A, N]) UnsignedDirection[A, N] {
	return NewUnsignedDirection[A](d.value + m.Value)
}

func (d UnsignedDirection[A, N]) SubMeasure(m Measure[A, N]) UnsignedDirection[A, N] {
	return NewUnsignedDirection[A](d.value - m.Value)
}

// Sub returns the shortest signed rotation leading from other to d.
func (d UnsignedDirection[A, N]) Sub(other UnsignedDirection[A, N]) Measure[A, N] {
	return Measure[A, N]{Value: shortestDifference(d.value, other.value, N(turn[A]()))}
}

func (d UnsignedDirection[A, N]) Equal(other UnsignedDirection[A, N]) bool {
	return d.value == other.value
}

func (d UnsignedDirection[A, N]) Cos() N { return num.Cos(radians[A](d.value)) }
func (d UnsignedDirection[A, N]) Sin() N { return num.Sin(radians[A](d.value)) }
func (d UnsignedDirection[A, N]) Tan() N { return num.Tan(radians[A](d.value)) }

func (d UnsignedDirection[A, N]) SinCos() (sin, cos N) {
	return num.SinCos(radians[A](d.value))
}

func (d UnsignedDirection[A, N]) LosslessInto() UnsignedDirection[A, float64] {
	return UnsignedDirection[A, float64]{value: float64(d.value)}
}

// LossyInto narrows to float32, renormalising in case rounding reached a full turn.
func (d UnsignedDirection[A, N]) LossyInto() UnsignedDirection[A, float32] {
	return NewUnsignedDirection[A](float32(d.value))
}

// String renders "at <value>[ <suffix>] (in 0°..360°)".
func (d UnsignedDirection[A, N]) String() string {
	return "at " + withSuffix[A](num.Format(d.value)) + " (in 0°..360°)"
}

// SignedDirection is an angular position kept in [-turn/2, turn/2).
type SignedDirection[A AngleUnit, N num.Float] struct {
	value N
}

// NewSignedDirection reduces value modulo one turn into [-turn/2, turn/2).
func NewSignedDirection[A AngleUnit, N num.Float](value N) SignedDirection[A, N] {
	return SignedDirection[A, N]{value: normalizeSigned(value, N(turn[A]()))}
}

func SignedDirectionFromPoint[A AngleUnit, N num.Float](p Point[A, N]) SignedDirection[A, N] {
	return NewSignedDirection[A](p.Value)
}

func (d SignedDirection[A, N]) Value() N { return d.value }

func (d SignedDirection[A, N]) Point() Point[A, N] {
	return Point[A, N]{Value: d.value}
}

func (d SignedDirection[A, N]) ToUnsigned() UnsignedDirection[A, N] {
	return NewUnsignedDirection[A](d.value)
}

func (d SignedDirection[A, N]) AddMeasure(m Measure[A, N]) SignedDirection[A, N] {
	return NewSignedDirection[A](d.value + m.Value)
}

func (d SignedDirection[A, N]) SubMeasure(m Measure[A, N]) SignedDirection[A, N] {
	return NewSignedDirection[A](d.value - m.Value)
}

// Sub returns the shortest signed rotation leading from other to d.
func (d SignedDirection[A, N]) Sub(other SignedDirection[A, N]) Measure[A, N] {
	return Measure[A, N]{Value: shortestDifference(d.value, other.value, N(turn[A]()))}
}

func (d SignedDirection[A, N]) Equal(other SignedDirection[A, N]) bool {
	return d.value == other.value
}

func (d SignedDirection[A, N]) Cos() N { return num.Cos(radians[A](d.value)) }
func (d SignedDirection[A, N]) Sin() N { return num.Sin(radians[A](d.value)) }
func (d SignedDirection[A, N]) Tan() N { return num.Tan(radians[A](d.value)) }

func (d SignedDirection[A, N]) SinCos() (sin, cos N) {
	return num.SinCos(radians[A](d.value))
}

func (d SignedDirection[A, N]) LosslessInto() SignedDirection[A, float64] {
	return SignedDirection[A, float64]{value: float64(d.value)}
}

func (d SignedDirection[A, N]) LossyInto() SignedDirection[A, float32] {
	return NewSignedDirection[A](float32(d.value))
}

// String renders "at <value>[ <suffix>] (in -180°..180°)".
func (d SignedDirection[A, N]) String() string {
	return "at " + withSuffix[A](num.Format(d.value)) + " (in -180°..180°)"
}

func normalizeUnsigned[N num.Float](x, turn N) N {
	r := num.Mod(x, turn)
	if r < 0 {
		r += turn
	}
	if r >= turn {
		r -= turn
	}
	return r
}

func normalizeSigned[N num.Float](x, turn N) N {
	half := turn / 2
	r := num.Mod(x+half, turn)
	if r < 0 {
		r += turn
	}
	if r >= turn {
		r -= turn
	}
	return r - half
}

// shortestDifference returns a-b folded into [-turn/2, turn/2]. Differences
// of exactly half a turn are kept as produced.
func shortestDifference[N num.Float](a, b, turn N) N {
	diff := a - b
	half := turn / 2
	switch {
	case diff > half:
		return diff - turn
	case diff < -half:
		return diff + turn
	default:
		return diff
	}
}
