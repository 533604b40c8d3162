package measure

import (
	"cmp"

	"github.com/zeusync/measures/pkg/num"
)

// Point is an absolute position on the axis of unit U. Points form an affine
// space: they can be displaced by a Measure and subtracted from each other,
// but not added, negated or scaled. The zero value is the origin.
type Point[U Unit, N num.Float] struct {
	Value N
}

func NewPoint[U Unit, N num.Float](value N) Point[U, N] {
	return Point[U, N]{Value: value}
}

// AddMeasure displaces the point by m.
func (p Point[U, N]) AddMeasure(m Measure[U, N]) Point[U, N] {
	return Point[U, N]{Value: p.Value + m.Value}
}

func (p Point[U, N]) SubMeasure(m Measure[U, N]) Point[U, N] {
	return Point[U, N]{Value: p.Value - m.Value}
}

// Sub returns the displacement going from other to p.
func (p Point[U, N]) Sub(other Point[U, N]) Measure[U, N] {
	return Measure[U, N]{Value: p.Value - other.Value}
}

func (p Point[U, N]) Equal(other Point[U, N]) bool {
	return p.Value == other.Value
}

func (p Point[U, N]) Compare(other Point[U, N]) int {
	return cmp.Compare(p.Value, other.Value)
}

// Measure returns the displacement of p from the origin.
func (p Point[U, N]) Measure() Measure[U, N] {
	return Measure[U, N]{Value: p.Value}
}

func (p Point[U, N]) LosslessInto() Point[U, float64] {
	return Point[U, float64]{Value: float64(p.Value)}
}

func (p Point[U, N]) LossyInto() Point[U, float32] {
	return Point[U, float32]{Value: float32(p.Value)}
}

// String renders "at <value>[ <suffix>]".
func (p Point[U, N]) String() string {
	return "at " + withSuffix[U](num.Format(p.Value))
}

// WeightedMidpoint returns p1*weight + p2*(1-weight).
func WeightedMidpoint[U Unit, N num.Float](p1, p2 Point[U, N], weight N) Point[U, N] {
	return Point[U, N]{Value: p1.Value*weight + p2.Value*(1-weight)}
}

func Midpoint[U Unit, N num.Float](p1, p2 Point[U, N]) Point[U, N] {
	return WeightedMidpoint(p1, p2, num.Half[N]())
}

// BarycentricCombination returns the sum of points[i]*weights[i]. The weights
// are expected to add up to one; that is not checked. Extra elements of the
// longer slice are ignored.
func BarycentricCombination[U Unit, N num.Float](points []Point[U, N], weights []N) Point[U, N] {
	var sum N
	for i := range min(len(points), len(weights)) {
		sum += points[i].Value * weights[i]
	}
	return Point[U, N]{Value: sum}
}
