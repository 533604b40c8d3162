package measure

import "github.com/zeusync/measures/pkg/num"

// Point2d is an absolute position on the plane, in unit U.
type Point2d[U VectorUnit, N num.Float] struct {
	X, Y N
}

func NewPoint2d[U VectorUnit, N num.Float](x, y N) Point2d[U, N] {
	return Point2d[U, N]{X: x, Y: y}
}

func (p Point2d[U, N]) AddMeasure(m Measure2d[U, N]) Point2d[U, N] {
	return Point2d[U, N]{X: p.X + m.X, Y: p.Y + m.Y}
}

func (p Point2d[U, N]) SubMeasure(m Measure2d[U, N]) Point2d[U, N] {
	return Point2d[U, N]{X: p.X - m.X, Y: p.Y - m.Y}
}

func (p Point2d[U, N]) Sub(other Point2d[U, N]) Measure2d[U, N] {
	return Measure2d[U, N]{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point2d[U, N]) Equal(other Point2d[U, N]) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point2d[U, N]) Measure() Measure2d[U, N] {
	return Measure2d[U, N]{X: p.X, Y: p.Y}
}

func (p Point2d[U, N]) LosslessInto() Point2d[U, float64] {
	return Point2d[U, float64]{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point2d[U, N]) LossyInto() Point2d[U, float32] {
	return Point2d[U, float32]{X: float32(p.X), Y: float32(p.Y)}
}

// String renders "at (<x>, <y>)[ <suffix>]".
func (p Point2d[U, N]) String() string {
	return "at " + withSuffix[U]("("+num.Format(p.X)+", "+num.Format(p.Y)+")")
}

func WeightedMidpoint2d[U VectorUnit, N num.Float](p1, p2 Point2d[U, N], weight N) Point2d[U, N] {
	return Point2d[U, N]{
		X: p1.X*weight + p2.X*(1-weight),
		Y: p1.Y*weight + p2.Y*(1-weight),
	}
}

func Midpoint2d[U VectorUnit, N num.Float](p1, p2 Point2d[U, N]) Point2d[U, N] {
	return WeightedMidpoint2d(p1, p2, num.Half[N]())
}

func BarycentricCombination2d[U VectorUnit, N num.Float](points []Point2d[U, N], weights []N) Point2d[U, N] {
	var p Point2d[U, N]
	for i := range min(len(points), len(weights)) {
		p.X += points[i].X * weights[i]
		p.Y += points[i].Y * weights[i]
	}
	return p
}
