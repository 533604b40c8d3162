package measure

import "github.com/zeusync/measures/pkg/num"

// Point3d is an absolute position in space, in unit U.
type Point3d[U VectorUnit, N num.Float] struct {
	X, Y, Z N
}

func NewPoint3d[U VectorUnit, N num.Float](x, y, z N) Point3d[U, N] {
	return Point3d[U, N]{X: x, Y: y, Z: z}
}

func (p Point3d[U, N]) AddMeasure(m Measure3d[U, N]) Point3d[U, N] {
	return Point3d[U, N]{X: p.X + m.X, Y: p.Y + m.Y, Z: p.Z + m.Z}
}

func (p Point3d[U, N]) SubMeasure(m Measure3d[U, N]) Point3d[U, N] {
	return Point3d[U, N]{X: p.X - m.X, Y: p.Y - m.Y, Z: p.Z - m.Z}
}

func (p Point3d[U, N]) Sub(other Point3d[U, N]) Measure3d[U, N] {
	return Measure3d[U, N]{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

func (p Point3d[U, N]) Equal(other Point3d[U, N]) bool {
	return p.X == other.X && p.Y == other.Y && p.Z == other.Z
}

func (p Point3d[U, N]) Measure() Measure3d[U, N] {
	return Measure3d[U, N]{X: p.X, Y: p.Y, Z: p.Z}
}

func (p Point3d[U, N]) LosslessInto() Point3d[U, float64] {
	return Point3d[U, float64]{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

func (p Point3d[U, N]) LossyInto() Point3d[U, float32] {
	return Point3d[U, float32]{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}

// String renders "at (<x>, <y>, <z>)[ <suffix>]".
func (p Point3d[U, N]) String() string {
	return "at " + withSuffix[U]("("+num.Format(p.X)+", "+num.Format(p.Y)+", "+num.Format(p.Z)+")")
}

func WeightedMidpoint3d[U VectorUnit, N num.Float](p1, p2 Point3d[U, N], weight N) Point3d[U, N] {
	return Point3d[U, N]{
		X: p1.X*weight + p2.X*(1-weight),
		Y: p1.Y*weight + p2.Y*(1-weight),
		Z: p1.Z*weight + p2.Z*(1-weight),
	}
}

func Midpoint3d[U VectorUnit, N num.Float](p1, p2 Point3d[U, N]) Point3d[U, N] {
	return WeightedMidpoint3d(p1, p2, num.Half[N]())
}

func BarycentricCombination3d[U VectorUnit, N num.Float](points []Point3d[U, N], weights []N) Point3d[U, N] {
	var p Point3d[U, N]
	for i := range min(len(points), len(weights)) {
		p.X += points[i].X * weights[i]
		p.Y += points[i].Y * weights[i]
		p.Z += points[i].Z * weights[i]
	}
	return p
}
