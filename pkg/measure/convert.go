package measure

import "github.com/zeusync/measures/pkg/num"

// Conversions take the destination unit D and its property P as explicit type
// arguments; the source unit and the number type are inferred. A source unit
// of another property does not satisfy UnitOf[P], so such a conversion fails
// to compile:
//
//	feet := measure.Convert[units.Foot, units.Length](metres)
//
// Measures are differences, so only the ratio takes part. Points and
// directions are positions, so the offset takes part too.

// Convert re-expresses m in unit D.
func Convert[D UnitOf[P], P any, U UnitOf[P], N num.Float](m Measure[U, N]) Measure[D, N] {
	return Measure[D, N]{Value: m.Value * N(factor[U, D]())}
}

func Convert2d[D VectorUnitOf[P], P any, U VectorUnitOf[P], N num.Float](v Measure2d[U, N]) Measure2d[D, N] {
	f := N(factor[U, D]())
	return Measure2d[D, N]{X: v.X * f, Y: v.Y * f}
}

func Convert3d[D VectorUnitOf[P], P any, U VectorUnitOf[P], N num.Float](v Measure3d[U, N]) Measure3d[D, N] {
	f := N(factor[U, D]())
	return Measure3d[D, N]{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// ConvertPoint re-expresses p in unit D, taking unit offsets into account.
func ConvertPoint[D UnitOf[P], P any, U UnitOf[P], N num.Float](p Point[U, N]) Point[D, N] {
	return Point[D, N]{Value: p.Value*N(factor[U, D]()) + N(shift[U, D]())}
}

func ConvertPoint2d[D VectorUnitOf[P], P any, U VectorUnitOf[P], N num.Float](p Point2d[U, N]) Point2d[D, N] {
	f, s := N(factor[U, D]()), N(shift[U, D]())
	return Point2d[D, N]{X: p.X*f + s, Y: p.Y*f + s}
}

func ConvertPoint3d[D VectorUnitOf[P], P any, U VectorUnitOf[P], N num.Float](p Point3d[U, N]) Point3d[D, N] {
	f, s := N(factor[U, D]()), N(shift[U, D]())
	return Point3d[D, N]{X: p.X*f + s, Y: p.Y*f + s, Z: p.Z*f + s}
}

// ConvertUnsignedDirection re-expresses d in angle unit D.
func ConvertUnsignedDirection[D AngleUnit, A AngleUnit, N num.Float](d UnsignedDirection[A, N]) UnsignedDirection[D, N] {
	return NewUnsignedDirection[D](d.value*N(factor[A, D]()) + N(shift[A, D]()))
}

func ConvertSignedDirection[D AngleUnit, A AngleUnit, N num.Float](d SignedDirection[A, N]) SignedDirection[D, N] {
	return NewSignedDirection[D](d.value*N(factor[A, D]()) + N(shift[A, D]()))
}
