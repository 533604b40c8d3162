package transform

import "errors"

// ErrSingular is reported by CheckedInverted when the determinant of the map is
// zero within the precision of its number type. The returned error also
// matches num.ErrDomain.
var ErrSingular = errors.New("transform: singular matrix")
