package num

import "strconv"

// Format renders x with the shortest decimal digits that round-trip at the
// width of N, never using exponent notation.
func Format[N Float](x N) string {
	return strconv.FormatFloat(float64(x), 'f', -1, Bits[N]())
}
