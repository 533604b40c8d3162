package num

import (
	"errors"
	"fmt"
)

// ErrDomain marks a numeric-domain condition (division by zero, normalisation
// of a zero vector, inversion of a singular matrix) reported by strict helpers.
// The non-strict operations let these propagate as NaN or Inf instead.
var ErrDomain = errors.New("num: numeric domain error")

// DomainError describes which operation hit a numeric-domain condition.
type DomainError struct {
	Op    string
	Value float64
	Cause error
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("num: %s: numeric domain error (value %g)", e.Op, e.Value)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Is makes every DomainError match ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a DomainError for op.
func NewDomainError(op string, value float64, cause error) *DomainError {
	return &DomainError{Op: op, Value: value, Cause: cause}
}

// CheckedDiv divides a by b, reporting a DomainError when b is zero or the
// quotient is not finite.
func CheckedDiv[N Float](a, b N) (N, error) {
	if b == 0 {
		return 0, NewDomainError("div", float64(b), nil)
	}
	q := a / b
	if !IsFinite(q) {
		return q, NewDomainError("div", float64(q), nil)
	}
	return q, nil
}
