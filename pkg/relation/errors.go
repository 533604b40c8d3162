package relation

import (
	"errors"
	"fmt"
)

// Relation errors
var (
	// Declaration errors

	ErrSyntax         = errors.New("syntax error")
	ErrLiteral        = errors.New("unsupported literal")
	ErrSelfReference  = errors.New("self reference without a previous operand")
	ErrEmpty          = errors.New("empty relation")
	ErrVectorDivisor  = errors.New("divisor must be a scalar")
	ErrCrossDimension = errors.New("cross product needs two 2D or two 3D operands")
	ErrShapeMismatch  = errors.New("operand dimensions do not match the result")

	// Set errors

	ErrDuplicate = errors.New("duplicate operator")
	ErrNameClash = errors.New("operator name clash")
)

// ErrorCode identifies the rule a relation broke.
type ErrorCode int

const (
	ErrorCodeSyntax ErrorCode = iota + 1
	ErrorCodeLiteral
	ErrorCodeSelfReference
	ErrorCodeEmpty
	ErrorCodeVectorDivisor
	ErrorCodeCrossDimension
	ErrorCodeShapeMismatch
	ErrorCodeDuplicate
	ErrorCodeNameClash
)

var codeSentinels = map[ErrorCode]error{
	ErrorCodeSyntax:         ErrSyntax,
	ErrorCodeLiteral:        ErrLiteral,
	ErrorCodeSelfReference:  ErrSelfReference,
	ErrorCodeEmpty:          ErrEmpty,
	ErrorCodeVectorDivisor:  ErrVectorDivisor,
	ErrorCodeCrossDimension: ErrCrossDimension,
	ErrorCodeShapeMismatch:  ErrShapeMismatch,
	ErrorCodeDuplicate:      ErrDuplicate,
	ErrorCodeNameClash:      ErrNameClash,
}

// Sentinel returns the package-level error matching the code.
func (c ErrorCode) Sentinel() error {
	return codeSentinels[c]
}

// Error describes a rejected relation. Pos is the 1-based column of the
// offending token, or 0 when the whole relation is at fault.
type Error struct {
	Code     ErrorCode
	Relation string
	Pos      int
	Message  string
	Cause    error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("relation %q: %v", e.Relation, e.Code.Sentinel())
	if e.Pos > 0 {
		msg += fmt.Sprintf(" at column %d", e.Pos)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Is matches the sentinel of the error code.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Code.Sentinel()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code ErrorCode, relation string, pos int, format string, args ...any) *Error {
	return &Error{
		Code:     code,
		Relation: relation,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	}
}
