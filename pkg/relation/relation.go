// Package relation compiles declared unit relations such as
//
//	Newton:2 X Metre:2 == NewtonMetre
//
// into the exact set of cross-unit operators they imply.
//
// A relation combines two operands with '*', '/' or a cross product ('X' or
// '×') and equates the combination with a third operand. Each operand is a
// unit name with an optional dimension (":1" scalar, ":2" or ":3" vector), the
// literal 1, or '=' meaning the previous operand of the same side. Parse
// normalises every accepted form to Left * Right == Result, Left X Right ==
// Result, or Left * Right == 1, and Resolve expands a normalised relation into
// operators following the shape table:
//
//	L  R  T  op   operators
//	1  1  1  *    L*R, R*L, T/L, T/R
//	1  2  2  *    L*R, R*L, T/L         (same for 3)
//	2  2  1  *    L·R, R·L              (same for 3)
//	2  2  1  X    L×R
//	3  3  3  X    L×R
//	1  1  -  ==1  L*R, R*L (raw numbers), 1/L, 1/R
//
// When both operands are the same unit and dimension only one operator of
// each symmetric pair is produced.
package relation

import "strconv"

// Op is the operator of a normalised relation.
type Op uint8

const (
	OpMul Op = iota + 1
	OpDiv
	OpCross
)

func (o Op) String() string {
	switch o {
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpCross:
		return "X"
	default:
		return "?"
	}
}

// Operand is one unit of a relation together with its shape.
type Operand struct {
	Unit string
	Dim  int
	Pos  int
}

// TypeName is the identifier fragment naming the operand's Go type: the unit
// name, followed by 2d or 3d for vectors. Dimensionless operands have an empty
// type name.
func (o Operand) TypeName() string {
	if o.Dim > 1 {
		return o.Unit + strconv.Itoa(o.Dim) + "d"
	}
	return o.Unit
}

func (o Operand) String() string {
	switch {
	case o.Unit == "":
		return "1"
	case o.Dim > 1:
		return o.Unit + ":" + strconv.Itoa(o.Dim)
	default:
		return o.Unit
	}
}

// Same reports whether both operands denote the same unit and shape.
func (o Operand) Same(other Operand) bool {
	return o.Unit == other.Unit && o.Dim == other.Dim
}

// Relation is a declaration normalised to Left Op Right == Result with Op
// being OpMul or OpCross. Reciprocal relations (Left * Right == 1) leave
// Result zero.
type Relation struct {
	Text       string
	Left       Operand
	Right      Operand
	Result     Operand
	Op         Op
	Reciprocal bool
}

// SelfReferential reports whether both operands are the same type.
func (r Relation) SelfReferential() bool {
	return r.Left.Same(r.Right)
}

func (r Relation) String() string {
	result := r.Result.String()
	if r.Reciprocal {
		result = "1"
	}
	return r.Left.String() + " " + r.Op.String() + " " + r.Right.String() + " == " + result
}

// check validates the operand shapes of a normalised relation.
func (r Relation) check() error {
	l, rr, t := r.Left.Dim, r.Right.Dim, r.Result.Dim
	switch {
	case r.Reciprocal:
		for _, o := range []Operand{r.Left, r.Right} {
			if o.Dim != 1 {
				return newError(ErrorCodeShapeMismatch, r.Text, o.Pos,
					"a product equal to 1 needs scalar operands, %s is a vector", o)
			}
		}
		return nil

	case r.Op == OpCross:
		if l != rr || l == 1 {
			return newError(ErrorCodeCrossDimension, r.Text, r.Left.Pos,
				"got %s X %s", r.Left, r.Right)
		}
		if (l == 2 && t != 1) || (l == 3 && t != 3) {
			return newError(ErrorCodeShapeMismatch, r.Text, r.Result.Pos,
				"the cross product of %dD vectors is %s, not %s", l, crossShape(l), shapeName(t))
		}
		return nil
	}

	switch {
	case l == 1 || rr == 1:
		want := max(l, rr)
		if t != want {
			return newError(ErrorCodeShapeMismatch, r.Text, r.Result.Pos,
				"the product of %s and %s is %s, not %s", shapeName(l), shapeName(rr), shapeName(want), shapeName(t))
		}
	case l != rr:
		return newError(ErrorCodeShapeMismatch, r.Text, r.Right.Pos,
			"cannot multiply a %s by a %s", shapeName(l), shapeName(rr))
	case t != 1:
		return newError(ErrorCodeShapeMismatch, r.Text, r.Result.Pos,
			"the dot product of %s operands is a scalar, not %s", shapeName(l), shapeName(t))
	}
	return nil
}

func crossShape(dim int) string {
	if dim == 2 {
		return shapeName(1)
	}
	return shapeName(3)
}

func shapeName(dim int) string {
	switch dim {
	case 1:
		return "a scalar"
	case 2:
		return "a 2D vector"
	case 3:
		return "a 3D vector"
	default:
		return "dimension " + strconv.Itoa(dim)
	}
}
