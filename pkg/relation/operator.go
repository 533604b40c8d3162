package relation

// Kind is the arithmetic an operator performs.
type Kind uint8

const (
	KindMul Kind = iota + 1
	KindDiv
	KindDot
	KindCross
	KindInv
)

func (k Kind) String() string {
	switch k {
	case KindMul:
		return "Mul"
	case KindDiv:
		return "Div"
	case KindDot:
		return "Dot"
	case KindCross:
		return "Cross"
	case KindInv:
		return "Inv"
	default:
		return "Unknown"
	}
}

func (k Kind) symbol() string {
	switch k {
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindDot:
		return "·"
	case KindCross:
		return "×"
	default:
		return "?"
	}
}

// Operator is one function implied by a relation. KindInv operators have no
// Right operand. A zero Result means the operator yields a raw number.
type Operator struct {
	Kind     Kind
	Left     Operand
	Right    Operand
	Result   Operand
	Relation string
}

// Dimensionless reports whether the operator returns a raw number.
func (o Operator) Dimensionless() bool {
	return o.Result.Unit == ""
}

// Name is the Go function name of the operator, for example
// CrossNewton2dByMetre2d or InvSecond.
func (o Operator) Name() string {
	if o.Kind == KindInv {
		return o.Kind.String() + o.Left.TypeName()
	}
	return o.Kind.String() + o.Left.TypeName() + "By" + o.Right.TypeName()
}

// Signature identifies the operator by its kind and argument types. Two
// operators with the same signature cannot coexist.
func (o Operator) Signature() string {
	if o.Kind == KindInv {
		return o.Kind.String() + "(" + o.Left.String() + ")"
	}
	return o.Kind.String() + "(" + o.Left.String() + ", " + o.Right.String() + ")"
}

func (o Operator) String() string {
	if o.Kind == KindInv {
		return "1 / " + o.Left.String() + " -> " + o.Result.String()
	}
	return o.Left.String() + " " + o.Kind.symbol() + " " + o.Right.String() + " -> " + o.Result.String()
}

// Resolve expands a normalised relation into its operators, in a stable order.
func Resolve(r Relation) []Operator {
	self := r.SelfReferential()
	var ops []Operator
	add := func(kind Kind, left, right, result Operand) {
		ops = append(ops, Operator{Kind: kind, Left: left, Right: right, Result: result, Relation: r.Text})
	}

	switch {
	case r.Reciprocal:
		add(KindMul, r.Left, r.Right, Operand{})
		if !self {
			add(KindMul, r.Right, r.Left, Operand{})
		}
		add(KindInv, r.Left, Operand{}, r.Right)
		if !self {
			add(KindInv, r.Right, Operand{}, r.Left)
		}

	case r.Op == OpCross:
		add(KindCross, r.Left, r.Right, r.Result)

	default:
		l, rr, t := r.Left, r.Right, r.Result
		if l.Dim > 1 && rr.Dim == 1 {
			l, rr = rr, l
		}
		switch {
		case l.Dim == 1 && rr.Dim == 1:
			add(KindMul, l, rr, t)
			if !self {
				add(KindMul, rr, l, t)
			}
			add(KindDiv, t, l, rr)
			if !self {
				add(KindDiv, t, rr, l)
			}
		case l.Dim == 1:
			add(KindMul, l, rr, t)
			add(KindMul, rr, l, t)
			add(KindDiv, t, l, rr)
		default:
			add(KindDot, l, rr, t)
			if !self {
				add(KindDot, rr, l, t)
			}
		}
	}
	return ops
}
