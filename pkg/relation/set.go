package relation

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Set accumulates relations and the operators they imply, refusing any
// relation that would declare an operator twice or reuse a function name.
// A Set is not safe for concurrent use.
type Set struct {
	relations []Relation
	operators []Operator
	index     map[uint64][]int
	names     map[string]int
}

func NewSet() *Set {
	return &Set{
		index: make(map[uint64][]int),
		names: make(map[string]int),
	}
}

// Add parses text and adds the resulting relation.
func (s *Set) Add(text string) ([]Operator, error) {
	r, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return s.AddRelation(r)
}

// AddRelation resolves r and records its operators. Nothing is recorded when
// any of them conflicts with an operator already in the set.
func (s *Set) AddRelation(r Relation) ([]Operator, error) {
	ops := Resolve(r)

	pending := make(map[string]Operator, len(ops))
	for _, op := range ops {
		sig := op.Signature()
		if i, ok := s.lookup(sig); ok {
			prev := s.operators[i]
			return nil, newError(ErrorCodeDuplicate, r.Text, 0,
				"%s is already declared by %q", sig, prev.Relation)
		}
		if i, ok := s.names[op.Name()]; ok {
			return nil, newError(ErrorCodeNameClash, r.Text, 0,
				"%s for %s collides with %s declared by %q", op.Name(), sig, s.operators[i].Signature(), s.operators[i].Relation)
		}
		if prev, ok := pending[op.Name()]; ok {
			code := ErrorCodeNameClash
			if prev.Signature() == sig {
				code = ErrorCodeDuplicate
			}
			return nil, newError(code, r.Text, 0, "%s is implied twice", op.Name())
		}
		pending[op.Name()] = op
	}

	for _, op := range ops {
		i := len(s.operators)
		s.operators = append(s.operators, op)
		key := xxhash.Sum64String(op.Signature())
		s.index[key] = append(s.index[key], i)
		s.names[op.Name()] = i
	}
	s.relations = append(s.relations, r)
	return ops, nil
}

// Lookup returns the operator with the given signature.
func (s *Set) Lookup(signature string) (Operator, bool) {
	i, ok := s.lookup(signature)
	if !ok {
		return Operator{}, false
	}
	return s.operators[i], true
}

func (s *Set) lookup(signature string) (int, bool) {
	for _, i := range s.index[xxhash.Sum64String(signature)] {
		if s.operators[i].Signature() == signature {
			return i, true
		}
	}
	return 0, false
}

// Operators returns every operator in declaration order.
func (s *Set) Operators() []Operator {
	return slices.Clone(s.operators)
}

func (s *Set) Relations() []Relation {
	return slices.Clone(s.relations)
}

func (s *Set) Len() int {
	return len(s.operators)
}
