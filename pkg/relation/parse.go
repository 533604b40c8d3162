package relation

import "strings"

// term is a parsed operand before normalisation.
type term struct {
	operand Operand
	literal bool
	pos     int
}

type side struct {
	terms []term
	op    Token
}

// Parser turns the tokens of one relation into a normalised Relation.
type Parser struct {
	text   string
	tokens []Token
	pos    int
}

// Parse parses and normalises a relation, rejecting any form whose operand
// shapes are inconsistent with its operator.
func Parse(text string) (Relation, error) {
	if strings.TrimSpace(text) == "" {
		return Relation{}, newError(ErrorCodeEmpty, text, 0, "nothing to parse")
	}
	tokens, err := NewLexer(text).Tokenize()
	if err != nil {
		return Relation{}, err
	}
	p := &Parser{text: text, tokens: tokens}
	return p.parse()
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Relation {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

func (p *Parser) parse() (Relation, error) {
	lhs, err := p.parseSide()
	if err != nil {
		return Relation{}, err
	}
	eq := p.peek()
	if _, err := p.expect(TokenEq); err != nil {
		return Relation{}, err
	}
	rhs, err := p.parseSide()
	if err != nil {
		return Relation{}, err
	}
	if _, err := p.expect(TokenEOF); err != nil {
		return Relation{}, err
	}

	var product side
	var target term
	switch {
	case len(lhs.terms) == 2 && len(rhs.terms) == 1:
		product, target = lhs, rhs.terms[0]
	case len(lhs.terms) == 1 && len(rhs.terms) == 2:
		product, target = rhs, lhs.terms[0]
	default:
		return Relation{}, newError(ErrorCodeSyntax, p.text, eq.Pos,
			"one side must combine two operands and the other must be a single operand")
	}

	r, err := p.normalise(product, target)
	if err != nil {
		return Relation{}, err
	}
	if err := r.check(); err != nil {
		return Relation{}, err
	}
	return r, nil
}

func (p *Parser) normalise(product side, target term) (Relation, error) {
	a, b := product.terms[0], product.terms[1]
	r := Relation{Text: p.text}

	switch product.op.Type {
	case TokenDiv:
		switch {
		case a.literal && !b.literal && !target.literal:
			// 1 / B == C
			r.Left, r.Right, r.Reciprocal, r.Op = b.operand, target.operand, true, OpMul
			return r, nil
		case a.literal || b.literal || target.literal:
			return r, p.literalError(a, b, target)
		case b.operand.Dim != 1:
			return r, newError(ErrorCodeVectorDivisor, p.text, b.pos, "%s is a vector", b.operand)
		}
		// A / B == C is declared as C * B == A.
		r.Left, r.Right, r.Result, r.Op = target.operand, b.operand, a.operand, OpMul
		return r, nil

	case TokenMul:
		switch {
		case target.literal && !a.literal && !b.literal:
			r.Left, r.Right, r.Reciprocal, r.Op = a.operand, b.operand, true, OpMul
			return r, nil
		case a.literal || b.literal || target.literal:
			return r, p.literalError(a, b, target)
		}
		r.Left, r.Right, r.Result, r.Op = a.operand, b.operand, target.operand, OpMul
		return r, nil

	default:
		if a.literal || b.literal || target.literal {
			return r, p.literalError(a, b, target)
		}
		r.Left, r.Right, r.Result, r.Op = a.operand, b.operand, target.operand, OpCross
		return r, nil
	}
}

func (p *Parser) literalError(terms ...term) error {
	pos := 0
	for _, t := range terms {
		if t.literal {
			pos = t.pos
			break
		}
	}
	return newError(ErrorCodeLiteral, p.text, pos,
		"1 is only allowed as A * B == 1, C == 1 / A or 1 / A == C")
}

// parseSide parses `operand [op operand]`.
func (p *Parser) parseSide() (side, error) {
	first, err := p.parseTerm(nil)
	if err != nil {
		return side{}, err
	}
	s := side{terms: []term{first}}

	switch p.peek().Type {
	case TokenMul, TokenDiv, TokenCross:
		s.op = p.advance()
		second, err := p.parseTerm(&first)
		if err != nil {
			return side{}, err
		}
		s.terms = append(s.terms, second)
	}
	return s, nil
}

// parseTerm parses `IDENT [":" dim] | "1" | "="`. prev is the operand
// preceding this one on the same side, if any.
func (p *Parser) parseTerm(prev *term) (term, error) {
	tok := p.advance()
	switch tok.Type {
	case TokenIdent:
		t := term{operand: Operand{Unit: tok.Value, Dim: 1, Pos: tok.Pos}, pos: tok.Pos}
		if p.peek().Type == TokenColon {
			p.advance()
			dim, err := p.expect(TokenNumber)
			if err != nil {
				return term{}, err
			}
			switch dim.Value {
			case "1", "2", "3":
				t.operand.Dim = int(dim.Value[0] - '0')
			default:
				return term{}, newError(ErrorCodeSyntax, p.text, dim.Pos,
					"dimension must be 1, 2 or 3, got %s", dim.Value)
			}
		}
		return t, nil

	case TokenNumber:
		if tok.Value != "1" {
			return term{}, newError(ErrorCodeLiteral, p.text, tok.Pos,
				"only the literal 1 is allowed, got %s", tok.Value)
		}
		if p.peek().Type == TokenColon {
			return term{}, newError(ErrorCodeLiteral, p.text, p.peek().Pos,
				"the literal 1 has no dimension")
		}
		return term{literal: true, pos: tok.Pos}, nil

	case TokenSame:
		if prev == nil || prev.literal {
			return term{}, newError(ErrorCodeSelfReference, p.text, tok.Pos,
				"'=' must follow a unit on the same side")
		}
		if p.peek().Type == TokenColon {
			return term{}, newError(ErrorCodeSyntax, p.text, p.peek().Pos,
				"'=' takes the dimension of the previous operand")
		}
		t := *prev
		t.operand.Pos = tok.Pos
		t.pos = tok.Pos
		return t, nil

	default:
		return term{}, newError(ErrorCodeSyntax, p.text, tok.Pos, "expected an operand, got %s", tok.Type)
	}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(typ TokenType) (Token, error) {
	tok := p.peek()
	if tok.Type != typ {
		return tok, newError(ErrorCodeSyntax, p.text, tok.Pos, "expected %s, got %s", typ, tok.Type)
	}
	p.advance()
	return tok, nil
}
