package relation

import (
	"fmt"
	"unicode/utf8"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError

	TokenIdent  // Newton, Metre
	TokenNumber // 1, 2, 3
	TokenColon  // :
	TokenMul    // *
	TokenDiv    // /
	TokenCross  // X or ×
	TokenEq     // ==
	TokenSame   // =
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of relation"
	case TokenError:
		return "ERROR"
	case TokenIdent:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenColon:
		return "':'"
	case TokenMul:
		return "'*'"
	case TokenDiv:
		return "'/'"
	case TokenCross:
		return "'X'"
	case TokenEq:
		return "'=='"
	case TokenSame:
		return "'='"
	default:
		return "UNKNOWN"
	}
}

// Token is a lexeme of a relation with its 1-based column.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// Lexer tokenizes a single relation.
type Lexer struct {
	input string
	pos   int // byte offset
	col   int // rune column, 1-based
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input, col: 1}
}

// Tokenize returns all tokens up to and including EOF. An unknown character
// stops the scan with a syntax error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.nextToken()
		if tok.Type == TokenError {
			return tokens, newError(ErrorCodeSyntax, l.input, tok.Pos, "unexpected character %q", tok.Value)
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) nextToken() Token {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.col}
	}

	start := l.col
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	switch r {
	case ':':
		l.advance(size)
		return Token{Type: TokenColon, Value: ":", Pos: start}
	case '*':
		l.advance(size)
		return Token{Type: TokenMul, Value: "*", Pos: start}
	case '/':
		l.advance(size)
		return Token{Type: TokenDiv, Value: "/", Pos: start}
	case '×':
		l.advance(size)
		return Token{Type: TokenCross, Value: "×", Pos: start}
	case '=':
		l.advance(size)
		if l.pos < len(l.input) && l.input[l.pos] == '=' {
			l.advance(1)
			return Token{Type: TokenEq, Value: "==", Pos: start}
		}
		return Token{Type: TokenSame, Value: "=", Pos: start}
	}

	switch {
	case isDigit(r):
		return l.scan(TokenNumber, start, isDigit)
	case isIdentStart(r):
		tok := l.scan(TokenIdent, start, isIdentContinue)
		if tok.Value == "X" {
			tok.Type = TokenCross
		}
		return tok
	}

	l.advance(size)
	return Token{Type: TokenError, Value: string(r), Pos: start}
}

func (l *Lexer) scan(typ TokenType, start int, accept func(rune) bool) Token {
	from := l.pos
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !accept(r) {
			break
		}
		l.advance(size)
	}
	return Token{Type: typ, Value: l.input[from:l.pos], Pos: start}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.advance(1)
		default:
			return
		}
	}
}

func (l *Lexer) advance(size int) {
	l.pos += size
	l.col++
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
