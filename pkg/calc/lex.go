package calc

import (
	"unicode"
	"unicode/utf8"

	"src.calc.sh/pkg/diag"
)

// Tokenize splits a normalized expression into tokens, in source order. It
// scans the input once without backtracking.
//
// A maximal run of digits and dots becomes a single Number token without
// checking that it is a well-formed decimal. Any character that is not
// whitespace, a digit, a dot, an operator or a parenthesis is an error of
// kind InvalidChar.
func Tokenize(src string) ([]Token, error) {
	lx := &lexer{src: src}
	for lx.pos < len(lx.src) {
		if err := lx.lexOne(); err != nil {
			err.Context.Source = src
			return nil, err
		}
	}
	return lx.tokens, nil
}

// lexer maintains the mutable state of tokenization.
type lexer struct {
	src    string
	pos    int
	tokens []Token
}

const eof rune = -1

func (lx *lexer) peek() rune {
	if lx.pos == len(lx.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
	return r
}

func (lx *lexer) next() rune {
	if lx.pos == len(lx.src) {
		return eof
	}
	r, s := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += s
	return r
}

func (lx *lexer) lexOne() *Error {
	begin := lx.pos
	r := lx.next()
	switch {
	case unicode.IsSpace(r):
		// Skip.
	case isNumberRune(r):
		for isNumberRune(lx.peek()) {
			lx.next()
		}
		lx.tokens = append(lx.tokens,
			NumberToken(lx.src[begin:lx.pos], diag.Ranging{From: begin, To: lx.pos}))
	case r == '(':
		lx.emit(LeftParen, begin)
	case r == ')':
		lx.emit(RightParen, begin)
	default:
		if op, ok := opOf(r); ok {
			lx.tokens = append(lx.tokens,
				OperatorToken(op, diag.Ranging{From: begin, To: lx.pos}))
			return nil
		}
		return newError(InvalidChar, diag.Ranging{From: begin, To: lx.pos},
			"invalid character %q", r)
	}
	return nil
}

func (lx *lexer) emit(t TokenType, begin int) {
	lx.tokens = append(lx.tokens, Token{
		Ranging: diag.Ranging{From: begin, To: lx.pos},
		Type:    t,
		Text:    lx.src[begin:lx.pos],
	})
}

func isNumberRune(r rune) bool {
	return ('0' <= r && r <= '9') || r == '.'
}
