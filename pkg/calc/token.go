package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"src.calc.sh/pkg/diag"
)

// TokenType is the type of a Token.
type TokenType int

// Possible values for TokenType.
const (
	Number TokenType = iota
	Operator
	LeftParen
	RightParen
)

func (t TokenType) String() string {
	switch t {
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Op is a binary arithmetic operator.
type Op int

// Possible values for Op.
const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Precedence returns the binding strength of the operator. All operators are
// left-associative.
func (op Op) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div, Mod:
		return 2
	default:
		panic("unreachable")
	}
}

// Apply applies the operator to its left operand a and right operand b.
// Division by zero is not an error here; it produces an infinity or NaN.
func (op Op) Apply(a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	case Mod:
		// The result takes the sign of the dividend.
		return math.Mod(a, b)
	default:
		panic("unreachable")
	}
}

func opOf(r rune) (Op, bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Sub, true
	case '*':
		return Mul, true
	case '/':
		return Div, true
	case '%':
		return Mod, true
	default:
		return 0, false
	}
}

// Token is a lexical unit of an expression. Tokens are values and are never
// modified after the tokenizer produces them.
type Token struct {
	// Range of the token in the normalized expression.
	diag.Ranging
	Type TokenType
	// The source text of the token.
	Text string
	// Valid when Type is Operator.
	Op Op
	// Valid when Type is Number and Malformed is false.
	Value float64
	// Set when Type is Number and Text is not a well-formed decimal, like
	// "1.2.3". The error is reported when the token is reduced.
	Malformed bool
}

// NumberToken returns a Number token for the given text, parsing its value.
func NumberToken(text string, r diag.Ranger) Token {
	tok := Token{Ranging: r.Range(), Type: Number, Text: text}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		tok.Malformed = true
	} else {
		// Out-of-range literals keep their infinite value.
		tok.Value = v
	}
	return tok
}

// OperatorToken returns an Operator token for op.
func OperatorToken(op Op, r diag.Ranger) Token {
	return Token{Ranging: r.Range(), Type: Operator, Text: op.String(), Op: op}
}

// precedence returns the precedence of an operator token; parentheses have
// precedence 0, so they never cause an operator to be popped.
func (t Token) precedence() int {
	if t.Type == Operator {
		return t.Op.Precedence()
	}
	return 0
}

func (t Token) String() string { return t.Text }
