package calc

import (
	"math"

	"src.calc.sh/pkg/diag"
)

// An operand along with the part of the expression it was computed from.
type operand struct {
	value float64
	diag.Ranging
}

// Reduce evaluates tokens in postfix order with an operand stack.
//
// For each operator, the operand pushed last is the right-hand side. A
// malformed number literal, an operator with fewer than two operands and a
// non-operator token where an operator is expected are errors. Reduce does
// not check whether the result is finite.
//
// If no operands are left at the end, the result is NaN. If more than one is
// left, which happens for input like "2(3)", Reduce returns an error of kind
// Arity, or the topmost operand if cfg.LenientParens is set.
func Reduce(postfix []Token, cfg Config) (float64, error) {
	var stack []operand
	for _, tok := range postfix {
		switch tok.Type {
		case Number:
			if tok.Malformed {
				return math.NaN(), newError(MalformedNumber, tok,
					"malformed number %q", tok.Text)
			}
			stack = append(stack, operand{tok.Value, tok.Ranging})
		case Operator:
			if len(stack) < 2 {
				return math.NaN(), newError(Arity, tok,
					"operator %s needs two operands", tok.Op)
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			stack = append(stack, operand{
				tok.Op.Apply(a.value, b.value), diag.MixedRanging(a, b)})
		default:
			return math.NaN(), newError(UnknownOperator, tok,
				"unknown operator %q", tok.Text)
		}
	}

	switch len(stack) {
	case 0:
		return math.NaN(), nil
	case 1:
		return stack[0].value, nil
	default:
		if cfg.LenientParens {
			return stack[len(stack)-1].value, nil
		}
		return math.NaN(), newError(Arity, stack[1], "missing operator")
	}
}
