package calc

// ToPostfix reorders infix tokens into postfix order using the shunting-yard
// algorithm. Operators of equal precedence are left-associative.
//
// Unless cfg.LenientParens is set, a ")" without a matching "(" and a "("
// that is never closed are errors of kind UnbalancedParen. In lenient mode,
// an unmatched ")" is ignored and an unclosed "(" is moved to the output, to
// be rejected by Reduce.
func ToPostfix(tokens []Token, cfg Config) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var ops []Token

	for _, tok := range tokens {
		switch tok.Type {
		case Number:
			output = append(output, tok)
		case LeftParen:
			ops = append(ops, tok)
		case RightParen:
			for len(ops) > 0 && ops[len(ops)-1].Type != LeftParen {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				if !cfg.LenientParens {
					return nil, newError(UnbalancedParen, tok, "unmatched ')'")
				}
				continue
			}
			// Discard the "(".
			ops = ops[:len(ops)-1]
		case Operator:
			for len(ops) > 0 && ops[len(ops)-1].precedence() >= tok.precedence() {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Type == LeftParen && !cfg.LenientParens {
			return nil, newError(UnbalancedParen, top, "unclosed '('")
		}
		output = append(output, top)
	}
	return output, nil
}
