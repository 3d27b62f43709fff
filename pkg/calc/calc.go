// Package calc implements the calculator expression evaluator.
//
// An expression consists of decimal numbers, the binary operators + - * / %
// and parentheses. Evaluation is a pipeline of pure stages: [Normalize],
// [Tokenize], [ToPostfix] (shunting-yard), [Reduce] (postfix evaluation) and
// [Format]. [Evaluate] runs the whole pipeline and always returns a string to
// display; [Eval] returns the numeric value and a typed [*Error] instead.
//
// No state is kept between calls, and all functions are safe for concurrent
// use.
package calc

import (
	"math"
	"strings"

	"src.calc.sh/pkg/diag"
)

// Config keeps options for evaluation. The zero value is the default.
type Config struct {
	// Tolerate unbalanced parentheses: an unmatched ")" is ignored, and
	// operands without an operator between them evaluate to the last one.
	LenientParens bool
}

// Source describes an expression to evaluate.
type Source struct {
	// Name of the source, used in error messages.
	Name string
	// The expression, as entered by the user.
	Code string
}

// Eval evaluates an expression and returns its value, which is always finite
// when the error is nil. A blank expression results in ErrBlank; any other
// error is an *Error, with its range referring to src.Code.
func Eval(src Source, cfg Config) (float64, error) {
	if strings.TrimSpace(src.Code) == "" {
		return 0, ErrBlank
	}
	normalized, offsets := normalize(src.Code)
	v, err := evalNormalized(normalized, cfg)
	if err != nil {
		// Point the error at the code the user wrote.
		r := err.Range()
		err.Context = *diag.NewContext(src.Name, src.Code,
			diag.Ranging{From: offsets[r.From], To: offsets[r.To]})
		return 0, err
	}
	return v, nil
}

func evalNormalized(code string, cfg Config) (float64, *Error) {
	tokens, err := Tokenize(code)
	if err != nil {
		return 0, err.(*Error)
	}
	postfix, err := ToPostfix(tokens, cfg)
	if err != nil {
		return 0, err.(*Error)
	}
	v, err := Reduce(postfix, cfg)
	if err != nil {
		return 0, err.(*Error)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newError(NonFinite, diag.Ranging{From: 0, To: len(code)},
			"result is not a finite number")
	}
	return v, nil
}

// Evaluate evaluates an expression and returns the text to display: an empty
// string for a blank expression, ResultError if the expression is invalid or
// its value is not finite, and the formatted value otherwise.
func (cfg Config) Evaluate(code string) string {
	return Display(Eval(Source{Name: "[expr]", Code: code}, cfg))
}

// Evaluate is equivalent to Config{}.Evaluate(code).
func Evaluate(code string) string {
	return Config{}.Evaluate(code)
}
