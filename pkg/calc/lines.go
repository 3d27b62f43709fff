package calc

import (
	"math"
	"strings"

	"src.calc.sh/pkg/diag"
)

// Line is the outcome of evaluating one line of a multi-line source.
type Line struct {
	// Range of the line in the source, excluding the line ending.
	diag.Ranging
	// 0-based line number.
	Number int
	Code   string
	Value  float64
	// ErrBlank for a blank line, or an *Error whose range refers to the
	// whole source.
	Err error
}

// Result returns the text to display for the line, following the same rules
// as Evaluate.
func (l Line) Result() string {
	return Display(l.Value, l.Err)
}

// EvalLines evaluates each line of src.Code as a separate expression. Both
// "\n" and "\r\n" are recognized as line endings.
func EvalLines(src Source, cfg Config) []Line {
	var lines []Line
	from := 0
	for i, code := range strings.Split(src.Code, "\n") {
		to := from + len(code)
		if strings.HasSuffix(code, "\r") {
			code = code[:len(code)-1]
		}
		v, err := Eval(Source{Name: src.Name, Code: code}, cfg)
		if e := UnpackError(err); e != nil {
			r := e.Range()
			e.Context = *diag.NewContext(src.Name, src.Code,
				diag.Ranging{From: from + r.From, To: from + r.To})
		}
		lines = append(lines, Line{
			Ranging: diag.Ranging{From: from, To: from + len(code)},
			Number:  i, Code: code, Value: v, Err: err})
		from = to + 1
	}
	return lines
}

// Display returns the text to display for the outcome of Eval: an empty string
// for ErrBlank, ResultError for any other error or a value that is not
// finite, and the formatted value otherwise.
func Display(v float64, err error) string {
	switch {
	case err == ErrBlank:
		return ""
	case err != nil:
		return ResultError
	case math.IsNaN(v) || math.IsInf(v, 0):
		return ResultError
	}
	return Format(v)
}
