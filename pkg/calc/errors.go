package calc

import (
	"errors"
	"fmt"

	"src.calc.sh/pkg/diag"
)

// ErrorKind classifies evaluation errors.
type ErrorKind int

// Possible values for ErrorKind.
const (
	// An unrecognized character in the expression.
	InvalidChar ErrorKind = iota
	// A number literal that does not parse as a decimal, like "1.2.3".
	MalformedNumber
	// An operator without two operands, or operands without an operator.
	Arity
	// A token other than an operator where an operator is reduced.
	UnknownOperator
	// A result that is NaN or infinite.
	NonFinite
	// A parenthesis without its counterpart. Only reported when
	// Config.LenientParens is false.
	UnbalancedParen
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidChar:
		return "invalid character"
	case MalformedNumber:
		return "malformed number"
	case Arity:
		return "invalid expression"
	case UnknownOperator:
		return "unknown operator"
	case NonFinite:
		return "non-finite result"
	case UnbalancedParen:
		return "unbalanced parenthesis"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ErrBlank is returned by Eval when the expression is empty or consists of
// whitespace only.
var ErrBlank = errors.New("blank expression")

// ErrorTag parameterizes [diag.Error] for evaluation errors.
type ErrorTag struct{}

// ErrorTag returns "evaluation error".
func (ErrorTag) ErrorTag() string { return "evaluation error" }

// Error is an evaluation error. It carries the kind of the failure and the
// part of the expression responsible for it.
type Error struct {
	Kind    ErrorKind
	Message string
	Context diag.Context
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string { return e.asDiag().Error() }

// Range returns the range of the error.
func (e *Error) Range() diag.Ranging { return e.Context.Range() }

// Show shows the error, highlighting the culprit in the expression.
func (e *Error) Show(indent string) string { return e.asDiag().Show(indent) }

func (e *Error) asDiag() *diag.Error[ErrorTag] {
	return &diag.Error[ErrorTag]{Message: e.Message, Context: e.Context}
}

func newError(kind ErrorKind, r diag.Ranger, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Context: diag.Context{Ranging: r.Range()},
	}
}

// UnpackError returns the *Error wrapped in err, or nil if there is none.
func UnpackError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
