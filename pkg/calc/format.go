package calc

import (
	"math"
	"strconv"
	"strings"
)

// ResultError is the result Evaluate returns for any invalid expression.
const ResultError = "Error"

// Format renders a result for display. NaN and infinities become
// ResultError. Integral values in the range of int64 are shown without a
// fractional part; other values use the shortest decimal representation
// that reads back to the same value, in exponent form when the magnitude is
// very large or very small.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ResultError
	}
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// The 'g' format switches to exponent form for numbers as small as
	// 1234567.5, so decide independently.
	noPoint := !strings.ContainsRune(s, '.')
	if (noPoint && len(s) > 14 && s[len(s)-1] == '0') ||
		strings.HasPrefix(strings.TrimPrefix(s, "-"), "0.0000") {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return s
}
