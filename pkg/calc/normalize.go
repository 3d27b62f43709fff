package calc

import (
	"strings"
	"unicode/utf8"
)

// Normalize rewrites alternate operator glyphs and unary minus forms into the
// canonical form understood by Tokenize:
//
//   - "×" and "x" become "*", "÷" becomes "/";
//   - a leading "-" becomes "0-";
//   - every "(-" becomes "(0-".
//
// Normalize never fails, and normalizing its output again has no effect.
func Normalize(s string) string {
	normalized, _ := normalize(s)
	return normalized
}

// normalize is like Normalize, but also returns a slice mapping each byte
// offset in the normalized string, plus the end offset, to an offset in s.
// Inserted zeros map to the position of the minus sign that follows them.
func normalize(s string) (string, []int) {
	var sb strings.Builder
	sb.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)
	// Writes text, mapping each of its bytes to offset at in s.
	emit := func(text string, at int) {
		sb.WriteString(text)
		for range len(text) {
			offsets = append(offsets, at)
		}
	}

	afterParen := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '×', 'x':
			emit("*", i)
		case '÷':
			emit("/", i)
		case '-':
			if i == 0 || afterParen {
				emit("0", i)
			}
			emit("-", i)
		default:
			sb.WriteString(s[i : i+size])
			for k := range size {
				offsets = append(offsets, i+k)
			}
		}
		afterParen = r == '('
		i += size
	}
	offsets = append(offsets, len(s))
	return sb.String(), offsets
}
