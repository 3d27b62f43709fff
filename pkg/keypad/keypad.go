// Package keypad models the editing state of a calculator keypad.
//
// A [Buffer] holds the text entered so far. Pressing a key returns a new
// Buffer; the zero value is an empty keypad.
package keypad

import (
	"strings"

	"src.calc.sh/pkg/calc"
	"src.calc.sh/pkg/strutil"
)

// Labels of keys with special behavior.
const (
	Clear     = "C"
	Backspace = "⌫"
	Equals    = "="
)

// Keys is the layout of the keypad, one row at a time.
var Keys = [][]string{
	{Clear, Backspace, "%", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", Equals},
}

// Layout renders Keys as text, one row per line. Operator keys are shown in
// brackets.
func Layout() string {
	var sb strings.Builder
	for _, row := range Keys {
		for i, key := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if isOperatorKey(key) {
				sb.WriteString("[" + key + "]")
			} else {
				sb.WriteString(" " + key + " ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// The "%" key is not an operator key.
func isOperatorKey(key string) bool {
	switch key {
	case "/", "*", "-", "+", Equals:
		return true
	}
	return false
}

// Buffer is the state of the keypad.
type Buffer struct {
	// Text entered so far.
	Text string
	// Config used when Equals is pressed.
	Config calc.Config
}

// Display returns the text to display.
func (b Buffer) Display() string {
	if b.Text == "" {
		return "0"
	}
	return b.Text
}

// Press returns the state after key is pressed. Keys other than Clear,
// Backspace and Equals are appended to the text as is.
func (b Buffer) Press(key string) Buffer {
	switch key {
	case Clear:
		b.Text = ""
	case Backspace:
		b.Text = strutil.DropLastRune(b.Text)
	case Equals:
		b.Text = b.Config.Evaluate(b.Text)
	default:
		b.Text += key
	}
	return b
}

// PressAll presses each of keys in turn.
func (b Buffer) PressAll(keys ...string) Buffer {
	for _, key := range keys {
		b = b.Press(key)
	}
	return b
}
