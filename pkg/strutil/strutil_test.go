package strutil

import (
	"testing"

	"src.calc.sh/pkg/tt"
)

func TestTitle(t *testing.T) {
	tt.Test(t, tt.Fn("Title", Title), tt.Table{
		tt.Args("").Rets(""),
		tt.Args("evaluation error").Rets("Evaluation error"),
	})
}

func TestChopLineEnding(t *testing.T) {
	tt.Test(t, tt.Fn("ChopLineEnding", ChopLineEnding), tt.Table{
		tt.Args("").Rets(""),
		tt.Args("1+2").Rets("1+2"),
		tt.Args("1+2\n").Rets("1+2"),
		tt.Args("1+2\r\n").Rets("1+2"),
		// Only chops one line ending
		tt.Args("1+2\n\n").Rets("1+2\n"),
	})
}

func TestDropLastRune(t *testing.T) {
	tt.Test(t, tt.Fn("DropLastRune", DropLastRune), tt.Table{
		tt.Args("").Rets(""),
		tt.Args("12").Rets("1"),
		tt.Args("6×").Rets("6"),
	})
}
