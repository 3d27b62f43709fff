// Calc evaluates arithmetic expressions with decimal numbers, the operators
// + - * / % and parentheses. It evaluates expressions given as arguments, the
// lines of a file or lines typed interactively, and can also run as a
// language server for files of expressions.
package main

import (
	"os"

	"src.calc.sh/pkg/buildinfo"
	"src.calc.sh/pkg/lsp"
	"src.calc.sh/pkg/pprof"
	"src.calc.sh/pkg/prog"
	"src.calc.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{}, &pprof.Program{}, &lsp.Program{},
			&shell.Program{})))
}
