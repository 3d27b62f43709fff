//go:build !windows

package progtest

import (
	"github.com/creack/pty"
	"src.calc.sh/pkg/must"
	"src.calc.sh/pkg/prog"
	"src.calc.sh/pkg/testutil"
)

// RunInteractive is like Run, but connects stdin of the program to a
// terminal, so that the program behaves as if it were used interactively.
// The input is typed into the terminal, followed by an end-of-file
// character.
//
// Echoed input is not captured, since it goes to the terminal rather than
// stdout.
func RunInteractive(c testutil.Cleanuper, p prog.Program, args []string, input string) (exit int, stdout, stderr string) {
	ptm, tty := must.OK2(pty.Open())
	c.Cleanup(func() {
		tty.Close()
		ptm.Close()
	})
	go func() {
		// Drain what the terminal echoes, so that the program never blocks on
		// a full terminal buffer.
		buf := make([]byte, 1024)
		for {
			if _, err := ptm.Read(buf); err != nil {
				return
			}
		}
	}()
	// The end-of-file character only takes effect at the start of a line.
	if input != "" && input[len(input)-1] != '\n' {
		input += "\n"
	}
	must.OK1(ptm.WriteString(input + "\x04"))
	return RunWithStdin(p, args, tty)
}
