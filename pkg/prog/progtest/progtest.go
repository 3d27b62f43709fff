// Package progtest contains utilities for testing [prog.Program]
// implementations.
//
// Each test case runs a program with pipes connected to its standard
// streams, and checks its exit status and output:
//
//	progtest.Test(t, &shell.Program{},
//		progtest.ThatCalc("-c", "1+2").WritesStdout("3\n"),
//		progtest.ThatCalc("-c", "5/0").ExitsWith(2).WritesStdout("Error\n"),
//	)
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.calc.sh/pkg/must"
	"src.calc.sh/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	stdout     output
	stderr     output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

func quote(s string) string { return "`" + s + "`" }

// ThatCalc returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "calc -c 1+2" writes "3" would be:
//
//	ThatCalc("-c", "1+2").WritesStdout("3\n")
func ThatCalc(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatCalc("-log", "log.txt").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to return with
// the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.args, c.stdin)
			if exit != c.want.exitStatus {
				t.Errorf("got exit %v, want %v", exit, c.want.exitStatus)
			}
			if !matchOutput(stdout, c.want.stdout) {
				t.Errorf("got stdout %v, want %v", quote(stdout), c.want.stdout)
			}
			if !matchOutput(stderr, c.want.stderr) {
				t.Errorf("got stderr %v, want %v", quote(stderr), c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments, prefixed with the program name
// "calc". It feeds stdin to the program, and returns its exit status and
// what it writes to stdout and stderr.
func Run(p prog.Program, args []string, stdin string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	go func() {
		// Errors are expected when the program exits without reading
		// everything.
		w0.WriteString(stdin)
		w0.Close()
	}()
	defer r0.Close()
	return RunWithStdin(p, args, r0)
}

// RunWithStdin is like Run, but uses the given file as stdin.
func RunWithStdin(p prog.Program, args []string, stdin *os.File) (exit int, stdout, stderr string) {
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Output is read concurrently, so that the program is not blocked when
	// it writes more than what a pipe can buffer.
	stdoutCh := readAllAsync(r1)
	stderrCh := readAllAsync(r2)

	exit = prog.Run([3]*os.File{stdin, w1, w2}, append([]string{"calc"}, args...), p)
	w1.Close()
	w2.Close()
	return exit, <-stdoutCh, <-stderrCh
}

func readAllAsync(r io.ReadCloser) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}

func matchOutput(s string, o output) bool {
	if o.partial {
		return strings.Contains(s, o.content)
	}
	return s == o.content
}
