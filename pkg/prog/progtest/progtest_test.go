package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"src.calc.sh/pkg/prog"
)

// Verify we don't deadlock if more output is written to stdout than can be
// buffered by a pipe.
func TestOutputCaptureDoesNotDeadlock(t *testing.T) {
	Test(t, noisyProgram{},
		ThatCalc().WritesStdoutContaining("hello"),
	)
}

type noisyProgram struct{}

func (noisyProgram) RegisterFlags(f *prog.FlagSet) {}

func (noisyProgram) Run(fds [3]*os.File, args []string) error {
	// We need enough data to verify whether we're likely to deadlock due to
	// filling the pipe before the test completes. Pipes typically buffer 8 to
	// 128 KiB.
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := 0; i < 128*1024/len(bytes); i++ {
		fds[1].Write(bytes)
	}
	fds[1].WriteString("hello")
	return nil
}

func TestStdin(t *testing.T) {
	Test(t, echoProgram{},
		ThatCalc("a", "b").WithStdin("x\ny\n").
			WritesStdout("args: a b\nstdin: 2 lines\n").
			WritesStderr("done\n"),
		ThatCalc().WritesStdout("args: \nstdin: 0 lines\n").
			WritesStderrContaining("done"),
	)
}

type echoProgram struct{}

func (echoProgram) RegisterFlags(f *prog.FlagSet) {}

func (echoProgram) Run(fds [3]*os.File, args []string) error {
	data, err := io.ReadAll(fds[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(fds[1], "args: %s\n", strings.Join(args, " "))
	fmt.Fprintf(fds[1], "stdin: %d lines\n", strings.Count(string(data), "\n"))
	fmt.Fprintln(fds[2], "done")
	return nil
}
