package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"src.calc.sh/pkg/strutil"
)

// A line editor that reads one line at a time, showing a prompt before each
// line if the prompt is not empty.
type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in, out *os.File, prompt string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

// ReadCode reads a line without its line ending. At the end of the input, it
// returns what remains of the last line along with io.EOF.
func (ed *minEditor) ReadCode() (string, error) {
	if ed.prompt != "" {
		fmt.Fprint(ed.out, ed.prompt)
	}
	line, err := ed.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}
