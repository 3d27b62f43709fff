// Package prog provides the entry point to calc. Its subpackages and the
// packages that implement Program correspond to subprograms of calc.
package prog

// This package sets up the basic environment and calls the appropriate
// "subprogram": the build information printer, the language server or the
// evaluating shell.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.calc.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers flags specific to the subprogram. It is called
	// before the command line is parsed.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. It may return ErrNextProgram or the result of
	// NextProgram to pass control to the next subprogram of a Composite.
	Run(fds [3]*os.File, args []string) error
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: calc [flags] [file]")
	fmt.Fprintln(out, "       calc [flags] -c expr...")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var log string
	var help bool
	fs.StringVar(&log, "log", "", "a file to write debug log to")
	fs.BoolVar(&help, "help", false, "show usage help and quit")

	p.RegisterFlags(&FlagSet{FlagSet: fs})

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. calc defines -help, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if log != "" {
		err = logutil.SetOutputFile(log)
		if err == nil {
			defer logutil.SetOutput(io.Discard)
		} else {
			fmt.Fprintln(fds[2], err)
		}
	}
	logger.Println("args:", args)

	if help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if np, ok := err.(*nextProgramError); ok {
		np.runCleanups(fds)
		err = errors.New("internal error: no suitable subprogram")
	}
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

// Composite returns a Program made up of the given programs. It registers the
// flags of all of them, and runs them in turn until one returns something
// other than ErrNextProgram or the result of NextProgram. Cleanup functions
// accumulated along the way are run in reverse order after that.
func Composite(programs ...Program) Program {
	return composite(programs)
}

type composite []Program

func (cp composite) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp composite) Run(fds [3]*os.File, args []string) error {
	var cleanups []func([3]*os.File)
	for _, p := range cp {
		err := p.Run(fds, args)
		if np, ok := err.(*nextProgramError); ok {
			cleanups = append(cleanups, np.cleanups...)
			continue
		}
		(&nextProgramError{cleanups}).runCleanups(fds)
		return err
	}
	// All subprograms have passed control on.
	return &nextProgramError{cleanups}
}

// ErrNextProgram is a special error that may be returned by Program.Run that
// is part of a Composite program, indicating that the next program should be
// tried.
var ErrNextProgram error = &nextProgramError{}

// NextProgram returns a special error that may be returned by Program.Run
// that is part of a Composite program, indicating that the next program
// should be tried. It can carry a list of cleanup functions that should be
// run in reverse order before the composite program finishes.
func NextProgram(cleanups ...func([3]*os.File)) error {
	return &nextProgramError{cleanups}
}

type nextProgramError struct{ cleanups []func([3]*os.File) }

func (e *nextProgramError) Error() string { return "next program" }

func (e *nextProgramError) runCleanups(fds [3]*os.File) {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		e.cleanups[i](fds)
	}
}

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
