package shell

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"src.calc.sh/pkg/calc"
	"src.calc.sh/pkg/diag"
	"src.calc.sh/pkg/store"
	"src.calc.sh/pkg/store/storedefs"
	"src.calc.sh/pkg/sys"
)

// Number of entries shown by the :history command.
const historyLimit = 20

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Calc calc.Config
	// Prompt to show when stdin is a terminal.
	Prompt string
	// Path to the history database. If empty, history is not recorded.
	DB string
}

// Interact runs an interactive session, evaluating each line read from stdin
// until the end of input. Results are written to stdout, and diagnostics of
// failed evaluations to stderr.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	var st store.DBStore
	if cfg.DB != "" {
		var err error
		st, err = store.NewStore(cfg.DB)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot open history database:", err)
			fmt.Fprintln(fds[2], "History will not be recorded.")
		} else {
			defer st.Close()
		}
	}

	prompt := ""
	if sys.IsATTY(fds[0]) {
		prompt = cfg.Prompt
	}
	ed := newMinEditor(fds[0], fds[2], prompt)

	for lineNum := 1; ; lineNum++ {
		line, err := ed.ReadCode()
		if err != nil && err != io.EOF {
			fmt.Fprintln(fds[2], "Editor error:", err)
			return
		}
		if line != "" {
			evalLine(fds, st, cfg.Calc,
				calc.Source{Name: fmt.Sprintf("[tty %v]", lineNum), Code: line})
		}
		if err == io.EOF {
			if prompt != "" {
				fmt.Fprintln(fds[2])
			}
			return
		}
	}
}

func evalLine(fds [3]*os.File, st storedefs.Store, cfg calc.Config, src calc.Source) {
	switch cmd, arg, _ := strings.Cut(strings.TrimSpace(src.Code), " "); cmd {
	case ":history":
		showHistory(fds, st, strings.TrimSpace(arg))
		return
	case ":forget":
		forget(fds, st, strings.TrimSpace(arg))
		return
	}
	v, err := calc.Eval(src, cfg)
	if err == calc.ErrBlank {
		return
	}
	result := calc.Display(v, err)
	fmt.Fprintln(fds[1], result)
	if err != nil {
		diag.ShowError(fds[2], err)
	}
	if st != nil {
		_, err := st.AddEntry(storedefs.Entry{Expr: src.Code, Result: result})
		if err != nil {
			logger.Println("failed to add history entry:", err)
		}
	}
}

// Shows the last entries of the history, or the last entries whose
// expression starts with prefix if it is not empty.
func showHistory(fds [3]*os.File, st storedefs.Store, prefix string) {
	if st == nil {
		diag.Complain(fds[2], "history is not available")
		return
	}
	entries, err := lastEntries(st, prefix)
	if err != nil {
		diag.Complainf(fds[2], "cannot read history: %v", err)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(fds[1], "%d  %s = %s\n", e.Seq, e.Expr, e.Result)
	}
}

func lastEntries(st storedefs.Store, prefix string) ([]storedefs.Entry, error) {
	next, err := st.NextSeq()
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return st.Entries(max(1, next-historyLimit), next)
	}
	var entries []storedefs.Entry
	for upto := next; len(entries) < historyLimit; {
		e, err := st.PrevEntry(upto, prefix)
		if err == storedefs.ErrNoMatchingEntry {
			break
		} else if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		upto = e.Seq
	}
	slices.Reverse(entries)
	return entries, nil
}

// Deletes the history entry with the sequence number given in arg.
func forget(fds [3]*os.File, st storedefs.Store, arg string) {
	if st == nil {
		diag.Complain(fds[2], "history is not available")
		return
	}
	seq, err := strconv.Atoi(arg)
	if err != nil {
		diag.Complainf(fds[2], "invalid sequence number %q", arg)
		return
	}
	if _, err := st.Entry(seq); err != nil {
		diag.Complainf(fds[2], "cannot forget %d: %v", seq, err)
		return
	}
	if err := st.DelEntry(seq); err != nil {
		diag.Complainf(fds[2], "cannot forget %d: %v", seq, err)
	}
}
